// This file is part of n64pac.
//
// n64pac is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64pac is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64pac.  If not, see <https://www.gnu.org/licenses/>.

// Package rcp contains the address map shared by the register blocks of the
// Reality Co-Processor. Each block has its own sub-package.
//
// The RCP registers are reached through the KSEG1 segment, which is unmapped
// and uncached. On a 64 bit target the segment base is sign extended.
package rcp

// KSEG1 is the base of the unmapped, uncached kernel segment.
const KSEG1 = ^uintptr(0) &^ 0x5fff_ffff

// Physical addresses of the register blocks.
const (
	MI = 0x0430_0000
	VI = 0x0440_0000
	AI = 0x0450_0000
	PI = 0x0460_0000
	SI = 0x0480_0000
)

// Uncached returns the KSEG1 address of the physical address.
func Uncached(physical uintptr) uintptr {
	return KSEG1 | physical
}
