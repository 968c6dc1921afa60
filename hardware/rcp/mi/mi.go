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

// Package mi describes the MIPS Interface register block. The MI collects
// interrupts from the other RCP devices and presents them to the CPU as a
// single interrupt line.
//
// Each register can also be reached with package level functions, such as
// ReadMode() and SetMask(), which use the block at BaseAddress. They bypass
// the claim made by hardware.Take() so it is up to the caller to make sure
// that nothing else is using the register at the same time.
package mi

import (
	"github.com/n64go/n64pac/hardware/rcp"
	"github.com/n64go/n64pac/hardware/register"
)

// BaseAddress of the MI register block.
const BaseAddress = rcp.KSEG1 | rcp.MI

// Size of the MI register block in bytes.
const Size = 0x10

// Registers is the layout of the MI register block.
type Registers struct {
	Mode      register.Dual[Mode, ModeCommand]
	Version   register.RO[Version]
	Interrupt register.RO[Interrupts]
	Mask      register.Dual[Interrupts, MaskCommand]
}

// At returns the MI register block at base.
//
// At is unsafe. The caller guarantees that base addresses memory with the
// layout of the MI register block and that it stays valid while the block is
// in use.
func At(base uintptr) *Registers {
	return register.At[Registers](base)
}

// New returns the MI register block at BaseAddress.
func New() *Registers {
	return At(BaseAddress)
}
