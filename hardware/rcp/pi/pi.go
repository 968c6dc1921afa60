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

// Package pi describes the Peripheral Interface register block. The PI moves
// data between RDRAM and the cartridge bus.
//
// The package level functions address the block at BaseAddress directly and
// bypass the claim made by hardware.Take().
package pi

import (
	"github.com/n64go/n64pac/hardware/rcp"
	"github.com/n64go/n64pac/hardware/register"
)

// BaseAddress of the PI register block.
const BaseAddress = rcp.KSEG1 | rcp.PI

// Size of the PI register block in bytes.
const Size = 0x34

// Domain holds the bus timing for one of the two cartridge domains. The
// values are in RCP clock cycles.
type Domain struct {
	Latency    register.RW[uint32]
	PulseWidth register.RW[uint32]
	PageSize   register.RW[uint32]
	Release    register.RW[uint32]
}

// Registers is the layout of the PI register block.
type Registers struct {
	DRAMAddr register.RW[uint32]
	CartAddr register.RW[uint32]

	// ReadLen is the length of a transfer from RDRAM to the cartridge bus,
	// minus one. Writing to it starts the transfer.
	ReadLen register.RW[uint32]

	// WriteLen is the length of a transfer from the cartridge bus to RDRAM,
	// minus one. Writing to it starts the transfer.
	WriteLen register.RW[uint32]

	Status register.Dual[Status, StatusCommand]

	Domain1 Domain
	Domain2 Domain
}

// At returns the PI register block at base.
//
// At is unsafe. The caller guarantees that base addresses memory with the
// layout of the PI register block and that it stays valid while the block is
// in use.
func At(base uintptr) *Registers {
	return register.At[Registers](base)
}

// New returns the PI register block at BaseAddress.
func New() *Registers {
	return At(BaseAddress)
}
