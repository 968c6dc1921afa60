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

// Package si describes the Serial Interface register block. The SI moves
// 64 byte blocks between RDRAM and the PIF RAM, which is how the controllers
// are read.
//
// The package level functions address the block at BaseAddress directly and
// bypass the claim made by hardware.Take().
package si

import (
	"github.com/n64go/n64pac/hardware/rcp"
	"github.com/n64go/n64pac/hardware/register"
)

// BaseAddress of the SI register block.
const BaseAddress = rcp.KSEG1 | rcp.SI

// Size of the SI register block in bytes.
const Size = 0x1c

// Registers is the layout of the SI register block.
type Registers struct {
	DRAMAddr register.RW[uint32]

	// writing a PIF address to one of these registers starts the transfer
	// in the direction and of the size in the name.
	PIFAddrRead64B  register.RW[uint32]
	PIFAddrWrite4B  register.RW[uint32]
	_               uint32
	PIFAddrWrite64B register.RW[uint32]
	PIFAddrRead4B   register.RW[uint32]

	Status register.RW[Status]
}

// At returns the SI register block at base.
//
// At is unsafe. The caller guarantees that base addresses memory with the
// layout of the SI register block and that it stays valid while the block is
// in use.
func At(base uintptr) *Registers {
	return register.At[Registers](base)
}

// New returns the SI register block at BaseAddress.
func New() *Registers {
	return At(BaseAddress)
}

// AcknowledgeInterrupt clears the SI interrupt. Any value written to the
// status register has this effect.
func (r *Registers) AcknowledgeInterrupt() {
	r.Status.Write(Status(0).WithWholeRegister(0))
}
