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

// Package ai describes the Audio Interface register block. The AI fetches
// samples from RDRAM by DMA and feeds them to the audio DAC.
//
// The package level functions address the block at BaseAddress directly and
// bypass the claim made by hardware.Take().
package ai

import (
	"github.com/n64go/n64pac/hardware/rcp"
	"github.com/n64go/n64pac/hardware/register"
)

// BaseAddress of the AI register block.
const BaseAddress = rcp.KSEG1 | rcp.AI

// Size of the AI register block in bytes.
const Size = 0x18

// Registers is the layout of the AI register block.
type Registers struct {
	DRAMAddr register.WO[uint32]

	// Length of the DMA transfer in bytes. Writing the length starts the
	// transfer.
	Length register.RW[uint32]

	Control register.WO[Control]
	Status  register.RW[Status]

	// DACRate is the number of VI clock cycles per sample, minus one.
	DACRate register.WO[uint32]

	// BitRate is the number of DAC clock cycles per bit, minus one.
	BitRate register.WO[uint32]
}

// At returns the AI register block at base.
//
// At is unsafe. The caller guarantees that base addresses memory with the
// layout of the AI register block and that it stays valid while the block is
// in use.
func At(base uintptr) *Registers {
	return register.At[Registers](base)
}

// New returns the AI register block at BaseAddress.
func New() *Registers {
	return At(BaseAddress)
}

// AcknowledgeInterrupt clears the AI interrupt. Any value written to the
// status register has this effect.
func (r *Registers) AcknowledgeInterrupt() {
	r.Status.Write(Status(0).WithClearInterrupt(0))
}
