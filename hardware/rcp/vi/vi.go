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

// Package vi describes the Video Interface register block. The VI reads the
// framebuffer from RDRAM and produces the video signal.
//
// The package level functions ReadCtrl(), SetCtrl(), ModifyCtrl() and so on
// address the block at BaseAddress without going through the claim in the
// hardware package.
package vi

import (
	"github.com/n64go/n64pac/hardware/rcp"
	"github.com/n64go/n64pac/hardware/register"
)

// BaseAddress of the VI register block.
const BaseAddress = rcp.KSEG1 | rcp.VI

// Size of the VI register block in bytes.
const Size = 0x40

// Registers is the layout of the VI register block.
type Registers struct {
	Ctrl register.RW[Ctrl]

	// Origin is the RDRAM address of the framebuffer.
	Origin register.RW[uint32]

	// Width of the framebuffer in pixels.
	Width register.RW[uint32]

	// VIntr is the half-line on which the VI interrupt is raised.
	VIntr register.RW[uint32]

	// VCurrent is the current half-line. Writing to it acknowledges the VI
	// interrupt.
	VCurrent register.RW[uint32]

	Burst     register.RW[Burst]
	VSync     register.RW[uint32]
	HSync     register.RW[HSync]
	HSyncLeap register.RW[HSyncLeap]
	HVideo    register.RW[Span]
	VVideo    register.RW[Span]
	VBurst    register.RW[Span]
	XScale    register.RW[Scale]
	YScale    register.RW[Scale]

	TestAddr   register.RW[uint32]
	StagedData register.RW[uint32]
}

// At returns the VI register block at base.
//
// At is unsafe. The caller guarantees that base addresses memory with the
// layout of the VI register block and that it stays valid while the block is
// in use.
func At(base uintptr) *Registers {
	return register.At[Registers](base)
}

// New returns the VI register block at BaseAddress.
func New() *Registers {
	return At(BaseAddress)
}
