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

// Package register implements the primitives from which every hardware
// register in n64pac is built.
//
// There are two halves to the package. The first half is the field codec:
// Field, Flag and Enum describe a sub-range of bits inside a register value
// and convert between the raw value and the logical value of the field. None
// of the codec functions can fail. Values that are too wide for a field are
// truncated, in the same way the hardware truncates them, and bit patterns
// that an Enum does not recognise decode to the Enum's default value.
//
//	depth := register.NewEnum(register.Bits[uint32](0, 1), Blank, Blank, BPP16, BPP32)
//	v := depth.Set(raw, BPP32)
//
// The second half is the register cell: RO, WO and RW wrap exactly one value
// in memory and have exactly the size of that value. This means that a struct
// of cells can be laid over a block of memory mapped registers:
//
//	type Registers struct {
//		Ctrl   register.RW[Ctrl]
//		Origin register.RW[uint32]
//	}
//
//	vi := register.At[Registers](baseAddress)
//	vi.Ctrl.Modify(func(c Ctrl) Ctrl { return c.WithDepth(BPP32) })
//
// Every Read() is a single load and every Write() is a single store. The
// accesses are never elided, merged or cached. Modify() however, is a load
// followed by a store and is not atomic. If an interrupt handler writes to the
// same register between the load and the store then the handler's value is
// lost. Either mask interrupts around the Modify() or make sure that the
// register is only ever written from one context.
//
// The Dual type is for registers where the meaning of the bits depends on
// whether the register is being read or written. The read shape and the write
// shape are different types and there is no Modify() for a Dual register.
package register
