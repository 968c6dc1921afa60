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

package register

import (
	"fmt"
	"strings"
	"unsafe"
)

// Field is a numeric sub-range of bits in a register value of type V.
type Field[V Value] struct {
	Shift uint
	Width uint
}

// Bits creates a Field for the inclusive bit range lo to hi. For example, the
// field in bits 1 and 2 of a 32 bit register is:
//
//	Bits[uint32](1, 2)
func Bits[V Value](lo, hi uint) Field[V] {
	return Field[V]{Shift: lo, Width: hi - lo + 1}
}

// All creates a Field that covers the entire register. Used for registers
// where writing any value has an effect, alongside the named fields used when
// reading.
func All[V Value]() Field[V] {
	var v V
	return Field[V]{Width: uint(unsafe.Sizeof(v)) * 8}
}

// bits returns a value with the lowest Width bits set. for a width of 64 the
// shift results in zero and the subtraction wraps to all bits set.
func (f Field[V]) bits() V {
	return V(uint64(1)<<f.Width - 1)
}

// Mask returns a register value with every bit of the field set.
func (f Field[V]) Mask() V {
	return f.bits() << f.Shift
}

// Get the field from register value r.
func (f Field[V]) Get(r V) V {
	return r >> f.Shift & f.bits()
}

// Set the field in register value r to v. Bits outside the field are
// preserved. Bits of v that don't fit in the field are discarded.
func (f Field[V]) Set(r V, v V) V {
	return r&^f.Mask() | v<<f.Shift&f.Mask()
}

// Put returns a register value with the field set to v and every other bit
// clear.
func (f Field[V]) Put(v V) V {
	return f.Set(0, v)
}

// Named attaches a name to the field for the purposes of display.
func (f Field[V]) Named(name string) Named {
	return Named{Name: name, Shift: f.Shift, Width: f.Width}
}

// Flag is a single bit field in a register value of type V.
type Flag[V Value] struct {
	Bit uint
}

// Bit creates a Flag for bit n.
func Bit[V Value](n uint) Flag[V] {
	return Flag[V]{Bit: n}
}

// Mask returns a register value with only the flag's bit set.
func (f Flag[V]) Mask() V {
	return V(1) << f.Bit
}

// Get returns true if the flag is set in register value r.
func (f Flag[V]) Get(r V) bool {
	return r&f.Mask() != 0
}

// Set the flag in register value r. Other bits are preserved.
func (f Flag[V]) Set(r V, b bool) V {
	if b {
		return r | f.Mask()
	}
	return r &^ f.Mask()
}

// Put returns a register value with only the flag's bit set (or no bits set).
func (f Flag[V]) Put(b bool) V {
	return f.Set(0, b)
}

// Named attaches a name to the flag for the purposes of display.
func (f Flag[V]) Named(name string) Named {
	return Named{Name: name, Shift: f.Bit, Width: 1}
}

// Named is a field with a name but without a register type. A list of Named
// fields describes a register well enough for it to be printed.
type Named struct {
	Name  string
	Shift uint
	Width uint
}

// Layout is the list of fields in a register, in the order they should be
// displayed. Fields may overlap.
type Layout []Named

// Format the raw register value as a list of fields. Single bit fields are
// shown as 0 or 1, wider fields in hex.
func (l Layout) Format(raw uint64) string {
	s := strings.Builder{}
	for i, n := range l {
		if i > 0 {
			s.WriteRune(' ')
		}
		v := raw >> n.Shift & (uint64(1)<<n.Width - 1)
		if n.Width == 1 {
			s.WriteString(fmt.Sprintf("%s=%d", n.Name, v))
		} else {
			s.WriteString(fmt.Sprintf("%s=%#x", n.Name, v))
		}
	}
	return s.String()
}
