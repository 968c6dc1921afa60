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

// RO is a read-only register cell.
type RO[T Value] struct {
	reg T
}

// Read the register.
func (r *RO[T]) Read() T {
	return load(&r.reg)
}

// WO is a write-only register cell.
type WO[T Value] struct {
	reg T
}

// Write v to the register.
func (r *WO[T]) Write(v T) {
	store(&r.reg, v)
}

// RW is a read/write register cell.
type RW[T Value] struct {
	reg T
}

// Read the register.
func (r *RW[T]) Read() T {
	return load(&r.reg)
}

// Write v to the register.
func (r *RW[T]) Write(v T) {
	store(&r.reg, v)
}

// Modify reads the register, passes the value to f and writes the result
// back.
//
// Modify is not atomic. An interrupt that writes to the same register after
// the read and before the write will have its value overwritten.
func (r *RW[T]) Modify(f func(T) T) {
	store(&r.reg, f(load(&r.reg)))
}

// Dual is a register cell where the bits mean one thing when read (type R)
// and something else when written (type W). R and W must be the same width.
//
// There is no Modify() because a value that has been read cannot be written
// back. A complete W value should be constructed for every write. Bits not
// defined by W are written as zero and are not preserved from a previous read.
type Dual[R Value, W Value] struct {
	reg R
}

// Read the register and interpret it with the read shape.
func (r *Dual[R, W]) Read() R {
	return load(&r.reg)
}

// Write the write shape to the register.
func (r *Dual[R, W]) Write(v W) {
	store(&r.reg, R(v))
}
