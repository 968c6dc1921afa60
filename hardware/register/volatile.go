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
	"sync/atomic"
	"unsafe"
)

// Value is the set of types that can be stored in a register. Register types
// in the device packages are defined on one of these, for example:
//
//	type Ctrl uint32
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// load performs exactly one access of the width of T. the sync/atomic
// functions are used for 32 and 64 bit registers because the compiler will
// never remove, combine or reorder them.
func load[T Value](p *T) T {
	switch unsafe.Sizeof(*p) {
	case 8:
		return T(atomic.LoadUint64((*uint64)(unsafe.Pointer(p))))
	case 4:
		return T(atomic.LoadUint32((*uint32)(unsafe.Pointer(p))))
	case 2:
		return T(load16((*uint16)(unsafe.Pointer(p))))
	}
	return T(load8((*uint8)(unsafe.Pointer(p))))
}

// store performs exactly one access of the width of T.
func store[T Value](p *T, v T) {
	switch unsafe.Sizeof(*p) {
	case 8:
		atomic.StoreUint64((*uint64)(unsafe.Pointer(p)), uint64(v))
	case 4:
		atomic.StoreUint32((*uint32)(unsafe.Pointer(p)), uint32(v))
	case 2:
		store16((*uint16)(unsafe.Pointer(p)), uint16(v))
	default:
		store8((*uint8)(unsafe.Pointer(p)), uint8(v))
	}
}

// there are no 8 or 16 bit functions in sync/atomic. keeping these functions
// out of line is enough to stop the compiler from eliding them.

//go:noinline
func load8(p *uint8) uint8 { return *p }

//go:noinline
func load16(p *uint16) uint16 { return *p }

//go:noinline
func store8(p *uint8, v uint8) { *p = v }

//go:noinline
func store16(p *uint16, v uint16) { *p = v }

// At reinterprets addr as a value of type T. It is used to lay a block of
// register cells over the memory at addr.
//
// At is unsafe. The caller must guarantee that addr points to memory that
// really has the layout of T, that the memory stays valid for as long as the
// returned pointer is used and that the same memory is not also being
// interpreted as a different layout.
func At[T any](addr uintptr) *T {
	return (*T)(unsafe.Pointer(addr))
}
