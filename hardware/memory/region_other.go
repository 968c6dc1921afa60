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

//go:build !unix

package memory

import (
	"sync"
	"unsafe"
)

// without mmap the region is allocated from the heap. the garbage collector
// does not move heap objects but it will collect one if the only reference is
// a uintptr. the pinned map keeps a reference for as long as the region is
// open.
var pinned sync.Map

func allocate(size uintptr) ([]byte, error) {
	// allocating as uint64 guarantees eight byte alignment
	words := make([]uint64, (size+7)/8)
	data := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
	pinned.Store(&words[0], words)
	return data, nil
}

func free(data []byte) error {
	pinned.Delete((*uint64)(unsafe.Pointer(&data[0])))
	return nil
}

func baseOf(data []byte) uintptr {
	return uintptr(unsafe.Pointer(&data[0]))
}
