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

package memory

import (
	"github.com/n64go/n64pac/curated"
	"github.com/n64go/n64pac/logger"
)

// Error patterns for Region.
const (
	RegionSize  = "region: size must be greater than zero"
	RegionAlloc = "region: allocate: %v"
	RegionFree  = "region: free: %v"
)

// Region is a block of zeroed memory that will not be moved or collected by
// the garbage collector. The base of a Region is aligned to at least eight
// bytes so it can hold a register block of any width.
type Region struct {
	data []byte
	base uintptr
}

// NewRegion allocates a Region of the size in bytes.
func NewRegion(size uintptr) (*Region, error) {
	if size == 0 {
		return nil, curated.Errorf(RegionSize)
	}

	data, err := allocate(size)
	if err != nil {
		return nil, curated.Errorf(RegionAlloc, err)
	}

	r := &Region{
		data: data,
		base: baseOf(data),
	}
	logger.Logf(logger.Allow, "memory", "allocated region of %d bytes", size)

	return r, nil
}

// Base returns the address of the first byte of the region.
func (r *Region) Base() uintptr {
	return r.base
}

// Size returns the number of bytes in the region.
func (r *Region) Size() uintptr {
	return uintptr(len(r.data))
}

// Bytes returns the memory of the region as a slice.
func (r *Region) Bytes() []byte {
	return r.data
}

// Close releases the memory. The region and any register block laid over it
// must not be used afterwards.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	err := free(r.data)
	r.data = nil
	r.base = 0
	if err != nil {
		return curated.Errorf(RegionFree, err)
	}
	return nil
}
