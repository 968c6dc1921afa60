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

package rcp_test

import (
	"testing"
	"unsafe"

	"github.com/n64go/n64pac/hardware/rcp"
	"github.com/n64go/n64pac/test"
)

func TestKSEG1(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		test.ExpectEquality(t, uint64(rcp.Uncached(rcp.VI)), 0xffffffff_a440_0000)
	} else {
		test.ExpectEquality(t, uint64(rcp.Uncached(rcp.VI)), 0xa440_0000)
	}

	// the low word is the same on every target
	k := rcp.KSEG1
	test.ExpectEquality(t, uint32(k), 0xa000_0000)
}
