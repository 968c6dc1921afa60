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

package register_test

import (
	"testing"
	"unsafe"

	"github.com/n64go/n64pac/hardware/register"
	"github.com/n64go/n64pac/test"
)

type status uint32

type command uint32

type block struct {
	Version register.RO[uint32]
	Mode    register.RW[uint32]
	Clear   register.WO[uint32]
	Status  register.Dual[status, command]
	Word    register.RW[uint64]
	Short   register.RW[uint16]
	Byte    register.RW[uint8]
}

func TestCellSize(t *testing.T) {
	var b block
	test.ExpectEquality(t, unsafe.Sizeof(b.Version), 4)
	test.ExpectEquality(t, unsafe.Sizeof(b.Status), 4)
	test.ExpectEquality(t, unsafe.Sizeof(b.Word), 8)
	test.ExpectEquality(t, unsafe.Offsetof(b.Status), 12)
	test.ExpectEquality(t, unsafe.Offsetof(b.Word), 16)
}

func TestCellAt(t *testing.T) {
	mem := make([]uint32, 10)
	b := register.At[block](uintptr(unsafe.Pointer(&mem[0])))

	mem[0] = 0x0202
	test.ExpectEquality(t, b.Version.Read(), 0x0202)

	b.Mode.Write(0xa)
	test.ExpectEquality(t, mem[1], 0xa)
	test.ExpectEquality(t, register.Bits[uint32](1, 2).Get(b.Mode.Read()), 0b01)

	b.Clear.Write(0xffffffff)
	test.ExpectEquality(t, mem[2], 0xffffffff)

	b.Word.Write(0x1122334455667788)
	test.ExpectEquality(t, b.Word.Read(), 0x1122334455667788)

	b.Short.Write(0xbeef)
	test.ExpectEquality(t, b.Short.Read(), 0xbeef)
	b.Byte.Write(0x7f)
	test.ExpectEquality(t, b.Byte.Read(), 0x7f)
}

func TestModify(t *testing.T) {
	var b block

	b.Mode.Write(0x1234)
	b.Mode.Modify(func(v uint32) uint32 { return v })
	test.ExpectEquality(t, b.Mode.Read(), 0x1234)

	b.Mode.Modify(func(v uint32) uint32 { return register.Bit[uint32](31).Set(v, true) })
	test.ExpectEquality(t, b.Mode.Read(), 0x80001234)
}

func TestDual(t *testing.T) {
	var b block

	// whatever is written, the read shape depends only on the stored bits
	b.Status.Write(command(0x0c))
	test.ExpectEquality(t, b.Status.Read(), status(0x0c))
	b.Status.Write(command(0))
	test.ExpectEquality(t, b.Status.Read(), status(0))
}
