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

package cop_test

import (
	"testing"

	"github.com/n64go/n64pac/hardware/cpu/cop"
	"github.com/n64go/n64pac/test"
)

// recorder is a Transport that remembers the order of the moves.
type recorder struct {
	cop.File
	moves []string
}

func (r *recorder) Move64From(idx cop.Index) (uint32, uint32) {
	r.moves = append(r.moves, "from64")
	return r.File.Move64From(idx)
}

func (r *recorder) Move64To(idx cop.Index, hi uint32, lo uint32) {
	r.moves = append(r.moves, "to64")
	r.File.Move64To(idx, hi, lo)
}

type word uint32

type dword uint64

func TestComposition(t *testing.T) {
	f := cop.NewFile()

	cop.Write64(f, 14, dword(0xffffffff_80001234))
	hi, lo := f.Move64From(14)
	test.ExpectEquality(t, hi, 0xffffffff)
	test.ExpectEquality(t, lo, 0x80001234)
	test.ExpectEquality(t, cop.Read64[dword](f, 14), 0xffffffff_80001234)

	// a 32 bit read sees only the low word
	test.ExpectEquality(t, cop.Read32[word](f, 14), 0x80001234)

	// and a 32 bit write replaces all of it
	cop.Write32(f, 14, word(0x55))
	test.ExpectEquality(t, f.Peek(14), 0x55)
}

func TestModify(t *testing.T) {
	r := &recorder{}

	cop.Write64(r, 20, dword(0x0123456789abcdef))
	cop.Modify64(r, 20, func(v dword) dword { return v })
	test.ExpectEquality(t, r.Peek(20), 0x0123456789abcdef)

	cop.Modify64(r, 20, func(v dword) dword { return v &^ 0xf })
	test.ExpectEquality(t, cop.Read64[dword](r, 20), 0x0123456789abcde0)

	// a modify is exactly one read followed by one write
	test.ExpectEquality(t, len(r.moves), 6)
	test.ExpectEquality(t, r.moves[3], "from64")
	test.ExpectEquality(t, r.moves[4], "to64")

	cop.Write32(r, 12, word(0x1))
	cop.Modify32(r, 12, func(v word) word { return v | 0x2 })
	test.ExpectEquality(t, cop.Read32[word](r, 12), 0x3)
}

func TestProtect(t *testing.T) {
	f := cop.NewFile()
	f.Protect(15)
	test.ExpectSuccess(t, f.IsProtected(15))
	test.ExpectFailure(t, f.IsProtected(16))

	f.Load(15, 0x0b22)
	cop.Write32(f, 15, word(0))
	cop.Write64(f, 15, dword(0))
	test.ExpectEquality(t, cop.Read32[word](f, 15), 0x0b22)

	f.Reset()
	test.ExpectEquality(t, f.Peek(15), 0)
	test.ExpectSuccess(t, f.IsProtected(15))
}
