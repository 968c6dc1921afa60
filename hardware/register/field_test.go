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
	"math/rand/v2"
	"testing"

	"github.com/n64go/n64pac/hardware/register"
	"github.com/n64go/n64pac/test"
)

func TestFieldBits(t *testing.T) {
	f := register.Bits[uint32](1, 2)
	test.ExpectEquality(t, f.Shift, 1)
	test.ExpectEquality(t, f.Width, 2)
	test.ExpectEquality(t, f.Mask(), 0b110)
	test.ExpectEquality(t, f.Get(0xa), 0b01)
	test.ExpectEquality(t, f.Set(0xa, 0b10), 0xc)
	test.ExpectEquality(t, f.Put(0b11), 0b110)

	// too wide for the field
	test.ExpectEquality(t, f.Put(0xff), 0b110)
}

func TestFieldAll(t *testing.T) {
	f32 := register.All[uint32]()
	test.ExpectEquality(t, f32.Mask(), 0xffffffff)
	test.ExpectEquality(t, f32.Get(0xdeadbeef), 0xdeadbeef)

	f64 := register.All[uint64]()
	test.ExpectEquality(t, f64.Mask(), 0xffffffffffffffff)
	test.ExpectEquality(t, f64.Set(0x1234, 0xffffffff00000000), 0xffffffff00000000)

	f8 := register.All[uint8]()
	test.ExpectEquality(t, f8.Mask(), 0xff)
}

func TestFieldRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(0x6e36, 0x3470))

	for range 1000 {
		lo := uint(rng.IntN(64))
		hi := lo + uint(rng.IntN(64-int(lo)))
		f := register.Bits[uint64](lo, hi)

		r := rng.Uint64()
		v := rng.Uint64()
		s := f.Set(r, v)

		// the field holds the truncated value
		test.ExpectEquality(t, f.Get(s), v&(f.Mask()>>f.Shift))

		// bits outside the field are untouched
		test.ExpectEquality(t, s&^f.Mask(), r&^f.Mask())
	}
}

func TestFieldIsolation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	a := register.Bits[uint32](0, 6)
	b := register.Bits[uint32](7, 7)
	c := register.Bits[uint32](16, 31)

	for range 100 {
		r := rng.Uint32()
		test.ExpectEquality(t, b.Get(a.Set(r, rng.Uint32())), b.Get(r))
		test.ExpectEquality(t, c.Get(a.Set(r, rng.Uint32())), c.Get(r))
		test.ExpectEquality(t, a.Get(c.Set(r, rng.Uint32())), a.Get(r))
	}
}

func TestFlag(t *testing.T) {
	f := register.Bit[uint16](15)
	test.ExpectEquality(t, f.Mask(), 0x8000)
	test.ExpectSuccess(t, f.Get(0x8000))
	test.ExpectFailure(t, f.Get(0x7fff))
	test.ExpectEquality(t, f.Set(0x0001, true), 0x8001)
	test.ExpectEquality(t, f.Set(0xffff, false), 0x7fff)
	test.ExpectEquality(t, f.Put(true), 0x8000)
	test.ExpectEquality(t, f.Put(false), 0)
}

func TestLayout(t *testing.T) {
	l := register.Layout{
		register.Bit[uint32](0).Named("ie"),
		register.Bits[uint32](3, 4).Named("ksu"),
		register.Bits[uint32](8, 15).Named("im"),
	}
	test.ExpectEquality(t, l.Format(0x0000ff19), "ie=1 ksu=0x3 im=0xff")
	test.ExpectEquality(t, l.Format(0), "ie=0 ksu=0x0 im=0x0")
	test.ExpectEquality(t, register.Layout{}.Format(0xffff), "")
}
