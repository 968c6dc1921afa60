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

package memory_test

import (
	"testing"

	"github.com/n64go/n64pac/hardware/memory"
	"github.com/n64go/n64pac/test"
)

func TestSymbols(t *testing.T) {
	// every symbol is at a register within an area
	for address, name := range memory.CanonicalSymbols {
		offset, area := memory.MapAddress(uint64(address))
		test.ExpectInequality(t, area, memory.Undefined, name)
		test.ExpectEquality(t, offset%4, 0, name)
	}
}

func TestLookup(t *testing.T) {
	s, ok := memory.Lookup("vi_origin")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.Name, "VI_ORIGIN")
	test.ExpectEquality(t, s.Area, memory.VI)
	test.ExpectEquality(t, s.Offset, 4)
	test.ExpectEquality(t, s.Address, 0x0440_0004)

	s, ok = memory.Lookup("SI_STATUS")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, s.Offset, 0x18)

	_, ok = memory.Lookup("SI_RESERVED")
	test.ExpectFailure(t, ok)
}
