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

const validMemMap = `04300000 -> 0430000f	MI
04400000 -> 0440003f	VI
04500000 -> 04500017	AI
04600000 -> 04600033	PI
04800000 -> 0480001b	SI
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memory.Summary(), validMemMap)
}

func TestMapAddress(t *testing.T) {
	var offset uint32
	var area memory.Area

	// KSEG1
	offset, area = memory.MapAddress(0xa440_0004)
	test.ExpectEquality(t, area, memory.VI)
	test.ExpectEquality(t, offset, 4)

	// sign extended KSEG1
	offset, area = memory.MapAddress(0xffffffff_a480_0018)
	test.ExpectEquality(t, area, memory.SI)
	test.ExpectEquality(t, offset, 0x18)

	// KSEG0
	offset, area = memory.MapAddress(0x8430_000c)
	test.ExpectEquality(t, area, memory.MI)
	test.ExpectEquality(t, offset, 0x0c)

	// physical
	_, area = memory.MapAddress(0x0460_0030)
	test.ExpectEquality(t, area, memory.PI)

	// just past the last register of the area
	_, area = memory.MapAddress(0xa460_0034)
	test.ExpectEquality(t, area, memory.Undefined)

	// mapped segments and malformed 64 bit addresses
	_, area = memory.MapAddress(0xc440_0000)
	test.ExpectEquality(t, area, memory.Undefined)
	_, area = memory.MapAddress(0x00000001_a440_0000)
	test.ExpectEquality(t, area, memory.Undefined)

	test.ExpectSuccess(t, memory.IsArea(0xa450_0000, memory.AI))
	test.ExpectFailure(t, memory.IsArea(0xa450_0000, memory.VI))
}
