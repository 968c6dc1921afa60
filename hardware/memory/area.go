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
	"github.com/n64go/n64pac/hardware/rcp"
	"github.com/n64go/n64pac/hardware/rcp/ai"
	"github.com/n64go/n64pac/hardware/rcp/mi"
	"github.com/n64go/n64pac/hardware/rcp/pi"
	"github.com/n64go/n64pac/hardware/rcp/si"
	"github.com/n64go/n64pac/hardware/rcp/vi"
)

// Area represents the different register blocks in the address space.
type Area int

// The different areas in the address space.
const (
	Undefined Area = iota
	MI
	VI
	AI
	PI
	SI
)

// Areas lists every defined area in address order.
var Areas = []Area{MI, VI, AI, PI, SI}

func (a Area) String() string {
	switch a {
	case MI:
		return "MI"
	case VI:
		return "VI"
	case AI:
		return "AI"
	case PI:
		return "PI"
	case SI:
		return "SI"
	}
	return "undefined"
}

// The origin and memory top of each area as a physical address. Only the
// addresses that are occupied by registers are included.
const (
	OriginMI = uint32(rcp.MI)
	MemtopMI = OriginMI + mi.Size - 1
	OriginVI = uint32(rcp.VI)
	MemtopVI = OriginVI + vi.Size - 1
	OriginAI = uint32(rcp.AI)
	MemtopAI = OriginAI + ai.Size - 1
	OriginPI = uint32(rcp.PI)
	MemtopPI = OriginPI + pi.Size - 1
	OriginSI = uint32(rcp.SI)
	MemtopSI = OriginSI + si.Size - 1
)

// Origin returns the first physical address of the area.
func (a Area) Origin() uint32 {
	switch a {
	case MI:
		return OriginMI
	case VI:
		return OriginVI
	case AI:
		return OriginAI
	case PI:
		return OriginPI
	case SI:
		return OriginSI
	}
	return 0
}

// Memtop returns the last physical address of the area.
func (a Area) Memtop() uint32 {
	switch a {
	case MI:
		return MemtopMI
	case VI:
		return MemtopVI
	case AI:
		return MemtopAI
	case PI:
		return MemtopPI
	case SI:
		return MemtopSI
	}
	return 0
}

// Size returns the number of bytes in the area.
func (a Area) Size() uint32 {
	if a == Undefined {
		return 0
	}
	return a.Memtop() - a.Origin() + 1
}

// Physical converts a virtual address in KSEG0 or KSEG1 to a physical
// address. Addresses below 0x20000000 are already physical and are returned
// unchanged. Addresses may be 32 bit or sign extended to 64 bit.
//
// Addresses in the TLB mapped segments can't be converted.
func Physical(address uint64) (uint32, bool) {
	switch address >> 32 {
	case 0, 0xffffffff:
		// the high word of a sign extended address carries no information
	default:
		return 0, false
	}

	a := uint32(address)

	// KSEG0 (0x80000000) and KSEG1 (0xa0000000) are both direct views of the
	// lowest 512MB of the physical address space
	if a&0xc000_0000 == 0x8000_0000 {
		return a & 0x1fff_ffff, true
	}

	if a < 0x2000_0000 {
		return a, true
	}

	return 0, false
}

// MapAddress returns the area containing the address and the offset of the
// address from the origin of the area. If the address is not in any area
// then the area is Undefined.
func MapAddress(address uint64) (uint32, Area) {
	p, ok := Physical(address)
	if !ok {
		return 0, Undefined
	}

	for _, a := range Areas {
		if p >= a.Origin() && p <= a.Memtop() {
			return p - a.Origin(), a
		}
	}

	return 0, Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint64, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
