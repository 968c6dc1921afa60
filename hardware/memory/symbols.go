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

import "strings"

// CanonicalSymbols lists every register address along with the canonical
// name for that address. The addresses are physical.
var CanonicalSymbols = map[uint32]string{
	// MI
	0x0430_0000: "MI_MODE",
	0x0430_0004: "MI_VERSION",
	0x0430_0008: "MI_INTR",
	0x0430_000c: "MI_INTR_MASK",

	// VI
	0x0440_0000: "VI_CTRL",
	0x0440_0004: "VI_ORIGIN",
	0x0440_0008: "VI_WIDTH",
	0x0440_000c: "VI_V_INTR",
	0x0440_0010: "VI_V_CURRENT",
	0x0440_0014: "VI_BURST",
	0x0440_0018: "VI_V_SYNC",
	0x0440_001c: "VI_H_SYNC",
	0x0440_0020: "VI_H_SYNC_LEAP",
	0x0440_0024: "VI_H_VIDEO",
	0x0440_0028: "VI_V_VIDEO",
	0x0440_002c: "VI_V_BURST",
	0x0440_0030: "VI_X_SCALE",
	0x0440_0034: "VI_Y_SCALE",
	0x0440_0038: "VI_TEST_ADDR",
	0x0440_003c: "VI_STAGED_DATA",

	// AI
	0x0450_0000: "AI_DRAM_ADDR",
	0x0450_0004: "AI_LENGTH",
	0x0450_0008: "AI_CONTROL",
	0x0450_000c: "AI_STATUS",
	0x0450_0010: "AI_DACRATE",
	0x0450_0014: "AI_BITRATE",

	// PI
	0x0460_0000: "PI_DRAM_ADDR",
	0x0460_0004: "PI_CART_ADDR",
	0x0460_0008: "PI_RD_LEN",
	0x0460_000c: "PI_WR_LEN",
	0x0460_0010: "PI_STATUS",
	0x0460_0014: "PI_BSD_DOM1_LAT",
	0x0460_0018: "PI_BSD_DOM1_PWD",
	0x0460_001c: "PI_BSD_DOM1_PGS",
	0x0460_0020: "PI_BSD_DOM1_RLS",
	0x0460_0024: "PI_BSD_DOM2_LAT",
	0x0460_0028: "PI_BSD_DOM2_PWD",
	0x0460_002c: "PI_BSD_DOM2_PGS",
	0x0460_0030: "PI_BSD_DOM2_RLS",

	// SI
	0x0480_0000: "SI_DRAM_ADDR",
	0x0480_0004: "SI_PIF_AD_RD64B",
	0x0480_0008: "SI_PIF_AD_WR4B",
	0x0480_0010: "SI_PIF_AD_WR64B",
	0x0480_0014: "SI_PIF_AD_RD4B",
	0x0480_0018: "SI_STATUS",
}

// Symbol is the location of a named register.
type Symbol struct {
	Name    string
	Address uint32
	Area    Area
	Offset  uint32
}

// symbols is CanonicalSymbols indexed by name. map lookups by name are what
// the monitor needs.
var symbols map[string]Symbol

func init() {
	symbols = make(map[string]Symbol, len(CanonicalSymbols))
	for address, name := range CanonicalSymbols {
		offset, area := MapAddress(uint64(address))
		symbols[name] = Symbol{
			Name:    name,
			Address: address,
			Area:    area,
			Offset:  offset,
		}
	}
}

// Lookup the register with the name. The name is not case sensitive.
func Lookup(name string) (Symbol, bool) {
	s, ok := symbols[strings.ToUpper(name)]
	return s, ok
}
