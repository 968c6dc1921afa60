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

package mi

import "github.com/n64go/n64pac/hardware/register"

// Source is one of the six interrupt sources handled by the MI.
type Source uint

// List of valid Source values.
const (
	SP Source = iota
	SI
	AI
	VI
	PI
	DP
	NumSources
)

func (s Source) String() string {
	switch s {
	case SP:
		return "SP"
	case SI:
		return "SI"
	case AI:
		return "AI"
	case VI:
		return "VI"
	case PI:
		return "PI"
	case DP:
		return "DP"
	}
	return "undefined"
}

// Interrupts is a set of interrupt sources, one bit per source. It is the
// value read from both the interrupt register (the pending interrupts) and
// the mask register (the enabled interrupts).
type Interrupts uint32

var interruptsLayout = register.Layout{
	register.Bit[Interrupts](uint(SP)).Named("sp"),
	register.Bit[Interrupts](uint(SI)).Named("si"),
	register.Bit[Interrupts](uint(AI)).Named("ai"),
	register.Bit[Interrupts](uint(VI)).Named("vi"),
	register.Bit[Interrupts](uint(PI)).Named("pi"),
	register.Bit[Interrupts](uint(DP)).Named("dp"),
}

// Has returns true if the source is in the set.
func (i Interrupts) Has(s Source) bool {
	return register.Bit[Interrupts](uint(s)).Get(i)
}

func (i Interrupts) SP() bool { return i.Has(SP) }
func (i Interrupts) SI() bool { return i.Has(SI) }
func (i Interrupts) AI() bool { return i.Has(AI) }
func (i Interrupts) VI() bool { return i.Has(VI) }
func (i Interrupts) PI() bool { return i.Has(PI) }
func (i Interrupts) DP() bool { return i.Has(DP) }

func (i Interrupts) String() string { return interruptsLayout.Format(uint64(i)) }

// MaskCommand is the value written to the mask register. Each source has a
// clear bit and a set bit, in that order, starting with SP at bit zero.
type MaskCommand uint32

// Clear adds the clear bit for the source to the command.
func (m MaskCommand) Clear(s Source) MaskCommand {
	return register.Bit[MaskCommand](uint(s)*2).Set(m, true)
}

// Set adds the set bit for the source to the command.
func (m MaskCommand) Set(s Source) MaskCommand {
	return register.Bit[MaskCommand](uint(s)*2+1).Set(m, true)
}

func (m MaskCommand) String() string {
	l := make(register.Layout, 0, NumSources*2)
	for s := SP; s < NumSources; s++ {
		l = append(l, register.Bit[MaskCommand](uint(s)*2).Named("clear_"+s.String()))
		l = append(l, register.Bit[MaskCommand](uint(s)*2+1).Named("set_"+s.String()))
	}
	return l.Format(uint64(m))
}
