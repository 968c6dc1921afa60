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

package hardware

import (
	"github.com/n64go/n64pac/hardware/cpu/cop"
	"github.com/n64go/n64pac/hardware/cpu/cop0"
	"github.com/n64go/n64pac/hardware/cpu/cop1"
	"github.com/n64go/n64pac/hardware/rcp/ai"
	"github.com/n64go/n64pac/hardware/rcp/mi"
	"github.com/n64go/n64pac/hardware/rcp/pi"
	"github.com/n64go/n64pac/hardware/rcp/si"
	"github.com/n64go/n64pac/hardware/rcp/vi"
)

// Platform says where the registers are. The base addresses must address
// memory with the layout of the corresponding register block and the
// transports must not be nil.
type Platform struct {
	MI uintptr
	VI uintptr
	AI uintptr
	PI uintptr
	SI uintptr

	COP0 cop.Transport
	COP1 cop.Transport
}

// N64 is the Platform of the real console. The transports are nil until they
// are set by the runtime of the target, which provides the move instructions.
var N64 = Platform{
	MI: mi.BaseAddress,
	VI: vi.BaseAddress,
	AI: ai.BaseAddress,
	PI: pi.BaseAddress,
	SI: si.BaseAddress,
}

// Hardware is the main container for the registers of the N64.
type Hardware struct {
	COP0 cop0.Cop0
	COP1 cop1.Cop1

	MI *mi.Registers
	VI *vi.Registers
	AI *ai.Registers
	PI *pi.Registers
	SI *si.Registers
}

// newHardware lays the register blocks over the addresses of the platform.
func newHardware(p Platform) *Hardware {
	return &Hardware{
		COP0: cop0.New(p.COP0),
		COP1: cop1.New(p.COP1),
		MI:   mi.At(p.MI),
		VI:   vi.At(p.VI),
		AI:   ai.At(p.AI),
		PI:   pi.At(p.PI),
		SI:   si.At(p.SI),
	}
}
