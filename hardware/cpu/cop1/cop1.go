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

// Package cop1 gives access to the control registers of the floating point
// unit. The floating point data registers are not registers in the sense of
// this module and are not covered.
package cop1

import "github.com/n64go/n64pac/hardware/cpu/cop"

// register indices. these are control register indices, moved with cfc1 and
// ctc1.
const (
	regRevision      cop.Index = 0
	regControlStatus cop.Index = 31
)

// ReadOnly lists the indices of the registers that cannot be written.
var ReadOnly = []cop.Index{regRevision}

// Cop1 is the accessor for the COP1 control registers.
type Cop1 struct {
	t cop.Transport
}

// New returns a Cop1 that uses the transport.
func New(t cop.Transport) Cop1 {
	return Cop1{t: t}
}

// Read32 moves control register idx to the CPU. The control registers are
// only ever moved 32 bits at a time.
func (c Cop1) Read32(idx cop.Index) uint32 { return cop.Read32[uint32](c.t, idx) }

// Write32 moves v to control register idx.
func (c Cop1) Write32(idx cop.Index, v uint32) { cop.Write32(c.t, idx, v) }

// Revision is read-only.
func (c Cop1) Revision() Revision { return cop.Read32[Revision](c.t, regRevision) }

func (c Cop1) ControlStatus() ControlStatus     { return cop.Read32[ControlStatus](c.t, regControlStatus) }
func (c Cop1) SetControlStatus(v ControlStatus) { cop.Write32(c.t, regControlStatus, v) }

// ModifyControlStatus is not atomic.
func (c Cop1) ModifyControlStatus(f func(ControlStatus) ControlStatus) {
	cop.Modify32(c.t, regControlStatus, f)
}
