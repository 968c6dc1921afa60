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

package si

import "github.com/n64go/n64pac/hardware/register"

// Status is the SI status register. Only the interrupt bit can be
// meaningfully written, and then only by writing the whole register.
type Status uint32

var (
	statusWholeRegister = register.All[Status]()

	statusDMABusy     = register.Bit[Status](0)
	statusIOBusy      = register.Bit[Status](1)
	statusReadPending = register.Bit[Status](2)
	statusDMAError    = register.Bit[Status](3)
	statusPCHState    = register.Bits[Status](4, 7)
	statusDMAState    = register.Bits[Status](8, 11)
	statusInterrupt   = register.Bit[Status](12)

	statusLayout = register.Layout{
		statusDMABusy.Named("dma_busy"),
		statusIOBusy.Named("io_busy"),
		statusReadPending.Named("read_pending"),
		statusDMAError.Named("dma_error"),
		statusPCHState.Named("pch_state"),
		statusDMAState.Named("dma_state"),
		statusInterrupt.Named("interrupt"),
	}
)

// WithWholeRegister replaces the whole register with v.
func (s Status) WithWholeRegister(v uint32) Status {
	return statusWholeRegister.Set(s, Status(v))
}

func (s Status) DMABusy() bool     { return statusDMABusy.Get(s) }
func (s Status) IOBusy() bool      { return statusIOBusy.Get(s) }
func (s Status) ReadPending() bool { return statusReadPending.Get(s) }
func (s Status) DMAError() bool    { return statusDMAError.Get(s) }
func (s Status) PCHState() uint8   { return uint8(statusPCHState.Get(s)) }
func (s Status) DMAState() uint8   { return uint8(statusDMAState.Get(s)) }
func (s Status) Interrupt() bool   { return statusInterrupt.Get(s) }

func (s Status) WithInterrupt(b bool) Status { return statusInterrupt.Set(s, b) }

func (s Status) String() string { return statusLayout.Format(uint64(s)) }
