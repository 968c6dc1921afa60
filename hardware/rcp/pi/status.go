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

package pi

import "github.com/n64go/n64pac/hardware/register"

// Status is the value read from the status register.
type Status uint32

var (
	statusDMABusy   = register.Bit[Status](0)
	statusIOBusy    = register.Bit[Status](1)
	statusDMAError  = register.Bit[Status](2)
	statusInterrupt = register.Bit[Status](3)

	statusLayout = register.Layout{
		statusDMABusy.Named("dma_busy"),
		statusIOBusy.Named("io_busy"),
		statusDMAError.Named("dma_error"),
		statusInterrupt.Named("interrupt"),
	}
)

func (s Status) DMABusy() bool   { return statusDMABusy.Get(s) }
func (s Status) IOBusy() bool    { return statusIOBusy.Get(s) }
func (s Status) DMAError() bool  { return statusDMAError.Get(s) }
func (s Status) Interrupt() bool { return statusInterrupt.Get(s) }

// Busy returns true if either a DMA transfer or an IO access is in progress.
func (s Status) Busy() bool { return s.DMABusy() || s.IOBusy() }

func (s Status) String() string { return statusLayout.Format(uint64(s)) }

// StatusCommand is the value written to the status register.
type StatusCommand uint32

var (
	cmdClearInterrupt = register.Bit[StatusCommand](0)
	cmdResetDMA       = register.Bit[StatusCommand](1)

	cmdLayout = register.Layout{
		cmdClearInterrupt.Named("clear_interrupt"),
		cmdResetDMA.Named("reset_dma"),
	}
)

// ClearInterrupt adds the acknowledgement of the PI interrupt to the
// command.
func (c StatusCommand) ClearInterrupt() StatusCommand {
	return cmdClearInterrupt.Set(c, true)
}

// ResetDMA adds a reset of the DMA controller to the command. Any transfer
// in progress is abandoned.
func (c StatusCommand) ResetDMA() StatusCommand {
	return cmdResetDMA.Set(c, true)
}

func (c StatusCommand) String() string { return cmdLayout.Format(uint64(c)) }
