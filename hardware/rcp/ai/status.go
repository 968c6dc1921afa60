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

package ai

import "github.com/n64go/n64pac/hardware/register"

// Control is the AI control register.
type Control uint32

var controlDMAEnable = register.Bit[Control](0)

func (c Control) DMAEnable() bool              { return controlDMAEnable.Get(c) }
func (c Control) WithDMAEnable(b bool) Control { return controlDMAEnable.Set(c, b) }

// Status is the AI status register. All named fields are read-only. A write
// of any value to the register, through WithClearInterrupt(), acknowledges
// the interrupt.
type Status uint32

var (
	statusClearInterrupt = register.All[Status]()

	// bit 31 also reports full. bit 0 is cheaper to test
	statusFull          = register.Bit[Status](0)
	statusDACCounter    = register.Bits[Status](1, 14)
	statusBitClock      = register.Bit[Status](16)
	statusABusWord2     = register.Bit[Status](19)
	statusWordSelect    = register.Bit[Status](21)
	statusDataAvailable = register.Bit[Status](22)
	statusDFIFO2Loaded  = register.Bit[Status](23)
	statusDMAEnable     = register.Bit[Status](25)
	statusDMARequest    = register.Bit[Status](26)
	statusDMABusy       = register.Bit[Status](27)
	statusBusy          = register.Bit[Status](30)

	statusLayout = register.Layout{
		statusFull.Named("full"),
		statusDACCounter.Named("dac_cntr"),
		statusBitClock.Named("bitclock"),
		statusABusWord2.Named("abus_word_2"),
		statusWordSelect.Named("word_select"),
		statusDataAvailable.Named("data_available"),
		statusDFIFO2Loaded.Named("dfifo2_loaded"),
		statusDMAEnable.Named("dma_enable"),
		statusDMARequest.Named("dma_request"),
		statusDMABusy.Named("dma_busy"),
		statusBusy.Named("busy"),
	}
)

// WithClearInterrupt replaces the whole register with v.
func (s Status) WithClearInterrupt(v uint32) Status {
	return statusClearInterrupt.Set(s, Status(v))
}

// Full returns true if both entries of the DMA queue are in use.
func (s Status) Full() bool { return statusFull.Get(s) }

func (s Status) DACCounter() uint16 { return uint16(statusDACCounter.Get(s)) }

func (s Status) BitClock() bool      { return statusBitClock.Get(s) }
func (s Status) ABusWord2() bool     { return statusABusWord2.Get(s) }
func (s Status) WordSelect() bool    { return statusWordSelect.Get(s) }
func (s Status) DataAvailable() bool { return statusDataAvailable.Get(s) }
func (s Status) DFIFO2Loaded() bool  { return statusDFIFO2Loaded.Get(s) }
func (s Status) DMAEnable() bool     { return statusDMAEnable.Get(s) }
func (s Status) DMARequest() bool    { return statusDMARequest.Get(s) }
func (s Status) DMABusy() bool       { return statusDMABusy.Get(s) }
func (s Status) Busy() bool          { return statusBusy.Get(s) }

func (s Status) String() string { return statusLayout.Format(uint64(s)) }
