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

// Mode is the value read from the mode register.
type Mode uint32

var (
	modeInitLength   = register.Bits[Mode](0, 6)
	modeInitMode     = register.Bit[Mode](7)
	modeEbusTest     = register.Bit[Mode](8)
	modeRDRAMRegMode = register.Bit[Mode](9)

	modeLayout = register.Layout{
		modeInitLength.Named("init_length"),
		modeInitMode.Named("init_mode"),
		modeEbusTest.Named("ebus_test"),
		modeRDRAMRegMode.Named("rdram_reg_mode"),
	}
)

// InitLength is the number of bytes, minus one, to be repeated when init
// mode is active.
func (m Mode) InitLength() uint32 { return uint32(modeInitLength.Get(m)) }

// InitMode returns true if the RDRAM init mode is active.
func (m Mode) InitMode() bool { return modeInitMode.Get(m) }

func (m Mode) EbusTest() bool { return modeEbusTest.Get(m) }

func (m Mode) RDRAMRegMode() bool { return modeRDRAMRegMode.Get(m) }

func (m Mode) String() string { return modeLayout.Format(uint64(m)) }

// ModeCommand is the value written to the mode register. The set and clear
// bits of the pairs should not both be set in the same command.
type ModeCommand uint32

var (
	modeCmdInitLength     = register.Bits[ModeCommand](0, 6)
	modeCmdClearInit      = register.Bit[ModeCommand](7)
	modeCmdSetInit        = register.Bit[ModeCommand](8)
	modeCmdClearEbus      = register.Bit[ModeCommand](9)
	modeCmdSetEbus        = register.Bit[ModeCommand](10)
	modeCmdClearDPIntr    = register.Bit[ModeCommand](11)
	modeCmdClearRDRAMMode = register.Bit[ModeCommand](12)
	modeCmdSetRDRAMMode   = register.Bit[ModeCommand](13)

	modeCmdLayout = register.Layout{
		modeCmdInitLength.Named("init_length"),
		modeCmdClearInit.Named("clear_init"),
		modeCmdSetInit.Named("set_init"),
		modeCmdClearEbus.Named("clear_ebus"),
		modeCmdSetEbus.Named("set_ebus"),
		modeCmdClearDPIntr.Named("clear_dp_intr"),
		modeCmdClearRDRAMMode.Named("clear_rdram_reg_mode"),
		modeCmdSetRDRAMMode.Named("set_rdram_reg_mode"),
	}
)

func (m ModeCommand) WithInitLength(v uint32) ModeCommand {
	return modeCmdInitLength.Set(m, ModeCommand(v))
}

func (m ModeCommand) WithClearInit(b bool) ModeCommand { return modeCmdClearInit.Set(m, b) }
func (m ModeCommand) WithSetInit(b bool) ModeCommand   { return modeCmdSetInit.Set(m, b) }
func (m ModeCommand) WithClearEbus(b bool) ModeCommand { return modeCmdClearEbus.Set(m, b) }
func (m ModeCommand) WithSetEbus(b bool) ModeCommand   { return modeCmdSetEbus.Set(m, b) }

// WithClearDPInterrupt acknowledges the DP interrupt. The DP has no
// register of its own for this.
func (m ModeCommand) WithClearDPInterrupt(b bool) ModeCommand {
	return modeCmdClearDPIntr.Set(m, b)
}

func (m ModeCommand) WithClearRDRAMRegMode(b bool) ModeCommand {
	return modeCmdClearRDRAMMode.Set(m, b)
}

func (m ModeCommand) WithSetRDRAMRegMode(b bool) ModeCommand {
	return modeCmdSetRDRAMMode.Set(m, b)
}

func (m ModeCommand) String() string { return modeCmdLayout.Format(uint64(m)) }
