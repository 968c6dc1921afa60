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

package vi

import "github.com/n64go/n64pac/hardware/register"

// ColorDepth is the pixel format of the framebuffer.
type ColorDepth uint32

// List of valid ColorDepth values.
const (
	Blank ColorDepth = iota
	ColorDepthReserved
	BPP16
	BPP32
)

func (d ColorDepth) String() string {
	switch d {
	case Blank:
		return "blank"
	case ColorDepthReserved:
		return "reserved"
	case BPP16:
		return "16bpp"
	case BPP32:
		return "32bpp"
	}
	return "undefined"
}

// AntiAliasMode controls anti-aliasing and resampling of the framebuffer.
type AntiAliasMode uint32

// List of valid AntiAliasMode values.
const (
	AAEnabled AntiAliasMode = iota
	AAEnabledAsNeeded
	AAResamplingOnly
	AADisabled
)

func (m AntiAliasMode) String() string {
	switch m {
	case AAEnabled:
		return "enabled"
	case AAEnabledAsNeeded:
		return "enabled as needed"
	case AAResamplingOnly:
		return "resampling only"
	case AADisabled:
		return "disabled"
	}
	return "undefined"
}

// Ctrl is the VI control register.
type Ctrl uint32

var (
	ctrlDepth        = register.NewEnum(register.Bits[Ctrl](0, 1), Blank, Blank, ColorDepthReserved, BPP16, BPP32)
	ctrlGammaDither  = register.Bit[Ctrl](2)
	ctrlGamma        = register.Bit[Ctrl](3)
	ctrlDivot        = register.Bit[Ctrl](4)
	ctrlVBusClock    = register.Bit[Ctrl](5)
	ctrlSerrate      = register.Bit[Ctrl](6)
	ctrlTestMode     = register.Bit[Ctrl](7)
	ctrlAAMode       = register.NewEnum(register.Bits[Ctrl](8, 9), AAEnabled, AAEnabled, AAEnabledAsNeeded, AAResamplingOnly, AADisabled)
	ctrlKillWE       = register.Bit[Ctrl](11)
	ctrlPixelAdvance = register.Bits[Ctrl](12, 15)
	ctrlDitherFilter = register.Bit[Ctrl](16)

	ctrlLayout = register.Layout{
		ctrlDepth.Named("depth"),
		ctrlGammaDither.Named("gamma_dither"),
		ctrlGamma.Named("gamma"),
		ctrlDivot.Named("divot"),
		ctrlVBusClock.Named("vbus_clock"),
		ctrlSerrate.Named("serrate"),
		ctrlTestMode.Named("test_mode"),
		ctrlAAMode.Named("aa_mode"),
		ctrlKillWE.Named("kill_we"),
		ctrlPixelAdvance.Named("pixel_advance"),
		ctrlDitherFilter.Named("dither_filter"),
	}
)

func (c Ctrl) Depth() ColorDepth               { return ctrlDepth.Get(c) }
func (c Ctrl) WithDepth(d ColorDepth) Ctrl     { return ctrlDepth.Set(c, d) }
func (c Ctrl) GammaDither() bool               { return ctrlGammaDither.Get(c) }
func (c Ctrl) WithGammaDither(b bool) Ctrl     { return ctrlGammaDither.Set(c, b) }
func (c Ctrl) Gamma() bool                     { return ctrlGamma.Get(c) }
func (c Ctrl) WithGamma(b bool) Ctrl           { return ctrlGamma.Set(c, b) }
func (c Ctrl) Divot() bool                     { return ctrlDivot.Get(c) }
func (c Ctrl) WithDivot(b bool) Ctrl           { return ctrlDivot.Set(c, b) }
func (c Ctrl) Serrate() bool                   { return ctrlSerrate.Get(c) }
func (c Ctrl) WithSerrate(b bool) Ctrl         { return ctrlSerrate.Set(c, b) }
func (c Ctrl) TestMode() bool                  { return ctrlTestMode.Get(c) }
func (c Ctrl) WithTestMode(b bool) Ctrl        { return ctrlTestMode.Set(c, b) }
func (c Ctrl) AAMode() AntiAliasMode           { return ctrlAAMode.Get(c) }
func (c Ctrl) WithAAMode(m AntiAliasMode) Ctrl { return ctrlAAMode.Set(c, m) }
func (c Ctrl) KillWE() bool                    { return ctrlKillWE.Get(c) }
func (c Ctrl) WithKillWE(b bool) Ctrl          { return ctrlKillWE.Set(c, b) }
func (c Ctrl) DitherFilter() bool              { return ctrlDitherFilter.Get(c) }
func (c Ctrl) WithDitherFilter(b bool) Ctrl    { return ctrlDitherFilter.Set(c, b) }

// VBusClock returns true if the vbus clock is enabled.
func (c Ctrl) VBusClock() bool { return ctrlVBusClock.Get(c) }

// WithVBusClock enables or disables the vbus clock. It should never be
// enabled. Doing so can damage the console.
func (c Ctrl) WithVBusClock(b bool) Ctrl { return ctrlVBusClock.Set(c, b) }

// PixelAdvance should be set to 3 on all consoles.
func (c Ctrl) PixelAdvance() uint32 { return uint32(ctrlPixelAdvance.Get(c)) }

func (c Ctrl) WithPixelAdvance(v uint32) Ctrl {
	return ctrlPixelAdvance.Set(c, Ctrl(v))
}

func (c Ctrl) String() string { return ctrlLayout.Format(uint64(c)) }
