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

// Burst describes the timing of the horizontal sync and colour burst.
type Burst uint32

var (
	burstHSyncWidth = register.Bits[Burst](0, 7)
	burstWidth      = register.Bits[Burst](8, 15)
	burstVSyncWidth = register.Bits[Burst](16, 19)
	burstStart      = register.Bits[Burst](20, 29)

	burstLayout = register.Layout{
		burstHSyncWidth.Named("hsync_width"),
		burstWidth.Named("burst_width"),
		burstVSyncWidth.Named("vsync_width"),
		burstStart.Named("burst_start"),
	}
)

func (b Burst) HSyncWidth() uint32 { return uint32(burstHSyncWidth.Get(b)) }
func (b Burst) BurstWidth() uint32 { return uint32(burstWidth.Get(b)) }
func (b Burst) VSyncWidth() uint32 { return uint32(burstVSyncWidth.Get(b)) }
func (b Burst) BurstStart() uint32 { return uint32(burstStart.Get(b)) }

func (b Burst) WithHSyncWidth(v uint32) Burst { return burstHSyncWidth.Set(b, Burst(v)) }
func (b Burst) WithBurstWidth(v uint32) Burst { return burstWidth.Set(b, Burst(v)) }
func (b Burst) WithVSyncWidth(v uint32) Burst { return burstVSyncWidth.Set(b, Burst(v)) }
func (b Burst) WithBurstStart(v uint32) Burst { return burstStart.Set(b, Burst(v)) }

func (b Burst) String() string { return burstLayout.Format(uint64(b)) }

// HSync is the length of a scanline and the leap pattern.
type HSync uint32

var (
	hsyncLength = register.Bits[HSync](0, 11)
	hsyncLeap   = register.Bits[HSync](16, 20)

	hsyncLayout = register.Layout{
		hsyncLength.Named("h_sync"),
		hsyncLeap.Named("leap"),
	}
)

// Length of the scanline in quarter pixels.
func (h HSync) Length() uint32 { return uint32(hsyncLength.Get(h)) }

// Leap is the five bit pattern used to choose between the two leap values
// in the HSyncLeap register.
func (h HSync) Leap() uint32 { return uint32(hsyncLeap.Get(h)) }

func (h HSync) WithLength(v uint32) HSync { return hsyncLength.Set(h, HSync(v)) }
func (h HSync) WithLeap(v uint32) HSync   { return hsyncLeap.Set(h, HSync(v)) }

func (h HSync) String() string { return hsyncLayout.Format(uint64(h)) }

// HSyncLeap contains the two alternate scanline lengths.
type HSyncLeap uint32

var (
	leapB = register.Bits[HSyncLeap](0, 9)
	leapA = register.Bits[HSyncLeap](16, 25)

	leapLayout = register.Layout{
		leapB.Named("leap_b"),
		leapA.Named("leap_a"),
	}
)

func (h HSyncLeap) LeapA() uint32 { return uint32(leapA.Get(h)) }
func (h HSyncLeap) LeapB() uint32 { return uint32(leapB.Get(h)) }

func (h HSyncLeap) WithLeapA(v uint32) HSyncLeap { return leapA.Set(h, HSyncLeap(v)) }
func (h HSyncLeap) WithLeapB(v uint32) HSyncLeap { return leapB.Set(h, HSyncLeap(v)) }

func (h HSyncLeap) String() string { return leapLayout.Format(uint64(h)) }

// Span is a start and end pair. It is used by the HVideo, VVideo and VBurst
// registers.
type Span uint32

var (
	spanEnd   = register.Bits[Span](0, 9)
	spanStart = register.Bits[Span](16, 25)

	spanLayout = register.Layout{
		spanEnd.Named("end"),
		spanStart.Named("start"),
	}
)

func (s Span) Start() uint32 { return uint32(spanStart.Get(s)) }
func (s Span) End() uint32   { return uint32(spanEnd.Get(s)) }

func (s Span) WithStart(v uint32) Span { return spanStart.Set(s, Span(v)) }
func (s Span) WithEnd(v uint32) Span   { return spanEnd.Set(s, Span(v)) }

func (s Span) String() string { return spanLayout.Format(uint64(s)) }

// Scale is the scale factor and subpixel offset used by the XScale and
// YScale registers. Both values are 2.10 fixed point.
type Scale uint32

var (
	scaleFactor = register.Bits[Scale](0, 11)
	scaleOffset = register.Bits[Scale](16, 27)

	scaleLayout = register.Layout{
		scaleFactor.Named("scale"),
		scaleOffset.Named("offset"),
	}
)

func (s Scale) Factor() uint32 { return uint32(scaleFactor.Get(s)) }
func (s Scale) Offset() uint32 { return uint32(scaleOffset.Get(s)) }

func (s Scale) WithFactor(v uint32) Scale { return scaleFactor.Set(s, Scale(v)) }
func (s Scale) WithOffset(v uint32) Scale { return scaleOffset.Set(s, Scale(v)) }

func (s Scale) String() string { return scaleLayout.Format(uint64(s)) }
