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

package vi_test

import (
	"testing"
	"unsafe"

	"github.com/n64go/n64pac/hardware/memory"
	"github.com/n64go/n64pac/hardware/rcp/vi"
	"github.com/n64go/n64pac/test"
)

func TestLayout(t *testing.T) {
	var r vi.Registers
	test.ExpectEquality(t, unsafe.Sizeof(r), vi.Size)
	test.ExpectEquality(t, unsafe.Offsetof(r.Ctrl), 0x00)
	test.ExpectEquality(t, unsafe.Offsetof(r.Origin), 0x04)
	test.ExpectEquality(t, unsafe.Offsetof(r.VCurrent), 0x10)
	test.ExpectEquality(t, unsafe.Offsetof(r.HSyncLeap), 0x20)
	test.ExpectEquality(t, unsafe.Offsetof(r.XScale), 0x30)
	test.ExpectEquality(t, unsafe.Offsetof(r.StagedData), 0x3c)
}

func TestCtrl(t *testing.T) {
	reg, err := memory.NewRegion(vi.Size)
	test.DemandSuccess(t, err)
	defer reg.Close()

	r := vi.At(reg.Base())

	r.Ctrl.Write(vi.Ctrl(0).WithDepth(vi.BPP32).WithPixelAdvance(3).WithAAMode(vi.AAResamplingOnly))
	test.ExpectEquality(t, r.Ctrl.Read(), 0x3203)

	r.Ctrl.Modify(func(c vi.Ctrl) vi.Ctrl {
		return c.WithDepth(vi.BPP16).WithGamma(true)
	})
	c := r.Ctrl.Read()
	test.ExpectEquality(t, c.Depth(), vi.BPP16)
	test.ExpectEquality(t, c.AAMode(), vi.AAResamplingOnly)
	test.ExpectEquality(t, c.PixelAdvance(), 3)
	test.ExpectSuccess(t, c.Gamma())
	test.ExpectFailure(t, c.VBusClock())
	test.ExpectEquality(t, c.String(), "depth=0x2 gamma_dither=0 gamma=1 divot=0 vbus_clock=0 serrate=0 test_mode=0 aa_mode=0x2 kill_we=0 pixel_advance=0x3 dither_filter=0")
}

func TestSpan(t *testing.T) {
	s := vi.Span(0).WithStart(0x6c).WithEnd(0x2ec)
	test.ExpectEquality(t, s, 0x006c02ec)
	test.ExpectEquality(t, s.Start(), 0x6c)
	test.ExpectEquality(t, s.End(), 0x2ec)

	// start is ten bits wide
	test.ExpectEquality(t, s.WithStart(0xfff).Start(), 0x3ff)
	test.ExpectEquality(t, s.WithStart(0xfff).End(), 0x2ec)
}

func TestScale(t *testing.T) {
	s := vi.Scale(0).WithFactor(0x200).WithOffset(0x100)
	test.ExpectEquality(t, s, 0x01000200)
	test.ExpectEquality(t, s.String(), "scale=0x200 offset=0x100")
}

func TestPackageFunctions(t *testing.T) {
	reg, err := memory.NewRegion(vi.Size)
	test.DemandSuccess(t, err)
	defer reg.Close()
	defer vi.SetBase(reg.Base())()

	r := vi.At(reg.Base())

	vi.SetCtrl(vi.Ctrl(0).WithDepth(vi.BPP32))
	vi.ModifyCtrl(func(c vi.Ctrl) vi.Ctrl {
		return c.WithGamma(true)
	})
	test.ExpectEquality(t, r.Ctrl.Read().Depth(), vi.BPP32)
	test.ExpectSuccess(t, vi.ReadCtrl().Gamma())

	vi.SetOrigin(0x0010_0000)
	vi.ModifyOrigin(func(v uint32) uint32 { return v + 0x280 })
	test.ExpectEquality(t, r.Origin.Read(), 0x0010_0280)

	r.VCurrent.Write(0x20c)
	test.ExpectEquality(t, vi.ReadVCurrent(), 0x20c)

	vi.SetXScale(vi.Scale(0).WithFactor(0x200))
	test.ExpectEquality(t, r.XScale.Read().Factor(), 0x200)
	test.ExpectEquality(t, vi.ReadYScale(), 0)

	vi.SetStagedData(0xffff_ffff)
	test.ExpectEquality(t, r.StagedData.Read(), 0xffff_ffff)
}
