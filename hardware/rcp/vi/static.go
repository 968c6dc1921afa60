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

// base is the address of the VI registers used by the package level
// functions.
var base = BaseAddress

func block() *Registers {
	return At(base)
}

func ReadCtrl() Ctrl               { return block().Ctrl.Read() }
func SetCtrl(v Ctrl)               { block().Ctrl.Write(v) }
func ModifyCtrl(f func(Ctrl) Ctrl) { block().Ctrl.Modify(f) }

func ReadOrigin() uint32                 { return block().Origin.Read() }
func SetOrigin(v uint32)                 { block().Origin.Write(v) }
func ModifyOrigin(f func(uint32) uint32) { block().Origin.Modify(f) }

func ReadWidth() uint32                 { return block().Width.Read() }
func SetWidth(v uint32)                 { block().Width.Write(v) }
func ModifyWidth(f func(uint32) uint32) { block().Width.Modify(f) }

func ReadVIntr() uint32                 { return block().VIntr.Read() }
func SetVIntr(v uint32)                 { block().VIntr.Write(v) }
func ModifyVIntr(f func(uint32) uint32) { block().VIntr.Modify(f) }

func ReadVCurrent() uint32                 { return block().VCurrent.Read() }
func SetVCurrent(v uint32)                 { block().VCurrent.Write(v) }
func ModifyVCurrent(f func(uint32) uint32) { block().VCurrent.Modify(f) }

func ReadBurst() Burst                { return block().Burst.Read() }
func SetBurst(v Burst)                { block().Burst.Write(v) }
func ModifyBurst(f func(Burst) Burst) { block().Burst.Modify(f) }

func ReadVSync() uint32                 { return block().VSync.Read() }
func SetVSync(v uint32)                 { block().VSync.Write(v) }
func ModifyVSync(f func(uint32) uint32) { block().VSync.Modify(f) }

func ReadHSync() HSync                { return block().HSync.Read() }
func SetHSync(v HSync)                { block().HSync.Write(v) }
func ModifyHSync(f func(HSync) HSync) { block().HSync.Modify(f) }

func ReadHSyncLeap() HSyncLeap                    { return block().HSyncLeap.Read() }
func SetHSyncLeap(v HSyncLeap)                    { block().HSyncLeap.Write(v) }
func ModifyHSyncLeap(f func(HSyncLeap) HSyncLeap) { block().HSyncLeap.Modify(f) }

func ReadHVideo() Span               { return block().HVideo.Read() }
func SetHVideo(v Span)               { block().HVideo.Write(v) }
func ModifyHVideo(f func(Span) Span) { block().HVideo.Modify(f) }

func ReadVVideo() Span               { return block().VVideo.Read() }
func SetVVideo(v Span)               { block().VVideo.Write(v) }
func ModifyVVideo(f func(Span) Span) { block().VVideo.Modify(f) }

func ReadVBurst() Span               { return block().VBurst.Read() }
func SetVBurst(v Span)               { block().VBurst.Write(v) }
func ModifyVBurst(f func(Span) Span) { block().VBurst.Modify(f) }

func ReadXScale() Scale                { return block().XScale.Read() }
func SetXScale(v Scale)                { block().XScale.Write(v) }
func ModifyXScale(f func(Scale) Scale) { block().XScale.Modify(f) }

func ReadYScale() Scale                { return block().YScale.Read() }
func SetYScale(v Scale)                { block().YScale.Write(v) }
func ModifyYScale(f func(Scale) Scale) { block().YScale.Modify(f) }

func ReadTestAddr() uint32                 { return block().TestAddr.Read() }
func SetTestAddr(v uint32)                 { block().TestAddr.Write(v) }
func ModifyTestAddr(f func(uint32) uint32) { block().TestAddr.Modify(f) }

func ReadStagedData() uint32                 { return block().StagedData.Read() }
func SetStagedData(v uint32)                 { block().StagedData.Write(v) }
func ModifyStagedData(f func(uint32) uint32) { block().StagedData.Modify(f) }
