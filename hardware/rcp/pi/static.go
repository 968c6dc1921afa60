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

// base is the address of the PI registers used by the package level
// functions.
var base = BaseAddress

func block() *Registers {
	return At(base)
}

func ReadDRAMAddr() uint32                 { return block().DRAMAddr.Read() }
func SetDRAMAddr(v uint32)                 { block().DRAMAddr.Write(v) }
func ModifyDRAMAddr(f func(uint32) uint32) { block().DRAMAddr.Modify(f) }

func ReadCartAddr() uint32                 { return block().CartAddr.Read() }
func SetCartAddr(v uint32)                 { block().CartAddr.Write(v) }
func ModifyCartAddr(f func(uint32) uint32) { block().CartAddr.Modify(f) }

func ReadReadLen() uint32                 { return block().ReadLen.Read() }
func SetReadLen(v uint32)                 { block().ReadLen.Write(v) }
func ModifyReadLen(f func(uint32) uint32) { block().ReadLen.Modify(f) }

func ReadWriteLen() uint32                 { return block().WriteLen.Read() }
func SetWriteLen(v uint32)                 { block().WriteLen.Write(v) }
func ModifyWriteLen(f func(uint32) uint32) { block().WriteLen.Modify(f) }

func ReadStatus() Status        { return block().Status.Read() }
func SetStatus(v StatusCommand) { block().Status.Write(v) }

func ReadDomain1Latency() uint32                 { return block().Domain1.Latency.Read() }
func SetDomain1Latency(v uint32)                 { block().Domain1.Latency.Write(v) }
func ModifyDomain1Latency(f func(uint32) uint32) { block().Domain1.Latency.Modify(f) }

func ReadDomain1PulseWidth() uint32                 { return block().Domain1.PulseWidth.Read() }
func SetDomain1PulseWidth(v uint32)                 { block().Domain1.PulseWidth.Write(v) }
func ModifyDomain1PulseWidth(f func(uint32) uint32) { block().Domain1.PulseWidth.Modify(f) }

func ReadDomain1PageSize() uint32                 { return block().Domain1.PageSize.Read() }
func SetDomain1PageSize(v uint32)                 { block().Domain1.PageSize.Write(v) }
func ModifyDomain1PageSize(f func(uint32) uint32) { block().Domain1.PageSize.Modify(f) }

func ReadDomain1Release() uint32                 { return block().Domain1.Release.Read() }
func SetDomain1Release(v uint32)                 { block().Domain1.Release.Write(v) }
func ModifyDomain1Release(f func(uint32) uint32) { block().Domain1.Release.Modify(f) }

func ReadDomain2Latency() uint32                 { return block().Domain2.Latency.Read() }
func SetDomain2Latency(v uint32)                 { block().Domain2.Latency.Write(v) }
func ModifyDomain2Latency(f func(uint32) uint32) { block().Domain2.Latency.Modify(f) }

func ReadDomain2PulseWidth() uint32                 { return block().Domain2.PulseWidth.Read() }
func SetDomain2PulseWidth(v uint32)                 { block().Domain2.PulseWidth.Write(v) }
func ModifyDomain2PulseWidth(f func(uint32) uint32) { block().Domain2.PulseWidth.Modify(f) }

func ReadDomain2PageSize() uint32                 { return block().Domain2.PageSize.Read() }
func SetDomain2PageSize(v uint32)                 { block().Domain2.PageSize.Write(v) }
func ModifyDomain2PageSize(f func(uint32) uint32) { block().Domain2.PageSize.Modify(f) }

func ReadDomain2Release() uint32                 { return block().Domain2.Release.Read() }
func SetDomain2Release(v uint32)                 { block().Domain2.Release.Write(v) }
func ModifyDomain2Release(f func(uint32) uint32) { block().Domain2.Release.Modify(f) }
