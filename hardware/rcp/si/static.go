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

// base is the address of the SI registers used by the package level
// functions.
var base = BaseAddress

func block() *Registers {
	return At(base)
}

func ReadDRAMAddr() uint32                 { return block().DRAMAddr.Read() }
func SetDRAMAddr(v uint32)                 { block().DRAMAddr.Write(v) }
func ModifyDRAMAddr(f func(uint32) uint32) { block().DRAMAddr.Modify(f) }

func ReadPIFAddrRead64B() uint32                 { return block().PIFAddrRead64B.Read() }
func SetPIFAddrRead64B(v uint32)                 { block().PIFAddrRead64B.Write(v) }
func ModifyPIFAddrRead64B(f func(uint32) uint32) { block().PIFAddrRead64B.Modify(f) }

func ReadPIFAddrWrite4B() uint32                 { return block().PIFAddrWrite4B.Read() }
func SetPIFAddrWrite4B(v uint32)                 { block().PIFAddrWrite4B.Write(v) }
func ModifyPIFAddrWrite4B(f func(uint32) uint32) { block().PIFAddrWrite4B.Modify(f) }

func ReadPIFAddrWrite64B() uint32                 { return block().PIFAddrWrite64B.Read() }
func SetPIFAddrWrite64B(v uint32)                 { block().PIFAddrWrite64B.Write(v) }
func ModifyPIFAddrWrite64B(f func(uint32) uint32) { block().PIFAddrWrite64B.Modify(f) }

func ReadPIFAddrRead4B() uint32                 { return block().PIFAddrRead4B.Read() }
func SetPIFAddrRead4B(v uint32)                 { block().PIFAddrRead4B.Write(v) }
func ModifyPIFAddrRead4B(f func(uint32) uint32) { block().PIFAddrRead4B.Modify(f) }

func ReadStatus() Status                 { return block().Status.Read() }
func SetStatus(v Status)                 { block().Status.Write(v) }
func ModifyStatus(f func(Status) Status) { block().Status.Modify(f) }

// AcknowledgeInterrupt clears the SI interrupt.
func AcknowledgeInterrupt() {
	block().AcknowledgeInterrupt()
}
