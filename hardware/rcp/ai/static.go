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

// base is the address of the AI registers used by the package level
// functions.
var base = BaseAddress

func block() *Registers {
	return At(base)
}

func SetDRAMAddr(v uint32) { block().DRAMAddr.Write(v) }

func ReadLength() uint32                 { return block().Length.Read() }
func SetLength(v uint32)                 { block().Length.Write(v) }
func ModifyLength(f func(uint32) uint32) { block().Length.Modify(f) }

func SetControl(v Control) { block().Control.Write(v) }

func ReadStatus() Status                 { return block().Status.Read() }
func SetStatus(v Status)                 { block().Status.Write(v) }
func ModifyStatus(f func(Status) Status) { block().Status.Modify(f) }

func SetDACRate(v uint32) { block().DACRate.Write(v) }
func SetBitRate(v uint32) { block().BitRate.Write(v) }

// AcknowledgeInterrupt clears the AI interrupt.
func AcknowledgeInterrupt() {
	block().AcknowledgeInterrupt()
}
