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

// base is the address of the MI registers used by the package level
// functions.
var base = BaseAddress

func block() *Registers {
	return At(base)
}

// The mode and mask registers are written with the command shape and read
// with the status shape.
func ReadMode() Mode        { return block().Mode.Read() }
func SetMode(v ModeCommand) { block().Mode.Write(v) }
func ReadMask() Interrupts  { return block().Mask.Read() }
func SetMask(v MaskCommand) { block().Mask.Write(v) }

func ReadVersion() Version      { return block().Version.Read() }
func ReadInterrupt() Interrupts { return block().Interrupt.Read() }
