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

package monitor

// Error patterns returned by the monitor.
const (
	UnknownCommand  = "monitor: unknown command: %s"
	UnknownRegister = "monitor: unknown register: %s"
	Usage           = "monitor: usage: %s"
	NotClaimed      = "monitor: the hardware has not been claimed"
	ClaimRefused    = "monitor: the hardware has already been claimed"
	NotReadable     = "monitor: %s is write-only"
	NotWritable     = "monitor: %s is read-only"
	NotModifiable   = "monitor: %s cannot be modified, it must be written"
	BadValue        = "monitor: not a valid %d bit value: %s"
	MemvizError     = "monitor: memviz: %v"
)
