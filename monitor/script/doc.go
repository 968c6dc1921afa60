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

// Package script runs Lua scripts against the registers of the monitor. The
// Lua implementation is gopher-lua.
//
// Four functions are added to the global environment of the script:
//
//	peek(name)               returns the value of the register
//	poke(name, value)        writes the value to the register
//	modify(name, mask, value) changes the bits in mask to the bits in value
//	log(tag, detail)         adds an entry to the central logger
//
// Register names are the names used by the monitor, for example VI_CTRL or
// COP0_STATUS. Values can be Lua numbers or strings. Strings are parsed with
// the usual Go prefixes so "0x3000" and "0b11" are both valid. Lua numbers
// are floating point, so register values wider than 53 bits should be
// written as strings.
//
// The print() function of the script writes to the output of the monitor.
package script
