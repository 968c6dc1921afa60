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

// Package monitor is an interactive command interpreter for the registers of
// the N64. Registers are referred to by their canonical names, for example
// VI_CTRL or SI_STATUS, and the coprocessor registers by names beginning
// with COP0_ or COP1_. A memory mapped register can also be given by its
// address, physical or in KSEG0 or KSEG1, for example 0xa4400004.
//
// The monitor does not own the hardware when it is created. The CLAIM
// command takes the hardware and the STEAL command steals it. Every other
// command that accesses a register fails until one of those commands has
// succeeded.
//
// When the monitor is connected to a simulation, write-only registers can
// also be read, by reading the simulated memory directly. Addresses in a
// register area that have no register description, such as the reserved SI
// word at 0xa480000c, are reached in the same way.
package monitor
