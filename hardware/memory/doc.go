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

// Package memory describes the address space of the N64 registers and
// provides memory in which the register blocks can be simulated.
//
// The address map is described by the Area type and the MapAddress()
// function. MapAddress() accepts KSEG0, KSEG1 and physical addresses, 32 bit
// or sign extended to 64 bits, and returns the area and the offset into the
// area. Summary() describes the entire map:
//
//	04300000 -> 0430000f	MI
//	04400000 -> 0440003f	VI
//
// The registers in each area have canonical names, for example VI_ORIGIN.
// The names are listed in CanonicalSymbols and can be looked up with the
// Lookup() function.
//
// Simulated registers live in a Region. A Region is memory that is outside the
// control of the Go garbage collector, which is necessary because the register
// blocks are reached through a uintptr. The Simulation type allocates a
// Region for every area and a register file for each coprocessor, and
// presents them as a hardware.Platform.
package memory
