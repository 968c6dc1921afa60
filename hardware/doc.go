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

// Package hardware is the entry point to the N64 registers. The Hardware type
// collects every register block and the coprocessor accessors in one place.
//
// There should only be one Hardware value in a program. The Take() function
// hands out a Hardware value the first time it is called and refuses every
// time after that:
//
//	hw, ok := hardware.Take(hardware.N64)
//	if !ok {
//		// something else in the program owns the hardware
//	}
//
// This is a convention and not a lock. The Steal() function will always
// return a Hardware value, regardless of whether the hardware has been taken.
// Steal() exists for situations where the caller knows that sharing the
// hardware is safe, for example in an exception handler that only touches
// registers that normal code never does. Nothing ever gives the claim back.
//
// Discarding a Hardware value does nothing to the hardware.
//
// The register blocks can also be created directly with the At() and New()
// functions of the device packages. Doing so bypasses the claim entirely.
package hardware
