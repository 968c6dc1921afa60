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

// Package cop defines how the registers of the CPU coprocessors are reached.
// Coprocessor registers have no address. They are moved to and from general
// purpose registers with dedicated instructions (mfc0/mtc0 and dmfc0/dmtc0 for
// COP0, cfc1/ctc1 for the COP1 control registers).
//
// Those instructions are hidden behind the Transport interface. The real
// transport is provided by the target runtime. The File type is a software
// register file that implements Transport for simulation and testing.
//
// The helper functions Read32(), Write32(), Modify32() and their 64 bit
// equivalents are how the cop0 and cop1 packages use a Transport. A 64 bit
// transfer is delivered in two halves, which are composed high then low. The
// two halves are not moved atomically with respect to an interrupt handler
// that accesses the same register and neither is a Modify.
package cop

// Index identifies one of the registers of a coprocessor. Using an index that
// the coprocessor does not define is undefined behaviour.
type Index uint8

// NumRegisters is the number of register indices in a coprocessor.
const NumRegisters = 32

// Transport is the interface to the move instructions of a coprocessor.
type Transport interface {
	// Move32From moves the low word of the register to the CPU.
	Move32From(idx Index) uint32

	// Move32To moves a word from the CPU to the register.
	Move32To(idx Index, v uint32)

	// Move64From moves all 64 bits of the register to the CPU.
	Move64From(idx Index) (hi uint32, lo uint32)

	// Move64To combines hi and lo in a temporary register and moves the
	// result to the coprocessor register.
	Move64To(idx Index, hi uint32, lo uint32)
}

// Read32 reads the 32 bit register at idx as type T.
func Read32[T ~uint32](t Transport, idx Index) T {
	return T(t.Move32From(idx))
}

// Write32 writes v to the 32 bit register at idx.
func Write32[T ~uint32](t Transport, idx Index, v T) {
	t.Move32To(idx, uint32(v))
}

// Modify32 reads the 32 bit register at idx, passes it to f and writes the
// result back. Modify32 is not atomic.
func Modify32[T ~uint32](t Transport, idx Index, f func(T) T) {
	Write32(t, idx, f(Read32[T](t, idx)))
}

// Read64 reads the 64 bit register at idx as type T.
func Read64[T ~uint64](t Transport, idx Index) T {
	hi, lo := t.Move64From(idx)
	return T(uint64(hi)<<32 | uint64(lo))
}

// Write64 writes v to the 64 bit register at idx.
func Write64[T ~uint64](t Transport, idx Index, v T) {
	t.Move64To(idx, uint32(v>>32), uint32(v))
}

// Modify64 reads the 64 bit register at idx, passes it to f and writes the
// result back. Modify64 is not atomic.
func Modify64[T ~uint64](t Transport, idx Index, f func(T) T) {
	Write64(t, idx, f(Read64[T](t, idx)))
}
