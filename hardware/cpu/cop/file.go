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

package cop

// File is a software implementation of a coprocessor register file. Every
// register is 64 bits wide. A 32 bit move to a register replaces the whole
// register with the zero extended word.
//
// Registers can be protected, after which moves to the register are ignored.
// Protected registers can still be changed with Load().
//
// File is not safe for concurrent use.
type File struct {
	regs      [NumRegisters]uint64
	protected [NumRegisters]bool
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	return &File{}
}

// Protect the registers at the listed indices.
func (f *File) Protect(idx ...Index) {
	for _, i := range idx {
		f.protected[i%NumRegisters] = true
	}
}

// IsProtected returns true if the register at idx has been protected.
func (f *File) IsProtected(idx Index) bool {
	return f.protected[idx%NumRegisters]
}

// Load sets the register at idx whether or not it is protected.
func (f *File) Load(idx Index, v uint64) {
	f.regs[idx%NumRegisters] = v
}

// Peek returns the register at idx.
func (f *File) Peek(idx Index) uint64 {
	return f.regs[idx%NumRegisters]
}

// Reset sets every register to zero. Protection is unchanged.
func (f *File) Reset() {
	clear(f.regs[:])
}

// Move32From implements the Transport interface.
func (f *File) Move32From(idx Index) uint32 {
	return uint32(f.Peek(idx))
}

// Move32To implements the Transport interface.
func (f *File) Move32To(idx Index, v uint32) {
	if f.IsProtected(idx) {
		return
	}
	f.Load(idx, uint64(v))
}

// Move64From implements the Transport interface.
func (f *File) Move64From(idx Index) (uint32, uint32) {
	v := f.Peek(idx)
	return uint32(v >> 32), uint32(v)
}

// Move64To implements the Transport interface.
func (f *File) Move64To(idx Index, hi uint32, lo uint32) {
	if f.IsProtected(idx) {
		return
	}
	f.Load(idx, uint64(hi)<<32|uint64(lo))
}
