// This file is part of avrsim.
//
// avrsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// avrsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with avrsim.  If not, see <https://www.gnu.org/licenses/>.
package registers

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 32

// Pointer register pairs. The value is the index of the low byte.
const (
	X = 26
	Y = 28
	Z = 30
)

// File is the general purpose register file, r0 to r31. The file is also
// mapped into the bottom of data memory.
type File [NumRegisters]uint8

// Reset clears every register.
func (f *File) Reset() {
	*f = File{}
}

// Word returns the register pair with the low byte in register n.
func (f *File) Word(n int) uint16 {
	return uint16(f[n+1])<<8 | uint16(f[n])
}

// SetWord sets the register pair with the low byte in register n.
func (f *File) SetWord(n int, v uint16) {
	f[n] = uint8(v)
	f[n+1] = uint8(v >> 8)
}

// PointerName returns "x", "y" or "z" for the pointer pairs.
func PointerName(n int) string {
	switch n {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("r%d", n)
}

// Row returns sixteen registers starting at register n, as a line of hex
// values.
func (f *File) Row(n int) string {
	s := strings.Builder{}
	for i := n; i < n+16 && i < NumRegisters; i++ {
		if i > n {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", f[i]))
	}
	return s.String()
}

func (f *File) String() string {
	return fmt.Sprintf("%s\n%s", f.Row(0), f.Row(16))
}
