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
)

// ProgramCounter holds the word address of the next instruction.
type ProgramCounter struct {
	value uint16
}

// Label returns the canonical name for the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

// String returns the byte address, which is how addresses appear in
// disassembly listings.
func (pc ProgramCounter) String() string {
	return fmt.Sprintf("0x%04x", uint32(pc.value)*2)
}

// Address returns the word address.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// ByteAddress returns the address in bytes.
func (pc ProgramCounter) ByteAddress() uint32 {
	return uint32(pc.value) * 2
}

// Load a word address into the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add a number of words to the PC.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value += val
}

// Relative adds a signed offset in words to the PC. Values wrap around the
// sixteen bit address space.
func (pc *ProgramCounter) Relative(offset int) {
	pc.value = uint16(int(pc.value) + offset)
}
