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
package instructions

// AddressingMode describes the operands of the instruction.
type AddressingMode int

// List of supported addressing modes. The comments show the operands in the
// order they appear in assembly.
const (
	Implied AddressingMode = iota

	// rd
	Register

	// rd, rr
	TwoRegisters

	// rd+1:rd, rr+1:rr
	RegisterPairs

	// rd, K
	Immediate

	// rd+1:rd, K
	WordImmediate

	// k is a signed word offset
	Relative

	// k is a program address
	Absolute

	// s is a bit of SREG
	StatusBit

	// s, k
	StatusBranch

	// rd, b
	RegisterBit

	// A, b
	IOBit

	// rd, A or A, rr
	IOAddress

	// through X, Y or Z
	Indirect

	// through Y or Z with a displacement
	Displacement

	// a data address
	Direct

	// through Z in program memory
	ProgramIndirect
)

// PointerMode is the way the pointer register of an indirect load or store
// is changed.
type PointerMode int

// List of pointer modes.
const (
	Unchanged PointerMode = iota
	PostIncrement
	PreDecrement
)
