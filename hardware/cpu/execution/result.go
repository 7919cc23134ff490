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
package execution

import (
	"fmt"

	"github.com/avrsim/avrsim/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// word address of the instruction
	Address uint16

	// the decoded instruction. the Defn field is nil until the instruction
	// has been decoded
	Instruction instructions.Instruction

	// the actual number of cycles taken by the instruction. this is the
	// same as the definition's cycle count except for taken branches and
	// skips
	Cycles int

	// whether a conditional branch was taken
	BranchTaken bool

	// the number of program words skipped by a skip instruction
	Skipped int

	// whether the instruction has been fully executed. the other fields are
	// undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// ByteAddress returns the address of the instruction in bytes.
func (r Result) ByteAddress() uint32 {
	return uint32(r.Address) * 2
}

func (r Result) String() string {
	if r.Instruction.Defn == nil {
		return "no instruction"
	}
	s := fmt.Sprintf("0x%04x  %s [%d]", r.ByteAddress(), r.Instruction, r.Cycles)
	if r.BranchTaken {
		s = fmt.Sprintf("%s branch taken", s)
	}
	if r.Skipped > 0 {
		s = fmt.Sprintf("%s skipped %d", s, r.Skipped)
	}
	return s
}
