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

	"github.com/avrsim/avrsim/curated"
)

// InvalidResult is the pattern for results that are inconsistent with the
// definition of the instruction.
const InvalidResult = "invalid result: %v"

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(InvalidResult, "execution not finalised")
	}

	defn := r.Instruction.Defn
	if defn == nil {
		return curated.Errorf(InvalidResult, "no instruction definition")
	}

	if r.BranchTaken && !defn.IsBranch() {
		return curated.Errorf(InvalidResult, "branch taken by non-branch instruction "+defn.Mnemonic)
	}

	if r.Skipped != 0 {
		if !defn.IsSkip() {
			return curated.Errorf(InvalidResult, "skip by non-skip instruction "+defn.Mnemonic)
		}
		if r.Skipped > 2 {
			return curated.Errorf(InvalidResult, "too many words skipped by "+defn.Mnemonic)
		}
	}

	expected := defn.Cycles
	if r.BranchTaken {
		expected++
	}
	expected += r.Skipped

	if r.Cycles != expected {
		return curated.Errorf(InvalidResult, fmt.Sprintf("number of cycles wrong for %s (%d instead of %d)",
			defn.Mnemonic, r.Cycles, expected))
	}

	return nil
}
