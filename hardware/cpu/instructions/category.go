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

// Category of an instruction describes its effect.
type Category int

// List of effect categories.
const (
	// data memory is read
	Read Category = iota

	// data memory is written
	Write

	// registers, flags or I/O bits are changed
	Modify

	// jumps, branches and skips
	Flow

	// calls and returns
	Subroutine

	// return from interrupt
	Interrupt

	// no effect on the program state
	Control
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	case Control:
		return "Control"
	}
	return "unknown effect"
}
