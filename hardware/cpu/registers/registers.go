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

// Registers is the complete register state of the core.
type Registers struct {
	R      File
	Status StatusRegister
	SP     StackPointer
	PC     ProgramCounter
}

// Reset registers to the power on state. The stack pointer is set to the
// top of SRAM.
func (r *Registers) Reset(ramEnd uint16) {
	r.R.Reset()
	r.Status.Reset()
	r.SP.Load(ramEnd)
	r.PC.Load(0)
}
