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
// Package trace writes a line of text for every instruction retired by the
// CPU. The lines are written to an io.Writer supplied by the caller.
//
// At the Base level each line is the byte address of the instruction and the
// instruction in assembler syntax:
//
//	0x0006  rjmp -1
//
// At the Extended level each instruction line is followed by the state of
// the status register, the stack pointer, the pointer registers and the
// register file. Interrupt entries are also shown at this level.
//
// Every line is a single call to Write(). Errors from the writer do not stop
// the simulation. The first error is logged and can be retrieved with Err().
package trace
