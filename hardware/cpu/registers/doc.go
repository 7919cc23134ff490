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
// Package registers implements the registers of the AVR core: the general
// purpose register file, the status register, the program counter and the
// stack pointer.
//
// The StatusRegister type also implements the arithmetic and logic used by
// the instruction set. Each function returns the result of the operation
// and updates the flags that the operation is documented to affect. Other
// flags are left untouched. For example:
//
//	var sr StatusRegister
//	r := sr.Subtract(0x10, 0x11, false, false)
//
// After the call r is 0xff, the Carry and Negative flags are set and the
// Zero flag is clear.
package registers
