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
// Package instructions defines the AVR instruction set and decodes program
// words into Instruction values.
//
// Every supported instruction is an Operator. The Definitions table gives
// the mnemonic, the number of program words, the nominal cycle count, the
// addressing mode and the effect category of each Operator. Adding an
// instruction means adding an Operator, its Definition, a case in the
// decoder and a case in the CPU.
//
// Decode() is a total function over the program words: any word that is not
// a supported instruction results in an error with the IllegalOpcode
// pattern.
package instructions
