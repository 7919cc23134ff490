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
// Package disassembly produces a linear disassembly of a firmware image.
//
// Every word of the image is decoded in turn, starting at address zero.
// Words that are not valid instructions, for example constant data stored
// in flash, are included in the disassembly as data and do not stop the
// disassembly.
//
// For quick disassemblies the FromImage() function can be used. The
// resulting Disassembly can be written to an io.Writer with Write().
package disassembly
