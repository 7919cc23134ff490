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
// Package memory implements the two address spaces of the AVR: program
// memory (flash) and data memory.
//
// Data memory is divided into three areas. The register file occupies the
// first 32 addresses, I/O space the next 64 addresses and SRAM the rest. The
// register file, SREG and the stack pointer are views of the core registers
// rather than separate storage.
//
// Peripherals are attached to I/O addresses with the Attach() function. Reads
// and writes to an attached address are routed to the peripheral. Other I/O
// addresses behave as plain storage.
//
// Accessing an address outside of any area is an error with the
// MemoryOutOfRange pattern.
package memory
