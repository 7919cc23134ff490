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
package memory

// Bus defines the operations for data memory when accessed from the CPU.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Peripheral is implemented by devices that own one or more I/O registers.
// The register argument is the I/O address.
type Peripheral interface {
	// the value seen by the CPU when reading the register
	ReadRegister(register uint8) uint8

	// a write by the CPU to the register
	WriteRegister(register uint8, data uint8)
}
