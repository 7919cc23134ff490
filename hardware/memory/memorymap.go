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

// Area represents the different areas of data memory.
type Area int

func (a Area) String() string {
	switch a {
	case Registers:
		return "Registers"
	case IO:
		return "IO"
	case SRAM:
		return "SRAM"
	}
	return "undefined"
}

// The different areas of data memory.
const (
	Undefined Area = iota
	Registers
	IO
	SRAM
)

// The origin and memory top for each area. The top of SRAM depends on how
// much SRAM the device has.
const (
	OriginRegisters = uint16(0x0000)
	MemtopRegisters = uint16(0x001f)
	OriginIO        = uint16(0x0020)
	MemtopIO        = uint16(0x005f)
	OriginSRAM      = uint16(0x0060)
)

// MapAddress returns the area that the address falls in and the address
// relative to the origin of that area. The size of SRAM is needed to
// decide whether the address is beyond the top of memory.
func MapAddress(address uint16, sramSize int) (uint16, Area) {
	switch {
	case address <= MemtopRegisters:
		return address, Registers
	case address <= MemtopIO:
		return address - OriginIO, IO
	case int(address-OriginSRAM) < sramSize:
		return address - OriginSRAM, SRAM
	}
	return address, Undefined
}
