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

import (
	"fmt"

	"github.com/avrsim/avrsim/curated"
	"github.com/avrsim/avrsim/hardware/cpu/registers"
	"github.com/avrsim/avrsim/hardware/memory/addresses"
	"github.com/avrsim/avrsim/logger"
)

// MemoryOutOfRange is the pattern for accesses to addresses that do not
// exist in either address space.
const MemoryOutOfRange = "memory out of range: %v"

// DataMemory is the data address space.
type DataMemory struct {
	regs *registers.Registers

	io          [addresses.NumIO]uint8
	peripherals [addresses.NumIO]Peripheral

	// unmodelled I/O registers are logged on the first write only
	logged [addresses.NumIO]bool

	sram []uint8
}

// NewDataMemory is the preferred method of initialisation for the DataMemory
// type. The register file, SREG and SP are views of regs.
func NewDataMemory(regs *registers.Registers, sramSize int) *DataMemory {
	return &DataMemory{
		regs: regs,
		sram: make([]uint8, sramSize),
	}
}

func (mem *DataMemory) String() string {
	return fmt.Sprintf("data memory: %d bytes SRAM, RAMEND 0x%04x", len(mem.sram), mem.RAMEnd())
}

// RAMEnd returns the address of the last byte of SRAM.
func (mem *DataMemory) RAMEnd() uint16 {
	return OriginSRAM + uint16(len(mem.sram)) - 1
}

// Reset clears SRAM and unmodelled I/O registers. The core registers and
// the peripherals are reset by their owners.
func (mem *DataMemory) Reset() {
	for i := range mem.sram {
		mem.sram[i] = 0
	}
	mem.io = [addresses.NumIO]uint8{}
	mem.logged = [addresses.NumIO]bool{}
}

// Attach a peripheral to one or more I/O registers.
func (mem *DataMemory) Attach(p Peripheral, ioRegisters ...uint8) {
	for _, r := range ioRegisters {
		mem.peripherals[r] = p
	}
}

// Read implements the Bus interface.
func (mem *DataMemory) Read(address uint16) (uint8, error) {
	a, area := MapAddress(address, len(mem.sram))
	switch area {
	case Registers:
		return mem.regs.R[a], nil
	case IO:
		return mem.readIO(uint8(a)), nil
	case SRAM:
		return mem.sram[a], nil
	}
	return 0, curated.Errorf(MemoryOutOfRange, fmt.Sprintf("read of data address 0x%04x", address))
}

// Write implements the Bus interface.
func (mem *DataMemory) Write(address uint16, data uint8) error {
	a, area := MapAddress(address, len(mem.sram))
	switch area {
	case Registers:
		mem.regs.R[a] = data
		return nil
	case IO:
		mem.writeIO(uint8(a), data)
		return nil
	case SRAM:
		mem.sram[a] = data
		return nil
	}
	return curated.Errorf(MemoryOutOfRange, fmt.Sprintf("write of 0x%02x to data address 0x%04x", data, address))
}

func (mem *DataMemory) readIO(register uint8) uint8 {
	switch register {
	case addresses.SREG:
		return mem.regs.Status.Value()
	case addresses.SPL:
		return mem.regs.SP.Low()
	case addresses.SPH:
		return mem.regs.SP.High()
	}
	if p := mem.peripherals[register]; p != nil {
		return p.ReadRegister(register)
	}
	return mem.io[register]
}

func (mem *DataMemory) writeIO(register uint8, data uint8) {
	switch register {
	case addresses.SREG:
		mem.regs.Status.FromValue(data)
		return
	case addresses.SPL:
		mem.regs.SP.SetLow(data)
		return
	case addresses.SPH:
		mem.regs.SP.SetHigh(data)
		return
	}
	if p := mem.peripherals[register]; p != nil {
		p.WriteRegister(register, data)
		return
	}
	if !mem.logged[register] {
		mem.logged[register] = true
		name := addresses.Names[register]
		if name == "" {
			name = "reserved"
		}
		logger.Logf(logger.Allow, "memory", "write to unmodelled I/O register %s (0x%02x)", name, register)
	}
	mem.io[register] = data
}

// ReadIO reads an I/O register by I/O address.
func (mem *DataMemory) ReadIO(register uint8) uint8 {
	return mem.readIO(register & (addresses.NumIO - 1))
}

// WriteIO writes an I/O register by I/O address.
func (mem *DataMemory) WriteIO(register uint8, data uint8) {
	mem.writeIO(register&(addresses.NumIO-1), data)
}

// Peek returns the stored value of an I/O register without involving the
// peripheral that owns it, if any.
func (mem *DataMemory) Peek(register uint8) uint8 {
	return mem.io[register&(addresses.NumIO-1)]
}

// SRAM returns the SRAM area. The slice is not a copy.
func (mem *DataMemory) SRAM() []uint8 {
	return mem.sram
}
