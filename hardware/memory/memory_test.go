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
package memory_test

import (
	"testing"

	"github.com/avrsim/avrsim/curated"
	"github.com/avrsim/avrsim/hardware/cpu/registers"
	"github.com/avrsim/avrsim/hardware/memory"
	"github.com/avrsim/avrsim/hardware/memory/addresses"
	"github.com/avrsim/avrsim/test"
)

type mockPeripheral struct {
	value   uint8
	written []uint8
}

func (p *mockPeripheral) ReadRegister(register uint8) uint8 {
	return p.value
}

func (p *mockPeripheral) WriteRegister(register uint8, data uint8) {
	p.written = append(p.written, data)
}

func TestMapAddress(t *testing.T) {
	a, area := memory.MapAddress(0x001f, 1024)
	test.ExpectEquality(t, area, memory.Registers)
	test.ExpectEquality(t, a, uint16(0x1f))

	a, area = memory.MapAddress(0x005f, 1024)
	test.ExpectEquality(t, area, memory.IO)
	test.ExpectEquality(t, a, uint16(0x3f))

	a, area = memory.MapAddress(0x045f, 1024)
	test.ExpectEquality(t, area, memory.SRAM)
	test.ExpectEquality(t, a, uint16(0x3ff))

	_, area = memory.MapAddress(0x0460, 1024)
	test.ExpectEquality(t, area, memory.Undefined)
}

func TestRegisterView(t *testing.T) {
	var regs registers.Registers
	mem := memory.NewDataMemory(&regs, 1024)

	test.DemandSuccess(t, mem.Write(0x0010, 0xaa))
	test.ExpectEquality(t, regs.R[16], uint8(0xaa))

	regs.R[31] = 0x55
	v, err := mem.Read(0x001f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x55))
}

func TestCoreIORegisters(t *testing.T) {
	var regs registers.Registers
	mem := memory.NewDataMemory(&regs, 1024)
	regs.Reset(mem.RAMEnd())
	test.ExpectEquality(t, mem.RAMEnd(), uint16(0x045f))

	v, _ := mem.Read(addresses.SPL + addresses.DataOffset)
	test.ExpectEquality(t, v, uint8(0x5f))
	v, _ = mem.Read(addresses.SPH + addresses.DataOffset)
	test.ExpectEquality(t, v, uint8(0x04))

	mem.WriteIO(addresses.SPL, 0x00)
	mem.WriteIO(addresses.SPH, 0x02)
	test.ExpectEquality(t, regs.SP.Address(), uint16(0x0200))

	mem.WriteIO(addresses.SREG, 0x83)
	test.ExpectEquality(t, regs.Status.Interrupt, true)
	test.ExpectEquality(t, regs.Status.Zero, true)
	test.ExpectEquality(t, regs.Status.Carry, true)
	test.ExpectEquality(t, mem.ReadIO(addresses.SREG), uint8(0x83))
}

func TestPeripheralRouting(t *testing.T) {
	var regs registers.Registers
	mem := memory.NewDataMemory(&regs, 1024)

	p := &mockPeripheral{value: 0x42}
	mem.Attach(p, addresses.TCNT0, addresses.TCCR0)

	v, err := mem.Read(addresses.TCNT0 + addresses.DataOffset)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))

	test.DemandSuccess(t, mem.Write(addresses.TCCR0+addresses.DataOffset, 0x01))
	test.DemandEquality(t, len(p.written), 1)
	test.ExpectEquality(t, p.written[0], uint8(0x01))

	// the write did not reach plain storage
	test.ExpectEquality(t, mem.Peek(addresses.TCCR0), uint8(0))

	// unattached registers are plain storage
	mem.WriteIO(addresses.PORTB, 0x0f)
	test.ExpectEquality(t, mem.ReadIO(addresses.PORTB), uint8(0x0f))
}

func TestOutOfRange(t *testing.T) {
	var regs registers.Registers
	mem := memory.NewDataMemory(&regs, 1024)

	test.DemandSuccess(t, mem.Write(0x045f, 1))
	test.ExpectEquality(t, len(mem.SRAM()), 1024)
	test.ExpectEquality(t, mem.SRAM()[1023], uint8(1))

	err := mem.Write(0x0460, 1)
	test.ExpectSuccess(t, curated.Is(err, memory.MemoryOutOfRange))
	_, err = mem.Read(0xffff)
	test.ExpectSuccess(t, curated.Is(err, memory.MemoryOutOfRange))

	mem.Reset()
	v, _ := mem.Read(0x045f)
	test.ExpectEquality(t, v, uint8(0))
}

func TestFlash(t *testing.T) {
	f := memory.NewFlash(8)
	test.ExpectEquality(t, f.Words(), 4)

	w, err := f.ReadWord(3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0xffff))

	test.DemandSuccess(t, f.Load([]uint8{0xff, 0xcf, 0x08, 0x95}))
	w, _ = f.ReadWord(0)
	test.ExpectEquality(t, w, uint16(0xcfff))
	w, _ = f.ReadWord(1)
	test.ExpectEquality(t, w, uint16(0x9508))

	b, err := f.Byte(3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0x95))

	_, err = f.ReadWord(4)
	test.ExpectSuccess(t, curated.Is(err, memory.MemoryOutOfRange))
	_, err = f.Byte(8)
	test.ExpectSuccess(t, curated.Is(err, memory.MemoryOutOfRange))

	err = f.Load(make([]uint8, 9))
	test.ExpectSuccess(t, curated.Is(err, memory.ImageTooLarge))
}
