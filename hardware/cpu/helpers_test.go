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
package cpu_test

// helpers_test.go contains the support code required for the cpu_test
// package. it includes:
//
// o newCPU() - a CPU with a program loaded into flash from a list of words
//
// o step() - execute a single instruction, failing the test on error

import (
	"testing"

	"github.com/avrsim/avrsim/hardware/cpu"
	"github.com/avrsim/avrsim/hardware/cpu/registers"
	"github.com/avrsim/avrsim/hardware/memory"
	"github.com/avrsim/avrsim/test"
)

const (
	flashSize = 8192
	sramSize  = 1024
	ramEnd    = 0x045f
)

type machine struct {
	mc   *cpu.CPU
	regs *registers.Registers
	mem  *memory.DataMemory
}

func newCPU(t *testing.T, program ...uint16) machine {
	t.Helper()

	data := make([]uint8, 0, len(program)*2)
	for _, w := range program {
		data = append(data, uint8(w), uint8(w>>8))
	}

	flash := memory.NewFlash(flashSize)
	test.DemandSuccess(t, flash.Load(data))

	regs := &registers.Registers{}
	mem := memory.NewDataMemory(regs, sramSize)
	mc := cpu.NewCPU(regs, mem, flash)
	mc.Reset()

	return machine{mc: mc, regs: regs, mem: mem}
}

// step executes n instructions and returns the number of cycles consumed by
// the last one.
func (m machine) step(t *testing.T, n int) int {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, m.mc.ExecuteInstruction())
		test.DemandSuccess(t, m.mc.LastResult.IsValid())
	}
	return m.mc.LastResult.Cycles
}
