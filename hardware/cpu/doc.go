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
// Package cpu emulates the AVRe core found in the ATmega8. The core executes
// instructions according to the program word read from flash at the address
// in the program counter. The word is decoded by the instructions package and
// the resulting Instruction is used to move execution of the program forward.
//
// The CPU type requires the register set, an implementation of the Data
// interface and an implementation of the Program interface. The memory
// package provides both.
//
//	regs := &registers.Registers{}
//	data := memory.NewDataMemory(regs, 1024)
//	flash := memory.NewFlash(8192)
//	mc := cpu.NewCPU(regs, data, flash)
//	mc.Reset()
//
//	for {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//		cycles += mc.LastResult.Cycles
//	}
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// The CPU does not check for pending interrupts. That is the job of the
// owner of the CPU, which will call EnterInterrupt() at an instruction
// boundary when InterruptsEnabled() is true and an interrupt is pending.
package cpu
