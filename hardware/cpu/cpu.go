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
package cpu

import (
	"fmt"

	"github.com/avrsim/avrsim/curated"
	"github.com/avrsim/avrsim/hardware/cpu/execution"
	"github.com/avrsim/avrsim/hardware/cpu/instructions"
	"github.com/avrsim/avrsim/hardware/cpu/registers"
	"github.com/avrsim/avrsim/hardware/memory"
	"github.com/avrsim/avrsim/hardware/memory/addresses"
	"github.com/avrsim/avrsim/logger"
)

// UnhandledOperator is the pattern for decoded instructions that the CPU has
// no implementation for.
const UnhandledOperator = "unhandled operator: %v"

// InterruptCycles is the number of cycles taken to enter an interrupt.
const InterruptCycles = 4

// Program defines the operations on program memory required by the CPU.
type Program interface {
	instructions.WordReader

	// byte access for LPM
	Byte(address uint16) (uint8, error)

	// size of program memory in words
	Words() int
}

// Data defines the operations on data memory required by the CPU.
type Data interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error

	// access to I/O registers by I/O address, for IN, OUT and the bit
	// instructions
	ReadIO(register uint8) uint8
	WriteIO(register uint8, data uint8)

	// the address of the last byte of SRAM
	RAMEnd() uint16
}

// CPU implements the AVRe core. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	Regs *registers.Registers

	mem  Data
	prog Program

	// the result of the most recent call to ExecuteInstruction()
	LastResult execution.Result

	// interrupts are not serviced immediately after the global interrupt
	// flag has been set or after a RETI. at least one more instruction must
	// be executed first
	interruptDelay bool

	// SLEEP has been executed with the sleep enable bit set. the CPU stays
	// asleep until an interrupt is entered
	Sleeping bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU should be reset before use.
func NewCPU(regs *registers.Registers, mem Data, prog Program) *CPU {
	return &CPU{
		Regs: regs,
		mem:  mem,
		prog: prog,
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s",
		mc.Regs.PC.Label(), mc.Regs.PC,
		mc.Regs.SP.Label(), mc.Regs.SP,
		mc.Regs.Status.Label(), mc.Regs.Status)
}

// Reset reinitialises all registers. The stack pointer is set to the top of
// SRAM and the program counter to the reset vector.
func (mc *CPU) Reset() {
	mc.Regs.Reset(mc.mem.RAMEnd())
	mc.LastResult.Reset()
	mc.interruptDelay = false
	mc.Sleeping = false
}

// InterruptsEnabled returns true if an interrupt can be entered at the
// current instruction boundary.
func (mc *CPU) InterruptsEnabled() bool {
	return mc.Regs.Status.Interrupt && !mc.interruptDelay
}

func (mc *CPU) push(v uint8) error {
	return mc.mem.Write(mc.Regs.SP.Decrement(), v)
}

func (mc *CPU) pop() (uint8, error) {
	return mc.mem.Read(mc.Regs.SP.Increment())
}

// the low byte of the PC is pushed first.
func (mc *CPU) pushPC() error {
	pc := mc.Regs.PC.Address()
	if err := mc.push(uint8(pc)); err != nil {
		return err
	}
	return mc.push(uint8(pc >> 8))
}

func (mc *CPU) popPC() error {
	hi, err := mc.pop()
	if err != nil {
		return err
	}
	lo, err := mc.pop()
	if err != nil {
		return err
	}
	mc.Regs.PC.Load(uint16(hi)<<8 | uint16(lo))
	return nil
}

// EnterInterrupt pushes the program counter and the status register, clears
// the global interrupt flag and jumps to the vector. The vector is a word
// address. Returns the number of cycles consumed.
func (mc *CPU) EnterInterrupt(vector uint16) (int, error) {
	if err := mc.pushPC(); err != nil {
		return 0, err
	}
	if err := mc.push(mc.Regs.Status.Value()); err != nil {
		return 0, err
	}
	mc.Regs.Status.Interrupt = false
	mc.Regs.PC.Load(vector)

	if mc.Sleeping {
		mc.Sleeping = false
		logger.Logf(logger.Allow, "cpu", "wake on interrupt vector 0x%04x", vector*2)
	}

	return InterruptCycles, nil
}

// skip the next instruction. the extra cost of the skip is the number of
// words skipped.
func (mc *CPU) skip() error {
	w, err := mc.prog.ReadWord(mc.Regs.PC.Address())
	if err != nil {
		return err
	}

	n := 1
	if instructions.IsTwoWord(w) {
		n = 2
	}

	mc.Regs.PC.Add(uint16(n))
	mc.LastResult.Skipped = n
	mc.LastResult.Cycles += n

	return nil
}

// jump to an absolute word address. the address must be inside program
// memory.
func (mc *CPU) jump(address uint32) error {
	if address >= uint32(mc.prog.Words()) {
		return curated.Errorf(memory.MemoryOutOfRange, fmt.Sprintf("jump to program address %#x", address*2))
	}
	mc.Regs.PC.Load(uint16(address))
	return nil
}

func (mc *CPU) branch(ins *instructions.Instruction) {
	mc.Regs.PC.Relative(ins.Offset)
	mc.LastResult.BranchTaken = true
	mc.LastResult.Cycles++
}

// the effective address for the indirect instructions, with the pointer
// register changed as required by the pointer mode.
func (mc *CPU) indirect(ins *instructions.Instruction) uint16 {
	p := mc.Regs.R.Word(ins.Pointer)
	switch ins.Mode {
	case instructions.PreDecrement:
		p--
		mc.Regs.R.SetWord(ins.Pointer, p)
	case instructions.PostIncrement:
		mc.Regs.R.SetWord(ins.Pointer, p+1)
	}
	return p
}

// ExecuteInstruction steps the CPU forward one instruction. The basic process
// when executing an instruction is this:
//
//  1. decode the instruction at the program counter
//  2. advance the program counter past the instruction
//  3. using the operator as a guide, perform the instruction
//
// The number of cycles consumed is in LastResult.Cycles.
func (mc *CPU) ExecuteInstruction() error {
	mc.interruptDelay = false

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Regs.PC.Address()

	ins, err := instructions.Decode(mc.prog, mc.Regs.PC.Address())
	if err != nil {
		return err
	}

	mc.LastResult.Instruction = ins
	mc.LastResult.Cycles = ins.Defn.Cycles
	mc.Regs.PC.Add(uint16(ins.Words()))

	enabled := mc.Regs.Status.Interrupt

	err = mc.execute(&ins)
	if err != nil {
		return err
	}

	// the global interrupt flag has been set by this instruction
	if !enabled && mc.Regs.Status.Interrupt {
		mc.interruptDelay = true
	}

	mc.LastResult.Final = true

	// validity check. there's no need to enable unless you've just added a
	// new operator and want to check the cycle counts.
	// return mc.LastResult.IsValid()

	return nil
}

func (mc *CPU) execute(ins *instructions.Instruction) error {
	r := &mc.Regs.R
	sr := &mc.Regs.Status

	var err error

	switch ins.Defn.Operator {
	case instructions.Nop, instructions.Wdr, instructions.Break:

	case instructions.Add:
		r[ins.Rd] = sr.Add(r[ins.Rd], r[ins.Rr], false)

	case instructions.Adc:
		r[ins.Rd] = sr.Add(r[ins.Rd], r[ins.Rr], true)

	case instructions.Sub:
		r[ins.Rd] = sr.Subtract(r[ins.Rd], r[ins.Rr], false, false)

	case instructions.Sbc:
		r[ins.Rd] = sr.Subtract(r[ins.Rd], r[ins.Rr], true, true)

	case instructions.And:
		r[ins.Rd] = sr.Logic(r[ins.Rd] & r[ins.Rr])

	case instructions.Or:
		r[ins.Rd] = sr.Logic(r[ins.Rd] | r[ins.Rr])

	case instructions.Eor:
		r[ins.Rd] = sr.Logic(r[ins.Rd] ^ r[ins.Rr])

	case instructions.Cp:
		sr.Subtract(r[ins.Rd], r[ins.Rr], false, false)

	case instructions.Cpc:
		sr.Subtract(r[ins.Rd], r[ins.Rr], true, true)

	case instructions.Cpse:
		if r[ins.Rd] == r[ins.Rr] {
			err = mc.skip()
		}

	case instructions.Mov:
		r[ins.Rd] = r[ins.Rr]

	case instructions.Movw:
		r.SetWord(ins.Rd, r.Word(ins.Rr))

	case instructions.Mul:
		p := uint16(r[ins.Rd]) * uint16(r[ins.Rr])
		r.SetWord(0, sr.Product(p, false))

	case instructions.Muls:
		p := int16(int8(r[ins.Rd])) * int16(int8(r[ins.Rr]))
		r.SetWord(0, sr.Product(uint16(p), false))

	case instructions.Mulsu:
		p := int16(int8(r[ins.Rd])) * int16(r[ins.Rr])
		r.SetWord(0, sr.Product(uint16(p), false))

	case instructions.Fmul:
		p := uint16(r[ins.Rd]) * uint16(r[ins.Rr])
		r.SetWord(0, sr.Product(p, true))

	case instructions.Fmuls:
		p := int16(int8(r[ins.Rd])) * int16(int8(r[ins.Rr]))
		r.SetWord(0, sr.Product(uint16(p), true))

	case instructions.Fmulsu:
		p := int16(int8(r[ins.Rd])) * int16(r[ins.Rr])
		r.SetWord(0, sr.Product(uint16(p), true))

	case instructions.Subi:
		r[ins.Rd] = sr.Subtract(r[ins.Rd], uint8(ins.K), false, false)

	case instructions.Sbci:
		r[ins.Rd] = sr.Subtract(r[ins.Rd], uint8(ins.K), true, true)

	case instructions.Andi:
		r[ins.Rd] = sr.Logic(r[ins.Rd] & uint8(ins.K))

	case instructions.Ori:
		r[ins.Rd] = sr.Logic(r[ins.Rd] | uint8(ins.K))

	case instructions.Cpi:
		sr.Subtract(r[ins.Rd], uint8(ins.K), false, false)

	case instructions.Ldi:
		r[ins.Rd] = uint8(ins.K)

	case instructions.Adiw:
		r.SetWord(ins.Rd, sr.AddWord(r.Word(ins.Rd), uint8(ins.K)))

	case instructions.Sbiw:
		r.SetWord(ins.Rd, sr.SubtractWord(r.Word(ins.Rd), uint8(ins.K)))

	case instructions.Com:
		r[ins.Rd] = sr.Complement(r[ins.Rd])

	case instructions.Neg:
		r[ins.Rd] = sr.Negate(r[ins.Rd])

	case instructions.Swap:
		r[ins.Rd] = r[ins.Rd]<<4 | r[ins.Rd]>>4

	case instructions.Inc:
		r[ins.Rd] = sr.Increment(r[ins.Rd])

	case instructions.Dec:
		r[ins.Rd] = sr.Decrement(r[ins.Rd])

	case instructions.Asr:
		r[ins.Rd] = sr.ShiftRightArithmetic(r[ins.Rd])

	case instructions.Lsr:
		r[ins.Rd] = sr.ShiftRightLogical(r[ins.Rd])

	case instructions.Ror:
		r[ins.Rd] = sr.RotateRight(r[ins.Rd])

	case instructions.Push:
		err = mc.push(r[ins.Rd])

	case instructions.Pop:
		r[ins.Rd], err = mc.pop()

	case instructions.Bset:
		sr.SetBit(ins.B, true)

	case instructions.Bclr:
		sr.SetBit(ins.B, false)

	case instructions.Rjmp:
		mc.Regs.PC.Relative(ins.Offset)

	case instructions.Rcall:
		err = mc.pushPC()
		mc.Regs.PC.Relative(ins.Offset)

	case instructions.Jmp:
		err = mc.jump(ins.K)

	case instructions.Call:
		err = mc.pushPC()
		if err == nil {
			err = mc.jump(ins.K)
		}

	case instructions.Ijmp:
		mc.Regs.PC.Load(r.Word(registers.Z))

	case instructions.Icall:
		err = mc.pushPC()
		mc.Regs.PC.Load(r.Word(registers.Z))

	case instructions.Ret:
		err = mc.popPC()

	case instructions.Reti:
		var v uint8
		v, err = mc.pop()
		if err != nil {
			return err
		}
		sr.FromValue(v)
		err = mc.popPC()
		sr.Interrupt = true
		mc.interruptDelay = true

	case instructions.Brbs:
		if sr.Bit(ins.B) {
			mc.branch(ins)
		}

	case instructions.Brbc:
		if !sr.Bit(ins.B) {
			mc.branch(ins)
		}

	case instructions.Sbrc:
		if r[ins.Rd]&(1<<ins.B) == 0 {
			err = mc.skip()
		}

	case instructions.Sbrs:
		if r[ins.Rd]&(1<<ins.B) != 0 {
			err = mc.skip()
		}

	case instructions.Sbic:
		if mc.mem.ReadIO(ins.A)&(1<<ins.B) == 0 {
			err = mc.skip()
		}

	case instructions.Sbis:
		if mc.mem.ReadIO(ins.A)&(1<<ins.B) != 0 {
			err = mc.skip()
		}

	case instructions.Sbi:
		mc.mem.WriteIO(ins.A, mc.mem.ReadIO(ins.A)|1<<ins.B)

	case instructions.Cbi:
		mc.mem.WriteIO(ins.A, mc.mem.ReadIO(ins.A)&^(1<<ins.B))

	case instructions.Bst:
		sr.Transfer = r[ins.Rd]&(1<<ins.B) != 0

	case instructions.Bld:
		if sr.Transfer {
			r[ins.Rd] |= 1 << ins.B
		} else {
			r[ins.Rd] &^= 1 << ins.B
		}

	case instructions.Ld:
		r[ins.Rd], err = mc.mem.Read(mc.indirect(ins))

	case instructions.St:
		// the register is read before the pointer is changed
		v := r[ins.Rr]
		err = mc.mem.Write(mc.indirect(ins), v)

	case instructions.Ldd:
		r[ins.Rd], err = mc.mem.Read(r.Word(ins.Pointer) + uint16(ins.Q))

	case instructions.Std:
		err = mc.mem.Write(r.Word(ins.Pointer)+uint16(ins.Q), r[ins.Rr])

	case instructions.Lds:
		r[ins.Rd], err = mc.mem.Read(uint16(ins.K))

	case instructions.Sts:
		err = mc.mem.Write(uint16(ins.K), r[ins.Rr])

	case instructions.Lpm:
		r[ins.Rd], err = mc.prog.Byte(mc.indirect(ins))

	case instructions.In:
		r[ins.Rd] = mc.mem.ReadIO(ins.A)

	case instructions.Out:
		mc.mem.WriteIO(ins.A, r[ins.Rr])

	case instructions.Sleep:
		if mc.mem.ReadIO(addresses.MCUCR)&(1<<addresses.SE) != 0 {
			mc.Sleeping = true
			logger.Logf(logger.Allow, "cpu", "sleep at 0x%04x", uint32(mc.LastResult.Address)*2)
		}

	default:
		return curated.Errorf(UnhandledOperator, ins.Defn.Operator)
	}

	return err
}
