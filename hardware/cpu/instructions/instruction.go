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
package instructions

import (
	"fmt"

	"github.com/avrsim/avrsim/hardware/cpu/registers"
)

// Instruction is a decoded instruction. Only the fields used by the
// addressing mode of the instruction are meaningful.
type Instruction struct {
	Defn *Definition

	// word address of the instruction and the program words it was decoded
	// from. Operand is only meaningful for two word instructions
	Address uint16
	Opcode  uint16
	Operand uint16

	// register numbers
	Rd int
	Rr int

	// immediate value, data address or program address
	K uint32

	// signed word offset for relative jumps and branches
	Offset int

	// I/O address
	A uint8

	// bit number for bit operations. the SREG bit for BSET, BCLR, BRBS and
	// BRBC
	B int

	// displacement for LDD and STD
	Q int

	// pointer register (registers.X, Y or Z) and how it is changed
	Pointer int
	Mode    PointerMode
}

// Operator returns the operator of the instruction.
func (ins Instruction) Operator() Operator {
	return ins.Defn.Operator
}

// Words returns the number of program words occupied by the instruction.
func (ins Instruction) Words() int {
	return ins.Defn.Words
}

var branchSet = [8]string{"brcs", "breq", "brmi", "brvs", "brlt", "brhs", "brts", "brie"}
var branchClear = [8]string{"brcc", "brne", "brpl", "brvc", "brge", "brhc", "brtc", "brid"}
var flagSet = [8]string{"sec", "sez", "sen", "sev", "ses", "seh", "set", "sei"}
var flagClear = [8]string{"clc", "clz", "cln", "clv", "cls", "clh", "clt", "cli"}

// Mnemonic returns the mnemonic as it would be written by a programmer. The
// SREG instructions use their aliases, for example "breq" rather than
// "brbs 1".
func (ins Instruction) Mnemonic() string {
	switch ins.Defn.Operator {
	case Brbs:
		return branchSet[ins.B&7]
	case Brbc:
		return branchClear[ins.B&7]
	case Bset:
		return flagSet[ins.B&7]
	case Bclr:
		return flagClear[ins.B&7]
	}
	return ins.Defn.Mnemonic
}

func (ins Instruction) pointer() string {
	p := registers.PointerName(ins.Pointer)
	switch ins.Mode {
	case PostIncrement:
		return p + "+"
	case PreDecrement:
		return "-" + p
	}
	return p
}

// Operands returns the operands in assembler syntax. Immediates are
// unsigned decimal, relative offsets are signed words and I/O and data
// addresses are hexadecimal.
func (ins Instruction) Operands() string {
	switch ins.Defn.AddressingMode {
	case Register:
		return fmt.Sprintf("r%d", ins.Rd)
	case TwoRegisters:
		return fmt.Sprintf("r%d, r%d", ins.Rd, ins.Rr)
	case RegisterPairs:
		return fmt.Sprintf("r%d, r%d", ins.Rd, ins.Rr)
	case Immediate:
		return fmt.Sprintf("r%d, %d", ins.Rd, ins.K)
	case WordImmediate:
		return fmt.Sprintf("r%d:r%d, %d", ins.Rd+1, ins.Rd, ins.K)
	case Relative, StatusBranch:
		return fmt.Sprintf("%d", ins.Offset)
	case Absolute:
		return fmt.Sprintf("0x%04x", ins.K*2)
	case RegisterBit:
		return fmt.Sprintf("r%d, %d", ins.Rd, ins.B)
	case IOBit:
		return fmt.Sprintf("0x%02x, %d", ins.A, ins.B)
	case IOAddress:
		if ins.Defn.Operator == Out {
			return fmt.Sprintf("0x%02x, r%d", ins.A, ins.Rr)
		}
		return fmt.Sprintf("r%d, 0x%02x", ins.Rd, ins.A)
	case Indirect:
		if ins.Defn.Operator == St {
			return fmt.Sprintf("%s, r%d", ins.pointer(), ins.Rr)
		}
		return fmt.Sprintf("r%d, %s", ins.Rd, ins.pointer())
	case Displacement:
		if ins.Defn.Operator == Std {
			return fmt.Sprintf("%s+%d, r%d", ins.pointer(), ins.Q, ins.Rr)
		}
		return fmt.Sprintf("r%d, %s+%d", ins.Rd, ins.pointer(), ins.Q)
	case Direct:
		if ins.Defn.Operator == Sts {
			return fmt.Sprintf("0x%04x, r%d", ins.K, ins.Rr)
		}
		return fmt.Sprintf("r%d, 0x%04x", ins.Rd, ins.K)
	case ProgramIndirect:
		// the form without operands loads r0 from z
		if ins.Opcode == lpmImplied {
			return ""
		}
		return fmt.Sprintf("r%d, %s", ins.Rd, ins.pointer())
	}
	return ""
}

// String returns the instruction in assembler syntax. For example:
//
//	rjmp -1
//	subi r18, 255
//	ldd r24, y+3
func (ins Instruction) String() string {
	if ins.Defn == nil {
		return "undecoded instruction"
	}
	o := ins.Operands()
	if o == "" {
		return ins.Mnemonic()
	}
	return fmt.Sprintf("%s %s", ins.Mnemonic(), o)
}
