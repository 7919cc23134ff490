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
	"github.com/avrsim/avrsim/curated"
	"github.com/avrsim/avrsim/hardware/cpu/registers"
)

// IllegalOpcode is the pattern for program words that are not a supported
// instruction. The values are the program word and the byte address it was
// found at.
const IllegalOpcode = "illegal opcode: 0x%04x at 0x%04x"

// WordReader is implemented by program memory.
type WordReader interface {
	ReadWord(address uint16) (uint16, error)
}

// the word for LPM without operands.
const lpmImplied = 0x95c8

// IsTwoWord returns true if the opcode is the first word of a two word
// instruction. Used to decide how far a skip instruction skips.
func IsTwoWord(opcode uint16) bool {
	// JMP and CALL
	if opcode&0xfe0c == 0x940c {
		return true
	}
	// LDS and STS
	return opcode&0xfc0f == 0x9000
}

// five bit register number in bits 4 to 8.
func rd5(w uint16) int {
	return int(w>>4) & 0x1f
}

// five bit register number in bits 0 to 3 and 9.
func rr5(w uint16) int {
	return int(w&0x0f) | int(w>>5)&0x10
}

// upper register (r16 to r31) in bits 4 to 7.
func rd4(w uint16) int {
	return 16 + int(w>>4)&0x0f
}

// eight bit immediate in bits 0 to 3 and 8 to 11.
func k8(w uint16) uint32 {
	return uint32(w&0x0f) | uint32(w>>4)&0xf0
}

// signed offset of n bits.
func signed(v uint16, n uint) int {
	v &= 1<<n - 1
	if v&(1<<(n-1)) != 0 {
		return int(v) - 1<<n
	}
	return int(v)
}

// Decode the instruction at the word address.
func Decode(mem WordReader, address uint16) (Instruction, error) {
	w, err := mem.ReadWord(address)
	if err != nil {
		return Instruction{}, err
	}

	ins := Instruction{
		Address: address,
		Opcode:  w,
	}

	op, ok := decode(w, &ins)
	if !ok {
		return Instruction{}, curated.Errorf(IllegalOpcode, w, uint32(address)*2)
	}
	ins.Defn = &Definitions[op]

	if ins.Defn.Words == 2 {
		ins.Operand, err = mem.ReadWord(address + 1)
		if err != nil {
			return Instruction{}, err
		}
		switch op {
		case Jmp, Call:
			ins.K = (uint32(w>>3)&0x3e|uint32(w)&0x01)<<16 | uint32(ins.Operand)
		case Lds, Sts:
			ins.K = uint32(ins.Operand)
		}
	}

	return ins, nil
}

// decode fills in the operand fields and returns the operator. Returns false
// if the word is not a supported instruction.
func decode(w uint16, ins *Instruction) (Operator, bool) {
	switch w >> 12 {
	case 0x0:
		return decodeGroup0(w, ins)

	case 0x1, 0x2:
		ins.Rd = rd5(w)
		ins.Rr = rr5(w)
		return [...]Operator{And, Eor, Or, Mov, Cpse, Cp, Sub, Adc}[(w>>10)&0x07], true

	case 0x3, 0x4, 0x5, 0x6, 0x7, 0xe:
		ins.Rd = rd4(w)
		ins.K = k8(w)
		return [...]Operator{0x3: Cpi, 0x4: Sbci, 0x5: Subi, 0x6: Ori, 0x7: Andi, 0xe: Ldi}[w>>12], true

	case 0x8, 0xa:
		return decodeDisplacement(w, ins)

	case 0x9:
		return decodeGroup9(w, ins)

	case 0xb:
		ins.A = uint8(w&0x0f) | uint8(w>>5)&0x30
		if w&0x0800 == 0 {
			ins.Rd = rd5(w)
			return In, true
		}
		ins.Rr = rd5(w)
		return Out, true

	case 0xc, 0xd:
		ins.Offset = signed(w, 12)
		if w&0x1000 == 0 {
			return Rjmp, true
		}
		return Rcall, true

	case 0xf:
		return decodeGroupF(w, ins)
	}

	return 0, false
}

func decodeGroup0(w uint16, ins *Instruction) (Operator, bool) {
	switch w & 0xfc00 {
	case 0x0000:
		switch w & 0xff00 {
		case 0x0000:
			return Nop, w == 0x0000
		case 0x0100:
			ins.Rd = int(w>>4&0x0f) * 2
			ins.Rr = int(w&0x0f) * 2
			return Movw, true
		case 0x0200:
			ins.Rd = rd4(w)
			ins.Rr = 16 + int(w&0x0f)
			return Muls, true
		}

		// MULSU and the fractional multiplies use r16 to r23
		ins.Rd = 16 + int(w>>4&0x07)
		ins.Rr = 16 + int(w&0x07)
		return [...]Operator{Mulsu, Fmul, Fmuls, Fmulsu}[(w>>6)&0x02|(w>>3)&0x01], true

	case 0x0400:
		ins.Rd = rd5(w)
		ins.Rr = rr5(w)
		return Cpc, true
	case 0x0800:
		ins.Rd = rd5(w)
		ins.Rr = rr5(w)
		return Sbc, true
	}

	ins.Rd = rd5(w)
	ins.Rr = rr5(w)
	return Add, true
}

// LDD and STD. a displacement of zero through Y or Z is the plain LD or ST.
func decodeDisplacement(w uint16, ins *Instruction) (Operator, bool) {
	ins.Q = int(w&0x07) | int(w>>7)&0x18 | int(w>>8)&0x20
	ins.Pointer = registers.Z
	if w&0x0008 != 0 {
		ins.Pointer = registers.Y
	}

	store := w&0x0200 != 0
	if store {
		ins.Rr = rd5(w)
	} else {
		ins.Rd = rd5(w)
	}

	if ins.Q == 0 {
		if store {
			return St, true
		}
		return Ld, true
	}
	if store {
		return Std, true
	}
	return Ldd, true
}

func decodeGroup9(w uint16, ins *Instruction) (Operator, bool) {
	switch w & 0x0e00 {
	case 0x0000:
		ins.Rd = rd5(w)
		return decodeLoad(w, ins)
	case 0x0200:
		ins.Rr = rd5(w)
		return decodeStore(w, ins)
	case 0x0400:
		return decodeSingle(w, ins)
	case 0x0600:
		ins.Rd = 24 + int(w>>4&0x03)*2
		ins.K = uint32(w&0x0f) | uint32(w>>2)&0x30
		if w&0x0100 == 0 {
			return Adiw, true
		}
		return Sbiw, true
	case 0x0800, 0x0a00:
		ins.A = uint8(w>>3) & 0x1f
		ins.B = int(w & 0x07)
		return [...]Operator{Cbi, Sbic, Sbi, Sbis}[(w>>8)&0x03], true
	}

	// 0x9c00 to 0x9fff
	ins.Rd = rd5(w)
	ins.Rr = rr5(w)
	return Mul, true
}

// the pointer and mode for the indirect loads and stores, by low nibble.
func indirect(w uint16, ins *Instruction) bool {
	switch w & 0x0f {
	case 0x1:
		ins.Pointer, ins.Mode = registers.Z, PostIncrement
	case 0x2:
		ins.Pointer, ins.Mode = registers.Z, PreDecrement
	case 0x9:
		ins.Pointer, ins.Mode = registers.Y, PostIncrement
	case 0xa:
		ins.Pointer, ins.Mode = registers.Y, PreDecrement
	case 0xc:
		ins.Pointer, ins.Mode = registers.X, Unchanged
	case 0xd:
		ins.Pointer, ins.Mode = registers.X, PostIncrement
	case 0xe:
		ins.Pointer, ins.Mode = registers.X, PreDecrement
	default:
		return false
	}
	return true
}

func decodeLoad(w uint16, ins *Instruction) (Operator, bool) {
	switch w & 0x0f {
	case 0x0:
		return Lds, true
	case 0x4:
		ins.Pointer, ins.Mode = registers.Z, Unchanged
		return Lpm, true
	case 0x5:
		ins.Pointer, ins.Mode = registers.Z, PostIncrement
		return Lpm, true
	case 0xf:
		return Pop, true
	}
	return Ld, indirect(w, ins)
}

func decodeStore(w uint16, ins *Instruction) (Operator, bool) {
	switch w & 0x0f {
	case 0x0:
		return Sts, true
	case 0xf:
		// push takes the single register form
		ins.Rd = ins.Rr
		ins.Rr = 0
		return Push, true
	}
	return St, indirect(w, ins)
}

// 0x9400 to 0x95ff.
func decodeSingle(w uint16, ins *Instruction) (Operator, bool) {
	ins.Rd = rd5(w)

	switch w & 0x0f {
	case 0x0:
		return Com, true
	case 0x1:
		return Neg, true
	case 0x2:
		return Swap, true
	case 0x3:
		return Inc, true
	case 0x5:
		return Asr, true
	case 0x6:
		return Lsr, true
	case 0x7:
		return Ror, true
	case 0xa:
		return Dec, true
	case 0xc, 0xd:
		ins.Rd = 0
		return Jmp, true
	case 0xe, 0xf:
		ins.Rd = 0
		return Call, true
	case 0x8:
		ins.Rd = 0
		if w&0x0100 == 0 {
			ins.B = int(w>>4) & 0x07
			if w&0x0080 == 0 {
				return Bset, true
			}
			return Bclr, true
		}
		switch w {
		case 0x9508:
			return Ret, true
		case 0x9518:
			return Reti, true
		case 0x9588:
			return Sleep, true
		case 0x9598:
			return Break, true
		case 0x95a8:
			return Wdr, true
		case lpmImplied:
			ins.Pointer, ins.Mode = registers.Z, Unchanged
			return Lpm, true
		}
	case 0x9:
		ins.Rd = 0
		switch w {
		case 0x9409:
			return Ijmp, true
		case 0x9509:
			return Icall, true
		}
	}

	return 0, false
}

func decodeGroupF(w uint16, ins *Instruction) (Operator, bool) {
	if w&0x0800 == 0 {
		ins.Offset = signed(w>>3, 7)
		ins.B = int(w & 0x07)
		if w&0x0400 == 0 {
			return Brbs, true
		}
		return Brbc, true
	}

	// bit 3 is reserved for BLD, BST, SBRC and SBRS
	if w&0x0008 != 0 {
		return 0, false
	}

	ins.Rd = rd5(w)
	ins.B = int(w & 0x07)
	return [...]Operator{Bld, Bst, Sbrc, Sbrs}[(w>>9)&0x03], true
}
