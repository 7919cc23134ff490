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

// Operator identifies a single instruction of the instruction set.
type Operator int

// List of supported operators.
const (
	Nop Operator = iota

	// register to register
	Add
	Adc
	Sub
	Sbc
	And
	Or
	Eor
	Cp
	Cpc
	Cpse
	Mov
	Movw
	Mul
	Muls
	Mulsu
	Fmul
	Fmuls
	Fmulsu

	// register and immediate
	Subi
	Sbci
	Andi
	Ori
	Cpi
	Ldi
	Adiw
	Sbiw

	// single register
	Com
	Neg
	Swap
	Inc
	Dec
	Asr
	Lsr
	Ror
	Push
	Pop

	// status register
	Bset
	Bclr

	// flow
	Rjmp
	Rcall
	Jmp
	Call
	Ijmp
	Icall
	Ret
	Reti
	Brbs
	Brbc
	Sbrc
	Sbrs
	Sbic
	Sbis

	// bit operations
	Sbi
	Cbi
	Bst
	Bld

	// data transfer
	Ld
	St
	Ldd
	Std
	Lds
	Sts
	Lpm
	In
	Out

	// MCU control
	Sleep
	Wdr
	Break

	// NumOperators is the number of supported operators
	NumOperators
)

func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "unknown"
	}
	return Definitions[op].Mnemonic
}
