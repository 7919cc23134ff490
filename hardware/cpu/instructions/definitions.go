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

import "fmt"

// Definition defines each instruction in the instruction set; one per
// Operator.
type Definition struct {
	Operator       Operator
	Mnemonic       string
	Words          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%s +%dwords (%d cycles) [mode=%d effect=%s]", defn.Mnemonic, defn.Words, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a conditional branch. A taken
// branch costs one cycle more than the nominal count.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == StatusBranch
}

// IsSkip returns true if the instruction conditionally skips the next
// instruction. A skip costs one cycle more for every word skipped.
func (defn Definition) IsSkip() bool {
	switch defn.Operator {
	case Cpse, Sbrc, Sbrs, Sbic, Sbis:
		return true
	}
	return false
}

// Definitions is indexed by Operator. The Cycles field is the nominal cost
// of the instruction on the AVRe core.
var Definitions = [NumOperators]Definition{
	Nop:    {Operator: Nop, Mnemonic: "nop", Words: 1, Cycles: 1, AddressingMode: Implied, Effect: Control},
	Add:    {Operator: Add, Mnemonic: "add", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Modify},
	Adc:    {Operator: Adc, Mnemonic: "adc", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Modify},
	Sub:    {Operator: Sub, Mnemonic: "sub", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Modify},
	Sbc:    {Operator: Sbc, Mnemonic: "sbc", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Modify},
	And:    {Operator: And, Mnemonic: "and", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Modify},
	Or:     {Operator: Or, Mnemonic: "or", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Modify},
	Eor:    {Operator: Eor, Mnemonic: "eor", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Modify},
	Cp:     {Operator: Cp, Mnemonic: "cp", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Modify},
	Cpc:    {Operator: Cpc, Mnemonic: "cpc", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Modify},
	Cpse:   {Operator: Cpse, Mnemonic: "cpse", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Flow},
	Mov:    {Operator: Mov, Mnemonic: "mov", Words: 1, Cycles: 1, AddressingMode: TwoRegisters, Effect: Modify},
	Movw:   {Operator: Movw, Mnemonic: "movw", Words: 1, Cycles: 1, AddressingMode: RegisterPairs, Effect: Modify},
	Mul:    {Operator: Mul, Mnemonic: "mul", Words: 1, Cycles: 2, AddressingMode: TwoRegisters, Effect: Modify},
	Muls:   {Operator: Muls, Mnemonic: "muls", Words: 1, Cycles: 2, AddressingMode: TwoRegisters, Effect: Modify},
	Mulsu:  {Operator: Mulsu, Mnemonic: "mulsu", Words: 1, Cycles: 2, AddressingMode: TwoRegisters, Effect: Modify},
	Fmul:   {Operator: Fmul, Mnemonic: "fmul", Words: 1, Cycles: 2, AddressingMode: TwoRegisters, Effect: Modify},
	Fmuls:  {Operator: Fmuls, Mnemonic: "fmuls", Words: 1, Cycles: 2, AddressingMode: TwoRegisters, Effect: Modify},
	Fmulsu: {Operator: Fmulsu, Mnemonic: "fmulsu", Words: 1, Cycles: 2, AddressingMode: TwoRegisters, Effect: Modify},
	Subi:   {Operator: Subi, Mnemonic: "subi", Words: 1, Cycles: 1, AddressingMode: Immediate, Effect: Modify},
	Sbci:   {Operator: Sbci, Mnemonic: "sbci", Words: 1, Cycles: 1, AddressingMode: Immediate, Effect: Modify},
	Andi:   {Operator: Andi, Mnemonic: "andi", Words: 1, Cycles: 1, AddressingMode: Immediate, Effect: Modify},
	Ori:    {Operator: Ori, Mnemonic: "ori", Words: 1, Cycles: 1, AddressingMode: Immediate, Effect: Modify},
	Cpi:    {Operator: Cpi, Mnemonic: "cpi", Words: 1, Cycles: 1, AddressingMode: Immediate, Effect: Modify},
	Ldi:    {Operator: Ldi, Mnemonic: "ldi", Words: 1, Cycles: 1, AddressingMode: Immediate, Effect: Modify},
	Adiw:   {Operator: Adiw, Mnemonic: "adiw", Words: 1, Cycles: 2, AddressingMode: WordImmediate, Effect: Modify},
	Sbiw:   {Operator: Sbiw, Mnemonic: "sbiw", Words: 1, Cycles: 2, AddressingMode: WordImmediate, Effect: Modify},
	Com:    {Operator: Com, Mnemonic: "com", Words: 1, Cycles: 1, AddressingMode: Register, Effect: Modify},
	Neg:    {Operator: Neg, Mnemonic: "neg", Words: 1, Cycles: 1, AddressingMode: Register, Effect: Modify},
	Swap:   {Operator: Swap, Mnemonic: "swap", Words: 1, Cycles: 1, AddressingMode: Register, Effect: Modify},
	Inc:    {Operator: Inc, Mnemonic: "inc", Words: 1, Cycles: 1, AddressingMode: Register, Effect: Modify},
	Dec:    {Operator: Dec, Mnemonic: "dec", Words: 1, Cycles: 1, AddressingMode: Register, Effect: Modify},
	Asr:    {Operator: Asr, Mnemonic: "asr", Words: 1, Cycles: 1, AddressingMode: Register, Effect: Modify},
	Lsr:    {Operator: Lsr, Mnemonic: "lsr", Words: 1, Cycles: 1, AddressingMode: Register, Effect: Modify},
	Ror:    {Operator: Ror, Mnemonic: "ror", Words: 1, Cycles: 1, AddressingMode: Register, Effect: Modify},
	Push:   {Operator: Push, Mnemonic: "push", Words: 1, Cycles: 2, AddressingMode: Register, Effect: Write},
	Pop:    {Operator: Pop, Mnemonic: "pop", Words: 1, Cycles: 2, AddressingMode: Register, Effect: Read},
	Bset:   {Operator: Bset, Mnemonic: "bset", Words: 1, Cycles: 1, AddressingMode: StatusBit, Effect: Modify},
	Bclr:   {Operator: Bclr, Mnemonic: "bclr", Words: 1, Cycles: 1, AddressingMode: StatusBit, Effect: Modify},
	Rjmp:   {Operator: Rjmp, Mnemonic: "rjmp", Words: 1, Cycles: 2, AddressingMode: Relative, Effect: Flow},
	Rcall:  {Operator: Rcall, Mnemonic: "rcall", Words: 1, Cycles: 3, AddressingMode: Relative, Effect: Subroutine},
	Jmp:    {Operator: Jmp, Mnemonic: "jmp", Words: 2, Cycles: 3, AddressingMode: Absolute, Effect: Flow},
	Call:   {Operator: Call, Mnemonic: "call", Words: 2, Cycles: 4, AddressingMode: Absolute, Effect: Subroutine},
	Ijmp:   {Operator: Ijmp, Mnemonic: "ijmp", Words: 1, Cycles: 2, AddressingMode: Implied, Effect: Flow},
	Icall:  {Operator: Icall, Mnemonic: "icall", Words: 1, Cycles: 3, AddressingMode: Implied, Effect: Subroutine},
	Ret:    {Operator: Ret, Mnemonic: "ret", Words: 1, Cycles: 4, AddressingMode: Implied, Effect: Subroutine},
	Reti:   {Operator: Reti, Mnemonic: "reti", Words: 1, Cycles: 4, AddressingMode: Implied, Effect: Interrupt},
	Brbs:   {Operator: Brbs, Mnemonic: "brbs", Words: 1, Cycles: 1, AddressingMode: StatusBranch, Effect: Flow},
	Brbc:   {Operator: Brbc, Mnemonic: "brbc", Words: 1, Cycles: 1, AddressingMode: StatusBranch, Effect: Flow},
	Sbrc:   {Operator: Sbrc, Mnemonic: "sbrc", Words: 1, Cycles: 1, AddressingMode: RegisterBit, Effect: Flow},
	Sbrs:   {Operator: Sbrs, Mnemonic: "sbrs", Words: 1, Cycles: 1, AddressingMode: RegisterBit, Effect: Flow},
	Sbic:   {Operator: Sbic, Mnemonic: "sbic", Words: 1, Cycles: 1, AddressingMode: IOBit, Effect: Flow},
	Sbis:   {Operator: Sbis, Mnemonic: "sbis", Words: 1, Cycles: 1, AddressingMode: IOBit, Effect: Flow},
	Sbi:    {Operator: Sbi, Mnemonic: "sbi", Words: 1, Cycles: 2, AddressingMode: IOBit, Effect: Modify},
	Cbi:    {Operator: Cbi, Mnemonic: "cbi", Words: 1, Cycles: 2, AddressingMode: IOBit, Effect: Modify},
	Bst:    {Operator: Bst, Mnemonic: "bst", Words: 1, Cycles: 1, AddressingMode: RegisterBit, Effect: Modify},
	Bld:    {Operator: Bld, Mnemonic: "bld", Words: 1, Cycles: 1, AddressingMode: RegisterBit, Effect: Modify},
	Ld:     {Operator: Ld, Mnemonic: "ld", Words: 1, Cycles: 2, AddressingMode: Indirect, Effect: Read},
	St:     {Operator: St, Mnemonic: "st", Words: 1, Cycles: 2, AddressingMode: Indirect, Effect: Write},
	Ldd:    {Operator: Ldd, Mnemonic: "ldd", Words: 1, Cycles: 2, AddressingMode: Displacement, Effect: Read},
	Std:    {Operator: Std, Mnemonic: "std", Words: 1, Cycles: 2, AddressingMode: Displacement, Effect: Write},
	Lds:    {Operator: Lds, Mnemonic: "lds", Words: 2, Cycles: 2, AddressingMode: Direct, Effect: Read},
	Sts:    {Operator: Sts, Mnemonic: "sts", Words: 2, Cycles: 2, AddressingMode: Direct, Effect: Write},
	Lpm:    {Operator: Lpm, Mnemonic: "lpm", Words: 1, Cycles: 3, AddressingMode: ProgramIndirect, Effect: Read},
	In:     {Operator: In, Mnemonic: "in", Words: 1, Cycles: 1, AddressingMode: IOAddress, Effect: Read},
	Out:    {Operator: Out, Mnemonic: "out", Words: 1, Cycles: 1, AddressingMode: IOAddress, Effect: Write},
	Sleep:  {Operator: Sleep, Mnemonic: "sleep", Words: 1, Cycles: 1, AddressingMode: Implied, Effect: Control},
	Wdr:    {Operator: Wdr, Mnemonic: "wdr", Words: 1, Cycles: 1, AddressingMode: Implied, Effect: Control},
	Break:  {Operator: Break, Mnemonic: "break", Words: 1, Cycles: 1, AddressingMode: Implied, Effect: Control},
}
