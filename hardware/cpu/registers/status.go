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
package registers

import (
	"strings"
)

// Bit positions of the flags in SREG.
const (
	BitCarry = iota
	BitZero
	BitNegative
	BitOverflow
	BitSign
	BitHalfCarry
	BitTransfer
	BitInterrupt
)

// StatusRegister is SREG, the flags of the CPU.
type StatusRegister struct {
	Interrupt bool
	Transfer  bool
	HalfCarry bool
	Sign      bool
	Overflow  bool
	Negative  bool
	Zero      bool
	Carry     bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SREG"
}

// String returns the flags in bit order, most significant first. Set flags
// are upper case.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(f bool, r rune) {
		if f {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}
	flag(sr.Interrupt, 'i')
	flag(sr.Transfer, 't')
	flag(sr.HalfCarry, 'h')
	flag(sr.Sign, 's')
	flag(sr.Overflow, 'v')
	flag(sr.Negative, 'n')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')
	return s.String()
}

// Reset clears all flags.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value returns the flags packed into a byte as they appear in SREG.
func (sr StatusRegister) Value() uint8 {
	var v uint8
	for i := 0; i < 8; i++ {
		if sr.Bit(i) {
			v |= 1 << i
		}
	}
	return v
}

// FromValue sets the flags from a byte, for example one that has been
// popped from the stack.
func (sr *StatusRegister) FromValue(v uint8) {
	for i := 0; i < 8; i++ {
		sr.SetBit(i, v&(1<<i) != 0)
	}
}

// Bit returns the state of the flag at bit position i.
func (sr StatusRegister) Bit(i int) bool {
	switch i & 0x07 {
	case BitCarry:
		return sr.Carry
	case BitZero:
		return sr.Zero
	case BitNegative:
		return sr.Negative
	case BitOverflow:
		return sr.Overflow
	case BitSign:
		return sr.Sign
	case BitHalfCarry:
		return sr.HalfCarry
	case BitTransfer:
		return sr.Transfer
	}
	return sr.Interrupt
}

// SetBit sets the state of the flag at bit position i.
func (sr *StatusRegister) SetBit(i int, v bool) {
	switch i & 0x07 {
	case BitCarry:
		sr.Carry = v
	case BitZero:
		sr.Zero = v
	case BitNegative:
		sr.Negative = v
	case BitOverflow:
		sr.Overflow = v
	case BitSign:
		sr.Sign = v
	case BitHalfCarry:
		sr.HalfCarry = v
	case BitTransfer:
		sr.Transfer = v
	case BitInterrupt:
		sr.Interrupt = v
	}
}
