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
package registers_test

import (
	"testing"

	"github.com/avrsim/avrsim/hardware/cpu/registers"
	"github.com/avrsim/avrsim/test"
)

func TestStatusValue(t *testing.T) {
	var sr registers.StatusRegister
	test.ExpectEquality(t, sr.String(), "ithsvnzc")
	test.ExpectEquality(t, sr.Value(), uint8(0))

	sr.Interrupt = true
	sr.Zero = true
	test.ExpectEquality(t, sr.String(), "IthsvnZc")
	test.ExpectEquality(t, sr.Value(), uint8(0x82))

	for v := 0; v < 256; v++ {
		sr.FromValue(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v))
	}

	sr.FromValue(0x01)
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.Bit(registers.BitCarry), true)
	sr.SetBit(registers.BitTransfer, true)
	test.ExpectEquality(t, sr.String(), "iThsvnzC")

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), uint8(0))
}

// the zero flag is set iff the result is zero and the carry flag is set iff
// there was an unsigned borrow
func TestSubtractFlags(t *testing.T) {
	var sr registers.StatusRegister
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			sr.Reset()
			sr.Interrupt = true
			sr.Transfer = true
			r := sr.Subtract(uint8(a), uint8(b), false, false)
			test.DemandEquality(t, r, uint8(a-b))
			test.DemandEquality(t, sr.Zero, a == b)
			test.DemandEquality(t, sr.Carry, a < b)
			test.DemandEquality(t, sr.Negative, r&0x80 != 0)
			test.DemandEquality(t, sr.HalfCarry, a&0x0f < b&0x0f)

			sa := int(int8(a))
			sb := int(int8(b))
			test.DemandEquality(t, sr.Overflow, sa-sb < -128 || sa-sb > 127)
			test.DemandEquality(t, sr.Sign, sa-sb < 0)

			// undocumented flags are untouched
			test.DemandEquality(t, sr.Interrupt, true)
			test.DemandEquality(t, sr.Transfer, true)
		}
	}
}

func TestSubtractEqual(t *testing.T) {
	var sr registers.StatusRegister

	// equal values do not borrow
	sr.Carry = true
	test.ExpectEquality(t, sr.Subtract(0xff, 0xff, false, false), uint8(0x00))
	test.ExpectEquality(t, sr.String(), "ithsvnZc")

	// unless there is a borrow in
	sr.Carry = true
	test.ExpectEquality(t, sr.Subtract(0xff, 0xff, true, false), uint8(0xff))
	test.ExpectEquality(t, sr.String(), "itHSvNzC")
}

func TestAddFlags(t *testing.T) {
	var sr registers.StatusRegister
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			sr.Reset()
			r := sr.Add(uint8(a), uint8(b), false)
			test.DemandEquality(t, r, uint8(a+b))
			test.DemandEquality(t, sr.Carry, a+b > 255)
			test.DemandEquality(t, sr.Zero, r == 0)
			test.DemandEquality(t, sr.HalfCarry, a&0x0f+b&0x0f > 0x0f)
			s := int(int8(a)) + int(int8(b))
			test.DemandEquality(t, sr.Overflow, s < -128 || s > 127)
			test.DemandEquality(t, sr.Sign, s < 0)
		}
	}
}

func TestCarryChain(t *testing.T) {
	var sr registers.StatusRegister

	// 0x01ff + 0x0001 as two byte additions
	lo := sr.Add(0xff, 0x01, false)
	hi := sr.Add(0x01, 0x00, true)
	test.ExpectEquality(t, lo, uint8(0x00))
	test.ExpectEquality(t, hi, uint8(0x02))
	test.ExpectEquality(t, sr.Carry, false)

	// 0x0100 - 0x0001. the zero flag of the low byte subtraction is kept
	// when the high byte result is zero
	lo = sr.Subtract(0x00, 0x01, false, false)
	test.ExpectEquality(t, sr.Carry, true)
	hi = sr.Subtract(0x01, 0x00, true, true)
	test.ExpectEquality(t, lo, uint8(0xff))
	test.ExpectEquality(t, hi, uint8(0x00))
	test.ExpectEquality(t, sr.Zero, false)
	test.ExpectEquality(t, sr.Carry, false)

	// 0x0100 - 0x0100 is zero across both bytes
	sr.Subtract(0x00, 0x00, false, false)
	test.ExpectEquality(t, sr.Zero, true)
	sr.Subtract(0x01, 0x01, true, true)
	test.ExpectEquality(t, sr.Zero, true)
}

func TestIncrementDecrement(t *testing.T) {
	var sr registers.StatusRegister
	sr.Carry = true

	test.ExpectEquality(t, sr.Increment(0x7f), uint8(0x80))
	test.ExpectEquality(t, sr.Overflow, true)
	test.ExpectEquality(t, sr.Negative, true)
	test.ExpectEquality(t, sr.Sign, false)

	test.ExpectEquality(t, sr.Increment(0xff), uint8(0x00))
	test.ExpectEquality(t, sr.Zero, true)
	test.ExpectEquality(t, sr.Overflow, false)

	test.ExpectEquality(t, sr.Decrement(0x80), uint8(0x7f))
	test.ExpectEquality(t, sr.Overflow, true)

	// carry is not affected by either instruction
	test.ExpectEquality(t, sr.Carry, true)
}

func TestShifts(t *testing.T) {
	var sr registers.StatusRegister

	test.ExpectEquality(t, sr.ShiftRightLogical(0x81), uint8(0x40))
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.Negative, false)
	test.ExpectEquality(t, sr.Overflow, true)

	test.ExpectEquality(t, sr.ShiftRightArithmetic(0x81), uint8(0xc0))
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.Negative, true)
	test.ExpectEquality(t, sr.Overflow, false)

	sr.Carry = true
	test.ExpectEquality(t, sr.RotateRight(0x02), uint8(0x81))
	test.ExpectEquality(t, sr.Carry, false)
	test.ExpectEquality(t, sr.RotateRight(0x01), uint8(0x00))
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.Zero, true)
}

func TestNegateComplement(t *testing.T) {
	var sr registers.StatusRegister

	test.ExpectEquality(t, sr.Negate(0x01), uint8(0xff))
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.Negate(0x00), uint8(0x00))
	test.ExpectEquality(t, sr.Carry, false)
	test.ExpectEquality(t, sr.Zero, true)
	test.ExpectEquality(t, sr.Negate(0x80), uint8(0x80))
	test.ExpectEquality(t, sr.Overflow, true)

	test.ExpectEquality(t, sr.Complement(0x0f), uint8(0xf0))
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.Overflow, false)
	test.ExpectEquality(t, sr.Negative, true)
}

func TestWordArithmetic(t *testing.T) {
	var sr registers.StatusRegister

	test.ExpectEquality(t, sr.AddWord(0x00ff, 1), uint16(0x0100))
	test.ExpectEquality(t, sr.Carry, false)
	test.ExpectEquality(t, sr.AddWord(0xffff, 1), uint16(0x0000))
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.Zero, true)
	test.ExpectEquality(t, sr.AddWord(0x7fff, 1), uint16(0x8000))
	test.ExpectEquality(t, sr.Overflow, true)

	test.ExpectEquality(t, sr.SubtractWord(0x0000, 1), uint16(0xffff))
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.SubtractWord(0x8000, 1), uint16(0x7fff))
	test.ExpectEquality(t, sr.Overflow, true)
	test.ExpectEquality(t, sr.Carry, false)
}
