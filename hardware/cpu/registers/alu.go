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

func bit(v uint8, n uint) bool {
	return v&(1<<n) != 0
}

// sets N, Z and S for an eight bit result. V must already be set.
func (sr *StatusRegister) setNZS(r uint8) {
	sr.Negative = bit(r, 7)
	sr.Zero = r == 0
	sr.Sign = sr.Negative != sr.Overflow
}

// Add a and b, with the carry flag if carry is true. Affects H, S, V, N, Z
// and C.
func (sr *StatusRegister) Add(a, b uint8, carry bool) uint8 {
	r := a + b
	if carry && sr.Carry {
		r++
	}

	// carries out of each bit position
	c := (a & b) | (b &^ r) | (^r & a)
	sr.HalfCarry = bit(c, 3)
	sr.Carry = bit(c, 7)
	sr.Overflow = bit((a&b&^r)|(^a&^b&r), 7)
	sr.setNZS(r)

	return r
}

// Subtract b from a, with the carry flag as a borrow if carry is true. If
// keepZero is true the Z flag is only ever cleared, never set, which is the
// behaviour of SBC, SBCI and CPC. Affects H, S, V, N, Z and C.
func (sr *StatusRegister) Subtract(a, b uint8, carry bool, keepZero bool) uint8 {
	r := a - b
	if carry && sr.Carry {
		r--
	}

	// borrows into each bit position
	c := (^a & b) | (b & r) | (r &^ a)
	sr.HalfCarry = bit(c, 3)
	sr.Carry = bit(c, 7)
	sr.Overflow = bit((a&^b&^r)|(^a&b&r), 7)

	z := sr.Zero
	sr.setNZS(r)
	if keepZero {
		sr.Zero = r == 0 && z
	}

	return r
}

// Logic sets the flags for the result of AND, OR and EOR. V is cleared.
// Affects S, V, N and Z.
func (sr *StatusRegister) Logic(r uint8) uint8 {
	sr.Overflow = false
	sr.setNZS(r)
	return r
}

// Complement returns the one's complement of a. Affects S, V, N, Z and C.
func (sr *StatusRegister) Complement(a uint8) uint8 {
	r := ^a
	sr.Carry = true
	return sr.Logic(r)
}

// Negate returns the two's complement of a. Affects H, S, V, N, Z and C.
func (sr *StatusRegister) Negate(a uint8) uint8 {
	return sr.Subtract(0, a, false, false)
}

// Increment a. Affects S, V, N and Z.
func (sr *StatusRegister) Increment(a uint8) uint8 {
	r := a + 1
	sr.Overflow = r == 0x80
	sr.setNZS(r)
	return r
}

// Decrement a. Affects S, V, N and Z.
func (sr *StatusRegister) Decrement(a uint8) uint8 {
	r := a - 1
	sr.Overflow = r == 0x7f
	sr.setNZS(r)
	return r
}

// the shift instructions share the flag logic. V is N xor C.
func (sr *StatusRegister) shifted(r uint8, carry bool) uint8 {
	sr.Carry = carry
	sr.Negative = bit(r, 7)
	sr.Overflow = sr.Negative != sr.Carry
	sr.Zero = r == 0
	sr.Sign = sr.Negative != sr.Overflow
	return r
}

// ShiftRightArithmetic shifts a one bit to the right, keeping bit seven.
// Affects S, V, N, Z and C.
func (sr *StatusRegister) ShiftRightArithmetic(a uint8) uint8 {
	return sr.shifted((a>>1)|(a&0x80), bit(a, 0))
}

// ShiftRightLogical shifts a one bit to the right. Affects S, V, N, Z and
// C.
func (sr *StatusRegister) ShiftRightLogical(a uint8) uint8 {
	return sr.shifted(a>>1, bit(a, 0))
}

// RotateRight rotates a one bit to the right through the carry flag.
// Affects S, V, N, Z and C.
func (sr *StatusRegister) RotateRight(a uint8) uint8 {
	r := a >> 1
	if sr.Carry {
		r |= 0x80
	}
	return sr.shifted(r, bit(a, 0))
}

// AddWord adds an immediate to a register pair. Affects S, V, N, Z and C.
func (sr *StatusRegister) AddWord(a uint16, k uint8) uint16 {
	r := a + uint16(k)
	ah := uint8(a >> 8)
	rh := uint8(r >> 8)
	sr.Overflow = !bit(ah, 7) && bit(rh, 7)
	sr.Carry = !bit(rh, 7) && bit(ah, 7)
	sr.Negative = bit(rh, 7)
	sr.Zero = r == 0
	sr.Sign = sr.Negative != sr.Overflow
	return r
}

// SubtractWord subtracts an immediate from a register pair. Affects S, V, N,
// Z and C.
func (sr *StatusRegister) SubtractWord(a uint16, k uint8) uint16 {
	r := a - uint16(k)
	ah := uint8(a >> 8)
	rh := uint8(r >> 8)
	sr.Overflow = bit(ah, 7) && !bit(rh, 7)
	sr.Carry = bit(rh, 7) && !bit(ah, 7)
	sr.Negative = bit(rh, 7)
	sr.Zero = r == 0
	sr.Sign = sr.Negative != sr.Overflow
	return r
}

// Product sets the flags for the result of the multiply instructions. C is
// bit fifteen of the product before any fractional shift. Affects Z and C.
func (sr *StatusRegister) Product(p uint16, fractional bool) uint16 {
	sr.Carry = p&0x8000 != 0
	if fractional {
		p <<= 1
	}
	sr.Zero = p == 0
	return p
}
