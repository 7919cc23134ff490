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
	"fmt"
)

// StackPointer is the sixteen bit SP register, made up of SPL and SPH.
type StackPointer struct {
	value uint16
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("0x%04x", sp.value)
}

// Address returns the current value of the stack pointer.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Low returns SPL.
func (sp StackPointer) Low() uint8 {
	return uint8(sp.value)
}

// High returns SPH.
func (sp StackPointer) High() uint8 {
	return uint8(sp.value >> 8)
}

// SetLow sets SPL.
func (sp *StackPointer) SetLow(v uint8) {
	sp.value = sp.value&0xff00 | uint16(v)
}

// SetHigh sets SPH.
func (sp *StackPointer) SetHigh(v uint8) {
	sp.value = sp.value&0x00ff | uint16(v)<<8
}

// Decrement is used by a push. The address before the decrement is
// returned, which is where the pushed value is stored.
func (sp *StackPointer) Decrement() uint16 {
	a := sp.value
	sp.value--
	return a
}

// Increment is used by a pop. The address after the increment is returned,
// which is where the popped value is read from.
func (sp *StackPointer) Increment() uint16 {
	sp.value++
	return sp.value
}
