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
package timer

import (
	"fmt"

	"github.com/avrsim/avrsim/hardware/interrupts"
	"github.com/avrsim/avrsim/hardware/memory/addresses"
	"github.com/avrsim/avrsim/logger"
)

// External is the divider value used in a prescaler table for the external
// clock sources, which are not modelled.
const External = -1

// Raiser is implemented by the interrupt controller.
type Raiser interface {
	Raise(src interrupts.Source)
}

// Definition describes one of the timers of the device.
type Definition struct {
	Name string

	// I/O addresses of the registers
	Control uint8
	Counter uint8
	Compare uint8

	// whether the timer has an output compare unit. the Compare field and
	// the CompareMatch source are only used if this is true
	HasCompare bool

	// divider for each value of the clock select bits. a divider of zero
	// stops the counter
	Prescalers [8]int

	Overflow     interrupts.Source
	CompareMatch interrupts.Source
}

// Timer0 of the ATmega8.
var Timer0 = Definition{
	Name:       "TIMER0",
	Control:    addresses.TCCR0,
	Counter:    addresses.TCNT0,
	Prescalers: [8]int{0, 1, 8, 64, 256, 1024, External, External},
	Overflow:   interrupts.Timer0Overflow,
}

// Timer2 of the ATmega8.
var Timer2 = Definition{
	Name:         "TIMER2",
	Control:      addresses.TCCR2,
	Counter:      addresses.TCNT2,
	Compare:      addresses.OCR2,
	HasCompare:   true,
	Prescalers:   [8]int{0, 1, 8, 32, 64, 128, 256, 1024},
	Overflow:     interrupts.Timer2Overflow,
	CompareMatch: interrupts.Timer2Compare,
}

// Timer is an eight bit timer/counter.
type Timer struct {
	defn *Definition
	ic   Raiser

	control uint8
	counter uint8
	compare uint8

	// CPU cycles accumulated towards the next tick
	prescale int

	// the clock select value that was last logged as unsupported
	logged uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(defn *Definition, ic Raiser) *Timer {
	return &Timer{
		defn: defn,
		ic:   ic,
	}
}

func (tmr *Timer) String() string {
	s := fmt.Sprintf("%s: counter=0x%02x control=0x%02x", tmr.defn.Name, tmr.counter, tmr.control)
	if tmr.defn.HasCompare {
		s = fmt.Sprintf("%s compare=0x%02x", s, tmr.compare)
	}
	if d := tmr.Divider(); d > 0 {
		s = fmt.Sprintf("%s clk/%d", s, d)
	} else {
		s = fmt.Sprintf("%s stopped", s)
	}
	return s
}

// Reset the timer to its power on state.
func (tmr *Timer) Reset() {
	tmr.control = 0
	tmr.counter = 0
	tmr.compare = 0
	tmr.prescale = 0
	tmr.logged = 0
}

// Registers returns the I/O addresses owned by the timer.
func (tmr *Timer) Registers() []uint8 {
	if tmr.defn.HasCompare {
		return []uint8{tmr.defn.Control, tmr.defn.Counter, tmr.defn.Compare}
	}
	return []uint8{tmr.defn.Control, tmr.defn.Counter}
}

// ReadRegister implements the memory.Peripheral interface.
func (tmr *Timer) ReadRegister(register uint8) uint8 {
	switch register {
	case tmr.defn.Control:
		return tmr.control
	case tmr.defn.Counter:
		return tmr.counter
	case tmr.defn.Compare:
		if tmr.defn.HasCompare {
			return tmr.compare
		}
	}
	return 0
}

// WriteRegister implements the memory.Peripheral interface.
func (tmr *Timer) WriteRegister(register uint8, data uint8) {
	switch register {
	case tmr.defn.Control:
		tmr.control = data
		cs := data & 0x07
		if tmr.defn.Prescalers[cs] == External && tmr.logged != cs {
			tmr.logged = cs
			logger.Logf(logger.Allow, "timer", "%s: external clock source (CS=%d) is not supported. counter is stopped", tmr.defn.Name, cs)
		}
	case tmr.defn.Counter:
		tmr.counter = data
	case tmr.defn.Compare:
		if tmr.defn.HasCompare {
			tmr.compare = data
		}
	}
}

// Divider returns the number of CPU cycles per tick of the counter. Returns
// zero if the counter is stopped.
func (tmr *Timer) Divider() int {
	d := tmr.defn.Prescalers[tmr.control&0x07]
	if d < 0 {
		return 0
	}
	return d
}

// clear timer on compare match.
func (tmr *Timer) ctc() bool {
	return tmr.defn.HasCompare && tmr.control&(1<<addresses.WGM21) != 0
}

// Step the timer forward by a number of CPU cycles.
func (tmr *Timer) Step(cycles int) {
	d := tmr.Divider()
	if d == 0 {
		return
	}

	tmr.prescale += cycles
	for tmr.prescale >= d {
		tmr.prescale -= d
		tmr.tick()
	}
}

func (tmr *Timer) tick() {
	if tmr.ctc() && tmr.counter == tmr.compare {
		tmr.counter = 0

		// in CTC mode the overflow flag is only set if the counter reaches
		// the top of its range
		if tmr.compare == 0xff {
			tmr.ic.Raise(tmr.defn.Overflow)
		}
	} else {
		tmr.counter++
		if tmr.counter == 0 {
			tmr.ic.Raise(tmr.defn.Overflow)
		}
	}

	if tmr.defn.HasCompare && tmr.counter == tmr.compare {
		tmr.ic.Raise(tmr.defn.CompareMatch)
	}
}
