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
package timer_test

import (
	"testing"

	"github.com/avrsim/avrsim/hardware/interrupts"
	"github.com/avrsim/avrsim/hardware/memory/addresses"
	"github.com/avrsim/avrsim/hardware/timer"
	"github.com/avrsim/avrsim/test"
)

// raiser counts the interrupts raised by a timer.
type raiser map[string]int

func (r raiser) Raise(src interrupts.Source) {
	r[src.Name]++
}

func TestStopped(t *testing.T) {
	r := raiser{}
	tmr := timer.NewTimer(&timer.Timer0, r)
	tmr.Step(10000)
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TCNT0), uint8(0))
	test.ExpectEquality(t, len(r), 0)
}

func TestTimer0Overflow(t *testing.T) {
	r := raiser{}
	tmr := timer.NewTimer(&timer.Timer0, r)

	// clk/1
	tmr.WriteRegister(addresses.TCCR0, 0x01)
	tmr.Step(255)
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TCNT0), uint8(0xff))
	test.ExpectEquality(t, r["TIMER0_OVF"], 0)

	tmr.Step(1)
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TCNT0), uint8(0x00))
	test.ExpectEquality(t, r["TIMER0_OVF"], 1)

	tmr.Step(256 * 10)
	test.ExpectEquality(t, r["TIMER0_OVF"], 11)
}

func TestTimer0Prescaler(t *testing.T) {
	r := raiser{}
	tmr := timer.NewTimer(&timer.Timer0, r)

	// clk/64
	tmr.WriteRegister(addresses.TCCR0, 0x03)
	test.ExpectEquality(t, tmr.Divider(), 64)

	// cycles are accumulated across calls to Step()
	for i := 0; i < 63; i++ {
		tmr.Step(1)
	}
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TCNT0), uint8(0))
	tmr.Step(1)
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TCNT0), uint8(1))

	tmr.Step(64 * 255)
	test.ExpectEquality(t, r["TIMER0_OVF"], 1)
}

func TestExternalClock(t *testing.T) {
	r := raiser{}
	tmr := timer.NewTimer(&timer.Timer0, r)
	tmr.WriteRegister(addresses.TCCR0, 0x06)
	test.ExpectEquality(t, tmr.Divider(), 0)
	tmr.Step(1000)
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TCNT0), uint8(0))
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TCCR0), uint8(0x06))
}

func TestTimer2Compare(t *testing.T) {
	r := raiser{}
	tmr := timer.NewTimer(&timer.Timer2, r)
	test.ExpectEquality(t, len(tmr.Registers()), 3)

	// normal mode. compare matches do not reset the counter
	tmr.WriteRegister(addresses.OCR2, 10)
	tmr.WriteRegister(addresses.TCCR2, 0x01)
	tmr.Step(10)
	test.ExpectEquality(t, r["TIMER2_COMP"], 1)
	tmr.Step(246)
	test.ExpectEquality(t, r["TIMER2_OVF"], 1)
	test.ExpectEquality(t, r["TIMER2_COMP"], 1)
}

func TestTimer2CTC(t *testing.T) {
	r := raiser{}
	tmr := timer.NewTimer(&timer.Timer2, r)

	// clear timer on compare, clk/32
	tmr.WriteRegister(addresses.OCR2, 9)
	tmr.WriteRegister(addresses.TCCR2, 1<<addresses.WGM21|0x03)
	test.ExpectEquality(t, tmr.Divider(), 32)

	// period is OCR2 + 1 ticks
	tmr.Step(32 * 10 * 5)
	test.ExpectEquality(t, r["TIMER2_COMP"], 5)
	test.ExpectEquality(t, r["TIMER2_OVF"], 0)
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TCNT2), uint8(0))
}

func TestReset(t *testing.T) {
	tmr := timer.NewTimer(&timer.Timer2, raiser{})
	tmr.WriteRegister(addresses.TCCR2, 0x07)
	tmr.WriteRegister(addresses.TCNT2, 0x80)
	tmr.Reset()
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TCCR2), uint8(0))
	test.ExpectEquality(t, tmr.ReadRegister(addresses.TCNT2), uint8(0))
}
