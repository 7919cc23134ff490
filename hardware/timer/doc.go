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
// Package timer implements the eight bit timer/counters of the ATmega8.
//
// Timer0 is a simple up counter. It counts from zero to 0xff and raises the
// TIMER0_OVF interrupt when it wraps back to zero.
//
// Timer2 also has an output compare register. A compare match raises the
// TIMER2_COMP interrupt and, in clear-timer-on-compare mode, resets the
// counter on the next tick.
//
// The counter is advanced by a prescaler, which divides the CPU clock. The
// prescaler is selected by the clock select bits of the control register. A
// clock select of zero stops the counter.
package timer
