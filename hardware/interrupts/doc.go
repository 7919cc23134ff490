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
// Package interrupts implements the interrupt controller. The controller
// owns the TIFR and TIMSK registers, which hold the pending and enable flags
// of the timer interrupt sources.
//
// Peripherals raise an interrupt with Raise(). At every instruction boundary
// the owner of the CPU calls Check() to find the pending source with the
// highest priority and, if there is one, calls Service() to enter it. The
// lower the vector address, the higher the priority.
//
// TIFR is write-one-to-clear, as it is on the real device. Servicing a
// source clears its flag.
package interrupts
