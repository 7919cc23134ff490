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
// Package hardware is the base package for the ATmega8 emulation. It and its
// sub-packages contain everything required for a headless simulation.
//
// The AVR type is the root of the emulation and contains external references
// to all the sub-components of the device. The state of a simulation is
// owned by a single AVR instance and nothing is shared between instances, so
// any number of simulations can run side by side.
//
// The Step() function retires one instruction, advances the timers by the
// number of cycles consumed and then, if an interrupt is pending and
// interrupts are enabled, enters the interrupt. The Run() function calls
// Step() until the supplied continueCheck function says otherwise.
package hardware
