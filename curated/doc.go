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
// Package curated wraps the Go error type so that errors can be identified
// by the pattern they were created with rather than by their message.
//
// Errors are created with Errorf(), which takes a formatting pattern and the
// values for the placeholders. The pattern is the identity of the error:
//
//	const IllegalOpcode = "illegal opcode: 0x%04x at 0x%04x"
//
//	err := curated.Errorf(IllegalOpcode, 0xffff, 0x0100)
//	if curated.Is(err, IllegalOpcode) {
//		...
//	}
//
// Has() looks for the pattern anywhere in the chain. An error is part of the
// chain if it was passed as one of the values to Errorf():
//
//	err = curated.Errorf("avr: %v", err)
//	curated.Is(err, IllegalOpcode)  // false
//	curated.Has(err, IllegalOpcode) // true
//
// IsAny() reports whether an error was created by Errorf() at all. Errors
// that are not curated are unexpected and usually indicate a programming
// error rather than a problem with the input.
//
// The Error() implementation removes duplicate adjacent parts of the message
// so that wrapping with the same prefix at several levels of the call stack
// produces "avr: illegal opcode" rather than "avr: avr: illegal opcode".
//
// Curated errors also implement Unwrap() so they cooperate with the errors
// package of the standard library.
package curated
