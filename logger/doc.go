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
// Package logger is the central log for the simulator. It is not for the
// trace of retired instructions, which has its own package, but for events
// that are worth recording and that are not errors. For example, loading an
// image, resetting the machine or writing to an I/O register that has no
// peripheral behind it.
//
// Log entries have a tag and a detail. Identical adjacent entries are
// collapsed into one entry with a repeat count.
//
// Every call to Log() and Logf() takes a Permission. The Allow value is
// always permitted. Other implementations can be used to silence a
// component.
//
// New entries can be echoed to an io.Writer with SetEcho(). If the writer is
// a terminal the echo is coloured.
package logger
