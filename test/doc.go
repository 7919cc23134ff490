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
// Package test contains helper functions that remove the boilerplate from
// the project's tests.
//
// The Expect functions record a test failure and allow the test to continue.
// The Demand functions stop the test immediately and should be used when the
// value being tested is needed for further tests, for example checking the
// length of a slice before iterating over it.
//
// Success and failure are judged by type. A nil value is considered a
// success because of how errors are normally interpreted.
//
// The writer types implement io.Writer and are useful for capturing the
// output of the tracer and the logger.
package test
