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
// Package modalflag is a wrapper for the flag package in the standard
// library. It adds the idea of modes: the first non-flag argument on the
// command line can select a sub-mode, each with its own set of flags. For
// example:
//
//	avrsim -vv firmware.hex
//	avrsim disasm -bytecode firmware.hex
//	avrsim performance -duration 10s firmware.hex
//
// The first sub-mode added is the default and is selected when the
// argument does not name a sub-mode, or when the arguments contain flags that
// only the default mode understands.
//
// A typical use:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		verbose := md.AddBool("v", false, "trace retired instructions")
//		...
//	}
package modalflag
