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
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

const (
	tagPen    = "\033[36m"
	detailPen = "\033[2m"
	normalPen = "\033[0m"
)

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}

// Colorizer applies basic colouring to log entries: the tag is coloured and
// the detail is dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := strings.TrimSuffix(string(p), "\n")

	var b strings.Builder
	tag, detail, ok := strings.Cut(s, ": ")
	if ok {
		b.WriteString(tagPen)
		b.WriteString(tag)
		b.WriteString(normalPen)
		b.WriteString(": ")
		b.WriteString(detailPen)
		b.WriteString(detail)
		b.WriteString(normalPen)
	} else {
		b.WriteString(s)
	}
	b.WriteString("\n")

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// EchoTo is a convenience function which sets the echo of the central logger
// to the file, adding colour if the file is a terminal.
func EchoTo(f *os.File) {
	if IsTerminal(f) {
		SetEcho(NewColorizer(f), true)
		return
	}
	SetEcho(f, true)
}
