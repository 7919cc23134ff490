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
package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp/v3"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include the program words in the output
	ByteCode bool

	// pretty print the decoded instruction after each line
	Struct bool

	// use colour when pretty printing
	Color bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	var printer *pp.PrettyPrinter
	if attr.Struct {
		printer = pp.New()
		printer.SetColoringEnabled(attr.Color)
	}

	for _, e := range dsm.Entries {
		if _, err := io.WriteString(output, e.Line(attr)); err != nil {
			return err
		}
		if printer != nil && !e.IsData() {
			if _, err := io.WriteString(output, e.Summary()); err != nil {
				return err
			}
			if _, err := printer.Fprintln(output, e.Instruction); err != nil {
				return err
			}
		}
	}

	return nil
}

// Line returns a single entry as it appears in the disassembly, including the
// newline.
func (e Entry) Line(attr WriteAttr) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%04x  ", uint32(e.Address)*2))

	if attr.ByteCode {
		b := make([]string, 0, len(e.Words))
		for _, w := range e.Words {
			b = append(b, fmt.Sprintf("%04x", w))
		}
		s.WriteString(fmt.Sprintf("%-11s", strings.Join(b, " ")))
	}

	if e.IsData() {
		s.WriteString(fmt.Sprintf(".word 0x%04x", e.Words[0]))
	} else {
		s.WriteString(e.Instruction.String())
	}
	s.WriteString("\n")

	return s.String()
}

// Summary returns the effect and nominal cost of the instruction, including
// the newline. Data entries have no summary.
func (e Entry) Summary() string {
	if e.IsData() {
		return ""
	}
	defn := e.Instruction.Defn
	return fmt.Sprintf("        effect=%s words=%d cycles=%d\n", defn.Effect, defn.Words, defn.Cycles)
}
