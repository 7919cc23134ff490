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
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/avrsim/avrsim/hardware/cpu/execution"
	"github.com/avrsim/avrsim/hardware/cpu/registers"
	"github.com/avrsim/avrsim/hardware/interrupts"
	"github.com/avrsim/avrsim/logger"
)

// Level of detail in the trace.
type Level int

// List of valid trace levels.
const (
	None Level = iota
	Base
	Extended
)

func (l Level) String() string {
	switch l {
	case None:
		return "none"
	case Base:
		return "base"
	case Extended:
		return "extended"
	}
	return "unknown trace level"
}

// indentation of the extended lines.
const indent = "        "

// Tracer writes trace lines to a sink.
type Tracer struct {
	level Level
	sink  io.Writer

	// the first error returned by the sink
	err error
}

// NewTracer is the preferred method of initialisation for the Tracer type. A
// nil sink is the same as a level of None.
func NewTracer(level Level, sink io.Writer) *Tracer {
	if sink == nil {
		level = None
	}
	return &Tracer{
		level: level,
		sink:  sink,
	}
}

// Level returns the level of detail of the trace.
func (tr *Tracer) Level() Level {
	return tr.level
}

// Err returns the first error returned by the sink, if any.
func (tr *Tracer) Err() error {
	return tr.err
}

func (tr *Tracer) write(s string) {
	_, err := io.WriteString(tr.sink, s)
	if err != nil && tr.err == nil {
		tr.err = err
		logger.Logf(logger.Allow, "trace", "%v", err)
	}
}

// Instruction writes the trace for an executed instruction. The cycles
// argument is the total number of cycles since reset, including the
// instruction.
func (tr *Tracer) Instruction(r execution.Result, regs *registers.Registers, cycles uint64) {
	if tr.level == None {
		return
	}

	tr.write(fmt.Sprintf("0x%04x  %s\n", r.ByteAddress(), r.Instruction))

	if tr.level == Extended {
		tr.state(regs, cycles)
	}
}

// Interrupt writes the trace for an interrupt entry. Only written at the
// Extended level.
func (tr *Tracer) Interrupt(src interrupts.Source, regs *registers.Registers, cycles uint64) {
	if tr.level != Extended {
		return
	}
	tr.write(fmt.Sprintf("%sinterrupt %s\n", indent, src))
	tr.state(regs, cycles)
}

func (tr *Tracer) state(regs *registers.Registers, cycles uint64) {
	tr.write(fmt.Sprintf("%s%s=%s %s=%s X=0x%04x Y=0x%04x Z=0x%04x cycles=%d\n", indent,
		regs.Status.Label(), regs.Status,
		regs.SP.Label(), regs.SP,
		regs.R.Word(registers.X), regs.R.Word(registers.Y), regs.R.Word(registers.Z),
		cycles))

	s := strings.Builder{}
	for _, n := range []int{0, 16} {
		s.Reset()
		s.WriteString(fmt.Sprintf("%sr%02d %s\n", indent, n, regs.R.Row(n)))
		tr.write(s.String())
	}
}
