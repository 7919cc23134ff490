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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avrsim/avrsim/imageloader"
	"github.com/avrsim/avrsim/test"
)

// writeImage creates an Intel HEX file in a temporary directory.
func writeImage(t *testing.T, program ...uint16) string {
	t.Helper()

	var hex bytes.Buffer
	test.DemandSuccess(t, imageloader.EncodeWords(&hex, program))

	fn := filepath.Join(t.TempDir(), "image.hex")
	test.DemandSuccess(t, os.WriteFile(fn, hex.Bytes(), 0o644))
	return fn
}

// launchArgs runs the program with the arguments and an empty interrupt
// channel.
func launchArgs(args ...string) (int, *test.CompareWriter, *test.CompareWriter) {
	output := &test.CompareWriter{}
	errOutput := &test.CompareWriter{}
	intChan := make(chan os.Signal, 1)
	return launch(args, output, errOutput, intChan), output, errOutput
}

func TestHelp(t *testing.T) {
	v, output, _ := launchArgs("-help")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(output.String(), "DISASM"))

	v, output, _ = launchArgs("RUN", "-help")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.Contains(output.String(), "frequency"))
}

func TestRunSteps(t *testing.T) {
	// rjmp -1
	fn := writeImage(t, 0xcfff)

	v, _, errOutput := launchArgs("RUN", "-v", "-frequency", "0", "-steps", "10", fn)
	test.DemandEquality(t, v, exitOK)

	lines := errOutput.Lines()
	test.DemandEquality(t, len(lines), 10)
	for _, l := range lines {
		test.ExpectEquality(t, l, "0x0000  rjmp -1")
	}
}

func TestRunFlagsAfterImage(t *testing.T) {
	// rjmp -1
	fn := writeImage(t, 0xcfff)

	v, _, errOutput := launchArgs(fn, "-v", "-frequency", "0", "-steps", "5")
	test.DemandEquality(t, v, exitOK)
	test.ExpectEquality(t, len(errOutput.Lines()), 5)

	v, _, errOutput = launchArgs("RUN", fn, "-vv", "-frequency", "0", "-steps", "5")
	test.DemandEquality(t, v, exitOK)
	test.ExpectEquality(t, len(errOutput.Lines()), 20)

	v, _, _ = launchArgs(fn, "-nonsense")
	test.ExpectEquality(t, v, exitError)
}

// writeCounter counts the number of calls to Write().
type writeCounter struct {
	test.CompareWriter
	writes int
}

func (w *writeCounter) Write(p []byte) (int, error) {
	w.writes++
	return w.CompareWriter.Write(p)
}

func TestRunTraceFlushed(t *testing.T) {
	// rjmp -1
	fn := writeImage(t, 0xcfff)

	output := &test.CompareWriter{}
	errOutput := &writeCounter{}
	intChan := make(chan os.Signal, 1)

	// the trace is flushed every PerformanceBrake instructions and once more
	// when the run ends
	v := launch([]string{"RUN", "-v", "-frequency", "0", "-steps", "300", fn}, output, errOutput, intChan)
	test.DemandEquality(t, v, exitOK)
	test.ExpectEquality(t, len(errOutput.Lines()), 300)
	test.ExpectEquality(t, errOutput.writes, 3)
}

func TestRunDefaultMode(t *testing.T) {
	// nop, nop, rjmp -1
	fn := writeImage(t, 0x0000, 0x0000, 0xcfff)

	v, _, errOutput := launchArgs("-vv", "-frequency", "0", "-steps", "3", fn)
	test.DemandEquality(t, v, exitOK)

	lines := errOutput.Lines()
	test.DemandEquality(t, len(lines), 12)
	test.ExpectEquality(t, lines[0], "0x0000  nop")
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "        SREG="))
	test.ExpectEquality(t, lines[4], "0x0002  nop")
	test.ExpectEquality(t, lines[8], "0x0004  rjmp -1")
}

func TestRunInterrupted(t *testing.T) {
	fn := writeImage(t, 0xcfff)

	output := &test.CompareWriter{}
	errOutput := &test.CompareWriter{}
	intChan := make(chan os.Signal, 1)
	intChan <- os.Interrupt

	v := launch([]string{"RUN", "-frequency", "0", fn}, output, errOutput, intChan)
	test.ExpectEquality(t, v, exitOK)
	test.ExpectEquality(t, errOutput.String(), "")
}

func TestRunErrors(t *testing.T) {
	// illegal opcode
	fn := writeImage(t, 0xffff)
	v, _, errOutput := launchArgs("RUN", "-frequency", "0", fn)
	test.ExpectEquality(t, v, exitError)
	test.ExpectSuccess(t, strings.HasPrefix(errOutput.String(), "* error: "))
	test.ExpectSuccess(t, strings.Contains(errOutput.String(), "illegal opcode"))

	v, _, _ = launchArgs("RUN")
	test.ExpectEquality(t, v, exitError)

	v, _, _ = launchArgs("RUN", fn, fn)
	test.ExpectEquality(t, v, exitError)

	v, _, _ = launchArgs("RUN", filepath.Join(t.TempDir(), "missing.hex"))
	test.ExpectEquality(t, v, exitError)

	v, _, _ = launchArgs("RUN", "-nonsense", fn)
	test.ExpectEquality(t, v, exitError)
}

func TestDump(t *testing.T) {
	fn := writeImage(t, 0xcfff)
	dump := filepath.Join(t.TempDir(), "avr.dot")

	v, _, _ := launchArgs("RUN", "-frequency", "0", "-steps", "5", "-dump", dump, fn)
	test.DemandEquality(t, v, exitOK)

	b, err := os.ReadFile(dump)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

func TestDisasm(t *testing.T) {
	// jmp 0x0068, nop
	fn := writeImage(t, 0x940c, 0x0034, 0x0000)

	v, output, _ := launchArgs("DISASM", "-bytecode", fn)
	test.DemandEquality(t, v, exitOK)

	lines := output.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectEquality(t, lines[0], "0x0000  940c 0034  jmp 0x0068")
	test.ExpectEquality(t, lines[1], "0x0004  0000       nop")

	v, _, _ = launchArgs("DISASM")
	test.ExpectEquality(t, v, exitError)
}

func TestPerformanceErrors(t *testing.T) {
	fn := writeImage(t, 0xcfff)

	v, _, errOutput := launchArgs("PERFORMANCE", "-profile", "gpu", fn)
	test.ExpectEquality(t, v, exitError)
	test.ExpectSuccess(t, strings.Contains(errOutput.String(), "unknown profile type"))

	v, _, _ = launchArgs("PERFORMANCE")
	test.ExpectEquality(t, v, exitError)
}

func TestVersion(t *testing.T) {
	v, output, _ := launchArgs("-version")
	test.ExpectEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(output.String(), "avrsim "))
}

func TestDigest(t *testing.T) {
	fn := writeImage(t, 0x0000, 0xcfff)

	v, a, _ := launchArgs("RUN", "-digest", "-frequency", "0", "-steps", "100", fn)
	test.DemandEquality(t, v, exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(a.String(), "digest: "))

	v, b, errOutput := launchArgs("RUN", "-digest", "-vv", "-frequency", "0", "-steps", "100", fn)
	test.DemandEquality(t, v, exitOK)
	test.ExpectEquality(t, a.String(), b.String())
	test.ExpectEquality(t, len(errOutput.Lines()), 400)

	// a different number of steps produces a different digest
	v, c, _ := launchArgs("RUN", "-digest", "-frequency", "0", "-steps", "101", fn)
	test.DemandEquality(t, v, exitOK)
	test.ExpectInequality(t, a.String(), c.String())

	v, _, _ = launchArgs("RUN", "-digest", "-v", fn)
	test.ExpectEquality(t, v, exitError)
}
