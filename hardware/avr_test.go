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
package hardware_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/avrsim/avrsim/curated"
	"github.com/avrsim/avrsim/digest"
	"github.com/avrsim/avrsim/hardware"
	"github.com/avrsim/avrsim/hardware/cpu/instructions"
	"github.com/avrsim/avrsim/hardware/interrupts"
	"github.com/avrsim/avrsim/hardware/memory"
	"github.com/avrsim/avrsim/imageloader"
	"github.com/avrsim/avrsim/test"
	"github.com/avrsim/avrsim/trace"
)

// newAVR encodes the program as an Intel HEX image, decodes it and loads it
// into a new AVR. The trace is written to the CompareWriter.
func newAVR(t *testing.T, level trace.Level, program ...uint16) (*hardware.AVR, *test.CompareWriter) {
	t.Helper()

	var hex bytes.Buffer
	test.DemandSuccess(t, imageloader.EncodeWords(&hex, program))
	img, err := imageloader.Decode(&hex)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	opts := hardware.DefaultOptions()
	opts.TraceLevel = level
	opts.TraceSink = w

	avr, err := hardware.NewAVR(opts)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, avr.LoadImage(img))

	return avr, w
}

// count the trace lines for the assembler text.
func count(lines []string, asm string) int {
	n := 0
	for _, l := range lines {
		if strings.HasSuffix(l, "  "+asm) {
			n++
		}
	}
	return n
}

func TestInfiniteLoop(t *testing.T) {
	// rjmp -1
	avr, w := newAVR(t, trace.Base, 0xcfff)

	// run for a short period of time
	start := time.Now()
	filter := 0
	err := avr.Run(func() (bool, error) {
		filter++
		if filter >= hardware.PerformanceBrake {
			filter = 0
			return time.Since(start) < 50*time.Millisecond, nil
		}
		return true, nil
	})
	test.ExpectSuccess(t, err)

	lines := w.Lines()
	test.ExpectSuccess(t, len(lines) > 100)
	test.ExpectEquality(t, uint64(len(lines)), avr.Retired)
	for _, l := range lines {
		if !test.ExpectEquality(t, l, "0x0000  rjmp -1") {
			break
		}
	}
}

func TestBoundedLoop(t *testing.T) {
	avr, w := newAVR(t, trace.Base,
		0xe020, // ldi r18, 0
		0x5021, // subi r18, 1
		0xf7f1, // brne -2
		0x5f2f, // subi r18, 255
		0x3021, // cpi r18, 1
		0xf009, // breq 1
		0x0000, // nop
		0xcfff, // rjmp -1
	)

	test.ExpectSuccess(t, avr.RunForSteps(2000, nil))

	lines := w.Lines()
	test.ExpectEquality(t, len(lines), 2000)
	test.ExpectEquality(t, count(lines, "ldi r18, 0"), 1)
	test.ExpectEquality(t, count(lines, "subi r18, 1"), 256)
	test.ExpectEquality(t, count(lines, "brne -2"), 256)
	test.ExpectEquality(t, count(lines, "subi r18, 255"), 1)
	test.ExpectEquality(t, count(lines, "cpi r18, 1"), 1)
	test.ExpectEquality(t, count(lines, "breq 1"), 1)
	test.ExpectEquality(t, count(lines, "nop"), 0)
	test.ExpectEquality(t, count(lines, "rjmp -1"), 2000-516)
	test.ExpectEquality(t, avr.Regs.R[18], uint8(1))
}

// sets up timer0 at clk/1 with the overflow interrupt enabled
var timerProgram = []uint16{
	0xc009, // rjmp 9
	0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
	0xc005, // TIMER0_OVF: rjmp 5
	0xe001, // ldi r16, 1
	0xbf09, // out TIMSK, r16
	0xbf03, // out TCCR0, r16
	0x9478, // sei
	0xcfff, // rjmp -1
	0x0000, // nop
	0x9518, // reti
}

func TestTimerInterrupt(t *testing.T) {
	avr, w := newAVR(t, trace.Base, timerProgram...)
	test.ExpectSuccess(t, avr.RunForSteps(5000, nil))

	lines := w.Lines()
	retis := count(lines, "reti")
	test.ExpectSuccess(t, retis > 1)

	// every reti is matched by an interrupt entry. the run may have stopped
	// inside the handler
	serviced := avr.Interrupts.Serviced(interrupts.Timer0Overflow)
	test.ExpectSuccess(t, serviced == retis || serviced == retis+1)
	rjmps := count(lines, "rjmp 5")
	test.ExpectSuccess(t, rjmps == serviced || rjmps == serviced-1)

	// each overflow is 256 cycles apart so the number of interrupts is
	// bounded by the number of cycles
	test.ExpectSuccess(t, uint64(serviced) <= avr.Cycles/256)

	// the reset vector and the set up code only run once
	test.ExpectEquality(t, count(lines, "sei"), 1)
	test.ExpectEquality(t, count(lines, "rjmp 9"), 1)
}

func TestTimerInterruptExtended(t *testing.T) {
	avr, w := newAVR(t, trace.Extended, timerProgram...)
	test.ExpectSuccess(t, avr.RunForSteps(1000, nil))

	n := 0
	for _, l := range w.Lines() {
		if l == "        interrupt TIMER0_OVF vector 0x0012" {
			n++
		}
	}
	test.ExpectInequality(t, n, 0)
	test.ExpectEquality(t, n, avr.Interrupts.Serviced(interrupts.Timer0Overflow))
}

func TestInterruptAfterSei(t *testing.T) {
	// the first overflow is pending before interrupts are enabled
	avr, w := newAVR(t, trace.Base,
		0xc009, // rjmp 9
		0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
		0x9518, // TIMER0_OVF: reti
		0xe001, // ldi r16, 1
		0xbf09, // out TIMSK, r16
		0xbf03, // out TCCR0, r16
		0xef0f, // ldi r16, 255
		0xbf02, // out TCNT0, r16
		0x0000, // nop
		0x9478, // sei
		0x0000, // nop
		0xcfff, // rjmp -1
	)

	test.ExpectSuccess(t, avr.RunForSteps(10, nil))

	// the instruction after sei is always executed before the interrupt
	lines := w.Lines()
	test.DemandEquality(t, len(lines), 10)
	test.ExpectEquality(t, lines[7], "0x0020  sei")
	test.ExpectEquality(t, lines[8], "0x0022  nop")
	test.ExpectEquality(t, lines[9], "0x0012  reti")
}

func TestSleep(t *testing.T) {
	avr, w := newAVR(t, trace.Base,
		0xc009, // rjmp 9
		0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
		0x9518, // TIMER0_OVF: reti
		0xe001, // ldi r16, 1
		0xbf09, // out TIMSK, r16
		0xbf03, // out TCCR0, r16
		0xe810, // ldi r17, 0x80
		0xbf15, // out MCUCR, r17
		0x9478, // sei
		0x9588, // sleep
		0xcffe, // rjmp -2
	)

	steps := 0
	test.ExpectSuccess(t, avr.Run(func() (bool, error) {
		steps++
		return steps < 3000, nil
	}))

	// most steps are spent asleep
	serviced := avr.Interrupts.Serviced(interrupts.Timer0Overflow)
	test.ExpectSuccess(t, serviced > 5)
	test.ExpectSuccess(t, avr.Retired < uint64(steps)/10)

	lines := w.Lines()
	test.ExpectSuccess(t, count(lines, "sleep") >= serviced)
	retis := count(lines, "reti")
	test.ExpectSuccess(t, serviced == retis || serviced == retis+1)
}

func TestIllegalOpcode(t *testing.T) {
	// flash after the nop is erased
	avr, _ := newAVR(t, trace.None, 0x0000)
	err := avr.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, instructions.IllegalOpcode))
	test.ExpectEquality(t, avr.Retired, uint64(1))
}

func TestDeterminism(t *testing.T) {
	avrA, wa := newAVR(t, trace.Extended, timerProgram...)
	avrB, wb := newAVR(t, trace.Extended, timerProgram...)
	test.ExpectSuccess(t, avrA.RunForSteps(3000, nil))
	test.ExpectSuccess(t, avrB.RunForSteps(3000, nil))
	test.ExpectSuccess(t, wa.Compare(wb.String()))

	// a reset replays the same trace
	wa.Clear()
	avrA.Reset()
	test.ExpectSuccess(t, avrA.RunForSteps(3000, nil))
	test.ExpectSuccess(t, wa.Compare(wb.String()))
}

func TestDigestReset(t *testing.T) {
	var hex bytes.Buffer
	test.DemandSuccess(t, imageloader.EncodeWords(&hex, timerProgram))
	img, err := imageloader.Decode(&hex)
	test.DemandSuccess(t, err)

	dig := digest.NewTrace()
	opts := hardware.DefaultOptions()
	opts.TraceLevel = trace.Extended
	opts.TraceSink = dig
	opts.Digest = dig

	avr, err := hardware.NewAVR(opts)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, avr.LoadImage(img))
	test.DemandSuccess(t, avr.RunForSteps(1000, nil))
	first := dig.Hash()

	// the digest after a reset and rerun matches the first run
	avr.Reset()
	test.ExpectEquality(t, dig.Hash(), digest.NewTrace().Hash())
	test.DemandSuccess(t, avr.RunForSteps(1000, nil))
	test.ExpectEquality(t, dig.Hash(), first)
}

func TestImageTooLarge(t *testing.T) {
	avr, err := hardware.NewAVR(hardware.DefaultOptions())
	test.DemandSuccess(t, err)
	err = avr.LoadImage(imageloader.FromBytes(make([]byte, 8194)))
	test.ExpectSuccess(t, curated.Is(err, memory.ImageTooLarge))

	// a single byte at the top of the 32 bit address space
	img, err := imageloader.Decode(strings.NewReader(":02000004FFFFFC\n:0100000000FF\n:00000001FF\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Size(), 0xffff0001)
	err = avr.LoadImage(img)
	test.ExpectSuccess(t, curated.Is(err, memory.ImageTooLarge))
}

func TestInvalidOptions(t *testing.T) {
	opts := hardware.DefaultOptions()
	opts.FlashSize = 8191
	_, err := hardware.NewAVR(opts)
	test.ExpectSuccess(t, curated.Is(err, hardware.InvalidOptions))

	opts = hardware.DefaultOptions()
	opts.SRAMSize = 0
	_, err = hardware.NewAVR(opts)
	test.ExpectSuccess(t, curated.Is(err, hardware.InvalidOptions))

	opts = hardware.DefaultOptions()
	opts.Frequency = -1
	_, err = hardware.NewAVR(opts)
	test.ExpectSuccess(t, curated.Is(err, hardware.InvalidOptions))
}

func TestPacedRun(t *testing.T) {
	var hex bytes.Buffer
	test.DemandSuccess(t, imageloader.EncodeWords(&hex, []uint16{0xcfff}))
	img, err := imageloader.Decode(&hex)
	test.DemandSuccess(t, err)

	opts := hardware.DefaultOptions()
	opts.Frequency = 1000000
	avr, err := hardware.NewAVR(opts)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, avr.LoadImage(img))

	// ten thousand steps of rjmp is twenty thousand cycles, or 20ms at 1MHz
	start := time.Now()
	test.ExpectSuccess(t, avr.RunForSteps(10000, nil))
	test.ExpectEquality(t, avr.Cycles, uint64(20000))
	test.ExpectSuccess(t, time.Since(start) >= 15*time.Millisecond)
}

func TestDump(t *testing.T) {
	avr, _ := newAVR(t, trace.None, 0xcfff)
	test.ExpectSuccess(t, avr.RunForSteps(10, nil))

	var b bytes.Buffer
	avr.Dump(&b)
	test.ExpectSuccess(t, strings.Contains(b.String(), "digraph"))
}
