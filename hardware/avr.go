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
package hardware

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/avrsim/avrsim/curated"
	"github.com/avrsim/avrsim/digest"
	"github.com/avrsim/avrsim/hardware/cpu"
	"github.com/avrsim/avrsim/hardware/cpu/registers"
	"github.com/avrsim/avrsim/hardware/interrupts"
	"github.com/avrsim/avrsim/hardware/memory"
	"github.com/avrsim/avrsim/hardware/timer"
	"github.com/avrsim/avrsim/imageloader"
	"github.com/avrsim/avrsim/logger"
	"github.com/avrsim/avrsim/performance/limiter"
	"github.com/avrsim/avrsim/trace"
)

// InvalidOptions is the pattern for errors returned by NewAVR().
const InvalidOptions = "avr: invalid options: %v"

// Options for a new AVR instance.
type Options struct {
	// sizes of program and data memory in bytes
	FlashSize int
	SRAMSize  int

	// level of detail in the trace and where it is written. a nil sink
	// disables the trace
	TraceLevel trace.Level
	TraceSink  io.Writer

	// a digest of the trace is reset whenever the AVR is reset. it should
	// also be one of the writers in TraceSink
	Digest digest.Digest

	// clock frequency in Hz that Run() is paced to. zero runs the
	// simulation as quickly as possible
	Frequency int
}

// DefaultOptions returns the options for the ATmega8 with no trace.
func DefaultOptions() Options {
	return Options{
		FlashSize: 8192,
		SRAMSize:  1024,
	}
}

// AVR is the root of the emulation and contains all the components of the
// device.
type AVR struct {
	Regs       *registers.Registers
	Flash      *memory.Flash
	Mem        *memory.DataMemory
	CPU        *cpu.CPU
	Interrupts *interrupts.Controller
	Timer0     *timer.Timer
	Timer2     *timer.Timer
	Tracer     *trace.Tracer

	// nil if the simulation is not paced
	limiter *limiter.Limiter

	// nil if there is no digest of the trace
	digest digest.Digest

	// number of cycles since reset
	Cycles uint64

	// number of instructions retired since reset
	Retired uint64
}

// NewAVR creates a new AVR and everything associated with the hardware. The
// AVR is reset but flash is empty. Use LoadImage() to load a program.
func NewAVR(opts Options) (*AVR, error) {
	// the program counter is a sixteen bit word address
	if opts.FlashSize <= 0 || opts.FlashSize%2 != 0 || opts.FlashSize > memory.MaxFlashSize {
		return nil, curated.Errorf(InvalidOptions, fmt.Sprintf("flash size of %d bytes", opts.FlashSize))
	}
	if opts.SRAMSize <= 0 || opts.SRAMSize > 0x10000-int(memory.OriginSRAM) {
		return nil, curated.Errorf(InvalidOptions, fmt.Sprintf("SRAM size of %d bytes", opts.SRAMSize))
	}

	avr := &AVR{
		Regs:   &registers.Registers{},
		Flash:  memory.NewFlash(opts.FlashSize),
		Tracer: trace.NewTracer(opts.TraceLevel, opts.TraceSink),
		digest: opts.Digest,
	}

	if opts.Frequency < 0 {
		return nil, curated.Errorf(InvalidOptions, fmt.Sprintf("frequency of %d Hz", opts.Frequency))
	}
	if opts.Frequency > 0 {
		var err error
		avr.limiter, err = limiter.NewLimiter(opts.Frequency)
		if err != nil {
			return nil, curated.Errorf(InvalidOptions, err)
		}
	}

	avr.Mem = memory.NewDataMemory(avr.Regs, opts.SRAMSize)
	avr.CPU = cpu.NewCPU(avr.Regs, avr.Mem, avr.Flash)

	avr.Interrupts = interrupts.NewController(interrupts.Timer2Compare, interrupts.Timer2Overflow, interrupts.Timer0Overflow)
	avr.Mem.Attach(avr.Interrupts, avr.Interrupts.Registers()...)

	avr.Timer0 = timer.NewTimer(&timer.Timer0, avr.Interrupts)
	avr.Mem.Attach(avr.Timer0, avr.Timer0.Registers()...)

	avr.Timer2 = timer.NewTimer(&timer.Timer2, avr.Interrupts)
	avr.Mem.Attach(avr.Timer2, avr.Timer2.Registers()...)

	avr.Reset()

	return avr, nil
}

func (avr *AVR) String() string {
	return fmt.Sprintf("%s cycles=%d retired=%d", avr.CPU, avr.Cycles, avr.Retired)
}

// Reset emulates the reset switch. Flash is not changed.
func (avr *AVR) Reset() {
	avr.Mem.Reset()
	avr.CPU.Reset()
	avr.Interrupts.Reset()
	avr.Timer0.Reset()
	avr.Timer2.Reset()
	avr.Cycles = 0
	avr.Retired = 0
	if avr.limiter != nil {
		avr.limiter.Reset(0)
	}
	if avr.digest != nil {
		avr.digest.ResetDigest()
	}
	logger.Log(logger.Allow, "avr", "reset")
}

// LoadImage copies the image into flash and resets the AVR.
func (avr *AVR) LoadImage(img *imageloader.Image) error {
	// the size is checked before the image is flattened. a segment at a high
	// address would otherwise allocate everything below it
	if img.Size() > avr.Flash.Size() {
		return curated.Errorf(memory.ImageTooLarge, img.Size(), avr.Flash.Size())
	}

	err := avr.Flash.Load(img.Bytes())
	if err != nil {
		return err
	}

	if img.HasEntry && img.Entry != 0 {
		logger.Logf(logger.Allow, "avr", "entry address 0x%04x ignored. execution starts at the reset vector", img.Entry)
	}
	logger.Logf(logger.Allow, "avr", "loaded %d bytes in %d segments", img.Size(), len(img.Segments))

	avr.Reset()

	return nil
}

// advance the peripherals by a number of cycles.
func (avr *AVR) advance(cycles int) {
	avr.Timer0.Step(cycles)
	avr.Timer2.Step(cycles)
	avr.Cycles += uint64(cycles)
}

// Step retires one instruction, or waits one cycle if the CPU is asleep, and
// then enters an interrupt if one is pending. Returns the number of cycles
// consumed.
func (avr *AVR) Step() (int, error) {
	var cycles int

	if avr.CPU.Sleeping {
		cycles = 1
		avr.advance(cycles)
	} else {
		err := avr.CPU.ExecuteInstruction()
		if err != nil {
			return 0, err
		}
		cycles = avr.CPU.LastResult.Cycles
		avr.Retired++
		avr.advance(cycles)
		avr.Tracer.Instruction(avr.CPU.LastResult, avr.Regs, avr.Cycles)
	}

	// interrupts are only entered at an instruction boundary
	if src, ok := avr.Interrupts.Check(avr.CPU.InterruptsEnabled()); ok {
		n, err := avr.Interrupts.Service(src, avr.CPU)
		if err != nil {
			return cycles, err
		}
		avr.advance(n)
		cycles += n
		avr.Tracer.Interrupt(src, avr.Regs, avr.Cycles)
	}

	return cycles, nil
}

// Dump writes a graphviz description of the machine state.
func (avr *AVR) Dump(w io.Writer) {
	memviz.Map(w, avr)
}
