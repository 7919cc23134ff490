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
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/avrsim/avrsim/digest"
	"github.com/avrsim/avrsim/disassembly"
	"github.com/avrsim/avrsim/hardware"
	"github.com/avrsim/avrsim/imageloader"
	"github.com/avrsim/avrsim/logger"
	"github.com/avrsim/avrsim/modalflag"
	"github.com/avrsim/avrsim/performance"
	"github.com/avrsim/avrsim/statsview"
	"github.com/avrsim/avrsim/trace"
	"github.com/avrsim/avrsim/version"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitError = 20
)

func main() {
	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt, syscall.SIGTERM)

	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr, intChan))
}

// launch parses the arguments and runs the selected mode. help messages and
// mode output are written to output. error messages and the instruction
// trace are written to errOutput. returns the value to use with os.Exit().
func launch(args []string, output io.Writer, errOutput io.Writer, intChan <-chan os.Signal) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return exitParse
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, errOutput, intChan)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return exitError
	}

	return exitOK
}

// isTerminal returns true if the writer is a file connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && logger.IsTerminal(f)
}

func run(md *modalflag.Modes, traceOutput io.Writer, intChan <-chan os.Signal) error {
	md.NewMode()

	verbose := md.AddBool("v", false, "trace every instruction")
	extended := md.AddBool("vv", false, "trace every instruction with register state and interrupts")
	frequency := md.AddInt("frequency", 1000000, "clock frequency in Hz (0 for unlimited)")
	steps := md.AddUint64("steps", 0, "stop after number of instructions (0 for unlimited)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	dump := md.AddString("dump", "", "write graphviz description of final machine state to file")
	fingerprint := md.AddBool("digest", false, "print a digest of the extended trace on completion")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		if f, ok := md.Output.(*os.File); ok {
			logger.EchoTo(f)
		} else {
			logger.SetEcho(md.Output, true)
		}
		defer logger.SetEcho(nil, false)
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("firmware image required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := imageloader.NewLoader(md.GetArg(0))
	err = ld.Load()
	if err != nil {
		return err
	}

	opts := hardware.DefaultOptions()
	opts.Frequency = *frequency

	var sinks []io.Writer

	// the trace buffer is flushed at every performance brake so that output
	// is not lost if the process is killed
	var traceBuf *bufio.Writer

	if *verbose || *extended {
		traceBuf = bufio.NewWriter(traceOutput)
		defer traceBuf.Flush()
		sinks = append(sinks, traceBuf)

		opts.TraceLevel = trace.Base
		if *extended {
			opts.TraceLevel = trace.Extended
		}
	}

	// the digest is always of the extended trace
	var dig *digest.Trace
	if *fingerprint {
		if opts.TraceLevel == trace.Base {
			return fmt.Errorf("-digest cannot be combined with -v. use -vv")
		}
		dig = digest.NewTrace()
		sinks = append(sinks, dig)
		opts.Digest = dig
		opts.TraceLevel = trace.Extended
	}

	switch len(sinks) {
	case 0:
	case 1:
		opts.TraceSink = sinks[0]
	default:
		opts.TraceSink = io.MultiWriter(sinks...)
	}

	avr, err := hardware.NewAVR(opts)
	if err != nil {
		return err
	}

	err = avr.LoadImage(ld.Image)
	if err != nil {
		return err
	}

	// checking the interrupt channel and flushing the trace is relatively
	// expensive so only do it every PerformanceBrake instructions
	performanceBrake := 0

	continueCheck := func() (bool, error) {
		performanceBrake++
		if performanceBrake < hardware.PerformanceBrake {
			return true, nil
		}
		performanceBrake = 0

		if traceBuf != nil {
			if err := traceBuf.Flush(); err != nil {
				return false, err
			}
		}

		select {
		case <-intChan:
			logger.Log(logger.Allow, "avrsim", "interrupted")
			return false, nil
		default:
		}
		return true, nil
	}

	if *steps > 0 {
		err = avr.RunForSteps(*steps, continueCheck)
	} else {
		err = avr.Run(continueCheck)
	}

	logger.Logf(logger.Allow, "avrsim", "halted: %s", avr)

	if dig != nil {
		fmt.Fprintf(md.Output, "digest: %s\n", dig.Hash())
	}

	if *dump != "" {
		f, derr := os.Create(*dump)
		if derr != nil {
			return derr
		}
		avr.Dump(f)
		derr = f.Close()
		if derr != nil {
			return derr
		}
	}

	return err
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	structs := md.AddBool("struct", false, "pretty print the decoded instructions")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("firmware image required for %s mode", md)
	case 1:
		ld := imageloader.NewLoader(md.GetArg(0))
		err = ld.Load()
		if err != nil {
			return err
		}

		dsm, err := disassembly.FromImage(ld.Image)
		if err != nil {
			return err
		}

		attr := disassembly.WriteAttr{
			ByteCode: *bytecode,
			Struct:   *structs,
			Color:    isTerminal(md.Output),
		}

		err = dsm.Write(md.Output, attr)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: none, cpu, mem, trace, all (comma separated)")
	frequency := md.AddInt("frequency", 1000000, "clock frequency in Hz to compare against")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("firmware image required for %s mode", md)
	case 1:
		prf, err := performance.ParseProfile(*profile)
		if err != nil {
			return err
		}

		ld := imageloader.NewLoader(md.GetArg(0))

		err = performance.Check(md.Output, prf, ld, *frequency, *duration)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}
