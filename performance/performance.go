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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/avrsim/avrsim/hardware"
	"github.com/avrsim/avrsim/imageloader"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the period of time the simulation runs for before measurement begins.
var leadTime = 2 * time.Second

// Check the performance of the simulator using the supplied image.
//
// The simulation will run for the specified duration and will create a cpu
// profile, a memory profile, a trace (or a combination of those) as defined
// by the Profile argument. The effective clock frequency is written to the
// output, along with the accuracy compared to the target frequency. The
// simulation itself is never paced.
func Check(output io.Writer, profile Profile, ld imageloader.Loader, target int, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = ld.Load()
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	avr, err := hardware.NewAVR(hardware.DefaultOptions())
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = avr.LoadImage(ld.Image)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var startCycles uint64
	var startTime time.Time
	var endTime time.Time

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has concluded
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// checking the timerChan is relatively expensive so only do it every
		// PerformanceBrake instructions
		performanceBrake := 0

		return avr.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return true, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					endTime = time.Now()
					return false, timedOut
				}
				startCycles = avr.Cycles
				startTime = time.Now()
			default:
			}
			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	cycles := avr.Cycles - startCycles
	elapsed := endTime.Sub(startTime)
	mhz, accuracy := CalcMHz(cycles, elapsed.Seconds(), target)

	if target > 0 {
		_, err = io.WriteString(output, fmt.Sprintf("%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy))
	} else {
		_, err = io.WriteString(output, fmt.Sprintf("%.2f MHz (%d cycles in %.2f seconds)\n", mhz, cycles, elapsed.Seconds()))
	}
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
