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

// Package limiter paces the simulation so that simulated time keeps step
// with wall clock time.
//
// A new Limiter is created for a clock frequency in Hz:
//
//	lim, _ := limiter.NewLimiter(1000000)
//
// The simulation then periodically reports the number of cycles that have
// elapsed since the limiter was reset. Pace() will block until wall clock
// time has caught up with the simulated time:
//
//	for {
//		cycles += step()
//		lim.Pace(cycles)
//	}
package limiter

import (
	"fmt"
	"time"

	"github.com/avrsim/avrsim/curated"
	"github.com/avrsim/avrsim/logger"
)

// InvalidFrequency is the pattern for errors returned by NewLimiter() and
// SetFrequency().
const InvalidFrequency = "limiter: invalid frequency: %v"

// MaxDrift is the amount simulated time is allowed to fall behind wall clock
// time before the limiter gives up trying to catch up. When the drift is
// exceeded the reference point is moved and the event is logged.
const MaxDrift = 100 * time.Millisecond

// Limiter converts simulated cycles into wall clock time.
type Limiter struct {
	frequency int

	// duration of one cycle
	period time.Duration

	// reference point. the number of cycles reported at the reference time
	refTime   time.Time
	refCycles uint64

	// the limiter is behind and the drift has already been logged
	slow bool

	// replaced during testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(frequency int) (*Limiter, error) {
	lim := &Limiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	err := lim.SetFrequency(frequency)
	if err != nil {
		return nil, err
	}
	lim.Reset(0)
	return lim, nil
}

func (lim *Limiter) String() string {
	return fmt.Sprintf("%d Hz", lim.frequency)
}

// Frequency returns the frequency in Hz.
func (lim *Limiter) Frequency() int {
	return lim.frequency
}

// SetFrequency changes the frequency. The reference point is not changed.
func (lim *Limiter) SetFrequency(frequency int) error {
	if frequency <= 0 || frequency > int(time.Second) {
		return curated.Errorf(InvalidFrequency, frequency)
	}
	lim.frequency = frequency
	lim.period = time.Second / time.Duration(frequency)
	return nil
}

// Reset the reference point to the current time and the supplied number of
// cycles.
func (lim *Limiter) Reset(cycles uint64) {
	lim.refTime = lim.now()
	lim.refCycles = cycles
	lim.slow = false
}

// target returns the wall clock time at which the number of cycles should
// have elapsed.
func (lim *Limiter) target(cycles uint64) time.Time {
	return lim.refTime.Add(time.Duration(cycles-lim.refCycles) * lim.period)
}

// Pace blocks until wall clock time has caught up with the number of cycles.
// Returns the amount of time spent waiting.
func (lim *Limiter) Pace(cycles uint64) time.Duration {
	if cycles < lim.refCycles {
		lim.Reset(cycles)
		return 0
	}

	wait := lim.target(cycles).Sub(lim.now())

	if wait <= 0 {
		if -wait > MaxDrift {
			if !lim.slow {
				logger.Logf(logger.Allow, "limiter", "cannot maintain %s. running %v behind", lim, -wait)
				lim.slow = true
			}
			lim.refTime = lim.now()
			lim.refCycles = cycles
		}
		return 0
	}

	if lim.slow {
		logger.Logf(logger.Allow, "limiter", "%s restored", lim)
		lim.slow = false
	}

	lim.sleep(wait)
	return wait
}
