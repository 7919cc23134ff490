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

package limiter

import (
	"testing"
	"time"

	"github.com/avrsim/avrsim/curated"
	"github.com/avrsim/avrsim/test"
)

// clock is a fake wall clock. sleeping advances the clock.
type clock struct {
	t     time.Time
	slept time.Duration
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) sleep(d time.Duration) {
	c.t = c.t.Add(d)
	c.slept += d
}

func newTestLimiter(t *testing.T, frequency int) (*Limiter, *clock) {
	t.Helper()

	c := &clock{t: time.Unix(0, 0)}
	lim, err := NewLimiter(frequency)
	test.DemandSuccess(t, err)
	lim.now = c.now
	lim.sleep = c.sleep
	lim.Reset(0)
	return lim, c
}

func TestInvalidFrequency(t *testing.T) {
	_, err := NewLimiter(0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, InvalidFrequency))

	_, err = NewLimiter(-1)
	test.ExpectFailure(t, err)

	lim, err := NewLimiter(1000)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, lim.SetFrequency(0))
	test.ExpectEquality(t, lim.Frequency(), 1000)
	test.ExpectEquality(t, lim.String(), "1000 Hz")
}

func TestPace(t *testing.T) {
	lim, c := newTestLimiter(t, 1000000)

	// one thousand cycles at 1MHz is one millisecond
	test.ExpectEquality(t, lim.Pace(1000), time.Millisecond)
	test.ExpectEquality(t, c.slept, time.Millisecond)

	// the simulation took longer than the simulated time. no waiting
	c.t = c.t.Add(2 * time.Millisecond)
	test.ExpectEquality(t, lim.Pace(2000), time.Duration(0))

	// the simulation catches up
	test.ExpectEquality(t, lim.Pace(5000), 2*time.Millisecond)
	test.ExpectEquality(t, c.slept, 3*time.Millisecond)
}

func TestDrift(t *testing.T) {
	lim, c := newTestLimiter(t, 1000000)

	// fall behind by more than the permitted drift
	c.t = c.t.Add(MaxDrift + time.Second)
	test.ExpectEquality(t, lim.Pace(1000), time.Duration(0))
	test.ExpectSuccess(t, lim.slow)

	// the reference point has moved so the limiter does not try to make up
	// for the lost time
	test.ExpectEquality(t, lim.Pace(2000), time.Millisecond)
	test.ExpectFailure(t, lim.slow)
}

func TestCyclesReset(t *testing.T) {
	lim, c := newTestLimiter(t, 1000)
	lim.Reset(100)

	test.ExpectEquality(t, lim.Pace(110), 10*time.Millisecond)

	// cycle count has gone backwards. the reference point is moved
	test.ExpectEquality(t, lim.Pace(50), time.Duration(0))
	test.ExpectEquality(t, lim.Pace(51), time.Millisecond)
	test.ExpectEquality(t, c.slept, 11*time.Millisecond)
}
