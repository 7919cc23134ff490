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
package interrupts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/avrsim/avrsim/hardware/memory/addresses"
)

// Source is a single interrupt source. Bit is the position of both the
// pending flag in TIFR and the enable flag in TIMSK.
type Source struct {
	Name   string
	Vector uint16
	Bit    uint8
}

func (src Source) String() string {
	return fmt.Sprintf("%s vector 0x%04x", src.Name, uint32(src.Vector)*2)
}

// The interrupt sources of the modelled timers.
var (
	Timer2Compare  = Source{Name: "TIMER2_COMP", Vector: addresses.TIMER2_COMP, Bit: addresses.OCF2}
	Timer2Overflow = Source{Name: "TIMER2_OVF", Vector: addresses.TIMER2_OVF, Bit: addresses.TOV2}
	Timer0Overflow = Source{Name: "TIMER0_OVF", Vector: addresses.TIMER0_OVF, Bit: addresses.TOV0}
)

// Target is the CPU from the point of view of the interrupt controller.
type Target interface {
	EnterInterrupt(vector uint16) (int, error)
}

// Controller decides which interrupt, if any, is to be entered.
type Controller struct {
	// the sources in priority order
	sources []Source

	// pending flags
	tifr uint8

	// enable flags
	timsk uint8

	// number of times each source has been entered, indexed by vector
	serviced [addresses.NumVectors]int
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(sources ...Source) *Controller {
	ic := &Controller{
		sources: make([]Source, len(sources)),
	}
	copy(ic.sources, sources)
	sort.SliceStable(ic.sources, func(i, j int) bool {
		return ic.sources[i].Vector < ic.sources[j].Vector
	})
	return ic
}

func (ic *Controller) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("TIFR=%08b TIMSK=%08b", ic.tifr, ic.timsk))
	for _, src := range ic.sources {
		if ic.Pending(src) {
			s.WriteString(fmt.Sprintf(" %s pending", src.Name))
		}
	}
	return s.String()
}

// Reset clears all pending and enable flags.
func (ic *Controller) Reset() {
	ic.tifr = 0
	ic.timsk = 0
	ic.serviced = [addresses.NumVectors]int{}
}

// Registers returns the I/O addresses owned by the controller.
func (ic *Controller) Registers() []uint8 {
	return []uint8{addresses.TIFR, addresses.TIMSK}
}

// ReadRegister implements the memory.Peripheral interface.
func (ic *Controller) ReadRegister(register uint8) uint8 {
	switch register {
	case addresses.TIFR:
		return ic.tifr
	case addresses.TIMSK:
		return ic.timsk
	}
	return 0
}

// WriteRegister implements the memory.Peripheral interface. Writing a one to
// a bit of TIFR clears the flag.
func (ic *Controller) WriteRegister(register uint8, data uint8) {
	switch register {
	case addresses.TIFR:
		ic.tifr &^= data
	case addresses.TIMSK:
		ic.timsk = data
	}
}

// Raise sets the pending flag of the source.
func (ic *Controller) Raise(src Source) {
	ic.tifr |= 1 << src.Bit
}

// Pending returns true if the pending flag of the source is set.
func (ic *Controller) Pending(src Source) bool {
	return ic.tifr&(1<<src.Bit) != 0
}

// Enabled returns true if the enable flag of the source is set.
func (ic *Controller) Enabled(src Source) bool {
	return ic.timsk&(1<<src.Bit) != 0
}

// Check returns the pending and enabled source with the highest priority.
// The global argument is the state of the global interrupt flag. No source is
// returned when it is false.
func (ic *Controller) Check(global bool) (Source, bool) {
	if !global {
		return Source{}, false
	}
	for _, src := range ic.sources {
		if ic.Pending(src) && ic.Enabled(src) {
			return src, true
		}
	}
	return Source{}, false
}

// Service clears the pending flag of the source and enters the interrupt.
// Returns the number of cycles consumed.
func (ic *Controller) Service(src Source, target Target) (int, error) {
	ic.tifr &^= 1 << src.Bit
	ic.serviced[src.Vector]++
	return target.EnterInterrupt(src.Vector)
}

// Serviced returns the number of times the source has been entered since
// the last reset.
func (ic *Controller) Serviced(src Source) int {
	return ic.serviced[src.Vector]
}
