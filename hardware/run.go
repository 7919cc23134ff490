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

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the simulation running, as quickly as possible or paced to the
// frequency given in the Options. The continueCheck
// function is called after every instruction and the simulation stops when it
// returns false or an error. A nil continueCheck runs forever or until an
// error occurs.
func (avr *AVR) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	// the limiter is consulted every PerformanceBrake instructions
	brake := 0

	running := true
	for running {
		_, err := avr.Step()
		if err != nil {
			return err
		}

		if avr.limiter != nil {
			brake++
			if brake >= PerformanceBrake {
				brake = 0
				avr.limiter.Pace(avr.Cycles)
			}
		}

		running, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForSteps runs the simulation until the number of instructions retired
// since reset reaches the target, or until continueCheck returns false.
func (avr *AVR) RunForSteps(steps uint64, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	return avr.Run(func() (bool, error) {
		if avr.Retired >= steps {
			return false, nil
		}
		return continueCheck()
	})
}
