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

// CalcMHz takes the number of cycles and the duration (in seconds) and returns
// the effective clock frequency in MHz. The accuracy value is the frequency
// as a percentage of the target frequency. A target of zero gives an accuracy
// of zero.
func CalcMHz(cycles uint64, duration float64, target int) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / duration
	mhz = hz / 1000000
	if target > 0 {
		accuracy = 100 * hz / float64(target)
	}
	return mhz, accuracy
}
