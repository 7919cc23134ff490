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

// Package digest computes fingerprints of simulator output. Two runs of the
// same firmware image should always produce the same fingerprint. This makes
// the digest useful for regression testing, where a full comparison of the
// output would be expensive to store.
package digest

// Digest implementations compute a running hash of some part of the
// simulation.
type Digest interface {
	Hash() string
	ResetDigest()
}
