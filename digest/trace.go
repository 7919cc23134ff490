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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Trace is an io.Writer that computes a running SHA-1 digest of everything
// written to it. Suitable for use as the sink of an instruction trace.
//
// Each write is chained to the digest of the previous writes, so the
// fingerprint depends on how the output was divided into writes as well as
// the content.
type Trace struct {
	digest [sha1.Size]byte
	buffer []byte
	writes int
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	return &Trace{}
}

func (dig *Trace) String() string {
	return fmt.Sprintf("%s (%d writes)", dig.Hash(), dig.writes)
}

// Hash implements the Digest interface.
func (dig *Trace) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Trace) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.writes = 0
}

// Write implements the io.Writer interface.
func (dig *Trace) Write(p []byte) (int, error) {
	// the head of the buffer is the previous digest
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, p...)
	dig.digest = sha1.Sum(dig.buffer)
	dig.writes++
	return len(p), nil
}
