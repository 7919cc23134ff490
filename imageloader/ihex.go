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
package imageloader

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/avrsim/avrsim/curated"
)

// Sentinal error patterns.
const (
	CorruptImage   = "corrupt image: %v"
	TruncatedImage = "truncated image: %v"
)

// record types of the Intel HEX format.
const (
	recordData                   = 0x00
	recordEOF                    = 0x01
	recordExtendedSegmentAddress = 0x02
	recordStartSegmentAddress    = 0x03
	recordExtendedLinearAddress  = 0x04
	recordStartLinearAddress     = 0x05
)

// count, address (two bytes), type and checksum.
const recordOverhead = 5

type record struct {
	count   int
	address uint16
	kind    byte
	data    []byte
}

// parse a single line. the line has already been trimmed of white space.
func parseRecord(line string, num int) (record, error) {
	if line[0] != ':' {
		return record{}, curated.Errorf(CorruptImage, fmt.Sprintf("line %d: record does not start with a colon", num))
	}
	line = line[1:]

	if len(line) < recordOverhead*2 {
		return record{}, curated.Errorf(TruncatedImage, fmt.Sprintf("line %d: record is too short", num))
	}

	if len(line)%2 != 0 {
		// an odd number of digits with a correct count is a truncated checksum
		return record{}, curated.Errorf(TruncatedImage, fmt.Sprintf("line %d: odd number of digits", num))
	}

	raw, err := hex.DecodeString(line)
	if err != nil {
		return record{}, curated.Errorf(CorruptImage, fmt.Sprintf("line %d: %v", num, err))
	}

	rec := record{
		count:   int(raw[0]),
		address: uint16(raw[1])<<8 | uint16(raw[2]),
		kind:    raw[3],
	}

	switch {
	case len(raw) < rec.count+recordOverhead:
		return record{}, curated.Errorf(TruncatedImage, fmt.Sprintf("line %d: expected %d data bytes", num, rec.count))
	case len(raw) > rec.count+recordOverhead:
		return record{}, curated.Errorf(CorruptImage, fmt.Sprintf("line %d: more data than the count of %d", num, rec.count))
	}

	if checksum(raw[:len(raw)-1]) != raw[len(raw)-1] {
		return record{}, curated.Errorf(CorruptImage, fmt.Sprintf("line %d: checksum mismatch", num))
	}

	rec.data = raw[4 : 4+rec.count]

	return rec, nil
}

// checksum is the two's complement of the sum of the record bytes.
func checksum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	return -sum
}

// Decode reads an Intel HEX stream. The stream must finish with an end of
// file record. Content after the end of file record is ignored.
func Decode(r io.Reader) (*Image, error) {
	img := &Image{}

	// added to the address of every data record
	var base uint32

	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := parseRecord(line, num)
		if err != nil {
			return nil, err
		}

		switch rec.kind {
		case recordData:
			img.add(base+uint32(rec.address), rec.data)

		case recordEOF:
			img.normalise()
			return img, nil

		case recordExtendedSegmentAddress:
			if rec.count != 2 {
				return nil, curated.Errorf(CorruptImage, fmt.Sprintf("line %d: extended segment address must be two bytes", num))
			}
			base = (uint32(rec.data[0])<<8 | uint32(rec.data[1])) << 4

		case recordExtendedLinearAddress:
			if rec.count != 2 {
				return nil, curated.Errorf(CorruptImage, fmt.Sprintf("line %d: extended linear address must be two bytes", num))
			}
			base = (uint32(rec.data[0])<<8 | uint32(rec.data[1])) << 16

		case recordStartSegmentAddress:
			if rec.count != 4 {
				return nil, curated.Errorf(CorruptImage, fmt.Sprintf("line %d: start segment address must be four bytes", num))
			}
			cs := uint32(rec.data[0])<<8 | uint32(rec.data[1])
			ip := uint32(rec.data[2])<<8 | uint32(rec.data[3])
			img.Entry = cs<<4 + ip
			img.HasEntry = true

		case recordStartLinearAddress:
			if rec.count != 4 {
				return nil, curated.Errorf(CorruptImage, fmt.Sprintf("line %d: start linear address must be four bytes", num))
			}
			img.Entry = uint32(rec.data[0])<<24 | uint32(rec.data[1])<<16 | uint32(rec.data[2])<<8 | uint32(rec.data[3])
			img.HasEntry = true

		default:
			return nil, curated.Errorf(CorruptImage, fmt.Sprintf("line %d: unrecognised record type 0x%02x", num, rec.kind))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	return nil, curated.Errorf(TruncatedImage, "no end of file record")
}
