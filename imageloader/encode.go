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
	"fmt"
	"io"
	"strings"

	"github.com/avrsim/avrsim/curated"
)

// number of data bytes in each data record written by Encode().
const recordSize = 16

func writeRecord(w io.Writer, address uint16, kind byte, data []byte) error {
	b := make([]byte, 0, len(data)+recordOverhead)
	b = append(b, byte(len(data)), byte(address>>8), byte(address), kind)
	b = append(b, data...)
	b = append(b, checksum(b))

	_, err := io.WriteString(w, fmt.Sprintf(":%s\n", strings.ToUpper(fmt.Sprintf("%x", b))))
	return err
}

// Encode writes the image in the Intel HEX format. Data records are sixteen
// bytes long and never cross a 64KiB boundary. An extended linear address
// record is written whenever the upper sixteen bits of the address change.
func Encode(w io.Writer, img *Image) error {
	var upper uint32

	for _, s := range img.Segments {
		data := s.Data
		address := s.Address

		for len(data) > 0 {
			if address>>16 != upper {
				upper = address >> 16
				err := writeRecord(w, 0, recordExtendedLinearAddress, []byte{byte(upper >> 8), byte(upper)})
				if err != nil {
					return curated.Errorf(FileError, err)
				}
			}

			n := recordSize
			if n > len(data) {
				n = len(data)
			}
			if boundary := 0x10000 - int(address&0xffff); n > boundary {
				n = boundary
			}

			err := writeRecord(w, uint16(address), recordData, data[:n])
			if err != nil {
				return curated.Errorf(FileError, err)
			}

			data = data[n:]
			address += uint32(n)
		}
	}

	if img.HasEntry {
		e := img.Entry
		err := writeRecord(w, 0, recordStartLinearAddress, []byte{byte(e >> 24), byte(e >> 16), byte(e >> 8), byte(e)})
		if err != nil {
			return curated.Errorf(FileError, err)
		}
	}

	if err := writeRecord(w, 0, recordEOF, nil); err != nil {
		return curated.Errorf(FileError, err)
	}

	return nil
}

// EncodeWords is a convenience function that creates an image from a list of
// program words and encodes it. Program words are stored little-endian, as
// they are in AVR flash.
func EncodeWords(w io.Writer, words []uint16) error {
	data := make([]byte, 0, len(words)*2)
	for _, v := range words {
		data = append(data, byte(v), byte(v>>8))
	}
	return Encode(w, FromBytes(data))
}
