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
	"sort"
)

// Segment is a contiguous run of bytes in the image.
type Segment struct {
	Address uint32
	Data    []byte
}

// End returns the address after the last byte of the segment.
func (s Segment) End() uint32 {
	return s.Address + uint32(len(s.Data))
}

// Image is the result of decoding an Intel HEX file. The image is a list of
// segments sorted by address.
type Image struct {
	Segments []Segment

	// the entry address, if the image specified one. images for the AVR
	// usually do not and execution begins at address zero
	Entry    uint32
	HasEntry bool
}

// add data at address. data that continues the previous segment extends it.
func (img *Image) add(address uint32, data []byte) {
	if len(data) == 0 {
		return
	}
	if n := len(img.Segments); n > 0 && img.Segments[n-1].End() == address {
		img.Segments[n-1].Data = append(img.Segments[n-1].Data, data...)
		return
	}
	img.Segments = append(img.Segments, Segment{
		Address: address,
		Data:    append([]byte{}, data...),
	})
}

// sort segments by address and merge those that touch. the order of records
// in a file is not guaranteed to be ascending.
func (img *Image) normalise() {
	sort.SliceStable(img.Segments, func(i, j int) bool {
		return img.Segments[i].Address < img.Segments[j].Address
	})

	var merged []Segment
	for _, s := range img.Segments {
		if n := len(merged); n > 0 && merged[n-1].End() >= s.Address {
			m := &merged[n-1]
			overlap := int(m.End() - s.Address)
			if overlap >= len(s.Data) {
				copy(m.Data[len(m.Data)-overlap:], s.Data)
			} else {
				copy(m.Data[len(m.Data)-overlap:], s.Data[:overlap])
				m.Data = append(m.Data, s.Data[overlap:]...)
			}
			continue
		}
		merged = append(merged, s)
	}
	img.Segments = merged
}

// Size returns the number of bytes from address zero to the end of the last
// segment.
func (img *Image) Size() int {
	if len(img.Segments) == 0 {
		return 0
	}
	return int(img.Segments[len(img.Segments)-1].End())
}

// Bytes returns the image as a flat byte slice starting at address zero.
// Gaps between segments are filled with 0xff, which is the value of erased
// flash memory.
func (img *Image) Bytes() []byte {
	b := make([]byte, img.Size())
	for i := range b {
		b[i] = 0xff
	}
	for _, s := range img.Segments {
		copy(b[s.Address:], s.Data)
	}
	return b
}

// FromBytes creates an image with a single segment at address zero.
func FromBytes(data []byte) *Image {
	img := &Image{}
	img.add(0, data)
	return img
}
