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
package memory

import (
	"fmt"

	"github.com/avrsim/avrsim/curated"
)

// ImageTooLarge is the pattern for images that do not fit in flash.
const ImageTooLarge = "image too large: %d bytes for %d bytes of flash"

// MaxFlashSize is the largest program memory a sixteen bit word address can
// reach.
const MaxFlashSize = 0x20000

// Flash is program memory. It is byte addressable for LPM and word
// addressable for instruction fetches. Words are stored little-endian.
type Flash struct {
	data []uint8
}

// NewFlash is the preferred method of initialisation for the Flash type. The
// memory is filled with 0xff, the value of erased flash.
func NewFlash(size int) *Flash {
	f := &Flash{
		data: make([]uint8, size),
	}
	f.Erase()
	return f
}

func (f *Flash) String() string {
	return fmt.Sprintf("flash: %d bytes", len(f.data))
}

// Erase sets every byte to 0xff.
func (f *Flash) Erase() {
	for i := range f.data {
		f.data[i] = 0xff
	}
}

// Load data into flash from address zero.
func (f *Flash) Load(data []uint8) error {
	if len(data) > len(f.data) {
		return curated.Errorf(ImageTooLarge, len(data), len(f.data))
	}
	f.Erase()
	copy(f.data, data)
	return nil
}

// Size returns the size of flash in bytes.
func (f *Flash) Size() int {
	return len(f.data)
}

// Words returns the size of flash in words.
func (f *Flash) Words() int {
	return len(f.data) / 2
}

// ReadWord returns the program word at the word address.
func (f *Flash) ReadWord(address uint16) (uint16, error) {
	a := int(address) * 2
	if a+1 >= len(f.data) {
		return 0, curated.Errorf(MemoryOutOfRange, fmt.Sprintf("fetch from program address 0x%04x", a))
	}
	return uint16(f.data[a]) | uint16(f.data[a+1])<<8, nil
}

// Byte returns the byte at the byte address. Used by LPM.
func (f *Flash) Byte(address uint16) (uint8, error) {
	if int(address) >= len(f.data) {
		return 0, curated.Errorf(MemoryOutOfRange, fmt.Sprintf("read of program address 0x%04x", address))
	}
	return f.data[address], nil
}
