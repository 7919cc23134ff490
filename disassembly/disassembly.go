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
package disassembly

import (
	"github.com/avrsim/avrsim/curated"
	"github.com/avrsim/avrsim/hardware/cpu/instructions"
	"github.com/avrsim/avrsim/hardware/memory"
	"github.com/avrsim/avrsim/imageloader"
)

// Entry is a single line of the disassembly.
type Entry struct {
	// word address of the entry
	Address uint16

	// the program words of the entry. two words for two word instructions
	Words []uint16

	// the decoded instruction. the Defn field is nil if the entry is data
	Instruction instructions.Instruction
}

// IsData returns true if the entry could not be decoded as an instruction.
func (e Entry) IsData() bool {
	return e.Instruction.Defn == nil
}

// Disassembly is the linear disassembly of a program.
type Disassembly struct {
	Entries []Entry
}

// FromImage disassembles a firmware image.
func FromImage(img *imageloader.Image) (*Disassembly, error) {
	if img.Size() > memory.MaxFlashSize {
		return nil, curated.Errorf(memory.ImageTooLarge, img.Size(), memory.MaxFlashSize)
	}

	data := img.Bytes()
	if len(data)%2 != 0 {
		data = append(data, 0xff)
	}

	flash := memory.NewFlash(len(data))
	if err := flash.Load(data); err != nil {
		return nil, err
	}

	return FromProgram(flash, flash.Words())
}

// FromProgram disassembles the first n words of program memory.
func FromProgram(prog instructions.WordReader, n int) (*Disassembly, error) {
	dsm := &Disassembly{}

	for a := 0; a < n; {
		address := uint16(a)

		ins, err := instructions.Decode(prog, address)
		if err != nil {
			// an illegal opcode is data, as is a two word instruction that
			// runs off the end of the program
			if !curated.Is(err, instructions.IllegalOpcode) && !curated.Is(err, memory.MemoryOutOfRange) {
				return nil, err
			}

			w, err := prog.ReadWord(address)
			if err != nil {
				return nil, err
			}
			dsm.Entries = append(dsm.Entries, Entry{
				Address: address,
				Words:   []uint16{w},
			})
			a++
			continue
		}

		e := Entry{
			Address:     address,
			Words:       []uint16{ins.Opcode},
			Instruction: ins,
		}
		if ins.Words() == 2 {
			e.Words = append(e.Words, ins.Operand)
		}
		dsm.Entries = append(dsm.Entries, e)

		a += ins.Words()
	}

	return dsm, nil
}
