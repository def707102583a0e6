// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal error patterns returned by the memory package.
const (
	AddressError    = "memory: address (%#04x) out of range"
	FontWriteError  = "memory: write to font area (%#04x)"
	ProgramTooLarge = "memory: program (%d bytes) exceeds available memory (%d bytes)"
)

// Memory is the entire address space of the CHIP-8.
type Memory struct {
	data [Size]uint8

	// the number of bytes loaded by the most recent call to Load()
	programSize int
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Memory is zero filled except for the font area.
func NewMemory() *Memory {
	mem := &Memory{}
	copy(mem.data[FontOrigin:], fontset[:])
	return mem
}

// Snapshot creates a copy of memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Load program data into memory at ProgramOrigin. The remainder of the program
// area is cleared. A program that is too large is rejected before memory is
// altered.
func (mem *Memory) Load(program []uint8) error {
	if len(program) > MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(program), MaxProgramSize)
	}

	n := copy(mem.data[ProgramOrigin:], program)
	for i := ProgramOrigin + n; i < Size; i++ {
		mem.data[i] = 0
	}
	mem.programSize = n

	return nil
}

// ProgramSize returns the size of the most recently loaded program.
func (mem *Memory) ProgramSize() int {
	return mem.programSize
}

// Read returns the byte at the address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.data[address], nil
}

// Write data to the address. The font area cannot be written to.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(AddressError, address)
	}
	if int(address) >= FontOrigin && int(address) <= FontMemtop {
		return curated.Errorf(FontWriteError, address)
	}
	mem.data[address] = data
	return nil
}

// ReadWord returns the big-endian 16 bit value at the address. Both bytes
// must be inside the address space.
func (mem *Memory) ReadWord(address uint16) (uint16, error) {
	if int(address)+1 >= Size {
		return 0, curated.Errorf(AddressError, int(address)+1)
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// Slice returns a copy of length bytes starting at origin.
func (mem *Memory) Slice(origin uint16, length int) ([]uint8, error) {
	if length < 0 || int(origin)+length > Size {
		return nil, curated.Errorf(AddressError, int(origin)+length-1)
	}
	s := make([]uint8, length)
	copy(s, mem.data[origin:])
	return s, nil
}

// Dump returns a hex listing of length bytes starting at origin. Sixteen
// bytes per line. The listing is cropped at the end of memory.
func (mem *Memory) Dump(origin uint16, length int) string {
	s := strings.Builder{}

	if int(origin)+length > Size {
		length = Size - int(origin)
	}

	for i := 0; i < length; i += 16 {
		s.WriteString(fmt.Sprintf("%03x |", int(origin)+i))
		for j := i; j < i+16 && j < length; j++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[int(origin)+j]))
		}
		s.WriteString("\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}

func (mem *Memory) String() string {
	return mem.Dump(ProgramOrigin, 64)
}
