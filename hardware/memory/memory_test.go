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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestFont(t *testing.T) {
	mem := memory.NewMemory()

	// every glyph is in memory at the expected address
	for d := uint8(0); d <= 0x0f; d++ {
		g := memory.Glyph(d)
		a := memory.GlyphAddress(d)
		for i := range g {
			v, err := mem.Read(a + uint16(i))
			test.DemandSuccess(t, err)
			test.ExpectEquality(t, v, g[i], "glyph %x row %d", d, i)
		}
	}

	// digit zero
	test.ExpectEquality(t, memory.Glyph(0), [memory.GlyphSize]uint8{0xf0, 0x90, 0x90, 0x90, 0xf0})
	test.ExpectEquality(t, memory.GlyphAddress(0), uint16(0x050))
	test.ExpectEquality(t, memory.GlyphAddress(0x0f), uint16(0x050+15*5))

	// the font area is read only
	err := mem.Write(memory.FontOrigin, 0xff)
	test.ExpectSuccess(t, curated.Is(err, memory.FontWriteError))
	err = mem.Write(uint16(memory.FontMemtop), 0xff)
	test.ExpectSuccess(t, curated.Is(err, memory.FontWriteError))
	v, _ := mem.Read(memory.FontOrigin)
	test.ExpectEquality(t, v, uint8(0xf0))

	// either side of the font area is writable
	test.ExpectSuccess(t, mem.Write(memory.FontOrigin-1, 0xff))
	test.ExpectSuccess(t, mem.Write(uint16(memory.FontMemtop+1), 0xff))
}

func TestBounds(t *testing.T) {
	mem := memory.NewMemory()

	_, err := mem.Read(0x0fff)
	test.ExpectSuccess(t, err)
	_, err = mem.Read(0x1000)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))

	err = mem.Write(0x0fff, 1)
	test.ExpectSuccess(t, err)
	err = mem.Write(0x1000, 1)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))

	// the second byte of a word must also be in range
	_, err = mem.ReadWord(0x0ffe)
	test.ExpectSuccess(t, err)
	_, err = mem.ReadWord(0x0fff)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))
	_, err = mem.ReadWord(0xffff)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))

	_, err = mem.Slice(0x0ff0, 16)
	test.ExpectSuccess(t, err)
	_, err = mem.Slice(0x0ff0, 17)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.Load([]uint8{0x12, 0x34, 0x56})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.ProgramSize(), 3)

	w, err := mem.ReadWord(memory.ProgramOrigin)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0x1234))

	// loading a smaller program clears the remains of the previous one
	err = mem.Load([]uint8{0xab})
	test.DemandSuccess(t, err)
	w, _ = mem.ReadWord(memory.ProgramOrigin)
	test.ExpectEquality(t, w, uint16(0xab00))
	v, _ := mem.Read(memory.ProgramOrigin + 2)
	test.ExpectEquality(t, v, uint8(0x00))

	// largest program possible
	err = mem.Load(make([]uint8, memory.MaxProgramSize))
	test.ExpectSuccess(t, err)

	// program too large is rejected without altering memory
	_ = mem.Load([]uint8{0xaa})
	p := make([]uint8, memory.MaxProgramSize+1)
	err = mem.Load(p)
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLarge))
	v, _ = mem.Read(memory.ProgramOrigin)
	test.ExpectEquality(t, v, uint8(0xaa))
}

func TestDump(t *testing.T) {
	mem := memory.NewMemory()
	_ = mem.Load([]uint8{0x00, 0xe0, 0x12, 0x00})
	test.ExpectEquality(t, mem.Dump(memory.ProgramOrigin, 4), "200 | 00 e0 12 00")

	// dump is cropped at the end of memory
	test.ExpectEquality(t, mem.Dump(0x0ffe, 16), "ffe | 00 00")
}
