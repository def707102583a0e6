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

// Size of the CHIP-8 address space.
const Size = 4096

// Important addresses within the address space.
const (
	// the interpreter area runs from zero to ReservedTop inclusive
	ReservedTop = 0x1ff

	// the font is entirely inside the reserved area
	FontOrigin = 0x050
	FontMemtop = FontOrigin + len(fontset) - 1

	// programs are loaded and start execution at ProgramOrigin
	ProgramOrigin = 0x200
)

// GlyphSize is the number of bytes (and rows) in each font glyph.
const GlyphSize = 5

// MaxProgramSize is the largest program image that can be loaded.
const MaxProgramSize = Size - ProgramOrigin
