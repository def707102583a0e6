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

// Package memory implements the 4096 byte address space of the CHIP-8.
//
// The first 512 bytes (0x000 to 0x1ff) are reserved for the interpreter.
// The only part of the reserved area that is used by the emulation is the
// font area, which holds the sixteen hexadecimal digit glyphs. Each glyph is
// five bytes long and the font occupies 80 bytes from FontOrigin. The font is
// written by NewMemory() and is never written to again.
//
// Programs are loaded at ProgramOrigin (0x200) with the Load() function.
//
// All accesses are bounds checked. An access outside of the address space
// results in an error with the AddressError pattern. See the curated package.
package memory
