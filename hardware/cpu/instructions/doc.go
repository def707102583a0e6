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

// Package instructions defines the CHIP-8 instruction set and decodes
// instruction words into Opcodes.
//
// Every instruction word is sixteen bits. The top nibble selects the family
// of the instruction. For families 0x8, 0xE and 0xF the low nibble or low
// byte selects the instruction within the family. The operands are taken
// from fixed positions in the word:
//
//	x   bits 8-11    register index
//	y   bits 4-7     register index
//	kk  bits 0-7     immediate byte
//	nnn bits 0-11    address
//	n   bits 0-3     nibble
//
// Words that are not part of the instruction set cause Decode() to return an
// error with the UnrecognisedInstruction pattern. This includes the 0nnn
// machine code instructions, of which only 00E0 and 00EE are supported.
package instructions
