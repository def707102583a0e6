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

// Package disassembly produces a linear listing of a CHIP-8 program.
//
// Every even address from the start of the program area is decoded as an
// instruction. Words that do not decode are listed as data with the DW
// pseudo-operator. A trailing odd byte is listed with the DB pseudo-operator.
//
// The targets of JP and CALL instructions are given labels, which are used in
// place of the address operand when the listing is written.
//
// CHIP-8 programs freely mix sprite data with instructions so a linear listing
// will sometimes show data as an instruction. The Decoded field of the Entry
// type only indicates that the word could be decoded.
package disassembly
