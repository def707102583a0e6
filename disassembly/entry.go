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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Entry is a single line of the disassembly.
type Entry struct {
	Address uint16

	// the instruction word. if Width is one then only the low byte is valid
	Word  uint16
	Width int

	// if Decoded is false then the entry is data
	Decoded bool
	Opcode  instructions.Opcode

	// non-empty if the address is the target of a jump or call
	Label string
}

// Bytecode returns the bytes of the entry as a hex string.
func (e *Entry) Bytecode() string {
	if e.Width == 1 {
		return fmt.Sprintf("%02X", e.Word)
	}
	return fmt.Sprintf("%04X", e.Word)
}

// Operator returns the mnemonic of the entry. Data entries have the DW or DB
// pseudo-operator.
func (e *Entry) Operator() string {
	if !e.Decoded {
		if e.Width == 1 {
			return "DB"
		}
		return "DW"
	}
	return e.Opcode.Definition().Mnemonic
}

// Operand returns the operand part of the entry. Addresses that have a label
// are replaced by that label.
func (e *Entry) Operand(labels map[uint16]string) string {
	if !e.Decoded {
		if e.Width == 1 {
			return fmt.Sprintf("$%02X", e.Word)
		}
		return fmt.Sprintf("$%04X", e.Word)
	}

	switch e.Opcode.Operator {
	case instructions.Jump, instructions.Call:
		if l, ok := labels[e.Opcode.Address]; ok {
			return l
		}
	}

	// the operand is whatever follows the mnemonic in the assembler notation
	s := e.Opcode.String()
	m := e.Opcode.Definition().Mnemonic
	if len(s) > len(m)+1 {
		return s[len(m)+1:]
	}
	return ""
}

func (e *Entry) String() string {
	if op := e.Operand(nil); op != "" {
		return fmt.Sprintf("%03x %s %s", e.Address, e.Operator(), op)
	}
	return fmt.Sprintf("%03x %s", e.Address, e.Operator())
}
