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
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
)

// DisasmError is the error pattern for all errors returned by the
// disassembly package.
const DisasmError = "disassembly: %v"

// Disassembly represents the annotated disassembly of a CHIP-8 program.
type Disassembly struct {
	Entries []*Entry

	// labels indexed by address
	labels map[uint16]string
}

// FromLoader disassembles the program specified by the loader. The program is
// loaded if it has not already been loaded.
func FromLoader(ld romloader.Loader) (*Disassembly, error) {
	if err := ld.Load(); err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}
	return FromProgram(ld.Data)
}

// FromProgram disassembles the program data as it would be loaded in memory.
func FromProgram(data []byte) (*Disassembly, error) {
	if len(data) > memory.MaxProgramSize {
		return nil, curated.Errorf(DisasmError, curated.Errorf(memory.ProgramTooLarge, len(data), memory.MaxProgramSize))
	}

	dsm := &Disassembly{
		Entries: make([]*Entry, 0, (len(data)+1)/2),
		labels:  make(map[uint16]string),
	}

	for i := 0; i < len(data); i += 2 {
		e := &Entry{
			Address: uint16(memory.ProgramOrigin + i),
		}

		if i+1 >= len(data) {
			e.Word = uint16(data[i])
			e.Width = 1
		} else {
			e.Word = uint16(data[i])<<8 | uint16(data[i+1])
			e.Width = 2
			if op, err := instructions.Decode(e.Word); err == nil {
				e.Opcode = op
				e.Decoded = true
			}
		}

		dsm.Entries = append(dsm.Entries, e)
	}

	// label every jump or call target that is inside the program. a
	// subroutine label takes priority over a jump label
	for _, e := range dsm.Entries {
		if !e.Decoded {
			continue
		}

		var label string
		switch e.Opcode.Operator {
		case instructions.Jump:
			label = fmt.Sprintf("L%03X", e.Opcode.Address)
		case instructions.Call:
			label = fmt.Sprintf("S%03X", e.Opcode.Address)
		default:
			continue
		}

		if t, ok := dsm.GetEntryByAddress(e.Opcode.Address); ok {
			if t.Label == "" || label[0] == 'S' {
				t.Label = label
				dsm.labels[t.Address] = label
			}
		}
	}

	return dsm, nil
}

// GetEntryByAddress returns the entry at the address. Odd addresses and
// addresses outside the program return false.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	if address < memory.ProgramOrigin || address&0x01 != 0 {
		return nil, false
	}
	idx := int(address-memory.ProgramOrigin) / 2
	if idx >= len(dsm.Entries) {
		return nil, false
	}
	return dsm.Entries[idx], true
}

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer. Entries with a label are
// preceded by a line containing only the label.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}

	if e.Label != "" {
		s.WriteString(e.Label)
		s.WriteString(":\n")
	}

	s.WriteString(fmt.Sprintf("%03x ", e.Address))
	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%-4s ", e.Bytecode()))
	}
	if op := e.Operand(dsm.labels); op != "" {
		s.WriteString(fmt.Sprintf("%-4s %s", e.Operator(), op))
	} else {
		s.WriteString(e.Operator())
	}
	s.WriteString("\n")

	if _, err := io.WriteString(output, s.String()); err != nil {
		return curated.Errorf(DisasmError, err)
	}

	return nil
}
