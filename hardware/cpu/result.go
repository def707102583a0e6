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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the most recent instruction that was fetched by the CPU.
type Result struct {
	// the address the instruction word was read from
	Address uint16

	// the instruction word
	Word uint16

	// the decoded opcode. only valid if Decoded is true
	Opcode  instructions.Opcode
	Decoded bool

	// Final is true if the instruction completed without error
	Final bool

	// the instruction was the halt word
	Halt bool
}

// Reset the Result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	switch {
	case r.Halt:
		return fmt.Sprintf("%03x %04X HALT", r.Address, r.Word)
	case r.Decoded:
		return fmt.Sprintf("%03x %04X %s", r.Address, r.Word, r.Opcode)
	}
	return fmt.Sprintf("%03x %04X ???", r.Address, r.Word)
}
