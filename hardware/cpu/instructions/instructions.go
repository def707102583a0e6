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

package instructions

import "fmt"

// Operator identifies the instruction. There is one Operator for each
// instruction in the CHIP-8 instruction set.
type Operator int

// List of all Operators. The comment for each Operator is the pattern of the
// instruction word.
const (
	ClearScreen         Operator = iota // 00E0
	Return                              // 00EE
	Jump                                // 1nnn
	Call                                // 2nnn
	SkipEqual                           // 3xkk
	SkipNotEqual                        // 4xkk
	SkipRegEqual                        // 5xy0
	Set                                 // 6xkk
	Increment                           // 7xkk
	CopyReg                             // 8xy0
	BitwiseOr                           // 8xy1
	BitwiseAnd                          // 8xy2
	BitwiseXor                          // 8xy3
	AddReg                              // 8xy4
	SubtractReg                         // 8xy5
	ShiftRight                          // 8xy6
	NegativeSubtractReg                 // 8xy7
	ShiftLeft                           // 8xyE
	SkipRegNotEqual                     // 9xy0
	SetI                                // Annn
	JumpOffset                          // Bnnn
	RandomAnd                           // Cxkk
	Draw                                // Dxyn
	SkipKeyPressed                      // Ex9E
	SkipKeyNotPressed                   // ExA1
	CopyDelayToReg                      // Fx07
	WaitForKeyPress                     // Fx0A
	SetDelayFromReg                     // Fx15
	SetSoundFromReg                     // Fx18
	AddI                                // Fx1E
	SetIToFontDigit                     // Fx29
	BinaryCodeI                         // Fx33
	CopyRegistersToI                    // Fx55
	CopyIToRegisters                    // Fx65

	// NumOperators is the number of defined operators. it is not itself an
	// Operator
	NumOperators
)

// Category of an instruction describes its effect.
type Category int

// List of instruction categories.
const (
	// register and timer only
	Register Category = iota

	// reads or writes memory through the index register
	Memory

	// alters the program counter unconditionally
	Flow

	// subroutine call and return
	Subroutine

	// conditionally skips the next instruction
	Skip

	// alters the display
	Display

	// requires the keypad
	Input
)

func (c Category) String() string {
	switch c {
	case Register:
		return "Register"
	case Memory:
		return "Memory"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Skip:
		return "Skip"
	case Display:
		return "Display"
	case Input:
		return "Input"
	}
	return "unknown category"
}

// Definition describes each Operator.
type Definition struct {
	Operator Operator
	Pattern  string
	Mnemonic string
	Category Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s %s [%s]", defn.Pattern, defn.Mnemonic, defn.Category)
}

// the order of definitions is the same as the order of Operator values
var definitions = [NumOperators]Definition{
	{ClearScreen, "00E0", "CLS", Display},
	{Return, "00EE", "RET", Subroutine},
	{Jump, "1nnn", "JP", Flow},
	{Call, "2nnn", "CALL", Subroutine},
	{SkipEqual, "3xkk", "SE", Skip},
	{SkipNotEqual, "4xkk", "SNE", Skip},
	{SkipRegEqual, "5xy0", "SE", Skip},
	{Set, "6xkk", "LD", Register},
	{Increment, "7xkk", "ADD", Register},
	{CopyReg, "8xy0", "LD", Register},
	{BitwiseOr, "8xy1", "OR", Register},
	{BitwiseAnd, "8xy2", "AND", Register},
	{BitwiseXor, "8xy3", "XOR", Register},
	{AddReg, "8xy4", "ADD", Register},
	{SubtractReg, "8xy5", "SUB", Register},
	{ShiftRight, "8xy6", "SHR", Register},
	{NegativeSubtractReg, "8xy7", "SUBN", Register},
	{ShiftLeft, "8xyE", "SHL", Register},
	{SkipRegNotEqual, "9xy0", "SNE", Skip},
	{SetI, "Annn", "LD", Register},
	{JumpOffset, "Bnnn", "JP", Flow},
	{RandomAnd, "Cxkk", "RND", Register},
	{Draw, "Dxyn", "DRW", Display},
	{SkipKeyPressed, "Ex9E", "SKP", Input},
	{SkipKeyNotPressed, "ExA1", "SKNP", Input},
	{CopyDelayToReg, "Fx07", "LD", Register},
	{WaitForKeyPress, "Fx0A", "LD", Input},
	{SetDelayFromReg, "Fx15", "LD", Register},
	{SetSoundFromReg, "Fx18", "LD", Register},
	{AddI, "Fx1E", "ADD", Register},
	{SetIToFontDigit, "Fx29", "LD", Register},
	{BinaryCodeI, "Fx33", "LD", Memory},
	{CopyRegistersToI, "Fx55", "LD", Memory},
	{CopyIToRegisters, "Fx65", "LD", Memory},
}

// GetDefinitions returns a copy of the table of instruction definitions,
// indexed by Operator.
func GetDefinitions() []Definition {
	d := make([]Definition, len(definitions))
	copy(d, definitions[:])
	return d
}

// Definition returns the Definition for the Operator.
func (op Operator) Definition() Definition {
	if op < 0 || op >= NumOperators {
		return Definition{Operator: op, Mnemonic: "???"}
	}
	return definitions[op]
}

func (op Operator) String() string {
	return op.Definition().Pattern
}
