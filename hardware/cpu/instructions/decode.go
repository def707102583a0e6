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

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// UnrecognisedInstruction is the error pattern returned by Decode() when
// the instruction word is not part of the instruction set.
const UnrecognisedInstruction = "instructions: unrecognised instruction (%#04x)"

// Opcode is a decoded instruction word. Opcodes are created by Decode() and
// are immutable.
//
// Only the operand fields that are meaningful for the Operator are set. The
// other fields are zero.
type Opcode struct {
	Operator Operator

	// the instruction word as read from memory
	Word uint16

	// register indexes
	X uint8
	Y uint8

	// immediate byte value (kk)
	Byte uint8

	// 12 bit address (nnn)
	Address uint16

	// 4 bit value (n). the number of rows in a sprite
	Nibble uint8
}

// Definition returns the Definition for the Opcode's Operator.
func (op Opcode) Definition() Definition {
	return op.Operator.Definition()
}

// String returns the opcode in assembler notation.
func (op Opcode) String() string {
	mn := op.Operator.Definition().Mnemonic

	switch op.Operator {
	case ClearScreen, Return:
		return mn
	case Jump, Call:
		return fmt.Sprintf("%s $%03X", mn, op.Address)
	case SkipEqual, SkipNotEqual, Set, Increment, RandomAnd:
		return fmt.Sprintf("%s V%X, $%02X", mn, op.X, op.Byte)
	case SkipRegEqual, SkipRegNotEqual, CopyReg, BitwiseOr, BitwiseAnd, BitwiseXor,
		AddReg, SubtractReg, NegativeSubtractReg:
		return fmt.Sprintf("%s V%X, V%X", mn, op.X, op.Y)
	case ShiftRight, ShiftLeft, SkipKeyPressed, SkipKeyNotPressed:
		return fmt.Sprintf("%s V%X", mn, op.X)
	case SetI:
		return fmt.Sprintf("%s I, $%03X", mn, op.Address)
	case JumpOffset:
		return fmt.Sprintf("%s V0, $%03X", mn, op.Address)
	case Draw:
		return fmt.Sprintf("%s V%X, V%X, $%X", mn, op.X, op.Y, op.Nibble)
	case CopyDelayToReg:
		return fmt.Sprintf("%s V%X, DT", mn, op.X)
	case WaitForKeyPress:
		return fmt.Sprintf("%s V%X, K", mn, op.X)
	case SetDelayFromReg:
		return fmt.Sprintf("%s DT, V%X", mn, op.X)
	case SetSoundFromReg:
		return fmt.Sprintf("%s ST, V%X", mn, op.X)
	case AddI:
		return fmt.Sprintf("%s I, V%X", mn, op.X)
	case SetIToFontDigit:
		return fmt.Sprintf("%s F, V%X", mn, op.X)
	case BinaryCodeI:
		return fmt.Sprintf("%s B, V%X", mn, op.X)
	case CopyRegistersToI:
		return fmt.Sprintf("%s [I], V%X", mn, op.X)
	case CopyIToRegisters:
		return fmt.Sprintf("%s V%X, [I]", mn, op.X)
	}

	return fmt.Sprintf("%04X", op.Word)
}

// Decode the instruction word. Returns an error with the
// UnrecognisedInstruction pattern if the word is not a CHIP-8 instruction.
//
// Note that the zero word is not a valid instruction. Whether it should be
// treated as an error or as a signal to halt is for the caller to decide.
func Decode(word uint16) (Opcode, error) {
	op := Opcode{Word: word}

	x := uint8((word & 0x0f00) >> 8)
	y := uint8((word & 0x00f0) >> 4)
	kk := uint8(word & 0x00ff)
	nnn := word & 0x0fff
	n := uint8(word & 0x000f)

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			op.Operator = ClearScreen
		case 0x00ee:
			op.Operator = Return
		default:
			// machine code routines (0nnn) are not supported
			return Opcode{}, curated.Errorf(UnrecognisedInstruction, word)
		}

	case 0x1:
		op.Operator = Jump
		op.Address = nnn

	case 0x2:
		op.Operator = Call
		op.Address = nnn

	case 0x3:
		op.Operator = SkipEqual
		op.X = x
		op.Byte = kk

	case 0x4:
		op.Operator = SkipNotEqual
		op.X = x
		op.Byte = kk

	case 0x5:
		if n != 0x0 {
			return Opcode{}, curated.Errorf(UnrecognisedInstruction, word)
		}
		op.Operator = SkipRegEqual
		op.X = x
		op.Y = y

	case 0x6:
		op.Operator = Set
		op.X = x
		op.Byte = kk

	case 0x7:
		op.Operator = Increment
		op.X = x
		op.Byte = kk

	case 0x8:
		switch n {
		case 0x0:
			op.Operator = CopyReg
		case 0x1:
			op.Operator = BitwiseOr
		case 0x2:
			op.Operator = BitwiseAnd
		case 0x3:
			op.Operator = BitwiseXor
		case 0x4:
			op.Operator = AddReg
		case 0x5:
			op.Operator = SubtractReg
		case 0x6:
			op.Operator = ShiftRight
		case 0x7:
			op.Operator = NegativeSubtractReg
		case 0xe:
			op.Operator = ShiftLeft
		default:
			return Opcode{}, curated.Errorf(UnrecognisedInstruction, word)
		}
		op.X = x
		op.Y = y

	case 0x9:
		if n != 0x0 {
			return Opcode{}, curated.Errorf(UnrecognisedInstruction, word)
		}
		op.Operator = SkipRegNotEqual
		op.X = x
		op.Y = y

	case 0xa:
		op.Operator = SetI
		op.Address = nnn

	case 0xb:
		op.Operator = JumpOffset
		op.Address = nnn

	case 0xc:
		op.Operator = RandomAnd
		op.X = x
		op.Byte = kk

	case 0xd:
		op.Operator = Draw
		op.X = x
		op.Y = y
		op.Nibble = n

	case 0xe:
		switch kk {
		case 0x9e:
			op.Operator = SkipKeyPressed
		case 0xa1:
			op.Operator = SkipKeyNotPressed
		default:
			return Opcode{}, curated.Errorf(UnrecognisedInstruction, word)
		}
		op.X = x

	case 0xf:
		switch kk {
		case 0x07:
			op.Operator = CopyDelayToReg
		case 0x0a:
			op.Operator = WaitForKeyPress
		case 0x15:
			op.Operator = SetDelayFromReg
		case 0x18:
			op.Operator = SetSoundFromReg
		case 0x1e:
			op.Operator = AddI
		case 0x29:
			op.Operator = SetIToFontDigit
		case 0x33:
			op.Operator = BinaryCodeI
		case 0x55:
			op.Operator = CopyRegistersToI
		case 0x65:
			op.Operator = CopyIToRegisters
		default:
			return Opcode{}, curated.Errorf(UnrecognisedInstruction, word)
		}
		op.X = x
	}

	return op, nil
}
