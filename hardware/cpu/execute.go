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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// the address at the given offset from the index register. the index
// register can be larger than the address space so the check is made here
// before the uint16 conversion can hide the problem
func (mc *CPU) indexed(offset int) (uint16, error) {
	a := int(mc.I) + offset
	if a >= memory.Size {
		return 0, curated.Errorf(memory.AddressError, a)
	}
	return uint16(a), nil
}

func (mc *CPU) readIndexed(offset int) (uint8, error) {
	a, err := mc.indexed(offset)
	if err != nil {
		return 0, err
	}
	return mc.mem.Read(a)
}

func (mc *CPU) writeIndexed(offset int, data uint8) error {
	a, err := mc.indexed(offset)
	if err != nil {
		return err
	}
	return mc.mem.Write(a, data)
}

func (mc *CPU) skipIf(cond bool) {
	if cond {
		mc.PC += 2
	}
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// execute the opcode. the program counter has already been advanced past
// the instruction word.
func (mc *CPU) execute(op instructions.Opcode) error {
	x := op.X
	y := op.Y

	switch op.Operator {
	case instructions.ClearScreen:
		mc.dsp.Clear()
		mc.FrameReady = true

	case instructions.Return:
		if len(mc.Stack) == 0 {
			return curated.Errorf(StackUnderflow)
		}
		mc.PC = mc.Stack[len(mc.Stack)-1]
		mc.Stack = mc.Stack[:len(mc.Stack)-1]

	case instructions.Jump:
		mc.PC = op.Address

	case instructions.Call:
		mc.Stack = append(mc.Stack, mc.PC)
		mc.PC = op.Address

	case instructions.SkipEqual:
		mc.skipIf(mc.V[x] == op.Byte)

	case instructions.SkipNotEqual:
		mc.skipIf(mc.V[x] != op.Byte)

	case instructions.SkipRegEqual:
		mc.skipIf(mc.V[x] == mc.V[y])

	case instructions.Set:
		mc.V[x] = op.Byte

	case instructions.Increment:
		mc.V[x] += op.Byte

	case instructions.CopyReg:
		mc.V[x] = mc.V[y]

	case instructions.BitwiseOr:
		mc.V[x] |= mc.V[y]

	case instructions.BitwiseAnd:
		mc.V[x] &= mc.V[y]

	case instructions.BitwiseXor:
		mc.V[x] ^= mc.V[y]

	case instructions.AddReg:
		sum := uint16(mc.V[x]) + uint16(mc.V[y])
		mc.V[x] = uint8(sum & 0xff)
		mc.V[VF] = flag(sum > 0xff)

	case instructions.SubtractReg:
		vx, vy := mc.V[x], mc.V[y]
		mc.V[x] = vx - vy
		mc.V[VF] = flag(vx >= vy)

	case instructions.ShiftRight:
		lsb := mc.V[x] & 0x01
		mc.V[x] >>= 1
		mc.V[VF] = lsb

	case instructions.NegativeSubtractReg:
		vx, vy := mc.V[x], mc.V[y]
		if mc.Quirks.SUBN {
			mc.V[x] = vy - vx
			mc.V[VF] = flag(vy >= vx)
		} else if vy > vx {
			mc.V[x] = vy - vx
			mc.V[VF] = 1
		} else {
			mc.V[VF] = 0
		}

	case instructions.ShiftLeft:
		msb := mc.V[x] >> 7
		mc.V[x] <<= 1
		mc.V[VF] = msb

	case instructions.SkipRegNotEqual:
		mc.skipIf(mc.V[x] != mc.V[y])

	case instructions.SetI:
		mc.I = op.Address

	case instructions.JumpOffset:
		mc.PC = uint16(mc.V[0]) + op.Address

	case instructions.RandomAnd:
		mc.V[x] = mc.rnd.Byte() & op.Byte

	case instructions.Draw:
		ox := int(mc.V[x]) % display.Width
		oy := int(mc.V[y]) % display.Height
		var collision bool
		for row := 0; row < int(op.Nibble); row++ {
			b, err := mc.readIndexed(row)
			if err != nil {
				return err
			}
			if mc.dsp.BlitRow(ox, (oy+row)%display.Height, b) {
				collision = true
			}
		}
		mc.V[VF] = flag(collision)
		mc.FrameReady = true

	case instructions.SkipKeyPressed:
		mc.skipIf(keypad.IsPressed(mc.kp, mc.V[x]))

	case instructions.SkipKeyNotPressed:
		mc.skipIf(!keypad.IsPressed(mc.kp, mc.V[x]))

	case instructions.CopyDelayToReg:
		mc.V[x] = mc.tmr.Delay

	case instructions.WaitForKeyPress:
		if key, ok := mc.kp.Poll(); ok {
			mc.V[x] = key
		} else {
			mc.WaitingForKey = true
			mc.waitRegister = x
		}

	case instructions.SetDelayFromReg:
		mc.tmr.Delay = mc.V[x]

	case instructions.SetSoundFromReg:
		mc.tmr.Sound = mc.V[x]

	case instructions.AddI:
		mc.I += uint16(mc.V[x])

	case instructions.SetIToFontDigit:
		mc.I = memory.GlyphAddress(mc.V[x])

	case instructions.BinaryCodeI:
		v := mc.V[x]
		for i, d := range []uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.writeIndexed(i, d); err != nil {
				return err
			}
		}

	case instructions.CopyRegistersToI:
		for r := 0; r <= int(x); r++ {
			if err := mc.writeIndexed(r, mc.V[r]); err != nil {
				return err
			}
		}

	case instructions.CopyIToRegisters:
		for r := 0; r <= int(x); r++ {
			v, err := mc.readIndexed(r)
			if err != nil {
				return err
			}
			mc.V[r] = v
		}

	default:
		return curated.Errorf(instructions.UnrecognisedInstruction, op.Word)
	}

	return nil
}
