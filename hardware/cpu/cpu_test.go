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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestHalt(t *testing.T) {
	r := newRig(t, 0x6001, 0x0000, 0x6002)

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.Halted, false)

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.Halted, true)
	test.ExpectEquality(t, r.mc.LastResult.Halt, true)
	test.ExpectEquality(t, r.mc.LastResult.Address, uint16(0x202))

	// nothing happens once the CPU has halted
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(1))
	test.ExpectEquality(t, r.mc.InstructionCount, uint64(1))
}

func TestAdd(t *testing.T) {
	r := newRig(t, 0x8014)
	r.mc.V[0] = 250
	r.mc.V[1] = 10
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(4))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))

	r = newRig(t, 0x8014)
	r.mc.V[0] = 1
	r.mc.V[1] = 2
	r.mc.V[cpu.VF] = 1
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(3))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))

	// exactly 256
	r = newRig(t, 0x8014)
	r.mc.V[0] = 128
	r.mc.V[1] = 128
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
}

func TestSubtract(t *testing.T) {
	r := newRig(t, 0x8015)
	r.mc.V[0] = 5
	r.mc.V[1] = 3
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(2))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))

	r = newRig(t, 0x8015)
	r.mc.V[0] = 3
	r.mc.V[1] = 5
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(254))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))

	// equal values is not a borrow
	r = newRig(t, 0x8015)
	r.mc.V[0] = 7
	r.mc.V[1] = 7
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
}

func TestNegativeSubtract(t *testing.T) {
	// vy > vx
	r := newRig(t, 0x8017)
	r.mc.V[0] = 3
	r.mc.V[1] = 5
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(2))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))

	// vy <= vx leaves the destination unchanged
	r = newRig(t, 0x8017)
	r.mc.V[0] = 5
	r.mc.V[1] = 3
	r.mc.V[cpu.VF] = 1
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(5))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))

	// with the quirk the result is always written
	r = newRig(t, 0x8017)
	r.mc.Quirks.SUBN = true
	r.mc.V[0] = 5
	r.mc.V[1] = 3
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(254))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))

	r = newRig(t, 0x8017)
	r.mc.Quirks.SUBN = true
	r.mc.V[0] = 5
	r.mc.V[1] = 5
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
}

func TestShift(t *testing.T) {
	r := newRig(t, 0x8016, 0x8016)
	r.mc.V[0] = 0b00000011
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0b00000001))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))

	r = newRig(t, 0x801e, 0x801e)
	r.mc.V[0] = 0b10000001
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0b00000010))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0b00000100))
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))
}

func TestLogical(t *testing.T) {
	r := newRig(t, 0x8011, 0x8022, 0x8033, 0x8040)
	r.mc.V[0] = 0b1100
	r.mc.V[1] = 0b1010
	r.mc.V[2] = 0b0110
	r.mc.V[3] = 0b1111
	r.mc.V[4] = 0x42

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0b1110))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0b0110))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0b1001))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0], uint8(0x42))
}

func TestImmediate(t *testing.T) {
	r := newRig(t, 0x6aff, 0x7a02, 0xa123)
	r.step(t, 2)
	test.ExpectEquality(t, r.mc.V[0xa], uint8(0x01))

	// 7xkk does not alter the flag
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.I, uint16(0x123))
}

func TestSkips(t *testing.T) {
	// each skip instruction is followed by an instruction that sets V0. if
	// the skip happens V0 will be unchanged
	for _, tc := range []struct {
		word uint16
		skip bool
	}{
		{0x3105, true},
		{0x3106, false},
		{0x4105, false},
		{0x4106, true},
		{0x5120, true},
		{0x5130, false},
		{0x9120, false},
		{0x9130, true},
	} {
		r := newRig(t, tc.word, 0x60ff)
		r.mc.V[1] = 5
		r.mc.V[2] = 5
		r.mc.V[3] = 6
		r.step(t, 1)
		if tc.skip {
			test.ExpectEquality(t, r.mc.PC, uint16(0x204), "%04x", tc.word)
		} else {
			test.ExpectEquality(t, r.mc.PC, uint16(0x202), "%04x", tc.word)
		}
	}
}

func TestKeySkips(t *testing.T) {
	r := newRig(t, 0xe19e, 0xe1a1)
	r.mc.V[1] = 0x5

	// no key pressed
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x202))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x206))

	// matching key pressed
	r = newRig(t, 0xe19e, 0x0000, 0xe1a1)
	r.mc.V[1] = 0x5
	r.kp.Press(0x5)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x204))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x206))

	// different key pressed
	r = newRig(t, 0xe19e, 0xe1a1)
	r.mc.V[1] = 0x5
	r.kp.Press(0x6)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x202))
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x206))
}

func TestFlow(t *testing.T) {
	r := newRig(t, 0x1208, 0x0000, 0x0000, 0x0000, 0x2210)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x208))

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x210))
	test.ExpectEquality(t, r.mc.SP(), 1)
	test.ExpectEquality(t, r.mc.Stack[0], uint16(0x20a))

	// jump with offset uses register zero only
	r = newRig(t, 0xb300)
	r.mc.V[0] = 0x10
	r.mc.V[3] = 0x20
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x310))
}

func TestSubroutine(t *testing.T) {
	// 200 CALL 206
	// 202 LD V1, 1
	// 204 halt
	// 206 LD V2, 2
	// 208 RET
	r := newRig(t, 0x2206, 0x6101, 0x0000, 0x6202, 0x00ee)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.PC, uint16(0x202))
	test.ExpectEquality(t, r.mc.SP(), 0)
	r.step(t, 2)
	test.ExpectEquality(t, r.mc.Halted, true)
	test.ExpectEquality(t, r.mc.V[1], uint8(1))
	test.ExpectEquality(t, r.mc.V[2], uint8(2))

	// the stack has no fixed limit
	r = newRig(t, 0x2200)
	r.step(t, 100)
	test.ExpectEquality(t, r.mc.SP(), 100)
}

func TestStackUnderflow(t *testing.T) {
	r := newRig(t, 0x00ee)
	err := r.mc.ExecuteInstruction()
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.ExecutionError))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))
	test.ExpectEquality(t, err.Error(), "cpu: return with empty stack (pc 0x0200 word 00ee)")
	test.ExpectEquality(t, r.mc.Halted, true)
}

func TestDecodeError(t *testing.T) {
	r := newRig(t, 0x6001, 0x5001)
	r.step(t, 1)
	err := r.mc.ExecuteInstruction()
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, instructions.UnrecognisedInstruction))
	test.ExpectEquality(t, r.mc.LastResult.Address, uint16(0x202))
	test.ExpectEquality(t, r.mc.LastResult.Word, uint16(0x5001))
	test.ExpectEquality(t, r.mc.LastResult.Final, false)

	// the unwrapped error is the decode error
	test.ExpectSuccess(t, curated.Is(errors.Unwrap(err), instructions.UnrecognisedInstruction))
}

func TestBounds(t *testing.T) {
	// program counter runs off the end of memory
	r := newRig(t, 0x1fff)
	r.step(t, 1)
	err := r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressError))

	// index register beyond the end of memory
	r = newRig(t, 0xaffe, 0xf265)
	r.step(t, 1)
	err = r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressError))

	// the index register can be larger than the address space
	r = newRig(t, 0xafff, 0x60ff, 0xf01e, 0xd001)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.I, uint16(0x10fe))
	err = r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressError))
}

func TestRandom(t *testing.T) {
	r := newRig(t, 0xc30f)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[3], uint8(0x0f))
}

func TestTimers(t *testing.T) {
	r := newRig(t, 0x6a30, 0xfa15, 0xfa18, 0xfb07)
	r.step(t, 3)
	test.ExpectEquality(t, r.tmr.Delay, uint8(0x30))
	test.ExpectEquality(t, r.tmr.Sound, uint8(0x30))

	r.tmr.Tick()
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[0xb], uint8(0x2f))
	test.ExpectEquality(t, r.tmr.Sound, uint8(0x2f))
}

func TestIndex(t *testing.T) {
	r := newRig(t, 0xa300, 0x6510, 0xf51e)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.I, uint16(0x310))

	r = newRig(t, 0x6b0b, 0xfb29)
	r.step(t, 2)
	test.ExpectEquality(t, r.mc.I, memory.GlyphAddress(0xb))
	test.ExpectEquality(t, r.mc.I, uint16(0x050+0xb*5))
}

func TestBinaryCode(t *testing.T) {
	r := newRig(t, 0xa300, 0x62cd, 0xf233)
	r.step(t, 3)
	b, err := r.mem.Slice(0x300, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b[0], uint8(2))
	test.ExpectEquality(t, b[1], uint8(0))
	test.ExpectEquality(t, b[2], uint8(5))

	// the index register is not altered
	test.ExpectEquality(t, r.mc.I, uint16(0x300))
}

func TestRegisterTransfer(t *testing.T) {
	r := newRig(t, 0xa300, 0xf555, 0xf565)
	original := [cpu.NumRegisters]uint8{}
	for i := range original {
		original[i] = uint8(0x10 + i)
	}
	r.mc.V = original
	r.step(t, 2)

	// registers zero to five inclusive are stored. register six is not
	b, err := r.mem.Slice(0x300, 7)
	test.DemandSuccess(t, err)
	for i := 0; i <= 5; i++ {
		test.ExpectEquality(t, b[i], original[i])
	}
	test.ExpectEquality(t, b[6], uint8(0))

	// load them back into cleared registers
	r.mc.V = [cpu.NumRegisters]uint8{}
	r.step(t, 1)
	for i := 0; i <= 5; i++ {
		test.ExpectEquality(t, r.mc.V[i], original[i])
	}
	test.ExpectEquality(t, r.mc.V[6], uint8(0))
	test.ExpectEquality(t, r.mc.I, uint16(0x300))
}

func TestRegisterTransferLimits(t *testing.T) {
	for _, x := range []int{0x0, 0xf} {
		r := newRig(t, 0xa300, 0xf055|uint16(x)<<8, 0xf065|uint16(x)<<8)
		original := [cpu.NumRegisters]uint8{}
		for i := range original {
			original[i] = uint8(0x80 + i)
		}
		r.mc.V = original
		r.step(t, 2)

		// registers zero to x inclusive are stored and nothing beyond
		b, err := r.mem.Slice(0x300, cpu.NumRegisters+1)
		test.DemandSuccess(t, err)
		for i := range b {
			if i <= x {
				test.ExpectEquality(t, b[i], original[i], x, i)
			} else {
				test.ExpectEquality(t, b[i], uint8(0), x, i)
			}
		}

		r.mc.V = [cpu.NumRegisters]uint8{}
		r.step(t, 1)
		for i := range r.mc.V {
			if i <= x {
				test.ExpectEquality(t, r.mc.V[i], original[i], x, i)
			} else {
				test.ExpectEquality(t, r.mc.V[i], uint8(0), x, i)
			}
		}
	}
}

func TestRestore(t *testing.T) {
	r := newRig(t, 0x6107, 0x2206, 0x0000, 0x00ee)
	r.mc.Quirks.SUBN = true
	r.step(t, 2)
	s := r.mc.Snapshot()

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.SP(), 0)

	// the quirks are not restored
	r.mc.Quirks.SUBN = false
	r.mc.Restore(s)
	test.ExpectEquality(t, r.mc.PC, uint16(0x206))
	test.ExpectEquality(t, r.mc.SP(), 1)
	test.ExpectEquality(t, r.mc.V[1], uint8(7))
	test.ExpectFailure(t, r.mc.Quirks.SUBN)

	// the restored CPU reads the same memory
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.PC, uint16(0x204))
	test.ExpectEquality(t, s.PC, uint16(0x206))
	test.ExpectEquality(t, s.SP(), 1)
}

func TestFontProtected(t *testing.T) {
	r := newRig(t, 0xa050, 0xf055)
	r.step(t, 1)
	err := r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.FontWriteError))
}

func TestWaitForKey(t *testing.T) {
	r := newRig(t, 0xf40a, 0x6101)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.WaitingForKey, true)
	test.ExpectEquality(t, r.mc.WaitRegister(), uint8(4))
	test.ExpectEquality(t, r.mc.PC, uint16(0x202))

	// no progress while no key is pressed
	r.step(t, 10)
	test.ExpectEquality(t, r.mc.WaitingForKey, true)
	test.ExpectEquality(t, r.mc.PC, uint16(0x202))
	test.ExpectEquality(t, r.mc.V[1], uint8(0))

	r.kp.Press(0xc)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.WaitingForKey, false)
	test.ExpectEquality(t, r.mc.V[4], uint8(0xc))
	test.ExpectEquality(t, r.mc.PC, uint16(0x202))

	r.step(t, 1)
	test.ExpectEquality(t, r.mc.V[1], uint8(1))

	// key already pressed
	r = newRig(t, 0xf40a)
	r.kp.Press(0x3)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.WaitingForKey, false)
	test.ExpectEquality(t, r.mc.V[4], uint8(0x3))
}

func TestDraw(t *testing.T) {
	// draw digit zero at 10,0 and then draw it again
	r := newRig(t, 0x600a, 0x6100, 0xa050, 0xd015, 0xd015)
	r.step(t, 4)
	test.ExpectEquality(t, r.mc.FrameReady, true)
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(0))

	g := memory.Glyph(0)
	for row := 0; row < memory.GlyphSize; row++ {
		for bit := 0; bit < 8; bit++ {
			expected := g[row]&(0x80>>bit) != 0
			test.ExpectEquality(t, r.dsp.Pixel(10+bit, row), expected, "%d,%d", 10+bit, row)
		}
	}

	r.mc.FrameReady = false
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.FrameReady, true)
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
	test.ExpectEquality(t, r.dsp.Frame().Count(), 0)
}

func TestDrawWrap(t *testing.T) {
	// origin is taken modulo the display size and rows wrap vertically
	r := newRig(t, 0x6044, 0x613f, 0xa050, 0xd012)
	r.step(t, 4)

	// x = 0x44 % 64 = 4 and y = 0x3f % 32 = 31
	test.ExpectEquality(t, r.dsp.Pixel(4, 31), true)
	test.ExpectEquality(t, r.dsp.Pixel(7, 31), true)
	test.ExpectEquality(t, r.dsp.Pixel(8, 31), false)
	test.ExpectEquality(t, r.dsp.Pixel(4, 0), true)
	test.ExpectEquality(t, r.dsp.Pixel(5, 0), false)
	test.ExpectEquality(t, r.dsp.Pixel(7, 0), true)
}

func TestDrawFlagOnce(t *testing.T) {
	// the second sprite collides in its first row but not in its second. the
	// collision is not lost
	r := newRig(t, 0xa050, 0xd011, 0xd012)
	r.step(t, 3)
	test.ExpectEquality(t, r.mc.V[cpu.VF], uint8(1))
	test.ExpectEquality(t, r.dsp.Pixel(0, 0), false)
	test.ExpectEquality(t, r.dsp.Pixel(0, 1), true)
}

func TestClearScreen(t *testing.T) {
	r := newRig(t, 0xa050, 0xd005, 0x00e0)
	r.step(t, 2)
	test.ExpectInequality(t, r.dsp.Frame().Count(), 0)
	r.mc.FrameReady = false
	r.step(t, 1)
	test.ExpectEquality(t, r.dsp.Frame().Count(), 0)
	test.ExpectEquality(t, r.mc.FrameReady, true)
}

func TestReset(t *testing.T) {
	r := newRig(t, 0x6105, 0x2200)
	r.step(t, 2)
	r.mc.Reset()
	test.ExpectEquality(t, r.mc.PC, uint16(memory.ProgramOrigin))
	test.ExpectEquality(t, r.mc.V[1], uint8(0))
	test.ExpectEquality(t, r.mc.SP(), 0)
	test.ExpectEquality(t, r.mc.InstructionCount, uint64(0))
}

func TestString(t *testing.T) {
	r := newRig(t, 0x6a42)
	r.step(t, 1)
	test.ExpectEquality(t, r.mc.String(),
		"PC=202 I=000 SP=0 V0=00 V1=00 V2=00 V3=00 V4=00 V5=00 V6=00 V7=00 V8=00 V9=00 VA=42 VB=00 VC=00 VD=00 VE=00 VF=00")
	test.ExpectEquality(t, r.mc.LastResult.String(), "200 6A42 LD VA, $42")
}
