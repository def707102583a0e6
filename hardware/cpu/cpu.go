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
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// Sentinal error patterns returned by the cpu package.
const (
	StackUnderflow = "cpu: return with empty stack"
	ExecutionError = "cpu: %v (pc %#04x word %04x)"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// VF is the index of the register that is also used as the carry, borrow and
// collision flag.
const VF = 0xf

// Random is the source of random numbers for the RND instruction.
type Random interface {
	Byte() uint8
}

// Quirks selects between alternative behaviours of some instructions.
type Quirks struct {
	// the 8xy7 instruction normally only writes the result when there is no
	// borrow. when SUBN is true the result is always written and VF is set
	// to 1 if there is no borrow
	SUBN bool
}

// CPU implements the CHIP-8 interpreter.
type CPU struct {
	V  [NumRegisters]uint8
	I  uint16
	PC uint16

	// return addresses. the length of the slice is the stack pointer
	Stack []uint16

	Quirks Quirks

	mem *memory.Memory
	dsp *display.Display
	tmr *timers.Timers
	kp  keypad.Keypad
	rnd Random

	// the CPU is waiting for a key press. the key will be stored in
	// register waitRegister
	WaitingForKey bool
	waitRegister  uint8

	// FrameReady is set by instructions that change the display. it is
	// never cleared by the CPU
	FrameReady bool

	// Halted is set when the halt word is encountered or when an instruction
	// causes an error
	Halted bool

	// the most recent instruction to be fetched
	LastResult Result

	// the number of instructions that have completed
	InstructionCount uint64
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// keypad and random arguments can be nil. A nil keypad is the same as a
// keypad with no keys pressed and a nil random source always returns zero.
func NewCPU(mem *memory.Memory, dsp *display.Display, tmr *timers.Timers, kp keypad.Keypad, rnd Random) *CPU {
	mc := &CPU{
		mem: mem,
		dsp: dsp,
		tmr: tmr,
	}
	mc.PlumbKeypad(kp)
	mc.PlumbRandom(rnd)
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy refers to
// the same memory, display, timers and keypad.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.Stack = make([]uint16, len(mc.Stack))
	copy(n.Stack, mc.Stack)
	return &n
}

// Restore the state of the CPU from a snapshot. The memory, display, timers,
// keypad and random source attached to the CPU are unchanged, as are the
// quirks.
func (mc *CPU) Restore(s *CPU) {
	n := s.Snapshot()
	n.mem = mc.mem
	n.dsp = mc.dsp
	n.tmr = mc.tmr
	n.kp = mc.kp
	n.rnd = mc.rnd
	n.Quirks = mc.Quirks
	*mc = *n
}

// PlumbKeypad attaches a new keypad to the CPU.
func (mc *CPU) PlumbKeypad(kp keypad.Keypad) {
	if kp == nil {
		kp = keypad.Nil
	}
	mc.kp = kp
}

type zeroRandom struct{}

func (zeroRandom) Byte() uint8 {
	return 0
}

// PlumbRandom attaches a new source of random numbers to the CPU.
func (mc *CPU) PlumbRandom(rnd Random) {
	if rnd == nil {
		rnd = zeroRandom{}
	}
	mc.rnd = rnd
}

// Reset the registers and the stack. The program counter is set to the start
// of the program area.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = memory.ProgramOrigin
	mc.Stack = mc.Stack[:0]
	mc.WaitingForKey = false
	mc.waitRegister = 0
	mc.FrameReady = false
	mc.Halted = false
	mc.LastResult.Reset()
	mc.InstructionCount = 0
}

// SP returns the depth of the call stack.
func (mc *CPU) SP() int {
	return len(mc.Stack)
}

// WaitRegister returns the register that will receive the key when the CPU
// is waiting for a key press.
func (mc *CPU) WaitRegister() uint8 {
	return mc.waitRegister
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%03x I=%03x SP=%d", mc.PC, mc.I, len(mc.Stack)))
	for i, v := range mc.V {
		s.WriteString(fmt.Sprintf(" V%X=%02x", i, v))
	}
	return s.String()
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// program counter.
//
// If the CPU is waiting for a key press then the keypad is polled and no
// instruction is executed. If the CPU is halted then nothing happens.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted {
		return nil
	}

	if mc.WaitingForKey {
		if key, ok := mc.kp.Poll(); ok {
			mc.V[mc.waitRegister] = key
			mc.WaitingForKey = false
		}
		return nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC

	word, err := mc.mem.ReadWord(mc.PC)
	if err != nil {
		return mc.fail(err)
	}
	mc.LastResult.Word = word
	mc.PC += 2

	if word == 0x0000 {
		mc.LastResult.Halt = true
		mc.LastResult.Final = true
		mc.Halted = true
		return nil
	}

	op, err := instructions.Decode(word)
	if err != nil {
		return mc.fail(err)
	}
	mc.LastResult.Opcode = op
	mc.LastResult.Decoded = true

	if err := mc.execute(op); err != nil {
		return mc.fail(err)
	}

	mc.LastResult.Final = true
	mc.InstructionCount++

	return nil
}

func (mc *CPU) fail(err error) error {
	mc.Halted = true
	return curated.Errorf(ExecutionError, err, mc.LastResult.Address, mc.LastResult.Word)
}
