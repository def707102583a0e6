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

package hardware_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

// frames records every frame sent to it
type frames struct {
	frames []display.Frame
}

func (f *frames) NewFrame(frame display.Frame) error {
	f.frames = append(f.frames, frame)
	return nil
}

func program(words ...uint16) []uint8 {
	p := make([]uint8, 0, len(words)*2)
	for _, w := range words {
		p = append(p, uint8(w>>8), uint8(w))
	}
	return p
}

func TestEndToEnd(t *testing.T) {
	vm, err := hardware.NewChip8(nil, nil, random.NewSequence())
	test.DemandSuccess(t, err)

	var f frames
	test.DemandSuccess(t, vm.AddFrameRenderer(&f))

	// clear screen; V0 = 10; I = font glyph zero; draw five rows at (V0,V0); halt
	test.DemandSuccess(t, vm.Load([]uint8{0x00, 0xe0, 0x60, 0x0a, 0xa0, 0x50, 0xd0, 0x05, 0x00, 0x00}))

	var steps int
	for {
		ok, err := vm.Step()
		test.DemandSuccess(t, err)
		if !ok {
			break
		}
		steps++
		test.DemandSuccess(t, steps < 10)
	}

	test.ExpectEquality(t, steps, 4)
	test.ExpectEquality(t, vm.State(), govern.Halted)

	// the draw instruction uses V0 for both coordinates so the glyph is at
	// (10,10)
	frame := vm.Display.Frame()
	g := memory.Glyph(0)
	var count int
	for row := 0; row < memory.GlyphSize; row++ {
		for bit := 0; bit < 8; bit++ {
			expected := g[row]&(0x80>>bit) != 0
			test.ExpectEquality(t, frame.Pixel(10+bit, 10+row), expected)
			if expected {
				count++
			}
		}
	}
	test.ExpectEquality(t, frame.Count(), count)

	// the renderer received a frame when it was attached, when the program
	// was loaded, after the clear screen and after the draw
	test.DemandEquality(t, len(f.frames), 4)
	test.ExpectEquality(t, f.frames[3], frame)
	test.ExpectEquality(t, f.frames[2].Count(), 0)

	// stepping a halted machine does nothing
	ok, err := vm.Step()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
}

func TestGlyphAtColumn(t *testing.T) {
	vm, err := hardware.NewChip8(nil, nil, nil)
	test.DemandSuccess(t, err)

	// as above but with the row taken from V1, which is zero
	test.DemandSuccess(t, vm.Load(program(0x00e0, 0x600a, 0xa050, 0xd015, 0x0000)))
	for ok := true; ok; {
		ok, err = vm.Step()
		test.DemandSuccess(t, err)
	}

	test.ExpectEquality(t, vm.Display.String(), strings.Join([]string{
		"..........####..................................................",
		"..........#..#..................................................",
		"..........#..#..................................................",
		"..........#..#..................................................",
		"..........####..................................................",
	}, "\n")+"\n"+strings.Repeat(strings.Repeat(".", display.Width)+"\n", display.Height-5))
}

func TestErrors(t *testing.T) {
	vm, err := hardware.NewChip8(nil, nil, nil)
	test.DemandSuccess(t, err)

	err = vm.Load(make([]uint8, memory.MaxProgramSize+1))
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLarge))

	test.DemandSuccess(t, vm.Load(program(0x00ee)))
	ok, err := vm.Step()
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, curated.Is(err, cpu.ExecutionError))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))
	test.ExpectEquality(t, vm.State(), govern.Halted)

	// reloading clears the error condition
	test.DemandSuccess(t, vm.Load(program(0x6001)))
	test.ExpectEquality(t, vm.State(), govern.Running)
}

func TestWaitForKey(t *testing.T) {
	kp := keypad.NewState()
	vm, err := hardware.NewChip8(nil, kp, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, vm.Load(program(0xf30a, 0x0000)))

	ok, err := vm.Step()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, vm.State(), govern.WaitingForKey)

	for i := 0; i < 5; i++ {
		ok, err = vm.Step()
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, ok)
	}
	test.ExpectEquality(t, vm.State(), govern.WaitingForKey)

	// timers still tick while waiting
	vm.Timers.Delay = 2
	vm.TickTimers()
	test.ExpectEquality(t, vm.Timers.Delay, uint8(1))

	kp.Press(0x9)
	_, err = vm.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, vm.State(), govern.Running)
	test.ExpectEquality(t, vm.CPU.V[3], uint8(0x9))

	ok, err = vm.Step()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ok)
}

func TestTimerSaturation(t *testing.T) {
	vm, err := hardware.NewChip8(nil, nil, nil)
	test.DemandSuccess(t, err)

	vm.TickTimers()
	test.ExpectEquality(t, vm.Timers.Delay, uint8(0))
	test.ExpectEquality(t, vm.Timers.Sound, uint8(0))
}

func TestQuirkPreference(t *testing.T) {
	prefs := preferences.DefaultPreferences()
	vm, err := hardware.NewChip8(prefs, nil, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, vm.CPU.Quirks.SUBN, false)

	test.DemandSuccess(t, prefs.SUBNQuirk.Set(true))
	test.ExpectEquality(t, vm.CPU.Quirks.SUBN, true)

	// quirk in effect
	test.DemandSuccess(t, vm.Load(program(0x6005, 0x6103, 0x8017)))
	for i := 0; i < 3; i++ {
		_, err := vm.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, vm.CPU.V[0], uint8(254))
}

func TestLogging(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	vm, err := hardware.NewChip8(nil, nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, vm.Load(program(0x0000)))
	_, _ = vm.Step()

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "chip8: loaded program (2 bytes)\nchip8: halted at 0x200 after 0 instructions\n")

	// no more logging once it is disallowed
	logger.Clear()
	vm.SetLogging(false)
	test.DemandSuccess(t, vm.Load(program(0x0000)))
	w.Reset()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestRunUncapped(t *testing.T) {
	vm, err := hardware.NewChip8(nil, nil, nil)
	test.DemandSuccess(t, err)

	// 200 LD VA, $0A
	// 202 LD DT, VA
	// 204 LD VB, DT
	// 206 SE VB, $00
	// 208 JP $204
	// 20A halt
	test.DemandSuccess(t, vm.Load(program(0x6a0a, 0xfa15, 0xfb07, 0x3b00, 0x1204, 0x0000)))
	test.DemandSuccess(t, vm.RunUncapped(nil))
	test.ExpectEquality(t, vm.State(), govern.Halted)
	test.ExpectEquality(t, vm.Timers.Ticks(), uint64(10))
	test.ExpectEquality(t, vm.Timers.Delay, uint8(0))
}

func TestRunEnding(t *testing.T) {
	vm, err := hardware.NewChip8(nil, nil, nil)
	test.DemandSuccess(t, err)

	// infinite loop
	test.DemandSuccess(t, vm.Load(program(0x1200)))

	var count int
	err = vm.RunUncapped(func() (govern.State, error) {
		count++
		if count >= 1000 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, vm.CPU.InstructionCount, uint64(1000))

	// the real time run function ends on request too
	count = 0
	err = vm.Run(func() (govern.State, error) {
		count++
		if count >= 3 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)

	// unsupported states are an error
	err = vm.Run(func() (govern.State, error) {
		return govern.Halted, nil
	})
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedState))
}

func TestRunHalts(t *testing.T) {
	p := preferences.DefaultPreferences()
	test.DemandSuccess(t, p.ClockSpeed.Set(10000))

	vm, err := hardware.NewChip8(p, nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, vm.Load(program(0x6001, 0x6102, 0x0000)))
	test.DemandSuccess(t, vm.Run(nil))
	test.ExpectEquality(t, vm.State(), govern.Halted)
	test.ExpectEquality(t, vm.CPU.V[1], uint8(2))
}

func TestSnapshotAndPlumb(t *testing.T) {
	vm, err := hardware.NewChip8(nil, nil, nil)
	test.DemandSuccess(t, err)
	vm.SetLogging(false)

	var f frames
	test.DemandSuccess(t, vm.AddFrameRenderer(&f))

	// LD V0, $05; LD DT, V0; LD I, $050; DRW V0, V0, 5; LD I, $300; LD [I], V0; halt
	test.DemandSuccess(t, vm.Load(program(0x6005, 0xf015, 0xa050, 0xd005, 0xa300, 0xf055, 0x0000)))

	_, err = vm.Step()
	test.DemandSuccess(t, err)
	state := vm.Snapshot()

	for {
		ok, err := vm.Step()
		test.DemandSuccess(t, err)
		if !ok {
			break
		}
	}
	test.ExpectSuccess(t, vm.CPU.Halted)
	test.ExpectSuccess(t, vm.Display.Pixel(5, 5))
	test.ExpectEquality(t, vm.Timers.Delay, uint8(5))
	v, err := vm.Mem.Read(0x300)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(5))

	n := len(f.frames)
	test.DemandSuccess(t, vm.Plumb(state))
	test.ExpectEquality(t, len(f.frames), n+1)
	test.ExpectEquality(t, f.frames[n], display.Frame{})

	test.ExpectFailure(t, vm.CPU.Halted)
	test.ExpectEquality(t, vm.CPU.PC, uint16(0x202))
	test.ExpectEquality(t, vm.CPU.V[0], uint8(5))
	test.ExpectEquality(t, vm.Timers.Delay, uint8(0))
	test.ExpectFailure(t, vm.Display.Pixel(5, 5))
	v, err = vm.Mem.Read(0x300)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))

	// the emulation does not alter the stored state
	_, err = vm.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, state.CPU.PC, uint16(0x202))
	test.ExpectEquality(t, state.Timers.Delay, uint8(0))
}
