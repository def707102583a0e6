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

package hardware

import (
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/random"
)

// FrameRenderer implementations are given a copy of the display whenever it
// changes.
type FrameRenderer interface {
	NewFrame(display.Frame) error
}

// Chip8 struct is the main container for the emulated components of the
// CHIP-8.
type Chip8 struct {
	Prefs *preferences.Preferences

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Timers  *timers.Timers

	renderers []FrameRenderer

	noLogging bool
}

// NewChip8 creates a new Chip8 and everything associated with the hardware.
// A nil value for prefs means that the default preferences are used. A nil
// value for rnd means that a new random source is created with the seed
// given in the preferences.
//
// The keypad can be nil, in which case no key is ever pressed.
func NewChip8(p *preferences.Preferences, kp keypad.Keypad, rnd cpu.Random) (*Chip8, error) {
	if p == nil {
		p = preferences.DefaultPreferences()
	}

	if rnd == nil {
		rnd = random.NewRandom(int64(p.RandomSeed.Get().(int)))
	}

	vm := &Chip8{
		Prefs:   p,
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		Timers:  timers.NewTimers(),
	}

	vm.CPU = cpu.NewCPU(vm.Mem, vm.Display, vm.Timers, kp, rnd)

	vm.CPU.Quirks.SUBN = p.SUBNQuirk.Get().(bool)
	p.SUBNQuirk.SetHookPost(func(v prefs.Value) error {
		vm.CPU.Quirks.SUBN = v.(bool)
		return nil
	})

	return vm, nil
}

// AllowLogging implements the logger.Permission interface.
func (vm *Chip8) AllowLogging() bool {
	return !vm.noLogging
}

// SetLogging turns logging by the emulation on or off.
func (vm *Chip8) SetLogging(allow bool) {
	vm.noLogging = !allow
}

// AddFrameRenderer attaches a FrameRenderer. The renderer is immediately sent
// the current state of the display.
func (vm *Chip8) AddFrameRenderer(r FrameRenderer) error {
	vm.renderers = append(vm.renderers, r)
	return r.NewFrame(vm.Display.Frame())
}

// PlumbKeypad attaches a new keypad to the emulation.
func (vm *Chip8) PlumbKeypad(kp keypad.Keypad) {
	vm.CPU.PlumbKeypad(kp)
}

// Load a program into memory. Everything else is reset.
func (vm *Chip8) Load(program []uint8) error {
	if err := vm.Mem.Load(program); err != nil {
		logger.Log(vm, "chip8", err.Error())
		return err
	}

	vm.CPU.Reset()
	vm.Timers.Reset()
	vm.Display.Clear()

	logger.Logf(vm, "chip8", "loaded program (%d bytes)", len(program))

	return vm.renderFrame()
}

// Reset the emulation without reloading the program. The program area of
// memory is not restored so self-modifying programs should be reloaded with
// Load() instead.
func (vm *Chip8) Reset() error {
	vm.CPU.Reset()
	vm.Timers.Reset()
	vm.Display.Clear()
	return vm.renderFrame()
}

// State returns the current state of the emulation. One of Running,
// WaitingForKey or Halted.
func (vm *Chip8) State() govern.State {
	switch {
	case vm.CPU.Halted:
		return govern.Halted
	case vm.CPU.WaitingForKey:
		return govern.WaitingForKey
	}
	return govern.Running
}

func (vm *Chip8) renderFrame() error {
	if len(vm.renderers) == 0 {
		return nil
	}
	f := vm.Display.Frame()
	for _, r := range vm.renderers {
		if err := r.NewFrame(f); err != nil {
			return err
		}
	}
	return nil
}

// Step the emulation by one instruction. Returns false if the emulation has
// halted, either because the program has ended or because of an error.
//
// If the CPU is waiting for a key press then the keypad is polled once and no
// instruction is executed. Step() will still return true.
func (vm *Chip8) Step() (bool, error) {
	if vm.CPU.Halted {
		return false, nil
	}

	waiting := vm.CPU.WaitingForKey

	if err := vm.CPU.ExecuteInstruction(); err != nil {
		logger.Log(vm, "chip8", err.Error())
		return false, err
	}

	if vm.CPU.WaitingForKey != waiting {
		if vm.CPU.WaitingForKey {
			logger.Logf(vm, "chip8", "waiting for key (V%X)", vm.CPU.WaitRegister())
		} else {
			logger.Logf(vm, "chip8", "key %X pressed", vm.CPU.V[vm.CPU.WaitRegister()])
		}
	}

	if vm.CPU.FrameReady {
		vm.CPU.FrameReady = false
		if err := vm.renderFrame(); err != nil {
			return false, err
		}
	}

	if vm.CPU.Halted {
		logger.Logf(vm, "chip8", "halted at %#03x after %d instructions",
			vm.CPU.LastResult.Address, vm.CPU.InstructionCount)
		return false, nil
	}

	return true, nil
}

// TickTimers decreases the delay and sound timers by one.
func (vm *Chip8) TickTimers() {
	vm.Timers.Tick()
}
