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
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// State stores the CHIP-8 sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// The keypad and the random source are not part of the snapshot.
type State struct {
	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Timers  *timers.Timers
}

// Snapshot the state of the CHIP-8 sub-systems.
func (vm *Chip8) Snapshot() *State {
	return &State{
		CPU:     vm.CPU.Snapshot(),
		Mem:     vm.Mem.Snapshot(),
		Display: vm.Display.Snapshot(),
		Timers:  vm.Timers.Snapshot(),
	}
}

// Plumb a previously snapshotted state into the emulation. The state can be
// plumbed more than once. Attached frame renderers are sent the restored
// display.
func (vm *Chip8) Plumb(state *State) error {
	if state == nil {
		panic("chip8: cannot plumb in a nil state")
	}

	// copy the sub-systems rather than adopting them. the emulation must not
	// change what is stored in the State
	*vm.Mem = *state.Mem.Snapshot()
	*vm.Display = *state.Display.Snapshot()
	*vm.Timers = *state.Timers.Snapshot()
	vm.CPU.Restore(state.CPU)

	return vm.renderFrame()
}
