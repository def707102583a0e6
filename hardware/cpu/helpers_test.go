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
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

type rig struct {
	mc  *cpu.CPU
	mem *memory.Memory
	dsp *display.Display
	tmr *timers.Timers
	kp  *keypad.State
	rnd *random.Sequence
}

// newRig creates a CPU with the instruction words loaded at the start of the
// program area
func newRig(t *testing.T, words ...uint16) *rig {
	t.Helper()

	r := &rig{
		mem: memory.NewMemory(),
		dsp: display.NewDisplay(),
		tmr: timers.NewTimers(),
		kp:  keypad.NewState(),
		rnd: random.NewSequence(0xff),
	}

	program := make([]uint8, 0, len(words)*2)
	for _, w := range words {
		program = append(program, uint8(w>>8), uint8(w))
	}
	test.DemandSuccess(t, r.mem.Load(program))

	r.mc = cpu.NewCPU(r.mem, r.dsp, r.tmr, r.kp, r.rnd)
	return r
}

// step executes n instructions and demands that none of them fail
func (r *rig) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, r.mc.ExecuteInstruction())
	}
}
