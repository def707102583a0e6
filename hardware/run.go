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
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// While the continueCheck() function only runs at the end of a CPU instruction
// it can still be expensive to do a full continue check every time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// UnsupportedState is the error pattern returned by the run functions when
// the continueCheck() function returns a state that cannot be honoured.
const UnsupportedState = "chip8: unsupported emulation state (%s) in run function"

// Run the emulation in real time. Instructions are executed at the clock
// speed and the timers are ticked at the timer rate given in the preferences.
//
// The run continues until the program halts or until continueCheck() returns
// the Ending state. The continueCheck() function is called after every batch
// of instructions and should otherwise return Running or Paused. Neither
// instructions nor timers advance while Paused.
func (vm *Chip8) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	instructions, err := limiter.NewLimiter(vm.Prefs.ClockSpeed.Get().(int))
	if err != nil {
		return err
	}
	ticks, err := limiter.NewLimiter(vm.Prefs.TimerRate.Get().(int))
	if err != nil {
		return err
	}

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			for n := instructions.Due(); n > 0; n-- {
				ok, err := vm.Step()
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}
			for n := ticks.Due(); n > 0; n-- {
				vm.TickTimers()
			}
		case govern.Paused:
			// consume events so that there is no rush of activity when
			// the emulation resumes
			instructions.Due()
			ticks.Due()
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}

		d := instructions.Until()
		if t := ticks.Until(); t < d {
			d = t
		}
		if d > 0 {
			time.Sleep(d)
		}
	}

	return nil
}

// RunUncapped runs the emulation as quickly as possible. The timers are
// ticked in proportion to the number of instructions executed, as they would
// be at the clock speed and timer rate given in the preferences.
//
// The run continues until the program halts or until continueCheck() returns
// the Ending state. The continueCheck() function is called after every
// instruction.
func (vm *Chip8) RunUncapped(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	rate := vm.Prefs.TimerRate.Get().(int)
	if rate < 1 {
		return curated.Errorf(limiter.InvalidRate, rate)
	}

	perTick := vm.Prefs.ClockSpeed.Get().(int) / rate
	if perTick < 1 {
		perTick = 1
	}

	var count int
	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			ok, err := vm.Step()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			count++
			if count >= perTick {
				count = 0
				vm.TickTimers()
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
