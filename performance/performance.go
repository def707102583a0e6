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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware"
)

// PerformanceError is the error pattern for errors returned by Check().
const PerformanceError = "performance: %v"

// sentinal error returned by the continueCheck function in Check().
var timedOut = errors.New("performance timed out")

// time allowed for the emulation to settle before measurement begins.
var leadtime = 2 * time.Second

// Check the performance of the emulator by running the program that has been
// loaded into the Chip8 for the duration.
//
// By default the emulation runs at the clock speed given in the preferences.
// If uncapped is true then the emulation runs as quickly as possible. The
// program must not halt before the duration has elapsed.
func Check(output io.Writer, profile Profile, vm *hardware.Chip8, uncapped bool, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf(PerformanceError, fmt.Sprintf("invalid duration (%v)", duration))
	}

	// the results of the performance check
	var startCount uint64
	var endCount uint64

	runner := func() error {
		// the leadtime puts false on the timerChan. the conclusion of the
		// measurement period puts true on the timerChan. the channel is
		// buffered so that the timers never block if the emulation has
		// already ended
		timerChan := make(chan bool, 2)
		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(duration, func() {
				timerChan <- true
			})
		})

		// the uncapped run function calls continueCheck() after every
		// instruction so the relatively expensive channel check is filtered
		brake := 1
		if uncapped {
			brake = hardware.PerformanceBrake
		}
		performanceBrake := 0

		continueCheck := func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < brake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					endCount = vm.CPU.InstructionCount
					return govern.Ending, timedOut
				}
				startCount = vm.CPU.InstructionCount
			default:
			}

			return govern.Running, nil
		}

		var err error
		if uncapped {
			err = vm.RunUncapped(continueCheck)
		} else {
			err = vm.Run(continueCheck)
		}

		if err == nil {
			return curated.Errorf(PerformanceError, "program halted during performance check")
		}
		return err
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	ips, accuracy := CalcIPS(vm.Prefs.ClockSpeed.Get().(int), endCount-startCount, duration.Seconds())
	fmt.Fprintf(output, "%.2f ips (%d instructions in %.2f seconds) %.1f%%\n",
		ips, endCount-startCount, duration.Seconds(), accuracy)

	return nil
}
