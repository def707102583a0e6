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

// Package timers implements the delay and sound timers of the CHIP-8.
//
// Both timers are eight bit counters that decrease by one every time Tick()
// is called, until they reach zero. Tick() is called by the host at a fixed
// rate (conventionally 60Hz) that is unrelated to the rate at which the CPU
// executes instructions.
//
// The sound timer is a value only. Nothing is played while it is non-zero
// but Sounding() can be used by a host to find out if a tone should be heard.
package timers

import "fmt"

// Timers implements the two CHIP-8 countdown timers.
type Timers struct {
	Delay uint8
	Sound uint8

	// the number of times Tick() has been called
	ticks uint64
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

// Snapshot creates a copy of the timers in their current state.
func (tmr *Timers) Snapshot() *Timers {
	n := *tmr
	return &n
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	*tmr = Timers{}
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.Delay, tmr.Sound)
}

// Tick decreases both timers by one. Timers that are already zero are
// unaffected.
func (tmr *Timers) Tick() {
	tmr.ticks++
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// Ticks returns the number of times Tick() has been called.
func (tmr *Timers) Ticks() uint64 {
	return tmr.ticks
}

// Sounding returns true if the sound timer is active.
func (tmr *Timers) Sounding() bool {
	return tmr.Sound > 0
}
