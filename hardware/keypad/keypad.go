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

// Package keypad defines how the CHIP-8 emulation receives input from the
// sixteen key hexadecimal keypad.
//
// The emulation only requires an implementation of the Keypad interface.
// Where the key information comes from is a matter for the host. The State
// type is a ready made implementation that hosts can feed with key presses
// and releases from any goroutine.
package keypad

import (
	"fmt"
	"sync/atomic"
)

// NumKeys is the number of keys on the keypad. Keys are numbered 0x0 to 0xf.
const NumKeys = 16

// Keypad implementations report the key that is currently pressed, if any.
// Poll() must not block.
type Keypad interface {
	Poll() (key uint8, ok bool)
}

// KeyTester is an optional extension to the Keypad interface. Keypads that can
// report more than one key pressed at once should implement it.
type KeyTester interface {
	IsPressed(key uint8) bool
}

// IsPressed returns true if the key is pressed. The KeyTester interface is
// used if the keypad implements it.
func IsPressed(kp Keypad, key uint8) bool {
	if kp == nil {
		return false
	}
	if kt, ok := kp.(KeyTester); ok {
		return kt.IsPressed(key)
	}
	k, ok := kp.Poll()
	return ok && k == key
}

type nilKeypad struct{}

func (nilKeypad) Poll() (uint8, bool) {
	return 0, false
}

// Nil is a keypad on which no key is ever pressed.
var Nil Keypad = nilKeypad{}

// State records which keys are currently pressed. It is safe to use from more
// than one goroutine.
type State struct {
	// bit n is set if key n is pressed
	pressed atomic.Uint32
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	return &State{}
}

func (st *State) String() string {
	return fmt.Sprintf("%016b", st.pressed.Load())
}

// Press the key. Values outside the range of valid keys are ignored.
func (st *State) Press(key uint8) {
	if key >= NumKeys {
		return
	}
	for {
		o := st.pressed.Load()
		if st.pressed.CompareAndSwap(o, o|1<<key) {
			return
		}
	}
}

// Release the key. Values outside the range of valid keys are ignored.
func (st *State) Release(key uint8) {
	if key >= NumKeys {
		return
	}
	for {
		o := st.pressed.Load()
		if st.pressed.CompareAndSwap(o, o&^(1<<key)) {
			return
		}
	}
}

// ReleaseAll keys.
func (st *State) ReleaseAll() {
	st.pressed.Store(0)
}

// Poll implements the Keypad interface. If more than one key is pressed then
// the lowest numbered key is returned.
func (st *State) Poll() (uint8, bool) {
	p := st.pressed.Load()
	if p == 0 {
		return 0, false
	}
	for k := uint8(0); k < NumKeys; k++ {
		if p&(1<<k) != 0 {
			return k, true
		}
	}
	return 0, false
}

// IsPressed implements the KeyTester interface.
func (st *State) IsPressed(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	return st.pressed.Load()&(1<<key) != 0
}
