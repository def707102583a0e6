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

package terminal

import (
	"io"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// HoldPolls is the number of times a key is reported by Poll() after the key
// has been pressed.
const HoldPolls = 25

// HoldDuration is how long a key is reported as pressed after it has been
// typed. The terminal sends no release event so a key held down by the user is
// seen as a stream of presses, once per autorepeat.
const HoldDuration = 200 * time.Millisecond

// control characters that end the input loop.
const (
	ctrlC  = 0x03
	escape = 0x1b
)

// Keypad maps terminal input to the CHIP-8 keypad. It is safe to Feed() the
// keypad in one goroutine and to Poll() it in another.
type Keypad struct {
	crit sync.Mutex
	key  uint8

	// the key is released after HoldPolls calls to Poll() or after the
	// expiry time, whichever comes first
	hold   int
	expiry time.Time

	now func() time.Time
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{
		now: time.Now,
	}
}

// held returns true if the most recent key has not yet been released. must be
// called from inside the critical section.
func (kp *Keypad) held() bool {
	return kp.hold > 0 && kp.now().Before(kp.expiry)
}

// MapKey returns the CHIP-8 key for the character.
func MapKey(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 0xa, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 0xa, true
	}
	return 0, false
}

// Feed the keypad with a byte of terminal input. Returns true if the byte is
// a request to quit.
func (kp *Keypad) Feed(c byte) bool {
	if c == ctrlC || c == escape {
		return true
	}

	k, ok := MapKey(c)
	if !ok {
		return false
	}

	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.key = k
	kp.hold = HoldPolls
	kp.expiry = kp.now().Add(HoldDuration)

	return false
}

// Poll implements the keypad.Keypad interface.
func (kp *Keypad) Poll() (uint8, bool) {
	kp.crit.Lock()
	defer kp.crit.Unlock()

	if !kp.held() {
		return 0, false
	}
	kp.hold--
	return kp.key, true
}

// IsPressed implements the keypad.KeyTester interface. Unlike Poll() it does
// not count towards the HoldPolls limit but the key is still released once
// HoldDuration has passed.
func (kp *Keypad) IsPressed(key uint8) bool {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	return kp.held() && kp.key == key
}

// Service reads from the input until a quit request is read or the input is
// exhausted. The quit channel is closed when Service() returns.
//
// A Terminal in raw mode returns from Read() with no data after a short
// timeout. Service() continues reading until the done channel is closed.
func (kp *Keypad) Service(input io.Reader, quit chan<- bool, done <-chan bool) {
	defer close(quit)

	b := make([]byte, 16)
	for {
		select {
		case <-done:
			return
		default:
		}

		n, err := input.Read(b)
		for i := 0; i < n; i++ {
			if kp.Feed(b[i]) {
				return
			}
		}

		if err != nil {
			return
		}
	}
}

// make sure Keypad satisfies both keypad interfaces.
var _ keypad.Keypad = (*Keypad)(nil)
var _ keypad.KeyTester = (*Keypad)(nil)
