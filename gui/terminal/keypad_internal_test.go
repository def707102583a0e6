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
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/test"
)

func TestHoldExpiresWithoutPoll(t *testing.T) {
	clock := time.Unix(0, 0)

	kp := NewKeypad()
	kp.now = func() time.Time { return clock }

	kp.Feed('5')

	// any number of queries does not release the key while the clock is
	// stopped
	for i := 0; i < 100000; i++ {
		if !kp.IsPressed(5) {
			t.Fatalf("key released after %d queries", i)
		}
	}

	clock = clock.Add(HoldDuration - time.Millisecond)
	test.ExpectSuccess(t, kp.IsPressed(5))

	clock = clock.Add(time.Millisecond)
	test.ExpectFailure(t, kp.IsPressed(5))
	_, ok := kp.Poll()
	test.ExpectFailure(t, ok)

	// a new key press restarts the hold period
	kp.Feed('5')
	test.ExpectSuccess(t, kp.IsPressed(5))
	k, ok := kp.Poll()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(5))
}

func TestHoldExpiresWithPoll(t *testing.T) {
	clock := time.Unix(0, 0)

	kp := NewKeypad()
	kp.now = func() time.Time { return clock }

	kp.Feed('a')
	for i := 0; i < HoldPolls; i++ {
		_, ok := kp.Poll()
		test.DemandSuccess(t, ok)
	}
	_, ok := kp.Poll()
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, kp.IsPressed(0xa))
}
