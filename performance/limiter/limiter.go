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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		renderImage()
//	}
//
// Alternatively, a loop that must service more than one Limiter can ask each
// Limiter how many events are due with the Due() function and only sleep
// when nothing is due.
package limiter

import (
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// InvalidRate is the error pattern returned when a Limiter is given a rate
// that is less than one.
const InvalidRate = "limiter: invalid rate (%d)"

// Limiter will trigger a fixed number of times per second.
type Limiter struct {
	crit sync.Mutex

	rate   int
	period time.Duration

	// the time the limit was last set and the number of events that have
	// been consumed since then
	origin   time.Time
	consumed int64

	// the maximum number of events that can be due at once. if the caller
	// falls further behind than this then the older events are dropped
	maxDue int64

	// replaced during testing
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	lim := &Limiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if err := lim.SetLimit(rate); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the rate at which the Limiter triggers. No events are due
// immediately after the limit has been changed.
func (lim *Limiter) SetLimit(rate int) error {
	if rate < 1 {
		return curated.Errorf(InvalidRate, rate)
	}

	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.rate = rate
	lim.period = time.Second / time.Duration(rate)
	lim.origin = lim.now()
	lim.consumed = 0

	// allow a tenth of a second of catch-up
	lim.maxDue = int64(rate / 10)
	if lim.maxDue < 1 {
		lim.maxDue = 1
	}

	return nil
}

// Rate returns the current rate of the Limiter.
func (lim *Limiter) Rate() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.rate
}

// the number of events that have elapsed but not been consumed. must be
// called with the critical section locked
func (lim *Limiter) due() int64 {
	elapsed := int64(lim.now().Sub(lim.origin) / lim.period)
	d := elapsed - lim.consumed
	if d > lim.maxDue {
		lim.consumed = elapsed - lim.maxDue
		d = lim.maxDue
	}
	return d
}

// Due returns the number of events that are due and marks them as consumed.
// Never blocks.
func (lim *Limiter) Due() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	d := lim.due()
	lim.consumed += d
	return int(d)
}

// HasWaited will return true if an event is due, in which case that one event
// is consumed. Returns false if it is still yet to happen.
func (lim *Limiter) HasWaited() bool {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	if lim.due() > 0 {
		lim.consumed++
		return true
	}
	return false
}

// Until returns the duration until the next event is due. Returns zero if an
// event is already due.
func (lim *Limiter) Until() time.Duration {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	if lim.due() > 0 {
		return 0
	}
	next := lim.origin.Add(time.Duration(lim.consumed+1) * lim.period)
	return next.Sub(lim.now())
}

// Wait will block until an event is due and then consume it.
func (lim *Limiter) Wait() {
	for !lim.HasWaited() {
		if d := lim.Until(); d > 0 {
			lim.sleep(d)
		}
	}
}
