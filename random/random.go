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

package random

import (
	"math/rand"
	"time"
)

// Random is a seeded random number generator.
type Random struct {
	seed int64
	rng  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero will cause the generator to be seeded from the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := &Random{seed: seed}
	rnd.Reset()
	return rnd
}

// Seed returns the seed used by the generator. If the generator was created
// with a zero seed then the actual seed that was used is returned.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Reset the generator so that it will produce the same sequence of numbers
// from the beginning.
func (rnd *Random) Reset() {
	rnd.rng = rand.New(rand.NewSource(rnd.seed))
}

// Intn returns a random number in the range [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rng.Intn(n)
}

// Byte returns a random byte value.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rng.Intn(256))
}

// Sequence returns values from a list in strict order. When the end of the
// list is reached it starts again from the beginning.
type Sequence struct {
	values []uint8
	idx    int
}

// NewSequence is the preferred method of initialisation for the Sequence type.
func NewSequence(values ...uint8) *Sequence {
	return &Sequence{values: values}
}

// Byte returns the next value in the sequence. An empty sequence always
// returns zero.
func (seq *Sequence) Byte() uint8 {
	if len(seq.values) == 0 {
		return 0
	}
	v := seq.values[seq.idx]
	seq.idx = (seq.idx + 1) % len(seq.values)
	return v
}
