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

package display

import (
	"strings"
)

// Dimensions of the framebuffer.
const (
	Width  = 64
	Height = 32
)

// Frame is a snapshot of the framebuffer. Indexed by row and then by column.
type Frame [Height][Width]bool

// Pixel returns the state of the pixel at the coordinates. Coordinates are
// wrapped.
func (f Frame) Pixel(x, y int) bool {
	return f[wrap(y, Height)][wrap(x, Width)]
}

// Count returns the number of pixels that are set.
func (f Frame) Count() int {
	n := 0
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				n++
			}
		}
	}
	return n
}

// String renders the frame as lines of text. A set pixel is a '#' and an
// unset pixel is a '.'
func (f Frame) String() string {
	s := strings.Builder{}
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Display is the CHIP-8 framebuffer.
type Display struct {
	pixels Frame
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The framebuffer begins cleared.
func NewDisplay() *Display {
	return &Display{}
}

// Snapshot creates a copy of the display in its current state.
func (dsp *Display) Snapshot() *Display {
	n := *dsp
	return &n
}

// Clear unsets every pixel.
func (dsp *Display) Clear() {
	dsp.pixels = Frame{}
}

// BlitRow XORs the bits of row onto the framebuffer, starting at column x of
// row y. The most significant bit is placed at column x, the least significant
// bit is placed at column x+7. Columns wrap around modulo Width. The row y is
// expected to have been wrapped by the caller but for safety it is wrapped
// modulo Height too.
//
// Bits that are zero do not alter the framebuffer. Returns true if any pixel
// was turned off.
func (dsp *Display) BlitRow(x, y int, row uint8) bool {
	var collision bool

	line := &dsp.pixels[wrap(y, Height)]
	for i := 0; i < 8; i++ {
		if row&(0x80>>i) == 0 {
			continue
		}

		p := &line[wrap(x+i, Width)]
		if *p {
			collision = true
		}
		*p = !*p
	}

	return collision
}

// Frame returns a copy of the framebuffer.
func (dsp *Display) Frame() Frame {
	return dsp.pixels
}

// Pixel returns the state of a single pixel. Coordinates are wrapped.
func (dsp *Display) Pixel(x, y int) bool {
	return dsp.pixels.Pixel(x, y)
}

func (dsp *Display) String() string {
	return dsp.pixels.String()
}

// wrap value into the range 0 to n-1. works for negative values.
func wrap(v int, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
