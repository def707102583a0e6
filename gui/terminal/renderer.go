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
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
)

// ANSI sequences used by the renderer.
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	eraseLine   = "\x1b[K"
)

// characters used to draw the frame.
const (
	pixelOn  = "▉"
	pixelOff = " "
)

// StatusFunc returns the text to show beneath the frame. It can be nil.
type StatusFunc func() string

// Renderer draws frames to a terminal. It implements the
// hardware.FrameRenderer interface.
type Renderer struct {
	output io.Writer
	status StatusFunc

	// the screen is cleared before the first frame only. subsequent frames are
	// drawn over the top of the previous frame
	cleared bool
}

// NewRenderer is the preferred method of initialisation for the Renderer type.
func NewRenderer(output io.Writer, status StatusFunc) *Renderer {
	return &Renderer{
		output: output,
		status: status,
	}
}

// NewFrame implements the hardware.FrameRenderer interface.
func (rnd *Renderer) NewFrame(frame display.Frame) error {
	s := strings.Builder{}

	if !rnd.cleared {
		s.WriteString(clearScreen)
		rnd.cleared = true
	}
	s.WriteString(cursorHome)

	// raw mode terminals do not translate newlines so carriage returns are
	// written explicitly
	border := strings.Repeat("─", display.Width)
	s.WriteString("┌")
	s.WriteString(border)
	s.WriteString("┐\r\n")

	for y := range frame {
		s.WriteString("│")
		for x := range frame[y] {
			if frame[y][x] {
				s.WriteString(pixelOn)
			} else {
				s.WriteString(pixelOff)
			}
		}
		s.WriteString("│\r\n")
	}

	s.WriteString("└")
	s.WriteString(border)
	s.WriteString("┘\r\n")

	if rnd.status != nil {
		s.WriteString(rnd.status())
		s.WriteString(eraseLine)
		s.WriteString("\r\n")
	}

	if _, err := io.WriteString(rnd.output, s.String()); err != nil {
		return curated.Errorf(TerminalError, err)
	}

	return nil
}
