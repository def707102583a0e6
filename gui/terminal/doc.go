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

// Package terminal is a text frontend for the CHIP-8 emulation.
//
// The Renderer type implements the hardware.FrameRenderer interface and draws
// the display to an ANSI terminal inside a box-drawing border, followed by a
// status line describing the CPU.
//
// The Keypad type implements the keypad.Keypad interface. It is fed with bytes
// read from the terminal while the terminal is in raw mode. The characters 0-9
// and a-f (or A-F) press the corresponding key. A terminal does not report key
// releases so a pressed key is held for a fixed number of polls.
//
// The Terminal type wraps "github.com/pkg/term/termios" and is used to put the
// terminal into, and out of, raw mode.
package terminal
