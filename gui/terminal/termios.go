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
	"errors"
	"io"
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TerminalError is the error pattern for problems with the host terminal.
const TerminalError = "terminal: %v"

// Terminal controls the mode of the host terminal.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The current attributes of the input file are recorded so that they can
// be restored with CanonicalMode().
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, curated.Errorf(TerminalError, "input and output files are required")
	}

	trm := &Terminal{
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	trm.rawAttr = trm.canAttr
	termios.Cfmakeraw(&trm.rawAttr)

	// reads return after a short timeout even if there is no input. this
	// allows the input loop to notice that it should end
	trm.rawAttr.Cc[unix.VMIN] = 0
	trm.rawAttr.Cc[unix.VTIME] = 1

	return trm, nil
}

// RawMode puts terminal into raw mode.
func (trm *Terminal) RawMode() error {
	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.rawAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (trm *Terminal) CanonicalMode() error {
	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// Flush makes sure the terminal's input buffer is empty.
func (trm *Terminal) Flush() error {
	if err := termios.Tcflush(trm.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// Geometry returns the number of columns and rows of the output terminal.
func (trm *Terminal) Geometry() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(trm.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, curated.Errorf(TerminalError, err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// Read implements the io.Reader interface. In raw mode a read that times out
// returns zero bytes and no error.
func (trm *Terminal) Read(p []byte) (int, error) {
	n, err := trm.input.Read(p)
	if n == 0 && errors.Is(err, io.EOF) {
		return 0, nil
	}
	return n, err
}
