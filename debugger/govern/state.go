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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Running, WaitingForKey and Halted are reported by the emulation. Paused and
// Ending are only ever requested by a host.
const (
	Running State = iota
	WaitingForKey
	Halted
	Paused
	Ending
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case WaitingForKey:
		return "Waiting for key"
	case Halted:
		return "Halted"
	case Paused:
		return "Paused"
	case Ending:
		return "Ending"
	}

	return ""
}
