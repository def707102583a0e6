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

package preferences

import (
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Default values for the emulation.
const (
	DefaultClockSpeed = 700
	DefaultTimerRate  = 60
)

// Preferences for the emulated CHIP-8.
type Preferences struct {
	dsk *prefs.Disk

	// number of instructions executed per second by Chip8.Run()
	ClockSpeed prefs.Int

	// number of timer ticks per second by Chip8.Run()
	TimerRate prefs.Int

	// alternative behaviour for the 8xy7 instruction
	SUBNQuirk prefs.Bool

	// seed for the random source used by the RND instruction. zero means the
	// seed is taken from the current time
	RandomSeed prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := DefaultPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("chip8.clockspeed", &p.ClockSpeed)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.timerrate", &p.TimerRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.subnquirk", &p.SUBNQuirk)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("chip8.randomseed", &p.RandomSeed)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// DefaultPreferences returns an instance of Preferences with default values
// and no association with a file on disk. Load() and Save() will do nothing.
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.ClockSpeed.Set(DefaultClockSpeed)
	_ = p.TimerRate.Set(DefaultTimerRate)
	_ = p.SUBNQuirk.Set(false)
	_ = p.RandomSeed.Set(0)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
