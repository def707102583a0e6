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

// Package prefs facilitates the storage of preferential values in the
// Gopher8 system. Values are held in the Bool, Int and String types.
//
// Values can be associated with a key and saved to disk with the Disk type:
//
//	var clock prefs.Int
//	dsk, _ := prefs.NewDisk("preferences")
//	_ = dsk.Add("chip8.clockspeed", &clock)
//	_ = clock.Set(700)
//	_ = dsk.Save()
//
// The file on disk is a text file with one key/value pair per line in the
// form "key :: value". Keys in the file that have not been added to the Disk
// are preserved when the file is saved.
//
// Values can also be given on the command line. A string of the form
// "key::value; key::value" is pushed with PushCommandLineStack() and the
// values are applied, for the duration of the program, when the matching key
// is added to a Disk with Add() or when Load() is called. Command line values
// are never saved to disk unless Save() is called explicitly after the value
// has been applied.
package prefs
