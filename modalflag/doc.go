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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Arguments are given to the Modes type with NewArgs(). Each call to Parse()
// consumes the flags for the current mode and, if sub-modes have been added
// with AddSubModes(), the argument that selects the next mode. The Gopher8
// command line is handled like this:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SDL", "DEBUG", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		bytecode := md.AddBool("bytecode", false, "include bytecode")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not the name of a sub-mode. Sub-mode comparisons are case insensitive and
// Mode() always returns the upper case name.
//
// Non-flag arguments that remain after a Parse() are available with the
// RemainingArgs() and GetArg() functions.
//
// The -help flag is handled automatically by Parse(). Help is written to the
// Output field, which means that Output should always be set.
package modalflag
