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

// Package romloader is used to specify the program that is to be loaded into
// the emulated CHIP-8.
//
// The Load() function reads the program data from a local file or over HTTP.
// The SHA-1 hash of the data is recorded after loading and, if a hash was
// given beforehand, the two are compared.
//
//	ld := romloader.NewLoader("roms/PONG.ch8")
//	if err := ld.Load(); err != nil {
//		return err
//	}
//	err = vm.Load(ld.Data)
package romloader
