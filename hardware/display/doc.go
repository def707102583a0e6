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

// Package display implements the 64x32 monochrome framebuffer of the CHIP-8.
//
// Sprites are drawn a row at a time with BlitRow(). Each row is a single byte,
// the most significant bit being the leftmost pixel. Pixels are XORed onto the
// framebuffer and a collision is reported if any pixel is turned off as a
// result. Columns wrap around the right hand edge of the framebuffer.
//
// The framebuffer can be copied with Frame(). The Frame type is a simple value
// type that can be safely passed to renderers.
package display
