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

// Package random is the source of random numbers for the emulation. The CPU
// requires a random byte for the RND instruction.
//
// A Random instance created with a non-zero seed will always produce the same
// sequence of numbers. This is useful for testing and for regression checking
// with the digest package. A seed of zero means that the seed is taken from
// the current time.
//
// The Sequence type is a simple source of predetermined values. It is used
// when a test needs to know exactly what value the RND instruction will see.
package random
