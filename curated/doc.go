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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that raise errors
// that the caller might want to act on export the pattern as a string
// constant. For example, the memory package exports:
//
//	const AddressError = "memory: address (%#04x) out of range"
//
// and the caller can test for it with the Is() function:
//
//	if curated.Is(err, memory.AddressError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. This is the more useful of the two functions because
// errors are normally wrapped on their way up to the emulation's host:
//
//	e := curated.Errorf(memory.AddressError, 0x1000)
//	f := curated.Errorf(cpu.ExecutionError, e, 0x0ffe)
//
//	curated.Has(f, memory.AddressError) == true
//	curated.Is(f, memory.AddressError) == false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We think of curated errors as being 'expected' and
// uncurated errors as being 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For the purposes of this package we think of
// chains as being composed of parts separated by the sub-string ': '
//
//	part 1: part 2: part 3
//
// Curated errors can wrap plain errors (from the os package for example).
// The first error in the list of values is returned by Unwrap() so the
// standard errors.Is() and errors.As() functions continue to work.
package curated
