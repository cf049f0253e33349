// This file is part of famibus.
//
// famibus is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// famibus is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with famibus.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages that produce errors for their callers to test
// against export the pattern as a const string. For example, the bus package
// exports:
//
//	const InvalidBusData = "bus: invalid data: %#x does not fit %d bits"
//
// and callers test for it with:
//
//	if curated.Is(err, bus.InvalidBusData) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. This is the function to use when an error has been
// returned through a signal cascade, because the cascade wraps the original
// failure:
//
//	err := flag.Set(signal.Read)
//	if curated.Has(err, bus.InvalidBusData) {
//		...
//	}
//
// Curated errors also implement Unwrap(), returning the first error found in
// the placeholder values. This means the standard library's errors.Is() and
// errors.As() functions can look through a curated error.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example:
//
//	e := curated.Errorf("memory: %v", curated.Errorf("memory: address out of range"))
//
// prints as:
//
//	memory: address out of range
//
// and not:
//
//	memory: memory: address out of range
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
