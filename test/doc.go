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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare any two
// comparable values of the same type. The ExpectSuccess() and ExpectFailure()
// functions test boolean and error values: a true boolean and a nil error are
// successes, a false boolean and a non-nil error are failures.
//
// The Demand*() variants of the functions end the test immediately on
// failure. They should be used when a failure would make the rest of the test
// meaningless, for example when a constructor returns an error.
//
// All functions accept optional tags which are printed as part of the failure
// message. Tags are useful when the test is looping over a range of values.
//
//	for w := 1; w <= 31; w++ {
//		b, err := bus.New(w)
//		test.DemandSuccess(t, err, w)
//		test.ExpectEquality(t, b.Read(), uint32(0), w)
//	}
//
// The CompareWriter type is an implementation of io.Writer that is useful for
// testing output.
package test
