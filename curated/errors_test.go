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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/test"
)

const testPattern = "test: value %d"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("memory: %v", curated.Errorf("memory: address out of range"))
	test.ExpectEquality(t, e.Error(), "memory: address out of range")

	// non-adjacent duplicates are kept
	e = curated.Errorf("a: b: %v", curated.Errorf("a: c"))
	test.ExpectEquality(t, e.Error(), "a: b: a: c")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, "other"))

	f := curated.Errorf("wrapped: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	// plain errors are not curated
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestHasThroughStandardWrapping(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := fmt.Errorf("standard: %w", e)
	test.ExpectSuccess(t, curated.Has(f, testPattern))
}

func TestUnwrap(t *testing.T) {
	sentinal := errors.New("sentinal")
	e := curated.Errorf("wrapped: %v", sentinal)
	test.ExpectSuccess(t, errors.Is(e, sentinal))
	test.ExpectEquality(t, errors.Unwrap(e), sentinal)

	// no error values means nothing to unwrap
	test.ExpectEquality(t, errors.Unwrap(curated.Errorf(testPattern, 1)), error(nil))
}
