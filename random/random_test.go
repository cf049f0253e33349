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

package random_test

import (
	"testing"

	"github.com/famibus/famibus/random"
	"github.com/famibus/famibus/test"
)

type clock struct {
	ticks uint64
}

func (c *clock) Ticks() uint64 {
	return c.ticks
}

func TestRewindable(t *testing.T) {
	clk := &clock{ticks: 100}

	a := random.NewRandom(clk)
	b := random.NewRandom(clk)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}

	// same tick count gives the same number
	test.ExpectEquality(t, a.Rewindable(1<<30), a.Rewindable(1<<30))
}

func TestNoRewind(t *testing.T) {
	a := random.NewRandom(&clock{})
	b := random.NewRandom(nil)
	a.ZeroSeed = true
	b.ZeroSeed = true

	// parallel emulations produce the same sequence
	diff := false
	prev := -1
	for i := 0; i < 256; i++ {
		v := a.Intn(1 << 30)
		test.ExpectEquality(t, v, b.NoRewind(1<<30))
		if prev != -1 && v != prev {
			diff = true
		}
		prev = v
	}

	// but the numbers in the sequence change
	test.ExpectSuccess(t, diff)
}
