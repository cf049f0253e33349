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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Ticker is implemented by the master clock of the emulation.
type Ticker interface {
	Ticks() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clk Ticker

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool

	// source of numbers for NoRewind(). created on first use so that ZeroSeed
	// can be set after NewRandom()
	src *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clk Ticker) *Random {
	return &Random{
		clk: clk,
	}
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

func (rnd *Random) ticks() int64 {
	if rnd.clk == nil {
		return 0
	}
	return int64(rnd.clk.Ticks())
}

// Rewindable returns a number in the range 0 to n-1. The number is the same
// for every call made at the same point in the emulation.
func (rnd *Random) Rewindable(n int) int {
	return rand.New(rand.NewSource(rnd.seed() + rnd.ticks())).Intn(n)
}

// NoRewind returns a number in the range 0 to n-1.
func (rnd *Random) NoRewind(n int) int {
	if rnd.src == nil {
		rnd.src = rand.New(rand.NewSource(rnd.seed() + rnd.ticks()))
	}
	return rnd.src.Intn(n)
}

// Intn is the same as NoRewind.
func (rnd *Random) Intn(n int) int {
	return rnd.NoRewind(n)
}
