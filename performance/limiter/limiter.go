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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		runFrame()
//	}
package limiter

import (
	"math"
	"sync"
	"time"

	"github.com/famibus/famibus/curated"
)

// InvalidLimit is returned when the rate is not a positive number.
const InvalidLimit = "limiter: invalid limit: %v"

// this is a really rough attempt at frame rate limiting. probably only any
// good if base performance of the machine is well above the required rate.

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	crit            sync.Mutex
	framesPerSecond float64
	secondsPerFrame time.Duration

	ticker *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond float64) (*FpsLimiter, error) {
	lim := &FpsLimiter{}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) error {
	if framesPerSecond <= 0 || math.IsInf(framesPerSecond, 0) || math.IsNaN(framesPerSecond) {
		return curated.Errorf(InvalidLimit, framesPerSecond)
	}

	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)

	if lim.ticker == nil {
		lim.ticker = time.NewTicker(lim.secondsPerFrame)
	} else {
		lim.ticker.Reset(lim.secondsPerFrame)
	}

	return nil
}

// Limit returns the current rate.
func (lim *FpsLimiter) Limit() float64 {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.framesPerSecond
}

// Wait will block until trigger
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. The limiter should not be used after it has been stopped.
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
