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

package limiter_test

import (
	"testing"
	"time"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/performance/limiter"
	"github.com/famibus/famibus/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectSuccess(t, curated.Is(err, limiter.InvalidLimit))

	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectEquality(t, lim.Limit(), 100.0)
	test.ExpectFailure(t, lim.HasWaited())

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)

	test.ExpectSuccess(t, curated.Is(lim.SetLimit(-1), limiter.InvalidLimit))
	test.ExpectEquality(t, lim.Limit(), 100.0)

	test.DemandSuccess(t, lim.SetLimit(1000))
	test.ExpectEquality(t, lim.Limit(), 1000.0)
}
