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

package clocks

import (
	"fmt"

	"github.com/famibus/famibus/curated"
)

// InvalidPeriod is returned by NewDivider() when the period is less than one.
const InvalidPeriod = "clocks: invalid divider period: %d"

// Divider is a Clock that ticks once every period ticks of its parent.
type Divider struct {
	Clock
	period  int
	counter int
}

// NewDivider is the preferred method of initialisation for the Divider type.
// The Divider must be attached to a parent Clock with Clock.Attach().
func NewDivider(label string, period int) (*Divider, error) {
	if period < 1 {
		return nil, curated.Errorf(InvalidPeriod, period)
	}
	return &Divider{
		Clock:  Clock{label: label},
		period: period,
	}, nil
}

func (d *Divider) String() string {
	return fmt.Sprintf("%s [%d/%d]", d.label, d.counter, d.period)
}

// Period returns the number of parent ticks per Divider tick.
func (d *Divider) Period() int {
	return d.period
}

// Counter returns the number of parent ticks since the Divider last ticked.
func (d *Divider) Counter() int {
	return d.counter
}

// Reset the counter. The next tick of the Divider will happen after period
// parent ticks.
func (d *Divider) Reset() {
	d.counter = 0
}

// OnTick implements the Listener interface.
func (d *Divider) OnTick() error {
	d.counter++
	if d.counter < d.period {
		return nil
	}
	d.counter = 0
	return d.Tick()
}
