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

	"github.com/famibus/famibus/hardware/signal"
)

// Listener implementations are called on every tick of the Clocks they are
// attached to.
type Listener interface {
	OnTick() error
}

// ListenerFunc allows an ordinary function to be used as a Listener.
type ListenerFunc func() error

// OnTick implements the Listener interface.
func (fn ListenerFunc) OnTick() error {
	return fn()
}

// Clock is a pulse source.
type Clock struct {
	label     string
	listeners []Listener

	// number of completed pulses
	ticks uint64
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock(label string) *Clock {
	return &Clock{label: label}
}

func (c *Clock) String() string {
	return fmt.Sprintf("%s [%d]", c.label, c.ticks)
}

// Label returns the name given to the Clock at creation.
func (c *Clock) Label() string {
	return c.label
}

// AddListener appends a listener to the Clock.
func (c *Clock) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Attach a Divider to the Clock, making it a branch of the clock tree.
func (c *Clock) Attach(d *Divider) {
	c.AddListener(d)
}

// Ticks returns the number of pulses that have completed without error.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Tick sends a single pulse to every listener.
func (c *Clock) Tick() error {
	for i, l := range c.listeners {
		if err := l.OnTick(); err != nil {
			return signal.NewPropagationError(c.label, i, err)
		}
	}
	c.ticks++
	return nil
}

// TickN sends n pulses, one after the other. It is exactly equivalent to
// calling Tick() n times and stops at the first error.
func (c *Clock) TickN(n int) error {
	for i := 0; i < n; i++ {
		if err := c.Tick(); err != nil {
			return err
		}
	}
	return nil
}
