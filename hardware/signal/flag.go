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

package signal

import (
	"fmt"

	"github.com/famibus/famibus/curated"
)

// InvalidFlagValue is returned when a value outside of a Flag's domain is
// used.
const InvalidFlagValue = "signal: invalid value: %v is not in the %s domain of %s"

// FlagListener implementations are told about every change to the Flags they
// are listening to.
type FlagListener interface {
	OnFlagChange(v Value, f *Flag) error
}

// FlagListenerFunc allows an ordinary function to be used as a FlagListener.
type FlagListenerFunc func(v Value, f *Flag) error

// OnFlagChange implements the FlagListener interface.
func (fn FlagListenerFunc) OnFlagChange(v Value, f *Flag) error {
	return fn(v, f)
}

// Flag is an enumerated signal line.
type Flag struct {
	label     string
	domain    Domain
	value     Value
	listeners []FlagListener
}

// NewFlag is the preferred method of initialisation for the Flag type.
func NewFlag(label string, domain Domain, initial Value) (*Flag, error) {
	if !domain.Contains(initial) {
		return nil, curated.Errorf(InvalidFlagValue, initial, domain.Name, label)
	}
	return &Flag{
		label:  label,
		domain: domain,
		value:  initial,
	}, nil
}

func (f *Flag) String() string {
	return fmt.Sprintf("%s=%s", f.label, f.value)
}

// Label returns the name given to the Flag at creation.
func (f *Flag) Label() string {
	return f.label
}

// Domain returns the set of values the Flag accepts.
func (f *Flag) Domain() Domain {
	return f.domain
}

// Value returns the current value of the Flag.
func (f *Flag) Value() Value {
	return f.value
}

// NumListeners returns the number of listeners attached to the Flag.
func (f *Flag) NumListeners() int {
	return len(f.listeners)
}

// AddListener appends a listener. Listeners added while a change is being
// dispatched will be told about the next change, not the current one.
func (f *Flag) AddListener(l FlagListener) {
	f.listeners = append(f.listeners, l)
}

// Set the value of the Flag and tell every listener about it. Listeners are
// told even if the value has not changed, in the same way that toggling a
// line twice is observed twice.
func (f *Flag) Set(v Value) error {
	if !f.domain.Contains(v) {
		return curated.Errorf(InvalidFlagValue, v, f.domain.Name, f.label)
	}

	f.value = v

	for i, l := range f.listeners {
		if err := l.OnFlagChange(v, f); err != nil {
			return NewPropagationError(f.label, i, err)
		}
	}

	return nil
}
