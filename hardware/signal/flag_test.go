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

package signal_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/signal"
	"github.com/famibus/famibus/test"
)

// recorder is a FlagListener that notes every call in a shared log.
type recorder struct {
	name string
	log  *[]string
	err  error
}

func (r *recorder) OnFlagChange(v signal.Value, f *signal.Flag) error {
	*r.log = append(*r.log, fmt.Sprintf("%s:%s:%s", r.name, f.Label(), v))
	return r.err
}

func TestNewFlag(t *testing.T) {
	f, err := signal.NewFlag("rw", signal.RW, signal.Read)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Value(), signal.Read)
	test.ExpectEquality(t, f.String(), "rw=READ")

	_, err = signal.NewFlag("rw", signal.RW, signal.Start)
	test.ExpectSuccess(t, curated.Is(err, signal.InvalidFlagValue))
}

func TestSetOutsideDomain(t *testing.T) {
	var log []string

	f, err := signal.NewFlag("run", signal.Run, signal.Halt)
	test.DemandSuccess(t, err)
	f.AddListener(&recorder{name: "a", log: &log})

	err = f.Set(signal.Write)
	test.ExpectSuccess(t, curated.Is(err, signal.InvalidFlagValue))
	test.ExpectEquality(t, f.Value(), signal.Halt)
	test.ExpectEquality(t, len(log), 0)
}

func TestRegistrationOrder(t *testing.T) {
	var log []string

	f, err := signal.NewFlag("rw", signal.RW, signal.Read)
	test.DemandSuccess(t, err)

	for _, n := range []string{"a", "b", "c"} {
		f.AddListener(&recorder{name: n, log: &log})
	}
	test.ExpectEquality(t, f.NumListeners(), 3)

	test.DemandSuccess(t, f.Set(signal.Write))
	test.ExpectEquality(t, fmt.Sprint(log), "[a:rw:WRITE b:rw:WRITE c:rw:WRITE]")

	// setting the same value again still calls every listener
	log = log[:0]
	test.DemandSuccess(t, f.Set(signal.Write))
	test.ExpectEquality(t, len(log), 3)
}

func TestFailFast(t *testing.T) {
	var log []string
	failure := errors.New("listener failure")

	f, err := signal.NewFlag("rw", signal.RW, signal.Read)
	test.DemandSuccess(t, err)
	f.AddListener(&recorder{name: "a", log: &log})
	f.AddListener(&recorder{name: "b", log: &log, err: failure})
	f.AddListener(&recorder{name: "c", log: &log})

	err = f.Set(signal.Write)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, signal.IsPropagation(err))
	test.ExpectSuccess(t, errors.Is(err, failure))
	test.ExpectEquality(t, pkgerrors.Cause(err), failure)

	var p *signal.PropagationError
	test.DemandSuccess(t, errors.As(err, &p))
	test.ExpectEquality(t, p.Source, "rw")
	test.ExpectEquality(t, p.Listener, 1)

	// listener c was never called
	test.ExpectEquality(t, fmt.Sprint(log), "[a:rw:WRITE b:rw:WRITE]")

	// the value was stored before dispatch began
	test.ExpectEquality(t, f.Value(), signal.Write)
}

func TestDepthFirst(t *testing.T) {
	var log []string

	outer, err := signal.NewFlag("outer", signal.RW, signal.Read)
	test.DemandSuccess(t, err)
	inner, err := signal.NewFlag("inner", signal.Run, signal.Halt)
	test.DemandSuccess(t, err)

	inner.AddListener(&recorder{name: "x", log: &log})
	inner.AddListener(&recorder{name: "y", log: &log})

	outer.AddListener(&recorder{name: "a", log: &log})
	outer.AddListener(signal.FlagListenerFunc(func(v signal.Value, f *signal.Flag) error {
		log = append(log, "b:outer:"+v.String())
		return inner.Set(signal.Start)
	}))
	outer.AddListener(&recorder{name: "c", log: &log})

	test.DemandSuccess(t, outer.Set(signal.Write))
	test.ExpectEquality(t, fmt.Sprint(log),
		"[a:outer:WRITE b:outer:WRITE x:inner:START y:inner:START c:outer:WRITE]")
}

func TestNestedFailure(t *testing.T) {
	var log []string
	failure := curated.Errorf("device: broken")

	outer, err := signal.NewFlag("outer", signal.RW, signal.Read)
	test.DemandSuccess(t, err)
	inner, err := signal.NewFlag("inner", signal.RW, signal.Read)
	test.DemandSuccess(t, err)

	inner.AddListener(&recorder{name: "x", log: &log, err: failure})
	inner.AddListener(&recorder{name: "y", log: &log})

	outer.AddListener(signal.FlagListenerFunc(func(v signal.Value, f *signal.Flag) error {
		return inner.Set(v)
	}))
	outer.AddListener(&recorder{name: "c", log: &log})

	err = outer.Set(signal.Write)
	test.ExpectSuccess(t, curated.Has(err, "device: broken"))
	test.ExpectSuccess(t, curated.Is(pkgerrors.Cause(err), "device: broken"))
	test.ExpectEquality(t, fmt.Sprint(log), "[x:inner:WRITE]")
}

func TestReentrantSameFlag(t *testing.T) {
	var log []string

	f, err := signal.NewFlag("rw", signal.RW, signal.Read)
	test.DemandSuccess(t, err)

	// the first listener turns a WRITE into a READ
	f.AddListener(signal.FlagListenerFunc(func(v signal.Value, f *signal.Flag) error {
		log = append(log, "a:"+v.String())
		if v == signal.Write {
			return f.Set(signal.Read)
		}
		return nil
	}))
	f.AddListener(&recorder{name: "b", log: &log})

	test.DemandSuccess(t, f.Set(signal.Write))
	test.ExpectEquality(t, fmt.Sprint(log), "[a:WRITE a:READ b:rw:READ b:rw:WRITE]")
	test.ExpectEquality(t, f.Value(), signal.Read)
}
