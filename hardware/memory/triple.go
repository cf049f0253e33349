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

package memory

import (
	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/bus"
	"github.com/famibus/famibus/hardware/signal"
)

// Triple is the set of lines a device needs to take part in bus transactions:
// an address bus, a data bus and a read/write Flag.
type Triple struct {
	Address *bus.Bus
	Data    *bus.Bus
	RW      *signal.Flag
}

// NewTriple creates the three lines of a Triple. The RW Flag starts in the
// Read state.
func NewTriple(label string, addressWidth int, dataWidth int) (Triple, error) {
	var tr Triple
	var err error

	tr.Address, err = bus.New(addressWidth)
	if err != nil {
		return Triple{}, curated.Errorf("memory: %s: %v", label, err)
	}

	tr.Data, err = bus.New(dataWidth)
	if err != nil {
		return Triple{}, curated.Errorf("memory: %s: %v", label, err)
	}

	tr.RW, err = signal.NewFlag(label, signal.RW, signal.Read)
	if err != nil {
		return Triple{}, curated.Errorf("memory: %s: %v", label, err)
	}

	return tr, nil
}

// IsValid returns false if any of the lines are missing.
func (tr Triple) IsValid() bool {
	return tr.Address != nil && tr.Data != nil && tr.RW != nil
}
