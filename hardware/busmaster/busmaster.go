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

package busmaster

import (
	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/memory"
	"github.com/famibus/famibus/hardware/signal"
)

// Guard is consulted for every bus transaction. Transaction() should run the
// supplied function only if the caller is permitted to drive the lines.
type Guard interface {
	Transaction(func() error) error
}

type unguarded struct{}

func (unguarded) Transaction(f func() error) error {
	return f()
}

// Master drives the lines of a memory.Triple.
type Master struct {
	triple memory.Triple
	guard  Guard
}

// New is the preferred method of initialisation for the Master type.
func New(triple memory.Triple) *Master {
	return NewGuarded(triple, unguarded{})
}

// NewGuarded creates a Master where every transaction is run through the
// Guard.
func NewGuarded(triple memory.Triple, guard Guard) *Master {
	return &Master{triple: triple, guard: guard}
}

// Triple returns the lines driven by the Master.
func (m *Master) Triple() memory.Triple {
	return m.triple
}

// Read the value at address.
func (m *Master) Read(address uint32) (uint32, error) {
	var v uint32
	err := m.guard.Transaction(func() error {
		if err := m.triple.Address.Write(address); err != nil {
			return curated.Errorf("busmaster: read: %v", err)
		}
		if err := m.triple.RW.Set(signal.Read); err != nil {
			return err
		}
		v = m.triple.Data.Read()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Write data to address.
func (m *Master) Write(address uint32, data uint32) error {
	return m.guard.Transaction(func() error {
		if err := m.triple.Address.Write(address); err != nil {
			return curated.Errorf("busmaster: write: %v", err)
		}
		if err := m.triple.Data.Write(data); err != nil {
			return curated.Errorf("busmaster: write: %v", err)
		}
		return m.triple.RW.Set(signal.Write)
	})
}

// ReadWord reads two consecutive addresses and combines them into a little
// endian 16 bit value. Used to read the vectors at the top of the CPU address
// space.
func (m *Master) ReadWord(address uint32) (uint16, error) {
	lo, err := m.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := m.Read((address + 1) & m.triple.Address.Mask())
	if err != nil {
		return 0, err
	}
	return uint16(hi&0xff)<<8 | uint16(lo&0xff), nil
}
