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

package mapper

import (
	"fmt"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/memory"
	"github.com/famibus/famibus/hardware/signal"
)

// RelayError is returned when a transaction could not be relayed from the
// outer bus to the inner bus, or back again.
const RelayError = "mapper: %s: %v"

// Translator converts an address on the outer bus to an address on the inner
// bus.
type Translator interface {
	Translate(address uint32) uint32
}

// TranslatorFunc allows an ordinary function to be used as a Translator.
type TranslatorFunc func(address uint32) uint32

// Translate implements the Translator interface.
func (fn TranslatorFunc) Translate(address uint32) uint32 {
	return fn(address)
}

// Mapper relays transactions in the range first to last (inclusive) of the
// outer bus to the inner bus.
type Mapper struct {
	label string
	outer memory.Triple
	inner memory.Triple
	first uint32
	last  uint32
	tr    Translator
}

// New is the preferred method of initialisation for the Mapper type. The
// Mapper is added as a listener to the outer RW Flag.
func New(label string, outer memory.Triple, inner memory.Triple, first int, last int, tr Translator) (*Mapper, error) {
	if !outer.IsValid() || !inner.IsValid() {
		return nil, curated.Errorf(memory.InvalidTriple, label)
	}

	f, l, err := memory.ValidateRange(outer, first, last)
	if err != nil {
		return nil, err
	}

	mp := &Mapper{
		label: label,
		outer: outer,
		inner: inner,
		first: f,
		last:  l,
		tr:    tr,
	}

	outer.RW.AddListener(mp)

	return mp, nil
}

// NewMirrored creates a Mapper for mem that repeats every mask+1 addresses
// over the range first to last.
func NewMirrored(label string, outer memory.Triple, mem *memory.Memory, first int, last int, mask uint32) (*Mapper, error) {
	return New(label, outer, mem.Triple(), first, last, Mask(mask))
}

// NewBanked creates a Mapper for mem where the range first to last is a
// window onto the bank selected by the BankRegister.
func NewBanked(label string, outer memory.Triple, mem *memory.Memory, first int, last int, reg *BankRegister, bankSize uint32) (*Mapper, error) {
	return New(label, outer, mem.Triple(), first, last, Banked{
		Register: reg,
		BankSize: bankSize,
		First:    uint32(first),
	})
}

// NewFixed creates a Mapper for mem where the range first to last is a window
// onto a bank that never changes.
func NewFixed(label string, outer memory.Triple, mem *memory.Memory, first int, last int, bank int, bankSize uint32) (*Mapper, error) {
	return New(label, outer, mem.Triple(), first, last, Banked{
		Bank:     bank,
		BankSize: bankSize,
		First:    uint32(first),
	})
}

// NewNametable creates a Mapper for the nametable area of the PPU bus. The
// mem argument is the nametable RAM on its own bus.
func NewNametable(label string, outer memory.Triple, mem *memory.Memory, mode Mirroring) (*Mapper, error) {
	return New(label, outer, mem.Triple(), OriginNametables, MemtopNametables, Nametable{Mode: mode})
}

func (mp *Mapper) String() string {
	return fmt.Sprintf("%s %#04x-%#04x", mp.label, mp.first, mp.last)
}

// Label returns the name given to the Mapper at creation.
func (mp *Mapper) Label() string {
	return mp.label
}

// First returns the first address of the range on the outer bus.
func (mp *Mapper) First() uint32 {
	return mp.first
}

// Last returns the last address of the range on the outer bus.
func (mp *Mapper) Last() uint32 {
	return mp.last
}

// Outer returns the Triple the Mapper is listening to.
func (mp *Mapper) Outer() memory.Triple {
	return mp.outer
}

// Inner returns the Triple the Mapper relays to.
func (mp *Mapper) Inner() memory.Triple {
	return mp.inner
}

// Contains returns true if the outer address is in the range of the Mapper.
func (mp *Mapper) Contains(address uint32) bool {
	return address >= mp.first && address <= mp.last
}

// Translate an outer address to an inner address.
func (mp *Mapper) Translate(address uint32) uint32 {
	return mp.tr.Translate(address)
}

// OnFlagChange implements the signal.FlagListener interface.
func (mp *Mapper) OnFlagChange(v signal.Value, f *signal.Flag) error {
	if f != mp.outer.RW {
		return nil
	}

	address := mp.outer.Address.Read()
	if !mp.Contains(address) {
		return nil
	}

	if err := mp.inner.Address.Write(mp.tr.Translate(address)); err != nil {
		return curated.Errorf(RelayError, mp.label, err)
	}

	if v == signal.Write {
		if err := mp.inner.Data.Write(mp.outer.Data.Read()); err != nil {
			return curated.Errorf(RelayError, mp.label, err)
		}
	}

	// inner devices complete their part of the transaction before the
	// result is copied back to the outer bus
	if err := mp.inner.RW.Set(v); err != nil {
		return curated.Errorf(RelayError, mp.label, err)
	}

	if v == signal.Read {
		if err := mp.outer.Data.Write(mp.inner.Data.Read()); err != nil {
			return curated.Errorf(RelayError, mp.label, err)
		}
	}

	return nil
}
