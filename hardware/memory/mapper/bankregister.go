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

// InvalidBankCount is returned when a BankRegister is created with fewer than
// one bank.
const InvalidBankCount = "mapper: invalid number of banks: %d"

// BankRegister latches the value written to any address in its range. The
// value is reduced to the number of banks available.
type BankRegister struct {
	label    string
	outer    memory.Triple
	first    uint32
	last     uint32
	numBanks int
	bank     int
}

// NewBankRegister is the preferred method of initialisation for the
// BankRegister type. The register is added as a listener to the outer RW Flag.
func NewBankRegister(label string, outer memory.Triple, first int, last int, numBanks int) (*BankRegister, error) {
	if numBanks < 1 {
		return nil, curated.Errorf(InvalidBankCount, numBanks)
	}

	if !outer.IsValid() {
		return nil, curated.Errorf(memory.InvalidTriple, label)
	}

	f, l, err := memory.ValidateRange(outer, first, last)
	if err != nil {
		return nil, err
	}

	reg := &BankRegister{
		label:    label,
		outer:    outer,
		first:    f,
		last:     l,
		numBanks: numBanks,
	}

	outer.RW.AddListener(reg)

	return reg, nil
}

func (reg *BankRegister) String() string {
	return fmt.Sprintf("%s bank %d of %d", reg.label, reg.bank, reg.numBanks)
}

// Bank returns the currently selected bank.
func (reg *BankRegister) Bank() int {
	return reg.bank
}

// SetBank selects a bank without using the bus.
func (reg *BankRegister) SetBank(bank int) {
	reg.bank = bank % reg.numBanks
}

// NumBanks returns the number of banks the register can select from.
func (reg *BankRegister) NumBanks() int {
	return reg.numBanks
}

// Reset selects the first bank.
func (reg *BankRegister) Reset() {
	reg.bank = 0
}

// OnFlagChange implements the signal.FlagListener interface.
func (reg *BankRegister) OnFlagChange(v signal.Value, f *signal.Flag) error {
	if f != reg.outer.RW || v != signal.Write {
		return nil
	}

	address := reg.outer.Address.Read()
	if address < reg.first || address > reg.last {
		return nil
	}

	reg.bank = int(reg.outer.Data.Read()) % reg.numBanks

	return nil
}
