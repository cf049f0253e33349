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

package cartridge

import (
	"fmt"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/memory"
	"github.com/famibus/famibus/hardware/memory/mapper"
	"github.com/famibus/famibus/hardware/memory/memorymap"
)

// cnrom is mapper 3. PRG is arranged the same as NROM. The 8k CHR bank is
// selected by writing to any address in the PRG area.
type cnrom struct {
	prg prgLayout

	chr      []uint8
	numBanks int
	chrROM   *memory.Memory
	bank     *mapper.BankRegister

	prgRAM prgRAM
}

func newCNROM(img Image) (cartMapper, error) {
	cart := &cnrom{
		chr:    img.CHR,
		prgRAM: newPRGRAM(img),
	}

	if err := cart.prg.validate(cart.id(), img.PRG); err != nil {
		return nil, err
	}

	if len(img.CHR) == 0 || len(img.CHR)%memorymap.CHRBankSize != 0 {
		return nil, curated.Errorf(InvalidSize, cart.id(), "CHR", len(img.CHR))
	}
	cart.numBanks = len(img.CHR) / memorymap.CHRBankSize

	return cart, nil
}

func (cart *cnrom) String() string {
	bank := 0
	if cart.bank != nil {
		bank = cart.bank.Bank()
	}
	return fmt.Sprintf("%s: %d CHR banks, bank %d selected", cart.id(), cart.numBanks, bank)
}

func (cart *cnrom) id() string {
	return "CNROM"
}

func (cart *cnrom) insert(cpu memory.Triple, ppu memory.Triple) error {
	if err := cart.prg.insert(cpu); err != nil {
		return err
	}

	var err error

	cart.chrROM, err = newMemory("CHR", len(cart.chr), cart.chr, true)
	if err != nil {
		return err
	}

	cart.bank, err = mapper.NewBankRegister("CHR bank", cpu, memorymap.OriginPRGROM, memorymap.MemtopPRGROM, cart.numBanks)
	if err != nil {
		return err
	}

	_, err = mapper.NewBanked("CHR", ppu, cart.chrROM, memorymap.OriginPatterns, memorymap.MemtopPatterns, cart.bank, memorymap.CHRBankSize)
	if err != nil {
		return err
	}

	return cart.prgRAM.insert(cpu)
}

func (cart *cnrom) memories() []*memory.Memory {
	return collect(cart.prg.rom, cart.chrROM, cart.prgRAM.ram)
}

func (cart *cnrom) patch(offset int, data uint8) error {
	return cart.prg.patch(offset, data)
}

func (cart *cnrom) reset(rnd memory.Random) {
	cart.bank.Reset()
	cart.prgRAM.reset(rnd)
}
