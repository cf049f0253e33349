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

// uxrom is mapper 2. The first 16k of the PRG area is switchable and the
// last 16k is fixed to the last bank. The bank is selected by writing to any
// address in the PRG area.
type uxrom struct {
	prg      []uint8
	numBanks int

	rom  *memory.Memory
	bank *mapper.BankRegister

	chr    chrMemory
	prgRAM prgRAM
}

func newUxROM(img Image) (cartMapper, error) {
	cart := &uxrom{
		prg:    img.PRG,
		chr:    chrMemory{chr: img.CHR},
		prgRAM: newPRGRAM(img),
	}

	if len(img.PRG) == 0 || len(img.PRG)%memorymap.PRGBankSize != 0 {
		return nil, curated.Errorf(InvalidSize, cart.id(), "PRG", len(img.PRG))
	}
	cart.numBanks = len(img.PRG) / memorymap.PRGBankSize

	if len(img.CHR) != 0 && len(img.CHR) != memorymap.CHRBankSize {
		return nil, curated.Errorf(InvalidSize, cart.id(), "CHR", len(img.CHR))
	}

	return cart, nil
}

func (cart *uxrom) String() string {
	bank := 0
	if cart.bank != nil {
		bank = cart.bank.Bank()
	}
	return fmt.Sprintf("%s: %d banks, bank %d selected", cart.id(), cart.numBanks, bank)
}

func (cart *uxrom) id() string {
	return "UxROM"
}

func (cart *uxrom) insert(cpu memory.Triple, ppu memory.Triple) error {
	var err error

	cart.rom, err = newMemory("PRG", len(cart.prg), cart.prg, true)
	if err != nil {
		return err
	}

	cart.bank, err = mapper.NewBankRegister("PRG bank", cpu, memorymap.OriginPRGROM, memorymap.MemtopPRGROM, cart.numBanks)
	if err != nil {
		return err
	}

	_, err = mapper.NewBanked("PRG switchable", cpu, cart.rom, 0x8000, 0xbfff, cart.bank, memorymap.PRGBankSize)
	if err != nil {
		return err
	}

	_, err = mapper.NewFixed("PRG fixed", cpu, cart.rom, 0xc000, 0xffff, cart.numBanks-1, memorymap.PRGBankSize)
	if err != nil {
		return err
	}

	if err := cart.prgRAM.insert(cpu); err != nil {
		return err
	}

	return cart.chr.insert(ppu)
}

func (cart *uxrom) memories() []*memory.Memory {
	return collect(cart.rom, cart.chr.mem, cart.prgRAM.ram)
}

func (cart *uxrom) patch(offset int, data uint8) error {
	return cart.rom.Poke(uint32(offset), uint32(data))
}

func (cart *uxrom) reset(rnd memory.Random) {
	cart.bank.Reset()
	cart.prgRAM.reset(rnd)
	cart.chr.reset(rnd)
}
