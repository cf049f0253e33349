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
	"github.com/famibus/famibus/hardware/memory/memorymap"
)

// nrom is mapper 0. There is no bank switching. 16k of PRG is mirrored at
// 0xc000.
type nrom struct {
	prg    prgLayout
	chr    chrMemory
	prgRAM prgRAM
}

func newNROM(img Image) (cartMapper, error) {
	cart := &nrom{
		chr:    chrMemory{chr: img.CHR},
		prgRAM: newPRGRAM(img),
	}

	if err := cart.prg.validate(cart.id(), img.PRG); err != nil {
		return nil, err
	}

	if len(img.CHR) != 0 && len(img.CHR) != memorymap.CHRBankSize {
		return nil, curated.Errorf(InvalidSize, cart.id(), "CHR", len(img.CHR))
	}

	return cart, nil
}

func (cart *nrom) String() string {
	chr := "CHR RAM"
	if len(cart.chr.chr) > 0 {
		chr = "CHR ROM"
	}
	return fmt.Sprintf("%s: %dk PRG, %s", cart.id(), len(cart.prg.prg)/1024, chr)
}

func (cart *nrom) id() string {
	return "NROM"
}

func (cart *nrom) insert(cpu memory.Triple, ppu memory.Triple) error {
	if err := cart.prg.insert(cpu); err != nil {
		return err
	}
	if err := cart.prgRAM.insert(cpu); err != nil {
		return err
	}
	return cart.chr.insert(ppu)
}

func (cart *nrom) memories() []*memory.Memory {
	return collect(cart.prg.rom, cart.chr.mem, cart.prgRAM.ram)
}

func (cart *nrom) patch(offset int, data uint8) error {
	return cart.prg.patch(offset, data)
}

func (cart *nrom) reset(rnd memory.Random) {
	cart.prgRAM.reset(rnd)
	cart.chr.reset(rnd)
}
