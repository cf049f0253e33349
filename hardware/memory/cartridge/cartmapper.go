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
	"math/bits"
	"sort"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/memory"
	"github.com/famibus/famibus/hardware/memory/mapper"
	"github.com/famibus/famibus/hardware/memory/memorymap"
)

// cartMapper implementations hold the actual data from the loaded program
// image and create the memories and mappers when the cartridge is inserted.
type cartMapper interface {
	fmt.Stringer
	id() string
	insert(cpu memory.Triple, ppu memory.Triple) error
	memories() []*memory.Memory
	patch(offset int, data uint8) error
	reset(rnd memory.Random)
}

type registryEntry struct {
	name   string
	create func(img Image) (cartMapper, error)
}

// the list of supported mapper numbers. the registry is closed and there is
// one implementation for each mapper number.
var registry = map[int]registryEntry{
	0: {name: "NROM", create: newNROM},
	2: {name: "UxROM", create: newUxROM},
	3: {name: "CNROM", create: newCNROM},
}

// SupportedMappers returns a summary of the supported mapper numbers, in
// order.
func SupportedMappers() []string {
	ids := make([]int, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	s := make([]string, 0, len(ids))
	for _, id := range ids {
		s = append(s, fmt.Sprintf("%03d %s", id, registry[id].name))
	}
	return s
}

// addressWidth returns the number of bits required to address size values.
func addressWidth(size int) int {
	w := bits.Len(uint(size - 1))
	if w < 1 {
		return 1
	}
	return w
}

// newMemory creates a Memory on a new bus of its own. If data is nil the
// memory is RAM of the given size, otherwise it is ROM or RAM initialised
// with the data.
func newMemory(label string, size int, data []uint8, readOnly bool) (*memory.Memory, error) {
	tr, err := memory.NewTriple(label, addressWidth(size), memorymap.DataWidth)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return memory.NewRAM(label, tr, 0, size-1)
	}
	if readOnly {
		return memory.NewROM(label, tr, 0, size-1, memory.FromBytes(data))
	}
	return memory.NewRAMWithContents(label, tr, 0, size-1, memory.FromBytes(data))
}

// prgLayout is the PRG ROM arrangement shared by NROM and CNROM. 16k of PRG
// is mirrored in the upper half of the area.
type prgLayout struct {
	prg []uint8
	rom *memory.Memory
}

func (l *prgLayout) validate(name string, prg []uint8) error {
	if len(prg) != memorymap.PRGBankSize && len(prg) != memorymap.PRGBankSize*2 {
		return curated.Errorf(InvalidSize, name, "PRG", len(prg))
	}
	l.prg = prg
	return nil
}

func (l *prgLayout) insert(cpu memory.Triple) error {
	var err error
	l.rom, err = newMemory("PRG", len(l.prg), l.prg, true)
	if err != nil {
		return err
	}
	_, err = mapper.NewMirrored("PRG", cpu, l.rom, memorymap.OriginPRGROM, memorymap.MemtopPRGROM, uint32(len(l.prg)-1))
	return err
}

func (l *prgLayout) patch(offset int, data uint8) error {
	return l.rom.Poke(uint32(offset), uint32(data))
}

// prgRAM is the optional RAM at 0x6000 to 0x7fff. The trainer, if present,
// is loaded at 0x7000.
type prgRAM struct {
	present bool
	trainer []uint8
	ram     *memory.Memory
}

func newPRGRAM(img Image) prgRAM {
	return prgRAM{
		present: img.Battery || img.Trainer != nil,
		trainer: img.Trainer,
	}
}

func (p *prgRAM) insert(cpu memory.Triple) error {
	if !p.present {
		return nil
	}

	var err error
	p.ram, err = newMemory("PRG RAM", memorymap.PRGRAMSize, nil, false)
	if err != nil {
		return err
	}
	p.load()

	_, err = mapper.NewMirrored("PRG RAM", cpu, p.ram, memorymap.OriginPRGRAM, memorymap.MemtopPRGRAM, memorymap.PRGRAMSize-1)
	return err
}

func (p *prgRAM) load() {
	for i, v := range p.trainer {
		_ = p.ram.Poke(uint32(memorymap.TrainerLocation-memorymap.OriginPRGRAM+i), uint32(v))
	}
}

func (p *prgRAM) reset(rnd memory.Random) {
	if p.ram != nil {
		p.ram.Reset(rnd)
		p.load()
	}
}

// chrMemory is the pattern memory on the PPU bus. Cartridges without CHR ROM
// have 8k of CHR RAM instead.
type chrMemory struct {
	chr []uint8
	mem *memory.Memory
}

func (c *chrMemory) create() error {
	var err error
	if len(c.chr) == 0 {
		c.mem, err = newMemory("CHR RAM", memorymap.CHRBankSize, nil, false)
	} else {
		c.mem, err = newMemory("CHR", len(c.chr), c.chr, true)
	}
	return err
}

func (c *chrMemory) insert(ppu memory.Triple) error {
	if err := c.create(); err != nil {
		return err
	}
	_, err := mapper.NewMirrored("CHR", ppu, c.mem, memorymap.OriginPatterns, memorymap.MemtopPatterns, memorymap.CHRBankSize-1)
	return err
}

func (c *chrMemory) reset(rnd memory.Random) {
	if c.mem != nil && !c.mem.ReadOnly() {
		c.mem.Reset(rnd)
	}
}

func collect(mems ...*memory.Memory) []*memory.Memory {
	m := make([]*memory.Memory, 0, len(mems))
	for _, mem := range mems {
		if mem != nil {
			m = append(m, mem)
		}
	}
	return m
}
