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
	"crypto/sha1"
	"fmt"
	"strings"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/memory"
	"github.com/famibus/famibus/hardware/memory/mapper"
	"github.com/famibus/famibus/hardware/memory/memorymap"
)

// Sentinal error patterns returned by this package.
const (
	UnsupportedMapper = "cartridge: unsupported mapper: %d"
	InvalidSize       = "cartridge: %s: invalid %s size: %d bytes"
	AlreadyInserted   = "cartridge: %s: already inserted"
	NotInserted       = "cartridge: %s: not inserted"
	PatchOutOfRange   = "cartridge: patch offset %#x is outside of the program (%d bytes)"
)

// Image is the content of a cartridge as read from a file. The cartridge
// takes a copy of the PRG and CHR data so the Image can be reused.
type Image struct {
	Name string

	PRG     []uint8
	CHR     []uint8
	Trainer []uint8

	MapperID  int
	Mirroring mapper.Mirroring
	Battery   bool
}

// Hash returns the sha1 hash of the PRG and CHR data.
func (img Image) Hash() string {
	h := sha1.New()
	h.Write(img.PRG)
	h.Write(img.CHR)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Cartridge defines the information and operations for an NES cartridge.
type Cartridge struct {
	Name string
	Hash string

	img      Image
	mapper   cartMapper
	inserted bool

	// connected is true once the mapper has started connecting to the buses
	connected bool
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The mapper number of the Image selects the cartridge implementation.
func NewCartridge(img Image) (*Cartridge, error) {
	reg, ok := registry[img.MapperID]
	if !ok {
		return nil, curated.Errorf(UnsupportedMapper, img.MapperID)
	}

	// copy image data. the cartridge may be patched and the original image
	// should not be affected
	cpy := img
	cpy.PRG = append([]uint8{}, img.PRG...)
	cpy.CHR = append([]uint8{}, img.CHR...)
	if img.Trainer != nil {
		cpy.Trainer = append([]uint8{}, img.Trainer...)
	}

	m, err := reg.create(cpy)
	if err != nil {
		return nil, err
	}

	return &Cartridge{
		Name:   img.Name,
		Hash:   img.Hash(),
		img:    cpy,
		mapper: m,
	}, nil
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Summary returns brief information about the cartridge. Two lines: first line
// is the name of the cartridge and the second line is information about the
// mapper.
func (cart *Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s", cart.Name, cart.mapper)
}

// ID returns the name of the cartridge type.
func (cart *Cartridge) ID() string {
	return cart.mapper.id()
}

// MapperID returns the mapper number of the cartridge.
func (cart *Cartridge) MapperID() int {
	return cart.img.MapperID
}

// Mirroring returns the nametable arrangement required by the cartridge.
func (cart *Cartridge) Mirroring() mapper.Mirroring {
	return cart.img.Mirroring
}

// Battery returns true if the cartridge has battery backed PRG RAM.
func (cart *Cartridge) Battery() bool {
	return cart.img.Battery
}

// IsInserted returns true if Insert() has completed successfully.
func (cart *Cartridge) IsInserted() bool {
	return cart.inserted
}

// Insert the cartridge by connecting its memories to the CPU and PPU buses. A
// cartridge can only be inserted once.
//
// The buses are checked before anything is connected to them, so a failed
// Insert() leaves the buses unchanged and can be retried with different
// buses.
func (cart *Cartridge) Insert(cpu memory.Triple, ppu memory.Triple) error {
	if cart.connected {
		return curated.Errorf(AlreadyInserted, cart.Name)
	}
	if err := checkBuses(cpu, ppu); err != nil {
		return curated.Errorf("cartridge: %s: %v", cart.Name, err)
	}

	// the mapper cannot be connected a second time, even if it fails part way
	cart.connected = true

	if err := cart.mapper.insert(cpu, ppu); err != nil {
		return curated.Errorf("cartridge: %s: %v", cart.Name, err)
	}
	cart.inserted = true
	return nil
}

// checkBuses makes sure that every area used by a cartridge is addressable.
func checkBuses(cpu memory.Triple, ppu memory.Triple) error {
	if !cpu.IsValid() {
		return curated.Errorf(memory.InvalidTriple, "CPU")
	}
	if !ppu.IsValid() {
		return curated.Errorf(memory.InvalidTriple, "PPU")
	}
	if _, _, err := memory.ValidateRange(cpu, memorymap.OriginPRGRAM, memorymap.MemtopPRGROM); err != nil {
		return err
	}
	if _, _, err := memory.ValidateRange(ppu, memorymap.OriginPatterns, memorymap.MemtopPatterns); err != nil {
		return err
	}
	return nil
}

// Memories returns the memories created by Insert().
func (cart *Cartridge) Memories() []*memory.Memory {
	return cart.mapper.memories()
}

// Patch changes the PRG data as though it had been changed in the file on
// disk. Offset is the offset from the start of the PRG data.
func (cart *Cartridge) Patch(offset int, data uint8) error {
	if offset < 0 || offset >= len(cart.img.PRG) {
		return curated.Errorf(PatchOutOfRange, offset, len(cart.img.PRG))
	}

	cart.img.PRG[offset] = data

	if cart.inserted {
		return cart.mapper.patch(offset, data)
	}

	return nil
}

// Reset the cartridge RAM and bank selection. RAM is randomised if rnd is
// not nil.
func (cart *Cartridge) Reset(rnd memory.Random) error {
	if !cart.inserted {
		return curated.Errorf(NotInserted, cart.Name)
	}
	cart.mapper.reset(rnd)
	return nil
}

// Dump returns a hex dump of every cartridge memory.
func (cart *Cartridge) Dump() string {
	s := strings.Builder{}
	for _, mem := range cart.mapper.memories() {
		s.WriteString(mem.String())
		s.WriteString("\n")
		s.WriteString(mem.Dump())
		s.WriteString("\n")
	}
	return s.String()
}
