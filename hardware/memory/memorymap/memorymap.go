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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case WorkRAM:
		return "Work RAM"
	case PPURegisters:
		return "PPU registers"
	case APU:
		return "APU and IO"
	case Expansion:
		return "Expansion"
	case PRGRAM:
		return "PRG RAM"
	case PRGROM:
		return "PRG ROM"
	case Patterns:
		return "Patterns"
	case Nametables:
		return "Nametables"
	case Palette:
		return "Palette"
	}

	return "undefined"
}

// The different memory areas in the NES. The first group is on the CPU bus
// and the second group is on the PPU bus.
const (
	Undefined Area = iota
	WorkRAM
	PPURegisters
	APU
	Expansion
	PRGRAM
	PRGROM

	Patterns
	Nametables
	Palette
)

// Bus widths of the CPU and PPU.
const (
	CPUAddressWidth = 16
	PPUAddressWidth = 14
	DataWidth       = 8
)

// The origin and memory top for each area of the CPU bus.
const (
	OriginWorkRAM      = 0x0000
	MemtopWorkRAM      = 0x1fff
	OriginPPURegisters = 0x2000
	MemtopPPURegisters = 0x3fff
	OriginAPU          = 0x4000
	MemtopAPU          = 0x401f
	OriginExpansion    = 0x4020
	MemtopExpansion    = 0x5fff
	OriginPRGRAM       = 0x6000
	MemtopPRGRAM       = 0x7fff
	OriginPRGROM       = 0x8000
	MemtopPRGROM       = 0xffff
)

// The origin and memory top for each area of the PPU bus. The palette area is
// included for completeness. Addresses above 0x3fff are mirrors of the whole
// PPU space.
const (
	OriginPatterns   = 0x0000
	MemtopPatterns   = 0x1fff
	OriginNametables = 0x2000
	MemtopNametables = 0x3eff
	OriginPalette    = 0x3f00
	MemtopPalette    = 0x3fff
)

// The physical size of areas that are mirrored.
const (
	WorkRAMSize     = 0x0800
	NametableSize   = 0x0400
	PRGBankSize     = 0x4000
	CHRBankSize     = 0x2000
	PRGRAMSize      = 0x2000
	TrainerSize     = 0x0200
	TrainerLocation = 0x7000
)

// Masks keep only the bits of an address that are relevant to a mirrored
// area. They should only be applied to addresses that are definitely in the
// area.
const (
	MaskWorkRAM      = WorkRAMSize - 1
	MaskPPURegisters = 0x2007
	MaskPalette      = 0x3f1f
	MaskPPU          = 0x3fff
)

// MapAddress translates a CPU address from mirror space to primary space and
// returns the area of the address.
func MapAddress(address uint32) (uint32, Area) {
	address &= MemtopPRGROM

	// note that the order of these filters is important
	switch {
	case address >= OriginPRGROM:
		return address, PRGROM
	case address >= OriginPRGRAM:
		return address, PRGRAM
	case address >= OriginExpansion:
		return address, Expansion
	case address >= OriginAPU:
		return address, APU
	case address >= OriginPPURegisters:
		return address & MaskPPURegisters, PPURegisters
	}

	return address & MaskWorkRAM, WorkRAM
}

// MapPPUAddress translates a PPU address from mirror space to primary space
// and returns the area of the address. Nametable mirroring depends on the
// cartridge and is not applied here beyond the 0x3000 mirror of 0x2000.
func MapPPUAddress(address uint32) (uint32, Area) {
	address &= MaskPPU

	switch {
	case address >= OriginPalette:
		return address & MaskPalette, Palette
	case address >= OriginNametables:
		return OriginNametables + (address-OriginNametables)&0x0fff, Nametables
	}

	return address, Patterns
}

// IsArea returns true if the CPU address is in the specified area.
func IsArea(address uint32, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
