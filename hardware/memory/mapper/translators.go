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

import "fmt"

// Mask translates by keeping only the masked bits of the address.
type Mask uint32

// Translate implements the Translator interface.
func (m Mask) Translate(address uint32) uint32 {
	return address & uint32(m)
}

// Offset translates an address to its distance from the first address of a
// window.
type Offset uint32

// Translate implements the Translator interface.
func (o Offset) Translate(address uint32) uint32 {
	return address - uint32(o)
}

// MirroredOffset is like Offset but the result is masked. Used for windows
// that are larger than the device behind them.
type MirroredOffset struct {
	First uint32
	Mask  uint32
}

// Translate implements the Translator interface.
func (mo MirroredOffset) Translate(address uint32) uint32 {
	return (address - mo.First) & mo.Mask
}

// Banked translates an address in a window starting at First into the bank
// selected by Register. If Register is nil the value of Bank is used.
type Banked struct {
	Register *BankRegister
	Bank     int
	BankSize uint32
	First    uint32
}

// Translate implements the Translator interface.
func (b Banked) Translate(address uint32) uint32 {
	bank := b.Bank
	if b.Register != nil {
		bank = b.Register.Bank()
	}
	return uint32(bank)*b.BankSize + address - b.First
}

// Mirroring describes how the four logical nametables of the PPU are arranged
// in the physical nametable RAM.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	SingleScreenLow
	SingleScreenHigh
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SingleScreenLow:
		return "single screen (low)"
	case SingleScreenHigh:
		return "single screen (high)"
	case FourScreen:
		return "four screen"
	}
	return fmt.Sprintf("mirroring(%d)", int(m))
}

// PhysicalTables returns the number of physical nametables required by the
// mirroring arrangement. The console has enough RAM for two tables. Four
// screen mirroring requires additional RAM on the cartridge.
func (m Mirroring) PhysicalTables() int {
	if m == FourScreen {
		return 4
	}
	return 2
}

// The nametable area of the PPU bus and the size of a single nametable.
const (
	OriginNametables = 0x2000
	MemtopNametables = 0x3eff
	NametableSize    = 0x0400
)

// Nametable translates an address in the nametable area of the PPU bus to an
// address in the physical nametable RAM. The area 0x3000 to 0x3eff is a
// mirror of 0x2000 to 0x2eff.
type Nametable struct {
	Mode Mirroring
}

// Translate implements the Translator interface.
func (nt Nametable) Translate(address uint32) uint32 {
	a := (address - OriginNametables) & 0x0fff
	table := a / NametableSize
	offset := a % NametableSize

	switch nt.Mode {
	case Horizontal:
		table >>= 1
	case Vertical:
		table &= 0x01
	case SingleScreenLow:
		table = 0
	case SingleScreenHigh:
		table = 1
	}

	return table*NametableSize + offset
}
