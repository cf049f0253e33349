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

package mapper_test

import (
	"testing"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/bus"
	"github.com/famibus/famibus/hardware/memory"
	"github.com/famibus/famibus/hardware/memory/mapper"
	"github.com/famibus/famibus/hardware/signal"
	"github.com/famibus/famibus/test"
)

func newTriple(t *testing.T, label string, addressWidth int) memory.Triple {
	t.Helper()
	tr, err := memory.NewTriple(label, addressWidth, 8)
	test.DemandSuccess(t, err)
	return tr
}

func read(t *testing.T, tr memory.Triple, address uint32) uint32 {
	t.Helper()
	test.DemandSuccess(t, tr.Address.Write(address))
	test.DemandSuccess(t, tr.RW.Set(signal.Read))
	return tr.Data.Read()
}

func write(t *testing.T, tr memory.Triple, address uint32, data uint32) {
	t.Helper()
	test.DemandSuccess(t, tr.Address.Write(address))
	test.DemandSuccess(t, tr.Data.Write(data))
	test.DemandSuccess(t, tr.RW.Set(signal.Write))
}

func TestMirroredROM(t *testing.T) {
	outer := newTriple(t, "outer", 16)
	inner := newTriple(t, "inner", 16)

	contents := make([]uint32, 16)
	for i := range contents {
		contents[i] = uint32(i)
	}
	rom, err := memory.NewROM("rom", inner, 0x00, 0x0f, contents)
	test.DemandSuccess(t, err)

	mp, err := mapper.NewMirrored("mirror", outer, rom, 0x0000, 0x1fff, 0x07ff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mp.Translate(0x0802), uint32(0x0002))

	test.ExpectEquality(t, read(t, outer, 0x0802), uint32(0x02))
	test.ExpectEquality(t, inner.Address.Read(), uint32(0x0002))

	// address outside of the mapper range leaves the data bus unchanged
	test.ExpectEquality(t, read(t, outer, 0x4003), uint32(0x02))
	test.ExpectEquality(t, inner.Address.Read(), uint32(0x0002))

	// translated address not covered by the ROM
	test.DemandSuccess(t, inner.Data.Write(0x77))
	test.ExpectEquality(t, read(t, outer, 0x0010), uint32(0x77))
}

func TestMirroredRAM(t *testing.T) {
	outer := newTriple(t, "outer", 16)
	inner := newTriple(t, "inner", 11)

	ram, err := memory.NewRAM("ram", inner, 0x0000, 0x07ff)
	test.DemandSuccess(t, err)
	_, err = mapper.NewMirrored("mirror", outer, ram, 0x0000, 0x1fff, 0x07ff)
	test.DemandSuccess(t, err)

	write(t, outer, 0x0001, 0x42)
	for _, a := range []uint32{0x0001, 0x0801, 0x1001, 0x1801} {
		test.ExpectEquality(t, read(t, outer, a), uint32(0x42), a)
	}

	// writes through a mirror are seen everywhere
	write(t, outer, 0x1fff, 0x99)
	test.ExpectEquality(t, read(t, outer, 0x07ff), uint32(0x99))

	v, err := ram.Peek(0x07ff)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x99))

	// inner flag follows the outer flag
	test.ExpectEquality(t, inner.RW.Value(), signal.Read)
}

func TestBanked(t *testing.T) {
	outer := newTriple(t, "outer", 16)
	inner := newTriple(t, "inner", 16)

	// four banks of sixteen values. every value is the bank number
	contents := make([]uint32, 64)
	for i := range contents {
		contents[i] = uint32(i / 16)
	}
	rom, err := memory.NewROM("rom", inner, 0x00, 0x3f, contents)
	test.DemandSuccess(t, err)

	reg, err := mapper.NewBankRegister("bank", outer, 0x8000, 0xffff, 4)
	test.DemandSuccess(t, err)
	_, err = mapper.NewBanked("switchable", outer, rom, 0x8000, 0x800f, reg, 0x10)
	test.DemandSuccess(t, err)
	_, err = mapper.NewFixed("fixed", outer, rom, 0xc000, 0xc00f, 3, 0x10)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, read(t, outer, 0x8005), uint32(0))
	test.ExpectEquality(t, read(t, outer, 0xc005), uint32(3))

	write(t, outer, 0x8000, 0x02)
	test.ExpectEquality(t, reg.Bank(), 2)
	test.ExpectEquality(t, read(t, outer, 0x8005), uint32(2))
	test.ExpectEquality(t, read(t, outer, 0xc005), uint32(3))

	// bank number is reduced to the number of banks
	write(t, outer, 0xffff, 0x05)
	test.ExpectEquality(t, reg.Bank(), 1)
	test.ExpectEquality(t, read(t, outer, 0x800f), uint32(1))

	// reading from the register range does not change the bank
	test.ExpectEquality(t, read(t, outer, 0xd000), uint32(1))
	test.ExpectEquality(t, reg.Bank(), 1)

	reg.SetBank(7)
	test.ExpectEquality(t, reg.Bank(), 3)
	reg.Reset()
	test.ExpectEquality(t, reg.Bank(), 0)

	_, err = mapper.NewBankRegister("bank", outer, 0x8000, 0xffff, 0)
	test.ExpectSuccess(t, curated.Is(err, mapper.InvalidBankCount))
}

func TestNametableTranslation(t *testing.T) {
	type entry struct {
		mode    mapper.Mirroring
		address uint32
		expect  uint32
	}

	for _, e := range []entry{
		{mapper.Horizontal, 0x2000, 0x0000},
		{mapper.Horizontal, 0x2405, 0x0005},
		{mapper.Horizontal, 0x2805, 0x0405},
		{mapper.Horizontal, 0x2c05, 0x0405},
		{mapper.Vertical, 0x2405, 0x0405},
		{mapper.Vertical, 0x2805, 0x0005},
		{mapper.Vertical, 0x2c05, 0x0405},
		{mapper.SingleScreenLow, 0x2c05, 0x0005},
		{mapper.SingleScreenHigh, 0x2005, 0x0405},
		{mapper.FourScreen, 0x2c05, 0x0c05},
		{mapper.FourScreen, 0x3c05, 0x0c05},
		{mapper.Vertical, 0x3005, 0x0005},
	} {
		nt := mapper.Nametable{Mode: e.mode}
		test.ExpectEquality(t, nt.Translate(e.address), e.expect, e.mode, e.address)
	}

	test.ExpectEquality(t, mapper.FourScreen.PhysicalTables(), 4)
	test.ExpectEquality(t, mapper.Horizontal.PhysicalTables(), 2)
}

func TestNametableMapper(t *testing.T) {
	ppu := newTriple(t, "ppu", 14)
	vbus := newTriple(t, "vram", 11)

	vram, err := memory.NewRAM("vram", vbus, 0x0000, 0x07ff)
	test.DemandSuccess(t, err)
	_, err = mapper.NewNametable("nametables", ppu, vram, mapper.Vertical)
	test.DemandSuccess(t, err)

	write(t, ppu, 0x2010, 0xab)
	test.ExpectEquality(t, read(t, ppu, 0x2810), uint32(0xab))
	test.ExpectEquality(t, read(t, ppu, 0x3010), uint32(0xab))
	test.ExpectEquality(t, read(t, ppu, 0x2410), uint32(0x00))
}

func TestRelayError(t *testing.T) {
	outer := newTriple(t, "outer", 16)
	inner := newTriple(t, "inner", 4)

	ram, err := memory.NewRAM("ram", inner, 0x00, 0x0f)
	test.DemandSuccess(t, err)
	_, err = mapper.NewMirrored("mirror", outer, ram, 0x0000, 0x1fff, 0x07ff)
	test.DemandSuccess(t, err)

	// translated address fits the inner bus
	test.ExpectEquality(t, read(t, outer, 0x0803), uint32(0))

	// translated address does not fit the inner bus
	test.DemandSuccess(t, outer.Address.Write(0x0010))
	err = outer.RW.Set(signal.Read)
	test.ExpectSuccess(t, signal.IsPropagation(err))
	test.ExpectSuccess(t, curated.Has(err, mapper.RelayError))
	test.ExpectSuccess(t, curated.Has(err, bus.InvalidBusData))
}

func TestInvalidRange(t *testing.T) {
	outer := newTriple(t, "outer", 16)
	inner := newTriple(t, "inner", 16)

	_, err := mapper.New("bad", outer, inner, 0x2000, 0x1fff, mapper.Mask(0xff))
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddressRange))

	_, err = mapper.New("bad", outer, memory.Triple{}, 0x0000, 0x1fff, mapper.Mask(0xff))
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidTriple))

	mp, err := mapper.New("offset", outer, inner, 0x6000, 0x7fff, mapper.Offset(0x6000))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mp.Translate(0x6123), uint32(0x0123))
	test.ExpectEquality(t, mp.String(), "offset 0x6000-0x7fff")

	mo := mapper.MirroredOffset{First: 0x8000, Mask: 0x3fff}
	test.ExpectEquality(t, mo.Translate(0xc123), uint32(0x0123))
}
