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

package cartridge_test

import (
	"strings"
	"testing"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/memory"
	"github.com/famibus/famibus/hardware/memory/cartridge"
	"github.com/famibus/famibus/hardware/memory/mapper"
	"github.com/famibus/famibus/hardware/signal"
	"github.com/famibus/famibus/test"
)

// buses returns a CPU and PPU triple of the correct widths.
func buses(t *testing.T) (memory.Triple, memory.Triple) {
	t.Helper()
	cpu, err := memory.NewTriple("cpu", 16, 8)
	test.DemandSuccess(t, err)
	ppu, err := memory.NewTriple("ppu", 14, 8)
	test.DemandSuccess(t, err)
	return cpu, ppu
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

// banked returns data of numBanks banks of size bytes where every byte is
// the bank number.
func banked(numBanks int, size int) []uint8 {
	d := make([]uint8, numBanks*size)
	for i := range d {
		d[i] = uint8(i / size)
	}
	return d
}

func TestUnsupported(t *testing.T) {
	_, err := cartridge.NewCartridge(cartridge.Image{MapperID: 1, PRG: make([]uint8, 0x4000)})
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))

	_, err = cartridge.NewCartridge(cartridge.Image{MapperID: 0, PRG: make([]uint8, 0x1000)})
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidSize))
	_, err = cartridge.NewCartridge(cartridge.Image{MapperID: 0, PRG: make([]uint8, 0x4000), CHR: make([]uint8, 0x1000)})
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidSize))
	_, err = cartridge.NewCartridge(cartridge.Image{MapperID: 2, PRG: make([]uint8, 0x5000)})
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidSize))
	_, err = cartridge.NewCartridge(cartridge.Image{MapperID: 3, PRG: make([]uint8, 0x4000)})
	test.ExpectSuccess(t, curated.Is(err, cartridge.InvalidSize))

	s := cartridge.SupportedMappers()
	test.ExpectEquality(t, strings.Join(s, ", "), "000 NROM, 002 UxROM, 003 CNROM")
}

func TestNROM(t *testing.T) {
	prg := make([]uint8, 0x4000)
	prg[0x0000] = 0x42
	prg[0x3fff] = 0x43

	cart, err := cartridge.NewCartridge(cartridge.Image{
		Name:      "test",
		PRG:       prg,
		Mirroring: mapper.Vertical,
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "NROM")
	test.ExpectEquality(t, cart.MapperID(), 0)
	test.ExpectEquality(t, cart.Mirroring(), mapper.Vertical)
	test.ExpectFailure(t, cart.IsInserted())

	cpu, ppu := buses(t)
	test.DemandSuccess(t, cart.Insert(cpu, ppu))
	test.ExpectSuccess(t, cart.IsInserted())

	// 16k of PRG is mirrored
	test.ExpectEquality(t, read(t, cpu, 0x8000), uint32(0x42))
	test.ExpectEquality(t, read(t, cpu, 0xc000), uint32(0x42))
	test.ExpectEquality(t, read(t, cpu, 0xbfff), uint32(0x43))
	test.ExpectEquality(t, read(t, cpu, 0xffff), uint32(0x43))

	// writing to ROM has no effect
	write(t, cpu, 0x8000, 0x99)
	test.ExpectEquality(t, read(t, cpu, 0x8000), uint32(0x42))

	// no PRG RAM without the battery flag
	test.DemandSuccess(t, cpu.Data.Write(0x11))
	test.ExpectEquality(t, read(t, cpu, 0x6000), uint32(0x11))

	// CHR RAM because there is no CHR ROM
	write(t, ppu, 0x1234, 0x56)
	test.ExpectEquality(t, read(t, ppu, 0x1234), uint32(0x56))

	test.ExpectEquality(t, len(cart.Memories()), 2)

	err = cart.Insert(cpu, ppu)
	test.ExpectSuccess(t, curated.Is(err, cartridge.AlreadyInserted))
}

func TestInsertFailure(t *testing.T) {
	cart, err := cartridge.NewCartridge(cartridge.Image{
		Name:    "test",
		PRG:     make([]uint8, 0x4000),
		Battery: true,
	})
	test.DemandSuccess(t, err)

	cpu, ppu := buses(t)

	// a PPU bus that is too narrow for the pattern tables
	narrow, err := memory.NewTriple("ppu", 8, 8)
	test.DemandSuccess(t, err)

	err = cart.Insert(cpu, narrow)
	test.ExpectSuccess(t, curated.Has(err, memory.InvalidAddressRange))
	test.ExpectFailure(t, cart.IsInserted())

	err = cart.Insert(cpu, memory.Triple{})
	test.ExpectSuccess(t, curated.Has(err, memory.InvalidTriple))

	// nothing was connected to either bus by the failed attempts
	test.ExpectEquality(t, cpu.RW.NumListeners(), 0)
	test.ExpectEquality(t, narrow.RW.NumListeners(), 0)

	// PRG, PRG RAM and CHR RAM
	test.DemandSuccess(t, cart.Insert(cpu, ppu))
	test.ExpectSuccess(t, cart.IsInserted())
	test.ExpectEquality(t, cpu.RW.NumListeners(), 2)
	test.ExpectEquality(t, ppu.RW.NumListeners(), 1)
}

func TestNROM32k(t *testing.T) {
	prg := banked(2, 0x4000)
	chr := make([]uint8, 0x2000)
	chr[0x0010] = 0x77

	cart, err := cartridge.NewCartridge(cartridge.Image{PRG: prg, CHR: chr})
	test.DemandSuccess(t, err)

	cpu, ppu := buses(t)
	test.DemandSuccess(t, cart.Insert(cpu, ppu))

	test.ExpectEquality(t, read(t, cpu, 0x8000), uint32(0))
	test.ExpectEquality(t, read(t, cpu, 0xc000), uint32(1))

	// CHR ROM can not be written to
	test.ExpectEquality(t, read(t, ppu, 0x0010), uint32(0x77))
	write(t, ppu, 0x0010, 0x00)
	test.ExpectEquality(t, read(t, ppu, 0x0010), uint32(0x77))

	// addresses outside of the CHR area are not affected
	test.DemandSuccess(t, ppu.Data.Write(0x21))
	test.ExpectEquality(t, read(t, ppu, 0x2000), uint32(0x21))
}

func TestPRGRAM(t *testing.T) {
	trainer := make([]uint8, 512)
	trainer[0] = 0xee

	cart, err := cartridge.NewCartridge(cartridge.Image{
		PRG:     make([]uint8, 0x4000),
		Battery: true,
		Trainer: trainer,
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cart.Battery())

	cpu, ppu := buses(t)
	test.DemandSuccess(t, cart.Insert(cpu, ppu))
	test.ExpectEquality(t, len(cart.Memories()), 3)

	test.ExpectEquality(t, read(t, cpu, 0x7000), uint32(0xee))

	write(t, cpu, 0x6000, 0x12)
	test.ExpectEquality(t, read(t, cpu, 0x6000), uint32(0x12))

	// reset clears the RAM but the trainer is reloaded
	test.DemandSuccess(t, cart.Reset(nil))
	test.ExpectEquality(t, read(t, cpu, 0x6000), uint32(0x00))
	test.ExpectEquality(t, read(t, cpu, 0x7000), uint32(0xee))
}

func TestUxROM(t *testing.T) {
	cart, err := cartridge.NewCartridge(cartridge.Image{
		MapperID: 2,
		PRG:      banked(8, 0x4000),
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "UxROM")

	cpu, ppu := buses(t)
	test.DemandSuccess(t, cart.Insert(cpu, ppu))

	test.ExpectEquality(t, read(t, cpu, 0x8000), uint32(0))
	test.ExpectEquality(t, read(t, cpu, 0xc000), uint32(7))

	write(t, cpu, 0x8000, 3)
	test.ExpectEquality(t, read(t, cpu, 0x8123), uint32(3))
	test.ExpectEquality(t, read(t, cpu, 0xbfff), uint32(3))
	test.ExpectEquality(t, read(t, cpu, 0xffff), uint32(7))

	// bank selection is reduced to the number of banks
	write(t, cpu, 0xf000, 9)
	test.ExpectEquality(t, read(t, cpu, 0x8000), uint32(1))

	test.DemandSuccess(t, cart.Reset(nil))
	test.ExpectEquality(t, read(t, cpu, 0x8000), uint32(0))
}

func TestCNROM(t *testing.T) {
	cart, err := cartridge.NewCartridge(cartridge.Image{
		MapperID: 3,
		PRG:      make([]uint8, 0x8000),
		CHR:      banked(4, 0x2000),
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "CNROM")

	cpu, ppu := buses(t)
	test.DemandSuccess(t, cart.Insert(cpu, ppu))

	test.ExpectEquality(t, read(t, ppu, 0x0000), uint32(0))

	write(t, cpu, 0x8000, 2)
	test.ExpectEquality(t, read(t, ppu, 0x0000), uint32(2))
	test.ExpectEquality(t, read(t, ppu, 0x1fff), uint32(2))

	write(t, cpu, 0xffff, 3)
	test.ExpectEquality(t, read(t, ppu, 0x1000), uint32(3))
}

func TestPatch(t *testing.T) {
	img := cartridge.Image{PRG: make([]uint8, 0x4000)}

	cart, err := cartridge.NewCartridge(img)
	test.DemandSuccess(t, err)

	// patch before insertion
	test.DemandSuccess(t, cart.Patch(0x0001, 0x01))

	cpu, ppu := buses(t)
	test.DemandSuccess(t, cart.Insert(cpu, ppu))
	test.ExpectEquality(t, read(t, cpu, 0x8001), uint32(0x01))

	// patch after insertion
	test.DemandSuccess(t, cart.Patch(0x0002, 0x02))
	test.ExpectEquality(t, read(t, cpu, 0xc002), uint32(0x02))

	// the original image is not changed
	test.ExpectEquality(t, img.PRG[0x0001], uint8(0))

	err = cart.Patch(0x4000, 0xff)
	test.ExpectSuccess(t, curated.Is(err, cartridge.PatchOutOfRange))

	err = cart.Patch(-1, 0xff)
	test.ExpectSuccess(t, curated.Is(err, cartridge.PatchOutOfRange))
}

func TestReset(t *testing.T) {
	cart, err := cartridge.NewCartridge(cartridge.Image{PRG: make([]uint8, 0x4000)})
	test.DemandSuccess(t, err)

	err = cart.Reset(nil)
	test.ExpectSuccess(t, curated.Is(err, cartridge.NotInserted))
}

func TestHash(t *testing.T) {
	a := cartridge.Image{PRG: make([]uint8, 0x4000)}
	b := cartridge.Image{PRG: make([]uint8, 0x4000)}
	test.ExpectEquality(t, a.Hash(), b.Hash())

	b.PRG[0] = 1
	test.ExpectInequality(t, a.Hash(), b.Hash())
}
