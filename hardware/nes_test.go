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

package hardware_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/environment"
	"github.com/famibus/famibus/govern"
	"github.com/famibus/famibus/hardware"
	"github.com/famibus/famibus/hardware/clocks"
	"github.com/famibus/famibus/hardware/memory/cartridge"
	"github.com/famibus/famibus/hardware/memory/mapper"
	"github.com/famibus/famibus/hardware/preferences"
	"github.com/famibus/famibus/hardware/signal"
	"github.com/famibus/famibus/test"
)

func newPrefs(t *testing.T) *preferences.Preferences {
	t.Helper()
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	return p
}

func newNES(t *testing.T) *hardware.NES {
	t.Helper()
	nes, err := hardware.NewNES(environment.MainEmulation, newPrefs(t))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, nes.Env.Normalise())
	return nes
}

// newCart returns an NROM cartridge with a reset vector of 0x8000 and 0x42 in
// the first byte of PRG.
func newCart(t *testing.T, mirroring mapper.Mirroring) *cartridge.Cartridge {
	t.Helper()
	prg := make([]uint8, 0x4000)
	prg[0x0000] = 0x42
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	cart, err := cartridge.NewCartridge(cartridge.Image{
		Name:      "test",
		PRG:       prg,
		Mirroring: mirroring,
	})
	test.DemandSuccess(t, err)
	return cart
}

// counter is a clocks.Listener that counts ticks.
type counter struct {
	n  int
	fn func(n int) error
}

func (c *counter) OnTick() error {
	c.n++
	if c.fn != nil {
		return c.fn(c.n)
	}
	return nil
}

func TestWorkRAM(t *testing.T) {
	nes := newNES(t)
	cpu := nes.CPUMaster()

	test.DemandSuccess(t, cpu.Write(0x0001, 0x42))
	for _, a := range []uint32{0x0001, 0x0801, 0x1001, 0x1801} {
		v, err := cpu.Read(a)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, uint32(0x42), a)
	}

	v, err := nes.WorkRAM.Peek(0x0001)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x42))
}

func TestInsert(t *testing.T) {
	nes := newNES(t)
	test.ExpectSuccess(t, curated.Is(nes.Start(), hardware.NoCartridge))

	test.DemandSuccess(t, nes.Insert(newCart(t, mapper.Vertical)))
	test.ExpectEquality(t, nes.String(), "NTSC run=HALT [NROM]")

	cpu := nes.CPUMaster()

	v, err := cpu.Read(0x8000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x42))

	v, err = cpu.Read(0xc000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x42))

	w, err := cpu.ReadWord(0xfffc)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0x8000))

	// vertical mirroring on the PPU bus
	ppu := nes.PPUMaster()
	test.DemandSuccess(t, ppu.Write(0x2005, 0x99))
	v, err = ppu.Read(0x2805)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x99))
	test.ExpectEquality(t, nes.VRAM.Size(), 0x0800)

	// CHR RAM
	test.DemandSuccess(t, ppu.Write(0x0123, 0x11))
	v, err = ppu.Read(0x0123)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x11))

	err = nes.Insert(newCart(t, mapper.Vertical))
	test.ExpectSuccess(t, curated.Is(err, hardware.CartridgeInserted))
}

func TestFourScreen(t *testing.T) {
	nes := newNES(t)
	test.DemandSuccess(t, nes.Insert(newCart(t, mapper.FourScreen)))
	test.ExpectEquality(t, nes.VRAM.Size(), 0x1000)

	ppu := nes.PPUMaster()
	test.DemandSuccess(t, ppu.Write(0x2c00, 0x01))
	v, err := nes.VRAM.Peek(0x0c00)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x01))
}

func TestClocks(t *testing.T) {
	nes := newNES(t)

	cpu := &counter{}
	ppu := &counter{}
	nes.AttachCPU(cpu)
	nes.AttachPPU(ppu)

	test.DemandSuccess(t, nes.RunFor(1200))
	test.ExpectEquality(t, cpu.n, 100)
	test.ExpectEquality(t, ppu.n, 300)

	test.DemandSuccess(t, nes.StepCPU())
	test.ExpectEquality(t, cpu.n, 101)
	test.ExpectEquality(t, nes.Clock.Ticks(), uint64(1212))

	test.DemandSuccess(t, nes.Step())
	test.ExpectEquality(t, nes.Clock.Ticks(), uint64(1213))

	test.DemandSuccess(t, nes.Reset())
	test.ExpectEquality(t, nes.CPUDivider.Counter(), 0)
	test.ExpectEquality(t, nes.PPUDivider.Counter(), 0)
}

func TestFrame(t *testing.T) {
	nes := newNES(t)
	test.DemandSuccess(t, nes.RunForFrameCount(1))
	test.ExpectEquality(t, nes.Clock.Ticks(), uint64(341*262*4))
	test.ExpectEquality(t, nes.PPUDivider.Ticks(), uint64(341*262))
}

func TestPAL(t *testing.T) {
	p := newPrefs(t)
	test.DemandSuccess(t, p.TVSpec.Set("PAL"))

	nes, err := hardware.NewNES(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, nes.Spec.ID, clocks.PAL.ID)
	test.ExpectEquality(t, nes.CPUDivider.Period(), 16)
	test.ExpectEquality(t, nes.PPUDivider.Period(), 5)
}

func TestRun(t *testing.T) {
	nes := newNES(t)
	test.DemandSuccess(t, nes.Insert(newCart(t, mapper.Horizontal)))

	cpu := &counter{}
	nes.AttachCPU(cpu)

	// run is a no-op while halted
	test.DemandSuccess(t, nes.Run(context.Background(), nil))
	test.ExpectEquality(t, cpu.n, 0)

	test.DemandSuccess(t, nes.Start())

	checks := 0
	err := nes.Run(context.Background(), func() (govern.State, error) {
		checks++
		if checks >= 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cpu.n, 10)

	// a listener can halt the emulation
	cpu.fn = func(n int) error {
		if n == 15 {
			return nes.Halt()
		}
		return nil
	}
	test.DemandSuccess(t, nes.Run(context.Background(), nil))
	test.ExpectEquality(t, cpu.n, 15)
	test.ExpectEquality(t, nes.RunFlag.Value(), signal.Halt)

	// cancelled context
	test.DemandSuccess(t, nes.Start())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = nes.Run(ctx, nil)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectEquality(t, cpu.n, 15)

	// a paused emulation is not ticked
	checks = 0
	err = nes.Run(context.Background(), func() (govern.State, error) {
		checks++
		if checks >= 10 {
			return govern.Ending, nil
		}
		return govern.Paused, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, checks, 10)
	test.ExpectEquality(t, cpu.n, 16)

	err = nes.Run(context.Background(), func() (govern.State, error) {
		return govern.State(-1), nil
	})
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedState))
}

func TestListenerFailure(t *testing.T) {
	nes := newNES(t)

	failure := curated.Errorf("cpu: jammed")
	nes.AttachCPU(&counter{fn: func(n int) error {
		return failure
	}})

	err := nes.StepCPU()
	test.ExpectSuccess(t, signal.IsPropagation(err))
	test.ExpectSuccess(t, curated.Has(err, "cpu: jammed"))

	// the emulation can be ticked again after a failure
	err = nes.StepCPU()
	test.ExpectSuccess(t, curated.Has(err, "cpu: jammed"))
}

func TestConcurrentTick(t *testing.T) {
	nes := newNES(t)

	var inner error
	nes.AttachCPU(&counter{fn: func(n int) error {
		inner = nes.Step()
		return nil
	}})

	test.DemandSuccess(t, nes.StepCPU())
	test.ExpectSuccess(t, curated.Is(inner, hardware.ConcurrentTick))
}

func TestWrongGoroutine(t *testing.T) {
	nes := newNES(t)
	test.ExpectSuccess(t, nes.Env.Prefs.StrictOwnership.Get().(bool))

	test.DemandSuccess(t, nes.Step())

	done := make(chan error)
	go func() {
		done <- nes.Step()
	}()
	test.ExpectSuccess(t, curated.Is(<-done, hardware.WrongGoroutine))

	// ownership can be passed on
	nes.ReleaseOwnership()
	go func() {
		done <- nes.Step()
	}()
	test.ExpectSuccess(t, <-done)

	// but the original goroutine is no longer the owner
	test.ExpectSuccess(t, curated.Is(nes.Step(), hardware.WrongGoroutine))

	// ownership is not checked if the preference is not set
	test.DemandSuccess(t, nes.Env.Prefs.StrictOwnership.Set(false))
	test.ExpectSuccess(t, nes.Step())
}

func TestForeignDriver(t *testing.T) {
	nes := newNES(t)
	test.DemandSuccess(t, nes.Env.Prefs.StrictOwnership.Set(false))
	test.DemandSuccess(t, nes.Insert(newCart(t, mapper.Horizontal)))

	cpu := nes.CPUMaster()

	// a listener is free to drive the bus and the run flag
	nes.AttachCPU(&counter{fn: func(n int) error {
		if n == 1 {
			return cpu.Write(0x0010, 0x55)
		}
		return nil
	}})

	test.DemandSuccess(t, nes.Start())

	running := make(chan bool)
	stop := make(chan bool)
	done := make(chan error)
	go func() {
		done <- nes.Run(context.Background(), func() (govern.State, error) {
			running <- true
			<-stop
			return govern.Ending, nil
		})
	}()
	<-running

	// but another goroutine cannot while the emulation is running
	test.ExpectSuccess(t, curated.Is(cpu.Write(0x0010, 0xaa), hardware.ConcurrentTick))
	_, err := nes.PPUMaster().Read(0x2000)
	test.ExpectSuccess(t, curated.Is(err, hardware.ConcurrentTick))
	test.ExpectSuccess(t, curated.Is(nes.Halt(), hardware.ConcurrentTick))
	test.ExpectSuccess(t, curated.Is(nes.Start(), hardware.ConcurrentTick))

	close(stop)
	test.DemandSuccess(t, <-done)
	test.ExpectEquality(t, nes.RunFlag.Value(), signal.Start)

	v, err := cpu.Read(0x0010)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x55))

	// with strict ownership, only the owning goroutine can drive the lines
	// even when the emulation is not running
	nes = newNES(t)
	test.DemandSuccess(t, nes.Insert(newCart(t, mapper.Horizontal)))
	test.DemandSuccess(t, nes.Start())

	errs := make(chan error)
	go func() {
		errs <- nes.CPUMaster().Write(0x0010, 0xaa)
		errs <- nes.Halt()
	}()
	test.ExpectSuccess(t, curated.Is(<-errs, hardware.WrongGoroutine))
	test.ExpectSuccess(t, curated.Is(<-errs, hardware.WrongGoroutine))
	test.ExpectEquality(t, nes.RunFlag.Value(), signal.Start)
	test.DemandSuccess(t, nes.Halt())
}

func TestSnapshot(t *testing.T) {
	nes := newNES(t)
	test.DemandSuccess(t, nes.Insert(newCart(t, mapper.Horizontal)))

	cpu := nes.CPUMaster()
	test.DemandSuccess(t, cpu.Write(0x0010, 0x01))

	state := nes.Snapshot()
	test.ExpectEquality(t, len(state.Cart), 2)

	test.DemandSuccess(t, cpu.Write(0x0010, 0x02))
	test.DemandSuccess(t, nes.Plumb(state))

	v, err := cpu.Read(0x0010)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x01))
}

func TestReset(t *testing.T) {
	nes := newNES(t)
	cpu := nes.CPUMaster()

	test.DemandSuccess(t, cpu.Write(0x0010, 0x01))
	test.DemandSuccess(t, nes.Reset())
	v, err := cpu.Read(0x0010)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x00))

	// random state
	test.DemandSuccess(t, nes.Env.Prefs.RandomState.Set(true))
	test.DemandSuccess(t, nes.Reset())

	nonZero := false
	for a := uint32(0); a < 0x0800; a++ {
		v, err := nes.WorkRAM.Peek(a)
		test.DemandSuccess(t, err)
		if v != 0 {
			nonZero = true
			break
		}
	}
	test.ExpectSuccess(t, nonZero)
}
