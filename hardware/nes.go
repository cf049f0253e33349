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

package hardware

import (
	"fmt"
	"math/bits"
	"sync/atomic"

	"github.com/famibus/famibus/assert"
	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/environment"
	"github.com/famibus/famibus/hardware/busmaster"
	"github.com/famibus/famibus/hardware/clocks"
	"github.com/famibus/famibus/hardware/memory"
	"github.com/famibus/famibus/hardware/memory/cartridge"
	"github.com/famibus/famibus/hardware/memory/mapper"
	"github.com/famibus/famibus/hardware/memory/memorymap"
	"github.com/famibus/famibus/hardware/preferences"
	"github.com/famibus/famibus/hardware/signal"
	"github.com/famibus/famibus/logger"
)

// Sentinal error patterns returned by this package.
const (
	ConcurrentTick    = "nes: concurrent tick: the emulation is already being ticked"
	WrongGoroutine    = "nes: wrong goroutine: the emulation is owned by goroutine %d"
	CartridgeInserted = "nes: cartridge already inserted"
	NoCartridge       = "nes: no cartridge inserted"
	StateMismatch     = "nes: state mismatch: %d cartridge memories in state for %d in cartridge"
)

// NES is the root of the emulation.
type NES struct {
	Env  *environment.Environment
	Spec clocks.Spec

	// the two buses of the console
	CPU memory.Triple
	PPU memory.Triple

	// the emulation runs while the run flag is signal.Start
	RunFlag *signal.Flag

	// the master clock and the two divided clocks
	Clock      *clocks.Clock
	CPUDivider *clocks.Divider
	PPUDivider *clocks.Divider

	WorkRAM *memory.Memory

	// VRAM is created when the cartridge is inserted because the amount
	// required depends on the nametable mirroring of the cartridge
	VRAM *memory.Memory

	Cart *cartridge.Cartridge

	// ticking is true while a goroutine is ticking the emulation or driving
	// the shared lines. ticker is the ID of that goroutine and is zero while
	// ticking is false
	ticking atomic.Bool
	ticker  atomic.Uint64

	// the goroutine that owns the emulation. only used when the
	// StrictOwnership preference is set
	owner assert.Owner
}

// NewNES creates a new NES and everything associated with the hardware. The
// prefs argument can be nil, in which case the preferences are loaded from
// the default preferences file.
func NewNES(label environment.Label, prefs *preferences.Preferences) (*NES, error) {
	var err error

	nes := &NES{
		Clock: clocks.NewClock("master"),
	}

	nes.Env, err = environment.NewEnvironment(label, nes.Clock, prefs)
	if err != nil {
		return nil, err
	}

	nes.Spec = nes.Env.Prefs.Spec()

	nes.CPU, err = memory.NewTriple("cpu", memorymap.CPUAddressWidth, memorymap.DataWidth)
	if err != nil {
		return nil, err
	}

	nes.PPU, err = memory.NewTriple("ppu", memorymap.PPUAddressWidth, memorymap.DataWidth)
	if err != nil {
		return nil, err
	}

	nes.RunFlag, err = signal.NewFlag("run", signal.Run, signal.Halt)
	if err != nil {
		return nil, err
	}

	nes.CPUDivider, err = clocks.NewDivider("cpu", nes.Spec.CPUDivider)
	if err != nil {
		return nil, err
	}

	nes.PPUDivider, err = clocks.NewDivider("ppu", nes.Spec.PPUDivider)
	if err != nil {
		return nil, err
	}

	// on a master tick where both dividers fire, the CPU sees the tick
	// before the PPU
	nes.Clock.Attach(nes.CPUDivider)
	nes.Clock.Attach(nes.PPUDivider)

	ramBus, err := memory.NewTriple("work RAM", bits.Len(memorymap.MaskWorkRAM), memorymap.DataWidth)
	if err != nil {
		return nil, err
	}

	nes.WorkRAM, err = memory.NewRAM("work RAM", ramBus, 0, memorymap.MaskWorkRAM)
	if err != nil {
		return nil, err
	}

	_, err = mapper.NewMirrored("work RAM", nes.CPU, nes.WorkRAM, memorymap.OriginWorkRAM, memorymap.MemtopWorkRAM, memorymap.MaskWorkRAM)
	if err != nil {
		return nil, err
	}

	logger.Logf(nes.Env, "nes", "created %s console", nes.Spec.ID)

	return nes, nil
}

func (nes *NES) String() string {
	s := fmt.Sprintf("%s %s", nes.Spec.ID, nes.RunFlag)
	if nes.Cart != nil {
		s = fmt.Sprintf("%s [%s]", s, nes.Cart.ID())
	}
	return s
}

// Insert a cartridge. Only one cartridge can be inserted for the lifetime of
// the NES.
func (nes *NES) Insert(cart *cartridge.Cartridge) error {
	if err := nes.claim(); err != nil {
		return err
	}
	defer nes.release()

	if nes.Cart != nil {
		return curated.Errorf(CartridgeInserted)
	}

	mirroring := cart.Mirroring()
	size := mirroring.PhysicalTables() * mapper.NametableSize

	vramBus, err := memory.NewTriple("VRAM", bits.Len(uint(size-1)), memorymap.DataWidth)
	if err != nil {
		return err
	}

	vram, err := memory.NewRAM("VRAM", vramBus, 0, size-1)
	if err != nil {
		return err
	}

	// the nametable mapper is connected after the cartridge and must not fail
	// once the cartridge is connected
	if _, _, err := memory.ValidateRange(nes.PPU, mapper.OriginNametables, mapper.MemtopNametables); err != nil {
		return err
	}

	if err := cart.Insert(nes.CPU, nes.PPU); err != nil {
		return err
	}

	if _, err := mapper.NewNametable("nametables", nes.PPU, vram, mirroring); err != nil {
		return err
	}

	nes.VRAM = vram
	nes.Cart = cart

	logger.Logf(nes.Env, "nes", "inserted %s (%s, %s mirroring)", cart.Name, cart.ID(), mirroring)

	return nil
}

// AttachCPU adds a listener to the CPU clock.
func (nes *NES) AttachCPU(l clocks.Listener) {
	nes.CPUDivider.AddListener(l)
}

// AttachPPU adds a listener to the PPU clock.
func (nes *NES) AttachPPU(l clocks.Listener) {
	nes.PPUDivider.AddListener(l)
}

// CPUMaster returns a busmaster for the CPU bus. Transactions are subject to
// the same ownership rules as ticking the emulation.
func (nes *NES) CPUMaster() *busmaster.Master {
	return busmaster.NewGuarded(nes.CPU, lines{nes})
}

// PPUMaster returns a busmaster for the PPU bus. Transactions are subject to
// the same ownership rules as ticking the emulation.
func (nes *NES) PPUMaster() *busmaster.Master {
	return busmaster.NewGuarded(nes.PPU, lines{nes})
}

// Start sets the run flag. A cartridge must be inserted.
func (nes *NES) Start() error {
	return nes.drive(func() error {
		if nes.Cart == nil {
			return curated.Errorf(NoCartridge)
		}
		return nes.RunFlag.Set(signal.Start)
	})
}

// Halt clears the run flag. Halt() can be called by a listener while the
// emulation is running but not by any other goroutine.
func (nes *NES) Halt() error {
	return nes.drive(func() error {
		return nes.RunFlag.Set(signal.Halt)
	})
}

// Reset halts the emulation and resets RAM and the dividers. RAM is
// randomised if the RandomState preference is set.
func (nes *NES) Reset() error {
	if err := nes.claim(); err != nil {
		return err
	}
	defer nes.release()

	if err := nes.Halt(); err != nil {
		return err
	}

	var rnd memory.Random
	if nes.Env.Prefs.Live.RandomState.Load() {
		rnd = nes.Env.Random
	}

	nes.WorkRAM.Reset(rnd)
	if nes.VRAM != nil {
		nes.VRAM.Reset(rnd)
	}

	if nes.Cart != nil {
		if err := nes.Cart.Reset(rnd); err != nil {
			return err
		}
	}

	nes.CPUDivider.Reset()
	nes.PPUDivider.Reset()

	logger.Log(nes.Env, "nes", "reset")

	return nil
}

// claim the right to tick the emulation.
func (nes *NES) claim() error {
	if !nes.ticking.CompareAndSwap(false, true) {
		return curated.Errorf(ConcurrentTick)
	}

	if nes.Env.Prefs.Live.StrictOwnership.Load() && !nes.owner.Claim() {
		nes.ticking.Store(false)
		return curated.Errorf(WrongGoroutine, nes.owner.ID())
	}

	nes.ticker.Store(assert.GetGoRoutineID())

	return nil
}

func (nes *NES) release() {
	nes.ticker.Store(0)
	nes.ticking.Store(false)
}

// drive runs f, which changes the value of shared lines. Unlike claim(),
// drive() can be called from inside a tick by the ticking goroutine.
func (nes *NES) drive(f func() error) error {
	if nes.ticking.Load() && nes.ticker.Load() == assert.GetGoRoutineID() {
		return f()
	}

	if err := nes.claim(); err != nil {
		return err
	}
	defer nes.release()

	return f()
}

// lines guards the transactions of a busmaster returned by CPUMaster() and
// PPUMaster().
type lines struct {
	nes *NES
}

func (l lines) Transaction(f func() error) error {
	return l.nes.drive(f)
}

// ReleaseOwnership allows a different goroutine to tick the emulation. Only
// relevant if the StrictOwnership preference is set.
func (nes *NES) ReleaseOwnership() {
	nes.owner.Release()
}
