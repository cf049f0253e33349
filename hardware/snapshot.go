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
	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/memory"
)

// State stores the contents of the NES memories. It is produced by the
// Snapshot() function and can be restored with the Plumb() function.
type State struct {
	Ticks   uint64
	WorkRAM *memory.Memory
	VRAM    *memory.Memory
	Cart    []*memory.Memory
}

// Snapshot the contents of the NES memories.
func (nes *NES) Snapshot() *State {
	s := &State{
		Ticks:   nes.Clock.Ticks(),
		WorkRAM: nes.WorkRAM.Snapshot(),
	}
	if nes.VRAM != nil {
		s.VRAM = nes.VRAM.Snapshot()
	}
	if nes.Cart != nil {
		for _, mem := range nes.Cart.Memories() {
			s.Cart = append(s.Cart, mem.Snapshot())
		}
	}
	return s
}

// Plumb copies the contents of a previously snapshotted State into the NES
// memories. The State must have been created by an NES with the same
// cartridge type. The clocks are not affected.
func (nes *NES) Plumb(state *State) error {
	if state == nil {
		panic("nes: cannot plumb in a nil state")
	}

	if err := nes.claim(); err != nil {
		return err
	}
	defer nes.release()

	if err := nes.WorkRAM.Restore(state.WorkRAM); err != nil {
		return err
	}

	if nes.VRAM != nil && state.VRAM != nil {
		if err := nes.VRAM.Restore(state.VRAM); err != nil {
			return err
		}
	}

	if nes.Cart != nil {
		mems := nes.Cart.Memories()
		if len(mems) != len(state.Cart) {
			return curated.Errorf(StateMismatch, len(state.Cart), len(mems))
		}
		for i := range mems {
			if err := mems[i].Restore(state.Cart[i]); err != nil {
				return err
			}
		}
	}

	return nil
}
