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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation and builds and owns every bus,
// flag, clock and memory. The CPU and PPU are not part of this package.
// External implementations are attached to the divided clocks with AttachCPU()
// and AttachPPU() and perform bus transactions with the Master types returned
// by CPUMaster() and PPUMaster().
//
// The emulation is single threaded. Only one goroutine can tick the emulation
// at any one time and, if the StrictOwnership preference is set, only the
// goroutine that first ticked the emulation can continue to do so. The same
// rule applies to Start(), Halt(), Insert() and the bus transactions of the
// Master types, except that a listener may use them while the emulation is
// being ticked.
package hardware
