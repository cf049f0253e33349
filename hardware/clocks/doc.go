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

// Package clocks implements the pulse sources that drive the emulation. A
// Clock calls each of its listeners once per Tick(). A Divider is a Clock
// that is also a listener of another Clock. It ticks once for every N ticks
// of its parent, and so a tree of clocks can be built where every leaf runs
// at an integer fraction of the root:
//
//	master := clocks.NewClock("master")
//	cpu, _ := clocks.NewDivider("cpu", 12)
//	ppu, _ := clocks.NewDivider("ppu", 4)
//	master.Attach(cpu)
//	master.Attach(ppu)
//
// In this example the PPU divider ticks three times for every tick of the
// CPU divider. The ratio is maintained by counting and so never drifts.
//
// Clock ticks have the same dispatch rules as signal.Flag changes: listeners
// are called in the order they were added, nested ticks resolve depth first,
// and the first failing listener stops the pulse. The failure is returned in
// a signal.PropagationError.
//
// The package also contains the clock specifications of the television
// standards supported by the console.
package clocks
