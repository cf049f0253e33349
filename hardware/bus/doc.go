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

// Package bus implements a value line shared by the devices attached to it.
// The address bus and the data bus of the console are both instances of Bus,
// differing only in width.
//
// A Bus is passive. Writing a value does not notify anybody. Devices learn
// that there is something to read from the bus through a change in a
// signal.Flag, and only then do they look at the bus.
//
// Writes are checked by default. A value with bits set above the width of the
// bus is an error and the bus keeps its previous value:
//
//	b, _ := bus.New(8)
//	err := b.Write(0x100) // InvalidBusData
//
// Devices that deliberately drive a narrow bus from a wider register use
// WriteMasked(), which drops the high bits and reports whether any were
// dropped.
package bus
