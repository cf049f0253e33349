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

// Package memory implements addressable stores that sit on a bus. A Memory
// listens to the read/write Flag of the Triple it is attached to. When the
// Flag changes, the Memory looks at the address bus and, if the address is in
// its range, either puts the stored value onto the data bus (a READ) or takes
// the value from the data bus (a WRITE).
//
// Addresses outside of the range are ignored. This is what allows many Memory
// instances to share a single Triple without any explicit decoding logic.
//
// There are two variants. RAM responds to both READ and WRITE. ROM responds
// only to READ; a WRITE to ROM is silently ignored.
//
// For debugging and testing, Peek() and Poke() access the contents directly
// without going through the signal protocol. Poke() can change the contents
// of ROM.
package memory
