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

// Package memorymap describes the address spaces of the NES. The CPU and the
// PPU each have their own address bus and so their own memory map.
//
// MapAddress() and MapPPUAddress() translate an address from mirror space into
// primary space and identify the area the address belongs to. Summary()
// prints the CPU memory map and is useful as a reference.
package memorymap
