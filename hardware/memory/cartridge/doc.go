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

// Package cartridge fully implements loading of program images into the
// emulation. Cartridge types are identified by their mapper number and
// created with NewCartridge(). The list of supported mapper numbers is
// available with SupportedMappers().
//
// A cartridge is inserted into the emulation with the Insert() function. The
// cartridge creates its memories on their own buses and connects them to the
// CPU and PPU buses with the mapper package.
//
// Patch() changes the program image in the same way as if it had been
// changed in the file on disk. This is useful for testing and for applying
// small fixes to known cartridges.
package cartridge
