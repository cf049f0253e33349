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

// Package cartridgeloader is used to specify the data that is to be inserted
// into the emulated NES.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local-file and data over HTTP is supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/test.nes",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// Loaded data is in the iNES format. The header is decoded with ParseINES(),
// which returns a cartridge.Image ready for cartridge.NewCartridge(). The
// Image() function of the Loader does both steps.
package cartridgeloader
