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

// Package patch is used to patch the program data of a cartridge. Patches are
// plain text files with one patch per line:
//
//	- lines beginning with a hyphen are comments
//	0x0010: ea ea
//	3ffc: 00 80
//
// The offset is the position in the PRG data, as it is in the iNES file but
// without the header. Values are hexadecimal bytes written to consecutive
// offsets.
//
// Patch files named without a directory are looked for in the current
// directory and then in the "patches" resource directory.
package patch
