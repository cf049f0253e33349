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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select a program mode, and sub-modes of that mode, with a
// different set of flags for each one.
//
// Arguments are given to the Modes type with NewArgs() and then consumed, one
// layer at a time, with Parse(). Between calls to Parse() the flags and
// sub-modes of the next layer are declared. For example (error handling
// removed for clarity):
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "INFO")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		spec := md.AddString("tv", "NTSC", "television specification")
//		_, _ = md.Parse()
//		run(*spec, md.GetArg(0))
//	}
//
// The first sub-mode in the list is the default mode. It is selected if the
// first non-flag argument does not name one of the sub-modes. Sub-mode
// comparisons are case insensitive.
//
// A "-help" flag is always available. When it is seen Parse() prints a
// description of the flags and sub-modes of the current layer to the Output
// writer and returns ParseHelp.
package modalflag
