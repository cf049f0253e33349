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

// Package prefs facilitates the storage of preferential values in the
// famibus system. It is the configuration layer for the emulation.
//
// Preference values are stored in instances of Bool, Int or String. These
// are safe to read from any goroutine because the underlying value is stored
// atomically. Hooks can be attached to a value with SetHookPre() and
// SetHookPost(); a pre-hook returning an error prevents the value from being
// changed.
//
// Values are associated with a Disk, which is a file of key/value pairs:
//
//	dsk, err := prefs.NewDisk("famibus.prefs")
//	var randomState prefs.Bool
//	err = dsk.Add("hardware.randomState", &randomState)
//	err = dsk.Load()
//
// On disk each value is stored on its own line:
//
//	hardware.randomState :: true
//
// Many Disk instances can share the same file. Saving a Disk does not remove
// the entries of other Disk instances from the file.
//
// Values can also be set from the command line with a prefs string. The string
// is a list of key/value pairs separated by a semi-colon:
//
//	hardware.randomState::true; hardware.tvSpec::PAL
//
// The string is pushed onto the command line stack with
// PushCommandLineStack(). The next call to Load() on a Disk will take the
// values for its keys from the top of the stack in preference to the values
// in the file.
package prefs
