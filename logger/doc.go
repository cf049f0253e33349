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

// Package logger is the central log for the emulation. There is only one log
// for the whole application and it holds a bounded number of entries. Entries
// have a tag, usually the name of the package making the entry, and a detail
// string.
//
// Consecutive entries with the same tag and detail are folded into one entry
// with a repeat count. This is useful when a badly behaved program causes the
// same condition every frame.
//
// Logging requests take a Permission argument. The emulation Environment
// implements Permission so that secondary emulations can be prevented from
// filling the log. Use logger.Allow when the entry should always be made.
package logger
