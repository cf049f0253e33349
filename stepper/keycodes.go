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

package stepper

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3 // end-of-text character
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
)

// list of command keys
const (
	KeyStep  = ' '
	KeyTick  = 't'
	KeyFrame = 'f'
	KeyReset = 'r'
	KeyHelp  = '?'
	KeyQuit  = 'q'
)
