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

package paths

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const timestampLayout = "20060102_150405"

// UniqueFilename returns a filename made from prepend, the name of the
// cartridge and the current time. Whitespace and path separators in the
// cartridge name are replaced with underscores. The cartridge name is omitted
// if it is empty. The file is not checked for existence.
//
//	audio_smb_20261018_142501
func UniqueFilename(prepend string, cartName string) string {
	return uniqueFilename(prepend, cartName, time.Now())
}

func uniqueFilename(prepend string, cartName string, t time.Time) string {
	c := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, strings.TrimSpace(cartName))

	if c == "" {
		return fmt.Sprintf("%s_%s", prepend, t.Format(timestampLayout))
	}
	return fmt.Sprintf("%s_%s_%s", prepend, c, t.Format(timestampLayout))
}
