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

package test

import "strings"

// CompareWriter collects output so that it can be compared with an expected
// string. Use a pointer to a CompareWriter as an io.Writer.
type CompareWriter struct {
	strings.Builder
}

// Clear empties the collected output.
func (w *CompareWriter) Clear() {
	w.Reset()
}

// Compare returns true if the collected output is exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return w.String() == s
}
