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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/famibus/famibus/paths"
	"github.com/famibus/famibus/test"
)

func TestPaths(t *testing.T) {
	// run from a directory with a local resource directory so that the
	// result is predictable
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer func() {
		_ = os.Chdir(wd)
	}()

	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	test.DemandSuccess(t, os.Mkdir(".famibus", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), ".famibus/foo/bar/baz")
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), ".famibus/foo/bar")
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), ".famibus/baz")
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".famibus")

	pth, err := paths.EnsureResourcePath("audio", "test.wav")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, ".famibus/audio/test.wav")

	fi, err := os.Stat(filepath.Join(dir, ".famibus", "audio"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("audio", "test")
	test.ExpectSuccess(t, regexp.MustCompile(`^audio_test_\d{8}_\d{6}$`).MatchString(fn), fn)

	fn = paths.UniqueFilename("audio", " ")
	test.ExpectSuccess(t, regexp.MustCompile(`^audio_\d{8}_\d{6}$`).MatchString(fn), fn)
}
