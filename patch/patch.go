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

package patch

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/memory/cartridge"
	"github.com/famibus/famibus/logger"
	"github.com/famibus/famibus/paths"
)

// Sentinal error patterns.
const (
	PatchError = "patch: %v"
	BadLine    = "patch: line %d: %s"
)

const patchPath = "patches"

const commentLeader = "-"
const offsetSeparator = ":"

// CartridgeMemory applies the named patch file to the cartridge. It returns
// the number of bytes patched.
func CartridgeMemory(cart *cartridge.Cartridge, patchFile string) (int, error) {
	f, err := open(patchFile)
	if err != nil {
		return 0, curated.Errorf(PatchError, err)
	}
	defer f.Close()

	n, err := Apply(cart, f)
	if err != nil {
		return n, err
	}

	logger.Logf(logger.Allow, "patch", "%d bytes patched in %s from %s", n, cart.Name, f.Name())

	return n, nil
}

func open(patchFile string) (*os.File, error) {
	f, err := os.Open(patchFile)
	if err == nil || filepath.Base(patchFile) != patchFile || !errors.Is(err, fs.ErrNotExist) {
		return f, err
	}
	return os.Open(paths.ResourcePath(patchPath, patchFile))
}

// Apply patches from the reader to the cartridge. It returns the number of
// bytes patched. Patching stops at the first error.
func Apply(cart *cartridge.Cartridge, r io.Reader) (int, error) {
	var n int

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentLeader) {
			continue
		}

		p := strings.SplitN(line, offsetSeparator, 2)
		if len(p) != 2 {
			return n, curated.Errorf(BadLine, lineNum, "missing offset separator")
		}

		offset, err := strconv.ParseUint(trimHex(p[0]), 16, 32)
		if err != nil {
			return n, curated.Errorf(BadLine, lineNum, err)
		}

		values := strings.Fields(p[1])
		if len(values) == 0 {
			return n, curated.Errorf(BadLine, lineNum, "no values")
		}

		for i, s := range values {
			v, err := strconv.ParseUint(trimHex(s), 16, 8)
			if err != nil {
				return n, curated.Errorf(BadLine, lineNum, err)
			}
			if err := cart.Patch(int(offset)+i, uint8(v)); err != nil {
				return n, curated.Errorf(BadLine, lineNum, err)
			}
			n++
		}
	}

	if err := scanner.Err(); err != nil {
		return n, curated.Errorf(PatchError, err)
	}

	return n, nil
}

func trimHex(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	return strings.TrimPrefix(s, "0X")
}
