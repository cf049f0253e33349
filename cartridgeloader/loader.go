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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/memory/cartridge"
)

// Sentinal error patterns returned by this package.
const (
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "cartridgeloader: unexpected hash value (%s)"
	UnsupportedFile   = "cartridgeloader: unsupported file type (%s)"
)

// Loader is used to specify the cartridge to use when Insert()ing into the
// NES.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the CartridgeLoader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	ext := strings.ToUpper(path.Ext(cl.Filename))
	for _, u := range unsupportedExtensions {
		if ext == u {
			return curated.Errorf(UnsupportedFile, ext)
		}
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedHash, hash)
	}

	// not generated hash
	cl.Hash = hash

	return nil
}

// Image loads the data, if it hasn't been loaded already, and decodes it
// ready for cartridge.NewCartridge().
func (cl *Loader) Image() (cartridge.Image, error) {
	if err := cl.Load(); err != nil {
		return cartridge.Image{}, err
	}

	img, err := ParseINES(cl.Data)
	if err != nil {
		return cartridge.Image{}, curated.Errorf("cartridgeloader: %s: %v", cl.ShortName(), err)
	}
	img.Name = cl.ShortName()

	return img, nil
}
