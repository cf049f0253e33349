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

package preferences

import (
	"sync/atomic"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/clocks"
	"github.com/famibus/famibus/paths"
	"github.com/famibus/famibus/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// InvalidAudioBlock is returned when the AudioBlock preference is set to
// fewer than one sample.
const InvalidAudioBlock = "preferences: invalid audio block: %v samples"

// LivePreferences encapsulates the current (live) values of preferences that
// are used in performance critical code.
type LivePreferences struct {
	StrictOwnership atomic.Bool
	RandomState     atomic.Bool
}

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// Prefer live values in performance critical code
	Live LivePreferences

	// initialise RAM to an unknown state after reset
	RandomState prefs.Bool

	// check that the emulation is only ever stepped by one goroutine
	StrictOwnership prefs.Bool

	// the clock specification to use. one of the IDs in the clocks package
	TVSpec prefs.String

	// number of samples in each block of audio
	AudioBlock prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the default preferences file in the
// resource directory.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.RandomState.SetHookPost(func(v prefs.Value) error {
		p.Live.RandomState.Store(v.(bool))
		return nil
	})
	p.StrictOwnership.SetHookPost(func(v prefs.Value) error {
		p.Live.StrictOwnership.Store(v.(bool))
		return nil
	})
	p.TVSpec.SetHookPre(func(v prefs.Value) error {
		_, err := clocks.SpecByID(v.(string))
		return err
	})
	p.AudioBlock.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(InvalidAudioBlock, v)
		}
		return nil
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	if pth == "" {
		pth = paths.ResourcePath(DefaultPrefsFile)
	}

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.strictownership", &p.StrictOwnership)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.tvspec", &p.TVSpec)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.audioblock", &p.AudioBlock)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.RandomState.Set(false); err != nil {
		return err
	}
	if err := p.StrictOwnership.Set(true); err != nil {
		return err
	}
	if err := p.TVSpec.Set(clocks.NTSC.ID); err != nil {
		return err
	}
	return p.AudioBlock.Set(1024)
}

// Spec returns the clock specification named by the TVSpec preference.
func (p *Preferences) Spec() clocks.Spec {
	spec, err := clocks.SpecByID(p.TVSpec.String())
	if err != nil {
		return clocks.NTSC
	}
	return spec
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
