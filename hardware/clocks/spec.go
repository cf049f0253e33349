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

package clocks

import (
	"strings"

	"github.com/famibus/famibus/curated"
)

// UnknownSpec is returned by SpecByID() for an unrecognised television
// standard.
const UnknownSpec = "clocks: unknown television specification: %s"

// Spec describes the timing of a television standard as it applies to the
// console.
type Spec struct {
	ID string

	// master crystal frequency in MHz
	Master float64

	// number of master clock ticks per CPU cycle and per PPU dot
	CPUDivider int
	PPUDivider int

	// number of PPU dots in a frame. the short odd frame of the NTSC PPU is
	// not accounted for
	DotsPerFrame int
}

// MasterTicksPerFrame returns the number of master clock ticks in one frame.
func (s Spec) MasterTicksPerFrame() int {
	return s.DotsPerFrame * s.PPUDivider
}

// CPU returns the CPU frequency in MHz.
func (s Spec) CPU() float64 {
	return s.Master / float64(s.CPUDivider)
}

// PPU returns the PPU frequency in MHz.
func (s Spec) PPU() float64 {
	return s.Master / float64(s.PPUDivider)
}

// The supported television specifications.
var (
	NTSC = Spec{
		ID:           "NTSC",
		Master:       21.477272,
		CPUDivider:   12,
		PPUDivider:   4,
		DotsPerFrame: 341 * 262,
	}

	PAL = Spec{
		ID:           "PAL",
		Master:       26.601712,
		CPUDivider:   16,
		PPUDivider:   5,
		DotsPerFrame: 341 * 312,
	}
)

// SpecByID returns the Spec for the named television standard. The name is
// not case sensitive.
func SpecByID(id string) (Spec, error) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "NTSC", "":
		return NTSC, nil
	case "PAL":
		return PAL, nil
	}
	return Spec{}, curated.Errorf(UnknownSpec, id)
}
