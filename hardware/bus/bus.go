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

package bus

import (
	"fmt"

	"github.com/famibus/famibus/curated"
)

// Sentinal error patterns returned by this package.
const (
	InvalidBusWidth = "bus: invalid width: %d (must be between %d and %d bits)"
	InvalidBusData  = "bus: invalid data: %#x does not fit %d bits"
)

// The range of widths for a Bus. The upper limit leaves the sign bit of a
// host integer untouched.
const (
	MinWidth = 1
	MaxWidth = 31
)

// Bus is a value line of a fixed width. The zero value is not usable and a
// Bus should be created with New().
type Bus struct {
	width int
	mask  uint32
	value uint32
}

// New is the preferred method of initialisation for the Bus type.
func New(width int) (*Bus, error) {
	if width < MinWidth || width > MaxWidth {
		return nil, curated.Errorf(InvalidBusWidth, width, MinWidth, MaxWidth)
	}

	return &Bus{
		width: width,
		mask:  (uint32(1) << width) - 1,
	}, nil
}

func (b *Bus) String() string {
	digits := (b.width + 3) / 4
	return fmt.Sprintf("%0*x", digits, b.value)
}

// Width returns the number of bits carried by the bus.
func (b *Bus) Width() int {
	return b.width
}

// Mask returns the bits that can be set on the bus.
func (b *Bus) Mask() uint32 {
	return b.mask
}

// Read the current value on the bus.
func (b *Bus) Read() uint32 {
	return b.value
}

// Write value to the bus. The value must fit into the width of the bus. The
// bus is unchanged if an error is returned.
func (b *Bus) Write(value uint32) error {
	if value&^b.mask != 0 {
		return curated.Errorf(InvalidBusData, value, b.width)
	}
	b.value = value
	return nil
}

// WriteMasked writes the value to the bus after removing any bits that do not
// fit. Returns false if bits were removed.
func (b *Bus) WriteMasked(value uint32) bool {
	b.value = value & b.mask
	return value&^b.mask == 0
}
