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
	"bytes"
	"fmt"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/memory/cartridge"
	"github.com/famibus/famibus/hardware/memory/mapper"
	"github.com/famibus/famibus/hardware/memory/memorymap"
)

// Sentinal error patterns returned by ParseINES().
const (
	BadMagic  = "ines: bad magic: %q"
	Truncated = "ines: truncated: %s requires %d bytes but only %d remain"
)

// HeaderSize is the size of the iNES header.
const HeaderSize = 16

var magic = []byte{'N', 'E', 'S', 0x1a}

// flags in byte 6 of the header
const (
	flagVertical   = 0x01
	flagBattery    = 0x02
	flagTrainer    = 0x04
	flagFourScreen = 0x08
)

// Header is the decoded iNES header.
type Header struct {
	PRGUnits   int
	CHRUnits   int
	MapperID   int
	Mirroring  mapper.Mirroring
	Battery    bool
	Trainer    bool
	NES2       bool
	DirtyBytes bool
}

func (h Header) String() string {
	s := fmt.Sprintf("mapper %03d: %dk PRG, %dk CHR, %s", h.MapperID,
		h.PRGUnits*memorymap.PRGBankSize/1024, h.CHRUnits*memorymap.CHRBankSize/1024, h.Mirroring)
	if h.DirtyBytes {
		s = fmt.Sprintf("%s (dirty header)", s)
	}
	return s
}

// ParseHeader decodes the first HeaderSize bytes of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, curated.Errorf(Truncated, "header", HeaderSize, len(data))
	}

	if !bytes.Equal(data[:4], magic) {
		return Header{}, curated.Errorf(BadMagic, data[:4])
	}

	h := Header{
		PRGUnits: int(data[4]),
		CHRUnits: int(data[5]),
		Battery:  data[6]&flagBattery == flagBattery,
		Trainer:  data[6]&flagTrainer == flagTrainer,
		NES2:     data[7]&0x0c == 0x08,
	}

	switch {
	case data[6]&flagFourScreen == flagFourScreen:
		h.Mirroring = mapper.FourScreen
	case data[6]&flagVertical == flagVertical:
		h.Mirroring = mapper.Vertical
	default:
		h.Mirroring = mapper.Horizontal
	}

	// some old dumping tools wrote a signature into the unused bytes at the
	// end of the header. the upper nibble of the mapper number may be part of
	// that signature but it is still used. an unreliable mapper number is
	// then rejected as unsupported rather than loaded as a different mapper
	if !h.NES2 {
		for _, b := range data[12:HeaderSize] {
			if b != 0x00 {
				h.DirtyBytes = true
				break
			}
		}
	}

	h.MapperID = int(data[6]>>4) | int(data[7]&0xf0)

	return h, nil
}

// ParseINES decodes iNES data into a cartridge Image. The PRG and CHR slices
// of the Image share memory with data.
func ParseINES(data []byte) (cartridge.Image, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return cartridge.Image{}, err
	}

	img := cartridge.Image{
		MapperID:  h.MapperID,
		Mirroring: h.Mirroring,
		Battery:   h.Battery,
	}

	d := data[HeaderSize:]

	take := func(what string, n int) ([]byte, error) {
		if len(d) < n {
			return nil, curated.Errorf(Truncated, what, n, len(d))
		}
		b := d[:n]
		d = d[n:]
		return b, nil
	}

	if h.Trainer {
		img.Trainer, err = take("trainer", memorymap.TrainerSize)
		if err != nil {
			return cartridge.Image{}, err
		}
	}

	img.PRG, err = take("PRG", h.PRGUnits*memorymap.PRGBankSize)
	if err != nil {
		return cartridge.Image{}, err
	}

	img.CHR, err = take("CHR", h.CHRUnits*memorymap.CHRBankSize)
	if err != nil {
		return cartridge.Image{}, err
	}

	return img, nil
}
