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

package audio

import (
	"github.com/famibus/famibus/hardware/bus"
)

// SampleBitDepth is the bit depth of the samples produced by a Probe.
const SampleBitDepth = 16

// Probe samples the value on a Bus every time it is ticked. The value is
// scaled to a signed 16 bit sample.
type Probe struct {
	bus *bus.Bus
	buf *SampleBuffer

	// called in the emulation goroutine with every published block
	onBlock func(block []int) error
}

// NewProbe is the preferred method of initialisation for the Probe type. The
// onBlock argument can be nil.
func NewProbe(b *bus.Bus, blockSize int, onBlock func(block []int) error) (*Probe, error) {
	buf, err := NewSampleBuffer(blockSize)
	if err != nil {
		return nil, err
	}
	return &Probe{
		bus:     b,
		buf:     buf,
		onBlock: onBlock,
	}, nil
}

// Buffer returns the SampleBuffer the Probe publishes to.
func (p *Probe) Buffer() *SampleBuffer {
	return p.buf
}

// Sample converts a bus value to a signed 16 bit sample.
func Sample(value uint32, mask uint32) int {
	return int(uint64(value)*0xffff/uint64(mask)) - 0x8000
}

// OnTick implements the clocks.Listener interface.
func (p *Probe) OnTick() error {
	if !p.buf.Push(Sample(p.bus.Read(), p.bus.Mask())) {
		return nil
	}
	return p.publish()
}

// Flush publishes any samples in the current block.
func (p *Probe) Flush() error {
	if len(p.buf.back) == 0 {
		return nil
	}
	p.buf.Swap()
	return p.publish()
}

func (p *Probe) publish() error {
	if p.onBlock == nil {
		return nil
	}
	blk, _ := p.buf.Snapshot()
	return p.onBlock(blk)
}
