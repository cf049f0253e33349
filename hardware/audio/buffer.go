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
	"sync/atomic"

	"github.com/famibus/famibus/curated"
)

// InvalidBlockSize is returned when a SampleBuffer is created with a block
// size of less than one.
const InvalidBlockSize = "audio: invalid block size: %d"

// SampleBuffer collects samples into blocks.
type SampleBuffer struct {
	size int
	back []int

	front     atomic.Pointer[[]int]
	published atomic.Uint64
}

// NewSampleBuffer is the preferred method of initialisation for the
// SampleBuffer type.
func NewSampleBuffer(size int) (*SampleBuffer, error) {
	if size < 1 {
		return nil, curated.Errorf(InvalidBlockSize, size)
	}
	return &SampleBuffer{
		size: size,
		back: make([]int, 0, size),
	}, nil
}

// BlockSize returns the number of samples in a block.
func (sb *SampleBuffer) BlockSize() int {
	return sb.size
}

// Push adds a sample to the current block. Returns true if the block became
// full and has been published.
//
// Must only be called from the emulation goroutine.
func (sb *SampleBuffer) Push(sample int) bool {
	sb.back = append(sb.back, sample)
	if len(sb.back) < sb.size {
		return false
	}
	sb.Swap()
	return true
}

// Swap publishes the current block, even if it is not full, and starts a new
// one. An empty block is not published.
//
// Must only be called from the emulation goroutine.
func (sb *SampleBuffer) Swap() {
	if len(sb.back) == 0 {
		return
	}
	blk := sb.back
	sb.front.Store(&blk)
	sb.published.Add(1)
	sb.back = make([]int, 0, sb.size)
}

// Snapshot returns the most recently published block and the number of blocks
// that have been published so far. The block is nil if no block has been
// published. The returned block must not be modified.
//
// Safe to call from any goroutine.
func (sb *SampleBuffer) Snapshot() ([]int, uint64) {
	n := sb.published.Load()
	p := sb.front.Load()
	if p == nil {
		return nil, n
	}
	return *p, n
}
