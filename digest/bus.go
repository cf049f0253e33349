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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/famibus/famibus/hardware/memory"
	"github.com/famibus/famibus/hardware/signal"
)

// the length of the buffer isn't really important. that said, it needs to be
// at least sha1.Size bytes in length
const busBufferLength = 1024 + sha1.Size

// to allow digests of streams longer than busBufferLength, the previous
// digest value is stuffed into the first part of the buffer and included when
// the next digest value is created
const busBufferStart = sha1.Size

// bytes recorded on every tick: address (two bytes), data and RW
const busRecordSize = 4

// Bus implements the clocks.Listener interface. Every tick the state of a
// memory.Triple is added to the digest.
type Bus struct {
	triple   memory.Triple
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(triple memory.Triple) *Bus {
	dig := &Bus{
		triple:   triple,
		buffer:   make([]uint8, busBufferLength),
		bufferCt: busBufferStart,
	}
	return dig
}

// Hash implements the Digest interface. Recorded state that has not yet been
// folded into the digest is included.
func (dig *Bus) Hash() string {
	if dig.bufferCt == busBufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}

// ResetDigest implements the Digest interface.
func (dig *Bus) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	for i := range dig.buffer[:busBufferStart] {
		dig.buffer[i] = 0
	}
	dig.bufferCt = busBufferStart
}

// OnTick implements the clocks.Listener interface.
func (dig *Bus) OnTick() error {
	addr := dig.triple.Address.Read()
	dig.buffer[dig.bufferCt] = uint8(addr >> 8)
	dig.buffer[dig.bufferCt+1] = uint8(addr)
	dig.buffer[dig.bufferCt+2] = uint8(dig.triple.Data.Read())
	if dig.triple.RW.Value() == signal.Write {
		dig.buffer[dig.bufferCt+3] = 1
	} else {
		dig.buffer[dig.bufferCt+3] = 0
	}

	dig.bufferCt += busRecordSize
	if dig.bufferCt+busRecordSize > busBufferLength {
		dig.flush()
	}

	return nil
}

func (dig *Bus) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = busBufferStart
}
