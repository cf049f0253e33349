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

package memory

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/signal"
)

// Sentinal error patterns returned by this package.
const (
	InvalidAddressRange = "memory: invalid address range: %#x to %#x"
	SizeMismatch        = "memory: size mismatch: %d values for %d addresses"
	AddressOutOfRange   = "memory: address %#x is outside of %s"
	InvalidTriple       = "memory: incomplete bus triple for %s"
)

// Random is the source of random numbers used when resetting RAM.
type Random interface {
	Intn(n int) int
}

// Memory is an addressable store covering the range origin to memtop
// (inclusive).
type Memory struct {
	label    string
	triple   Triple
	origin   uint32
	memtop   uint32
	readOnly bool
	contents []uint32
}

// ValidateRange checks that an address range is usable by a device on an
// address bus of the given Triple. The returned values are the range as bus
// values.
func ValidateRange(triple Triple, origin int, memtop int) (uint32, uint32, error) {
	if origin < 0 || memtop <= origin {
		return 0, 0, curated.Errorf(InvalidAddressRange, origin, memtop)
	}
	if triple.Address != nil && memtop > int(triple.Address.Mask()) {
		return 0, 0, curated.Errorf(InvalidAddressRange, origin, memtop)
	}
	return uint32(origin), uint32(memtop), nil
}

func newMemory(label string, triple Triple, origin int, memtop int, contents []uint32, readOnly bool) (*Memory, error) {
	if !triple.IsValid() {
		return nil, curated.Errorf(InvalidTriple, label)
	}

	o, m, err := ValidateRange(triple, origin, memtop)
	if err != nil {
		return nil, err
	}

	size := memtop - origin + 1
	if contents == nil {
		contents = make([]uint32, size)
	} else if len(contents) != size {
		return nil, curated.Errorf(SizeMismatch, len(contents), size)
	} else {
		c := make([]uint32, size)
		copy(c, contents)
		contents = c
	}

	mem := &Memory{
		label:    label,
		triple:   triple,
		origin:   o,
		memtop:   m,
		readOnly: readOnly,
		contents: contents,
	}

	triple.RW.AddListener(mem)

	return mem, nil
}

// NewRAM creates a zero filled RAM covering origin to memtop. The RAM is added
// as a listener to the RW Flag of the Triple.
func NewRAM(label string, triple Triple, origin int, memtop int) (*Memory, error) {
	return newMemory(label, triple, origin, memtop, nil, false)
}

// NewRAMWithContents is like NewRAM but the RAM starts with a copy of the
// contents. The number of values must be exactly the size of the range.
func NewRAMWithContents(label string, triple Triple, origin int, memtop int, contents []uint32) (*Memory, error) {
	if contents == nil {
		contents = []uint32{}
	}
	return newMemory(label, triple, origin, memtop, contents, false)
}

// NewROM creates a ROM covering origin to memtop with a copy of the contents.
// The number of values must be exactly the size of the range.
func NewROM(label string, triple Triple, origin int, memtop int, contents []uint32) (*Memory, error) {
	if contents == nil {
		contents = []uint32{}
	}
	return newMemory(label, triple, origin, memtop, contents, true)
}

// FromBytes converts byte data to the value type used by Memory.
func FromBytes(data []uint8) []uint32 {
	c := make([]uint32, len(data))
	for i, d := range data {
		c[i] = uint32(d)
	}
	return c
}

// Label returns the name given to the Memory at creation.
func (mem *Memory) Label() string {
	return mem.label
}

func (mem *Memory) String() string {
	kind := "RAM"
	if mem.readOnly {
		kind = "ROM"
	}
	return fmt.Sprintf("%s %s %#04x-%#04x", mem.label, kind, mem.origin, mem.memtop)
}

// Dump returns a hex dump of the contents. Values wider than eight bits are
// truncated in the dump.
func (mem *Memory) Dump() string {
	b := make([]byte, len(mem.contents))
	for i, v := range mem.contents {
		b[i] = byte(v)
	}
	return strings.TrimSuffix(hex.Dump(b), "\n")
}

// Triple returns the lines the Memory is attached to.
func (mem *Memory) Triple() Triple {
	return mem.triple
}

// Origin returns the first address of the Memory.
func (mem *Memory) Origin() uint32 {
	return mem.origin
}

// Memtop returns the last address of the Memory.
func (mem *Memory) Memtop() uint32 {
	return mem.memtop
}

// Size returns the number of addresses covered by the Memory.
func (mem *Memory) Size() int {
	return len(mem.contents)
}

// ReadOnly returns true for ROM.
func (mem *Memory) ReadOnly() bool {
	return mem.readOnly
}

// Contains returns true if address is in the range of the Memory.
func (mem *Memory) Contains(address uint32) bool {
	return address >= mem.origin && address <= mem.memtop
}

// OnFlagChange implements the signal.FlagListener interface.
func (mem *Memory) OnFlagChange(v signal.Value, f *signal.Flag) error {
	if f != mem.triple.RW {
		return nil
	}

	address := mem.triple.Address.Read()
	if !mem.Contains(address) {
		return nil
	}
	idx := address - mem.origin

	switch v {
	case signal.Read:
		if err := mem.triple.Data.Write(mem.contents[idx]); err != nil {
			return curated.Errorf("memory: %s: %v", mem.label, err)
		}
	case signal.Write:
		if !mem.readOnly {
			mem.contents[idx] = mem.triple.Data.Read()
		}
	}

	return nil
}

// Peek returns the value at address without using the bus.
func (mem *Memory) Peek(address uint32) (uint32, error) {
	if !mem.Contains(address) {
		return 0, curated.Errorf(AddressOutOfRange, address, mem)
	}
	return mem.contents[address-mem.origin], nil
}

// Poke changes the value at address without using the bus. Poke() works for
// ROM as well as RAM. The value is not checked against the width of the data
// bus.
func (mem *Memory) Poke(address uint32, value uint32) error {
	if !mem.Contains(address) {
		return curated.Errorf(AddressOutOfRange, address, mem)
	}
	mem.contents[address-mem.origin] = value
	return nil
}

// Snapshot returns a copy of the Memory. The copy is not attached to the RW
// Flag and so does not take part in bus transactions.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.contents = make([]uint32, len(mem.contents))
	copy(n.contents, mem.contents)
	return &n
}

// Reset RAM contents to zero or, if rnd is not nil, to random values that fit
// the data bus. ROM is not affected.
func (mem *Memory) Reset(rnd Random) {
	if mem.readOnly {
		return
	}
	for i := range mem.contents {
		if rnd != nil {
			mem.contents[i] = uint32(rnd.Intn(int(mem.triple.Data.Mask()) + 1))
		} else {
			mem.contents[i] = 0
		}
	}
}

// Restore copies the contents of a Snapshot() back into the Memory. The
// snapshot must be of a Memory of the same size.
func (mem *Memory) Restore(snapshot *Memory) error {
	if len(snapshot.contents) != len(mem.contents) {
		return curated.Errorf(SizeMismatch, len(snapshot.contents), len(mem.contents))
	}
	copy(mem.contents, snapshot.contents)
	return nil
}
