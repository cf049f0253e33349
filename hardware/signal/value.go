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

package signal

import "fmt"

// Value is an enumerated signal value. Values are grouped into Domains and a
// Flag will only accept values from its own Domain.
type Value int

// List of valid signal values.
const (
	Read Value = iota
	Write
	Halt
	Start
)

func (v Value) String() string {
	switch v {
	case Read:
		return "READ"
	case Write:
		return "WRITE"
	case Halt:
		return "HALT"
	case Start:
		return "START"
	}
	return fmt.Sprintf("signal(%d)", int(v))
}

// Domain is a set of values that a Flag can carry.
type Domain struct {
	Name   string
	Values []Value
}

// Contains returns true if value is in the domain.
func (d Domain) Contains(v Value) bool {
	for _, dv := range d.Values {
		if dv == v {
			return true
		}
	}
	return false
}

// The two domains used by the console. RW is the domain of the read/write
// line of a bus. Run is the domain of the line that starts and halts the
// driving loop.
var (
	RW  = Domain{Name: "RW", Values: []Value{Read, Write}}
	Run = Domain{Name: "Run", Values: []Value{Halt, Start}}
)
