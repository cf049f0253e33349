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

// Package assert contains helpers for checking assumptions about the running
// program that the type system cannot express.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It is relatively expensive and should not be called on every
// emulated clock pulse.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records which goroutine owns a resource. The zero value has no owner.
type Owner struct {
	id atomic.Uint64
}

// Claim makes the calling goroutine the owner if there is no owner yet.
// Returns true if the calling goroutine is (now) the owner.
func (o *Owner) Claim() bool {
	id := GetGoRoutineID()
	if o.id.CompareAndSwap(0, id) {
		return true
	}
	return o.id.Load() == id
}

// IsOwner returns true if the calling goroutine is the owner. A resource with
// no owner is owned by nobody.
func (o *Owner) IsOwner() bool {
	return o.id.Load() == GetGoRoutineID()
}

// Release removes ownership. The next call to Claim() from any goroutine will
// succeed.
func (o *Owner) Release() {
	o.id.Store(0)
}

// ID returns the goroutine ID of the owner. Zero if there is no owner.
func (o *Owner) ID() uint64 {
	return o.id.Load()
}
