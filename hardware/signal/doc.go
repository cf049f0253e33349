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

// Package signal implements the Flag type, an enumerated signal line. A Flag
// is the causal backbone of the emulation: a device performs a transaction
// by driving the address and data buses and then changing a Flag. Every
// device listening to the Flag is told about the change before Set()
// returns.
//
// Listeners are called in the order in which they were added. A listener can
// itself change a Flag (the same Flag or another one). The nested change is
// dispatched completely, depth first, before the next listener of the outer
// change is called. Changes are never queued.
//
// The first listener to return an error stops the dispatch. Listeners after
// the failing listener are not called and the error is returned to the caller
// of Set() wrapped in a PropagationError. The PropagationError type is also
// used by the clocks package for the same purpose.
package signal
