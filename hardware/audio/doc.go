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

// Package audio collects samples in the emulation goroutine and publishes
// them in blocks for other goroutines to read.
//
// The SampleBuffer type is written to only by the goroutine that ticks the
// emulation. When a block is full it is published with an atomic pointer and
// a new block is started. The published block is never written to again and
// so Snapshot() can be called from any goroutine without locking.
//
// The Probe type is a clocks.Listener that samples the value on a bus every
// time it is ticked. Attach it to a clocks.Divider to choose the sample rate.
package audio
