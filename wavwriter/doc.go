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

// Package wavwriter allows writing of audio data to disk as a WAV file. The
// file is written incrementally, one block at a time, and is finalised with
// the Close() function.
//
// The Write() function has the same signature as the onBlock argument of
// audio.NewProbe() so a WavWriter can be attached directly to a Probe:
//
//	ww, _ := wavwriter.New(filename, sampleRate)
//	defer ww.Close()
//	probe, _ := audio.NewProbe(bus, 1024, ww.Write)
package wavwriter
