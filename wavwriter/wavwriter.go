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

package wavwriter

import (
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/hardware/audio"
	"github.com/famibus/famibus/logger"
)

// Error patterns.
const (
	WavWriterError = "wavwriter: %v"
	InvalidRate    = "wavwriter: invalid sample rate: %d"
)

// WAV audio format value for uncompressed PCM.
const pcmFormat = 1

// WavWriter encodes blocks of samples to a mono WAV file.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	format   *goaudio.Format
	samples  int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf(InvalidRate, sampleRate)
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(WavWriterError, err)
	}

	ww := &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, sampleRate, audio.SampleBitDepth, 1, pcmFormat),
		format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", filename)

	return ww, nil
}

// Filename returns the name of the file being written to.
func (ww *WavWriter) Filename() string {
	return ww.filename
}

// Samples returns the number of samples written so far.
func (ww *WavWriter) Samples() int {
	return ww.samples
}

// Write a block of signed 16 bit samples.
func (ww *WavWriter) Write(block []int) error {
	if ww.enc == nil {
		return curated.Errorf(WavWriterError, "writer is closed")
	}

	buf := &goaudio.IntBuffer{
		Format:         ww.format,
		Data:           block,
		SourceBitDepth: audio.SampleBitDepth,
	}

	if err := ww.enc.Write(buf); err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	ww.samples += len(block)

	return nil
}

// Close finalises the WAV header and closes the file.
func (ww *WavWriter) Close() (rerr error) {
	if ww.enc == nil {
		return nil
	}

	defer func() {
		ww.enc = nil
		if err := ww.f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	if err := ww.enc.Close(); err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d samples written to %s", ww.samples, ww.filename)

	return nil
}
