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

package stepper

import (
	"github.com/pkg/term"

	"github.com/famibus/famibus/curated"
)

// DefaultDevice is the terminal device opened by OpenTerminal() when no
// device is specified.
const DefaultDevice = "/dev/tty"

// TerminalError is returned when the terminal cannot be opened or restored.
const TerminalError = "stepper: terminal: %v"

// Terminal is a terminal in raw mode. It implements the io.ReadWriteCloser
// interface.
type Terminal struct {
	*term.Term
}

// OpenTerminal opens the terminal device and puts it into raw mode.
func OpenTerminal(device string) (*Terminal, error) {
	if device == "" {
		device = DefaultDevice
	}

	t, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	return &Terminal{Term: t}, nil
}

// Close restores the terminal to the mode it was in before OpenTerminal()
// and closes the device.
func (t *Terminal) Close() error {
	if err := t.Term.Restore(); err != nil {
		_ = t.Term.Close()
		return curated.Errorf(TerminalError, err)
	}
	if err := t.Term.Close(); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}
