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
	"errors"
	"fmt"
	"io"

	"github.com/famibus/famibus/hardware"
	"github.com/famibus/famibus/logger"
)

const help = "space/return: cpu cycle   t: master tick   f: frame   r: reset   q: quit"

// Stepper reads commands from the input and steps the emulation accordingly.
type Stepper struct {
	nes    *hardware.NES
	input  io.Reader
	output io.Writer

	// number of commands that stepped the emulation
	steps int
}

// NewStepper is the preferred method of initialisation for the Stepper type.
func NewStepper(nes *hardware.NES, input io.Reader, output io.Writer) *Stepper {
	return &Stepper{
		nes:    nes,
		input:  input,
		output: output,
	}
}

// Steps returns the number of commands that have stepped the emulation.
func (s *Stepper) Steps() int {
	return s.steps
}

// output terminals are in raw mode so every line ends with a carriage return
func (s *Stepper) printLine(format string, args ...interface{}) {
	s.output.Write([]byte(fmt.Sprintf(format, args...)))
	s.output.Write([]byte("\r\n"))
}

// Status returns a single line description of the emulation.
func (s *Stepper) Status() string {
	return fmt.Sprintf("%s  master=%d cpu=%d ppu=%d  addr=%04x data=%02x %s",
		s.nes,
		s.nes.Clock.Ticks(), s.nes.CPUDivider.Ticks(), s.nes.PPUDivider.Ticks(),
		s.nes.CPU.Address.Read(), s.nes.CPU.Data.Read(), s.nes.CPU.RW.Value())
}

// Loop reads and acts on commands until the quit command is received or the
// input is exhausted.
func (s *Stepper) Loop() error {
	s.printLine(help)
	s.printLine(s.Status())

	b := make([]byte, 1)
	for {
		n, err := s.input.Read(b)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if n == 0 {
			continue
		}

		quit, err := s.command(b[0])
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (s *Stepper) command(key byte) (bool, error) {
	var err error

	switch key {
	case KeyQuit, KeyInterrupt, KeyEsc:
		return true, nil
	case KeyHelp, 'h':
		s.printLine(help)
		return false, nil
	case KeyStep, KeyCarriageReturn, KeyLineFeed:
		err = s.nes.StepCPU()
	case KeyTick:
		err = s.nes.Step()
	case KeyFrame:
		err = s.nes.RunForFrameCount(1)
	case KeyReset:
		err = s.nes.Reset()
		if err == nil {
			logger.Log(s.nes.Env, "stepper", "reset")
		}
	default:
		return false, nil
	}

	if err != nil {
		return false, err
	}

	s.steps++
	s.printLine(s.Status())

	return false, nil
}
