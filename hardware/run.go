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

package hardware

import (
	"context"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/govern"
	"github.com/famibus/famibus/hardware/signal"
)

// Step the emulation by one tick of the master clock.
func (nes *NES) Step() error {
	if err := nes.claim(); err != nil {
		return err
	}
	defer nes.release()

	return nes.Clock.Tick()
}

// StepCPU steps the emulation until the CPU clock has ticked once.
func (nes *NES) StepCPU() error {
	if err := nes.claim(); err != nil {
		return err
	}
	defer nes.release()

	return nes.stepCPU()
}

func (nes *NES) stepCPU() error {
	target := nes.CPUDivider.Ticks() + 1
	for nes.CPUDivider.Ticks() < target {
		if err := nes.Clock.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// RunFor steps the emulation for the specified number of master clock ticks.
func (nes *NES) RunFor(ticks int) error {
	if err := nes.claim(); err != nil {
		return err
	}
	defer nes.release()

	return nes.Clock.TickN(ticks)
}

// RunForFrameCount steps the emulation for the specified number of frames.
func (nes *NES) RunForFrameCount(numFrames int) error {
	return nes.RunFor(numFrames * nes.Spec.MasterTicksPerFrame())
}

// UnsupportedState is returned by Run() when the continue check returns a
// State that the function does not handle.
const UnsupportedState = "nes: unsupported emulation state (%s) in Run() function"

// While the continueCheck() function only runs at the end of a CPU cycle, it
// can still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The emulation runs
// while the run flag is signal.Start, until the continueCheck() function
// returns govern.Ending, or until the context is cancelled. The context is
// only checked between CPU cycles.
//
// A continueCheck() return value of govern.Paused stops the emulation from
// being ticked but does not return from the function.
func (nes *NES) Run(ctx context.Context, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	if err := nes.claim(); err != nil {
		return err
	}
	defer nes.release()

	var err error

	state := govern.Running

	for state != govern.Ending {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if nes.RunFlag.Value() != signal.Start {
			return nil
		}

		switch state {
		case govern.Running:
			if err := nes.stepCPU(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
