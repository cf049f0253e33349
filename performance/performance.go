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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/famibus/famibus/curated"
	"github.com/famibus/famibus/govern"
	"github.com/famibus/famibus/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator. The NES must have a cartridge
// inserted.
//
// Emulation will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, nes *hardware.NES, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if err := nes.Start(); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dotsPerFrame := uint64(nes.Spec.DotsPerFrame)

	// get starting frame number
	startFrame := nes.PPUDivider.Ticks() / dotsPerFrame

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 2)

		// force a two second leadtime to allow framerate to settle down and
		// then restart timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				// signal parent function that 2 second leadtime has elapsed
				timerChan <- false

				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check for end of measurement period every PerformanceBrake CPU
		// cycles. checking the timerChan is relatively expensive
		performanceBrake := 0

		// run until specified time elapses
		return nes.Run(context.Background(), func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					// measurement period has finished
					if v {
						return govern.Ending, timedOut
					}

					// the leadtime has concluded. the measurement has begun
					startFrame = nes.PPUDivider.Ticks() / dotsPerFrame
				default:
				}
			}

			return govern.Running, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	// get ending frame number
	endFrame := nes.PPUDivider.Ticks() / dotsPerFrame

	// calculate performance
	numFrames := int(endFrame - startFrame)
	fps, accuracy := CalcFPS(nes.Spec, numFrames, dur.Seconds())
	_, err = output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return err
}
