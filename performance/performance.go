// This file is part of Steel6502.
//
// Steel6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Steel6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Steel6502.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/JForte05/Steel6502/hardware"
	"github.com/JForte05/Steel6502/hardware/cpu/execution"
)

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator by running the program in the
// machine for the specified duration.
//
// The program is restarted every time it halts with BRK. Any other error
// ends the check early. The step limit preference is disabled for the
// duration of the check.
//
// A cpu profile, memory profile, a trace (or a combination of those) is
// created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, vm *hardware.Machine, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	if dur <= 0 {
		return fmt.Errorf("performance: duration must be positive (%s)", duration)
	}

	err = vm.Prefs.MaxSteps.Set(0)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var instructions int
	var restarts int
	var elapsed time.Duration

	runner := func() error {
		// signals when the duration has expired
		timerChan := make(chan bool, 1)
		time.AfterFunc(dur, func() {
			timerChan <- true
		})

		// only check for end of measurement period every PerformanceBrake
		// instructions
		performanceBrake := 0

		onStep := func(_ *execution.Result) error {
			instructions++
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timerChan:
					return timedOut
				default:
				}
			}
			return nil
		}

		startTime := time.Now()
		defer func() {
			elapsed = time.Since(startTime)
		}()

		for {
			err := vm.RunWithCallback(onStep)
			if err != nil {
				return err
			}
			restarts++

			// a program that halts immediately on every run would never reach
			// the performance brake
			select {
			case <-timerChan:
				return timedOut
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	ips := CalcIPS(instructions, elapsed.Seconds())
	output.Write([]byte(fmt.Sprintf("%.0f instructions per second (%d instructions in %.2f seconds)\n", ips, instructions, elapsed.Seconds())))
	if restarts > 0 {
		output.Write([]byte(fmt.Sprintf("program completed %d times\n", restarts)))
	}

	return nil
}

// CalcIPS takes the number of instructions executed and the duration in
// seconds and returns the number of instructions per second.
func CalcIPS(instructions int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(instructions) / seconds
}
