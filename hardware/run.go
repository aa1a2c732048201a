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

package hardware

import (
	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/hardware/cpu/execution"
)

// StepLimitReached is returned by Run() when the number of instructions
// executed reaches the machine.maxsteps preference.
const StepLimitReached = "machine: step limit reached (%d instructions)"

// Run resets the machine and executes instructions until the CPU halts. BRK
// is the normal end of a program and returns nil. Any other way of stopping
// returns an error, including STP and WAI.
//
// Memory is left as it was at the moment the run ended whether or not an
// error was returned.
func (m *Machine) Run() error {
	return m.RunWithCallback(nil)
}

// RunWithCallback is the same as Run() but with a function that is called
// after every instruction. The result of the instruction is passed to the
// function. Returning an error from the callback ends the run with that
// error.
func (m *Machine) RunWithCallback(onStep func(*execution.Result) error) error {
	err := m.Reset()
	if err != nil {
		return err
	}
	return m.Continue(onStep)
}

// Continue executes instructions from the current state of the machine until
// the CPU halts. It is the same as RunWithCallback() except that the machine
// is not reset first. The callback can be nil.
//
// The machine.maxsteps preference is compared with the number of steps since
// the last reset.
func (m *Machine) Continue(onStep func(*execution.Result) error) error {
	maxSteps := m.Prefs.MaxSteps.Get().(int)

	for !m.CPU.IsHalted() {
		if maxSteps > 0 && m.steps >= maxSteps {
			return curated.Errorf(StepLimitReached, m.steps)
		}

		err := m.Step()
		if err != nil {
			return err
		}

		if onStep != nil {
			err = onStep(&m.CPU.LastResult)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// PerformanceBrake is the number of instructions a long running loop should
// execute between checks of the world outside the emulation. Checking a
// channel on every instruction is expensive.
const PerformanceBrake = 1000
