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

package debugger

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/debugger/terminal"
	"github.com/JForte05/Steel6502/hardware"
	"github.com/JForte05/Steel6502/hardware/memory/addresses"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	vm   *hardware.Machine
	term terminal.Terminal

	// used to show the result of the last instruction in detail
	dumper spew.ConfigState
}

// NewDebugger creates and initialises everything required for a new debugging
// session. Use the Start() method to actually begin the session.
func NewDebugger(vm *hardware.Machine, term terminal.Terminal) *Debugger {
	return &Debugger{
		vm:   vm,
		term: term,
		dumper: spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	dbg.term.TermPrintLine(sty, fmt.Sprintf(s, a...))
}

// Start the main debugger sequence. The machine is reset before the first
// key is read.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	err = dbg.vm.Reset()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}

	if dbg.term.IsInteractive() {
		dbg.printLine(terminal.StyleHelp, helpText())
	}
	dbg.printLine(terminal.StyleFeedback, "reset: %s", dbg.vm.CPU)

	for {
		key, err := dbg.term.TermReadKey()
		if err != nil {
			if curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		quit, err := dbg.processKey(key)
		if err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
		if quit {
			return nil
		}
	}
}

// processKey returns true if the debugger should quit. emulation errors are
// printed and do not end the session.
func (dbg *Debugger) processKey(key byte) (bool, error) {
	switch key {
	case keyStep, keyStepAlt:
		err := dbg.vm.Step()
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
			return false, nil
		}
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.vm.CPU.LastResult)
		dbg.halted()

	case keyRun:
		dbg.run()

	case keyState:
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.vm.CPU)
		dbg.printLine(terminal.StyleInstrument, "%s", strings.TrimSpace(dbg.dumper.Sdump(dbg.vm.CPU.LastResult)))

	case keyZeroPage:
		zp := dbg.vm.RAM.Page(int(addresses.ZeroPage >> 8))
		dbg.printLine(terminal.StyleInstrument, "%s", strings.TrimSpace(hex.Dump(zp[:])))

	case keyReset:
		err := dbg.vm.Reset()
		if err != nil {
			return false, err
		}
		dbg.printLine(terminal.StyleFeedback, "reset: %s", dbg.vm.CPU)

	case keyHelp:
		dbg.printLine(terminal.StyleHelp, helpText())

	case keyQuit:
		return true, nil

	default:
		dbg.printLine(terminal.StyleError, "unknown key (%q). press %c for help", key, keyHelp)
	}

	return false, nil
}

// run instructions until the CPU halts or there is an error. the maximum
// number of steps preference is honoured.
func (dbg *Debugger) run() {
	start := dbg.vm.Steps()

	err := dbg.vm.Continue(nil)
	if err != nil {
		dbg.printLine(terminal.StyleError, "%v", err)
		return
	}

	dbg.printLine(terminal.StyleCPUStep, "%s", dbg.vm.CPU.LastResult)
	dbg.printLine(terminal.StyleFeedback, "%d instructions executed", dbg.vm.Steps()-start)
	dbg.halted()
}

func (dbg *Debugger) halted() {
	if dbg.vm.CPU.IsHalted() {
		dbg.printLine(terminal.StyleFeedback, "cpu halted by %s at %04x", dbg.vm.CPU.HaltReason, dbg.vm.CPU.LastResult.Address)
	}
}
