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

// Package colorterm implements the Terminal interface for the stepper. It
// supports colour output and single key input.
package colorterm

import (
	"os"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/debugger/terminal"
	"github.com/JForte05/Steel6502/debugger/terminal/easyterm"
	"github.com/JForte05/Steel6502/debugger/terminal/easyterm/ansi"
)

// ColorTerminal implements the stepper interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	return ct.EasyTerm.Initialise(easyterm.DefaultDevice, os.Stdout)
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.NormalPen)
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermReadKey implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadKey() (byte, error) {
	k, err := ct.EasyTerm.ReadKey()
	if err != nil {
		return 0, err
	}

	switch k {
	case easyterm.KeyCtrlC, easyterm.KeyCtrlD:
		return 0, curated.Errorf(terminal.UserAbort)
	case easyterm.KeyCarriage:
		return easyterm.KeyLineFeed, nil
	}

	return k, nil
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case terminal.StyleCPUStep:
		ct.EasyTerm.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleInstrument:
		ct.EasyTerm.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleFeedback:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StyleHelp:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StyleError:
		ct.EasyTerm.TermPrint(ansi.Pens["red"])
		ct.EasyTerm.TermPrint("* ")
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(ansi.NormalPen)
	ct.EasyTerm.TermPrint("\n")
}
