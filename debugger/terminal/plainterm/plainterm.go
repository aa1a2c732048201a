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

// Package plainterm implements the Terminal interface for the stepper. It's
// as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/debugger/terminal"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. Input is read
// one line at a time and only the first character of the line is used.
type PlainTerminal struct {
	input      *bufio.Reader
	output     io.Writer
	realInput  bool
	silenced   bool
	keepInputs bool
}

// NewPlainTerminal creates a PlainTerminal that reads from input and writes
// to output. Initialise() will not replace them with the standard streams.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:      bufio.NewReader(input),
		output:     output,
		keepInputs: true,
	}
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	if !pt.keepInputs {
		pt.input = bufio.NewReader(os.Stdin)
		pt.output = os.Stdout
		pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	}
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	_, _ = io.WriteString(pt.output, s)
	_, _ = io.WriteString(pt.output, "\n")
}

// TermReadKey implements the terminal.Input interface.
func (pt *PlainTerminal) TermReadKey() (byte, error) {
	s, err := pt.input.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, err
		}

		// a final line without a newline is still used
		if len(s) == 0 {
			return 0, curated.Errorf(terminal.UserAbort)
		}
	}

	if len(s) == 0 || s[0] == '\r' {
		return '\n', nil
	}

	return s[0], nil
}
