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

// Package easyterm is a wrapper for "github.com/pkg/term". It opens the
// controlling terminal in cbreak mode so that key presses are available
// without waiting for the return key, and makes sure the terminal is
// restored to its previous mode afterwards.
package easyterm

import (
	"fmt"
	"io"

	"github.com/pkg/term"
)

// DefaultDevice is the controlling terminal of the process.
const DefaultDevice = "/dev/tty"

// EasyTerm is the main container for posix terminals. usually embedded in
// other struct types.
type EasyTerm struct {
	input  *term.Term
	output io.Writer
}

// Initialise opens the input device in cbreak mode. Output is written to
// the output writer.
func (et *EasyTerm) Initialise(device string, output io.Writer) error {
	if output == nil {
		return fmt.Errorf("easyterm: requires an output writer")
	}

	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	et.input = t
	et.output = output

	return nil
}

// CleanUp restores the terminal to the mode it was in before Initialise() and
// closes it.
func (et *EasyTerm) CleanUp() {
	if et.input == nil {
		return
	}
	_ = et.input.Restore()
	_ = et.input.Close()
	et.input = nil
}

// TermPrint writes the string to the output without a newline.
func (et *EasyTerm) TermPrint(s string) {
	_, _ = io.WriteString(et.output, s)
}

// ReadKey blocks until a key is pressed. Keys that produce more than one byte
// (cursor keys for example) are returned one byte at a time.
func (et *EasyTerm) ReadKey() (byte, error) {
	b := make([]byte, 1)
	for {
		n, err := et.input.Read(b)
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return b[0], nil
		}
	}
}

// Flush discards any input that has not been read yet.
func (et *EasyTerm) Flush() error {
	return et.input.Flush()
}
