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

package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/JForte05/Steel6502/debugger/terminal/easyterm/ansi"
)

// Colorizer applies basic colouring rules to logging output. The tag of each
// log entry is written with a dim pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer returns a Colorizer for the output only if the output is a
// terminal. Otherwise the output is returned unchanged.
func NewColorizer(out io.Writer) io.Writer {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return Colorizer{out: out}
	}
	return out
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	s := string(p)

	// a log entry has the form "tag: detail". anything else is written
	// without colour
	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	_, err := io.WriteString(c.out, ansi.DimPens["cyan"]+tag+ansi.NormalPen+": "+detail)
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
