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
	"os"

	"golang.org/x/term"

	"github.com/JForte05/Steel6502/debugger/terminal"
	"github.com/JForte05/Steel6502/debugger/terminal/colorterm"
	"github.com/JForte05/Steel6502/debugger/terminal/plainterm"
)

// NewTerminal returns a ColorTerminal if the standard input and output are
// both real terminals. Otherwise a PlainTerminal is returned.
func NewTerminal() terminal.Terminal {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return &colorterm.ColorTerminal{}
	}
	return &plainterm.PlainTerminal{}
}
