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
	"fmt"
	"strings"
)

// list of keys understood by the debugger.
const (
	keyStep     = ' '
	keyStepAlt  = '\n'
	keyRun      = 'r'
	keyState    = 's'
	keyZeroPage = 'z'
	keyReset    = 'x'
	keyHelp     = 'h'
	keyQuit     = 'q'
)

var help = []struct {
	key  string
	desc string
}{
	{"space/enter", "step one instruction"},
	{string(keyRun), "run until the cpu halts"},
	{string(keyState), "show cpu state"},
	{string(keyZeroPage), "show zero page"},
	{string(keyReset), "reset the cpu"},
	{string(keyHelp), "this help"},
	{string(keyQuit), "quit"},
}

func helpText() string {
	s := strings.Builder{}
	for i, h := range help {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("%-12s %s", h.key, h.desc))
	}
	return s.String()
}
