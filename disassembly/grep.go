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

package disassembly

import (
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string. Matching
// entries are written to output in the same way as Write() and the number of
// matches is returned.
func (dsm *Disassembly) Grep(output io.Writer, attr WriteAttr, scope GrepScope, search string, caseSensitive bool) (int, error) {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	matches := 0

	for _, e := range dsm.Entries {
		var s string

		// limit scope of grep to the correct field
		switch scope {
		case GrepMnemonic:
			s = e.Mnemonic()
		case GrepOperand:
			s = e.Operand()
		case GrepAll:
			s = e.String()
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			matches++
			err := dsm.WriteLine(output, attr, e)
			if err != nil {
				return matches, err
			}
		}
	}

	return matches, nil
}
