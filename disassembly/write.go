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
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		err := dsm.WriteLine(output, attr, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e Entry) error {
	s := strings.Builder{}

	s.WriteString(e.Address())
	s.WriteString("  ")

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%-8s  ", e.ByteCode()))
	}

	s.WriteString(e.Mnemonic())
	if o := e.Operand(); o != "" {
		s.WriteString(" ")
		s.WriteString(o)
	}

	line := s.String()
	if attr.Cycles {
		line = fmt.Sprintf("%-32s %s", line, e.Cycles())
	}

	_, err := io.WriteString(output, line)
	if err != nil {
		return err
	}
	_, err = io.WriteString(output, "\n")
	return err
}
