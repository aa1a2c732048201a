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

	"github.com/JForte05/Steel6502/hardware/cpu/execution"
)

// Entry is a single decoded instruction.
type Entry struct {
	Result execution.Result
}

// Address of the instruction in the form "8000".
func (e Entry) Address() string {
	return fmt.Sprintf("%04x", e.Result.Address)
}

// ByteCode returns the bytes of the instruction.
func (e Entry) ByteCode() string {
	return e.Result.ByteCode()
}

// Mnemonic of the instruction. Undefined opcodes are "???".
func (e Entry) Mnemonic() string {
	return e.Result.Mnemonic()
}

// Operand of the instruction in assembler notation. The operand of an
// undefined opcode is not shown.
func (e Entry) Operand() string {
	if e.Result.Defn == nil || e.Result.Defn.Undefined {
		return ""
	}
	return e.Result.Operand()
}

// Cycles returns the number of cycles in the instruction definition. Cycles
// that depend on the state of the CPU are indicated.
func (e Entry) Cycles() string {
	defn := e.Result.Defn
	if defn == nil {
		return ""
	}

	switch {
	case defn.IsBranch():
		return fmt.Sprintf("%d/%d", defn.Cycles, defn.Cycles+2)
	case defn.PageSensitive:
		return fmt.Sprintf("%d/%d", defn.Cycles, defn.Cycles+1)
	}
	return fmt.Sprintf("%d", defn.Cycles)
}

func (e Entry) String() string {
	if o := e.Operand(); o != "" {
		return fmt.Sprintf("%s %s %s", e.Address(), e.Mnemonic(), o)
	}
	return fmt.Sprintf("%s %s", e.Address(), e.Mnemonic())
}
