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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per
// opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode

	// an extra cycle is taken if the indexed address crosses a page
	PageSensitive bool

	Effect Category

	// the bit number for BBR, BBS, RMB and SMB
	Bit uint8

	// undefined opcodes are not assigned an operation by the W65C02S. the
	// silicon treats them as a NOP of the length and cycle count given in the
	// definition
	Undefined bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Undefined {
		return fmt.Sprintf("%02x undefined +%dbytes (%d cycles) [mode=%s]", defn.OpCode, defn.Bytes, defn.Cycles, defn.AddressingMode)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction. BBR and BBS
// are branch instructions.
func (defn Definition) IsBranch() bool {
	return (defn.AddressingMode == Relative || defn.AddressingMode == ZeroPageRelative) && defn.Effect == Flow
}
