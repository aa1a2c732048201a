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

// AddressingMode describes the method by which the data for the instruction
// is received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zp

	ZeroPageX // zp,X
	ZeroPageY // zp,Y
	AbsoluteX // abs,X
	AbsoluteY // abs,Y

	Indirect                // (abs) JMP only
	AbsoluteIndexedIndirect // (abs,X) JMP only
	ZeroPageIndirect        // (zp)
	ZeroPageIndexedIndirect // (zp,X)
	ZeroPageIndirectIndexed // (zp),Y

	ZeroPageRelative // zp,rel BBR and BBS only

	Stack
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case AbsoluteIndexedIndirect:
		return "AbsoluteIndexedIndirect"
	case ZeroPageIndirect:
		return "ZeroPageIndirect"
	case ZeroPageIndexedIndirect:
		return "ZeroPageIndexedIndirect"
	case ZeroPageIndirectIndexed:
		return "ZeroPageIndirectIndexed"
	case ZeroPageRelative:
		return "ZeroPageRelative"
	case Stack:
		return "Stack"
	}
	return "unknown addressing mode"
}

// Bytes returns the number of bytes an instruction of this addressing mode
// occupies, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator, Stack:
		return 1
	case Immediate, Relative, ZeroPage, ZeroPageX, ZeroPageY:
		return 2
	case ZeroPageIndirect, ZeroPageIndexedIndirect, ZeroPageIndirectIndexed:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect, AbsoluteIndexedIndirect:
		return 3
	case ZeroPageRelative:
		return 3
	}
	return 0
}
