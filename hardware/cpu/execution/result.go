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

package execution

import (
	"fmt"
	"strings"

	"github.com/JForte05/Steel6502/hardware/cpu/instructions"
)

// Result records the state/result of the last instruction executed by the
// CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction at Address. nil if nothing has been
	// fetched yet
	Defn *instructions.Definition

	// the operand of the instruction, in little-endian order. for
	// instructions with a single byte operand the high byte is zero. BBR and
	// BBS have the zero page address in the low byte and the branch offset in
	// the high byte
	InstructionData uint16

	// the number of bytes read from the instruction stream. should equal
	// Defn.Bytes
	ByteCount int

	// the number of cycles the instruction would take on real hardware. the
	// emulation does not use this for timing
	Cycles int

	// whether an indexed address or a branch crossed a page boundary
	PageFault bool

	// whether a branch instruction changed the program counter
	BranchSuccess bool

	// whether the instruction has completed. values in the result may be
	// incomplete until Final is true
	Final bool

	// the instruction moved the CPU to the halted state
	Halted bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the operand of the instruction in assembler notation. For
// relative addressing the operand is the branch destination.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	d := r.InstructionData

	switch r.Defn.AddressingMode {
	case instructions.Implied, instructions.Stack:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", d&0xff)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", branchDestination(r.Address+2, uint8(d)))
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", d)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", d&0xff)
	case instructions.ZeroPageX:
		return fmt.Sprintf("$%02x,X", d&0xff)
	case instructions.ZeroPageY:
		return fmt.Sprintf("$%02x,Y", d&0xff)
	case instructions.AbsoluteX:
		return fmt.Sprintf("$%04x,X", d)
	case instructions.AbsoluteY:
		return fmt.Sprintf("$%04x,Y", d)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", d)
	case instructions.AbsoluteIndexedIndirect:
		return fmt.Sprintf("($%04x,X)", d)
	case instructions.ZeroPageIndirect:
		return fmt.Sprintf("($%02x)", d&0xff)
	case instructions.ZeroPageIndexedIndirect:
		return fmt.Sprintf("($%02x,X)", d&0xff)
	case instructions.ZeroPageIndirectIndexed:
		return fmt.Sprintf("($%02x),Y", d&0xff)
	case instructions.ZeroPageRelative:
		return fmt.Sprintf("$%02x,$%04x", d&0xff, branchDestination(r.Address+3, uint8(d>>8)))
	}

	return ""
}

// the destination of a branch with the offset taken from the address
// following the instruction.
func branchDestination(next uint16, offset uint8) uint16 {
	return uint16(int32(next) + int32(int8(offset)))
}

// Mnemonic returns the mnemonic of the instruction. Undefined opcodes are
// shown as question marks.
func (r Result) Mnemonic() string {
	if r.Defn == nil || r.Defn.Undefined {
		return "???"
	}
	return r.Defn.Mnemonic
}

// ByteCode returns the bytes of the instruction as a string of hex values.
func (r Result) ByteCode() string {
	if r.Defn == nil {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02x", r.Defn.OpCode))
	if r.Defn.Bytes > 1 {
		s.WriteString(fmt.Sprintf(" %02x", r.InstructionData&0xff))
	}
	if r.Defn.Bytes > 2 {
		s.WriteString(fmt.Sprintf(" %02x", r.InstructionData>>8))
	}
	return s.String()
}

// String returns the result in a form suitable for a trace log. For example:
//
//	8000  a9 42     LDA #$42
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x  ???", r.Address)
	}

	s := fmt.Sprintf("%04x  %-8s  %s", r.Address, r.ByteCode(), r.Mnemonic())
	if o := r.Operand(); o != "" {
		s = fmt.Sprintf("%s %s", s, o)
	}
	return s
}
