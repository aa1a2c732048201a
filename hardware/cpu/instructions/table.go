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

// Table of instruction definitions indexed by opcode. Every entry is non-nil.
// Opcodes not assigned by the W65C02S have the Undefined field set.
var Table [256]*Definition

// a single row in the opcode listing.
type row struct {
	opcode   uint8
	operator Operator
	mode     AddressingMode
	cycles   int
}

// the W65C02S opcode listing. the number of bytes is implied by the
// addressing mode and the effect category by the operator.
var listing = []row{
	{0x00, Brk, Stack, 7},
	{0x01, Ora, ZeroPageIndexedIndirect, 6},
	{0x04, Tsb, ZeroPage, 5},
	{0x05, Ora, ZeroPage, 3},
	{0x06, Asl, ZeroPage, 5},
	{0x07, Rmb, ZeroPage, 5},
	{0x08, Php, Stack, 3},
	{0x09, Ora, Immediate, 2},
	{0x0a, Asl, Accumulator, 2},
	{0x0c, Tsb, Absolute, 6},
	{0x0d, Ora, Absolute, 4},
	{0x0e, Asl, Absolute, 6},
	{0x0f, Bbr, ZeroPageRelative, 5},

	{0x10, Bpl, Relative, 2},
	{0x11, Ora, ZeroPageIndirectIndexed, 5},
	{0x12, Ora, ZeroPageIndirect, 5},
	{0x14, Trb, ZeroPage, 5},
	{0x15, Ora, ZeroPageX, 4},
	{0x16, Asl, ZeroPageX, 6},
	{0x17, Rmb, ZeroPage, 5},
	{0x18, Clc, Implied, 2},
	{0x19, Ora, AbsoluteY, 4},
	{0x1a, Inc, Accumulator, 2},
	{0x1c, Trb, Absolute, 6},
	{0x1d, Ora, AbsoluteX, 4},
	{0x1e, Asl, AbsoluteX, 6},
	{0x1f, Bbr, ZeroPageRelative, 5},

	{0x20, Jsr, Absolute, 6},
	{0x21, And, ZeroPageIndexedIndirect, 6},
	{0x24, Bit, ZeroPage, 3},
	{0x25, And, ZeroPage, 3},
	{0x26, Rol, ZeroPage, 5},
	{0x27, Rmb, ZeroPage, 5},
	{0x28, Plp, Stack, 4},
	{0x29, And, Immediate, 2},
	{0x2a, Rol, Accumulator, 2},
	{0x2c, Bit, Absolute, 4},
	{0x2d, And, Absolute, 4},
	{0x2e, Rol, Absolute, 6},
	{0x2f, Bbr, ZeroPageRelative, 5},

	{0x30, Bmi, Relative, 2},
	{0x31, And, ZeroPageIndirectIndexed, 5},
	{0x32, And, ZeroPageIndirect, 5},
	{0x34, Bit, ZeroPageX, 4},
	{0x35, And, ZeroPageX, 4},
	{0x36, Rol, ZeroPageX, 6},
	{0x37, Rmb, ZeroPage, 5},
	{0x38, Sec, Implied, 2},
	{0x39, And, AbsoluteY, 4},
	{0x3a, Dec, Accumulator, 2},
	{0x3c, Bit, AbsoluteX, 4},
	{0x3d, And, AbsoluteX, 4},
	{0x3e, Rol, AbsoluteX, 6},
	{0x3f, Bbr, ZeroPageRelative, 5},

	{0x40, Rti, Stack, 6},
	{0x41, Eor, ZeroPageIndexedIndirect, 6},
	{0x45, Eor, ZeroPage, 3},
	{0x46, Lsr, ZeroPage, 5},
	{0x47, Rmb, ZeroPage, 5},
	{0x48, Pha, Stack, 3},
	{0x49, Eor, Immediate, 2},
	{0x4a, Lsr, Accumulator, 2},
	{0x4c, Jmp, Absolute, 3},
	{0x4d, Eor, Absolute, 4},
	{0x4e, Lsr, Absolute, 6},
	{0x4f, Bbr, ZeroPageRelative, 5},

	{0x50, Bvc, Relative, 2},
	{0x51, Eor, ZeroPageIndirectIndexed, 5},
	{0x52, Eor, ZeroPageIndirect, 5},
	{0x55, Eor, ZeroPageX, 4},
	{0x56, Lsr, ZeroPageX, 6},
	{0x57, Rmb, ZeroPage, 5},
	{0x58, Cli, Implied, 2},
	{0x59, Eor, AbsoluteY, 4},
	{0x5a, Phy, Stack, 3},
	{0x5d, Eor, AbsoluteX, 4},
	{0x5e, Lsr, AbsoluteX, 6},
	{0x5f, Bbr, ZeroPageRelative, 5},

	{0x60, Rts, Stack, 6},
	{0x61, Adc, ZeroPageIndexedIndirect, 6},
	{0x64, Stz, ZeroPage, 3},
	{0x65, Adc, ZeroPage, 3},
	{0x66, Ror, ZeroPage, 5},
	{0x67, Rmb, ZeroPage, 5},
	{0x68, Pla, Stack, 4},
	{0x69, Adc, Immediate, 2},
	{0x6a, Ror, Accumulator, 2},
	{0x6c, Jmp, Indirect, 6},
	{0x6d, Adc, Absolute, 4},
	{0x6e, Ror, Absolute, 6},
	{0x6f, Bbr, ZeroPageRelative, 5},

	{0x70, Bvs, Relative, 2},
	{0x71, Adc, ZeroPageIndirectIndexed, 5},
	{0x72, Adc, ZeroPageIndirect, 5},
	{0x74, Stz, ZeroPageX, 4},
	{0x75, Adc, ZeroPageX, 4},
	{0x76, Ror, ZeroPageX, 6},
	{0x77, Rmb, ZeroPage, 5},
	{0x78, Sei, Implied, 2},
	{0x79, Adc, AbsoluteY, 4},
	{0x7a, Ply, Stack, 4},
	{0x7c, Jmp, AbsoluteIndexedIndirect, 6},
	{0x7d, Adc, AbsoluteX, 4},
	{0x7e, Ror, AbsoluteX, 6},
	{0x7f, Bbr, ZeroPageRelative, 5},

	{0x80, Bra, Relative, 3},
	{0x81, Sta, ZeroPageIndexedIndirect, 6},
	{0x84, Sty, ZeroPage, 3},
	{0x85, Sta, ZeroPage, 3},
	{0x86, Stx, ZeroPage, 3},
	{0x87, Smb, ZeroPage, 5},
	{0x88, Dey, Implied, 2},
	{0x89, Bit, Immediate, 2},
	{0x8a, Txa, Implied, 2},
	{0x8c, Sty, Absolute, 4},
	{0x8d, Sta, Absolute, 4},
	{0x8e, Stx, Absolute, 4},
	{0x8f, Bbs, ZeroPageRelative, 5},

	{0x90, Bcc, Relative, 2},
	{0x91, Sta, ZeroPageIndirectIndexed, 6},
	{0x92, Sta, ZeroPageIndirect, 5},
	{0x94, Sty, ZeroPageX, 4},
	{0x95, Sta, ZeroPageX, 4},
	{0x96, Stx, ZeroPageY, 4},
	{0x97, Smb, ZeroPage, 5},
	{0x98, Tya, Implied, 2},
	{0x99, Sta, AbsoluteY, 5},
	{0x9a, Txs, Implied, 2},
	{0x9c, Stz, Absolute, 4},
	{0x9d, Sta, AbsoluteX, 5},
	{0x9e, Stz, AbsoluteX, 5},
	{0x9f, Bbs, ZeroPageRelative, 5},

	{0xa0, Ldy, Immediate, 2},
	{0xa1, Lda, ZeroPageIndexedIndirect, 6},
	{0xa2, Ldx, Immediate, 2},
	{0xa4, Ldy, ZeroPage, 3},
	{0xa5, Lda, ZeroPage, 3},
	{0xa6, Ldx, ZeroPage, 3},
	{0xa7, Smb, ZeroPage, 5},
	{0xa8, Tay, Implied, 2},
	{0xa9, Lda, Immediate, 2},
	{0xaa, Tax, Implied, 2},
	{0xac, Ldy, Absolute, 4},
	{0xad, Lda, Absolute, 4},
	{0xae, Ldx, Absolute, 4},
	{0xaf, Bbs, ZeroPageRelative, 5},

	{0xb0, Bcs, Relative, 2},
	{0xb1, Lda, ZeroPageIndirectIndexed, 5},
	{0xb2, Lda, ZeroPageIndirect, 5},
	{0xb4, Ldy, ZeroPageX, 4},
	{0xb5, Lda, ZeroPageX, 4},
	{0xb6, Ldx, ZeroPageY, 4},
	{0xb7, Smb, ZeroPage, 5},
	{0xb8, Clv, Implied, 2},
	{0xb9, Lda, AbsoluteY, 4},
	{0xba, Tsx, Implied, 2},
	{0xbc, Ldy, AbsoluteX, 4},
	{0xbd, Lda, AbsoluteX, 4},
	{0xbe, Ldx, AbsoluteY, 4},
	{0xbf, Bbs, ZeroPageRelative, 5},

	{0xc0, Cpy, Immediate, 2},
	{0xc1, Cmp, ZeroPageIndexedIndirect, 6},
	{0xc4, Cpy, ZeroPage, 3},
	{0xc5, Cmp, ZeroPage, 3},
	{0xc6, Dec, ZeroPage, 5},
	{0xc7, Smb, ZeroPage, 5},
	{0xc8, Iny, Implied, 2},
	{0xc9, Cmp, Immediate, 2},
	{0xca, Dex, Implied, 2},
	{0xcb, Wai, Implied, 3},
	{0xcc, Cpy, Absolute, 4},
	{0xcd, Cmp, Absolute, 4},
	{0xce, Dec, Absolute, 6},
	{0xcf, Bbs, ZeroPageRelative, 5},

	{0xd0, Bne, Relative, 2},
	{0xd1, Cmp, ZeroPageIndirectIndexed, 5},
	{0xd2, Cmp, ZeroPageIndirect, 5},
	{0xd5, Cmp, ZeroPageX, 4},
	{0xd6, Dec, ZeroPageX, 6},
	{0xd7, Smb, ZeroPage, 5},
	{0xd8, Cld, Implied, 2},
	{0xd9, Cmp, AbsoluteY, 4},
	{0xda, Phx, Stack, 3},
	{0xdb, Stp, Implied, 3},
	{0xdd, Cmp, AbsoluteX, 4},
	{0xde, Dec, AbsoluteX, 7},
	{0xdf, Bbs, ZeroPageRelative, 5},

	{0xe0, Cpx, Immediate, 2},
	{0xe1, Sbc, ZeroPageIndexedIndirect, 6},
	{0xe4, Cpx, ZeroPage, 3},
	{0xe5, Sbc, ZeroPage, 3},
	{0xe6, Inc, ZeroPage, 5},
	{0xe7, Smb, ZeroPage, 5},
	{0xe8, Inx, Implied, 2},
	{0xe9, Sbc, Immediate, 2},
	{0xea, Nop, Implied, 2},
	{0xec, Cpx, Absolute, 4},
	{0xed, Sbc, Absolute, 4},
	{0xee, Inc, Absolute, 6},
	{0xef, Bbs, ZeroPageRelative, 5},

	{0xf0, Beq, Relative, 2},
	{0xf1, Sbc, ZeroPageIndirectIndexed, 5},
	{0xf2, Sbc, ZeroPageIndirect, 5},
	{0xf5, Sbc, ZeroPageX, 4},
	{0xf6, Inc, ZeroPageX, 6},
	{0xf7, Smb, ZeroPage, 5},
	{0xf8, Sed, Implied, 2},
	{0xf9, Sbc, AbsoluteY, 4},
	{0xfa, Plx, Stack, 4},
	{0xfd, Sbc, AbsoluteX, 4},
	{0xfe, Inc, AbsoluteX, 7},
	{0xff, Bbs, ZeroPageRelative, 5},
}

// the opcodes left unassigned by the W65C02S that are not single byte, single
// cycle NOPs. all other unassigned opcodes are in the $x3 and $xB columns and
// are single byte, single cycle NOPs.
var reserved = []row{
	{0x02, Nop, Immediate, 2},
	{0x22, Nop, Immediate, 2},
	{0x42, Nop, Immediate, 2},
	{0x62, Nop, Immediate, 2},
	{0x82, Nop, Immediate, 2},
	{0xc2, Nop, Immediate, 2},
	{0xe2, Nop, Immediate, 2},
	{0x44, Nop, ZeroPage, 3},
	{0x54, Nop, ZeroPageX, 4},
	{0xd4, Nop, ZeroPageX, 4},
	{0xf4, Nop, ZeroPageX, 4},
	{0x5c, Nop, Absolute, 8},
	{0xdc, Nop, Absolute, 4},
	{0xfc, Nop, Absolute, 4},
}

func effectOf(o Operator) Category {
	switch o {
	case Sta, Stx, Sty, Stz, Pha, Php, Phx, Phy:
		return Write
	case Asl, Lsr, Rol, Ror, Inc, Dec, Tsb, Trb, Rmb, Smb:
		return Modify
	case Bcc, Bcs, Beq, Bmi, Bne, Bpl, Bra, Bvc, Bvs, Bbr, Bbs, Jmp:
		return Flow
	case Jsr, Rts:
		return Subroutine
	case Brk, Rti, Stp, Wai:
		return Interrupt
	}
	return Read
}

func newDefinition(r row) *Definition {
	defn := &Definition{
		OpCode:         r.opcode,
		Operator:       r.operator,
		Mnemonic:       r.operator.String(),
		Bytes:          r.mode.Bytes(),
		Cycles:         r.cycles,
		AddressingMode: r.mode,
		Effect:         effectOf(r.operator),
	}

	if r.operator.IsBitOperator() {
		defn.Bit = (r.opcode >> 4) & 0x07
		defn.Mnemonic = fmt.Sprintf("%s%d", defn.Mnemonic, defn.Bit)
	}

	// BRK is followed by a signature byte which is skipped
	if r.operator == Brk {
		defn.Bytes = 2
	}

	switch r.mode {
	case AbsoluteX, AbsoluteY, ZeroPageIndirectIndexed:
		switch defn.Effect {
		case Read:
			defn.PageSensitive = true
		case Modify:
			// the shift and rotate instructions take an extra cycle on a
			// page fault. INC and DEC always take the longer path
			defn.PageSensitive = r.operator != Inc && r.operator != Dec
		}
	}

	return defn
}

func init() {
	for _, r := range listing {
		Table[r.opcode] = newDefinition(r)
	}

	for _, r := range reserved {
		defn := newDefinition(r)
		defn.Undefined = true
		Table[r.opcode] = defn
	}

	for i := range Table {
		if Table[i] == nil {
			defn := newDefinition(row{uint8(i), Nop, Implied, 1})
			defn.Undefined = true
			Table[i] = defn
		}
	}
}
