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

import "strings"

// Operator identifies the operation performed by an instruction. The bit
// operators (BBR, BBS, RMB, SMB) share an Operator and are distinguished by
// the Bit field of the Definition.
type Operator int

// List of W65C02S operators.
const (
	Adc Operator = iota
	And
	Asl
	Bbr
	Bbs
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Bra
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Phx
	Phy
	Pla
	Plp
	Plx
	Ply
	Rmb
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Smb
	Sta
	Stp
	Stx
	Sty
	Stz
	Tax
	Tay
	Trb
	Tsb
	Tsx
	Txa
	Txs
	Tya
	Wai

	numOperators
)

var operatorNames = [numOperators]string{
	"ADC", "AND", "ASL", "BBR", "BBS", "BCC", "BCS", "BEQ", "BIT", "BMI",
	"BNE", "BPL", "BRA", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV",
	"CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY",
	"JMP", "JSR", "LDA", "LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP",
	"PHX", "PHY", "PLA", "PLP", "PLX", "PLY", "RMB", "ROL", "ROR", "RTI",
	"RTS", "SBC", "SEC", "SED", "SEI", "SMB", "STA", "STP", "STX", "STY",
	"STZ", "TAX", "TAY", "TRB", "TSB", "TSX", "TXA", "TXS", "TYA", "WAI",
}

func (o Operator) String() string {
	if o < 0 || o >= numOperators {
		return "???"
	}
	return operatorNames[o]
}

// IsBitOperator returns true for the operators that act on a single bit of a
// zero page location.
func (o Operator) IsBitOperator() bool {
	return o == Bbr || o == Bbs || o == Rmb || o == Smb
}

// ParseOperator returns the Operator for the three letter mnemonic. The bit
// number suffix of the bit operators is ignored. Case insensitive.
func ParseOperator(mnemonic string) (Operator, bool) {
	m := strings.ToUpper(mnemonic)
	if len(m) == 4 && m[3] >= '0' && m[3] <= '7' {
		m = m[:3]
	}
	for i, n := range operatorNames {
		if n == m {
			return Operator(i), true
		}
	}
	return Nop, false
}
