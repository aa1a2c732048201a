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

package registers

import (
	"strings"
)

// bit positions of the flags in the status register.
const (
	FlagCarry            = uint8(0x01)
	FlagZero             = uint8(0x02)
	FlagInterruptDisable = uint8(0x04)
	FlagDecimalMode      = uint8(0x08)
	FlagBreak            = uint8(0x10)
	FlagUnused           = uint8(0x20)
	FlagOverflow         = uint8(0x40)
	FlagSign             = uint8(0x80)
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. The unused bit is not stored.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, c rune) {
		if set {
			s.WriteRune(c - 'a' + 'A')
		} else {
			s.WriteRune(c)
		}
	}

	flag(sr.Sign, 's')
	flag(sr.Overflow, 'v')
	s.WriteRune('-')
	flag(sr.Break, 'b')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= FlagSign
	}
	if sr.Overflow {
		v |= FlagOverflow
	}
	if sr.Break {
		v |= FlagBreak
	}
	if sr.DecimalMode {
		v |= FlagDecimalMode
	}
	if sr.InterruptDisable {
		v |= FlagInterruptDisable
	}
	if sr.Zero {
		v |= FlagZero
	}
	if sr.Carry {
		v |= FlagCarry
	}

	return v | FlagUnused
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&FlagSign == FlagSign
	sr.Overflow = v&FlagOverflow == FlagOverflow
	sr.Break = v&FlagBreak == FlagBreak
	sr.DecimalMode = v&FlagDecimalMode == FlagDecimalMode
	sr.InterruptDisable = v&FlagInterruptDisable == FlagInterruptDisable
	sr.Zero = v&FlagZero == FlagZero
	sr.Carry = v&FlagCarry == FlagCarry
}
