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

// the decimal mode algorithms are from Bruce Clark's "Decimal Mode" tutorial,
// appendix A. the 65C02 sequences are used in both cases, which means that
// the N and Z flags can be taken from the register after the operation, as
// they would be for binary mode.

// AddDecimal adds value to register as though both are binary coded decimal
// values. Returns new carry and overflow states.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool) {
	var c int
	if carry {
		c = 1
	}

	// units
	al := int(r.value&0x0f) + int(val&0x0f) + c
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}

	// the overflow flag is from the tens digits treated as signed values
	sv := int(int8(r.value&0xf0)) + int(int8(val&0xf0)) + al
	overflow := sv < -128 || sv > 127

	// tens
	a := int(r.value&0xf0) + int(val&0xf0) + al
	if a >= 0xa0 {
		a += 0x60
	}

	r.value = uint8(a)

	return a >= 0x100, overflow
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal values. The carry flag should be set for a subtraction
// without borrow. Returns new carry and overflow states, which are the same
// as they would be for a binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool) {
	var c int
	if carry {
		c = 1
	}

	// carry and overflow are the same as for binary mode
	bin := NewRegister(r.value, "")
	rcarry, overflow := bin.Subtract(val, carry)

	al := int(r.value&0x0f) - int(val&0x0f) + c - 1
	a := int(r.value) - int(val) + c - 1
	if a < 0 {
		a -= 0x60
	}
	if al < 0 {
		a -= 0x06
	}

	r.value = uint8(a)

	return rcarry, overflow
}
