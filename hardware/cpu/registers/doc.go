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

// Package registers implements the three types of register found in the
// W65C02S. The three types are the general purpose 8 bit register, the
// program counter and the status register.
//
// Registers do not set the status flags themselves. Operations that affect
// the carry and overflow flags return the new state of those flags and the
// CPU assigns them. Zero and sign are checked by the CPU after the operation
// is done. For instance, in the CPU, we might have this sequence of function
// calls:
//
//	a.Load(10)
//	sr.Carry, sr.Overflow = a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// In this case, the zero flag will be false, the sign flag will be true and
// the carry flag will be false, indicating a borrow.
//
// Decimal mode arithmetic follows the W65C02S. The N and Z flags are valid
// after a decimal mode operation, unlike on the NMOS 6502.
package registers
