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

package addresses

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset address is stored. The low byte is
// at Reset and the high byte at Reset+1.
//
// Used by CPU.Reset() and the disassembly package.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. BRK loads the
// program counter from this vector.
const IRQ = uint16(0xfffe)

// Stack is the base of the stack page. The stack pointer is an offset into
// this page.
const Stack = uint16(0x0100)

// ZeroPage is the origin of the zero page.
const ZeroPage = uint16(0x0000)

// Vectors lists the canonical names of the vector addresses. Only the address
// of the low byte is included.
var Vectors = map[uint16]string{
	NMI:   "NMIB",
	Reset: "RESB",
	IRQ:   "IRQB",
}
