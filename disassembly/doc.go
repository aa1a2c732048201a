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

// Package disassembly produces a listing of the instructions in a region of
// memory. The disassembly is linear: instructions are decoded one after the
// other starting from the first address, with no attempt to follow the flow
// of the program. Data in the region will be decoded as though it were
// instructions.
//
// Decoding is done by the CPU itself on a read-only view of memory, so the
// disassembly always agrees with the emulation about the length of each
// instruction. Undefined opcodes are decoded with the length of the NOP the
// W65C02S performs for them and are shown as "???".
//
//	dsm, err := disassembly.FromMemory(machine.Mem, 0x8000, 0x80ff)
//	if err != nil {
//		return err
//	}
//	dsm.Write(os.Stdout, disassembly.WriteAttr{ByteCode: true})
package disassembly
