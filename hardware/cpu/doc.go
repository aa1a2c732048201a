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

// Package cpu emulates the W65C02S microprocessor. Like all 8-bit processors
// of the era, the W65C02S executes instructions according to the single byte
// value read from an address pointed to by the program counter. This single
// byte is the opcode and is looked up in the instruction table. The
// instruction definition for that opcode is then used to move execution of
// the program forward.
//
// The instance of the CPU type requires an instance of a bus.CPUBus
// implementation. The CPUBus interface defines the memory operations required
// by the CPU. See the bus package for details.
//
// The CPU must be reset before use. Reset() reads the program counter from the
// reset vector and puts the registers into their documented power-on state.
//
//	mc := cpu.NewCPU(prefs, mem)
//	err := mc.Reset()
//
//	for err == nil && !mc.IsHalted() {
//		err = mc.ExecuteInstruction()
//	}
//
// Instructions are executed atomically. There is no cycle-by-cycle emulation
// but the number of cycles each instruction would take on real hardware is
// recorded in the LastResult field, alongside the address, operand and other
// details of the instruction. See the execution package for more information.
//
// BRK, STP and WAI halt the CPU. A halted CPU will not execute any more
// instructions until it is reset. The HaltReason field records which
// instruction caused the halt.
//
// Opcodes that are not assigned by the W65C02S cause ExecuteInstruction() to
// return an IllegalOpcode error. The CPU is halted with the PC pointing to
// the byte after the opcode so that the state can be inspected. The
// cpu.reservednop preference changes this
// so that they are executed as NOPs of the correct length, as they would be on
// real hardware.
package cpu
