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

package hardware

import "github.com/JForte05/Steel6502/hardware/cpu"

// Step the machine forward one CPU instruction. The CPU must have been reset
// with Reset() or Run().
func (m *Machine) Step() error {
	// the count includes an instruction that fails. the opcode was fetched
	// even if nothing else happened
	if m.CPU.State == cpu.StateRunning {
		m.steps++
	}
	return m.CPU.ExecuteInstruction()
}
