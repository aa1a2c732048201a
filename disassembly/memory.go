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

package disassembly

import (
	"github.com/JForte05/Steel6502/hardware/memory/bus"
)

// disasmMemory is a read-only view of memory. the CPU can use it without
// changing anything.
type disasmMemory struct {
	mem bus.DebugBus
}

func (dm disasmMemory) Read(address uint16) (uint8, error) {
	return dm.mem.Peek(address)
}

// Write is ignored. instructions that write to memory (including the stack)
// can still be decoded.
func (dm disasmMemory) Write(_ uint16, _ uint8) error {
	return nil
}
