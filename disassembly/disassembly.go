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
	"fmt"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/hardware/cpu"
	"github.com/JForte05/Steel6502/hardware/memory/bus"
	"github.com/JForte05/Steel6502/hardware/preferences"
)

// Disassembly is a linear listing of instructions.
type Disassembly struct {
	Entries []Entry
}

// FromMemory disassembles the region of memory from start to end inclusive.
// The last instruction may extend beyond end.
func FromMemory(mem bus.DebugBus, start uint16, end uint16) (*Disassembly, error) {
	if end < start {
		return nil, curated.Errorf("disassembly: %v", fmt.Sprintf("end address (%04x) before start address (%04x)", end, start))
	}

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	// decode undefined opcodes rather than fail on them
	err = prefs.ReservedNOP.Set(true)
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	// never log instructions that are being decoded
	err = prefs.Trace.Set(false)
	if err != nil {
		return nil, curated.Errorf("disassembly: %v", err)
	}

	mc := cpu.NewCPU(prefs, disasmMemory{mem: mem})

	dsm := &Disassembly{}

	address := int(start)
	for address <= int(end) {
		// the CPU is reset every time because BRK, STP and WAI halt it
		err = mc.Reset()
		if err != nil {
			return nil, curated.Errorf("disassembly: %v", err)
		}
		mc.PC.Load(uint16(address))

		err = mc.ExecuteInstruction()
		if err != nil && !curated.Is(err, cpu.ProcessorStopped) {
			return nil, curated.Errorf("disassembly: %v", err)
		}

		dsm.Entries = append(dsm.Entries, Entry{Result: mc.LastResult})
		address += mc.LastResult.ByteCount
	}

	return dsm, nil
}
