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

import (
	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/hardware/cpu"
	"github.com/JForte05/Steel6502/hardware/memory"
	"github.com/JForte05/Steel6502/hardware/memory/bus"
	"github.com/JForte05/Steel6502/hardware/memory/memorymap"
	"github.com/JForte05/Steel6502/hardware/preferences"
)

// Machine is the W65C02S with 32KB of RAM and 32KB of ROM.
type Machine struct {
	Prefs *preferences.Preferences

	RAM *memory.Segment
	ROM *memory.Segment
	Mem *bus.Bus
	CPU *cpu.CPU

	// number of instructions executed since the last reset
	steps int
}

// NewMachine creates a new Machine with the ROM image installed. The image
// must be exactly the size of the ROM.
//
// If prefs is nil then a new instance of the hardware preferences is created.
func NewMachine(prefs *preferences.Preferences, rom []uint8) (*Machine, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf("machine: %v", err)
		}
	}

	m := &Machine{
		Prefs: prefs,
		RAM:   memory.NewRAM(),
		ROM:   memory.NewROM(),
	}

	err = m.ROM.Load(rom)
	if err != nil {
		return nil, err
	}

	m.Mem = bus.NewBus(prefs.ROMWritePermission(), m.RAM, m.ROM)
	m.CPU = cpu.NewCPU(prefs, m.Mem)

	return m, nil
}

// NewMachineFromImage creates a new Machine from a binary image that is
// either the size of the ROM or the size of the entire address space. In the
// second case the lower half of the image is ignored.
func NewMachineFromImage(prefs *preferences.Preferences, image []uint8) (*Machine, error) {
	switch len(image) {
	case memorymap.SizeROM:
		return NewMachine(prefs, image)
	case memorymap.SizeRAM + memorymap.SizeROM:
		return NewMachine(prefs, image[memorymap.OriginROM:])
	}
	return nil, curated.Errorf(memory.LengthMismatch, "image", memorymap.SizeROM, len(image))
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// LoadRAM copies data into RAM starting at address $0000.
func (m *Machine) LoadRAM(data []uint8) error {
	return m.RAM.LoadAt(0, data)
}

// RAMSnapshot returns a copy of the entire RAM.
func (m *Machine) RAMSnapshot() []uint8 {
	return m.RAM.Dump()
}

// Steps returns the number of instructions executed since the last reset.
func (m *Machine) Steps() int {
	return m.steps
}

// Reset the CPU. Memory is not changed.
func (m *Machine) Reset() error {
	m.steps = 0
	m.Mem.ResetRejected()
	return m.CPU.Reset()
}
