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

package cpu_test

import (
	"testing"

	"github.com/JForte05/Steel6502/hardware/cpu"
	"github.com/JForte05/Steel6502/hardware/cpu/execution"
	"github.com/JForte05/Steel6502/hardware/preferences"
	"github.com/davecgh/go-spew/spew"
)

// origin of all test programs. the zero page and the stack are left free
const origin = uint16(0x0200)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		_ = mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

// put16 writes a little-endian 16 bit value.
func (mem *mockMem) put16(address uint16, value uint16) {
	_ = mem.Write(address, uint8(value))
	_ = mem.Write(address+1, uint8(value>>8))
}

func (mem mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero.
func (mem *mockMem) Clear() {
	for i := 0; i < len(mem.internal); i++ {
		mem.internal[i] = 0
	}
}

func (mem mockMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

// newCPU returns a CPU that has been reset and will begin execution at the
// origin address.
func newCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	return newCPUWithPrefs(t, nil)
}

func newCPUWithPrefs(t *testing.T, prefs *preferences.Preferences) (*cpu.CPU, *mockMem) {
	t.Helper()

	mem := newMockMem()
	mem.put16(0xfffc, origin)

	mc := cpu.NewCPU(prefs, mem)
	err := mc.Reset()
	if err != nil {
		t.Fatal(err)
	}

	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatalf("%v\n%s", err, spew.Sdump(mc.LastResult))
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatalf("%v\n%s", err, spew.Sdump(mc.LastResult))
	}
	return mc.LastResult
}
