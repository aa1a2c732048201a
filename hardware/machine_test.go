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

package hardware_test

import (
	"fmt"
	"testing"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/hardware"
	"github.com/JForte05/Steel6502/hardware/cpu"
	"github.com/JForte05/Steel6502/hardware/cpu/execution"
	"github.com/JForte05/Steel6502/hardware/memory"
	"github.com/JForte05/Steel6502/hardware/preferences"
	"github.com/JForte05/Steel6502/test"
)

// rom returns a ROM image with the program at $8000 and the reset vector
// pointing to it.
func rom(program ...uint8) []uint8 {
	r := make([]uint8, 0x8000)
	copy(r, program)
	r[0x7ffc] = 0x00
	r[0x7ffd] = 0x80
	return r
}

func TestRun(t *testing.T) {
	// LDA #$42; STA $0010; BRK
	m, err := hardware.NewMachine(nil, rom(0xa9, 0x42, 0x8d, 0x10, 0x00, 0x00))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, m.Run())
	test.ExpectEquality(t, m.RAMSnapshot()[0x10], uint8(0x42))
	test.ExpectEquality(t, len(m.RAMSnapshot()), 0x8000)
	test.ExpectEquality(t, m.Steps(), 3)
	test.ExpectEquality(t, m.CPU.HaltReason, cpu.HaltBRK)

	// the machine can be run again from the beginning
	test.ExpectSuccess(t, m.Run())
	test.ExpectEquality(t, m.Steps(), 3)
}

func TestRunWithCallback(t *testing.T) {
	// LDX #$03; DEX; BNE -3; BRK
	m, err := hardware.NewMachine(nil, rom(0xa2, 0x03, 0xca, 0xd0, 0xfd, 0x00))
	test.DemandSuccess(t, err)

	var trace []string
	err = m.RunWithCallback(func(r *execution.Result) error {
		trace = append(trace, r.String())
		return nil
	})
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(trace), 8)
	test.ExpectEquality(t, trace[0], "8000  a2 03     LDX #$03")
	test.ExpectEquality(t, trace[2], "8003  d0 fd     BNE $8002")
	test.ExpectEquality(t, trace[7], "8005  00 00     BRK")

	// an error from the callback stops the run
	err = m.RunWithCallback(func(r *execution.Result) error {
		return fmt.Errorf("stopped")
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, m.Steps(), 1)
}

func TestIllegalOpcode(t *testing.T) {
	// LDA #$42; STA $0010; (illegal)
	m, err := hardware.NewMachine(nil, rom(0xa9, 0x42, 0x8d, 0x10, 0x00, 0x03))
	test.DemandSuccess(t, err)

	err = m.Run()
	test.ExpectSuccess(t, curated.Is(err, cpu.IllegalOpcode))
	test.DemandEquality(t, len(curated.Values(err)), 2)
	test.ExpectEquality(t, curated.Values(err)[0], any(uint8(0x03)))
	test.ExpectEquality(t, curated.Values(err)[1], any(uint16(0x8005)))
	test.ExpectEquality(t, m.Steps(), 3)
	test.ExpectEquality(t, m.CPU.HaltReason, cpu.HaltIllegal)

	// RAM is still available after the failure
	test.ExpectEquality(t, m.RAMSnapshot()[0x10], uint8(0x42))
}

func TestIllegalOpcodeIsFinal(t *testing.T) {
	// (illegal 3 byte opcode); LDA #$77; STA $10; BRK
	m, err := hardware.NewMachine(nil, rom(0x5c, 0xa9, 0x77, 0x85, 0x10, 0x00))
	test.DemandSuccess(t, err)

	err = m.Run()
	test.ExpectSuccess(t, curated.Is(err, cpu.IllegalOpcode))
	test.ExpectEquality(t, curated.Values(err)[0], any(uint8(0x5c)))
	test.ExpectEquality(t, curated.Values(err)[1], any(uint16(0x8000)))
	before := m.RAMSnapshot()

	// the bytes following the illegal opcode are never executed
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, curated.Is(m.Step(), cpu.Halted))
	}

	// there is nothing to continue
	test.ExpectSuccess(t, m.Continue(nil))
	test.ExpectSuccess(t, m.CPU.IsHalted())
	test.ExpectEquality(t, m.Steps(), 1)
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0x8001))

	after := m.RAMSnapshot()
	test.ExpectEquality(t, after[0x10], uint8(0x00))
	test.ExpectSuccess(t, string(after) == string(before))
}

func TestContinue(t *testing.T) {
	// LDX #$03; DEX; BNE -3; BRK
	m, err := hardware.NewMachine(nil, rom(0xa2, 0x03, 0xca, 0xd0, 0xfd, 0x00))
	test.DemandSuccess(t, err)

	// the machine must be reset before it can continue
	test.ExpectSuccess(t, curated.Is(m.Continue(nil), cpu.NotReset))

	test.DemandSuccess(t, m.Reset())
	test.DemandSuccess(t, m.Step())
	test.DemandSuccess(t, m.Step())

	// continuing does not reset the machine
	test.ExpectSuccess(t, m.Continue(nil))
	test.ExpectEquality(t, m.Steps(), 8)
	test.ExpectEquality(t, m.CPU.HaltReason, cpu.HaltBRK)

	// a halted machine has nothing to continue
	test.ExpectSuccess(t, m.Continue(nil))
	test.ExpectEquality(t, m.Steps(), 8)
}

func TestStopped(t *testing.T) {
	// STP
	m, err := hardware.NewMachine(nil, rom(0xdb))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, curated.Is(m.Run(), cpu.ProcessorStopped))
	test.ExpectEquality(t, m.CPU.HaltReason, cpu.HaltSTP)
}

func TestStepLimit(t *testing.T) {
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.MaxSteps.Set(100))

	// BRA to itself
	m, err := hardware.NewMachine(prefs, rom(0x80, 0xfe))
	test.DemandSuccess(t, err)

	err = m.Run()
	test.ExpectSuccess(t, curated.Is(err, hardware.StepLimitReached))
	test.ExpectEquality(t, m.Steps(), 100)
}

func TestStep(t *testing.T) {
	m, err := hardware.NewMachine(nil, rom(0xa9, 0x42, 0x00))
	test.DemandSuccess(t, err)

	// the machine must be reset before stepping
	test.ExpectSuccess(t, curated.Is(m.Step(), cpu.NotReset))

	test.DemandSuccess(t, m.Reset())
	test.ExpectSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.A.Value(), uint8(0x42))
	test.ExpectSuccess(t, m.Step())
	test.ExpectSuccess(t, m.CPU.IsHalted())
	test.ExpectSuccess(t, curated.Is(m.Step(), cpu.Halted))
	test.ExpectEquality(t, m.Steps(), 2)
}

func TestROMWrite(t *testing.T) {
	// LDA #$01; STA $9000; BRK
	m, err := hardware.NewMachine(nil, rom(0xa9, 0x01, 0x8d, 0x00, 0x90, 0x00))
	test.DemandSuccess(t, err)

	// writing to ROM is not fatal
	test.ExpectSuccess(t, m.Run())
	test.ExpectEquality(t, m.Mem.RejectedWrites(), 1)

	v, err := m.Mem.Peek(0x9000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x00))
}

func TestLengthMismatch(t *testing.T) {
	_, err := hardware.NewMachine(nil, make([]uint8, 100))
	test.ExpectSuccess(t, curated.Is(err, memory.LengthMismatch))

	_, err = hardware.NewMachineFromImage(nil, make([]uint8, 0x9000))
	test.ExpectSuccess(t, curated.Is(err, memory.LengthMismatch))
}

func TestImage(t *testing.T) {
	// the lower half of a full image is ignored
	image := make([]uint8, 0x10000)
	for i := 0; i < 0x8000; i++ {
		image[i] = 0xff
	}
	copy(image[0x8000:], rom(0xa9, 0x42, 0x85, 0x10, 0x00))

	m, err := hardware.NewMachineFromImage(nil, image)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, m.Run())
	test.ExpectEquality(t, m.RAMSnapshot()[0x10], uint8(0x42))
	test.ExpectEquality(t, m.RAMSnapshot()[0x11], uint8(0x00))
}

func TestLoadRAM(t *testing.T) {
	// LDA $0020; STA $0021; BRK
	m, err := hardware.NewMachine(nil, rom(0xad, 0x20, 0x00, 0x8d, 0x21, 0x00, 0x00))
	test.DemandSuccess(t, err)

	data := make([]uint8, 0x21)
	data[0x20] = 0x99
	test.DemandSuccess(t, m.LoadRAM(data))

	test.ExpectSuccess(t, m.Run())
	test.ExpectEquality(t, m.RAMSnapshot()[0x21], uint8(0x99))

	test.ExpectFailure(t, m.LoadRAM(make([]uint8, 0x8001)))
}
