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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JForte05/Steel6502/test"
)

// writeImage creates a 32KB image with the program at $8000 and returns the
// filename.
func writeImage(t *testing.T, program ...uint8) string {
	t.Helper()
	rom := make([]uint8, 0x8000)
	copy(rom, program)
	rom[0x7ffc] = 0x00
	rom[0x7ffd] = 0x80

	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, rom, 0o644))
	return fn
}

// LDA #$42; STA $0010; BRK
var program = []uint8{0xa9, 0x42, 0x8d, 0x10, 0x00, 0x00}

func TestRunMode(t *testing.T) {
	img := writeImage(t, program...)
	dump := filepath.Join(t.TempDir(), "out", "ram.bin")

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-dump", dump, img}, w), exitOK, w.String())
	test.ExpectEquality(t, w.String(), "prog halted by BRK at 8005 after 3 instructions\n")

	data, err := os.ReadFile(dump)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(data), 0x8000)
	test.ExpectEquality(t, data[0x10], uint8(0x42))
}

func TestRunModeRAM(t *testing.T) {
	// LDA $20; STA $0010; BRK
	img := writeImage(t, 0xa5, 0x20, 0x8d, 0x10, 0x00, 0x00)
	dir := t.TempDir()
	dump := filepath.Join(dir, "ram.bin")

	ram := make([]uint8, 0x21)
	ram[0x20] = 0x99
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "in.bin"), ram, 0o644))

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-dump", dump, "-ram", filepath.Join(dir, "in.bin"), img}, w), exitOK, w.String())

	data, err := os.ReadFile(dump)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, data[0x10], uint8(0x99))
}

func TestRunModeErrors(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "ram.bin")

	// STP. memory is still written
	img := writeImage(t, 0xa9, 0x42, 0x85, 0x10, 0xdb)
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-dump", dump, img}, w), exitModeError)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in RUN mode: cpu: processor stopped"), w.String())
	data, err := os.ReadFile(dump)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, data[0x10], uint8(0x42))

	// step limit. JMP $8000
	img = writeImage(t, 0x4c, 0x00, 0x80)
	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN", "-dump", dump, "-maxsteps", "100", img}, w), exitModeError)
	test.ExpectSuccess(t, w.Contains("step limit reached (100 instructions)"), w.String())

	// no image
	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN"}, w), exitModeError)
	test.ExpectSuccess(t, w.Contains("binary image required"), w.String())

	// image of the wrong size
	small := filepath.Join(dir, "small.bin")
	test.DemandSuccess(t, os.WriteFile(small, []uint8{0x00}, 0o644))
	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN", small}, w), exitModeError)
}

func TestDisasmMode(t *testing.T) {
	img := writeImage(t, program...)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"DISASM", "-bytecode", "-end", "$8005", img}, w), exitOK, w.String())
	test.ExpectEquality(t, w.String(), strings.Join([]string{
		"8000  a9 42     LDA #$42",
		"8002  8d 10 00  STA $0010",
		"8005  00 00     BRK",
	}, "\n")+"\n")

	w.Clear()
	test.ExpectEquality(t, launch([]string{"disasm", "-start", "8002", "-end", "8002", img}, w), exitOK, w.String())
	test.ExpectEquality(t, w.String(), "8002  STA $0010\n")
}

func TestPerformanceMode(t *testing.T) {
	img := writeImage(t, program...)

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-duration", "20ms", img}, w), exitOK, w.String())
	test.ExpectSuccess(t, w.Contains("instructions per second"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"PERFORMANCE", "-profile", "disk", img}, w), exitModeError)
}

func TestParseError(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-help"}, w), exitOK)
	test.ExpectSuccess(t, w.Contains("available modes: RUN, DISASM, STEP, PERFORMANCE, VERSION"), w.String())
}

func TestDigest(t *testing.T) {
	img := writeImage(t, program...)
	dump := filepath.Join(t.TempDir(), "ram.bin")

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-digest", "-dump", dump, img}, w), exitOK, w.String())
	lines := w.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "trace digest: "))
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "ram digest: "))

	// the digests are the same every time the program is run
	first := w.String()
	w.Clear()
	test.ExpectEquality(t, launch([]string{"-digest", "-dump", dump, img}, w), exitOK)
	test.ExpectEquality(t, w.String(), first)
}

func TestVersionMode(t *testing.T) {
	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"VERSION"}, w), exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Steel6502 "), w.String())
}

func TestMemviz(t *testing.T) {
	img := writeImage(t, program...)
	dir := t.TempDir()
	fn := filepath.Join(dir, "machine.dot")

	w := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"RUN", "-dump", "", "-memviz", fn, img}, w), exitOK, w.String())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))

	// a directory cannot be written as a file
	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN", "-dump", "", "-memviz", dir, img}, w), exitModeError)
	test.ExpectSuccess(t, w.Contains("memviz: "), w.String())
}
