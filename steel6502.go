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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JForte05/Steel6502/debugger"
	"github.com/JForte05/Steel6502/digest"
	"github.com/JForte05/Steel6502/disassembly"
	"github.com/JForte05/Steel6502/hardware"
	"github.com/JForte05/Steel6502/hardware/memory/memorymap"
	"github.com/JForte05/Steel6502/hardware/preferences"
	"github.com/JForte05/Steel6502/imageloader"
	"github.com/JForte05/Steel6502/logger"
	"github.com/JForte05/Steel6502/modalflag"
	"github.com/JForte05/Steel6502/performance"
	"github.com/JForte05/Steel6502/prefs"
	"github.com/JForte05/Steel6502/statsview"
	"github.com/JForte05/Steel6502/version"
	"github.com/bradleyjkemp/memviz"
)

// exit values returned by launch().
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the command line arguments. returns the value to
// be used with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "STEP", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "STEP":
		err = step(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// imageArg loads the single image argument of the current mode.
func imageArg(md *modalflag.Modes) (imageloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return imageloader.Loader{}, fmt.Errorf("binary image required for %s mode", md)
	case 1:
		ld := imageloader.NewLoader(md.GetArg(0))
		err := ld.Load()
		if err != nil {
			return imageloader.Loader{}, err
		}
		return ld, nil
	}
	return imageloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

// newPreferences creates the hardware preferences with the preference string
// from the command line applied.
func newPreferences(cmdline string) (*preferences.Preferences, error) {
	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
			}
		}()
	}
	return preferences.NewPreferences()
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	dump := md.AddString("dump", "ram.bin", "file to write the contents of RAM to after the run")
	trace := md.AddBool("trace", false, "log every instruction as it is executed")
	log := md.AddBool("log", false, "echo log to stdout")
	maxSteps := md.AddInt("maxsteps", -1, "number of instructions before the run is stopped. zero is no limit")
	reservedNOP := md.AddBool("reservednop", false, "execute undefined opcodes as NOPs")
	ram := md.AddString("ram", "", "file to load into RAM at $0000 before the run")
	cmdline := md.AddString("prefs", "", "preference string. for example: \"cpu.trace::true; machine.maxsteps::100\"")
	memvizFile := md.AddString("memviz", "", "write a graphviz DOT file of the machine after the run")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	dig := md.AddBool("digest", false, "print digests of the executed instructions and of RAM after the run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := imageArg(md)
	if err != nil {
		return err
	}

	prf, err := newPreferences(*cmdline)
	if err != nil {
		return err
	}

	if *trace {
		err = prf.Trace.Set(true)
		if err != nil {
			return err
		}
	}
	if *reservedNOP {
		err = prf.ReservedNOP.Set(true)
		if err != nil {
			return err
		}
	}
	if *maxSteps >= 0 {
		err = prf.MaxSteps.Set(*maxSteps)
		if err != nil {
			return err
		}
	}

	if *log || *trace {
		logger.SetEcho(logger.NewColorizer(md.Output))
		defer logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	vm, err := hardware.NewMachine(prf, ld.ROM())
	if err != nil {
		return err
	}

	if *ram != "" {
		data, err := os.ReadFile(*ram)
		if err != nil {
			return err
		}
		err = vm.LoadRAM(data)
		if err != nil {
			return err
		}
	}

	var trc *digest.Trace
	var runErr error
	if *dig {
		trc = digest.NewTrace(vm.CPU)
		runErr = vm.RunWithCallback(trc.Step)
	} else {
		runErr = vm.Run()
	}

	// memory is written whether or not the run ended with an error
	if *dump != "" {
		err = writeDump(*dump, vm.RAMSnapshot())
		if err != nil {
			return errors.Join(runErr, err)
		}
	}

	if *memvizFile != "" {
		err = writeMemviz(*memvizFile, vm)
		if err != nil {
			return errors.Join(runErr, err)
		}
	}

	if runErr != nil {
		return runErr
	}

	fmt.Fprintf(md.Output, "%s halted by %s at %04x after %d instructions\n",
		ld.ShortName(), vm.CPU.HaltReason, vm.CPU.LastResult.Address, vm.Steps())
	if addr, data, ok := vm.Mem.LastRejected(); ok {
		fmt.Fprintf(md.Output, "%d writes to ROM rejected (last was %02x to %04x)\n", vm.Mem.RejectedWrites(), data, addr)
	}
	if trc != nil {
		fmt.Fprintf(md.Output, "trace digest: %s\n", trc.Hash())
		fmt.Fprintf(md.Output, "ram digest: %s\n", digest.NewMemory(vm.RAM).Hash())
	}

	return nil
}

// writeDump writes the RAM snapshot to filename, creating the parent
// directory if required.
func writeDump(filename string, data []uint8) error {
	err := os.MkdirAll(filepath.Dir(filename), 0o755)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	err = os.WriteFile(filename, data, 0o644)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	return nil
}

func writeMemviz(filename string, vm *hardware.Machine) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("memviz: %w", err)
		}
	}()
	memviz.Map(f, vm)
	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	start := md.AddAddress("start", 0, "address to start disassembly from (default reset vector)")
	end := md.AddAddress("end", 0xffff, "last address to disassemble")
	all := md.AddBool("all", false, "disassemble the entire ROM")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := imageArg(md)
	if err != nil {
		return err
	}

	vm, err := hardware.NewMachine(nil, ld.ROM())
	if err != nil {
		return err
	}

	var startSet bool
	md.Visit(func(flg string) {
		if flg == "start" {
			startSet = true
		}
	})

	from := *start
	if *all {
		from = memorymap.OriginROM
	} else if !startSet {
		from, _ = ld.ResetVector()
	}

	dsm, err := disassembly.FromMemory(vm.Mem, from, *end)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
	})
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	reservedNOP := md.AddBool("reservednop", false, "execute undefined opcodes as NOPs")
	cmdline := md.AddString("prefs", "", "preference string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := imageArg(md)
	if err != nil {
		return err
	}

	prf, err := newPreferences(*cmdline)
	if err != nil {
		return err
	}
	if *reservedNOP {
		err = prf.ReservedNOP.Set(true)
		if err != nil {
			return err
		}
	}

	vm, err := hardware.NewMachine(prf, ld.ROM())
	if err != nil {
		return err
	}

	dbg := debugger.NewDebugger(vm, debugger.NewTerminal())
	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: NONE, CPU, MEM, TRACE, ALL (comma separated)")
	reservedNOP := md.AddBool("reservednop", false, "execute undefined opcodes as NOPs")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	ld, err := imageArg(md)
	if err != nil {
		return err
	}

	vm, err := hardware.NewMachine(nil, ld.ROM())
	if err != nil {
		return err
	}
	if *reservedNOP {
		err = vm.Prefs.ReservedNOP.Set(true)
		if err != nil {
			return err
		}
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, prof, vm, *duration)
}
