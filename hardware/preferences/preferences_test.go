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

package preferences_test

import (
	"testing"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/hardware/preferences"
	"github.com/JForte05/Steel6502/prefs"
	"github.com/JForte05/Steel6502/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.ReservedNOP.Get().(bool), false)
	test.ExpectEquality(t, p.MaxSteps.Get().(int), preferences.DefaultMaxSteps)
	test.ExpectEquality(t, p.Trace.Get().(bool), false)
	test.ExpectEquality(t, p.LogROMWrites.Get().(bool), true)

	test.ExpectEquality(t, p.String(), "bus.logromwrites :: true\ncpu.reservednop :: false\ncpu.trace :: false\nmachine.maxsteps :: 10000000\n")
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("cpu.reservednop::true; machine.maxsteps::0x100; other::1")
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.ReservedNOP.Get().(bool), true)
	test.ExpectEquality(t, p.MaxSteps.Get().(int), 256)

	// unused entries are returned when the group is popped
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::1")
}

func TestSet(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Set("machine.maxsteps", 50))
	test.ExpectEquality(t, p.MaxSteps.Get().(int), 50)

	err = p.Set("machine.maxsteps", -1)
	test.ExpectSuccess(t, curated.Is(err, prefs.SetFailed))
	test.ExpectEquality(t, p.MaxSteps.Get().(int), 50)

	err = p.Set("cpu.unknown", true)
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, p.SetDefaults())
	test.ExpectEquality(t, p.MaxSteps.Get().(int), preferences.DefaultMaxSteps)
}

func TestPermissions(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	trace := p.TracePermission()
	test.ExpectFailure(t, trace.AllowLogging())
	test.ExpectSuccess(t, p.Trace.Set(true))
	test.ExpectSuccess(t, trace.AllowLogging())

	rom := p.ROMWritePermission()
	test.ExpectSuccess(t, rom.AllowLogging())
	test.ExpectSuccess(t, p.LogROMWrites.Set("false"))
	test.ExpectFailure(t, rom.AllowLogging())
}
