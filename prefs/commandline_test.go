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

package prefs_test

import (
	"testing"

	"github.com/JForte05/Steel6502/prefs"
	"github.com/JForte05/Steel6502/test"
)

func TestCommandLineStackValues(t *testing.T) {
	// empty on start
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// single value
	prefs.PushCommandLineStack("cpu.trace::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.trace::true")

	// additional space is trimmed
	prefs.PushCommandLineStack("   cpu.trace:: true ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.trace::true")

	// remaining string is sorted
	prefs.PushCommandLineStack("machine.maxsteps::100; cpu.trace::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.trace::true; machine.maxsteps::100")

	// invalid entries are dropped
	prefs.PushCommandLineStack("cpu_trace")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("cpu_trace;machine.maxsteps::100")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "machine.maxsteps::100")

	// taken values do not appear in the popped string
	prefs.PushCommandLineStack("cpu.trace::true;machine.maxsteps::100")
	ok, v := prefs.GetCommandLinePref("cpu.trace")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "true")
	ok, _ = prefs.GetCommandLinePref("cpu.trace")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "machine.maxsteps::100")
}

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("cpu.trace::true")
	prefs.PushCommandLineStack("machine.maxsteps::100")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "machine.maxsteps::100")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "cpu.trace::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
