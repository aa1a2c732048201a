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

// Package assert is a helper package for the registers type. Test files
// should use it to compare register values with expected values.
package assert

import (
	"reflect"
	"testing"

	"github.com/JForte05/Steel6502/hardware/cpu/registers"
)

// Assert is used to test equality between one value and another. The first
// argument is a register type and the second is an int or, for the status
// register, a flag string of the form "sv-bdizc".
func Assert(t *testing.T, r, x any) {
	t.Helper()

	switch r := r.(type) {
	default:
		t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(r))

	case registers.Register:
		assertRegister(t, r, x)

	case *registers.Register:
		assertRegister(t, *r, x)

	case registers.ProgramCounter:
		assertProgramCounter(t, r, x)

	case *registers.ProgramCounter:
		assertProgramCounter(t, *r, x)

	case registers.StatusRegister:
		assertStatusRegister(t, r, x)

	case *registers.StatusRegister:
		assertStatusRegister(t, *r, x)
	}
}

func assertRegister(t *testing.T, r registers.Register, x any) {
	t.Helper()

	switch x := x.(type) {
	default:
		t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

	case int:
		if int(r.Value()) != x {
			t.Errorf("assert Register %s failed (%#02x - wanted %#02x)", r.Label(), r.Value(), x)
		}
	}
}

func assertProgramCounter(t *testing.T, r registers.ProgramCounter, x any) {
	t.Helper()

	switch x := x.(type) {
	default:
		t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

	case int:
		if int(r.Address()) != x {
			t.Errorf("assert ProgramCounter failed (%#04x - wanted %#04x)", r.Address(), x)
		}
	}
}

func assertStatusRegister(t *testing.T, r registers.StatusRegister, x any) {
	t.Helper()

	switch x := x.(type) {
	default:
		t.Errorf("assert failed (unknown type [%s])", reflect.TypeOf(x))

	case int:
		if int(r.Value()) != x {
			t.Errorf("assert StatusRegister failed (%#02x - wanted %#02x)", r.Value(), x)
		}

	case string:
		if len(x) != 8 {
			t.Errorf("assert StatusRegister failed (status flags must be integer or a string of 8 chars)")
			return
		}
		if r.String() != x {
			t.Errorf("assert StatusRegister failed (%s - wanted %s)", r.String(), x)
		}
	}
}
