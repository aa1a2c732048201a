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

package ansi_test

import (
	"testing"

	"github.com/JForte05/Steel6502/debugger/terminal/easyterm/ansi"
	"github.com/JForte05/Steel6502/test"
)

func TestBuild(t *testing.T) {
	s, err := ansi.Build("red", "", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.Build("green", "bold", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[32;1m")

	s, err = ansi.Build("", "", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, ansi.NormalPen)

	_, err = ansi.Build("puce", "", false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.Pens["red"], "\033[91m")
	test.ExpectEquality(t, ansi.DimPens["red"], "\033[31m")
}
