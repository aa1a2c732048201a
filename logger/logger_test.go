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

package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/JForte05/Steel6502/logger"
	"github.com/JForte05/Steel6502/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.Writer{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the test.Writer buffer before continuing, makes comparisons
	// easier to manage
	w.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Clear()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Clear()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Clear()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.Writer{}

	log.Log(logger.Allow, "bus", "write to rom")
	log.Log(logger.Allow, "bus", "write to rom")
	log.Log(logger.Allow, "bus", "write to rom")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "bus: write to rom (repeat x3)\n")
	test.ExpectEquality(t, log.Len(), 1)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(5)
	for i := 0; i < 20; i++ {
		log.Logf(logger.Allow, "tag", "entry %d", i)
	}
	test.ExpectEquality(t, log.Len(), 5)

	w := &test.Writer{}
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "tag: entry 19\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.Writer{}

	log.Log(logger.Allow, "tag", "a")
	log.Log(logger.Allow, "tag", "b")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: a\ntag: b\n")

	w.Clear()
	log.Log(logger.Allow, "tag", "c")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "tag: c\n")

	w.Clear()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.Writer{}

	log.SetEcho(w)
	log.Log(logger.Allow, "tag", "echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.Writer{}

	log.Log(prohibitLogging{allow: false}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(prohibitLogging{allow: true}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.Writer{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "wrapped: %v", fmt.Errorf("inner"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer test\ntag: 100\ntag: wrapped: inner\n")
}

func TestColorizerPassThrough(t *testing.T) {
	// test.Writer is not a terminal so output should be unchanged
	w := &test.Writer{}
	c := logger.NewColorizer(w)
	fmt.Fprint(c, "tag: detail\n")
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}
