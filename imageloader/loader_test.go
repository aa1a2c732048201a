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

package imageloader_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/imageloader"
	"github.com/JForte05/Steel6502/test"
)

func writeImage(t *testing.T, size int) string {
	t.Helper()

	data := make([]uint8, size)
	data[size-4] = 0x34
	data[size-3] = 0x82
	data[size-0x8000] = 0xa9

	fn := filepath.Join(t.TempDir(), "test.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestLoadROMSize(t *testing.T) {
	ld := imageloader.NewLoader(writeImage(t, 0x8000))
	test.ExpectEquality(t, ld.ShortName(), "test")
	test.ExpectFailure(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.ROM()), 0)

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.ROM()), 0x8000)
	test.ExpectEquality(t, ld.ROM()[0], uint8(0xa9))
	test.ExpectEquality(t, len(ld.Hash), 40)

	v, ok := ld.ResetVector()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0x8234))
}

func TestLoadFullImage(t *testing.T) {
	ld := imageloader.NewLoader(writeImage(t, 0x10000))
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 0x10000)

	// only the upper half is returned
	test.ExpectEquality(t, len(ld.ROM()), 0x8000)
	test.ExpectEquality(t, ld.ROM()[0], uint8(0xa9))
}

func TestUnsupportedSize(t *testing.T) {
	ld := imageloader.NewLoader(writeImage(t, 0x9000))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, imageloader.UnsupportedSize))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestMissingFile(t *testing.T) {
	ld := imageloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, imageloader.LoadError))
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))
}

func TestHash(t *testing.T) {
	fn := writeImage(t, 0x8000)

	ld := imageloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())

	// the same file with the recorded hash loads successfully
	ok := imageloader.Loader{Filename: fn, Hash: ld.Hash}
	test.ExpectSuccess(t, ok.Load())

	bad := imageloader.Loader{Filename: fn, Hash: "0000"}
	test.ExpectSuccess(t, curated.Is(bad.Load(), imageloader.UnexpectedHash))
}

func TestHTTP(t *testing.T) {
	data := make([]uint8, 0x8000)
	data[0] = 0xea

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.bin" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	ld := imageloader.NewLoader(srv.URL + "/test.bin")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.ROM()[0], uint8(0xea))

	ld = imageloader.NewLoader(srv.URL + "/missing.bin")
	test.ExpectSuccess(t, curated.Is(ld.Load(), imageloader.LoadError))
}
