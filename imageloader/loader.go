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

package imageloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/hardware/memory/memorymap"
)

// Sentinel error patterns returned by Load().
const (
	UnsupportedSize = "imageloader: unsupported image size (%d bytes)"
	UnexpectedHash  = "imageloader: unexpected hash value (%s)"
	LoadError       = "imageloader: %v"
)

// Loader is used to specify the binary image to use when creating the
// machine.
type Loader struct {
	// filename of image to load.
	Filename string

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the image data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []uint8

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file", "":
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	switch len(data) {
	case memorymap.SizeROM:
	case memorymap.SizeRAM + memorymap.SizeROM:
	default:
		return curated.Errorf(UnsupportedSize, len(data))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

// ROM returns the part of the image to be installed in ROM. Returns nil if
// the image has not been loaded.
func (ld Loader) ROM() []uint8 {
	if !ld.HasLoaded() {
		return nil
	}
	return ld.Data[len(ld.Data)-memorymap.SizeROM:]
}

// ResetVector returns the address stored in the reset vector of the image.
func (ld Loader) ResetVector() (uint16, bool) {
	rom := ld.ROM()
	if rom == nil {
		return 0, false
	}
	return uint16(rom[len(rom)-3])<<8 | uint16(rom[len(rom)-4]), true
}
