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

// Package imageloader is used to specify the binary image that is to be
// installed in the ROM of the emulated machine.
//
// When the image is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	ld := imageloader.Loader{
//		Filename: "programs/test.bin",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// An image is either the size of the ROM (32KB) or the size of the entire
// address space (64KB). In the second case only the upper half of the image
// is installed in ROM. The ROM() function returns the part of the image that
// is to be installed.
package imageloader
