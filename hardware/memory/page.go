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

package memory

// PageSize is the number of bytes in a Page.
const PageSize = 256

// Page is the unit of storage. Segments of memory are built from contiguous
// pages.
//
// The offset of a byte in the page is a uint8 so there is no possibility of
// an out of range access. A page has no concept of being read-only.
type Page [PageSize]uint8

// Read the byte at offset.
func (p *Page) Read(offset uint8) uint8 {
	return p[offset]
}

// Write the byte at offset.
func (p *Page) Write(offset uint8, data uint8) {
	p[offset] = data
}

// SplitAddress returns the page number and offset of an address.
func SplitAddress(address uint16) (int, uint8) {
	return int(address >> 8), uint8(address)
}
