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

import (
	"encoding/hex"
	"fmt"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/hardware/memory/memorymap"
)

// LengthMismatch is returned when data being loaded into a segment is the
// wrong size for the segment.
const LengthMismatch = "memory: %s: length mismatch (expected %#x bytes, got %#x)"

// Segment is an ordered sequence of pages. The RAM and ROM are both
// segments.
type Segment struct {
	// label is used in error messages and String() output
	Label string

	// the address of the first byte of the segment in the address space
	Origin uint16

	// read-only segments cannot be written to through the bus. the segment
	// itself does not enforce this
	ReadOnly bool

	pages []Page
}

// NewSegment is the preferred method of initialisation for the Segment type.
// All bytes in the segment are zero.
func NewSegment(label string, origin uint16, numPages int, readOnly bool) *Segment {
	return &Segment{
		Label:    label,
		Origin:   origin,
		ReadOnly: readOnly,
		pages:    make([]Page, numPages),
	}
}

// NewRAM creates the 32KB RAM segment.
func NewRAM() *Segment {
	return NewSegment("RAM", memorymap.OriginRAM, memorymap.SizeRAM/PageSize, false)
}

// NewROM creates the 32KB ROM segment.
func NewROM() *Segment {
	return NewSegment("ROM", memorymap.OriginROM, memorymap.SizeROM/PageSize, true)
}

// NumPages returns the number of pages in the segment.
func (seg *Segment) NumPages() int {
	return len(seg.pages)
}

// Len returns the size of the segment in bytes.
func (seg *Segment) Len() int {
	return len(seg.pages) * PageSize
}

// Read the byte at offset in the page. The page index is relative to the
// start of the segment and must be less than NumPages().
func (seg *Segment) Read(page int, offset uint8) uint8 {
	return seg.pages[page].Read(offset)
}

// Write the byte at offset in the page. The page index is relative to the
// start of the segment and must be less than NumPages().
//
// Write does not check the ReadOnly field. That is the responsibility of the
// bus.
func (seg *Segment) Write(page int, offset uint8, data uint8) {
	seg.pages[page].Write(offset, data)
}

// Load fills the segment with data. The data must be exactly the size of the
// segment. Nothing is copied if the size is wrong.
//
// Loading is not a bus write and so can be used with read-only segments.
func (seg *Segment) Load(data []uint8) error {
	if len(data) != seg.Len() {
		return curated.Errorf(LengthMismatch, seg.Label, seg.Len(), len(data))
	}
	return seg.LoadAt(0, data)
}

// LoadAt copies data into the segment starting at the offset from the start
// of the segment. Nothing is copied if the data does not fit.
func (seg *Segment) LoadAt(offset int, data []uint8) error {
	if offset < 0 || offset+len(data) > seg.Len() {
		return curated.Errorf(LengthMismatch, seg.Label, seg.Len()-offset, len(data))
	}

	for i, d := range data {
		a := offset + i
		seg.pages[a/PageSize][a%PageSize] = d
	}

	return nil
}

// Dump returns a copy of the contents of the segment, in page order.
func (seg *Segment) Dump() []uint8 {
	d := make([]uint8, 0, seg.Len())
	for i := range seg.pages {
		d = append(d, seg.pages[i][:]...)
	}
	return d
}

// Page returns a copy of the numbered page.
func (seg *Segment) Page(page int) Page {
	return seg.pages[page]
}

func (seg *Segment) String() string {
	return fmt.Sprintf("%s %#04x -> %#04x\n%s", seg.Label, seg.Origin, int(seg.Origin)+seg.Len()-1, hex.Dump(seg.Dump()))
}
