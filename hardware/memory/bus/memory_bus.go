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

package bus

import (
	"fmt"
	"strings"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/hardware/memory"
	"github.com/JForte05/Steel6502/hardware/memory/memorymap"
	"github.com/JForte05/Steel6502/logger"
)

// ROMWriteRejected is the pattern used when a write to a read-only segment
// is attempted. The condition is not fatal. It is logged by Write() and only
// returned as an error by WriteStrict().
const ROMWriteRejected = "bus: write to ROM rejected (%#02x to %#04x)"

// number of pages in the address space.
const numPages = 256

// a page in the address space mapped to a page in a segment.
type pageEntry struct {
	seg  *memory.Segment
	page int
}

// Bus routes addresses to the RAM and ROM segments. It implements both the
// CPUBus and DebugBus interfaces.
type Bus struct {
	// permission for logging rejected writes
	perm logger.Permission

	ram *memory.Segment
	rom *memory.Segment

	// every page in the address space is mapped to a segment. the mapping is
	// fixed when the bus is created
	pageMap [numPages]pageEntry

	// rejected writes are counted. the most recent address and data are kept
	// for diagnostics
	rejected     int
	lastRejected uint16
	lastData     uint8
}

// NewBus is the preferred method of initialisation for the Bus type. The
// segments must be the sizes of the RAM and ROM areas described in the
// memorymap package.
//
// The logger.Permission argument controls whether rejected writes are logged.
// Use logger.Allow if they should always be logged.
func NewBus(perm logger.Permission, ram *memory.Segment, rom *memory.Segment) *Bus {
	b := &Bus{
		perm: perm,
		ram:  ram,
		rom:  rom,
	}

	for p := 0; p < numPages; p++ {
		a, area := memorymap.MapAddress(uint16(p) << 8)
		rel, _ := memory.SplitAddress(a)
		switch area {
		case memorymap.RAM:
			b.pageMap[p] = pageEntry{seg: ram, page: rel}
		case memorymap.ROM:
			b.pageMap[p] = pageEntry{seg: rom, page: rel}
		default:
			panic(fmt.Sprintf("bus: page %#02x is not in a known memory area", p))
		}
	}

	return b
}

// Read is an implementation of CPUBus. It always succeeds.
func (b *Bus) Read(address uint16) (uint8, error) {
	p, o := memory.SplitAddress(address)
	e := b.pageMap[p]
	return e.seg.Read(e.page, o), nil
}

// Write is an implementation of CPUBus. A write to a read-only segment
// leaves memory unchanged and is logged. It does not return an error because
// writing to ROM is not fatal.
func (b *Bus) Write(address uint16, data uint8) error {
	err := b.WriteStrict(address, data)
	if err != nil {
		logger.Log(b.perm, "bus", err)
	}
	return nil
}

// WriteStrict is the same as Write() but a write to a read-only segment is
// returned as a ROMWriteRejected error.
func (b *Bus) WriteStrict(address uint16, data uint8) error {
	p, o := memory.SplitAddress(address)
	e := b.pageMap[p]
	if e.seg.ReadOnly {
		b.rejected++
		b.lastRejected = address
		b.lastData = data
		return curated.Errorf(ROMWriteRejected, data, address)
	}
	e.seg.Write(e.page, o, data)
	return nil
}

// Peek is an implementation of DebugBus.
func (b *Bus) Peek(address uint16) (uint8, error) {
	return b.Read(address)
}

// Poke is an implementation of DebugBus. Unlike Write() the data is written
// to read-only segments.
func (b *Bus) Poke(address uint16, value uint8) error {
	p, o := memory.SplitAddress(address)
	e := b.pageMap[p]
	e.seg.Write(e.page, o, value)
	return nil
}

// RejectedWrites returns the number of writes to read-only memory since the
// bus was created or since the last call to ResetRejected().
func (b *Bus) RejectedWrites() int {
	return b.rejected
}

// LastRejected returns the address and data of the most recent rejected
// write. The boolean is false if there have been no rejected writes.
func (b *Bus) LastRejected() (uint16, uint8, bool) {
	return b.lastRejected, b.lastData, b.rejected > 0
}

// ResetRejected clears the count of rejected writes.
func (b *Bus) ResetRejected() {
	b.rejected = 0
	b.lastRejected = 0
	b.lastData = 0
}

// RAM returns the RAM segment.
func (b *Bus) RAM() *memory.Segment {
	return b.ram
}

// ROM returns the ROM segment.
func (b *Bus) ROM() *memory.Segment {
	return b.rom
}

// String returns the page map. Runs of pages mapped to the same segment are
// collapsed into a single line.
func (b *Bus) String() string {
	s := strings.Builder{}

	start := 0
	for p := 1; p <= numPages; p++ {
		if p < numPages && b.pageMap[p].seg == b.pageMap[start].seg && b.pageMap[p].page == b.pageMap[p-1].page+1 {
			continue
		}
		e := b.pageMap[start]
		s.WriteString(fmt.Sprintf("pages %02x -> %02x\t%s pages %d -> %d", start, p-1, e.seg.Label, e.page, b.pageMap[p-1].page))
		if e.seg.ReadOnly {
			s.WriteString(" (read-only)")
		}
		s.WriteString("\n")
		start = p
	}

	return s.String()
}
