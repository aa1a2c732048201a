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

package bus_test

import (
	"testing"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/hardware/memory"
	"github.com/JForte05/Steel6502/hardware/memory/bus"
	"github.com/JForte05/Steel6502/logger"
	"github.com/JForte05/Steel6502/test"
)

func newBus(t *testing.T) *bus.Bus {
	t.Helper()
	rom := memory.NewROM()
	data := make([]uint8, rom.Len())
	for i := range data {
		data[i] = uint8(i >> 8)
	}
	test.DemandSuccess(t, rom.Load(data))
	return bus.NewBus(logger.Allow, memory.NewRAM(), rom)
}

func TestRAMReadWrite(t *testing.T) {
	b := newBus(t)

	// for all addresses in RAM, a write followed by a read returns the
	// written value
	for a := 0x0000; a <= 0x7fff; a++ {
		v := uint8(a ^ (a >> 8))
		test.ExpectSuccess(t, b.Write(uint16(a), v))
		d, err := b.Read(uint16(a))
		test.ExpectSuccess(t, err)
		if !test.ExpectEquality(t, d, v, a) {
			break
		}
	}

	// the data ended up in the RAM segment
	test.ExpectEquality(t, b.RAM().Read(0x12, 0x34), uint8(0x34^0x12))
	test.ExpectEquality(t, b.RejectedWrites(), 0)
}

func TestROMWriteRejected(t *testing.T) {
	b := newBus(t)

	// for all addresses in ROM, a write never changes what is read
	for a := 0x8000; a <= 0xffff; a++ {
		before, _ := b.Read(uint16(a))
		test.ExpectSuccess(t, b.Write(uint16(a), ^before))
		after, _ := b.Read(uint16(a))
		if !test.ExpectEquality(t, after, before, a) {
			break
		}
	}

	test.ExpectEquality(t, b.RejectedWrites(), 0x8000)
	addr, data, ok := b.LastRejected()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uint16(0xffff))
	test.ExpectEquality(t, data, ^uint8(0x7f))

	b.ResetRejected()
	test.ExpectEquality(t, b.RejectedWrites(), 0)
	_, _, ok = b.LastRejected()
	test.ExpectFailure(t, ok)

	// strict writes return the condition as an error
	err := b.WriteStrict(0x8000, 0x01)
	test.ExpectSuccess(t, curated.Is(err, bus.ROMWriteRejected))
	test.ExpectEquality(t, err.Error(), "bus: write to ROM rejected (0x01 to 0x8000)")
	test.ExpectSuccess(t, b.WriteStrict(0x7fff, 0x01))
}

func TestROMWriteLogged(t *testing.T) {
	b := newBus(t)
	logger.Clear()

	test.ExpectSuccess(t, b.Write(0xc000, 0x10))

	w := &test.Writer{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "bus: bus: write to ROM rejected (0x10 to 0xc000)\n")
}

func TestRouting(t *testing.T) {
	b := newBus(t)

	// the ROM was loaded so that every byte is the ROM relative page number
	d, _ := b.Read(0x8000)
	test.ExpectEquality(t, d, uint8(0x00))
	d, _ = b.Read(0x80ff)
	test.ExpectEquality(t, d, uint8(0x00))
	d, _ = b.Read(0x8100)
	test.ExpectEquality(t, d, uint8(0x01))
	d, _ = b.Read(0xfffc)
	test.ExpectEquality(t, d, uint8(0x7f))

	test.ExpectEquality(t, b.String(), "pages 00 -> 7f\tRAM pages 0 -> 127\npages 80 -> ff\tROM pages 0 -> 127 (read-only)\n")
}

func TestPeekPoke(t *testing.T) {
	b := newBus(t)

	var dbg bus.DebugBus = b

	// poke can change ROM
	test.ExpectSuccess(t, dbg.Poke(0xfffc, 0x00))
	test.ExpectSuccess(t, dbg.Poke(0xfffd, 0x80))
	d, _ := dbg.Peek(0xfffc)
	test.ExpectEquality(t, d, uint8(0x00))
	d, _ = dbg.Peek(0xfffd)
	test.ExpectEquality(t, d, uint8(0x80))
	test.ExpectEquality(t, b.RejectedWrites(), 0)
}

func TestRead16(t *testing.T) {
	b := newBus(t)

	test.ExpectSuccess(t, b.Write(0x0010, 0x34))
	test.ExpectSuccess(t, b.Write(0x0011, 0x12))
	v, err := bus.Read16(b, 0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x1234))

	// absolute pointer across a page boundary. the high byte comes from the
	// next page
	test.ExpectSuccess(t, b.Write(0x02ff, 0xcd))
	test.ExpectSuccess(t, b.Write(0x0300, 0xab))
	test.ExpectSuccess(t, b.Write(0x0200, 0xee))
	v, _ = bus.Read16(b, 0x02ff)
	test.ExpectEquality(t, v, uint16(0xabcd))

	// absolute pointer at the top of memory wraps to $0000
	test.ExpectSuccess(t, b.Poke(0xffff, 0x78))
	test.ExpectSuccess(t, b.Write(0x0000, 0x56))
	v, _ = bus.Read16(b, 0xffff)
	test.ExpectEquality(t, v, uint16(0x5678))
}

func TestRead16ZeroPage(t *testing.T) {
	b := newBus(t)

	test.ExpectSuccess(t, b.Write(0x0040, 0x00))
	test.ExpectSuccess(t, b.Write(0x0041, 0x90))
	v, err := bus.Read16ZeroPage(b, 0x40)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x9000))

	// zero page pointer at $ff wraps to $00 for the high byte and does not
	// read from $0100
	test.ExpectSuccess(t, b.Write(0x00ff, 0x22))
	test.ExpectSuccess(t, b.Write(0x0000, 0x11))
	test.ExpectSuccess(t, b.Write(0x0100, 0x99))
	v, _ = bus.Read16ZeroPage(b, 0xff)
	test.ExpectEquality(t, v, uint16(0x1122))

	// compared with an absolute read of the same address
	v, _ = bus.Read16(b, 0x00ff)
	test.ExpectEquality(t, v, uint16(0x9922))
}
