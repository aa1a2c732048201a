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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case ROM:
		return "ROM"
	}

	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	RAM
	ROM
)

// The origin and memory top for each area of memory.
//
// Implementations of the different memory areas may need to drag the address
// down into the range of an array. This can be done with (address^origin)
// rather than subtraction.
const (
	OriginRAM = uint16(0x0000)
	MemtopRAM = uint16(0x7fff)
	OriginROM = uint16(0x8000)
	MemtopROM = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// The size of each area in bytes.
const (
	SizeRAM = int(MemtopRAM-OriginRAM) + 1
	SizeROM = int(MemtopROM-OriginROM) + 1
)

// the single bit that distinguishes a ROM address from a RAM address.
const romBit = uint16(0x8000)

// MapAddress returns the area the address is in and the address normalised
// to that area. The mapping is total. Every address is in exactly one area.
func MapAddress(address uint16) (uint16, Area) {
	if address&romBit == romBit {
		return address ^ OriginROM, ROM
	}
	return address ^ OriginRAM, RAM
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
