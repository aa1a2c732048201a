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

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The CPU reads and writes memory exclusively through this interface.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebugBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine.
//
// Poke() can write to read-only memory.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// Read16 reads a little-endian 16 bit value from the address and the address
// after it. The address of the high byte carries into the next page. This is
// the behaviour required for pointers in absolute addressing modes.
//
// An address of $ffff will read the high byte from $0000.
func Read16(mem CPUBus, address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Read16ZeroPage reads a little-endian 16 bit pointer from the zero page.
// The address of the high byte wraps within the zero page. So a pointer at
// $ff reads the low byte from $00ff and the high byte from $0000.
func Read16ZeroPage(mem CPUBus, address uint8) (uint16, error) {
	lo, err := mem.Read(uint16(address))
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(uint16(address + 1))
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
