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

// Package bus defines the access patterns to memory. The CPU only ever uses
// the CPUBus interface. The DebugBus is for the exclusive use of debuggers
// and test harnesses, which need to prepare memory without going through the
// read-only checks.
//
// The Bus type implements both interfaces over a RAM segment and a ROM
// segment. A write to the ROM is rejected and logged but execution continues,
// which is how the hardware behaves. WriteStrict() is available for callers
// that want the rejection as an error.
//
// Read16() and Read16ZeroPage() read 16 bit little-endian values. The
// difference between them is load-bearing. Zero page pointers wrap within
// the zero page and absolute pointers do not.
package bus
