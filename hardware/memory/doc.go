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

// Package memory implements the storage of the emulated machine. The storage
// is divided into fixed size pages of 256 bytes and pages are grouped into
// segments.
//
// There are two segments, the RAM and the ROM, and together they cover the
// entire 64KB address space:
//
//	                     ---- RAM ($0000 - $7fff)
//	                    |
//	CPU ---- bus ---- *
//	                    |
//	                     -<-- ROM ($8000 - $ffff)
//
// The asterisk indicates that addresses used by the CPU are mapped to a
// segment by the bus package. The arrow pointing away from the ROM indicates
// that the CPU can only read from the ROM.
//
// The segments themselves know nothing about read-only status beyond the
// ReadOnly field. The bus is responsible for rejecting writes. Loading a
// segment with Load() is how the ROM is initialised and is not a bus write.
package memory
