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

// Package memorymap describes the two areas of the 64KB address space. The
// lower 32KB is RAM and the upper 32KB is ROM. Which area an address belongs
// to depends only on the top bit of the address. There are no mirrors and
// no unmapped holes.
//
// The MapAddress() function returns the area and the address normalised to
// the area.
package memorymap
