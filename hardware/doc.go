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

// Package hardware is the base package for the W65C02S emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// the CPU, the memory bus and the two memory segments. The RAM occupies the
// lower half of the address space and the ROM the upper half. A program image
// is installed in ROM when the Machine is created and must contain the reset
// vector.
//
// From here, the emulation can either be started with Run(), which executes
// instructions until the program ends with BRK, or it can be stepped one
// instruction at a time with Step().
//
//	m, err := hardware.NewMachineFromImage(nil, image)
//	if err != nil {
//		return err
//	}
//	err = m.Run()
//	ram := m.RAMSnapshot()
//
// The contents of RAM can be inspected with RAMSnapshot() after Run() has
// returned, whether or not an error was returned.
package hardware
