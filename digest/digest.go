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

// Package digest produces cryptographic hashes of the emulation. The hash can
// be used to compare the output of subsequent runs of the same program. If a
// new hash differs from a previously recorded value then something has
// changed, either in the program or in the emulator.
//
// Trace hashes the sequence of executed instructions and the register values
// after each one. Each new hash is chained to the previous one so that the
// final value depends on the entire run. Memory hashes the contents of a
// memory segment.
package digest

// Digest implementations return a cryptographic hash of what they have
// observed.
type Digest interface {
	Hash() string
}
