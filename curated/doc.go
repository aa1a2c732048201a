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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with Errorf(). The pattern string given to
// Errorf() identifies the error and packages that raise curated errors
// declare their patterns as exported const strings. For example, the cpu
// package declares:
//
//	const IllegalOpcode = "cpu: illegal opcode (%#02x) at (%#04x)"
//
// and callers test for it with Is():
//
//	if curated.Is(err, cpu.IllegalOpcode) {
//		...
//	}
//
// Has() is similar but looks for the pattern anywhere in the chain of
// curated errors:
//
//	err := curated.Errorf("machine: %v", cpuErr)
//	curated.Has(err, cpu.IllegalOpcode) // true
//	curated.Is(err, cpu.IllegalOpcode)  // false
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts, where parts are separated by ": ". This means a package can
// wrap an error with its own prefix without worrying about whether the
// wrapped error already has the same prefix.
//
// Curated errors implement Unwrap() so that errors.Is() will find
// non-curated errors used as values. For example, an image loader error
// wrapping os.ErrNotExist.
package curated
