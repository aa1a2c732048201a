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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/JForte05/Steel6502/hardware/memory"
)

// Memory is a digest of a memory segment. The hash is of the contents at the
// moment Hash() is called.
type Memory struct {
	seg *memory.Segment
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(seg *memory.Segment) Memory {
	return Memory{seg: seg}
}

// Hash implements the Digest interface.
func (dig Memory) Hash() string {
	return fmt.Sprintf("%x", sha1.Sum(dig.seg.Dump()))
}
