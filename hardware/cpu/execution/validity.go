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

package execution

import (
	"github.com/JForte05/Steel6502/curated"
)

// Sentinel error patterns returned by IsValid().
const (
	NotFinalised  = "execution: not finalised"
	NoDefinition  = "execution: no instruction definition"
	WrongBytes    = "execution: unexpected number of bytes read during decode (%d instead of %d)"
	WrongCycles   = "execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)"
	WrongCyclesOr = "execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d to %d)"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(NotFinalised)
	}

	if r.Defn == nil {
		return curated.Errorf(NoDefinition)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(WrongBytes, r.ByteCount, r.Defn.Bytes)
	}

	// cycle count
	if r.Defn.IsBranch() {
		if r.Cycles < r.Defn.Cycles || r.Cycles > r.Defn.Cycles+2 {
			return curated.Errorf(WrongCyclesOr, r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles, r.Defn.Cycles+2)
		}
	} else if r.Defn.PageSensitive {
		if r.Cycles < r.Defn.Cycles || r.Cycles > r.Defn.Cycles+1 {
			return curated.Errorf(WrongCyclesOr, r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles, r.Defn.Cycles+1)
		}
	} else if r.Cycles != r.Defn.Cycles {
		return curated.Errorf(WrongCycles, r.Defn.OpCode, r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles)
	}

	return nil
}
