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

	"github.com/JForte05/Steel6502/hardware/cpu"
	"github.com/JForte05/Steel6502/hardware/cpu/execution"
)

// the length of the data hashed for each instruction
const stepLength = 11

// Trace is a chained digest of executed instructions. Step() has the correct
// signature to be used with hardware.Machine.RunWithCallback().
type Trace struct {
	mc     *cpu.CPU
	digest [sha1.Size]byte

	// the previous digest followed by the data of the most recent step
	buffer [sha1.Size + stepLength]byte

	steps int
}

// NewTrace is the preferred method of initialisation for the Trace type. The
// register values are taken from the CPU after each step.
func NewTrace(mc *cpu.CPU) *Trace {
	return &Trace{mc: mc}
}

// Hash implements the Digest interface.
func (dig *Trace) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Steps returns the number of instructions added to the digest since the
// last reset.
func (dig *Trace) Steps() int {
	return dig.steps
}

// ResetDigest resets the digest value to zero.
func (dig *Trace) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.steps = 0
}

// Step adds the instruction and the current state of the registers to the
// digest.
func (dig *Trace) Step(r *execution.Result) error {
	if r.Defn == nil {
		return fmt.Errorf("digest: no instruction to add")
	}

	n := copy(dig.buffer[:], dig.digest[:])
	step := dig.buffer[n:]
	step[0] = uint8(r.Address >> 8)
	step[1] = uint8(r.Address)
	step[2] = r.Defn.OpCode
	step[3] = uint8(r.InstructionData)
	step[4] = uint8(r.InstructionData >> 8)
	step[5] = dig.mc.A.Value()
	step[6] = dig.mc.X.Value()
	step[7] = dig.mc.Y.Value()
	step[8] = dig.mc.SP.Value()
	step[9] = dig.mc.Status.Value()
	step[10] = uint8(r.Cycles)

	dig.digest = sha1.Sum(dig.buffer[:])
	dig.steps++

	return nil
}
