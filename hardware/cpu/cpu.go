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

package cpu

import (
	"fmt"

	"github.com/JForte05/Steel6502/curated"
	"github.com/JForte05/Steel6502/hardware/cpu/execution"
	"github.com/JForte05/Steel6502/hardware/cpu/instructions"
	"github.com/JForte05/Steel6502/hardware/cpu/registers"
	"github.com/JForte05/Steel6502/hardware/memory/addresses"
	"github.com/JForte05/Steel6502/hardware/memory/bus"
	"github.com/JForte05/Steel6502/hardware/preferences"
	"github.com/JForte05/Steel6502/logger"
)

// Sentinel error patterns returned by ExecuteInstruction().
const (
	IllegalOpcode     = "cpu: illegal opcode (%#02x) at %#04x"
	InternalAssertion = "cpu: internal assertion: %v"
	ProcessorStopped  = "cpu: processor stopped (%s at %#04x)"
	Halted            = "cpu: cpu is halted"
	NotReset          = "cpu: cpu has not been reset"
)

// State of the CPU.
type State int

// List of valid CPU states. A new CPU is in the StateReset state and must be
// reset with CPU.Reset() before instructions can be executed.
const (
	StateReset State = iota
	StateRunning
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateReset:
		return "reset"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	}
	return "unknown state"
}

// HaltReason indicates which instruction moved the CPU to the halted state.
type HaltReason int

// List of valid halt reasons.
const (
	HaltNone HaltReason = iota
	HaltBRK
	HaltSTP
	HaltWAI
	HaltIllegal
)

func (h HaltReason) String() string {
	switch h {
	case HaltNone:
		return "none"
	case HaltBRK:
		return "BRK"
	case HaltSTP:
		return "STP"
	case HaltWAI:
		return "WAI"
	case HaltIllegal:
		return "illegal opcode"
	}
	return "unknown halt reason"
}

// CPU implements the W65C02S. Register logic is implemented by the types in
// the registers sub-package.
type CPU struct {
	prefs *preferences.Preferences

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem bus.CPUBus

	State      State
	HaltReason HaltReason

	// last result. valid when LastResult.Final is true
	LastResult execution.Result

	// logging of every instruction is controlled by the cpu.trace preference
	trace logger.Permission
}

type denyLogging struct{}

func (denyLogging) AllowLogging() bool {
	return false
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The prefs argument can be nil in which case the CPU behaves as though the
// default preferences had been supplied.
//
// The CPU must be reset before it is used.
func NewCPU(prefs *preferences.Preferences, mem bus.CPUBus) *CPU {
	mc := &CPU{
		prefs:  prefs,
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
		acc8:   registers.NewRegister(0, "accumulator"),
		trace:  denyLogging{},
	}

	if prefs != nil {
		mc.trace = prefs.TracePermission()
	}

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// Reset loads the program counter with the address stored in the reset
// vector and puts the registers in their post-reset state. The CPU is ready
// to execute instructions after a successful reset.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()

	address, err := bus.Read16(mc.mem, addresses.Reset)
	if err != nil {
		return err
	}
	mc.PC.Load(address)

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)

	// the reset sequence performs three suppressed pushes from an initial
	// stack pointer of zero
	mc.SP.Load(0xfd)

	// interrupts disabled and decimal mode cleared. the break and unused bits
	// will be set
	mc.Status.FromValue(0x34)

	mc.State = StateRunning
	mc.HaltReason = HaltNone

	return nil
}

// IsHalted returns true if the CPU has executed BRK, STP, WAI or an illegal
// opcode.
func (mc *CPU) IsHalted() bool {
	return mc.State == StateHalted
}

func (mc *CPU) reservedNOP() bool {
	return mc.prefs != nil && mc.prefs.ReservedNOP.Get().(bool)
}

// read8BitPC reads 8 bits from the memory location pointed to by PC and
// advances the PC.
//
// side-effects:
//   - updates LastResult.ByteCount
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

// read16BitPC reads the 16 bit little-endian operand at PC.
//
// side-effects:
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	mc.LastResult.InstructionData = (uint16(hi) << 8) | uint16(lo)
	return mc.LastResult.InstructionData, nil
}

// push value onto the stack. the stack is always in page one.
func (mc *CPU) push(value uint8) error {
	err := mc.mem.Write(addresses.Stack|mc.SP.Address(), value)
	if err != nil {
		return err
	}
	mc.SP.Decrement()
	return nil
}

// pull value from the stack.
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Increment()
	return mc.mem.Read(addresses.Stack | mc.SP.Address())
}

// pull a status value from the stack. the break flag is not a real flag and
// is not affected.
func (mc *CPU) pullStatus() error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	brk := mc.Status.Break
	mc.Status.FromValue(v)
	mc.Status.Break = brk
	return nil
}

func (mc *CPU) branch(flag bool, offset uint8) {
	mc.LastResult.BranchSuccess = flag
	if flag {
		mc.LastResult.PageFault = mc.PC.Relative(offset)
	}
}

func (mc *CPU) compare(r registers.Register, value uint8) {
	// compare can be implemented with binary subtract even if decimal mode
	// is active (the meaning is the same)
	mc.acc8.Load(r.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(value, true)
	mc.Status.Zero = mc.acc8.IsZero()
	mc.Status.Sign = mc.acc8.IsNegative()
}

func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// finalise the LastResult and check it for consistency.
func (mc *CPU) finalise() error {
	defn := mc.LastResult.Defn

	cycles := defn.Cycles
	if defn.IsBranch() {
		if mc.LastResult.BranchSuccess {
			// BRA is always taken and the cycle is included in the definition
			if defn.Operator != instructions.Bra {
				cycles++
			}
			if mc.LastResult.PageFault {
				cycles++
			}
		}
	} else if defn.PageSensitive && mc.LastResult.PageFault {
		cycles++
	}
	mc.LastResult.Cycles = cycles

	mc.LastResult.Final = true

	logger.Log(mc.trace, "cpu", mc.LastResult)

	err := mc.LastResult.IsValid()
	if err != nil {
		return curated.Errorf(InternalAssertion, err)
	}

	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process
// when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// The LastResult field contains the details of the instruction after the
// function returns.
func (mc *CPU) ExecuteInstruction() error {
	switch mc.State {
	case StateReset:
		return curated.Errorf(NotReset)
	case StateHalted:
		return curated.Errorf(Halted)
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}

	defn := instructions.Table[opcode]
	mc.LastResult.Defn = defn

	if defn.Undefined && !mc.reservedNOP() {
		// the result is final even though the instruction was not executed.
		// a debugger will want to show the illegal opcode. the CPU is halted
		// so that the operand bytes are never decoded as instructions
		mc.State = StateHalted
		mc.HaltReason = HaltIllegal
		mc.LastResult.Halted = true
		mc.LastResult.Final = true
		return curated.Errorf(IllegalOpcode, opcode, mc.LastResult.Address)
	}

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// value is the data read from memory, or from the program in the case of
	// immediate addressing. for read-modify-write instructions the value will
	// change during execution and be written back to memory
	var value uint8

	// whether the value should be read from address
	var readValue bool

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Stack:
		if defn.Operator == instructions.Brk {
			// BRK is followed by a signature byte which is skipped over
			var sig uint8
			sig, err = mc.read8BitPC()
			if err != nil {
				return err
			}
			mc.LastResult.InstructionData = uint16(sig)
		}

	case instructions.Accumulator:
		value = mc.A.Value()

	case instructions.Immediate:
		value, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		value, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Absolute:
		address, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		readValue = defn.Effect == instructions.Read || defn.Effect == instructions.Modify

	case instructions.ZeroPage:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)
		address = uint16(zp)
		readValue = defn.Effect == instructions.Read || defn.Effect == instructions.Modify

	case instructions.ZeroPageX, instructions.ZeroPageY:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)

		// the indexed address never leaves the zero page
		idx := mc.X
		if defn.AddressingMode == instructions.ZeroPageY {
			idx = mc.Y
		}
		address = uint16(zp + idx.Value())
		readValue = defn.Effect == instructions.Read || defn.Effect == instructions.Modify

	case instructions.AbsoluteX, instructions.AbsoluteY:
		var base uint16
		base, err = mc.read16BitPC()
		if err != nil {
			return err
		}

		idx := mc.X
		if defn.AddressingMode == instructions.AbsoluteY {
			idx = mc.Y
		}
		address = base + idx.Address()
		mc.LastResult.PageFault = base&0xff00 != address&0xff00
		readValue = defn.Effect == instructions.Read || defn.Effect == instructions.Modify

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command. the W65C02S does not have the page wrap bug of the NMOS
		// 6502 so a pointer at $xxff reads the high byte from the next page
		var pointer uint16
		pointer, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address, err = bus.Read16(mc.mem, pointer)
		if err != nil {
			return err
		}

	case instructions.AbsoluteIndexedIndirect:
		var base uint16
		base, err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address, err = bus.Read16(mc.mem, base+mc.X.Address())
		if err != nil {
			return err
		}

	case instructions.ZeroPageIndirect:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)
		address, err = bus.Read16ZeroPage(mc.mem, zp)
		if err != nil {
			return err
		}
		readValue = defn.Effect == instructions.Read

	case instructions.ZeroPageIndexedIndirect:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)

		// the pointer and the pointer's high byte never leave the zero page
		address, err = bus.Read16ZeroPage(mc.mem, zp+mc.X.Value())
		if err != nil {
			return err
		}
		readValue = defn.Effect == instructions.Read

	case instructions.ZeroPageIndirectIndexed:
		var zp uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(zp)

		var base uint16
		base, err = bus.Read16ZeroPage(mc.mem, zp)
		if err != nil {
			return err
		}
		address = base + mc.Y.Address()
		mc.LastResult.PageFault = base&0xff00 != address&0xff00
		readValue = defn.Effect == instructions.Read

	case instructions.ZeroPageRelative:
		// BBR and BBS have two operands. the zero page address to test and
		// the branch offset
		var zp, offset uint8
		zp, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		offset, err = mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = (uint16(offset) << 8) | uint16(zp)
		address = uint16(zp)
		readValue = true
	}

	if readValue {
		value, err = mc.mem.Read(address)
		if err != nil {
			return err
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing. this includes the undefined opcodes when the reserved
		// NOP preference is set

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		err = mc.push(mc.A.Value())

	case instructions.Phx:
		err = mc.push(mc.X.Value())

	case instructions.Phy:
		err = mc.push(mc.Y.Value())

	case instructions.Php:
		// the pushed value always has the break and unused bits set
		err = mc.push(mc.Status.Value() | registers.FlagBreak)

	case instructions.Pla:
		value, err = mc.pull()
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Plx:
		value, err = mc.pull()
		mc.X.Load(value)
		mc.setZN(mc.X)

	case instructions.Ply:
		value, err = mc.pull()
		mc.Y.Load(value)
		mc.setZN(mc.Y)

	case instructions.Plp:
		err = mc.pullStatus()

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.setZN(mc.A)

	case instructions.Ora:
		mc.A.ORA(value)
		mc.setZN(mc.A)

	case instructions.And:
		mc.A.AND(value)
		mc.setZN(mc.A)

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZN(mc.A)

	case instructions.Ldx:
		mc.X.Load(value)
		mc.setZN(mc.X)

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.setZN(mc.Y)

	case instructions.Sta:
		err = mc.mem.Write(address, mc.A.Value())

	case instructions.Stx:
		err = mc.mem.Write(address, mc.X.Value())

	case instructions.Sty:
		err = mc.mem.Write(address, mc.Y.Value())

	case instructions.Stz:
		err = mc.mem.Write(address, 0)

	case instructions.Inx:
		mc.X.Increment()
		mc.setZN(mc.X)

	case instructions.Iny:
		mc.Y.Increment()
		mc.setZN(mc.Y)

	case instructions.Dex:
		mc.X.Decrement()
		mc.setZN(mc.X)

	case instructions.Dey:
		mc.Y.Decrement()
		mc.setZN(mc.Y)

	case instructions.Inc:
		mc.acc8.Load(value)
		mc.acc8.Increment()
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Dec:
		mc.acc8.Load(value)
		mc.acc8.Decrement()
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Asl:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ASL()
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Lsr:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.LSR()
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Rol:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROL(mc.Status.Carry)
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Ror:
		mc.acc8.Load(value)
		mc.Status.Carry = mc.acc8.ROR(mc.Status.Carry)
		mc.setZN(mc.acc8)
		value = mc.acc8.Value()

	case instructions.Adc:
		if mc.Status.DecimalMode {
			mc.Status.Carry, mc.Status.Overflow = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		}
		mc.setZN(mc.A)

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			mc.Status.Carry, mc.Status.Overflow = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		}
		mc.setZN(mc.A)

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		mc.acc8.Load(value)
		if defn.AddressingMode != instructions.Immediate {
			// the immediate form only affects the zero flag
			mc.Status.Sign = mc.acc8.IsNegative()
			mc.Status.Overflow = mc.acc8.IsBitV()
		}
		mc.acc8.AND(mc.A.Value())
		mc.Status.Zero = mc.acc8.IsZero()

	case instructions.Tsb:
		mc.Status.Zero = value&mc.A.Value() == 0
		value |= mc.A.Value()

	case instructions.Trb:
		mc.Status.Zero = value&mc.A.Value() == 0
		value &^= mc.A.Value()

	case instructions.Rmb:
		value &^= 0x01 << defn.Bit

	case instructions.Smb:
		value |= 0x01 << defn.Bit

	case instructions.Bbr:
		mc.branch(value&(0x01<<defn.Bit) == 0x00, uint8(mc.LastResult.InstructionData>>8))

	case instructions.Bbs:
		mc.branch(value&(0x01<<defn.Bit) != 0x00, uint8(mc.LastResult.InstructionData>>8))

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)

	case instructions.Bra:
		mc.branch(true, value)

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Jsr:
		// the address pushed is the address of the last byte of the JSR
		// instruction. RTS corrects for this
		ret := mc.PC.Address() - 1
		err = mc.push(uint8(ret >> 8))
		if err != nil {
			return err
		}
		err = mc.push(uint8(ret))
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Rts:
		var lo, hi uint8
		lo, err = mc.pull()
		if err != nil {
			return err
		}
		hi, err = mc.pull()
		if err != nil {
			return err
		}
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))
		mc.PC.Add(1)

	case instructions.Rti:
		err = mc.pullStatus()
		if err != nil {
			return err
		}

		// unlike RTS there is no need to add one to return address
		var lo, hi uint8
		lo, err = mc.pull()
		if err != nil {
			return err
		}
		hi, err = mc.pull()
		if err != nil {
			return err
		}
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	case instructions.Brk:
		// push PC onto register (same effect as JSR). the PC has already been
		// advanced past the signature byte
		err = mc.push(uint8(mc.PC.Address() >> 8))
		if err != nil {
			return err
		}
		err = mc.push(uint8(mc.PC.Address()))
		if err != nil {
			return err
		}

		// push status register (same effect as PHP)
		err = mc.push(mc.Status.Value() | registers.FlagBreak)
		if err != nil {
			return err
		}

		// the W65C02S clears decimal mode on interrupt
		mc.Status.InterruptDisable = true
		mc.Status.DecimalMode = false

		var brkAddress uint16
		brkAddress, err = bus.Read16(mc.mem, addresses.IRQ)
		if err != nil {
			return err
		}
		mc.PC.Load(brkAddress)

		// BRK is the signal that the program has finished
		mc.State = StateHalted
		mc.HaltReason = HaltBRK
		mc.LastResult.Halted = true

	case instructions.Stp, instructions.Wai:
		mc.State = StateHalted
		if defn.Operator == instructions.Stp {
			mc.HaltReason = HaltSTP
		} else {
			mc.HaltReason = HaltWAI
		}
		mc.LastResult.Halted = true

		err = mc.finalise()
		if err != nil {
			return err
		}

		return curated.Errorf(ProcessorStopped, defn.Mnemonic, mc.LastResult.Address)

	default:
		return curated.Errorf(InternalAssertion, fmt.Sprintf("unimplemented operator %s", defn.Operator))
	}

	if err != nil {
		return err
	}

	// write altered value back to memory for read-modify-write instructions
	if defn.Effect == instructions.Modify {
		if defn.AddressingMode == instructions.Accumulator {
			mc.A.Load(value)
		} else {
			err = mc.mem.Write(address, value)
			if err != nil {
				return err
			}
		}
	}

	return mc.finalise()
}
