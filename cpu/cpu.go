// Package cpu implements the MOS 6502 (NMOS) and WDC 65C02 (CMOS)
// fetch-decode-execute core: a pure opcode decoder, single-call
// addressing-mode helpers, and the instruction-semantics engine that
// together mutate a Processor's registers, flags, and memory.
package cpu

import (
	"fmt"

	"github.com/f-cramer/go6502/memory"
)

// Dialect selects which of the two supported instruction sets a
// Processor decodes and executes.
type Dialect int

const (
	// NMOS is the baseline 6502 instruction set.
	NMOS Dialect = iota
	// CMOS is the WDC 65C02 instruction set: new opcodes, new
	// addressing modes, bit-test/bit-branch instructions, and
	// NOPs of varying width in place of NMOS's undocumented opcodes.
	CMOS
)

// Status register bit masks. Layout and names follow the NMOS/CMOS
// processor status byte: N V 1 B D I Z C.
const (
	P_NEGATIVE  = 0x80
	P_OVERFLOW  = 0x40
	P_S1        = 0x20 // always 1 in the packed status byte and in every status byte pushed to the stack
	P_B         = 0x10 // break flag: set by BRK, forced on in the byte PHP pushes, kept unchanged by PLP
	P_DECIMAL   = 0x08
	P_INTERRUPT = 0x04
	P_ZERO      = 0x02
	P_CARRY     = 0x01
)

// IRQVector is the address holding the low/high bytes that BRK loads
// into the program counter. No reset vector is consulted: PowerOn sets
// PC directly.
const IRQVector = 0xFFFE

// DecodeError reports an opcode byte with no defined meaning in the
// selected dialect.
type DecodeError struct {
	Opcode uint8
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("undefined opcode %#02x", e.Opcode)
}

// InfiniteLoopError reports a taken branch with an offset of -2 or a
// JMP abs whose target is its own opcode address.
type InfiniteLoopError struct {
	PC uint16
}

func (e InfiniteLoopError) Error() string {
	return fmt.Sprintf("infinite loop detected at %#04x", e.PC)
}

// InvalidState reports an internal precondition violation - a state
// the engine should never be able to reach during normal execution.
type InvalidState struct {
	Msg string
}

func (e InvalidState) Error() string {
	return e.Msg
}

// Processor holds the complete architectural state of one core:
// the three data registers, program counter, stack pointer low byte,
// packed status flags, instruction counter, dialect, and the memory
// bank it executes against.
type Processor struct {
	A, X, Y uint8
	PC      uint16
	S       uint8
	P       uint8

	instructionCount uint32
	dialect          Dialect
	ram              memory.Bank
}

// New creates a Processor for the given dialect against ram, with all
// registers and flags zeroed, PC set to 0x0400, and S set to 0xFF
// (hardware convention - see DESIGN.md for the rationale over the
// historical sp=0 alternative).
func New(dialect Dialect, ram memory.Bank) *Processor {
	p := &Processor{
		dialect: dialect,
		ram:     ram,
	}
	p.PowerOn()
	return p
}

// PowerOn resets all registers and flags to zero, sets PC to 0x0400
// and S to 0xFF, and zeroes the instruction counter. Memory contents
// are untouched - callers load an image before or after PowerOn.
func (p *Processor) PowerOn() {
	p.A, p.X, p.Y = 0, 0, 0
	p.P = 0
	p.S = 0xFF
	p.PC = 0x0400
	p.instructionCount = 0
}

// Dialect returns the instruction set this Processor decodes against.
func (p *Processor) Dialect() Dialect {
	return p.dialect
}

// InstructionCount returns the number of instructions executed since
// the last PowerOn, for termination checks and diagnostics.
func (p *Processor) InstructionCount() uint32 {
	return p.instructionCount
}

// zeroCheck sets or clears Z based on whether v is zero.
func (p *Processor) zeroCheck(v uint8) {
	if v == 0 {
		p.P |= P_ZERO
	} else {
		p.P &^= P_ZERO
	}
}

// negativeCheck sets or clears N based on bit 7 of v.
func (p *Processor) negativeCheck(v uint8) {
	if v&P_NEGATIVE != 0 {
		p.P |= P_NEGATIVE
	} else {
		p.P &^= P_NEGATIVE
	}
}

// setNZ sets both N and Z from v, the common case after a load,
// transfer, increment/decrement, or shift/rotate.
func (p *Processor) setNZ(v uint8) {
	p.zeroCheck(v)
	p.negativeCheck(v)
}

// setFlag sets or clears the bits in mask based on cond.
func (p *Processor) setFlag(mask uint8, cond bool) {
	if cond {
		p.P |= mask
	} else {
		p.P &^= mask
	}
}

// packFlags returns the current status byte. Bit 5 always reads 1.
func (p *Processor) packFlags() uint8 {
	return p.P | P_S1
}

// unpackFlags loads the status byte verbatim from b, except bit 5 is
// ignored on input and always forced to 1.
func (p *Processor) unpackFlags(b uint8) {
	p.P = b | P_S1
}

// carryCheck sets or clears C based on whether the 16-bit intermediate
// sum carried out of bit 7.
func (p *Processor) carryCheck(sum uint16) {
	if sum >= 0x100 {
		p.P |= P_CARRY
	} else {
		p.P &^= P_CARRY
	}
}

// overflowCheck implements the standard two's-complement signed
// overflow test for ADC/SBC: V is set when the operands share a sign
// and the result's sign differs from theirs.
func (p *Processor) overflowCheck(a, val, result uint8) {
	if (^(a^val))&(a^result)&P_NEGATIVE != 0 {
		p.P |= P_OVERFLOW
	} else {
		p.P &^= P_OVERFLOW
	}
}

// pushStack writes val to the hardware stack page at 0x0100+S and
// decrements S, wrapping within the page.
func (p *Processor) pushStack(val uint8) {
	p.ram.Write(0x0100+uint16(p.S), val)
	p.S--
}

// popStack increments S and reads the byte now at 0x0100+S, wrapping
// within the page.
func (p *Processor) popStack() uint8 {
	p.S++
	return p.ram.Read(0x0100 + uint16(p.S))
}
