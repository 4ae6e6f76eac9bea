package cpu

import "github.com/f-cramer/go6502/bits"

// operand is the resolved result of an addressing mode: the effective
// address (when the mode has one) and the value already read from it,
// or from the operand bytes directly for Immediate/Accumulator/Implied.
// branchTarget is only meaningful for Relative and ZeroPageRelative.
type operand struct {
	addr         uint16
	value        uint8
	branchTarget uint16
}

// resolve computes the operand for mode given the bytes that followed
// the opcode (little-endian: bytes[0] is the low byte) and pc, the
// program counter value immediately after the full instruction has
// been fetched (used as the base for relative branches).
func (p *Processor) resolve(mode AddrMode, opBytes []uint8, pc uint16) operand {
	switch mode {
	case Implied:
		return operand{}
	case Accumulator:
		return operand{value: p.A}
	case Immediate:
		return operand{value: opBytes[0]}
	case ZeroPage:
		addr := uint16(opBytes[0])
		return operand{addr: addr, value: p.ram.Read(addr)}
	case ZeroPageX:
		addr := bits.Combine(opBytes[0], 0, p.X)
		return operand{addr: addr, value: p.ram.Read(addr)}
	case ZeroPageY:
		addr := bits.Combine(opBytes[0], 0, p.Y)
		return operand{addr: addr, value: p.ram.Read(addr)}
	case Absolute:
		addr := bits.Combine16(opBytes[0], opBytes[1], 0)
		return operand{addr: addr, value: p.ram.Read(addr)}
	case AbsoluteX:
		addr := bits.Combine16(opBytes[0], opBytes[1], uint16(p.X))
		return operand{addr: addr, value: p.ram.Read(addr)}
	case AbsoluteY:
		addr := bits.Combine16(opBytes[0], opBytes[1], uint16(p.Y))
		return operand{addr: addr, value: p.ram.Read(addr)}
	case Indirect:
		ptr := bits.Combine16(opBytes[0], opBytes[1], 0)
		lo := p.ram.Read(ptr)
		hi := p.ram.Read(ptr + 1)
		addr := bits.Combine16(lo, hi, 0)
		return operand{addr: addr, value: p.ram.Read(addr)}
	case AbsoluteIndexedIndirect:
		ptr := bits.Combine16(opBytes[0], opBytes[1], uint16(p.X))
		lo := p.ram.Read(ptr)
		hi := p.ram.Read(ptr + 1)
		addr := bits.Combine16(lo, hi, 0)
		return operand{addr: addr, value: p.ram.Read(addr)}
	case IndirectX:
		zp := opBytes[0] + p.X
		lo := p.ram.Read(uint16(zp))
		hi := p.ram.Read(uint16(zp + 1))
		addr := bits.Combine16(lo, hi, 0)
		return operand{addr: addr, value: p.ram.Read(addr)}
	case IndirectY:
		zp := opBytes[0]
		lo := p.ram.Read(uint16(zp))
		hi := p.ram.Read(uint16(zp + 1))
		addr := bits.Combine16(lo, hi, uint16(p.Y))
		return operand{addr: addr, value: p.ram.Read(addr)}
	case IndirectZP:
		zp := opBytes[0]
		lo := p.ram.Read(uint16(zp))
		hi := p.ram.Read(uint16(zp + 1))
		addr := bits.Combine16(lo, hi, 0)
		return operand{addr: addr, value: p.ram.Read(addr)}
	case Relative:
		target := uint16(int32(pc) + int32(int8(opBytes[0])))
		return operand{branchTarget: target}
	case ZeroPageRelative:
		addr := uint16(opBytes[0])
		target := uint16(int32(pc) + int32(int8(opBytes[1])))
		return operand{addr: addr, value: p.ram.Read(addr), branchTarget: target}
	}
	return operand{}
}
