package cpu

import "github.com/f-cramer/go6502/bits"

// StepResult reports whether a Step call finished the run or should
// continue.
type StepResult int

const (
	// Continue means more instructions remain before the success
	// threshold is reached.
	Continue StepResult = iota
	// Finished means the instruction count just reached the configured
	// success threshold.
	Finished
)

// Step fetches, decodes, and executes exactly one instruction, then
// reports whether the configured success threshold has been reached.
// Grounded on the teacher's Tick/processOpcode outer shape, collapsed
// from per-cycle ticking to one call per instruction since cycle
// accuracy is out of scope.
func (p *Processor) Step(successThreshold uint32) (StepResult, error) {
	opcodeAddr := p.PC
	opcode := p.ram.Read(p.PC)
	p.PC++

	in, err := Decode(opcode, p.dialect)
	if err != nil {
		return Continue, err
	}

	operandLen := in.Size - 1
	opBytes := make([]uint8, operandLen)
	for i := uint8(0); i < operandLen; i++ {
		opBytes[i] = p.ram.Read(p.PC)
		p.PC++
	}

	if err := p.dispatch(in, opBytes, opcodeAddr); err != nil {
		return Continue, err
	}

	p.instructionCount++
	if p.instructionCount == successThreshold {
		return Finished, nil
	}
	return Continue, nil
}

// Run drives Step to completion, stopping on Finished or the first
// error. Grounded on original_source/src/cpu.rs's execute/main.rs's
// run loop for the termination contract - the teacher's own run loops
// (vcs_main.go) run forever and have no equivalent success threshold.
func (p *Processor) Run(successThreshold uint32) error {
	for {
		result, err := p.Step(successThreshold)
		if err != nil {
			return err
		}
		if result == Finished {
			return nil
		}
	}
}

// dispatch resolves the operand for in.Mode and carries out in.Op's
// semantics against p. opcodeAddr is the address the opcode byte was
// read from, needed for JMP abs's self-loop check and JSR's return
// address.
func (p *Processor) dispatch(in Instruction, opBytes []uint8, opcodeAddr uint16) error {
	op := p.resolve(in.Mode, opBytes, p.PC)

	switch in.Op {
	case ADC:
		p.adc(op.value)
	case SBC:
		p.sbc(op.value)
	case AND:
		p.A &= op.value
		p.setNZ(p.A)
	case ORA:
		p.A |= op.value
		p.setNZ(p.A)
	case EOR:
		p.A ^= op.value
		p.setNZ(p.A)
	case BIT:
		p.zeroCheck(p.A & op.value)
		if in.Mode != Immediate {
			p.negativeCheck(op.value)
			p.setFlag(P_OVERFLOW, op.value&P_OVERFLOW != 0)
		}
	case ASL:
		result := p.shiftLeft(op.value)
		p.storeResult(in.Mode, op.addr, result)
	case LSR:
		result := p.shiftRight(op.value)
		p.storeResult(in.Mode, op.addr, result)
	case ROL:
		result := p.rotateLeft(op.value)
		p.storeResult(in.Mode, op.addr, result)
	case ROR:
		result := p.rotateRight(op.value)
		p.storeResult(in.Mode, op.addr, result)
	case INC:
		result := op.value + 1
		p.setNZ(result)
		p.storeResult(in.Mode, op.addr, result)
	case DEC:
		result := op.value - 1
		p.setNZ(result)
		p.storeResult(in.Mode, op.addr, result)
	case INX:
		p.X++
		p.setNZ(p.X)
	case INY:
		p.Y++
		p.setNZ(p.Y)
	case DEX:
		p.X--
		p.setNZ(p.X)
	case DEY:
		p.Y--
		p.setNZ(p.Y)
	case LDA:
		p.A = op.value
		p.setNZ(p.A)
	case LDX:
		p.X = op.value
		p.setNZ(p.X)
	case LDY:
		p.Y = op.value
		p.setNZ(p.Y)
	case STA:
		p.ram.Write(op.addr, p.A)
	case STX:
		p.ram.Write(op.addr, p.X)
	case STY:
		p.ram.Write(op.addr, p.Y)
	case STZ:
		p.ram.Write(op.addr, 0)
	case TAX:
		p.X = p.A
		p.setNZ(p.X)
	case TAY:
		p.Y = p.A
		p.setNZ(p.Y)
	case TXA:
		p.A = p.X
		p.setNZ(p.A)
	case TYA:
		p.A = p.Y
		p.setNZ(p.A)
	case TSX:
		p.X = p.S
		p.setNZ(p.X)
	case TXS:
		p.S = p.X
	case CMP:
		p.compare(p.A, op.value)
	case CPX:
		p.compare(p.X, op.value)
	case CPY:
		p.compare(p.Y, op.value)
	case BCC:
		return p.branch(p.P&P_CARRY == 0, int8(opBytes[0]), op.branchTarget)
	case BCS:
		return p.branch(p.P&P_CARRY != 0, int8(opBytes[0]), op.branchTarget)
	case BEQ:
		return p.branch(p.P&P_ZERO != 0, int8(opBytes[0]), op.branchTarget)
	case BNE:
		return p.branch(p.P&P_ZERO == 0, int8(opBytes[0]), op.branchTarget)
	case BMI:
		return p.branch(p.P&P_NEGATIVE != 0, int8(opBytes[0]), op.branchTarget)
	case BPL:
		return p.branch(p.P&P_NEGATIVE == 0, int8(opBytes[0]), op.branchTarget)
	case BVC:
		return p.branch(p.P&P_OVERFLOW == 0, int8(opBytes[0]), op.branchTarget)
	case BVS:
		return p.branch(p.P&P_OVERFLOW != 0, int8(opBytes[0]), op.branchTarget)
	case BRA:
		return p.branch(true, int8(opBytes[0]), op.branchTarget)
	case BBR:
		taken := op.value&(1<<in.Bit) == 0
		return p.branch(taken, int8(opBytes[1]), op.branchTarget)
	case BBS:
		taken := op.value&(1<<in.Bit) != 0
		return p.branch(taken, int8(opBytes[1]), op.branchTarget)
	case JMP:
		if in.Mode == Absolute && op.addr == opcodeAddr {
			return InfiniteLoopError{PC: opcodeAddr}
		}
		p.PC = op.addr
	case JSR:
		returnAddr := opcodeAddr + 2
		p.pushStack(uint8(returnAddr >> 8))
		p.pushStack(uint8(returnAddr & 0xFF))
		p.PC = op.addr
	case RTS:
		lo := p.popStack()
		hi := p.popStack()
		p.PC = bits.Combine16(lo, hi, 1)
	case BRK:
		returnAddr := opcodeAddr + 2
		p.pushStack(uint8(returnAddr >> 8))
		p.pushStack(uint8(returnAddr & 0xFF))
		p.P |= P_B
		p.pushStack(p.P | P_S1)
		p.P |= P_INTERRUPT
		if p.dialect == CMOS {
			p.P &^= P_DECIMAL
		}
		lo := p.ram.Read(IRQVector)
		hi := p.ram.Read(IRQVector + 1)
		p.PC = bits.Combine16(lo, hi, 0)
	case RTI:
		// Like PLP, B keeps whatever value it already had.
		oldB := p.P & P_B
		status := p.popStack()
		p.unpackFlags(status)
		p.P = (p.P &^ P_B) | oldB
		lo := p.popStack()
		hi := p.popStack()
		p.PC = bits.Combine16(lo, hi, 0)
	case PHA:
		p.pushStack(p.A)
	case PLA:
		p.A = p.popStack()
		p.setNZ(p.A)
	case PHX:
		p.pushStack(p.X)
	case PLX:
		p.X = p.popStack()
		p.setNZ(p.X)
	case PHY:
		p.pushStack(p.Y)
	case PLY:
		p.Y = p.popStack()
		p.setNZ(p.Y)
	case PHP:
		// B is forced to 1 for this push only; the live P is untouched.
		p.pushStack(p.P | P_S1 | P_B)
	case PLP:
		// All flags are restored from the stack except B, which keeps
		// whatever value it already had.
		oldB := p.P & P_B
		popped := p.popStack()
		p.P = ((popped | P_S1) &^ P_B) | oldB
	case CLC:
		p.P &^= P_CARRY
	case SEC:
		p.P |= P_CARRY
	case CLD:
		p.P &^= P_DECIMAL
	case SED:
		p.P |= P_DECIMAL
	case CLI:
		p.P &^= P_INTERRUPT
	case SEI:
		p.P |= P_INTERRUPT
	case CLV:
		p.P &^= P_OVERFLOW
	case RMB:
		p.ram.Write(op.addr, op.value&^(1<<in.Bit))
	case SMB:
		p.ram.Write(op.addr, op.value|(1<<in.Bit))
	case TRB:
		p.setFlag(P_ZERO, p.A&op.value == 0)
		p.ram.Write(op.addr, op.value&^p.A)
	case TSB:
		p.setFlag(P_ZERO, p.A&op.value == 0)
		p.ram.Write(op.addr, op.value|p.A)
	case NOP:
		// No state change.
	default:
		return InvalidState{Msg: "dispatch: unhandled mnemonic"}
	}
	return nil
}

// storeResult writes an ASL/LSR/ROL/ROR/INC/DEC result back to the
// accumulator or to memory, depending on addressing mode.
func (p *Processor) storeResult(mode AddrMode, addr uint16, result uint8) {
	if mode == Accumulator {
		p.A = result
		return
	}
	p.ram.Write(addr, result)
}

// branch implements the shared Bcc/BRA/BBRn/BBSn logic: do nothing if
// not taken; if taken with an offset of -2, terminate with
// InfiniteLoopError; otherwise set PC to target. For the two-byte
// Bcc/BRA an offset of -2 is a branch to itself; for the three-byte
// BBRn/BBSn it targets the byte after the opcode, and the same check
// applies.
func (p *Processor) branch(taken bool, offset int8, target uint16) error {
	if !taken {
		return nil
	}
	if offset == -2 {
		return InfiniteLoopError{PC: target}
	}
	p.PC = target
	return nil
}
