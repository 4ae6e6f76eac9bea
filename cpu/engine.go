package cpu

import "github.com/f-cramer/go6502/bits"

// adc implements ADC for both binary and BCD modes, grounded on the
// teacher's iADC (cpu/cpu.go): binary mode computes the sum in a wider
// type for carry/overflow detection; BCD mode decodes both operands as
// packed decimal digits via the bits package and derives the new
// accumulator value from decimal digit arithmetic. V is derived from
// the pre-adjust binary sum (the NMOS convention), but N and Z are
// derived from the final decimal-adjusted accumulator value, per
// spec.md's blanket result-flag invariant.
func (p *Processor) adc(value uint8) {
	carryIn := p.P & P_CARRY

	if p.P&P_DECIMAL != 0 {
		tensA, onesA := bits.FromBCD(p.A)
		tensM, onesM := bits.FromBCD(value)
		decSum := int(tensA)*10 + int(onesA) + int(tensM)*10 + int(onesM) + int(carryIn)
		carryOut := decSum > 99
		if carryOut {
			decSum -= 100
		}
		newA := bits.ToBCD(uint8(decSum/10), uint8(decSum%10))

		bin := p.A + value + carryIn
		p.overflowCheck(p.A, value, bin)
		p.setFlag(P_CARRY, carryOut)
		p.A = newA
		p.setNZ(p.A)
		return
	}

	sum := p.A + value + carryIn
	p.overflowCheck(p.A, value, sum)
	p.carryCheck(uint16(p.A) + uint16(value) + uint16(carryIn))
	p.A = sum
	p.setNZ(p.A)
}

// sbc implements SBC for both binary and BCD modes, grounded on the
// teacher's iSBC. C and V always come from the hardware-accurate binary
// ones-complement subtraction (A + ^value + C), even in decimal mode,
// matching real 6502/65C02 silicon. N and Z, like ADC, are derived from
// the final accumulator value - the binary result in binary mode, the
// decimal-corrected result in BCD mode - per spec.md's blanket
// result-flag invariant.
func (p *Processor) sbc(value uint8) {
	carryIn := p.P & P_CARRY
	b := p.A + ^value + carryIn
	p.overflowCheck(p.A, ^value, b)
	p.carryCheck(uint16(p.A) + uint16(^value) + uint16(carryIn))

	if p.P&P_DECIMAL != 0 {
		tensA, onesA := bits.FromBCD(p.A)
		tensM, onesM := bits.FromBCD(value)
		borrowIn := 1 - int(carryIn)
		decDiff := int(tensA)*10 + int(onesA) - (int(tensM)*10 + int(onesM)) - borrowIn
		if decDiff < 0 {
			decDiff += 100
		}
		p.A = bits.ToBCD(uint8(decDiff/10), uint8(decDiff%10))
		p.setNZ(p.A)
		return
	}

	p.A = b
	p.setNZ(p.A)
}

// compare implements CMP/CPX/CPY's signed-difference rule: the
// difference is taken as a signed 8-bit value and C is set when that
// difference is non-negative. This diverges from a hardware unsigned
// compare in cases where the wrapped difference's top bit is set despite
// reg >= val - that divergence is this core's defined behavior.
func (p *Processor) compare(reg, val uint8) {
	d := reg - val
	p.setNZ(d)
	p.setFlag(P_CARRY, int8(d) >= 0)
}

// shiftLeft implements ASL: C := bit7(m); result := m << 1.
func (p *Processor) shiftLeft(m uint8) uint8 {
	p.setFlag(P_CARRY, m&0x80 != 0)
	result := m << 1
	p.setNZ(result)
	return result
}

// shiftRight implements LSR: C := bit0(m); result := m >> 1.
func (p *Processor) shiftRight(m uint8) uint8 {
	p.setFlag(P_CARRY, m&0x01 != 0)
	result := m >> 1
	p.setNZ(result)
	return result
}

// rotateLeft implements ROL: newC := bit7(m); result := (m<<1)|oldC.
func (p *Processor) rotateLeft(m uint8) uint8 {
	oldCarry := p.P & P_CARRY
	p.setFlag(P_CARRY, m&0x80 != 0)
	result := (m << 1) | oldCarry
	p.setNZ(result)
	return result
}

// rotateRight implements ROR: newC := bit0(m); result := (m>>1)|(oldC<<7).
func (p *Processor) rotateRight(m uint8) uint8 {
	oldCarry := (p.P & P_CARRY) << 7
	p.setFlag(P_CARRY, m&0x01 != 0)
	result := (m >> 1) | oldCarry
	p.setNZ(result)
	return result
}
