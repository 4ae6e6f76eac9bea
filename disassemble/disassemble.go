// Package disassemble renders the instruction at a given PC as a
// human-readable text line, for progress logging and error diagnostics.
// It does not interpret instructions, so a JMP target is printed as a
// bare address rather than followed.
package disassemble

import (
	"fmt"

	"github.com/f-cramer/go6502/cpu"
	"github.com/f-cramer/go6502/memory"
)

// Step disassembles the instruction at pc against ram in the given
// dialect, returning the formatted text and the number of bytes (1-3)
// the instruction occupies. An opcode undefined in dialect is rendered
// as "???" with a one-byte width, so callers can keep scanning forward
// even across data the decoder doesn't recognize as code.
//
// Grounded on the teacher's disassemble.Step: same "%.4X %.2X ..."
// column layout, adapted to the richer AddrMode set CMOS adds and to
// cpu.Decode's error return in place of an "UNIMPLEMENTED" sentinel op.
func Step(pc uint16, dialect cpu.Dialect, ram memory.Bank) (string, int) {
	opcode := ram.Read(pc)
	pc1 := ram.Read(pc + 1)
	pc2 := ram.Read(pc + 2)

	in, err := cpu.Decode(opcode, dialect)
	if err != nil {
		return fmt.Sprintf("%.4X %.2X         ??? (undefined)", pc, opcode), 1
	}

	mnemonic := in.Op.String()
	count := int(in.Size)

	var out string
	switch in.Mode {
	case cpu.Implied:
		out = fmt.Sprintf("%.4X %.2X          %s           ", pc, opcode, mnemonic)
	case cpu.Accumulator:
		out = fmt.Sprintf("%.4X %.2X          %s A         ", pc, opcode, mnemonic)
	case cpu.Immediate:
		out = fmt.Sprintf("%.4X %.2X %.2X       %s #%.2X       ", pc, opcode, pc1, mnemonic, pc1)
	case cpu.ZeroPage:
		out = fmt.Sprintf("%.4X %.2X %.2X       %s %.2X        ", pc, opcode, pc1, mnemonic, pc1)
	case cpu.ZeroPageX:
		out = fmt.Sprintf("%.4X %.2X %.2X       %s %.2X,X      ", pc, opcode, pc1, mnemonic, pc1)
	case cpu.ZeroPageY:
		out = fmt.Sprintf("%.4X %.2X %.2X       %s %.2X,Y      ", pc, opcode, pc1, mnemonic, pc1)
	case cpu.IndirectX:
		out = fmt.Sprintf("%.4X %.2X %.2X       %s (%.2X,X)    ", pc, opcode, pc1, mnemonic, pc1)
	case cpu.IndirectY:
		out = fmt.Sprintf("%.4X %.2X %.2X       %s (%.2X),Y    ", pc, opcode, pc1, mnemonic, pc1)
	case cpu.IndirectZP:
		out = fmt.Sprintf("%.4X %.2X %.2X       %s (%.2X)      ", pc, opcode, pc1, mnemonic, pc1)
	case cpu.Absolute:
		out = fmt.Sprintf("%.4X %.2X %.2X %.2X    %s %.2X%.2X      ", pc, opcode, pc1, pc2, mnemonic, pc2, pc1)
	case cpu.AbsoluteX:
		out = fmt.Sprintf("%.4X %.2X %.2X %.2X    %s %.2X%.2X,X    ", pc, opcode, pc1, pc2, mnemonic, pc2, pc1)
	case cpu.AbsoluteY:
		out = fmt.Sprintf("%.4X %.2X %.2X %.2X    %s %.2X%.2X,Y    ", pc, opcode, pc1, pc2, mnemonic, pc2, pc1)
	case cpu.Indirect:
		out = fmt.Sprintf("%.4X %.2X %.2X %.2X    %s (%.2X%.2X)    ", pc, opcode, pc1, pc2, mnemonic, pc2, pc1)
	case cpu.AbsoluteIndexedIndirect:
		out = fmt.Sprintf("%.4X %.2X %.2X %.2X    %s (%.2X%.2X,X)  ", pc, opcode, pc1, pc2, mnemonic, pc2, pc1)
	case cpu.Relative:
		target := pc + uint16(int16(int8(pc1))) + 2
		out = fmt.Sprintf("%.4X %.2X %.2X       %s %.2X (%.4X) ", pc, opcode, pc1, mnemonic, pc1, target)
	case cpu.ZeroPageRelative:
		target := pc + uint16(int16(int8(pc2))) + 3
		out = fmt.Sprintf("%.4X %.2X %.2X %.2X    %s %d,%.2X,%.2X (%.4X) ", pc, opcode, pc1, pc2, mnemonic, in.Bit, pc1, pc2, target)
	default:
		out = fmt.Sprintf("%.4X %.2X          %s ???       ", pc, opcode, mnemonic)
	}
	return out, count
}
