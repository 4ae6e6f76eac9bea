package disassemble

import (
	"strings"
	"testing"

	"github.com/f-cramer/go6502/cpu"
	"github.com/f-cramer/go6502/memory"
)

func TestStepWidths(t *testing.T) {
	tests := []struct {
		name     string
		dialect  cpu.Dialect
		bytes    []uint8
		wantSize int
		contains string
	}{
		{"implied BRK", cpu.NMOS, []uint8{0x00, 0x00}, 2, "BRK"},
		{"immediate LDA", cpu.NMOS, []uint8{0xA9, 0x42}, 2, "LDA #42"},
		{"zero page STA", cpu.NMOS, []uint8{0x85, 0x10}, 2, "STA 10"},
		{"absolute JMP", cpu.NMOS, []uint8{0x4C, 0x00, 0x06}, 3, "JMP 0600"},
		{"relative BEQ forward", cpu.NMOS, []uint8{0xF0, 0x02}, 2, "BEQ"},
		{"accumulator ASL", cpu.NMOS, []uint8{0x0A}, 1, "ASL A"},
		{"CMOS STZ zero page", cpu.CMOS, []uint8{0x64, 0x20}, 2, "STZ 20"},
		{"CMOS BBR zero-page-relative", cpu.CMOS, []uint8{0x0F, 0x10, 0x02}, 3, "BBR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ram := memory.New()
			ram.Load(0x0400, tt.bytes)
			out, size := Step(0x0400, tt.dialect, ram)
			if size != tt.wantSize {
				t.Errorf("size = %d, want %d (%q)", size, tt.wantSize, out)
			}
			if !strings.Contains(out, tt.contains) {
				t.Errorf("out = %q, want substring %q", out, tt.contains)
			}
		})
	}
}

func TestStepUndefinedOpcode(t *testing.T) {
	ram := memory.New()
	ram.Load(0x0400, []uint8{0x02}) // undefined on NMOS
	out, size := Step(0x0400, cpu.NMOS, ram)
	if size != 1 {
		t.Errorf("size = %d, want 1", size)
	}
	if !strings.Contains(out, "undefined") {
		t.Errorf("out = %q, want it to mention undefined", out)
	}
}
