package memory

import "testing"

func TestReadWrite(t *testing.T) {
	m := New()
	m.Write(0x10, 0x42)
	if got := m.Read(0x10); got != 0x42 {
		t.Errorf("Read(0x10) = %#02x, want 0x42", got)
	}
	if got := m.Read(0x11); got != 0x00 {
		t.Errorf("Read(0x11) = %#02x, want 0x00", got)
	}
}

func TestPowerOnZeroes(t *testing.T) {
	m := New()
	m.Write(0x00, 0xFF)
	m.PowerOn()
	if got := m.Read(0x00); got != 0x00 {
		t.Errorf("Read(0x00) after PowerOn = %#02x, want 0x00", got)
	}
}

func TestLoad(t *testing.T) {
	m := New()
	img := []uint8{0xA9, 0x42, 0x85, 0x10}
	m.Load(0x0400, img)
	for i, b := range img {
		if got := m.Read(0x0400 + uint16(i)); got != b {
			t.Errorf("Read(0x0400+%d) = %#02x, want %#02x", i, got, b)
		}
	}
}

func TestLoadWrapsAtTop(t *testing.T) {
	m := New()
	img := []uint8{0xAA, 0xBB}
	m.Load(0xFFFF, img)
	if got := m.Read(0xFFFF); got != 0xAA {
		t.Errorf("Read(0xFFFF) = %#02x, want 0xAA", got)
	}
	if got := m.Read(0x0000); got != 0xBB {
		t.Errorf("Read(0x0000) = %#02x, want 0xBB", got)
	}
}
