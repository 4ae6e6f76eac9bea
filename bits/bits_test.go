package bits

import "testing"

func TestCombine(t *testing.T) {
	tests := []struct {
		name             string
		lsb, msb, offset uint8
		want             uint16
	}{
		{"no offset", 0x00, 0x12, 0x00, 0x1200},
		{"offset no wrap", 0x01, 0x12, 0x02, 0x1203},
		{"offset wraps within low byte", 0xFF, 0x12, 0x02, 0x1201},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Combine(tc.lsb, tc.msb, tc.offset); got != tc.want {
				t.Errorf("Combine(%#02x, %#02x, %#02x) = %#04x, want %#04x", tc.lsb, tc.msb, tc.offset, got, tc.want)
			}
		})
	}
}

func TestCombine16(t *testing.T) {
	tests := []struct {
		name      string
		lsb, msb  uint8
		offset    uint16
		want      uint16
	}{
		{"carries into high byte", 0xFF, 0x12, 0x01, 0x1300},
		{"no carry", 0x10, 0x12, 0x01, 0x1211},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Combine16(tc.lsb, tc.msb, tc.offset); got != tc.want {
				t.Errorf("Combine16(%#02x, %#02x, %#04x) = %#04x, want %#04x", tc.lsb, tc.msb, tc.offset, got, tc.want)
			}
		})
	}
}

func TestBCDRoundTrip(t *testing.T) {
	for tens := uint8(0); tens < 10; tens++ {
		for ones := uint8(0); ones < 10; ones++ {
			packed := ToBCD(tens, ones)
			gotTens, gotOnes := FromBCD(packed)
			if gotTens != tens || gotOnes != ones {
				t.Errorf("FromBCD(ToBCD(%d,%d)) = (%d,%d), want (%d,%d)", tens, ones, gotTens, gotOnes, tens, ones)
			}
		}
	}
}
