// Package bits holds the small address and BCD arithmetic helpers shared
// by the memory and cpu packages.
package bits

// Combine assembles a 16-bit address from a low byte, a high byte, and a
// wrapping byte offset applied to the low byte only (the offset never
// carries into the high byte, matching zero-page index wraparound).
func Combine(lsb, msb, offset uint8) uint16 {
	return (uint16(msb) << 8) + uint16(lsb+offset)
}

// Combine16 assembles a 16-bit address from a low byte, a high byte, and a
// 16-bit offset that is allowed to carry into the high byte (used for
// absolute,X/Y effective addresses).
func Combine16(lsb, msb uint8, offset uint16) uint16 {
	return ((uint16(msb) << 8) + uint16(lsb)) + offset
}

// ToBCD packs two decimal digits (0-9 each) into a single byte, the low
// nibble holding the ones digit and the high nibble the tens digit.
func ToBCD(tens, ones uint8) uint8 {
	return (tens << 4) | (ones & 0x0F)
}

// FromBCD unpacks a byte holding two BCD digits into tens and ones.
func FromBCD(v uint8) (tens, ones uint8) {
	return (v >> 4) & 0x0F, v & 0x0F
}
