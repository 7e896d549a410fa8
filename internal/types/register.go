package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL. The first named
// register is always the high byte.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return Compose(*r.High, *r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High, *r.Low = Decompose(value)
}

// Compose combines a high and a low byte into a 16-bit value.
func Compose(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Decompose splits a 16-bit value into its high and low bytes.
func Decompose(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value)
}
