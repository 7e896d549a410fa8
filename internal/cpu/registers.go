package cpu

import "github.com/thelolagemann/goboy/internal/types"

type Register = types.Register
type RegisterPair = types.RegisterPair

// Registers holds the 8-bit registers of the CPU, and the 16-bit
// register pairs formed from them. The first named register of a
// pair is always the high byte.
type Registers struct {
	A Register
	F Register // flags, only the upper nibble is used
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// pair returns the RegisterPair for reg, or nil if reg is
// not one of AF, BC, DE or HL.
func (c *CPU) pair(reg Reg) *RegisterPair {
	switch reg {
	case RegAF:
		return c.AF
	case RegBC:
		return c.BC
	case RegDE:
		return c.DE
	case RegHL:
		return c.HL
	}
	return nil
}

// register returns the 8-bit Register for reg, or nil if reg
// is a 16-bit register.
func (c *CPU) register(reg Reg) *Register {
	switch reg {
	case RegA:
		return &c.A
	case RegF:
		return &c.F
	case RegB:
		return &c.B
	case RegC:
		return &c.C
	case RegD:
		return &c.D
	case RegE:
		return &c.E
	case RegH:
		return &c.H
	case RegL:
		return &c.L
	}
	return nil
}

// readReg returns the value of any register.
func (c *CPU) readReg(reg Reg) uint16 {
	switch reg {
	case RegSP:
		return c.SP
	case RegPC:
		return c.PC
	}
	if p := c.pair(reg); p != nil {
		return p.Uint16()
	}
	if r := c.register(reg); r != nil {
		return uint16(*r)
	}
	return 0
}

// setReg sets the value of any register. 8-bit registers take
// the low byte of value.
func (c *CPU) setReg(reg Reg, value uint16) {
	switch reg {
	case RegSP:
		c.SP = value
		return
	case RegPC:
		c.PC = value
		return
	}
	if p := c.pair(reg); p != nil {
		p.SetUint16(value)
		return
	}
	if r := c.register(reg); r != nil {
		*r = uint8(value)
	}
}

// ReadPair returns the value of a register pair, SP or PC.
func (c *CPU) ReadPair(reg Reg) uint16 {
	return c.readReg(reg)
}

// WritePair sets the value of a register pair, SP or PC. Writes
// are stored as given, including the low nibble of F.
func (c *CPU) WritePair(reg Reg, value uint16) {
	c.setReg(reg, value)
}
