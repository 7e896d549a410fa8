package cpu

// fetch reads the operands of the current instruction, as its
// addressing mode describes. Every bus read costs a cycle unit.
func (c *CPU) fetch() error {
	i := c.instruction

	switch i.Mode {
	case ModeImplied:
	case ModeReg:
		c.fetched = c.readReg(i.Reg1)
	case ModeRegReg:
		c.fetched = c.readReg(i.Reg2)
	case ModeRegD8, ModeD8, ModeHLSPE8:
		c.fetched = uint16(c.readOperand())
	case ModeRegD16, ModeD16:
		c.fetched = c.readOperand16()
	case ModeMemReg:
		c.fetched = c.readReg(i.Reg2)
		c.memDest = c.indirect(i.Reg1)
		c.destIsMem = true
	case ModeRegMem:
		c.fetched = uint16(c.readByte(c.indirect(i.Reg2)))
	case ModeRegHLI:
		c.fetched = uint16(c.readByte(c.HL.Uint16()))
		c.HL.SetUint16(c.HL.Uint16() + 1)
	case ModeRegHLD:
		c.fetched = uint16(c.readByte(c.HL.Uint16()))
		c.HL.SetUint16(c.HL.Uint16() - 1)
	case ModeHLIReg:
		c.fetched = c.readReg(i.Reg2)
		c.memDest = c.HL.Uint16()
		c.destIsMem = true
		c.HL.SetUint16(c.HL.Uint16() + 1)
	case ModeHLDReg:
		c.fetched = c.readReg(i.Reg2)
		c.memDest = c.HL.Uint16()
		c.destIsMem = true
		c.HL.SetUint16(c.HL.Uint16() - 1)
	case ModeRegA8:
		c.fetched = uint16(c.readByte(0xFF00 | uint16(c.readOperand())))
	case ModeA8Reg:
		c.memDest = 0xFF00 | uint16(c.readOperand())
		c.destIsMem = true
		c.fetched = c.readReg(i.Reg2)
	case ModeA16Reg:
		c.memDest = c.readOperand16()
		c.destIsMem = true
		c.fetched = c.readReg(i.Reg2)
	case ModeRegA16:
		c.fetched = uint16(c.readByte(c.readOperand16()))
	case ModeMemD8:
		c.fetched = uint16(c.readOperand())
		c.memDest = c.readReg(i.Reg1)
		c.destIsMem = true
	case ModeMem:
		c.memDest = c.readReg(i.Reg1)
		c.destIsMem = true
		c.fetched = uint16(c.readByte(c.memDest))
	default:
		return ErrUnsupportedAddressingMode
	}

	return nil
}

// indirect returns the address held by reg. C addresses the
// I/O page at 0xFF00.
func (c *CPU) indirect(reg Reg) uint16 {
	if reg == RegC {
		return 0xFF00 | uint16(c.C)
	}
	return c.readReg(reg)
}
