package cpu

// increment handles INC. 16-bit register increments cost an extra
// cycle unit and never touch the flags.
func (c *CPU) increment() {
	i := c.instruction
	if !c.destIsMem && i.Reg1.Is16Bit() {
		c.setReg(i.Reg1, c.fetched+1)
		c.tick()
		return
	}

	v := uint8(c.fetched) + 1
	if c.destIsMem {
		c.writeByte(c.memDest, v)
	} else {
		c.setReg(i.Reg1, uint16(v))
	}

	if c.opcode&0x03 == 0x03 {
		return
	}
	c.setFlags(flagOf(v == 0), off, flagOf(v&0x0F == 0), keep)
}

// decrement handles DEC, mirroring increment.
func (c *CPU) decrement() {
	i := c.instruction
	if !c.destIsMem && i.Reg1.Is16Bit() {
		c.setReg(i.Reg1, c.fetched-1)
		c.tick()
		return
	}

	v := uint8(c.fetched) - 1
	if c.destIsMem {
		c.writeByte(c.memDest, v)
	} else {
		c.setReg(i.Reg1, uint16(v))
	}

	if c.opcode&0x0B == 0x0B {
		return
	}
	c.setFlags(flagOf(v == 0), on, flagOf(v&0x0F == 0x0F), keep)
}

// add handles ADD A,n, ADD HL,rr and ADD SP,e8.
func (c *CPU) add() {
	i := c.instruction

	switch {
	case i.Reg1 == RegSP:
		c.SP = c.addSPSigned(uint8(c.fetched))
		c.ticks(2)
	case i.Reg1.Is16Bit():
		hl := c.readReg(i.Reg1)
		result := uint32(hl) + uint32(c.fetched)
		c.setReg(i.Reg1, uint16(result))
		c.setFlags(
			keep,
			off,
			flagOf((hl&0x0FFF)+(c.fetched&0x0FFF) > 0x0FFF),
			flagOf(result > 0xFFFF),
		)
		c.tick()
	default:
		a, v := c.A, uint8(c.fetched)
		result := uint16(a) + uint16(v)
		c.A = uint8(result)
		c.setFlags(flagOf(c.A == 0), off, flagOf((a&0x0F)+(v&0x0F) > 0x0F), flagOf(result > 0xFF))
	}
}

func (c *CPU) carry() uint8 {
	if c.isFlagSet(FlagCarry) {
		return 1
	}
	return 0
}

func (c *CPU) adc() {
	a, v, carry := c.A, uint8(c.fetched), c.carry()
	result := uint16(a) + uint16(v) + uint16(carry)
	c.A = uint8(result)
	c.setFlags(flagOf(c.A == 0), off, flagOf((a&0x0F)+(v&0x0F)+carry > 0x0F), flagOf(result > 0xFF))
}

// subtract returns A minus n and the borrow carry, setting every
// flag. It is shared by SUB, SBC and CP.
func (c *CPU) subtract(v, carry uint8) uint8 {
	a := c.A
	result := int(a) - int(v) - int(carry)
	c.setFlags(
		flagOf(uint8(result) == 0),
		on,
		flagOf(int(a&0x0F)-int(v&0x0F)-int(carry) < 0),
		flagOf(result < 0),
	)
	return uint8(result)
}

func (c *CPU) sub() {
	c.A = c.subtract(uint8(c.fetched), 0)
}

func (c *CPU) sbc() {
	c.A = c.subtract(uint8(c.fetched), c.carry())
}

// cp compares A with n, keeping only the flags.
func (c *CPU) cp() {
	c.subtract(uint8(c.fetched), 0)
}

func (c *CPU) and() {
	c.A &= uint8(c.fetched)
	c.setFlags(flagOf(c.A == 0), off, on, off)
}

func (c *CPU) xor() {
	c.A ^= uint8(c.fetched)
	c.setFlags(flagOf(c.A == 0), off, off, off)
}

func (c *CPU) or() {
	c.A |= uint8(c.fetched)
	c.setFlags(flagOf(c.A == 0), off, off, off)
}

// rotateA handles RLCA, RRCA, RLA and RRA. Unlike their CB prefixed
// forms, these always clear Z.
func (c *CPU) rotateA() {
	var carry uint8
	switch c.instruction.Kind {
	case KindRLCA:
		carry = c.A >> 7
		c.A = c.A<<1 | carry
	case KindRRCA:
		carry = c.A & 1
		c.A = c.A>>1 | carry<<7
	case KindRLA:
		old := c.carry()
		carry = c.A >> 7
		c.A = c.A<<1 | old
	case KindRRA:
		old := c.carry()
		carry = c.A & 1
		c.A = c.A>>1 | old<<7
	}
	c.setFlags(off, off, off, flagOf(carry == 1))
}

// daa adjusts A to binary coded decimal after an addition or
// subtraction.
func (c *CPU) daa() {
	var u uint8
	fc := false

	if c.isFlagSet(FlagHalfCarry) || (!c.isFlagSet(FlagSubtract) && c.A&0x0F > 0x09) {
		u = 0x06
	}
	if c.isFlagSet(FlagCarry) || (!c.isFlagSet(FlagSubtract) && c.A > 0x99) {
		u |= 0x60
		fc = true
	}

	if c.isFlagSet(FlagSubtract) {
		c.A -= u
	} else {
		c.A += u
	}

	c.setFlags(flagOf(c.A == 0), keep, off, flagOf(fc))
}
