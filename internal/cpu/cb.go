package cpu

// cb executes the CB prefixed instruction whose opcode was fetched
// as the operand of the prefix. The decoded instruction replaces the
// prefix as the current instruction.
func (c *CPU) cb() error {
	i := DecodeCB(uint8(c.fetched))
	c.instruction = i

	var v uint8
	if i.Mode == ModeMem {
		v = c.readByte(c.HL.Uint16())
	} else {
		v = uint8(c.readReg(i.Reg1))
	}

	switch i.Kind {
	case KindBIT:
		c.setFlags(flagOf(v&(1<<i.Param) == 0), off, on, keep)
		return nil
	case KindRES:
		v &^= 1 << i.Param
	case KindSET:
		v |= 1 << i.Param
	case KindRLC, KindRRC, KindRL, KindRR, KindSLA, KindSRA, KindSWAP, KindSRL:
		v = c.shift(i.Kind, v)
	default:
		return ErrInvalidCBOperation
	}

	if i.Mode == ModeMem {
		c.writeByte(c.HL.Uint16(), v)
	} else {
		c.setReg(i.Reg1, uint16(v))
	}
	return nil
}

// shift performs one of the rotate and shift operations on v,
// setting the flags from the result and the bit shifted out.
func (c *CPU) shift(kind Kind, v uint8) uint8 {
	var result, carry uint8

	switch kind {
	case KindRLC:
		carry = v >> 7
		result = v<<1 | carry
	case KindRRC:
		carry = v & 1
		result = v>>1 | carry<<7
	case KindRL:
		carry = v >> 7
		result = v<<1 | c.carry()
	case KindRR:
		carry = v & 1
		result = v>>1 | c.carry()<<7
	case KindSLA:
		carry = v >> 7
		result = v << 1
	case KindSRA:
		carry = v & 1
		result = v>>1 | v&0x80
	case KindSWAP:
		result = v<<4 | v>>4
	case KindSRL:
		carry = v & 1
		result = v >> 1
	}

	c.setFlags(flagOf(result == 0), off, off, flagOf(carry == 1))
	return result
}
