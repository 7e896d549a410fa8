package cpu

import "github.com/thelolagemann/goboy/internal/types"

// load stores the fetched operand in the destination of the
// current instruction, either a register or memory.
func (c *CPU) load() {
	i := c.instruction

	if c.destIsMem {
		// LD (a16), SP
		if i.Reg2.Is16Bit() {
			high, low := types.Decompose(c.fetched)
			c.writeByte(c.memDest, low)
			c.writeByte(c.memDest+1, high)
			return
		}
		c.writeByte(c.memDest, uint8(c.fetched))
		return
	}

	switch {
	case i.Mode == ModeHLSPE8:
		c.HL.SetUint16(c.addSPSigned(uint8(c.fetched)))
		c.tick()
		return
	case i.Mode == ModeRegReg && i.Reg1.Is16Bit():
		// LD SP, HL
		c.tick()
	}

	c.setReg(i.Reg1, c.fetched)
}

// addSPSigned returns SP plus the signed offset e, setting the
// half carry and carry flags from the unsigned low byte addition.
func (c *CPU) addSPSigned(e uint8) uint16 {
	result := c.SP + uint16(int8(e))
	c.setFlags(
		off,
		off,
		flagOf((c.SP&0x0F)+uint16(e&0x0F) > 0x0F),
		flagOf((c.SP&0xFF)+uint16(e) > 0xFF),
	)
	return result
}
