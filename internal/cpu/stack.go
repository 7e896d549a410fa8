package cpu

import "github.com/thelolagemann/goboy/internal/types"

// push decrements SP and writes value to the top of the stack.
// The caller is responsible for charging the cycle.
func (c *CPU) push(value uint8) {
	c.SP--
	c.write(c.SP, value)
}

// pop reads the value at the top of the stack and increments SP.
// The caller is responsible for charging the cycle.
func (c *CPU) pop() uint8 {
	value := c.read(c.SP)
	c.SP++
	return value
}

// push16 pushes value, high byte first.
func (c *CPU) push16(value uint16) {
	high, low := types.Decompose(value)
	c.push(high)
	c.push(low)
}

// pushInstruction handles PUSH rr.
func (c *CPU) pushInstruction() {
	high, low := types.Decompose(c.fetched)
	c.tick()
	c.push(high)
	c.tick()
	c.push(low)
	c.tick()
}

// popInstruction handles POP rr. Only the upper nibble of F can be
// restored.
func (c *CPU) popInstruction() {
	c.tick()
	low := c.pop()
	c.tick()
	high := c.pop()

	value := types.Compose(high, low)
	if c.instruction.Reg1 == RegAF {
		value &= 0xFFF0
	}
	c.setReg(c.instruction.Reg1, value)
}
