package cpu

import "github.com/thelolagemann/goboy/internal/types"

// goTo jumps to addr if the condition of the current instruction
// holds. Call-like jumps first push the return address; the two
// units charged before the push cover both stack writes, so CALL
// takes 6 units and RST 4.
func (c *CPU) goTo(addr uint16, push bool) {
	if !c.checkCond(c.instruction.Cond) {
		return
	}

	if push {
		c.ticks(2)
		c.push16(c.PC)
	}

	c.PC = addr
	c.tick()
}

// jp handles JP a16, JP cc,a16 and JP HL. JP HL loads the address
// without a jump delay and takes a single unit.
func (c *CPU) jp() {
	if c.instruction.Mode == ModeReg {
		c.PC = c.fetched
		return
	}
	c.goTo(c.fetched, false)
}

// jr jumps relative to the address of the next instruction.
func (c *CPU) jr() {
	offset := int8(uint8(c.fetched))
	c.goTo(c.PC+uint16(offset), false)
}

func (c *CPU) call() {
	c.goTo(c.fetched, true)
}

func (c *CPU) rst() {
	c.goTo(uint16(c.instruction.Param), true)
}

// ret returns from a call. Conditional returns take an extra cycle
// unit to evaluate the condition.
func (c *CPU) ret() {
	if c.instruction.Cond != CondNone {
		c.tick()
	}

	if !c.checkCond(c.instruction.Cond) {
		return
	}

	c.tick()
	low := c.pop()
	c.tick()
	high := c.pop()

	c.PC = types.Compose(high, low)
	c.tick()
}

// reti enables the master interrupt flag and returns.
func (c *CPU) reti() {
	c.IRQ.IME = true
	c.ret()
}
