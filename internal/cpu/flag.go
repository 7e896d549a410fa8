package cpu

type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// flag is the value given to setFlags for each flag: clear, set,
// or keep the current value.
type flag int8

const (
	keep flag = -1
	off  flag = 0
	on   flag = 1
)

func flagOf(b bool) flag {
	if b {
		return on
	}
	return off
}

// setFlags sets Z, N, H and C in one go. Flags given as keep are
// left unchanged. The low nibble of F is always cleared.
func (c *CPU) setFlags(z, n, h, carry flag) {
	c.setFlag(FlagZero, z)
	c.setFlag(FlagSubtract, n)
	c.setFlag(FlagHalfCarry, h)
	c.setFlag(FlagCarry, carry)
	c.F &= 0xF0
}

func (c *CPU) setFlag(f Flag, v flag) {
	switch v {
	case on:
		c.F |= 1 << f
	case off:
		c.F &^= 1 << f
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(f Flag) bool {
	return c.F&(1<<f) != 0
}

// checkCond returns true if the branch condition holds.
func (c *CPU) checkCond(cond Cond) bool {
	switch cond {
	case CondNZ:
		return !c.isFlagSet(FlagZero)
	case CondZ:
		return c.isFlagSet(FlagZero)
	case CondNC:
		return !c.isFlagSet(FlagCarry)
	case CondC:
		return c.isFlagSet(FlagCarry)
	}
	return true
}
