package cpu

import "github.com/thelolagemann/goboy/internal/scheduler"

// execute runs the current instruction, after its operands have
// been fetched.
func (c *CPU) execute() error {
	switch c.instruction.Kind {
	case KindNOP:
	case KindLD, KindLDH:
		c.load()
	case KindINC:
		c.increment()
	case KindDEC:
		c.decrement()
	case KindADD:
		c.add()
	case KindADC:
		c.adc()
	case KindSUB:
		c.sub()
	case KindSBC:
		c.sbc()
	case KindAND:
		c.and()
	case KindXOR:
		c.xor()
	case KindOR:
		c.or()
	case KindCP:
		c.cp()
	case KindRLCA, KindRRCA, KindRLA, KindRRA:
		c.rotateA()
	case KindDAA:
		c.daa()
	case KindCPL:
		c.A = ^c.A
		c.setFlags(keep, on, on, keep)
	case KindSCF:
		c.setFlags(keep, off, off, on)
	case KindCCF:
		c.setFlags(keep, off, off, flagOf(!c.isFlagSet(FlagCarry)))
	case KindJP:
		c.jp()
	case KindJR:
		c.jr()
	case KindCALL:
		c.call()
	case KindRST:
		c.rst()
	case KindRET:
		c.ret()
	case KindRETI:
		c.reti()
	case KindPOP:
		c.popInstruction()
	case KindPUSH:
		c.pushInstruction()
	case KindHALT:
		c.halted = true
	case KindDI:
		c.IRQ.IME = false
		c.s.DescheduleEvent(scheduler.EIPending)
	case KindEI:
		c.s.ScheduleEvent(scheduler.EIPending, 1)
	case KindCB:
		return c.cb()
	case KindSTOP:
		return ErrNotImplemented
	default:
		return ErrUnknownInstruction
	}

	return nil
}
