// Package timer provides an implementation of the Game Boy
// timer: a free-running 16-bit divider, and a counter that
// is clocked by one bit of the divider and requests an
// interrupt when it overflows.
package timer

import (
	"github.com/thelolagemann/goboy/internal/interrupts"
	"github.com/thelolagemann/goboy/internal/types"
	"github.com/thelolagemann/goboy/internal/types/registers"
)

// InitialDivider is the value of the divider at power on.
const InitialDivider uint16 = 0xAC00

// Requester is the hook the timer raises its overflow
// interrupt through.
type Requester interface {
	Request(flag uint8)
}

// Controller is a timer controller. The counter (types.TIMA)
// is incremented on the falling edge of the divider bit
// selected by the types.TAC register, while the timer is
// enabled.
type Controller struct {
	div  uint16
	tima uint8
	tma  uint8
	tac  uint8

	Enabled    bool
	currentBit uint16

	irq Requester
}

// NewController returns a new timer controller, serving the
// DIV, TIMA, TMA and TAC registers from the given table. irq
// may be nil, in which case overflows are not reported.
func NewController(irq Requester, regs *registers.Table) *Controller {
	c := &Controller{
		irq:        irq,
		div:        InitialDivider,
		currentBit: bits[0],
	}
	// set up registers
	regs.RegisterHardware(
		types.DIV,
		func(v uint8) {
			// any write resets the divider, which may cause a falling edge
			old := c.div
			c.div = 0
			c.edge(old)
		}, func() uint8 {
			return uint8(c.div >> 8)
		},
	)
	regs.RegisterHardware(
		types.TIMA,
		func(v uint8) {
			c.tima = v
		}, func() uint8 {
			return c.tima
		},
	)
	regs.RegisterHardware(
		types.TMA,
		func(v uint8) {
			c.tma = v
		}, func() uint8 {
			return c.tma
		},
	)
	regs.RegisterHardware(
		types.TAC,
		func(v uint8) {
			wasEnabled := c.Enabled
			oldBit := c.currentBit

			c.setTAC(v)
			c.timaGlitch(wasEnabled, oldBit)
		}, func() uint8 {
			return c.tac
		},
		registers.Mask(0xF8),
	)

	return c
}

// Tick advances the divider by one cycle unit.
func (c *Controller) Tick() {
	old := c.div
	c.div++
	c.edge(old)
}

// Divider returns the full 16-bit divider.
func (c *Controller) Divider() uint16 {
	return c.div
}

// Counter returns the value of TIMA.
func (c *Controller) Counter() uint8 {
	return c.tima
}

// edge increments the counter if the selected bit went from 1
// to 0 between old and the current divider.
func (c *Controller) edge(old uint16) {
	if !c.Enabled {
		return
	}
	if old&c.currentBit != 0 && c.div&c.currentBit == 0 {
		c.increment()
	}
}

func (c *Controller) increment() {
	c.tima++

	// check for overflow
	if c.tima == 0 {
		c.tima = c.tma
		if c.irq != nil {
			c.irq.Request(interrupts.TimerFlag)
		}
	}
}

func (c *Controller) setTAC(v uint8) {
	// 00 = divider bit 9
	// 01 = divider bit 3
	// 10 = divider bit 5
	// 11 = divider bit 7
	c.tac = v & 0x07
	c.currentBit = bits[v&0b11]
	c.Enabled = v&types.Bit2 != 0
}

// timaGlitch handles the falling edge seen by the counter when
// the timer is disabled, or the selected bit changes, while the
// old selected bit was set.
func (c *Controller) timaGlitch(wasEnabled bool, oldBit uint16) {
	if !wasEnabled || c.div&oldBit == 0 {
		return
	}

	if !c.Enabled || c.div&c.currentBit == 0 {
		c.increment()
	}
}

var bits = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}
