// Package serial provides the serial port of the Game Boy, clocked
// internally at 8192Hz.
package serial

import (
	"github.com/thelolagemann/goboy/internal/interrupts"
	"github.com/thelolagemann/goboy/internal/scheduler"
	"github.com/thelolagemann/goboy/internal/types"
	"github.com/thelolagemann/goboy/internal/types/registers"
)

const (
	// cyclesPerBit is the number of cycle units between two bits
	// of a transfer on the internal clock (512 clocks).
	cyclesPerBit = 128
)

// Requester is the hook the controller raises the serial
// interrupt through.
type Requester interface {
	Request(flag uint8)
}

// Controller is the serial controller. It is responsible for sending and
// receiving data to and from devices.
// Before a transfer, data holds the next byte to be sent. AKA types.SB
// During a transfer, it has a mix of the incoming data and the outgoing data.
// each bit, the leftmost bit of data is sent to the attached device, and
// shifted out of data, and the incoming bit is shifted into data.
//
// example:
//
//	Before : data = o7 o6 o5 o4 o3 o2 o1 o0
//	Bit 1  : data = o6 o5 o4 o3 o2 o1 o0 i0
//	Bit 2  : data = o5 o4 o3 o2 o1 o0 i0 i1
//	...
//	Bit 8  : data = i0 i1 i2 i3 i4 i5 i6 i7
//
// Where o0-o7 are the outgoing bits, and i0-i7 are the incoming bits.
type Controller struct {
	data            uint8
	count           uint8 // the number of bits that have been transferred.
	InternalClock   bool  // if true, this controller is the master.
	TransferRequest bool  // if true, a transfer has been requested.

	AttachedDevice Device // the device that is attached to this controller.

	irq Requester
	s   *scheduler.Scheduler
}

// Attach attaches a Device to the Controller.
func (c *Controller) Attach(d Device) {
	c.AttachedDevice = d
}

// NewController creates a new Controller, serving the SB and SC
// registers from regs. By default, the Controller is attached to a
// nullDevice, which acts as if nothing is plugged in.
func NewController(irq Requester, regs *registers.Table, s *scheduler.Scheduler) *Controller {
	c := &Controller{
		AttachedDevice: nullDevice{},
		irq:            irq,
		s:              s,
	}
	regs.RegisterHardware(
		types.SB,
		func(v uint8) {
			c.data = v
		}, func() uint8 {
			return c.data
		},
	)
	regs.RegisterHardware(
		types.SC,
		func(v uint8) {
			c.InternalClock = v&types.Bit0 != 0
			c.TransferRequest = v&types.Bit7 != 0

			// is this GameBoy the master?
			if c.TransferRequest && c.InternalClock {
				c.scheduleBit()
			} else {
				s.DescheduleEvent(scheduler.SerialBitTransfer)
			}
		}, func() uint8 {
			var v uint8
			if c.TransferRequest {
				v |= types.Bit7
			}
			if c.InternalClock {
				v |= types.Bit0
			}
			return v
		},
		registers.Mask(0x7E), // bits 1-6 are unused
	)

	s.RegisterEvent(scheduler.SerialBitTransfer, c.transferBit)
	return c
}

// scheduleBit schedules the next bit on the next multiple of
// cyclesPerBit.
func (c *Controller) scheduleBit() {
	c.s.ScheduleEvent(scheduler.SerialBitTransfer, cyclesPerBit-c.s.Cycle()&(cyclesPerBit-1))
}

func (c *Controller) transferBit() {
	if !c.InternalClock || !c.TransferRequest {
		return
	}
	bit := c.AttachedDevice.Send()
	c.AttachedDevice.Receive(c.data&types.Bit7 != 0)

	c.data <<= 1
	if bit {
		c.data |= 1
	}

	if c.count++; c.count == 8 {
		c.count = 0
		c.TransferRequest = false
		if c.irq != nil {
			c.irq.Request(interrupts.SerialFlag)
		}
		return
	}
	c.scheduleBit()
}
