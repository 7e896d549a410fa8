package interrupts

import (
	"github.com/thelolagemann/goboy/internal/types"
	"github.com/thelolagemann/goboy/internal/types/registers"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows,
	// (types.TIMA > 0xFF).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4
)

// Service holds the interrupt state of the system, and is
// used by components to request interrupts.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. The IME is set by the EI and RETI instructions
// and cleared by DI.
//
// Dispatching a requested interrupt to its vector, and
// waking a halted CPU, is left to the caller.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
	IME    bool  // interrupt master enable
}

// NewService returns a new Service, serving the IF and IE
// registers from the given table.
func NewService(regs *registers.Table) *Service {
	s := &Service{}
	// setup registers
	regs.RegisterHardware(
		types.IF,
		func(v uint8) {
			s.Flag = v & 0x1F // only the first 5 bits are used
		}, func() uint8 {
			return s.Flag
		},
		registers.Mask(0xE0), // the upper 3 bits are always set
	)
	regs.RegisterHardware(
		types.IE,
		func(v uint8) {
			s.Enable = v
		}, func() uint8 {
			return s.Enable
		},
	)

	return s
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Reset clears every flag.
func (s *Service) Reset() {
	s.Flag = 0
	s.Enable = 0
	s.IME = false
}
