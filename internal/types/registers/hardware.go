// Package registers provides the table of hardware registers that
// components expose on the I/O area of the address bus.
package registers

import (
	"github.com/thelolagemann/goboy/internal/types"
)

// Table is a collection of hardware registers, indexed by the
// address of the hardware register ANDed with 0x007F. Each
// emulator instance owns its own Table.
type Table struct {
	registers [0x80]*Hardware
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{}
}

// Hardware represents a hardware register of the Game
// Boy. The hardware registers are used to control and
// read the state of the hardware.
type Hardware struct {
	address types.HardwareAddress
	set     func(v uint8)
	get     func() uint8
	mask    uint8
}

// HardwareOpt is a function that configures a hardware register.
type HardwareOpt func(*Hardware)

// Mask sets the bits that always read back as 1. In the Game
// Boy all unused bits in a hardware register are set to 1.
func Mask(mask uint8) HardwareOpt {
	return func(h *Hardware) {
		h.mask = mask
	}
}

// NoRead is used for write-only hardware registers, which read
// back as 0xFF.
func NoRead() uint8 {
	return 0xFF
}

// NoWrite is used for read-only hardware registers.
func NoWrite(uint8) {}

// RegisterHardware registers a hardware register at address,
// replacing any previous registration.
func (t *Table) RegisterHardware(address types.HardwareAddress, set func(v uint8), get func() uint8, opts ...HardwareOpt) {
	h := &Hardware{
		address: address,
		set:     set,
		get:     get,
	}
	for _, opt := range opts {
		opt(h)
	}

	t.registers[address&0x7F] = h
}

// Has returns true if a hardware register is registered at
// the given address.
func (t *Table) Has(address uint16) bool {
	h := t.registers[address&0x7F]
	return h != nil && h.address == address
}

// Read returns the value of the hardware register at address,
// and false if nothing is registered there.
func (t *Table) Read(address uint16) (uint8, bool) {
	if !t.Has(address) {
		return 0, false
	}
	return t.registers[address&0x7F].Read(), true
}

// Write writes value to the hardware register at address, and
// returns false if nothing is registered there.
func (t *Table) Write(address uint16, value uint8) bool {
	if !t.Has(address) {
		return false
	}
	t.registers[address&0x7F].Write(value)
	return true
}

// Read returns the value of the hardware register.
func (h *Hardware) Read() uint8 {
	return h.get() | h.mask
}

// Write sets the value of the hardware register.
func (h *Hardware) Write(value uint8) {
	h.set(value)
}
