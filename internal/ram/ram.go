// Package ram provides a basic RAM implementation.
package ram

import (
	"errors"
	"fmt"
)

// ErrAddressOutOfRange is returned when an address falls outside
// of the block of RAM being accessed.
var ErrAddressOutOfRange = errors.New("ram: address out of range")

// RAM represents a fixed-size block of RAM, mapped at a base
// address of the address space.
type RAM struct {
	base uint16
	data []uint8
}

// NewRAM returns a new RAM of the given size, that is accessed
// by absolute addresses starting at base.
func NewRAM(base uint16, size int) *RAM {
	return &RAM{
		base: base,
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) (uint8, error) {
	i, err := r.offset(address)
	if err != nil {
		return 0, err
	}
	return r.data[i], nil
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) error {
	i, err := r.offset(address)
	if err != nil {
		return err
	}
	r.data[i] = value
	return nil
}

// Size returns the number of bytes held by the RAM.
func (r *RAM) Size() int {
	return len(r.data)
}

// Clear zeroes every byte.
func (r *RAM) Clear() {
	for i := range r.data {
		r.data[i] = 0
	}
}

// Bytes returns a copy of the contents.
func (r *RAM) Bytes() []byte {
	return append([]byte(nil), r.data...)
}

// Load copies b into the RAM, from the base address. Bytes past
// the end of the RAM are dropped.
func (r *RAM) Load(b []byte) {
	copy(r.data, b)
}

func (r *RAM) offset(address uint16) (int, error) {
	if address < r.base || int(address-r.base) >= len(r.data) {
		return 0, fmt.Errorf("%w: 0x%04X not in 0x%04X-0x%04X", ErrAddressOutOfRange, address, r.base, int(r.base)+len(r.data)-1)
	}
	return int(address - r.base), nil
}
