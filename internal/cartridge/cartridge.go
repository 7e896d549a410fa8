// Package cartridge provides the game cartridge. The cartridge holds
// the game ROM, as a flat image of the first two banks, and a flat
// window of external RAM.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/thelolagemann/goboy/internal/ram"
	"github.com/thelolagemann/goboy/internal/types"
)

var (
	// ErrHeaderTooShort is returned when a ROM image is too small
	// to hold a cartridge header.
	ErrHeaderTooShort = errors.New("cartridge: rom too short for header")
	// ErrInvalidChecksum is reported when the header checksum does
	// not match the header bytes.
	ErrInvalidChecksum = errors.New("cartridge: invalid header checksum")
	// ErrUnsupportedType is reported for cartridges that need a
	// memory bank controller.
	ErrUnsupportedType = errors.New("cartridge: unsupported cartridge type")
)

// Cartridge represents a basic game cartridge.
type Cartridge struct {
	rom    [types.ROMSize]uint8
	ram    *ram.RAM
	header Header

	size           int
	fingerprint    uint64
	globalChecksum uint16
}

// NewCartridge returns a new Cartridge holding the first two banks
// of rom. Images smaller than two banks are padded with zeroes.
func NewCartridge(rom []byte) (*Cartridge, error) {
	if len(rom) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooShort, len(rom))
	}

	c := &Cartridge{
		ram:         ram.NewRAM(types.StartExternalRAM, types.ExternalRAMSize),
		size:           len(rom),
		fingerprint:    xxhash.Sum64(rom),
		globalChecksum: ComputeGlobalChecksum(rom),
	}
	copy(c.rom[:], rom)

	// parse the cartridge header (0x0100 - 0x014F)
	c.header = parseHeader(rom)

	return c, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Size returns the size of the loaded image in bytes, before
// it was cut or padded to the flat ROM.
func (c *Cartridge) Size() int {
	return c.size
}

// GlobalChecksumValid reports whether the global checksum stored in
// the header matches the sum of the whole loaded image. Nothing on
// the hardware checks it.
func (c *Cartridge) GlobalChecksumValid() bool {
	return c.globalChecksum == c.header.GlobalChecksum
}

// Fingerprint returns a 64-bit hash of the loaded image, used to
// identify a ROM regardless of its file name.
func (c *Cartridge) Fingerprint() uint64 {
	return c.fingerprint
}

// Read returns the value at the given address, which must be in
// either the ROM or the external RAM range.
func (c *Cartridge) Read(address uint16) (uint8, error) {
	if address <= types.EndROM1 {
		return c.rom[address], nil
	}
	return c.ram.Read(address)
}

// Write writes the value to the given address. Writes to the ROM
// range are ignored.
func (c *Cartridge) Write(address uint16, value uint8) error {
	if address <= types.EndROM1 {
		return nil
	}
	return c.ram.Write(address, value)
}

// Battery reports whether the external RAM is battery backed, and
// so worth saving.
func (c *Cartridge) Battery() bool {
	return c.header.CartridgeType.Battery()
}

// RAM returns a copy of the external RAM.
func (c *Cartridge) RAM() []byte {
	return c.ram.Bytes()
}

// LoadRAM replaces the contents of the external RAM with b.
func (c *Cartridge) LoadRAM(b []byte) {
	c.ram.Clear()
	c.ram.Load(b)
}
