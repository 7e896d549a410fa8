package cartridge

import (
	"bytes"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

const (
	headerStart = 0x0100
	headerEnd   = 0x0150

	// HeaderSize is the minimum number of bytes a ROM image must
	// hold for its header to be parsed.
	HeaderSize = headerEnd
)

// Flag is the colour compatibility of a cartridge, stored at 0x0143.
type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
)

type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	POCKETCAMERA      Type = 0x1F
	MBC6              Type = 0x20
	MBC7              Type = 0x22
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

// Battery reports whether the cartridge keeps its RAM when
// powered off.
func (t Type) Battery() bool {
	switch t {
	case MBC1RAMBATT, MBC2BATT, ROMRAMBATT, MMM01RAMBATT, MBC3TIMERBATT, MBC3TIMERRAMBATT,
		MBC3RAMBATT, MBC5RAMBATT, MBC5RUMBLERAMBATT, MBC7, HUDSONHUC1:
		return true
	}
	return false
}

// Flat reports whether the cartridge type needs no memory bank
// controller, so that its ROM fits the flat 32kB image.
func (t Type) Flat() bool {
	switch t {
	case ROM, ROMRAM, ROMRAMBATT:
		return true
	}
	return false
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0100-0x0103 - Entry point, usually a NOP followed by a JP.
	Entry [4]uint8
	// 0x0104-0x0133 - Nintendo logo.
	Logo [0x30]uint8

	// 0x0134-0x0143 - Title of the game, upper case ASCII padded with NULs.
	Title string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	// 0x0144-0x0145 - NewLicenseeCode of the game, two ASCII characters. Only
	// used when OldLicenseeCode is 0x33.
	NewLicenseeCode string
	SGBFlag         bool
	CartridgeType   Type
	ROMSizeCode     uint8
	RAMSizeCode     uint8
	DestinationCode uint8
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	// 0x014E-0x014F - GlobalChecksum, stored big endian.
	GlobalChecksum uint16

	raw [0x50]byte
}

// parseHeader parses the header of the given ROM and returns a Header.
// The ROM must hold at least HeaderSize bytes.
func parseHeader(rom []byte) Header {
	h := Header{}
	header := rom[headerStart:headerEnd]
	copy(h.raw[:], header)

	copy(h.Entry[:], header[0x00:0x04])
	copy(h.Logo[:], header[0x04:0x34])

	// parse the mode of the cartridge and parse the header accordingly
	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	// parse the title
	title := header[0x34:0x44]
	if h.CartridgeGBMode != FlagOnlyDMG {
		title = header[0x34:0x43]
	}
	if i := bytes.IndexByte(title, 0); i >= 0 {
		title = title[:i]
	}
	h.Title = string(title)

	h.NewLicenseeCode = string(header[0x44:0x46])
	h.SGBFlag = header[0x46] == 0x03
	h.CartridgeType = Type(header[0x47])
	h.ROMSizeCode = header[0x48]
	h.RAMSizeCode = header[0x49]
	h.DestinationCode = header[0x4A]
	h.OldLicenseeCode = header[0x4B]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	return h
}

// ComputeHeaderChecksum computes the checksum of the header bytes
// 0x0134-0x014C of rom, as the boot ROM does.
func ComputeHeaderChecksum(rom []byte) uint8 {
	return headerChecksum(rom[0x0134:0x014D])
}

func headerChecksum(b []byte) uint8 {
	var x uint8
	for _, v := range b {
		x = x - v - 1
	}
	return x
}

// ComputeGlobalChecksum computes the sum of every byte of rom,
// except the two global checksum bytes.
func ComputeGlobalChecksum(rom []byte) uint16 {
	var x uint16
	for i, b := range rom {
		if i == 0x014E || i == 0x014F {
			continue
		}
		x += uint16(b)
	}
	return x
}

// ROMSize returns the ROM size declared by the header, in bytes
// (32kB << code).
func (h *Header) ROMSize() uint {
	return (32 * 1024) << h.ROMSizeCode
}

// RAMSize returns the external RAM size declared by the header, in bytes.
func (h *Header) RAMSize() uint {
	return ramMAP[h.RAMSizeCode]
}

// ChecksumValid reports whether the stored header checksum matches
// the header bytes.
func (h *Header) ChecksumValid() bool {
	return headerChecksum(h.raw[0x34:0x4D]) == h.HeaderChecksum
}

// Validate checks the header for anything that would stop the
// cartridge from running as a flat ROM image. Every problem found
// is reported.
func (h *Header) Validate() error {
	var result *multierror.Error

	if sum := headerChecksum(h.raw[0x34:0x4D]); sum != h.HeaderChecksum {
		result = multierror.Append(result, fmt.Errorf("%w: header 0x%02X, computed 0x%02X", ErrInvalidChecksum, h.HeaderChecksum, sum))
	}
	if !h.CartridgeType.Flat() {
		result = multierror.Append(result, fmt.Errorf("%w: 0x%02X (%s)", ErrUnsupportedType, uint8(h.CartridgeType), h.TypeName()))
	}

	return result.ErrorOrNil()
}

// Hardware returns the hardware the cartridge targets.
func (h *Header) Hardware() string {
	if h.CartridgeGBMode == FlagOnlyDMG {
		return "DMG"
	}
	return "CGB"
}
