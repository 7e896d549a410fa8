package cartridge

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/thelolagemann/goboy/internal/ram"
)

// testROM returns a 32kB ROM image with a valid header.
func testROM(title string, cartType Type) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], []byte{0x00, 0xC3, 0x50, 0x01})
	copy(rom[0x134:0x144], title)
	rom[0x144], rom[0x145] = '0', '1'
	rom[0x147] = uint8(cartType)
	rom[0x148] = 0x00
	rom[0x149] = 0x00
	rom[0x14A] = 0x01
	rom[0x14B] = 0x33
	rom[0x14D] = ComputeHeaderChecksum(rom)
	rom[0x14E], rom[0x14F] = 0x12, 0x34
	return rom
}

func TestNewCartridge(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		if _, err := NewCartridge(make([]byte, 0x14F)); !errors.Is(err, ErrHeaderTooShort) {
			t.Errorf("expected ErrHeaderTooShort, got %v", err)
		}
	})
	t.Run("padded", func(t *testing.T) {
		rom := testROM("PAD", ROM)[:0x200]
		c, err := NewCartridge(rom)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, _ := c.Read(0x7FFF); v != 0 {
			t.Errorf("expected padding to read 0, got 0x%02X", v)
		}
		if c.Size() != 0x200 {
			t.Errorf("expected size 0x200, got 0x%X", c.Size())
		}
	})
}

func TestHeader(t *testing.T) {
	c, err := NewCartridge(testROM("TETRIS", ROM))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := c.Header()

	if h.Title != "TETRIS" {
		t.Errorf("expected title TETRIS, got %q", h.Title)
	}
	if h.Entry != [4]uint8{0x00, 0xC3, 0x50, 0x01} {
		t.Errorf("expected entry point NOP; JP 0x0150, got % X", h.Entry)
	}
	if h.ROMSize() != 32*1024 {
		t.Errorf("expected 32kB ROM, got %d", h.ROMSize())
	}
	if h.DestinationCode != 0x01 {
		t.Errorf("expected destination code 0x01, got 0x%02X", h.DestinationCode)
	}
	if h.GlobalChecksum != 0x1234 {
		t.Errorf("expected global checksum 0x1234, got 0x%04X", h.GlobalChecksum)
	}
	if h.TypeName() != "ROM ONLY" {
		t.Errorf("expected ROM ONLY, got %s", h.TypeName())
	}
	if h.LicenseeName() != "Nintendo R&D1" {
		t.Errorf("expected Nintendo R&D1, got %s", h.LicenseeName())
	}
	if !h.ChecksumValid() {
		t.Errorf("expected header checksum to be valid")
	}
	if err := h.Validate(); err != nil {
		t.Errorf("expected header to validate, got %v", err)
	}
}

func TestHeader_Checksum(t *testing.T) {
	rom := make([]byte, 0x150)
	// every byte zero: 25 bytes each subtracting 1
	if sum := ComputeHeaderChecksum(rom); sum != 0xE7 {
		t.Errorf("expected checksum 0xE7, got 0x%02X", sum)
	}
}

func TestHeader_Validate(t *testing.T) {
	rom := testROM("BANKED", MBC1)
	rom[0x14D]++
	c, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := c.Header()

	err = h.Validate()
	if !errors.Is(err, ErrInvalidChecksum) {
		t.Errorf("expected ErrInvalidChecksum, got %v", err)
	}
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) != 2 {
		t.Errorf("expected 2 aggregated errors, got %v", err)
	}
}

func TestHeader_LicenseeName(t *testing.T) {
	h := Header{OldLicenseeCode: 0x01}
	if h.LicenseeName() != "Nintendo R&D1" {
		t.Errorf("expected Nintendo R&D1, got %s", h.LicenseeName())
	}
	h = Header{OldLicenseeCode: 0x33, NewLicenseeCode: "A4"}
	if h.LicenseeName() != "Konami (Yu-Gi-Oh!)" {
		t.Errorf("expected Konami (Yu-Gi-Oh!), got %s", h.LicenseeName())
	}
	h = Header{OldLicenseeCode: 0x33, NewLicenseeCode: "ZZ"}
	if h.LicenseeName() != "UNKNOWN" {
		t.Errorf("expected UNKNOWN, got %s", h.LicenseeName())
	}
}

func TestCartridge_ReadWrite(t *testing.T) {
	rom := testROM("RW", ROMRAM)
	rom[0x4000] = 0x42
	c, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("rom", func(t *testing.T) {
		if err := c.Write(0x4000, 0x99); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, _ := c.Read(0x4000); v != 0x42 {
			t.Errorf("expected ROM write to be ignored, got 0x%02X", v)
		}
	})
	t.Run("external ram", func(t *testing.T) {
		if err := c.Write(0xA010, 0x7A); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v, _ := c.Read(0xA010); v != 0x7A {
			t.Errorf("expected 0x7A, got 0x%02X", v)
		}
	})
	t.Run("outside cartridge", func(t *testing.T) {
		if _, err := c.Read(0xC000); !errors.Is(err, ram.ErrAddressOutOfRange) {
			t.Errorf("expected ErrAddressOutOfRange, got %v", err)
		}
	})
	t.Run("fingerprint", func(t *testing.T) {
		other, _ := NewCartridge(testROM("OTHER", ROMRAM))
		if c.Fingerprint() == other.Fingerprint() {
			t.Errorf("expected different images to have different fingerprints")
		}
	})
}

func TestCartridge_Battery(t *testing.T) {
	for _, tt := range []struct {
		cartType Type
		battery  bool
	}{
		{ROM, false},
		{ROMRAM, false},
		{ROMRAMBATT, true},
		{MBC3TIMERBATT, true},
		{MBC5RUMBLERAM, false},
	} {
		c, err := NewCartridge(testROM("BATT", tt.cartType))
		if err != nil {
			t.Fatal(err)
		}
		if c.Battery() != tt.battery {
			t.Errorf("0x%02X: expected battery %v, got %v", uint8(tt.cartType), tt.battery, c.Battery())
		}
	}

	t.Run("ram", func(t *testing.T) {
		c, _ := NewCartridge(testROM("BATT", ROMRAMBATT))
		if err := c.Write(0xA001, 0x55); err != nil {
			t.Fatal(err)
		}
		saved := c.RAM()
		if len(saved) != 0x2000 || saved[1] != 0x55 {
			t.Fatalf("expected 8KiB with 0x55 at 1, got %d bytes", len(saved))
		}

		c.LoadRAM([]byte{0x11})
		if v, _ := c.Read(0xA000); v != 0x11 {
			t.Errorf("expected 0x11, got 0x%02X", v)
		}
		if v, _ := c.Read(0xA001); v != 0x00 {
			t.Errorf("expected loading to clear the rest, got 0x%02X", v)
		}
	})
}

func TestCartridge_GlobalChecksum(t *testing.T) {
	rom := testROM("SUM", ROM)
	rom[0x200] = 0xFF

	c, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.GlobalChecksumValid() {
		t.Error("expected stored checksum 0x1234 to be invalid")
	}

	sum := ComputeGlobalChecksum(rom)
	rom[0x14E], rom[0x14F] = uint8(sum>>8), uint8(sum)
	if c, _ = NewCartridge(rom); !c.GlobalChecksumValid() {
		t.Errorf("expected global checksum 0x%04X to be valid", sum)
	}
	if got := ComputeGlobalChecksum(rom); got != sum {
		t.Errorf("expected checksum bytes to be skipped, got 0x%04X", got)
	}
}

func TestHeader_Hardware(t *testing.T) {
	tests := map[uint8]string{0x00: "DMG", 0x80: "CGB", 0xC0: "CGB"}
	for flag, want := range tests {
		rom := testROM("HW", ROM)
		rom[0x143] = flag
		c, err := NewCartridge(rom)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		h := c.Header()
		if got := h.Hardware(); got != want {
			t.Errorf("0x%02X: expected %s, got %s", flag, want, got)
		}
	}
}
