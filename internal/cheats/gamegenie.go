package cheats

import (
	"fmt"
	"strconv"
	"strings"
)

// GameGenie patches values read from the cartridge ROM.
type GameGenie struct {
	Codes []GameGenieCode
}

// A GameGenieCode consists of nine-digit hex numbers, formatted as
// ABC-DEF-GHI. AB is the new data, FCDE is the memory address XORed
// by 0xF000, GI is the old data XORed by 0xBA and rotated left by 2,
// and H is unknown (possibly a checksum).
type GameGenieCode struct {
	NewData uint8
	Address uint16
	OldData uint8

	Name    string // name provided by the user
	Enabled bool
}

func parseGameGenieCode(code string) (GameGenieCode, error) {
	// assert correct length
	if len(code) != 11 || code[3] != '-' || code[7] != '-' {
		return GameGenieCode{}, fmt.Errorf("invalid game genie code: %q", code)
	}

	var c GameGenieCode

	// remove the hyphens, and interpret the code
	digits := strings.ReplaceAll(code, "-", "")

	hexCodeAB, err := strconv.ParseUint(digits[0:2], 16, 8)
	if err != nil {
		return c, fmt.Errorf("invalid game genie code %q: %w", code, err)
	}
	// reorganize CDEF to FCDE
	hexCodeFCDE, err := strconv.ParseUint(digits[5:6]+digits[2:5], 16, 16)
	if err != nil {
		return c, fmt.Errorf("invalid game genie code %q: %w", code, err)
	}
	hexCodeGI, err := strconv.ParseUint(digits[6:7]+digits[8:9], 16, 8)
	if err != nil {
		return c, fmt.Errorf("invalid game genie code %q: %w", code, err)
	}

	c.NewData = uint8(hexCodeAB)
	c.Address = uint16(hexCodeFCDE) ^ 0xF000
	if c.Address > 0x7FFF {
		return c, fmt.Errorf("game genie address 0x%04X outside of ROM", c.Address)
	}

	// rotate right by 2, then XOR 0xBA
	gi := uint8(hexCodeGI)
	c.OldData = (gi>>2 | gi<<6) ^ 0xBA

	return c, nil
}

// NewGameGenie creates a new GameGenie.
func NewGameGenie() *GameGenie {
	return &GameGenie{}
}

// Load loads the given GameGenie code into the GameGenie, enabled.
func (g *GameGenie) Load(code, name string) error {
	c, err := parseGameGenieCode(code)
	if err != nil {
		return err
	}

	c.Name = name
	c.Enabled = true
	g.Codes = append(g.Codes, c)

	return nil
}

// Read returns the value the CPU sees at address, where the
// cartridge holds value. A code only applies when the cartridge
// holds its old data.
func (g *GameGenie) Read(address uint16, value uint8) uint8 {
	for _, c := range g.Codes {
		if c.Enabled && c.Address == address && c.OldData == value {
			return c.NewData
		}
	}

	return value
}
