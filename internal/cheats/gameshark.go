package cheats

import (
	"fmt"
	"strconv"
)

// GameShark writes fixed values to RAM once per frame.
type GameShark struct {
	Codes []GameSharkCode
}

// A GameSharkCode consists of eight-digit hex numbers, formatted
// as ABCDEFGH. Where AB represents the external RAM bank, CD is
// the new data, and GHEF is the memory address.
type GameSharkCode struct {
	ExternalRAMBank uint8
	Address         uint16
	NewData         uint8

	Name    string // name provided by the user
	Enabled bool
	rawCode string // raw code provided by the user
}

func parseGameSharkCode(code string) (GameSharkCode, error) {
	var c GameSharkCode

	// make sure the code is 8 characters long
	if len(code) != 8 {
		return c, fmt.Errorf("invalid gameshark code: %q", code)
	}

	hexCodeAB, err := strconv.ParseUint(code[0:2], 16, 8)
	if err != nil {
		return c, err
	}
	hexCodeCD, err := strconv.ParseUint(code[2:4], 16, 8)
	if err != nil {
		return c, err
	}
	// reorganize GHEF to EFGH
	hexCodeEFGH, err := strconv.ParseUint(code[6:8]+code[4:6], 16, 16)
	if err != nil {
		return c, err
	}

	c.ExternalRAMBank = uint8(hexCodeAB)
	c.NewData = uint8(hexCodeCD)
	c.Address = uint16(hexCodeEFGH)

	return c, nil
}

// NewGameShark creates a new GameShark.
func NewGameShark() *GameShark {
	return &GameShark{}
}

// Load loads a GameShark code, enabled.
func (g *GameShark) Load(code string, name string) error {
	c, err := parseGameSharkCode(code)
	if err != nil {
		return err
	}
	if c.Address < 0xA000 || (c.Address > 0xDFFF && c.Address < 0xFF80) {
		return fmt.Errorf("gameshark address 0x%04X outside of RAM", c.Address)
	}

	c.Name = name
	c.rawCode = code
	c.Enabled = true
	g.Codes = append(g.Codes, c)
	return nil
}

// Enable enables the GameShark codes with the given name.
func (g *GameShark) Enable(name string) error {
	return g.set(name, true)
}

// Disable disables the GameShark codes with the given name.
func (g *GameShark) Disable(name string) error {
	return g.set(name, false)
}

func (g *GameShark) set(name string, enabled bool) error {
	found := false
	for i := range g.Codes {
		if g.Codes[i].Name == name {
			g.Codes[i].Enabled = enabled
			found = true
		}
	}
	if !found {
		return fmt.Errorf("code not found: %s", name)
	}
	return nil
}

// Apply writes every enabled code through write, stopping at the
// first error.
func (g *GameShark) Apply(write func(address uint16, value uint8) error) error {
	for _, c := range g.Codes {
		if !c.Enabled {
			continue
		}
		if err := write(c.Address, c.NewData); err != nil {
			return fmt.Errorf("gameshark %s: %w", c.rawCode, err)
		}
	}
	return nil
}
