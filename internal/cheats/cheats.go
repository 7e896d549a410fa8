// Package cheats provides Game Genie and GameShark cheat codes.
package cheats

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Cheat is a named group of codes.
type Cheat struct {
	Name  string
	Codes []string
}

// Parse reads a cheat file. The file format is as follows:
//
//	# Cheat Name
//	ABC-DEF-GHI
//	01FF34C1
//
// Cheat files may have any number of GameGenie and GameShark codes, and
// may be mixed together. Blank lines are ignored.
func Parse(r io.Reader) ([]Cheat, error) {
	scanner := bufio.NewScanner(r)

	var cheats []Cheat
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		switch {
		case text == "":
			continue
		case text[0] == '#':
			cheats = append(cheats, Cheat{Name: strings.TrimSpace(text[1:])})
			continue
		case len(cheats) == 0:
			return nil, fmt.Errorf("line %d: code %s before a cheat name", line, text)
		}

		if _, err := kindOf(text); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cheats[len(cheats)-1].Codes = append(cheats[len(cheats)-1].Codes, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cheats, nil
}

// Load loads the codes of every cheat into genie and shark.
func Load(cheats []Cheat, genie *GameGenie, shark *GameShark) error {
	for _, c := range cheats {
		for _, code := range c.Codes {
			genieCode, err := kindOf(code)
			if err != nil {
				return err
			}
			if genieCode {
				err = genie.Load(code, c.Name)
			} else {
				err = shark.Load(code, c.Name)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", c.Name, err)
			}
		}
	}
	return nil
}

// kindOf returns true for a Game Genie code, and false for a
// GameShark code.
func kindOf(code string) (bool, error) {
	switch len(code) {
	case 11:
		_, err := parseGameGenieCode(code)
		return true, err
	case 8:
		_, err := parseGameSharkCode(code)
		return false, err
	}
	return false, fmt.Errorf("invalid code: %s", code)
}
