package cheats

import (
	"errors"
	"strings"
	"testing"
)

func TestGameGenie(t *testing.T) {
	g := NewGameGenie()
	if err := g.Load("00A-17B-C49", "infinite lives"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := g.Codes[0]
	if c.NewData != 0x00 || c.Address != 0x4A17 || c.OldData != 0xC8 {
		t.Errorf("unexpected decode: new 0x%02X address 0x%04X old 0x%02X", c.NewData, c.Address, c.OldData)
	}
	if want := (GameGenieCode{Address: 0x4A17, OldData: 0xC8, Name: "infinite lives", Enabled: true}); c != want {
		t.Errorf("expected %+v, got %+v", want, c)
	}

	t.Run("patched", func(t *testing.T) {
		if v := g.Read(0x4A17, 0xC8); v != 0x00 {
			t.Errorf("expected 0x00, got 0x%02X", v)
		}
	})
	t.Run("old data mismatch", func(t *testing.T) {
		if v := g.Read(0x4A17, 0x12); v != 0x12 {
			t.Errorf("expected 0x12, got 0x%02X", v)
		}
	})
	t.Run("other address", func(t *testing.T) {
		if v := g.Read(0x4A18, 0xC8); v != 0xC8 {
			t.Errorf("expected 0xC8, got 0x%02X", v)
		}
	})
	t.Run("disabled", func(t *testing.T) {
		g.Codes[0].Enabled = false
		defer func() { g.Codes[0].Enabled = true }()
		if v := g.Read(0x4A17, 0xC8); v != 0xC8 {
			t.Errorf("expected 0xC8, got 0x%02X", v)
		}
	})
	t.Run("invalid hex names the code", func(t *testing.T) {
		err := g.Load("0GA-17B-C49", "bad")
		if err == nil || !strings.Contains(err.Error(), "0GA-17B-C49") {
			t.Errorf("expected error naming the code, got %v", err)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		for _, code := range []string{"00A17BC49", "00A-17B-C4", "0GA-17B-C49", "00A-170-C49"} {
			if err := g.Load(code, "bad"); err == nil {
				t.Errorf("expected error for %q", code)
			}
		}
	})
}

func TestGameShark(t *testing.T) {
	g := NewGameShark()
	if err := g.Load("01FF34C1", "max health"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := g.Codes[0]
	if c.ExternalRAMBank != 0x01 || c.NewData != 0xFF || c.Address != 0xC134 {
		t.Errorf("unexpected decode: bank 0x%02X new 0x%02X address 0x%04X", c.ExternalRAMBank, c.NewData, c.Address)
	}

	written := map[uint16]uint8{}
	write := func(address uint16, value uint8) error {
		written[address] = value
		return nil
	}

	if err := g.Apply(write); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written[0xC134] != 0xFF {
		t.Errorf("expected 0xFF written to 0xC134, got %v", written)
	}

	t.Run("disable", func(t *testing.T) {
		written = map[uint16]uint8{}
		if err := g.Disable("max health"); err != nil {
			t.Fatal(err)
		}
		if err := g.Apply(write); err != nil {
			t.Fatal(err)
		}
		if len(written) != 0 {
			t.Errorf("expected no writes, got %v", written)
		}
		if err := g.Enable("max health"); err != nil {
			t.Fatal(err)
		}
		if err := g.Enable("missing"); err == nil {
			t.Error("expected error enabling unknown code")
		}
	})
	t.Run("write error", func(t *testing.T) {
		failed := errors.New("bus fault")
		err := g.Apply(func(uint16, uint8) error { return failed })
		if !errors.Is(err, failed) {
			t.Errorf("expected bus fault, got %v", err)
		}
	})
	t.Run("outside of RAM", func(t *testing.T) {
		// address 0x8000
		if err := g.Load("01FF0080", "vram"); err == nil {
			t.Error("expected error for address outside of RAM")
		}
	})
}

func TestParse(t *testing.T) {
	file := `# Infinite lives
00A-17B-C49

# Max health
01FF34C1
01FF35C1
`
	cheats, err := Parse(strings.NewReader(file))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cheats) != 2 || cheats[0].Name != "Infinite lives" || len(cheats[1].Codes) != 2 {
		t.Fatalf("unexpected cheats: %+v", cheats)
	}

	genie, shark := NewGameGenie(), NewGameShark()
	if err := Load(cheats, genie, shark); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(genie.Codes) != 1 || len(shark.Codes) != 2 {
		t.Errorf("expected 1 game genie and 2 gameshark codes, got %d and %d", len(genie.Codes), len(shark.Codes))
	}

	t.Run("errors", func(t *testing.T) {
		for _, file := range []string{"00A-17B-C49\n", "# name\nnot a code\n"} {
			if _, err := Parse(strings.NewReader(file)); err == nil {
				t.Errorf("expected error parsing %q", file)
			}
		}
	})
}
