package registers

import (
	"testing"

	"github.com/thelolagemann/goboy/internal/types"
)

func TestTable(t *testing.T) {
	table := NewTable()
	var tma uint8

	table.RegisterHardware(types.TMA, func(v uint8) {
		tma = v
	}, func() uint8 {
		return tma
	})
	table.RegisterHardware(types.TAC, NoWrite, func() uint8 {
		return 0x05
	}, Mask(0xF8))

	t.Run("registered", func(t *testing.T) {
		if !table.Write(types.TMA, 0x42) {
			t.Fatal("expected write to TMA to be served")
		}
		if v, ok := table.Read(types.TMA); !ok || v != 0x42 {
			t.Errorf("expected 0x42, got 0x%02X (served: %v)", v, ok)
		}
	})
	t.Run("masked", func(t *testing.T) {
		if v, _ := table.Read(types.TAC); v != 0xFD {
			t.Errorf("expected 0xFD, got 0x%02X", v)
		}
	})
	t.Run("unregistered", func(t *testing.T) {
		if table.Has(0xFF40) {
			t.Error("expected 0xFF40 to be unregistered")
		}
		if _, ok := table.Read(0xFF40); ok {
			t.Error("expected read of 0xFF40 to be unserved")
		}
		if table.Write(0xFF40, 0x91) {
			t.Error("expected write of 0xFF40 to be unserved")
		}
	})
	t.Run("aliased index", func(t *testing.T) {
		// 0xFF86 shares an index with TMA but is not TMA
		if table.Has(0xFF86) {
			t.Error("expected 0xFF86 to be unregistered")
		}
	})
}
