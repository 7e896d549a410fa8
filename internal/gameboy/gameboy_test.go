package gameboy

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/thelolagemann/goboy/internal/boot"
	"github.com/thelolagemann/goboy/internal/cartridge"
	"github.com/thelolagemann/goboy/internal/cheats"
	"github.com/thelolagemann/goboy/internal/cpu"
	"github.com/thelolagemann/goboy/internal/interrupts"
	"github.com/thelolagemann/goboy/internal/mmu"
	"github.com/thelolagemann/goboy/internal/timer"
	"github.com/thelolagemann/goboy/pkg/log"
)

// testROM returns a ROM image with a valid header whose entry point
// jumps to program, placed at 0x0150.
func testROM(program ...uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], []byte{0x00, 0xC3, 0x50, 0x01})
	copy(rom[0x134:], "GBTEST")
	rom[0x14B] = 0x01
	rom[0x14D] = cartridge.ComputeHeaderChecksum(rom)
	copy(rom[0x150:], program)
	return rom
}

// loop is a program that jumps to itself forever.
var loop = []uint8{0x18, 0xFE}

func newGameBoy(t *testing.T, rom []byte, opts ...Opt) *GameBoy {
	t.Helper()
	g, err := New(rom, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestNew(t *testing.T) {
	t.Run("logs cartridge", func(t *testing.T) {
		var buf bytes.Buffer
		newGameBoy(t, testROM(loop...), WithLogger(log.NewWithWriter(&buf)))

		for _, want := range []string{"title=GBTEST", "hardware=DMG", "type=ROM ONLY", "checksum=PASS", "global=FAIL", "size=32768", "fingerprint="} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("expected log to contain %q, got %q", want, buf.String())
			}
		}
	})
	t.Run("global checksum", func(t *testing.T) {
		var buf bytes.Buffer
		rom := testROM(loop...)
		sum := cartridge.ComputeGlobalChecksum(rom)
		rom[0x14E], rom[0x14F] = uint8(sum>>8), uint8(sum)
		newGameBoy(t, rom, WithLogger(log.NewWithWriter(&buf)))

		if !strings.Contains(buf.String(), "global=PASS") {
			t.Errorf("expected global checksum to pass, got %q", buf.String())
		}
	})
	t.Run("bad checksum", func(t *testing.T) {
		var buf bytes.Buffer
		rom := testROM(loop...)
		rom[0x14D]++
		newGameBoy(t, rom, WithLogger(log.NewWithWriter(&buf)))

		if !strings.Contains(buf.String(), "checksum=FAIL") || !strings.Contains(buf.String(), "level=warning") {
			t.Errorf("expected failed checksum to be reported, got %q", buf.String())
		}
	})
	t.Run("too short", func(t *testing.T) {
		if _, err := New(make([]byte, 0x100)); !errors.Is(err, cartridge.ErrHeaderTooShort) {
			t.Errorf("expected ErrHeaderTooShort, got %v", err)
		}
	})
	t.Run("cold boot", func(t *testing.T) {
		g := newGameBoy(t, testROM(loop...), WithBootState(false))
		if s := g.CPU.Snapshot(); s.A != 0x01 || s.F != 0 || s.B != 0 || s.SP != 0 || s.PC != 0x0100 {
			t.Errorf("unexpected cold boot registers: %+v", s)
		}
	})
}

func TestGameBoy_Step(t *testing.T) {
	// LD A,5 ; LD B,3 ; ADD A,B ; LD (0xC000),A
	g := newGameBoy(t, testROM(0x3E, 0x05, 0x06, 0x03, 0x80, 0xEA, 0x00, 0xC0))

	for i := 0; i < 6; i++ {
		if err := g.Step(); err != nil {
			t.Fatalf("unexpected fault: %v", err)
		}
	}

	if v, err := g.MMU.Read(0xC000); err != nil || v != 0x08 {
		t.Errorf("expected 0x08 at 0xC000, got 0x%02X (%v)", v, err)
	}
	if g.Cycles() != 14 {
		t.Errorf("expected 14 cycles, got %d", g.Cycles())
	}
	if g.Timer.Divider() != timer.InitialDivider+14 {
		t.Errorf("expected divider 0x%04X, got 0x%04X", timer.InitialDivider+14, g.Timer.Divider())
	}
}

func TestGameBoy_Faults(t *testing.T) {
	t.Run("unknown instruction", func(t *testing.T) {
		g := newGameBoy(t, testROM(0xD3))
		err := g.Run(context.Background())

		var fault *cpu.Fault
		if !errors.As(err, &fault) {
			t.Fatalf("expected *cpu.Fault, got %v", err)
		}
		if fault.PC != 0x0150 || fault.Opcode != 0xD3 {
			t.Errorf("expected fault at 0x0150 with opcode 0xD3, got %v", fault)
		}
		if !errors.Is(err, cpu.ErrUnknownInstruction) {
			t.Errorf("expected ErrUnknownInstruction, got %v", err)
		}
	})
	t.Run("unsupported access", func(t *testing.T) {
		// LD A,(0x8000)
		g := newGameBoy(t, testROM(0xFA, 0x00, 0x80))
		if err := g.Run(context.Background()); !errors.Is(err, mmu.ErrUnsupportedAccess) {
			t.Errorf("expected ErrUnsupportedAccess, got %v", err)
		}
	})
	t.Run("stop", func(t *testing.T) {
		g := newGameBoy(t, testROM(0x10, 0x00))
		if err := g.Run(context.Background()); !errors.Is(err, cpu.ErrNotImplemented) {
			t.Errorf("expected ErrNotImplemented, got %v", err)
		}
	})
}

func TestGameBoy_Run(t *testing.T) {
	t.Run("cycle limit", func(t *testing.T) {
		g := newGameBoy(t, testROM(loop...), WithCycleLimit(1000))
		if err := g.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Cycles() < 1000 || g.Cycles() > 1003 {
			t.Errorf("expected to stop just after 1000 cycles, got %d", g.Cycles())
		}
		if g.Running() {
			t.Error("expected Run to have finished")
		}
	})
	t.Run("context", func(t *testing.T) {
		g := newGameBoy(t, testROM(loop...))
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		if err := g.Run(ctx); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if g.Ticks() == 0 {
			t.Error("expected steps to have been taken")
		}
	})
	t.Run("stop", func(t *testing.T) {
		g := newGameBoy(t, testROM(loop...))
		done := make(chan error, 1)
		go func() {
			done <- g.Run(context.Background())
		}()

		waitFor(t, g.Running)
		g.Stop()

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("expected Run to return after Stop")
		}
	})
	t.Run("stop before run", func(t *testing.T) {
		g := newGameBoy(t, testROM(loop...), WithCycleLimit(100))
		g.Stop()

		done := make(chan error, 1)
		go func() {
			done <- g.Run(context.Background())
		}()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("expected Run to honour an earlier Stop")
		}
		if g.Ticks() != 0 {
			t.Errorf("expected no steps, got %d", g.Ticks())
		}

		// the stop is consumed, so the next Run steps again
		if err := g.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Cycles() < 100 {
			t.Errorf("expected to run to the cycle limit, got %d", g.Cycles())
		}
	})
	t.Run("pause", func(t *testing.T) {
		g := newGameBoy(t, testROM(loop...))
		done := make(chan error, 1)
		go func() {
			done <- g.Run(context.Background())
		}()
		defer func() {
			g.Stop()
			<-done
		}()

		waitFor(t, g.Running)
		g.Pause()
		time.Sleep(30 * time.Millisecond)
		paused := g.Ticks()
		time.Sleep(30 * time.Millisecond)
		if g.Ticks() != paused {
			t.Errorf("expected no steps while paused, got %d", g.Ticks()-paused)
		}

		g.Resume()
		waitFor(t, func() bool { return g.Ticks() > paused })
	})
	t.Run("already running", func(t *testing.T) {
		g := newGameBoy(t, testROM(loop...))
		done := make(chan error, 1)
		go func() {
			done <- g.Run(context.Background())
		}()

		waitFor(t, g.Running)
		if err := g.Run(context.Background()); !errors.Is(err, ErrRunning) {
			t.Errorf("expected ErrRunning, got %v", err)
		}
		g.Stop()
		<-done
	})
	t.Run("speed", func(t *testing.T) {
		g := newGameBoy(t, testROM(loop...), Speed(1), WithCycleLimit(3*CyclesPerFrame))
		start := time.Now()
		if err := g.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if elapsed := time.Since(start); elapsed < 2*FrameTime {
			t.Errorf("expected at least %v for 3 frames, took %v", 2*FrameTime, elapsed)
		}
	})
}

func TestGameBoy_Timer(t *testing.T) {
	// LD A,0x05 ; LDH (0x07),A ; JR -2
	g := newGameBoy(t, testROM(0x3E, 0x05, 0xE0, 0x07, 0x18, 0xFE), WithCycleLimit(6000))
	if g.Interrupts.Flag&interrupts.TimerFlag != 0 {
		t.Fatal("expected no timer interrupt at power on")
	}

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Interrupts.Flag&interrupts.TimerFlag == 0 {
		t.Error("expected timer overflow to request an interrupt")
	}
	if v, _ := g.MMU.Read(0xFF07); v != 0xFD {
		t.Errorf("expected TAC 0xFD, got 0x%02X", v)
	}
}

func TestTrace(t *testing.T) {
	var traces []cpu.Trace
	g := newGameBoy(t, testROM(0x3E, 0x05), WithTracer(func(tr cpu.Trace) {
		traces = append(traces, tr)
	}))

	for i := 0; i < 3; i++ {
		if err := g.Step(); err != nil {
			t.Fatalf("unexpected fault: %v", err)
		}
	}

	if len(traces) != 3 {
		t.Fatalf("expected 3 traces, got %d", len(traces))
	}
	if traces[1].PC != 0x0101 || traces[1].Instruction.Kind != cpu.KindJP || traces[1].Cycles != 4 {
		t.Errorf("unexpected trace for JP: %+v", traces[1])
	}

	want := "0150  LD A,d8      (3E 05 00)  A:05 B:00 C:13 D:00 H:01 L:4D  Z-HC"
	if got := FormatTrace(traces[2]); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	t.Run("logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := log.NewWithWriter(&buf)
		log.SetDebug(l, true)
		NewTracer(l)(traces[2])

		if !strings.Contains(buf.String(), "LD A,d8") {
			t.Errorf("expected trace to be logged, got %q", buf.String())
		}
	})
}

func TestLoadROM(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		if _, err := LoadROM(""); !errors.Is(err, ErrMissingROM) {
			t.Errorf("expected ErrMissingROM, got %v", err)
		}
	})
	t.Run("unreadable", func(t *testing.T) {
		_, err := LoadROM(filepath.Join(t.TempDir(), "missing.gb"))
		if !errors.Is(err, ErrLoadROM) || !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected ErrLoadROM wrapping os.ErrNotExist, got %v", err)
		}
	})
	t.Run("compressed", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		rom := testROM(loop...)
		if _, err := w.Write(rom); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}

		path := filepath.Join(t.TempDir(), "test.gb.gz")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := LoadROM(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(got, rom) {
			t.Error("expected decompressed ROM to match")
		}
	})
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for condition")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestGameBoy_BootROM(t *testing.T) {
	// LD A,0x01 ; LDH (0x50),A
	b := make([]byte, boot.Size)
	copy(b, []byte{0x3E, 0x01, 0xE0, 0x50})

	var buf bytes.Buffer
	g := newGameBoy(t, testROM(loop...), WithBootROM(b), WithLogger(log.NewWithWriter(&buf)))
	if g.CPU.PC != 0x0000 || g.CPU.SP != 0 {
		t.Errorf("expected to start at 0x0000 with SP cleared, got PC 0x%04X SP 0x%04X", g.CPU.PC, g.CPU.SP)
	}
	if !strings.Contains(buf.String(), "model=unknown") {
		t.Errorf("expected boot rom to be logged, got %q", buf.String())
	}

	for i := 0; i < 2; i++ {
		if err := g.Step(); err != nil {
			t.Fatalf("unexpected fault: %v", err)
		}
	}
	if g.MMU.BootROMMapped() {
		t.Error("expected boot ROM to be unmapped after writing BDIS")
	}
	if v, _ := g.MMU.Read(0x0000); v != 0x00 {
		t.Errorf("expected cartridge at 0x0000, got 0x%02X", v)
	}

	t.Run("invalid size", func(t *testing.T) {
		if _, err := New(testROM(loop...), WithBootROM(make([]byte, 10))); err == nil {
			t.Error("expected error for invalid boot ROM")
		}
	})
}

func TestGameBoy_Serial(t *testing.T) {
	// LD A,'H' ; LDH (0x01),A ; LD A,0x81 ; LDH (0x02),A ; JR -2
	var out bytes.Buffer
	g := newGameBoy(t, testROM(0x3E, 'H', 0xE0, 0x01, 0x3E, 0x81, 0xE0, 0x02, 0x18, 0xFE),
		WithSerialOutput(&out), WithCycleLimit(2000))

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.String() != "H" {
		t.Errorf("expected serial output %q, got %q", "H", out.String())
	}
	if g.Interrupts.Flag&interrupts.SerialFlag == 0 {
		t.Error("expected serial interrupt after transfer")
	}
}

func TestGameBoy_Cheats(t *testing.T) {
	// LD A,(0x0200) ; LD (0xC001),A ; JR -2
	rom := testROM(0xFA, 0x00, 0x02, 0xEA, 0x01, 0xC0, 0x18, 0xFE)
	rom[0x0200] = 0xC8

	c := cheats.Cheat{Name: "test", Codes: []string{
		"422-00F-C49", // 0x42 at 0x0200 when it holds 0xC8
		"0199FFC0",    // 0x99 at 0xC0FF every frame
	}}
	g := newGameBoy(t, rom, WithCheats(c), WithCycleLimit(CyclesPerFrame+10))

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, _ := g.MMU.Read(0xC001); v != 0x42 {
		t.Errorf("expected patched ROM value 0x42, got 0x%02X", v)
	}
	if v, _ := g.MMU.Read(0xC0FF); v != 0x99 {
		t.Errorf("expected GameShark value 0x99, got 0x%02X", v)
	}

	t.Run("invalid", func(t *testing.T) {
		bad := cheats.Cheat{Name: "bad", Codes: []string{"nonsense"}}
		if _, err := New(rom, WithCheats(bad)); err == nil {
			t.Error("expected error loading invalid cheat")
		}
	})
}

func TestGameBoy_Save(t *testing.T) {
	// LD A,0x77 ; LD (0xA000),A ; JR -2
	rom := testROM(0x3E, 0x77, 0xEA, 0x00, 0xA0, 0x18, 0xFE)
	rom[0x147] = uint8(cartridge.ROMRAMBATT)
	rom[0x149] = 0x02
	rom[0x14D] = cartridge.ComputeHeaderChecksum(rom)
	dir := t.TempDir()

	g := newGameBoy(t, rom, WithSaveDir(dir), WithCycleLimit(100))
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a fresh GameBoy starts from the save, before running anything
	g = newGameBoy(t, rom, WithSaveDir(dir))
	if v, _ := g.MMU.Read(0xA000); v != 0x77 {
		t.Errorf("expected saved 0x77 at 0xA000, got 0x%02X", v)
	}

	t.Run("no battery", func(t *testing.T) {
		dir := t.TempDir()
		g := newGameBoy(t, testROM(loop...), WithSaveDir(dir))
		if err := g.Save(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entries, _ := os.ReadDir(dir); len(entries) != 0 {
			t.Errorf("expected no save for a cartridge without a battery, got %d entries", len(entries))
		}
	})
}
