package gameboy

import (
	"io"

	"github.com/thelolagemann/goboy/internal/cheats"
	"github.com/thelolagemann/goboy/internal/cpu"
	"github.com/thelolagemann/goboy/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug enables debug logging.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithTracer sets the function called after every executed
// instruction.
func WithTracer(fn func(cpu.Trace)) Opt {
	return func(gb *GameBoy) {
		gb.tracer = fn
	}
}

// Speed paces Run to the given multiple of real time. A speed of
// 0 runs as fast as possible.
func Speed(speed float64) Opt {
	return func(gb *GameBoy) {
		gb.speed = speed
	}
}

// WithCycleLimit stops Run once the given number of cycle units
// has elapsed.
func WithCycleLimit(cycles uint64) Opt {
	return func(gb *GameBoy) {
		gb.cycleLimit = cycles
	}
}

// WithBootState selects the register state the CPU starts in. With
// true (the default) the CPU starts as the DMG boot ROM leaves it,
// otherwise A is 0x01, PC is 0x0100 and every other register is
// cleared.
func WithBootState(boot bool) Opt {
	return func(gb *GameBoy) {
		gb.coldBoot = !boot
	}
}

// WithBootROM sets the boot ROM for the emulator. The CPU starts
// executing it at 0x0000 with every register cleared, instead of
// starting at the cartridge entry point.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}

// WithSerialOutput writes every byte the program sends over the
// serial port, on its internal clock, to w.
func WithSerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}

// WithCheats applies the given cheats for the whole run.
func WithCheats(c ...cheats.Cheat) Opt {
	return func(gb *GameBoy) {
		gb.cheats = append(gb.cheats, c...)
	}
}

// WithSaveDir keeps the external RAM of battery backed cartridges
// in save files under dir.
func WithSaveDir(dir string) Opt {
	return func(gb *GameBoy) {
		gb.saveDir = dir
	}
}
