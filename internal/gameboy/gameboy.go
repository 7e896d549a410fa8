// Package gameboy provides an emulation of the Nintendo Game Boy CPU,
// address bus and timer, tied together by a single cycle clock.
package gameboy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/thelolagemann/goboy/internal/boot"
	"github.com/thelolagemann/goboy/internal/cartridge"
	"github.com/thelolagemann/goboy/internal/cheats"
	"github.com/thelolagemann/goboy/internal/cpu"
	"github.com/thelolagemann/goboy/internal/interrupts"
	"github.com/thelolagemann/goboy/internal/mmu"
	"github.com/thelolagemann/goboy/internal/scheduler"
	"github.com/thelolagemann/goboy/internal/serial"
	"github.com/thelolagemann/goboy/internal/timer"
	"github.com/thelolagemann/goboy/internal/types/registers"
	"github.com/thelolagemann/goboy/pkg/emu"
	"github.com/thelolagemann/goboy/pkg/log"
	"github.com/thelolagemann/goboy/pkg/utils"
)

const (
	// CyclesPerFrame is the number of cycle units in a single
	// frame of the DMG (70224 clocks).
	CyclesPerFrame = 70224 / 4
	// FrameTime is the real time a frame takes at normal speed.
	FrameTime = time.Second * CyclesPerFrame / cpu.ClockSpeed
)

var (
	// ErrMissingROM is returned when no ROM was given.
	ErrMissingROM = errors.New("missing ROM")
	// ErrLoadROM is returned when the ROM file could not be read.
	ErrLoadROM = errors.New("failed to load ROM")
	// ErrRunning is returned by Run when the GameBoy is already
	// running.
	ErrRunning = errors.New("already running")
)

// GameBoy owns every component of the emulated system. Each
// GameBoy is independent of any other.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	Cartridge  *cartridge.Cartridge
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller
	Scheduler  *scheduler.Scheduler

	log.Logger

	running atomic.Bool
	stopped atomic.Bool
	paused  atomic.Bool
	ticks   atomic.Uint64

	debug      bool
	speed      float64
	cycleLimit uint64
	tracer     func(cpu.Trace)
	coldBoot   bool
	bootROM    []byte
	serialOut  io.Writer
	cheats     []cheats.Cheat
	saveDir    string
}

// New returns a GameBoy with rom inserted, with the CPU in the state
// the boot ROM leaves it in, unless a boot ROM is given to run.
// Header problems are logged, not returned; only a ROM too short to
// hold a header, or a boot ROM of the wrong size, is rejected.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.debug {
		log.SetDebug(g.Logger, true)
	}

	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return nil, err
	}

	regs := registers.NewTable()
	sched := scheduler.NewScheduler()
	irq := interrupts.NewService(regs)
	timerCtl := timer.NewController(irq, regs)
	sched.AddTicker(timerCtl)
	serialCtl := serial.NewController(irq, regs, sched)
	if g.serialOut != nil {
		serialCtl.Attach(serial.NewWriter(g.serialOut))
	}
	memBus := mmu.NewMMU(cart, regs, g.Logger)

	g.CPU = cpu.New(memBus, sched, irq)
	g.MMU = memBus
	g.Cartridge = cart
	g.Interrupts = irq
	g.Timer = timerCtl
	g.Serial = serialCtl
	g.Scheduler = sched

	if g.coldBoot {
		g.CPU.ResetCold()
	}
	if g.bootROM != nil {
		b, err := boot.LoadBootROM(g.bootROM)
		if err != nil {
			return nil, err
		}
		memBus.MapBootROM(b)

		// the boot ROM starts from a cleared register file at 0x0000
		g.CPU.ResetCold()
		g.CPU.A = 0x00
		g.CPU.PC = 0x0000
		g.WithFields(log.Fields{
			"model":    b.Model(),
			"checksum": b.Checksum(),
		}).Infof("mapped boot rom")
	}
	if g.tracer != nil {
		g.CPU.SetObserver(g.tracer)
	}

	if len(g.cheats) > 0 {
		if err := g.loadCheats(); err != nil {
			return nil, err
		}
	}

	g.logCartridge()

	if err := g.loadSave(); err != nil {
		return nil, err
	}

	return g, nil
}

// loadCheats patches the cartridge with the Game Genie codes, and
// writes the GameShark codes to RAM once every frame.
func (g *GameBoy) loadCheats() error {
	genie, shark := cheats.NewGameGenie(), cheats.NewGameShark()
	if err := cheats.Load(g.cheats, genie, shark); err != nil {
		return err
	}
	g.MMU.Patch(genie)

	if len(shark.Codes) > 0 {
		g.Scheduler.RegisterEvent(scheduler.CheatFrame, func() {
			if err := shark.Apply(g.MMU.Write); err != nil {
				g.Errorf("cheats: %v", err)
			}
			g.Scheduler.ScheduleEvent(scheduler.CheatFrame, CyclesPerFrame)
		})
		g.Scheduler.ScheduleEvent(scheduler.CheatFrame, CyclesPerFrame)
	}

	g.WithFields(log.Fields{
		"gamegenie": len(genie.Codes),
		"gameshark": len(shark.Codes),
	}).Infof("loaded %d cheats", len(g.cheats))
	return nil
}

func (g *GameBoy) logCartridge() {
	h := g.Cartridge.Header()
	g.WithFields(log.Fields{
		"title":       h.Title,
		"hardware":    h.Hardware(),
		"type":        h.TypeName(),
		"licensee":    h.LicenseeName(),
		"rom":         fmt.Sprintf("%dKiB", h.ROMSize()/1024),
		"size":        g.Cartridge.Size(),
		"checksum":    passFail(h.ChecksumValid()),
		"global":      passFail(g.Cartridge.GlobalChecksumValid()),
		"fingerprint": g.saveKey(),
	}).Infof("loaded cartridge")

	if err := h.Validate(); err != nil {
		g.Warnf("cartridge header: %v", err)
	}
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func (g *GameBoy) saveKey() string {
	return fmt.Sprintf("%016x", g.Cartridge.Fingerprint())
}

// loadSave restores the external RAM of a battery backed cartridge
// from its newest save file.
func (g *GameBoy) loadSave() error {
	if g.saveDir == "" || !g.Cartridge.Battery() {
		return nil
	}
	s, err := emu.Latest(g.saveDir, g.saveKey())
	if err != nil || s == nil {
		return err
	}

	g.Cartridge.LoadRAM(s.Bytes())
	g.Infof("loaded save %s", s.Path)
	return nil
}

// Save writes the external RAM of a battery backed cartridge to a
// new save file. It does nothing without a save directory.
func (g *GameBoy) Save() error {
	if g.saveDir == "" || !g.Cartridge.Battery() {
		return nil
	}
	s, err := emu.NewSave(g.saveDir, g.saveKey(), g.Cartridge.RAM(), time.Now())
	if err != nil {
		return err
	}

	g.Infof("saved %s", s.Path)
	return nil
}

// Step executes a single CPU instruction. The returned error is a
// *cpu.Fault.
func (g *GameBoy) Step() error {
	return g.CPU.Step()
}

// Cycles returns the number of cycle units elapsed since power on.
func (g *GameBoy) Cycles() uint64 {
	return g.Scheduler.Cycle()
}

// Ticks returns the number of steps taken by Run.
func (g *GameBoy) Ticks() uint64 {
	return g.ticks.Load()
}

// Run steps the CPU until Stop is called, ctx is done, the cycle
// limit is reached, or a step faults. While paused, Run polls every
// 10 milliseconds without stepping. With a speed set, Run sleeps at
// the end of every frame to keep to real time.
func (g *GameBoy) Run(ctx context.Context) error {
	if !g.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer func() {
		g.stopped.Store(false)
		g.running.Store(false)
	}()

	frameStart := time.Now()
	frameCycles := uint64(0)

	for !g.stopped.Load() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if g.paused.Load() {
			time.Sleep(10 * time.Millisecond)
			frameStart = time.Now()
			continue
		}

		if g.cycleLimit > 0 && g.Cycles() >= g.cycleLimit {
			g.Debugf("cycle limit %d reached", g.cycleLimit)
			return nil
		}

		before := g.Cycles()
		if err := g.Step(); err != nil {
			return err
		}
		g.ticks.Add(1)

		if g.speed <= 0 {
			continue
		}
		frameCycles += g.Cycles() - before
		if frameCycles >= CyclesPerFrame {
			frameCycles -= CyclesPerFrame
			target := time.Duration(float64(FrameTime) / g.speed)
			if elapsed := time.Since(frameStart); elapsed < target {
				time.Sleep(target - elapsed)
			}
			frameStart = time.Now()
		}
	}

	return nil
}

// Stop ends a running Run loop after its current step. A Stop
// that arrives before Run starts ends that Run before its first
// step.
func (g *GameBoy) Stop() {
	g.stopped.Store(true)
}

// Pause suspends stepping without changing any state.
func (g *GameBoy) Pause() {
	g.paused.Store(true)
}

// Resume continues a paused GameBoy.
func (g *GameBoy) Resume() {
	g.paused.Store(false)
}

// Paused returns true if the GameBoy is paused.
func (g *GameBoy) Paused() bool {
	return g.paused.Load()
}

// Running returns true while Run is stepping.
func (g *GameBoy) Running() bool {
	return g.running.Load()
}

// LoadROM reads the ROM image at path, decompressing it if
// necessary.
func LoadROM(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrMissingROM
	}
	rom, err := utils.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadROM, path, err)
	}
	return rom, nil
}
