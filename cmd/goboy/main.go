package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/thelolagemann/goboy/internal/cheats"
	"github.com/thelolagemann/goboy/internal/gameboy"
	"github.com/thelolagemann/goboy/pkg/log"
)

// exit codes
const (
	exitOK = iota
	exitMissingROM
	exitLoadROM
	exitCPUStopped
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("goboy", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: goboy [flags] <rom>\n")
		flags.PrintDefaults()
	}

	romFile := flags.String("rom", "", "The rom file to load (or the first argument)")
	bootROM := flags.String("boot", "", "The boot rom file to load")
	debug := flags.Bool("debug", false, "Enable debug logging")
	trace := flags.Bool("trace", false, "Log every executed instruction (implies -debug)")
	speed := flags.Float64("speed", 0, "The speed to run the emulator at, 0 runs unpaced")
	cheatFile := flags.String("cheats", "", "A file of Game Genie and GameShark codes to apply")
	saveDir := flags.String("saves", "", "The folder to keep battery backed saves in")
	serialOut := flags.Bool("serial", false, "Print bytes sent over the serial port to stdout")
	cycles := flags.Uint64("cycles", 0, "Stop after this many cycles, 0 runs forever")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := log.NewWithWriter(stderr)

	path := *romFile
	if path == "" {
		path = flags.Arg(0)
	}
	rom, err := gameboy.LoadROM(path)
	switch {
	case errors.Is(err, gameboy.ErrMissingROM):
		logger.Errorf("%v", err)
		flags.Usage()
		return exitMissingROM
	case err != nil:
		logger.Errorf("%v", err)
		return exitLoadROM
	}

	opts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.Speed(*speed),
		gameboy.WithCycleLimit(*cycles),
	}
	if *saveDir != "" {
		opts = append(opts, gameboy.WithSaveDir(*saveDir))
	}
	if *serialOut {
		opts = append(opts, gameboy.WithSerialOutput(stdout))
	}
	if *bootROM != "" {
		boot, err := gameboy.LoadROM(*bootROM)
		if err != nil {
			logger.Errorf("%v", err)
			return exitLoadROM
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if *cheatFile != "" {
		c, err := loadCheats(*cheatFile)
		if err != nil {
			logger.Errorf("%s: %v", *cheatFile, err)
			return exitLoadROM
		}
		opts = append(opts, gameboy.WithCheats(c...))
	}
	if *debug || *trace {
		opts = append(opts, gameboy.Debug())
	}
	if *trace {
		opts = append(opts, gameboy.WithTracer(gameboy.NewTracer(logger)))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		logger.Errorf("%s: %v", path, err)
		return exitLoadROM
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := gb.Run(ctx)
	if err := gb.Save(); err != nil {
		logger.Errorf("saving: %v", err)
	}
	if runErr != nil {
		logger.WithFields(log.Fields{
			"cycles": gb.Cycles(),
			"ticks":  gb.Ticks(),
		}).Errorf("%v", runErr)
		return exitCPUStopped
	}

	logger.Infof("stopped after %d cycles", gb.Cycles())
	return exitOK
}

func loadCheats(path string) ([]cheats.Cheat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return cheats.Parse(f)
}
