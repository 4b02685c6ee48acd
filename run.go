package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"runtime/pprof"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"golang.org/x/sync/errgroup"

	"nescore/emu"
	"nescore/emu/log"
	"nescore/ines"
)

// runMain runs the emulator with the given rom, without display.
func runMain(args Run) error {
	rom, err := ines.Open(args.RomPath)
	if err != nil {
		return err
	}
	if rom.IsNES20() {
		log.ModEmu.WarnZ("NES 2.0 header, only iNES fields are used").String("rom", args.RomPath).End()
	}

	cfg := emu.LoadConfigOrDefault(args.Config)
	if args.Trace != nil {
		cfg.TraceOut = args.Trace
		defer args.Trace.Close()
	}

	out := emu.NewHeadlessOutput(emu.HeadlessConfig{
		MaxFrames:      args.Frames,
		ScreenshotPath: args.Screenshot,
	})
	emulator, err := emu.Launch(rom, cfg, out)
	if err != nil {
		return errors.Wrap(err, "failed to start emulator")
	}

	if args.CPUProfile != "" {
		f, err := os.Create(args.CPUProfile)
		if err != nil {
			return errors.Wrap(err, "failed to create cpu profile file")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return errors.Wrap(err, "failed to start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			f.Close()
			fmt.Println("CPU profile written to", args.CPUProfile)
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)
	go func() {
		if _, ok := <-sigc; ok {
			emulator.Stop()
		}
	}()

	return emulator.Run()
}

// romInfosMain prints the header infos of each rom, in the order they've been
// given. Roms are loaded concurrently.
func romInfosMain(w io.Writer, args RomInfos) error {
	roms := make([]*ines.Rom, len(args.RomPaths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range args.RomPaths {
		g.Go(func() error {
			rom, err := ines.Open(path)
			if err != nil {
				return err
			}
			roms[i] = rom
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if args.JSON {
		e := jx.GetEncoder()
		defer jx.PutEncoder(e)
		e.SetIdent(2)

		e.ArrStart()
		for _, rom := range roms {
			rom.EncodeJSON(e)
		}
		e.ArrEnd()
		if _, err := w.Write(e.Bytes()); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	for _, rom := range roms {
		rom.PrintInfos(w)
	}
	return nil
}

func printVersion(w io.Writer) {
	version := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	fmt.Fprintf(w, "nescore %s %s/%s\n", version, runtime.GOOS, runtime.GOARCH)
}
