// Package emu runs the emulated hardware in a host loop.
package emu

import (
	"sync/atomic"
	"time"

	"github.com/go-faster/errors"

	"nescore/emu/log"
	"nescore/hw"
	"nescore/hw/input"
	"nescore/hw/mappers"
	"nescore/ines"
)

type Emulator struct {
	NES   *hw.NES
	Rom   *ines.Rom
	Input *input.Provider

	out    Output
	frames int64 // emulated frames since launch

	// These are accessed concurrently by the emulator loop and the UI.
	quit   atomic.Bool
	paused atomic.Bool
	reset  atomic.Bool
}

// Launch inserts the cartridge, powers up the hardware and plugs the
// controller. It doesn't start the emulation loop, call Run() for that.
func Launch(rom *ines.Rom, cfg Config, out Output) (*Emulator, error) {
	cart, err := mappers.Load(rom)
	if err != nil {
		return nil, errors.Wrap(err, "power up failed")
	}
	log.ModEmu.InfoZ("cartridge loaded").
		String("mapper", cart.Name()).
		Stringer("mirroring", cart.Mirroring()).
		End()

	nes := hw.NewNES(cart, cfg.Emulation.nesConfig())

	inprov := input.NewProvider(cfg.Input)
	nes.PlugInput(inprov)

	// CPU execution trace setup.
	if cfg.TraceOut != nil {
		nes.SetTraceOutput(cfg.TraceOut)
	}

	return &Emulator{
		NES:   nes,
		Rom:   rom,
		Input: inprov,
		out:   out,
	}, nil
}

// RunOneFrame emulates one frame and presents it to the output.
func (e *Emulator) RunOneFrame() error {
	frame := e.out.BeginFrame()
	e.NES.SetScreen(frame)
	err := e.NES.RunFrame()
	e.out.EndFrame(frame)
	e.frames++
	return err
}

// AddLogContext adds the current frame to the entries logged while the
// emulation loop runs.
func (e *Emulator) AddLogContext(z *log.EntryZ) {
	z.Int64("frame", e.frames)
}

func (e *Emulator) loop() error {
	for e.out.Poll() {
		// Handle pause.
		if e.isPaused() {
			// Don't burn cpu while paused.
			time.Sleep(100 * time.Millisecond)
		} else if err := e.RunOneFrame(); err != nil {
			return errors.Wrap(err, "emulation halted")
		}
		if e.shouldStop() {
			break
		}
		e.handleReset()
	}
	return nil
}

// Run runs the emulation loop until the output stops polling, Stop is called
// or an execution error occurs.
func (e *Emulator) Run() error {
	log.AddContext(e)
	defer log.RemoveContext(e)

	err := e.loop()
	if err != nil {
		log.ModEmu.ErrorZ("emulation loop error").
			Error("err", err).
			Hex16("PC", e.NES.CPU.PC).
			End()
	} else {
		log.ModEmu.InfoZ("emulation loop exited").End()
	}

	if cerr := e.out.Close(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "close output")
	}
	return err
}

// SetPause, Stop and Reset allows to control
// the emulator loop in a concurrent-safe way.

func (e *Emulator) SetPause(pause bool) { e.paused.Store(pause) }
func (e *Emulator) Reset()              { e.reset.Store(true) }
func (e *Emulator) Stop()               { e.quit.Store(true) }

func (e *Emulator) isPaused() bool {
	return e.paused.Load()
}

func (e *Emulator) shouldStop() bool {
	return e.quit.Load()
}

func (e *Emulator) handleReset() {
	if e.reset.CompareAndSwap(true, false) {
		log.ModEmu.InfoZ("performing reset").End()
		e.NES.Reset()
	}
}
