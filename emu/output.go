package emu

import (
	"math"

	"nescore/emu/log"
	"nescore/hw"
)

// An Output presents the frames produced by the emulator.
type Output interface {
	// BeginFrame returns the frame the next emulated frame is rendered into.
	BeginFrame() *hw.Frame
	// EndFrame is called once frame has been entirely rendered.
	EndFrame(frame *hw.Frame)
	// Poll reports whether the emulation loop should continue.
	Poll() bool
	Close() error
}

type HeadlessConfig struct {
	// MaxFrames is the number of frames after which Poll returns false. 0
	// means no limit.
	MaxFrames int64

	// ScreenshotPath, if set, is where the last frame is saved as a PNG
	// image, on Close.
	ScreenshotPath string
}

// HeadlessOutput is an Output without display.
type HeadlessOutput struct {
	frame   *hw.Frame
	nframes int64
	cfg     HeadlessConfig
}

func NewHeadlessOutput(cfg HeadlessConfig) *HeadlessOutput {
	if cfg.MaxFrames == 0 {
		cfg.MaxFrames = math.MaxInt64
	}
	return &HeadlessOutput{
		frame: hw.NewFrame(),
		cfg:   cfg,
	}
}

func (ho *HeadlessOutput) BeginFrame() *hw.Frame { return ho.frame }

func (ho *HeadlessOutput) EndFrame(*hw.Frame) { ho.nframes++ }

func (ho *HeadlessOutput) Poll() bool { return ho.nframes < ho.cfg.MaxFrames }

// Frames returns the number of frames presented so far.
func (ho *HeadlessOutput) Frames() int64 { return ho.nframes }

// Frame returns the last rendered frame.
func (ho *HeadlessOutput) Frame() *hw.Frame { return ho.frame }

func (ho *HeadlessOutput) Close() error {
	if ho.cfg.ScreenshotPath == "" {
		return nil
	}
	if err := ho.frame.SaveAsPNG(ho.cfg.ScreenshotPath); err != nil {
		return err
	}
	log.ModEmu.InfoZ("screenshot saved").String("path", ho.cfg.ScreenshotPath).End()
	return nil
}
