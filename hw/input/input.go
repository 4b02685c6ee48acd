package input

import (
	"sync/atomic"

	"nescore/emu/log"
)

// A PaddleButton identifies a button of a standard NES controller/paddle.
// Its value is the bit position in the controller state byte.
type PaddleButton byte

const (
	PadA PaddleButton = iota
	PadB
	PadSelect
	PadStart
	PadUp
	PadDown
	PadLeft
	PadRight

	PadButtonCount
)

func (pd PaddleButton) String() string {
	var buttonNames = [PadButtonCount]string{
		"A", "B",
		"Select", "Start",
		"Up", "Down", "Left", "Right",
	}
	return buttonNames[pd]
}

// PaddlePreset holds the mapping configuration of a paddle.
type PaddlePreset struct {
	Buttons [PadButtonCount]Code `toml:"buttons"`
}

const numPresets = 8

type Config struct {
	Paddle  PaddleConfig             `toml:"paddle"`
	Presets [numPresets]PaddlePreset `toml:"presets"`
}

type PaddleConfig struct {
	Plugged      bool          `toml:"plugged"`
	PaddlePreset uint          `toml:"preset"`
	Preset       *PaddlePreset `toml:"-"` // points to the current preset
}

// DefaultConfig returns a configuration with a plugged paddle, using the
// arrow keys for the D-pad.
func DefaultConfig() Config {
	var cfg Config
	cfg.Paddle.Plugged = true
	cfg.Presets[0] = PaddlePreset{
		Buttons: [PadButtonCount]Code{
			PadA:      {Key: "X"},
			PadB:      {Key: "Z"},
			PadSelect: {Key: "RShift"},
			PadStart:  {Key: "Return"},
			PadUp:     {Key: "Up"},
			PadDown:   {Key: "Down"},
			PadLeft:   {Key: "Left"},
			PadRight:  {Key: "Right"},
		},
	}
	cfg.Init()
	return cfg
}

func (cfg *Config) Init() {
	if cfg.Paddle.PaddlePreset >= numPresets {
		log.ModInput.WarnZ("invalid paddle preset, using preset 0").
			Int("preset", int(cfg.Paddle.PaddlePreset)).
			End()
		cfg.Paddle.PaddlePreset = 0
	}
	cfg.Paddle.Preset = &cfg.Presets[cfg.Paddle.PaddlePreset]
}

// A Provider turns host key events into the state of a standard NES
// controller. Key events and state loads can happen on different goroutines.
type Provider struct {
	buttons map[string]PaddleButton // key name -> button
	state   atomic.Uint32
	plugged bool
}

func NewProvider(cfg Config) *Provider {
	cfg.Init()
	p := &Provider{
		buttons: make(map[string]PaddleButton),
		plugged: cfg.Paddle.Plugged,
	}
	for btn, code := range cfg.Paddle.Preset.Buttons {
		if code.Key == "" {
			continue
		}
		p.buttons[code.Key] = PaddleButton(btn)
	}
	return p
}

// KeyDown signals the key with the given name has been pressed. Unmapped keys
// are ignored.
func (p *Provider) KeyDown(key string) {
	btn, ok := p.buttons[key]
	if !ok {
		return
	}
	p.state.Or(1 << btn)
	log.ModInput.DebugZ("button pressed").Stringer("btn", btn).End()
}

// KeyUp signals the key with the given name has been released.
func (p *Provider) KeyUp(key string) {
	btn, ok := p.buttons[key]
	if !ok {
		return
	}
	p.state.And(^uint32(1 << btn))
	log.ModInput.DebugZ("button released").Stringer("btn", btn).End()
}

// SetState overwrites the whole controller state.
func (p *Provider) SetState(state uint8) {
	p.state.Store(uint32(state))
}

// LoadState captures the current controller state: bit0=A, 1=B, 2=Select,
// 3=Start, 4=Up, 5=Down, 6=Left, 7=Right.
func (p *Provider) LoadState() uint8 {
	if !p.plugged {
		return 0
	}
	return uint8(p.state.Load())
}
