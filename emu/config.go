package emu

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"

	"nescore/emu/log"
	"nescore/hw"
	"nescore/hw/input"
)

type Config struct {
	Emulation EmulationConfig `toml:"emulation"`
	Input     input.Config    `toml:"input"`

	TraceOut io.Writer `toml:"-"`
}

type EmulationConfig struct {
	// OAMDMAStall makes OAM DMA transfers suspend the CPU for 513 (or 514)
	// cycles. Disabled, transfers are instantaneous.
	OAMDMAStall bool `toml:"oam_dma_stall"`

	// Sprite0HitBypass sets the sprite 0 hit flag on any opaque sprite 0
	// pixel, whatever the background. Debugging only.
	Sprite0HitBypass bool `toml:"sprite0_hit_bypass"`
}

func (ecfg EmulationConfig) nesConfig() hw.NESConfig {
	return hw.NESConfig{
		OAMDMAStall:      ecfg.OAMDMAStall,
		Sprite0HitBypass: ecfg.Sprite0HitBypass,
	}
}

func DefaultConfig() Config {
	return Config{Input: input.DefaultConfig()}
}

const (
	cfgDirname  = "nescore"
	cfgFilename = "config.toml"
)

// DefaultConfigPath returns the path of the configuration file in the user
// configuration directory.
func DefaultConfigPath() (string, error) {
	cfgdir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "user config directory")
	}
	return filepath.Join(cfgdir, cfgDirname, cfgFilename), nil
}

// LoadConfig loads the configuration file at path. Settings missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "load config %s", path)
	}
	cfg.Input.Init()
	return cfg, nil
}

// LoadConfigOrDefault loads the configuration file at path, or the default
// configuration file if path is empty. The default configuration is returned
// if the file can't be loaded.
func LoadConfigOrDefault(path string) Config {
	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			log.ModEmu.WarnZ("using default config").Error("err", err).End()
			return DefaultConfig()
		}
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.ModEmu.WarnZ("invalid config, using default").Error("err", err).End()
		}
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig saves cfg at path, creating the directory if necessary.
func SaveConfig(cfg Config, path string) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "config directory")
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return errors.Wrap(err, "save config")
	}
	return nil
}
