package input

import (
	"bytes"
	"sync"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
)

func TestCodeMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		code *Code // nil for unmarshal errors
	}{
		{"", &Code{}},
		{"key W", &Code{Key: "W"}},
		{"key Up", &Code{Key: "Up"}},
		{"key Return", &Code{Key: "Return"}},
		{"key 7", &Code{Key: "7"}},

		// unmarshal errors
		{"key   ", nil},
		{"key Foo", nil},
		{"key w", nil},
		{"foocode Return", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var code Code
			if err := code.UnmarshalText([]byte(tt.text)); err != nil {
				if tt.code != nil {
					t.Fatalf("UnmarshalText(%q) error: %v", tt.text, err)
				}
				t.Log("UnmarshalText error:", err)
				return
			}
			if tt.code == nil {
				t.Fatalf("UnmarshalText(%q) should have failed", tt.text)
			}

			if diff := cmp.Diff(*tt.code, code); diff != "" {
				t.Fatalf("UnmarshalText(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}

			text, err := code.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			if text == nil {
				// toml encoders reject a nil text without error.
				t.Fatalf("MarshalText() returned nil text")
			}
			if diff := cmp.Diff(tt.text, string(text)); diff != "" {
				t.Fatalf("MarshalText() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProvider(t *testing.T) {
	p := NewProvider(DefaultConfig())

	p.KeyDown("X")
	p.KeyDown("Return")
	p.KeyDown("Left")
	p.KeyDown("Q") // unmapped
	if got, want := p.LoadState(), uint8(1<<PadA|1<<PadStart|1<<PadLeft); got != want {
		t.Errorf("LoadState() = %08b, want %08b", got, want)
	}

	p.KeyUp("Return")
	if got, want := p.LoadState(), uint8(1<<PadA|1<<PadLeft); got != want {
		t.Errorf("LoadState() = %08b, want %08b", got, want)
	}
}

func TestProviderUnplugged(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paddle.Plugged = false
	p := NewProvider(cfg)

	p.KeyDown("X")
	if got := p.LoadState(); got != 0 {
		t.Errorf("LoadState() = %08b, want 0", got)
	}
}

func TestProviderConcurrentKeys(t *testing.T) {
	p := NewProvider(DefaultConfig())
	keys := []string{"X", "Z", "RShift", "Return", "Up", "Down", "Left", "Right"}

	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.KeyDown(key)
		}()
	}
	wg.Wait()

	if got := p.LoadState(); got != 0xFF {
		t.Errorf("LoadState() = %08b, want 11111111", got)
	}
}

func TestConfigTOML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paddle.PaddlePreset = 1
	cfg.Presets[1].Buttons[PadA] = Code{Key: "K"}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		t.Fatal(err)
	}

	var got Config
	if _, err := toml.Decode(buf.String(), &got); err != nil {
		t.Fatalf("decode error: %v\n%s", err, buf.String())
	}
	got.Init()

	if got.Paddle.Preset.Buttons[PadA].Key != "K" {
		t.Errorf("preset 1 button A = %q, want %q", got.Paddle.Preset.Buttons[PadA].Key, "K")
	}
	if diff := cmp.Diff(cfg.Presets, got.Presets); diff != "" {
		t.Errorf("presets mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigInvalidPreset(t *testing.T) {
	cfg := Config{Paddle: PaddleConfig{PaddlePreset: 42}}
	cfg.Init()
	if cfg.Paddle.PaddlePreset != 0 || cfg.Paddle.Preset != &cfg.Presets[0] {
		t.Errorf("invalid preset not reset to 0")
	}
}
