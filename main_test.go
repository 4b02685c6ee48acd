package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-faster/jx"
	"github.com/google/go-cmp/cmp"

	"nescore/emu/log"
	"nescore/ines"
	"nescore/tests"
)

func writeRom(t *testing.T, name string, b *tests.RomBuilder) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseArgs(t *testing.T) {
	rom := writeRom(t, "game.nes", tests.NewRom(0, 1, 1))

	cases := []struct {
		args []string
		want mode
	}{
		{[]string{"run", rom}, runMode},
		{[]string{"run", "--frames", "10", rom}, runMode},
		{[]string{"rom-infos", rom}, romInfosMode},
		{[]string{"rom-infos", "--json", rom, rom}, romInfosMode},
		{[]string{"version"}, versionMode},
	}
	for _, tt := range cases {
		t.Run(strings.Join(tt.args[:1], " "), func(t *testing.T) {
			cli := parseArgs(tt.args)
			if cli.mode != tt.want {
				t.Errorf("mode = %d, want %d", cli.mode, tt.want)
			}
		})
	}

	cli := parseArgs([]string{"run", "--frames", "10", "--screenshot", "out.png", rom})
	if cli.Run.Frames != 10 || filepath.Base(cli.Run.Screenshot) != "out.png" || cli.Run.RomPath != rom {
		t.Errorf("run args = %+v", cli.Run)
	}
}

func TestLogModMask(t *testing.T) {
	defer log.Disable()

	var lm logModMask
	if err := lm.set("cpu,ppu"); err != nil {
		t.Fatal(err)
	}
	if want := logModMask(log.ModCPU.Mask() | log.ModPPU.Mask()); lm != want {
		t.Errorf("mask = %x, want %x", lm, want)
	}

	for _, list := range []string{"foo", "all,no", "cpu,no"} {
		var lm logModMask
		if err := lm.set(list); err == nil {
			t.Errorf("set(%q) error = nil, want error", list)
		}
	}
}

func TestRomInfos(t *testing.T) {
	paths := []string{
		writeRom(t, "a.nes", tests.NewRom(1, 8, 2).Battery()),
		writeRom(t, "b.nes", tests.NewRom(4, 2, 0).Vertical()),
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := romInfosMain(&buf, RomInfos{RomPaths: paths}); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		ia, ib := strings.Index(out, "a.nes:"), strings.Index(out, "b.nes:")
		if ia < 0 || ib < ia {
			t.Fatalf("roms missing or out of order:\n%s", out)
		}
		for _, s := range []string{"mapper:     1", "mapper:     4", "battery:    true", "CHR ROM:    none"} {
			if !strings.Contains(out, s) {
				t.Errorf("output doesn't contain %q:\n%s", s, out)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := romInfosMain(&buf, RomInfos{RomPaths: paths, JSON: true}); err != nil {
			t.Fatal(err)
		}

		type info struct {
			mapper    int
			mirroring string
		}
		var got []info
		err := jx.DecodeBytes(buf.Bytes()).Arr(func(d *jx.Decoder) error {
			var inf info
			err := d.Obj(func(d *jx.Decoder, key string) error {
				var err error
				switch key {
				case "mapper":
					inf.mapper, err = d.Int()
				case "mirroring":
					inf.mirroring, err = d.Str()
				default:
					err = d.Skip()
				}
				return err
			})
			got = append(got, inf)
			return err
		})
		if err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
		}

		want := []info{
			{1, ines.Horizontal.String()},
			{4, ines.Vertical.String()},
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(info{})); diff != "" {
			t.Errorf("rom infos mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "missing.nes")
		err := romInfosMain(&bytes.Buffer{}, RomInfos{RomPaths: append(paths, bad)})
		if err == nil {
			t.Fatal("romInfosMain() error = nil, want error")
		}
	})
}

func TestRunMain(t *testing.T) {
	b := tests.NewRom(0, 1, 1).
		Code(0x8000, 0x4C, 0x00, 0x80). // JMP $8000
		ResetVector(0x8000)
	rom := writeRom(t, "loop.nes", b)
	dir := t.TempDir()

	trace := &outfile{name: filepath.Join(dir, "trace.log")}
	if err := trace.open(); err != nil {
		t.Fatal(err)
	}

	err := runMain(Run{
		RomPath:    rom,
		Config:     filepath.Join(dir, "none.toml"),
		Frames:     2,
		Screenshot: filepath.Join(dir, "shot.png"),
		Trace:      trace,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "shot.png")); err != nil {
		t.Errorf("screenshot: %v", err)
	}
	buf, err := os.ReadFile(filepath.Join(dir, "trace.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf, []byte("8000  4C 00 80  JMP $8000")) {
		t.Errorf("unexpected trace start: %.60s", buf)
	}
}

func TestRunMainNES20Warning(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(log.Disable)

	b := tests.NewRom(0, 1, 1).
		Code(0x8000, 0x4C, 0x00, 0x80). // JMP $8000
		ResetVector(0x8000)
	b.Flags7 |= 0x08
	rom := writeRom(t, "nes20.nes", b)

	err := runMain(Run{
		RomPath: rom,
		Config:  filepath.Join(t.TempDir(), "none.toml"),
		Frames:  1,
	})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"NES 2.0 header", "_mod=emu", "nes20.nes"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output doesn't contain %q:\n%s", want, out)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)
	if !strings.HasPrefix(buf.String(), "nescore ") {
		t.Errorf("version = %q", buf.String())
	}
}
