package hw

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"nescore/hw/hwio"
	"nescore/hw/mappers"
	"nescore/ines"
	"nescore/tests"
)

/* cpu specific testing helpers */

// loadCPUWith creates a CPU over a flat 64KB memory loaded with dump. The
// reset vector points to $8000 unless dump overwrites it.
func loadCPUWith(tb testing.TB, dump string) (*CPU, *hwio.Mem) {
	tb.Helper()

	mem := new(hwio.Mem)
	hwio.Write16(mem, ResetVector, 0x8000)
	for _, dl := range loadDump(tb, dump) {
		copy(mem[dl.off:], dl.bytes)
	}

	cpu := NewCPU(mem)
	cpu.Reset()
	return cpu, mem
}

func wantMem8(t *testing.T, cpu *CPU, addr uint16, want uint8) {
	t.Helper()

	if got := cpu.Read8(addr); got != want {
		t.Errorf("$%04X = %02X want %02X", addr, got, want)
	}
}

func wantMem(t *testing.T, cpu *CPU, dl dumpline) {
	t.Helper()

	mem := []byte{}
	for i := range dl.bytes {
		mem = append(mem, cpu.Read8(dl.off+uint16(i)))
	}

	if !bytes.Equal(mem, dl.bytes) {
		t.Errorf("mem mismatch at 0x%04x.\ngot:  % X\nwant: % X", dl.off, mem, dl.bytes)
	}
}

// runAndCheckState executes ninstr instructions then checks the CPU state
// against states, a list of name/value pairs.
func runAndCheckState(t *testing.T, cpu *CPU, ninstr int, states ...any) {
	t.Helper()

	if len(states)%2 != 0 {
		panic("odd number of states")
	}

	if testing.Verbose() {
		cpu.SetTraceOutput(tbwriter{t})
		defer cpu.SetTraceOutput(nil)
	}

	for range ninstr {
		if _, err := cpu.ExecuteInstruction(); err != nil {
			t.Fatal(err)
		}
	}

	checkbool := func(name string, got, want int) {
		t.Helper()
		if got != want {
			t.Errorf("got %s=%d, want %d", name, got, want)
		}
	}
	checkuint8 := func(name string, got, want uint8) {
		t.Helper()
		if got != want {
			t.Errorf("got %s=$%02X, want $%02X", name, got, want)
		}
	}
	checkuint16 := func(name string, got, want uint16) {
		t.Helper()
		if got != want {
			t.Errorf("got %s=$%04X, want $%04X", name, got, want)
		}
	}

	for i := 0; i < len(states); i += 2 {
		s := states[i].(string)
		switch {
		case s == "A":
			checkuint8("A", cpu.A, states[i+1].(uint8))
		case s == "X":
			checkuint8("X", cpu.X, states[i+1].(uint8))
		case s == "Y":
			checkuint8("Y", cpu.Y, states[i+1].(uint8))
		case s == "PC":
			checkuint16("PC", cpu.PC, states[i+1].(uint16))
		case s == "SP":
			checkuint8("SP", cpu.SP, states[i+1].(uint8))
		case s == "cycles":
			if got, want := cpu.Cycles, int64(states[i+1].(int)); got != want {
				t.Errorf("got cycles=%d, want %d", got, want)
			}
		case s == "P":
			if got, want := uint8(cpu.P), states[i+1].(uint8); got != want {
				t.Errorf("got P=$%02X(%s), want $%02X(%s)", got, P(got), want, P(want))
			}
		case len(s) > 1 && s[0] == 'P':
			for j := 1; j < len(s); j++ {
				bit := states[i+1].(int)
				switch s[j] {
				case 'n':
					checkbool("Pn", b2i(cpu.P.N()), bit)
				case 'v':
					checkbool("Pv", b2i(cpu.P.V()), bit)
				case 'b':
					checkbool("Pb", b2i(cpu.P.B()), bit)
				case 'd':
					checkbool("Pd", b2i(cpu.P.D()), bit)
				case 'i':
					checkbool("Pi", b2i(cpu.P.I()), bit)
				case 'z':
					checkbool("Pz", b2i(cpu.P.Z()), bit)
				case 'c':
					checkbool("Pc", b2i(cpu.P.C()), bit)
				default:
					panic("unknown P bit: " + string(s[j]))
				}
			}
		case s == "mem":
			lines := loadDump(t, states[i+1].(string))
			for _, line := range lines {
				wantMem(t, cpu, line)
			}

		default:
			panic("unknown state: " + s)
		}
	}

	if t.Failed() {
		t.FailNow()
	}
}

type dumpline struct {
	off   uint16
	bytes []byte
}

// loadDump parses a memory dump made of lines such as:
//
//	8000: A9 42 8D 00 20
//
// Empty lines and lines starting with # are ignored.
func loadDump(tb testing.TB, dump string) []dumpline {
	tb.Helper()

	var lines []dumpline
	scan := bufio.NewScanner(strings.NewReader(dump))
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		off, octets, ok := strings.Cut(line, ":")
		if !ok {
			tb.Fatalf("malformed line: %s", line)
		}

		ioff, err := strconv.ParseUint(off, 16, 16)
		if err != nil {
			tb.Fatalf("malformed offset %s: %s", off, err)
		}
		buf, err := hex.DecodeString(strings.ReplaceAll(octets, " ", ""))
		if err != nil {
			tb.Fatalf("hex decode: %s", err)
		}
		lines = append(lines, dumpline{off: uint16(ioff), bytes: buf})
	}
	if scan.Err() != nil {
		tb.Fatalf("scan error: %s", scan.Err())
	}

	return lines
}

type tbwriter struct {
	tb testing.TB
}

func (w tbwriter) Write(p []byte) (int, error) {
	w.tb.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

/* console helpers */

func loadCart(tb testing.TB, b *tests.RomBuilder) *mappers.Cartridge {
	tb.Helper()

	rom, err := ines.Decode(b.Bytes())
	tests.Check(tb, err)
	cart, err := mappers.Load(rom)
	tests.Check(tb, err)
	return cart
}

// newTestPPU creates a PPU connected to a CPU bus, with the given cartridge
// (which can be nil) and rendering into a Frame.
func newTestPPU(cart *mappers.Cartridge) (*PPU, *Bus, *Frame) {
	frame := NewFrame()
	ppu := NewPPU(frame)
	ppu.Cart = cart
	bus := NewBus(ppu, cart)
	return ppu, bus, frame
}
