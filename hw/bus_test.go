package hw

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nescore/tests"
)

func TestBusRAMMirroring(t *testing.T) {
	bus := NewBus(nil, nil)

	bus.Write8(0x0001, 0x42)
	for _, addr := range []uint16{0x0001, 0x0801, 0x1001, 0x1801} {
		if got := bus.Read8(addr); got != 0x42 {
			t.Errorf("Read8($%04X) = $%02X, want $42", addr, got)
		}
	}

	bus.Write8(0x1FFF, 0x17)
	if got := bus.RAM[0x07FF]; got != 0x17 {
		t.Errorf("RAM[$7FF] = $%02X, want $17", got)
	}
}

func TestBusUnmapped(t *testing.T) {
	_, bus, _ := newTestPPU(nil)

	for _, addr := range []uint16{0x4000, 0x4015, 0x4017, 0x4018, 0x5000, 0x5FFF, 0x6000, 0xFFFF} {
		bus.Write8(addr, 0xFF)
		if got := bus.Read8(addr); got != 0 {
			t.Errorf("Read8($%04X) = $%02X, want 0", addr, got)
		}
	}
}

func TestBusPPURegisterMirroring(t *testing.T) {
	ppu, bus, _ := newTestPPU(nil)

	// $3FFE and $200E are mirrors of PPUADDR.
	bus.Write8(0x3FFE, 0x23)
	bus.Write8(0x200E, 0x45)
	if got := ppu.vramAddr.val(); got != 0x2345 {
		t.Errorf("v = $%04X, want $2345", got)
	}

	// $2FF7 is a mirror of PPUDATA.
	bus.Write8(0x2FF7, 0x99)
	if got := ppu.VRAM[0x345]; got != 0x99 {
		t.Errorf("VRAM[$345] = $%02X, want $99", got)
	}
}

func TestBusCartridge(t *testing.T) {
	b := tests.NewRom(0, 1, 1)
	b.Code(0x8000, 0xA9, 0x01)
	cart := loadCart(t, b)

	bus := NewBus(nil, cart)
	if got := bus.Read8(0x8001); got != 0x01 {
		t.Errorf("Read8($8001) = $%02X, want $01", got)
	}
	// NROM-128 mirrors its 16KB bank.
	if got := bus.Read8(0xC001); got != 0x01 {
		t.Errorf("Read8($C001) = $%02X, want $01", got)
	}

	// PRG RAM
	bus.Write8(0x6010, 0x5A)
	if got := bus.Read8(0x6010); got != 0x5A {
		t.Errorf("Read8($6010) = $%02X, want $5A", got)
	}
	if got := bus.Peek8(0x6010); got != 0x5A {
		t.Errorf("Peek8($6010) = $%02X, want $5A", got)
	}
}

func TestOAMDMA(t *testing.T) {
	t.Run("copy", func(t *testing.T) {
		ppu, bus, _ := newTestPPU(nil)
		for i := range 256 {
			bus.Write8(0x0200+uint16(i), uint8(i))
		}

		// The copy starts at OAMADDR and wraps around.
		bus.Write8(0x2003, 0x04)
		bus.Write8(0x4014, 0x02)

		var want [256]uint8
		for i := range 256 {
			want[(i+4)&0xFF] = uint8(i)
		}
		if diff := cmp.Diff(want, ppu.OAM); diff != "" {
			t.Errorf("OAM mismatch (-want +got):\n%s", diff)
		}
		if got := ppu.OAMADDR.Value; got != 0x04 {
			t.Errorf("OAMADDR = $%02X, want $04", got)
		}
	})

	t.Run("no stall", func(t *testing.T) {
		_, bus, _ := newTestPPU(nil)
		cpu := NewCPU(bus)
		bus.dma.cpu = cpu

		bus.Write8(0x4014, 0x02)
		if cpu.stall != 0 {
			t.Errorf("stall = %d, want 0", cpu.stall)
		}
	})

	t.Run("stall", func(t *testing.T) {
		cases := []struct {
			cycles int64
			want   int
		}{
			{cycles: 10, want: 513},
			{cycles: 11, want: 514},
		}
		for _, tt := range cases {
			_, bus, _ := newTestPPU(nil)
			cpu := NewCPU(bus)
			bus.dma.cpu = cpu
			bus.SetOAMDMAStall(true)

			cpu.Cycles = tt.cycles
			bus.Write8(0x4014, 0x02)
			if cpu.stall != tt.want {
				t.Errorf("cycles=%d: stall = %d, want %d", tt.cycles, cpu.stall, tt.want)
			}
		}
	})
}

type fixedInput uint8

func (in fixedInput) LoadState() uint8 { return uint8(in) }

func TestController(t *testing.T) {
	readAll := func(bus *Bus, n int) []uint8 {
		var bits []uint8
		for range n {
			bits = append(bits, bus.Read8(0x4016))
		}
		return bits
	}

	t.Run("shift register", func(t *testing.T) {
		bus := NewBus(nil, nil)
		bus.Input.Plug(fixedInput(0b10100101))

		bus.Write8(0x4016, 1)
		bus.Write8(0x4016, 0)

		got := readAll(bus, 10)
		want := []uint8{1, 0, 1, 0, 0, 1, 0, 1, 1, 1}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("controller bits mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("latch on write with bit0 set", func(t *testing.T) {
		bus := NewBus(nil, nil)
		bus.Input.Plug(fixedInput(0b00000001))

		bus.Write8(0x4016, 1)
		readAll(bus, 3)

		// Writing 0 doesn't reload the state.
		bus.Write8(0x4016, 0)
		if got := bus.Read8(0x4016); got != 0 {
			t.Errorf("bit 3 = %d, want 0", got)
		}

		bus.Write8(0x4016, 1)
		if got := bus.Read8(0x4016); got != 1 {
			t.Errorf("bit 0 after reload = %d, want 1", got)
		}
	})

	t.Run("peek", func(t *testing.T) {
		bus := NewBus(nil, nil)
		bus.Input.Plug(fixedInput(0b00000011))
		bus.Write8(0x4016, 1)

		for range 3 {
			if got := bus.Peek8(0x4016); got != 1 {
				t.Fatalf("Peek8($4016) = %d, want 1", got)
			}
		}
		readAll(bus, 2)
		if got := bus.Peek8(0x4016); got != 0 {
			t.Errorf("Peek8($4016) = %d, want 0", got)
		}
	})

	t.Run("unplugged", func(t *testing.T) {
		bus := NewBus(nil, nil)
		bus.Write8(0x4016, 1)
		got := readAll(bus, 9)
		want := []uint8{0, 0, 0, 0, 0, 0, 0, 0, 1}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("controller bits mismatch (-want +got):\n%s", diff)
		}
	})
}
