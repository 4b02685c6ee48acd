package hw

import (
	"io"

	"nescore/emu/log"
	"nescore/hw/mappers"
)

// CPU cycles per NTSC frame (341*262/3, rounded down).
const frameCPUCycles = 29780

// NESConfig holds the emulation settings of the hardware.
type NESConfig struct {
	// OAMDMAStall makes OAM DMA transfers steal 513 (or 514) CPU cycles.
	OAMDMAStall bool

	// Sprite0HitBypass sets the sprite 0 hit flag on any opaque sprite 0
	// pixel, even over a transparent background.
	Sprite0HitBypass bool
}

// NES wires the CPU, PPU, bus and cartridge together and drives them frame
// by frame.
type NES struct {
	CPU  *CPU
	PPU  *PPU
	Bus  *Bus
	Cart *mappers.Cartridge

	// CPU cycles run past the end of the previous frame.
	overshoot int
}

// NewNES powers up a console with cart inserted. The returned console has
// already been reset.
func NewNES(cart *mappers.Cartridge, cfg NESConfig) *NES {
	ppu := NewPPU(nil)
	bus := NewBus(ppu, cart)
	cpu := NewCPU(bus)

	bus.dma.cpu = cpu
	bus.SetOAMDMAStall(cfg.OAMDMAStall)
	ppu.CPU = cpu
	ppu.Cart = cart
	ppu.Sprite0HitBypass = cfg.Sprite0HitBypass
	cart.ConnectIRQ(cpu)

	nes := &NES{
		CPU:  cpu,
		PPU:  ppu,
		Bus:  bus,
		Cart: cart,
	}
	nes.Reset()
	return nes
}

// Reset resets the cartridge, the PPU then the CPU, which reloads its
// program counter from the reset vector.
func (nes *NES) Reset() {
	nes.Cart.Reset()
	nes.PPU.Reset()
	nes.CPU.Reset()
	nes.overshoot = 0
	log.ModEmu.InfoZ("console reset").Hex16("PC", nes.CPU.PC).End()
}

// SetScreen sets the screen the PPU renders into.
func (nes *NES) SetScreen(screen Screen) {
	nes.PPU.SetScreen(screen)
}

// PlugInput connects dev to the controller port.
func (nes *NES) PlugInput(dev InputDevice) {
	nes.Bus.Input.Plug(dev)
}

// SetTraceOutput enables the CPU execution trace. A nil writer disables it.
func (nes *NES) SetTraceOutput(w io.Writer) {
	nes.CPU.SetTraceOutput(w)
	if nes.CPU.tracer != nil {
		nes.CPU.tracer.ppu = nes.PPU
	}
}

// RunFrame runs the console for one frame worth of CPU cycles, the PPU
// running 3 cycles per CPU cycle. Cycles run past the frame budget are
// deducted from the next frame. Execution stops at the first error.
func (nes *NES) RunFrame() error {
	budget := frameCPUCycles - nes.overshoot
	for budget > 0 {
		cycles, err := nes.CPU.ExecuteInstruction()
		if err != nil {
			return err
		}
		nes.PPU.Step(cycles * 3)
		budget -= cycles
	}
	nes.overshoot = -budget
	return nil
}
