package hw

import (
	"nescore/hw/mappers"
)

// Bus is the CPU address space, routing accesses to the internal RAM, the PPU
// registers, the input port and the cartridge.
//
//	$0000-$1FFF  2KB internal RAM, mirrored every $800
//	$2000-$3FFF  PPU registers, mirrored every 8 bytes
//	$4014        OAM DMA (write)
//	$4016        Input port
//	$6000-$FFFF  Cartridge
//
// Other addresses read as 0 and ignore writes.
type Bus struct {
	RAM [0x800]uint8

	PPU   *PPU
	Cart  *mappers.Cartridge
	Input InputPorts

	dma oamDMA
}

// NewBus creates the CPU bus. ppu and cart may be nil in tests.
func NewBus(ppu *PPU, cart *mappers.Cartridge) *Bus {
	b := &Bus{PPU: ppu, Cart: cart}
	b.Input.initBus()
	b.dma.initBus(nil, b, ppu)
	return b
}

func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.RAM[addr&0x07FF]
	case addr < 0x4000:
		if b.PPU != nil {
			return b.PPU.ReadReg(addr)
		}
	case addr == 0x4016:
		return b.Input.In.Read8(addr)
	case addr >= 0x6000:
		if b.Cart != nil {
			return b.Cart.CPURead(addr)
		}
	}
	return 0
}

func (b *Bus) Write8(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.RAM[addr&0x07FF] = val
	case addr < 0x4000:
		if b.PPU != nil {
			b.PPU.WriteReg(addr, val)
		}
	case addr == 0x4014:
		if b.PPU != nil {
			b.dma.OAMDMA.Write8(addr, val)
		}
	case addr == 0x4016:
		b.Input.In.Write8(addr, val)
	case addr >= 0x6000:
		if b.Cart != nil {
			b.Cart.CPUWrite(addr, val)
		}
	}
}

// Peek8 reads memory without side effects.
func (b *Bus) Peek8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.RAM[addr&0x07FF]
	case addr < 0x4000:
		if b.PPU != nil {
			return b.PPU.PeekReg(addr)
		}
	case addr == 0x4016:
		return b.Input.PeekIN()
	case addr >= 0x6000:
		if b.Cart != nil {
			return b.Cart.CPURead(addr)
		}
	}
	return 0
}

// SetOAMDMAStall enables the accounting of the CPU cycles stolen by OAM DMA
// transfers.
func (b *Bus) SetOAMDMAStall(enabled bool) {
	b.dma.stall = enabled
}
