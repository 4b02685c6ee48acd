package hw

import (
	"nescore/emu/log"
	"nescore/hw/hwio"
	"nescore/hw/mappers"
	"nescore/ines"
)

const (
	NumScanlines = 262 // Number of scanlines per frame.
	NumCycles    = 341 // Number of PPU cycles per scanline.

	ScreenWidth  = 256
	ScreenHeight = 240
)

// scanlineIRQCycle is the cycle at which mappers counting scanlines get
// clocked (when the PPU fetches sprite patterns from $1000).
const scanlineIRQCycle = 260

// A Screen receives the pixels output by the PPU, as packed 0xRRGGBB colors.
type Screen interface {
	SetPixel(x, y int, rgb uint32)
}

type PPU struct {
	CPU  *CPU
	Cart *mappers.Cartridge

	Cycle    int   // Current cycle/pixel in scanline
	Scanline int   // Current scanline being drawn
	Frames   int64 // Number of frames completed

	// $2000-$2FFF nametables, 2KB of VRAM mirrored according to the
	// cartridge.
	VRAM [0x800]uint8

	// $3F00-$3F1F palette RAM indexes, mirrored up to $3FFF.
	Palette [0x20]uint8

	// Sprite attributes.
	OAM [0x100]uint8

	// CPU-exposed memory-mapped PPU registers
	// mapped from $2000 to $2007, mirrored up to $3fff
	PPUCTRL   hwio.Reg8
	PPUMASK   hwio.Reg8
	PPUSTATUS hwio.Reg8
	OAMADDR   hwio.Reg8
	OAMDATA   hwio.Reg8
	PPUSCROLL hwio.Reg8
	PPUADDR   hwio.Reg8
	PPUDATA   hwio.Reg8

	regs [8]*hwio.Reg8

	// VRAM read/write
	vramAddr    loopy // v
	vramTmp     loopy // t
	finex       uint8
	writeLatch  bool
	ppuDataRbuf uint8

	// per scanline rendering buffers
	linebuf  [ScreenWidth]uint8 // palette index of each pixel
	bgOpaque [ScreenWidth]bool

	screen Screen

	// Sprite0HitBypass sets sprite 0 hit for any opaque sprite 0 pixel, even
	// over a transparent background.
	Sprite0HitBypass bool
}

// NewPPU creates a PPU rendering into screen. The CPU and cartridge must be
// connected before running it.
func NewPPU(screen Screen) *PPU {
	p := &PPU{screen: screen}
	p.initRegs()
	return p
}

func (p *PPU) SetScreen(screen Screen) {
	p.screen = screen
}

func (p *PPU) Reset() {
	p.Scanline = 0
	p.Cycle = 0
	p.writeLatch = false
	p.vramAddr = 0
	p.vramTmp = 0
	p.finex = 0
	p.ppuDataRbuf = 0
	p.PPUCTRL.Value = 0
	p.PPUMASK.Value = 0
	p.PPUSTATUS.Value = 0
	p.OAMADDR.Value = 0
}

func (p *PPU) renderingEnabled() bool {
	return p.PPUMASK.GetBit(showBg) || p.PPUMASK.GetBit(showSprites)
}

// Step runs the PPU for the given number of PPU cycles.
func (p *PPU) Step(ncycles int) {
	for range ncycles {
		p.tick()
	}
}

func (p *PPU) tick() {
	if p.Scanline == 0 && p.Cycle == 0 {
		const mask = 1<<vblank | 1<<sprite0Hit
		p.PPUSTATUS.ClearBits(mask)
	}

	if p.Scanline < ScreenHeight && p.Cycle == scanlineIRQCycle && p.renderingEnabled() {
		p.tickScanlineCounter()
	}

	p.Cycle++
	if p.Cycle < NumCycles {
		return
	}

	p.Cycle = 0
	switch {
	case p.Scanline < ScreenHeight:
		if p.renderingEnabled() {
			p.vramAddr.copyX(p.vramTmp)
		}
		p.renderScanline()
		if p.renderingEnabled() {
			p.vramAddr.incY()
		}

	case p.Scanline == 241:
		p.PPUSTATUS.SetBit(vblank)
		p.Frames++
		if p.PPUCTRL.GetBit(nmi) && p.CPU != nil {
			log.ModPPU.DebugZ("vblank NMI").Int64("frame", p.Frames).End()
			p.CPU.RequestNMI()
		}

	case p.Scanline == NumScanlines-1:
		// Pre-render scanline, restart the frame.
		if p.renderingEnabled() {
			p.vramAddr = p.vramTmp
		}
	}

	p.Scanline++
	if p.Scanline == NumScanlines {
		p.Scanline = 0
	}
}

func (p *PPU) tickScanlineCounter() {
	if p.Cart == nil {
		return
	}
	counter, ok := p.Cart.Mapper.(mappers.ScanlineCounter)
	if !ok {
		return
	}
	if counter.TickScanline() && p.CPU != nil {
		p.CPU.RequestIRQ(true)
	}
}

/* PPU address space */

// ntOffset returns the offset in VRAM of the nametable address addr.
func (p *PPU) ntOffset(addr uint16) uint16 {
	addr = (addr - 0x2000) & 0x0FFF
	index := addr / 0x0400
	off := addr % 0x0400

	mirroring := ines.Horizontal
	if p.Cart != nil {
		mirroring = p.Cart.Mirroring()
	}
	switch mirroring {
	case ines.Vertical:
		return (index%2)*0x0400 + off
	case ines.SingleScreenA:
		return off
	case ines.SingleScreenB:
		return 0x0400 + off
	default:
		return (index/2)*0x0400 + off
	}
}

// paletteIndex returns the palette RAM index of addr. Entries $10, $14, $18
// and $1C are mirrors of $00, $04, $08 and $0C.
func paletteIndex(addr uint16) uint16 {
	idx := addr & 0x1F
	if idx >= 0x10 && idx&0x03 == 0 {
		idx -= 0x10
	}
	return idx
}

func (p *PPU) Read8(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if p.Cart == nil {
			return 0
		}
		return p.Cart.PPURead(addr)
	case addr < 0x3F00:
		return p.VRAM[p.ntOffset(addr)]
	default:
		return p.Palette[paletteIndex(addr)]
	}
}

func (p *PPU) Write8(addr uint16, val uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if p.Cart != nil {
			p.Cart.PPUWrite(addr, val)
		}
	case addr < 0x3F00:
		p.VRAM[p.ntOffset(addr)] = val
	default:
		p.Palette[paletteIndex(addr)] = val & 0x3F
	}
}
