package mappers

import (
	"nescore/ines"
)

const (
	PRGRAMSize = 0x2000
	CHRRAMSize = 0x2000
)

// A Mapper translates CPU and PPU addresses into offsets in the cartridge
// memory. Mappers only own their bank-switching state, the memory itself
// belongs to the Cartridge.
type Mapper interface {
	Reset()
	CPURead(addr uint16) uint8
	CPUWrite(addr uint16, val uint8)
	PPURead(addr uint16) uint8
	PPUWrite(addr uint16, val uint8)
}

// A ScanlineCounter is implemented by mappers counting PPU scanlines to
// generate interrupts (MMC3). TickScanline reports whether the IRQ line is
// asserted after the tick.
type ScanlineCounter interface {
	TickScanline() bool
}

// IRQLine is the CPU maskable interrupt input.
type IRQLine interface {
	RequestIRQ(level bool)
}

// Cartridge holds the memory of a game cartridge and the mapper in charge of
// bank switching.
type Cartridge struct {
	PRGROM []byte
	CHRROM []byte
	PRGRAM []byte
	CHRRAM []byte

	Battery  bool
	MapperID uint16

	Mapper Mapper
	desc   MapperDesc

	mirroring    ines.Mirroring
	hdrMirroring ines.Mirroring
	irq          IRQLine
}

// Load creates the cartridge described by rom, along with its mapper.
func Load(rom *ines.Rom) (*Cartridge, error) {
	desc, ok := All[rom.Mapper()]
	if !ok {
		return nil, &UnsupportedMapperError{ID: rom.Mapper()}
	}
	if len(rom.PRGROM) == 0 {
		return nil, &ines.RomLoadError{Path: rom.Path(), Err: ines.ErrNoPRG}
	}

	cart := &Cartridge{
		PRGROM:       rom.PRGROM,
		CHRROM:       rom.CHRROM,
		PRGRAM:       make([]byte, PRGRAMSize),
		CHRRAM:       make([]byte, CHRRAMSize),
		Battery:      rom.HasPersistent(),
		MapperID:     rom.Mapper(),
		desc:         desc,
		mirroring:    rom.Mirroring(),
		hdrMirroring: rom.Mirroring(),
	}

	if rom.FourScreen() {
		modMapper.WarnZ("four-screen mirroring is not supported, using header mirroring").
			Stringer("mirroring", cart.mirroring).
			End()
	}

	cart.Mapper = desc.New(cart)
	cart.Mapper.Reset()

	modMapper.InfoZ("cartridge loaded").
		String("mapper", desc.Name).
		Int("prgrom", len(cart.PRGROM)).
		Int("chrrom", len(cart.CHRROM)).
		Stringer("mirroring", cart.mirroring).
		Bool("battery", cart.Battery).
		End()
	return cart, nil
}

// Name returns the name of the cartridge mapper.
func (c *Cartridge) Name() string { return c.desc.Name }

// Reset puts the cartridge back in its power-up state. Memory is preserved.
func (c *Cartridge) Reset() {
	c.mirroring = c.hdrMirroring
	c.Mapper.Reset()
}

func (c *Cartridge) Mirroring() ines.Mirroring { return c.mirroring }

func (c *Cartridge) SetMirroring(m ines.Mirroring) {
	if c.mirroring != m {
		modMapper.DebugZ("select NT mirroring").
			String("mapper", c.desc.Name).
			Stringer("prev", c.mirroring).
			Stringer("new", m).
			End()
	}
	c.mirroring = m
}

// HasCHRRAM reports whether pattern tables are backed by CHR RAM, which is the
// case when the cartridge has no CHR ROM.
func (c *Cartridge) HasCHRRAM() bool { return len(c.CHRROM) == 0 }

// CHR returns the memory backing the pattern tables.
func (c *Cartridge) CHR() []byte {
	if c.HasCHRRAM() {
		return c.CHRRAM
	}
	return c.CHRROM
}

// ConnectIRQ connects the cartridge IRQ output to the CPU.
func (c *Cartridge) ConnectIRQ(line IRQLine) { c.irq = line }

func (c *Cartridge) setIRQ(level bool) {
	if c.irq != nil {
		c.irq.RequestIRQ(level)
	}
}

func (c *Cartridge) CPURead(addr uint16) uint8       { return c.Mapper.CPURead(addr) }
func (c *Cartridge) CPUWrite(addr uint16, val uint8) { c.Mapper.CPUWrite(addr, val) }
func (c *Cartridge) PPURead(addr uint16) uint8       { return c.Mapper.PPURead(addr) }
func (c *Cartridge) PPUWrite(addr uint16, val uint8) { c.Mapper.PPUWrite(addr, val) }
