package mappers

import (
	"nescore/ines"
)

var MMC1 = MapperDesc{
	Name: "MMC1",
	New:  newMMC1,
}

type mmc1 struct {
	base

	// 5-bit shift register, loaded LSB first. The 0x10 marker bit reaches
	// bit 0 when 4 bits have been shifted in.
	shift uint8

	ctrl uint8
	chr0 uint8
	chr1 uint8
	prg  uint8

	prgoff [2]int // 16KB windows at $8000 and $C000
	chroff [2]int // 4KB windows at $0000 and $1000
}

func newMMC1(cart *Cartridge) Mapper {
	return &mmc1{base: newbase(cart)}
}

func (m *mmc1) Reset() {
	// On powerup: bits 2,3 of $8000 are set (this ensures the $8000 is bank 0,
	// and $C000 is the last bank - needed for SEROM/SHROM/SH1ROM which do no
	// support banking)
	m.shift = 0x10
	m.chr0, m.chr1, m.prg = 0, 0, 0
	m.writeCTRL(0x0C)
}

func (m *mmc1) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		addr -= 0x8000
		return m.cart.PRGROM[m.prgoff[addr>>14]+int(addr&0x3FFF)]
	case addr >= 0x6000:
		return m.readPRGRAM(addr)
	}
	return 0
}

func (m *mmc1) CPUWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0x8000:
		m.writeSerial(addr, val)
	case addr >= 0x6000:
		m.writePRGRAM(addr, val)
	}
}

func (m *mmc1) writeSerial(addr uint16, val uint8) {
	if val&0x80 != 0 {
		// if the resetbit is set.
		//	- ignore databit
		//	- reset shift register (so that the next write is the "first" write)
		//	- bits 2,3 of control reg are set (16k PRG mode, $8000 swappable)
		//	- other bits of $8000 (and other regs) are unchanged
		m.shift = 0x10
		m.ctrl |= 0x0C
		m.remap()
		return
	}

	complete := m.shift&1 == 1
	m.shift = m.shift>>1 | (val&1)<<4
	if complete {
		m.writeREG(addr, m.shift)
		m.shift = 0x10
	}
}

func (m *mmc1) writeREG(addr uint16, val uint8) {
	switch (addr >> 13) & 3 {
	case 0:
		m.writeCTRL(val)
	case 1:
		modMapper.DebugZ("Write CHR0 reg").String("mapper", m.name).Uint8("val", val).End()
		m.chr0 = val
		m.remap()
	case 2:
		modMapper.DebugZ("Write CHR1 reg").String("mapper", m.name).Uint8("val", val).End()
		m.chr1 = val
		m.remap()
	case 3:
		// $E000-FFFF:  [...W PPPP]
		// W = WRAM Disable (0=enabled, 1=disabled), ignored as on MMC1A
		// P = PRG Reg
		modMapper.DebugZ("Write PRG reg").String("mapper", m.name).Uint8("val", val).End()
		m.prg = val
		m.remap()
	}
}

func (m *mmc1) writeCTRL(val uint8) {
	m.ctrl = val & 0x1F

	switch m.ctrl & 0x03 {
	case 0:
		m.cart.SetMirroring(ines.SingleScreenA)
	case 1:
		m.cart.SetMirroring(ines.SingleScreenB)
	case 2:
		m.cart.SetMirroring(ines.Vertical)
	case 3:
		m.cart.SetMirroring(ines.Horizontal)
	}

	modMapper.DebugZ("Write CTRL reg").String("mapper", m.name).
		Uint8("val", val).
		Uint8("prgmode", m.prgmode()).
		Uint8("chrmode", m.chrmode()).
		End()
	m.remap()
}

func (m *mmc1) prgmode() uint8 { return (m.ctrl >> 2) & 0x03 }
func (m *mmc1) chrmode() uint8 { return (m.ctrl >> 4) & 0x01 }

func (m *mmc1) remap() {
	prgbank := int(m.prg & 0x0F)
	switch m.prgmode() {
	case 0, 1:
		// ignore low bit of bank number
		m.prgoff[0] = m.prgOffset(0x4000, prgbank&0x0E)
		m.prgoff[1] = m.prgOffset(0x4000, prgbank|0x01)
	case 2:
		m.prgoff[0] = m.prgOffset(0x4000, 0)
		m.prgoff[1] = m.prgOffset(0x4000, prgbank)
	case 3:
		m.prgoff[0] = m.prgOffset(0x4000, prgbank)
		m.prgoff[1] = m.prgOffset(0x4000, -1)
	}

	switch m.chrmode() {
	case 0:
		m.chroff[0] = m.chrOffset(0x1000, int(m.chr0&0x1E))
		m.chroff[1] = m.chrOffset(0x1000, int(m.chr0|0x01))
	case 1:
		m.chroff[0] = m.chrOffset(0x1000, int(m.chr0))
		m.chroff[1] = m.chrOffset(0x1000, int(m.chr1))
	}
}

func (m *mmc1) PPURead(addr uint16) uint8 {
	addr &= 0x1FFF
	return m.readCHR(m.chroff[addr>>12] + int(addr&0x0FFF))
}

func (m *mmc1) PPUWrite(addr uint16, val uint8) {
	addr &= 0x1FFF
	m.writeCHR(m.chroff[addr>>12]+int(addr&0x0FFF), val)
}
