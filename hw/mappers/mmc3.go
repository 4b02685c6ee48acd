package mappers

import (
	"nescore/ines"
)

var MMC3 = MapperDesc{
	Name: "MMC3",
	New:  newMMC3,
}

type mmc3 struct {
	base

	bankSelect uint8
	regs       [8]uint8

	prgRAMEnabled bool
	prgRAMProtect bool

	irqLatch   uint8
	irqCounter uint8
	irqReload  bool
	irqEnabled bool
	irqPending bool

	prgoff [4]int // 8KB windows at $8000, $A000, $C000 and $E000
	chroff [8]int // 1KB windows
}

func newMMC3(cart *Cartridge) Mapper {
	return &mmc3{base: newbase(cart)}
}

func (m *mmc3) Reset() {
	m.bankSelect = 0
	m.regs = [8]uint8{0, 2, 4, 5, 6, 7, 0, 1}
	m.prgRAMEnabled = true
	m.prgRAMProtect = false
	m.irqLatch, m.irqCounter = 0, 0
	m.irqReload, m.irqEnabled, m.irqPending = false, false, false
	m.remap()
}

func (m *mmc3) prgmode() uint8 { return (m.bankSelect >> 6) & 1 }
func (m *mmc3) chrmode() uint8 { return (m.bankSelect >> 7) & 1 }

func (m *mmc3) remap() {
	r6 := int(m.regs[6] & 0x3F)
	r7 := int(m.regs[7] & 0x3F)
	switch m.prgmode() {
	case 0:
		m.prgoff[0] = m.prgOffset(0x2000, r6)
		m.prgoff[2] = m.prgOffset(0x2000, -2)
	case 1:
		m.prgoff[0] = m.prgOffset(0x2000, -2)
		m.prgoff[2] = m.prgOffset(0x2000, r6)
	}
	m.prgoff[1] = m.prgOffset(0x2000, r7)
	m.prgoff[3] = m.prgOffset(0x2000, -1)

	// R0 and R1 select 2KB banks, ignoring their low bit.
	banks := [8]int{
		int(m.regs[0] & 0xFE), int(m.regs[0] | 0x01),
		int(m.regs[1] & 0xFE), int(m.regs[1] | 0x01),
		int(m.regs[2]), int(m.regs[3]),
		int(m.regs[4]), int(m.regs[5]),
	}
	for i, bank := range banks {
		slot := i
		if m.chrmode() == 1 {
			// Invert A12: 2KB banks at $1000-$1FFF.
			slot ^= 4
		}
		m.chroff[slot] = m.chrOffset(0x400, bank)
	}
}

func (m *mmc3) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		addr -= 0x8000
		return m.cart.PRGROM[m.prgoff[addr>>13]+int(addr&0x1FFF)]
	case addr >= 0x6000:
		if m.prgRAMEnabled {
			return m.readPRGRAM(addr)
		}
	}
	return 0
}

func (m *mmc3) CPUWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0x8000:
		m.writeREG(addr&0xE001, val)
	case addr >= 0x6000:
		if m.prgRAMEnabled && !m.prgRAMProtect {
			m.writePRGRAM(addr, val)
		}
	}
}

func (m *mmc3) writeREG(reg uint16, val uint8) {
	switch reg {
	case 0x8000:
		// 7  bit  0
		// ---- ----
		// CPMx xRRR
		// |||   |||
		// |||   +++- Specify which bank register to update on next write to Bank Data register
		// ||+------- Nothing on the MMC3, see MMC6
		// |+-------- PRG ROM bank mode (0: $8000-$9FFF swappable,
		// |                                $C000-$DFFF fixed to second-last bank;
		// |                             1: $C000-$DFFF swappable,
		// |                                $8000-$9FFF fixed to second-last bank)
		// +--------- CHR A12 inversion (0: two 2 KB banks at $0000-$0FFF,
		//                                  four 1 KB banks at $1000-$1FFF;
		//                               1: two 2 KB banks at $1000-$1FFF,
		//                                  four 1 KB banks at $0000-$0FFF)
		m.bankSelect = val
		m.remap()
	case 0x8001:
		m.regs[m.bankSelect&0x07] = val
		m.remap()
		modMapper.DebugZ("bank data").String("mapper", m.name).Uint8("reg", m.bankSelect&0x07).Hex8("val", val).End()
	case 0xA000:
		if val&0x01 == 0 {
			m.cart.SetMirroring(ines.Vertical)
		} else {
			m.cart.SetMirroring(ines.Horizontal)
		}
	case 0xA001:
		m.prgRAMEnabled = val&0x80 != 0
		m.prgRAMProtect = val&0x40 != 0
	case 0xC000:
		m.irqLatch = val
	case 0xC001:
		m.irqCounter = 0
		m.irqReload = true
	case 0xE000:
		m.irqEnabled = false
		if m.irqPending {
			m.irqPending = false
			m.cart.setIRQ(false)
		}
	case 0xE001:
		m.irqEnabled = true
	}
}

// TickScanline clocks the scanline counter. It must be called once per
// rendered scanline, when the PPU fetches sprite patterns.
func (m *mmc3) TickScanline() bool {
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqLatch
		m.irqReload = false
	} else {
		m.irqCounter--
	}

	if m.irqCounter == 0 && m.irqEnabled {
		m.irqPending = true
	}
	return m.irqPending
}

func (m *mmc3) PPURead(addr uint16) uint8 {
	addr &= 0x1FFF
	return m.readCHR(m.chroff[addr>>10] + int(addr&0x03FF))
}

func (m *mmc3) PPUWrite(addr uint16, val uint8) {
	addr &= 0x1FFF
	m.writeCHR(m.chroff[addr>>10]+int(addr&0x03FF), val)
}
