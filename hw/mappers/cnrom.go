package mappers

var CNROM = MapperDesc{
	Name: "CNROM",
	New:  newCNROM,
}

type cnrom struct {
	base

	prgmask uint16
	chrbank uint8
	chroff  int
}

func newCNROM(cart *Cartridge) Mapper {
	size := min(len(cart.PRGROM), 0x8000)
	return &cnrom{
		base:    newbase(cart),
		prgmask: uint16(size - 1),
	}
}

func (m *cnrom) Reset() {
	m.chrbank = 0
	m.chroff = 0
}

func (m *cnrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		return m.cart.PRGROM[(addr-0x8000)&m.prgmask]
	case addr >= 0x6000:
		return m.readPRGRAM(addr)
	}
	return 0
}

func (m *cnrom) CPUWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0x8000:
		// 7  bit  0
		// ---- ----
		// cccc ccCC
		// |||| ||||
		// ++++-++++- Select 8 KB CHR ROM bank for PPU $0000-$1FFF
		// CNROM only uses lowest 2 bits
		prev := m.chrbank
		m.chrbank = val & 0b11
		m.chroff = m.chrOffset(0x2000, int(m.chrbank))
		if prev != m.chrbank {
			modMapper.DebugZ("CHRROM bank switch").String("mapper", m.name).Uint8("prev", prev).Uint8("new", m.chrbank).End()
		}
	case addr >= 0x6000:
		m.writePRGRAM(addr, val)
	}
}

func (m *cnrom) PPURead(addr uint16) uint8 {
	return m.readCHR(m.chroff + int(addr&0x1FFF))
}

func (m *cnrom) PPUWrite(addr uint16, val uint8) {
	m.writeCHR(m.chroff+int(addr&0x1FFF), val)
}
