package mappers

var GxROM = MapperDesc{
	Name: "GxROM",
	New:  newGxROM,
}

type gxrom struct {
	base

	prgoff int
	chroff int
}

func newGxROM(cart *Cartridge) Mapper {
	return &gxrom{base: newbase(cart)}
}

func (m *gxrom) Reset() {
	m.prgoff = 0
	m.chroff = 0
}

func (m *gxrom) CPURead(addr uint16) uint8 {
	if addr >= 0x8000 {
		return m.cart.PRGROM[(m.prgoff+int(addr-0x8000))%len(m.cart.PRGROM)]
	}
	return 0
}

func (m *gxrom) CPUWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		return
	}

	// 7  bit  0
	// ---- ----
	// xxPP xxCC
	//   ||   ||
	//   ||   ++- Select 8 KB CHR ROM bank for PPU $0000-$1FFF
	//   ++------ Select 32 KB PRG ROM bank for CPU $8000-$FFFF
	m.prgoff = m.prgOffset(0x8000, int(val>>4)&0x03)
	m.chroff = m.chrOffset(0x2000, int(val&0x03))
	modMapper.DebugZ("bank switch").String("mapper", m.name).Hex8("val", val).End()
}

func (m *gxrom) PPURead(addr uint16) uint8 {
	return m.readCHR(m.chroff + int(addr&0x1FFF))
}

func (m *gxrom) PPUWrite(addr uint16, val uint8) {
	m.writeCHR(m.chroff+int(addr&0x1FFF), val)
}
