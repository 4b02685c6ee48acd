package mappers

var UxROM = MapperDesc{
	Name: "UxROM",
	New:  newUxROM,
}

type uxrom struct {
	base

	prgbank uint8
	prgoff  [2]int
}

func newUxROM(cart *Cartridge) Mapper {
	if len(cart.CHRROM) != 0 {
		modMapper.WarnZ("CHR ROM ignored, UxROM uses CHR RAM").Int("chrrom", len(cart.CHRROM)).End()
	}
	return &uxrom{base: newbase(cart)}
}

func (m *uxrom) Reset() {
	m.prgbank = 0
	m.prgoff[0] = m.prgOffset(0x4000, 0)
	m.prgoff[1] = m.prgOffset(0x4000, -1)
}

func (m *uxrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		addr -= 0x8000
		return m.cart.PRGROM[m.prgoff[addr>>14]+int(addr&0x3FFF)]
	case addr >= 0x6000:
		return m.readPRGRAM(addr)
	}
	return 0
}

func (m *uxrom) CPUWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0x8000:
		// 7  bit  0
		// ---- ----
		// xxxx pPPP
		//      ||||
		//      ++++- Select 16 KB PRG ROM bank for CPU $8000-$BFFF
		//            (UNROM uses bits 2-0; UOROM uses bits 3-0)
		prev := m.prgbank
		m.prgbank = val & 0x0F
		m.prgoff[0] = m.prgOffset(0x4000, int(m.prgbank))
		if prev != m.prgbank {
			modMapper.DebugZ("PRGROM bank switch").String("mapper", m.name).Uint8("prev", prev).Uint8("new", m.prgbank).End()
		}
	case addr >= 0x6000:
		m.writePRGRAM(addr, val)
	}
}

// UxROM boards always have 8KB of CHR RAM.
func (m *uxrom) PPURead(addr uint16) uint8       { return m.cart.CHRRAM[addr&0x1FFF] }
func (m *uxrom) PPUWrite(addr uint16, val uint8) { m.cart.CHRRAM[addr&0x1FFF] = val }
