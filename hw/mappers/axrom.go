package mappers

import (
	"nescore/ines"
)

var AxROM = MapperDesc{
	Name: "AxROM",
	New:  newAxROM,
}

type axrom struct {
	base

	prgbank uint8
	prgoff  int
}

func newAxROM(cart *Cartridge) Mapper {
	return &axrom{base: newbase(cart)}
}

func (m *axrom) Reset() {
	m.prgbank = 0
	m.prgoff = 0
	m.cart.SetMirroring(ines.SingleScreenA)
}

func (m *axrom) CPURead(addr uint16) uint8 {
	if addr >= 0x8000 {
		return m.cart.PRGROM[(m.prgoff+int(addr-0x8000))%len(m.cart.PRGROM)]
	}
	return 0
}

func (m *axrom) CPUWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		return
	}

	// 7  bit  0
	// ---- ----
	// xxxM xPPP
	//    |  |||
	//    |  +++- Select 32 KB PRG ROM bank for CPU $8000-$FFFF
	//    +------ Select 1 KB VRAM page for all 4 nametables
	m.prgbank = val & 0x7
	m.prgoff = m.prgOffset(0x8000, int(m.prgbank))

	if val&0x10 == 0x10 {
		m.cart.SetMirroring(ines.SingleScreenB)
	} else {
		m.cart.SetMirroring(ines.SingleScreenA)
	}
}
