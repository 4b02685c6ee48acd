package mappers

var NROM = MapperDesc{
	Name: "NROM",
	New:  newNROM,
}

// NROM has no bank switching. 16KB PRG ROM is mirrored at $C000.
type nrom struct {
	base
	prgmask uint16
}

func newNROM(cart *Cartridge) Mapper {
	size := min(len(cart.PRGROM), 0x8000)
	return &nrom{
		base:    newbase(cart),
		prgmask: uint16(size - 1),
	}
}

func (m *nrom) Reset() {}

func (m *nrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		return m.cart.PRGROM[(addr-0x8000)&m.prgmask]
	case addr >= 0x6000:
		return m.readPRGRAM(addr)
	}
	return 0
}

func (m *nrom) CPUWrite(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.writePRGRAM(addr, val)
	}
}
