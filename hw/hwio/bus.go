package hwio

// BankIO8 is implemented by anything that can be accessed 8 bits at a time on
// a 16-bit address bus.
type BankIO8 interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

// A Peeker can read memory without side effects (debugging/tracing).
type Peeker interface {
	Peek8(addr uint16) uint8
}

func Read16(b BankIO8, addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func Write16(b BankIO8, addr uint16, val uint16) {
	b.Write8(addr, uint8(val&0xff))
	b.Write8(addr+1, uint8(val>>8))
}

// Peek8 reads from b, without side effects if b implements Peeker.
func Peek8(b BankIO8, addr uint16) uint8 {
	if p, ok := b.(Peeker); ok {
		return p.Peek8(addr)
	}
	return b.Read8(addr)
}

// Mem is a flat 64KB memory, mostly useful for testing.
type Mem [0x10000]uint8

func (m *Mem) Read8(addr uint16) uint8       { return m[addr] }
func (m *Mem) Write8(addr uint16, val uint8) { m[addr] = val }
