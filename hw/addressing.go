package hw

// addrMode is a 6502 addressing mode.
type addrMode uint8

const (
	imp addrMode = iota // Implied
	acc                 // Accumulator
	imm                 // Immediate
	zpg                 // Zero page
	zpx                 // Zero page,X
	zpy                 // Zero page,Y
	abs                 // Absolute
	abx                 // Absolute,X
	aby                 // Absolute,Y
	ind                 // Indirect (JMP only)
	izx                 // (Indirect,X)
	izy                 // (Indirect),Y
	rel                 // Relative
)

// operand is the result of the addressing mode resolution.
type operand struct {
	addr  uint16
	mode  addrMode
	cross bool // page boundary crossed while indexing
}

type addrModeDesc struct {
	nbytes  uint8 // operand size in bytes
	resolve func(c *CPU) operand
}

var addrModes = [...]addrModeDesc{
	imp: {0, func(c *CPU) operand { return operand{mode: imp} }},
	acc: {0, func(c *CPU) operand { return operand{mode: acc} }},
	imm: {1, (*CPU).imm},
	zpg: {1, (*CPU).zpg},
	zpx: {1, (*CPU).zpx},
	zpy: {1, (*CPU).zpy},
	abs: {2, (*CPU).abs},
	abx: {2, (*CPU).abx},
	aby: {2, (*CPU).aby},
	ind: {2, (*CPU).ind},
	izx: {1, (*CPU).izx},
	izy: {1, (*CPU).izy},
	rel: {1, (*CPU).rel},
}

func pagecrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// fetch8 reads the byte at PC and increments PC.
func (c *CPU) fetch8() uint8 {
	val := c.Read8(c.PC)
	c.PC++
	return val
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// zpread16 reads a 16-bit pointer in zero page, wrapping around.
func (c *CPU) zpread16(ptr uint8) uint16 {
	lo := c.Read8(uint16(ptr))
	hi := c.Read8(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) imm() operand {
	oper := operand{addr: c.PC, mode: imm}
	c.PC++
	return oper
}

func (c *CPU) zpg() operand {
	return operand{addr: uint16(c.fetch8()), mode: zpg}
}

func (c *CPU) zpx() operand {
	return operand{addr: uint16(c.fetch8() + c.X), mode: zpx}
}

func (c *CPU) zpy() operand {
	return operand{addr: uint16(c.fetch8() + c.Y), mode: zpy}
}

func (c *CPU) abs() operand {
	return operand{addr: c.fetch16(), mode: abs}
}

func (c *CPU) abx() operand {
	base := c.fetch16()
	addr := base + uint16(c.X)
	return operand{addr: addr, mode: abx, cross: pagecrossed(base, addr)}
}

func (c *CPU) aby() operand {
	base := c.fetch16()
	addr := base + uint16(c.Y)
	return operand{addr: addr, mode: aby, cross: pagecrossed(base, addr)}
}

// ind reproduces the 6502 bug: if the pointer low byte is $FF, the high byte
// is fetched from the start of the same page.
func (c *CPU) ind() operand {
	ptr := c.fetch16()
	lo := c.Read8(ptr)
	hi := c.Read8(ptr&0xFF00 | uint16(uint8(ptr)+1))
	return operand{addr: uint16(hi)<<8 | uint16(lo), mode: ind}
}

func (c *CPU) izx() operand {
	ptr := c.fetch8() + c.X
	return operand{addr: c.zpread16(ptr), mode: izx}
}

func (c *CPU) izy() operand {
	base := c.zpread16(c.fetch8())
	addr := base + uint16(c.Y)
	return operand{addr: addr, mode: izy, cross: pagecrossed(base, addr)}
}

// rel resolves the branch target. cross reports whether the target is on
// another page than the next instruction.
func (c *CPU) rel() operand {
	off := int8(c.fetch8())
	addr := uint16(int(c.PC) + int(off))
	return operand{addr: addr, mode: rel, cross: pagecrossed(c.PC, addr)}
}
