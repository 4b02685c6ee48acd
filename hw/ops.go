package hw

import "nescore/hw/hwio"

// Each operation returns the number of cycles to add to the opcode base
// cycle count. Only loads, arithmetic/logical operations and taken branches
// can take extra cycles; stores and read-modify-write operations always take
// their base cycle count.

/* load/store */

func LDA(c *CPU, oper operand) int {
	c.A = c.Read8(oper.addr)
	c.P.checkNZ(c.A)
	return b2i(oper.cross)
}

func LDX(c *CPU, oper operand) int {
	c.X = c.Read8(oper.addr)
	c.P.checkNZ(c.X)
	return b2i(oper.cross)
}

func LDY(c *CPU, oper operand) int {
	c.Y = c.Read8(oper.addr)
	c.P.checkNZ(c.Y)
	return b2i(oper.cross)
}

func STA(c *CPU, oper operand) int {
	c.Write8(oper.addr, c.A)
	return 0
}

func STX(c *CPU, oper operand) int {
	c.Write8(oper.addr, c.X)
	return 0
}

func STY(c *CPU, oper operand) int {
	c.Write8(oper.addr, c.Y)
	return 0
}

/* transfers */

func TAX(c *CPU, _ operand) int {
	c.X = c.A
	c.P.checkNZ(c.X)
	return 0
}

func TAY(c *CPU, _ operand) int {
	c.Y = c.A
	c.P.checkNZ(c.Y)
	return 0
}

func TXA(c *CPU, _ operand) int {
	c.A = c.X
	c.P.checkNZ(c.A)
	return 0
}

func TYA(c *CPU, _ operand) int {
	c.A = c.Y
	c.P.checkNZ(c.A)
	return 0
}

func TSX(c *CPU, _ operand) int {
	c.X = c.SP
	c.P.checkNZ(c.X)
	return 0
}

func TXS(c *CPU, _ operand) int {
	c.SP = c.X
	return 0
}

/* stack */

func PHA(c *CPU, _ operand) int {
	c.push8(c.A)
	return 0
}

// PHP pushes the status with B and U set, the live status is unchanged.
func PHP(c *CPU, _ operand) int {
	c.push8(uint8(c.P | Break | Unused))
	return 0
}

func PLA(c *CPU, _ operand) int {
	c.A = c.pull8()
	c.P.checkNZ(c.A)
	return 0
}

func PLP(c *CPU, _ operand) int {
	c.P = P(c.pull8())&^Break | Unused
	return 0
}

/* logical */

func AND(c *CPU, oper operand) int {
	c.A &= c.Read8(oper.addr)
	c.P.checkNZ(c.A)
	return b2i(oper.cross)
}

func EOR(c *CPU, oper operand) int {
	c.A ^= c.Read8(oper.addr)
	c.P.checkNZ(c.A)
	return b2i(oper.cross)
}

func ORA(c *CPU, oper operand) int {
	c.A |= c.Read8(oper.addr)
	c.P.checkNZ(c.A)
	return b2i(oper.cross)
}

func BIT(c *CPU, oper operand) int {
	val := c.Read8(oper.addr)
	c.P.writeBit(Zero, c.A&val == 0)
	c.P.writeBit(Negative, val&0x80 != 0)
	c.P.writeBit(Overflow, val&0x40 != 0)
	return 0
}

/* arithmetic */

func (c *CPU) add(val uint8) {
	sum := uint16(c.A) + uint16(val) + uint16(b2u8(c.P.C()))
	c.P.checkCV(c.A, val, sum)
	c.A = uint8(sum)
	c.P.checkNZ(c.A)
}

// ADC and SBC ignore the decimal flag, the NES 6502 has no decimal mode.
func ADC(c *CPU, oper operand) int {
	c.add(c.Read8(oper.addr))
	return b2i(oper.cross)
}

func SBC(c *CPU, oper operand) int {
	c.add(c.Read8(oper.addr) ^ 0xFF)
	return b2i(oper.cross)
}

func (c *CPU) compare(reg, val uint8) {
	c.P.writeBit(Carry, reg >= val)
	c.P.checkNZ(reg - val)
}

func CMP(c *CPU, oper operand) int {
	c.compare(c.A, c.Read8(oper.addr))
	return b2i(oper.cross)
}

func CPX(c *CPU, oper operand) int {
	c.compare(c.X, c.Read8(oper.addr))
	return 0
}

func CPY(c *CPU, oper operand) int {
	c.compare(c.Y, c.Read8(oper.addr))
	return 0
}

/* increments/decrements */

func INC(c *CPU, oper operand) int {
	val := c.Read8(oper.addr) + 1
	c.Write8(oper.addr, val)
	c.P.checkNZ(val)
	return 0
}

func DEC(c *CPU, oper operand) int {
	val := c.Read8(oper.addr) - 1
	c.Write8(oper.addr, val)
	c.P.checkNZ(val)
	return 0
}

func INX(c *CPU, _ operand) int {
	c.X++
	c.P.checkNZ(c.X)
	return 0
}

func INY(c *CPU, _ operand) int {
	c.Y++
	c.P.checkNZ(c.Y)
	return 0
}

func DEX(c *CPU, _ operand) int {
	c.X--
	c.P.checkNZ(c.X)
	return 0
}

func DEY(c *CPU, _ operand) int {
	c.Y--
	c.P.checkNZ(c.Y)
	return 0
}

/* shifts/rotates */

// rmw applies f to the accumulator or to memory, depending on the
// addressing mode.
func (c *CPU) rmw(oper operand, f func(uint8) uint8) {
	if oper.mode == acc {
		c.A = f(c.A)
		c.P.checkNZ(c.A)
		return
	}
	val := f(c.Read8(oper.addr))
	c.Write8(oper.addr, val)
	c.P.checkNZ(val)
}

func ASL(c *CPU, oper operand) int {
	c.rmw(oper, func(val uint8) uint8 {
		c.P.writeBit(Carry, val&0x80 != 0)
		return val << 1
	})
	return 0
}

func LSR(c *CPU, oper operand) int {
	c.rmw(oper, func(val uint8) uint8 {
		c.P.writeBit(Carry, val&0x01 != 0)
		return val >> 1
	})
	return 0
}

func ROL(c *CPU, oper operand) int {
	c.rmw(oper, func(val uint8) uint8 {
		carry := b2u8(c.P.C())
		c.P.writeBit(Carry, val&0x80 != 0)
		return val<<1 | carry
	})
	return 0
}

func ROR(c *CPU, oper operand) int {
	c.rmw(oper, func(val uint8) uint8 {
		carry := b2u8(c.P.C())
		c.P.writeBit(Carry, val&0x01 != 0)
		return val>>1 | carry<<7
	})
	return 0
}

/* jumps/calls */

func JMP(c *CPU, oper operand) int {
	c.PC = oper.addr
	return 0
}

// JSR pushes the address of its last operand byte.
func JSR(c *CPU, oper operand) int {
	c.push16(c.PC - 1)
	c.PC = oper.addr
	return 0
}

func RTS(c *CPU, _ operand) int {
	c.PC = c.pull16() + 1
	return 0
}

// BRK pushes PC+1, skipping the padding byte that follows the opcode.
func BRK(c *CPU, _ operand) int {
	c.push16(c.PC + 1)
	c.push8(uint8(c.P | Break | Unused))
	c.P.writeBit(Interrupt, true)
	c.PC = hwio.Read16(c.Bus, IRQVector)
	return 0
}

func RTI(c *CPU, _ operand) int {
	c.P = P(c.pull8())&^Break | Unused
	c.PC = c.pull16()
	return 0
}

/* branches */

func branch(c *CPU, oper operand, taken bool) int {
	if !taken {
		return 0
	}
	c.PC = oper.addr
	return 1 + b2i(oper.cross)
}

func BCC(c *CPU, oper operand) int { return branch(c, oper, !c.P.C()) }
func BCS(c *CPU, oper operand) int { return branch(c, oper, c.P.C()) }
func BNE(c *CPU, oper operand) int { return branch(c, oper, !c.P.Z()) }
func BEQ(c *CPU, oper operand) int { return branch(c, oper, c.P.Z()) }
func BPL(c *CPU, oper operand) int { return branch(c, oper, !c.P.N()) }
func BMI(c *CPU, oper operand) int { return branch(c, oper, c.P.N()) }
func BVC(c *CPU, oper operand) int { return branch(c, oper, !c.P.V()) }
func BVS(c *CPU, oper operand) int { return branch(c, oper, c.P.V()) }

/* flags */

func CLC(c *CPU, _ operand) int { c.P.writeBit(Carry, false); return 0 }
func CLD(c *CPU, _ operand) int { c.P.writeBit(Decimal, false); return 0 }
func CLI(c *CPU, _ operand) int { c.P.writeBit(Interrupt, false); return 0 }
func CLV(c *CPU, _ operand) int { c.P.writeBit(Overflow, false); return 0 }
func SEC(c *CPU, _ operand) int { c.P.writeBit(Carry, true); return 0 }
func SED(c *CPU, _ operand) int { c.P.writeBit(Decimal, true); return 0 }
func SEI(c *CPU, _ operand) int { c.P.writeBit(Interrupt, true); return 0 }

func NOP(c *CPU, _ operand) int { return 0 }
