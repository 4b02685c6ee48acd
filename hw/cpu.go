package hw

import (
	"io"

	"nescore/emu/log"
	"nescore/hw/hwio"
)

// Locations reserved for vector pointers.
const (
	NMIVector   = uint16(0xFFFA) // Non-Maskable Interrupt
	ResetVector = uint16(0xFFFC) // Reset
	IRQVector   = uint16(0xFFFE) // Interrupt Request
)

// Cycles taken to service an interrupt.
const interruptCycles = 7

type CPU struct {
	Bus hwio.BankIO8

	Cycles int64 // CPU cycles

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	// interrupt lines
	nmi bool // edge-triggered, latched until serviced
	irq bool // level-held

	// cycles added to the next instruction (OAM DMA).
	stall int

	// Non-nil when execution tracing is enabled.
	tracer *tracer
}

// NewCPU creates a new CPU at power-up state, reading and writing memory
// through bus.
func NewCPU(bus hwio.BankIO8) *CPU {
	return &CPU{
		Bus: bus,
		SP:  0xFD,
		P:   Interrupt | Unused,
	}
}

// Reset loads PC from the reset vector and puts the registers back in their
// power-up state.
func (c *CPU) Reset() {
	c.A = 0x00
	c.X = 0x00
	c.Y = 0x00
	c.SP = 0xFD
	c.P = Interrupt | Unused

	c.nmi = false
	c.irq = false
	c.stall = 0
	c.Cycles = 0

	c.PC = hwio.Read16(c.Bus, ResetVector)
	log.ModCPU.DebugZ("reset").Hex16("PC", c.PC).End()
}

// RequestNMI latches a non-maskable interrupt, serviced before the next
// instruction.
func (c *CPU) RequestNMI() {
	c.nmi = true
}

// RequestIRQ sets or clears the IRQ line level.
func (c *CPU) RequestIRQ(level bool) {
	c.irq = level
}

// Stall delays the CPU for the given number of cycles. The cycles are
// accounted to the current (or next) instruction.
func (c *CPU) Stall(ncycles int) {
	c.stall += ncycles
}

// ExecuteInstruction services a pending interrupt or executes one
// instruction, and returns the number of CPU cycles it took.
func (c *CPU) ExecuteInstruction() (int, error) {
	var cycles int
	switch {
	case c.nmi:
		c.nmi = false
		c.interrupt(NMIVector)
		cycles = interruptCycles
	case c.irq && !c.P.I():
		c.interrupt(IRQVector)
		cycles = interruptCycles
	default:
		c.traceOp()

		opcode := c.Bus.Read8(c.PC)
		op := &ops[opcode]
		if op.exec == nil {
			log.ModCPU.WarnZ("unimplemented opcode").
				Hex16("PC", c.PC).
				Hex8("opcode", opcode).
				End()
			return 0, &UnimplementedOpcodeError{Opcode: opcode, PC: c.PC}
		}
		c.PC++
		oper := addrModes[op.mode].resolve(c)
		cycles = op.cycles + op.exec(c, oper)
	}

	cycles += c.stall
	c.stall = 0
	c.Cycles += int64(cycles)
	return cycles, nil
}

// interrupt pushes PC and status then jumps to the handler at vector.
func (c *CPU) interrupt(vector uint16) {
	prevpc := c.PC
	c.push16(c.PC)
	p := c.P
	p.writeBit(Break, false)
	p.writeBit(Unused, true)
	c.push8(uint8(p))
	c.P.writeBit(Interrupt, true)
	c.PC = hwio.Read16(c.Bus, vector)

	log.ModCPU.DebugZ("interrupt").
		Bool("nmi", vector == NMIVector).
		Hex16("from", prevpc).
		Hex16("to", c.PC).
		End()
}

func (c *CPU) Read8(addr uint16) uint8 {
	return c.Bus.Read8(addr)
}

func (c *CPU) Write8(addr uint16, val uint8) {
	c.Bus.Write8(addr, val)
}

/* stack operations */

func (c *CPU) push8(val uint8) {
	top := uint16(c.SP) + 0x0100
	c.Write8(top, val)
	c.SP -= 1
}

func (c *CPU) push16(val uint16) {
	c.push8(uint8(val >> 8))
	c.push8(uint8(val & 0xff))
}

func (c *CPU) pull8() uint8 {
	c.SP++
	top := uint16(c.SP) + 0x0100
	return c.Read8(top)
}

func (c *CPU) pull16() uint16 {
	lo := c.pull8()
	hi := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

/* tracing */

// SetTraceOutput enables the execution trace, one line per instruction. A
// nil writer disables tracing.
func (c *CPU) SetTraceOutput(w io.Writer) {
	if w == nil {
		c.tracer = nil
		return
	}
	c.tracer = &tracer{w: w, disasm: c.Disasm}
}

func (c *CPU) traceOp() {
	if c.tracer == nil {
		return
	}
	state := cpuState{
		A:     c.A,
		X:     c.X,
		Y:     c.Y,
		P:     c.P,
		SP:    c.SP,
		Clock: c.Cycles,
		PC:    c.PC,
	}
	if ppu := c.tracer.ppu; ppu != nil {
		state.PPUCycle = ppu.Cycle
		state.Scanline = ppu.Scanline
	}
	c.tracer.write(state)
}
