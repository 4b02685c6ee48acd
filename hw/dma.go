package hw

import (
	"nescore/emu/log"
	"nescore/hw/hwio"
)

// Cycles the CPU is suspended during an OAM DMA transfer: 1 idle cycle then
// 256 read/write pairs, plus 1 alignment cycle when started on an odd cycle.
const oamDMACycles = 513

// oamDMA handles the DMA transfer of OAM (sprites attributes) to the PPU.
type oamDMA struct {
	OAMDMA hwio.Reg8

	cpu    *CPU
	cpuBus hwio.BankIO8
	ppu    *PPU

	// stall enables the CPU stall accounting.
	stall bool
}

func (dma *oamDMA) initBus(cpu *CPU, cpubus hwio.BankIO8, ppu *PPU) {
	dma.cpu = cpu
	dma.cpuBus = cpubus
	dma.ppu = ppu
	dma.OAMDMA = hwio.Reg8{
		Name:    "OAMDMA",
		Flags:   hwio.WriteOnlyFlag,
		WriteCb: dma.WriteOAMDMA,
	}
}

// WriteOAMDMA copies the 256 bytes of the CPU page val to OAM, starting at
// OAMADDR.
func (dma *oamDMA) WriteOAMDMA(_, val uint8) {
	page := uint16(val) << 8
	for i := range uint16(256) {
		dma.ppu.writeOAM(dma.cpuBus.Read8(page | i))
	}

	stall := 0
	if dma.stall && dma.cpu != nil {
		stall = oamDMACycles + int(dma.cpu.Cycles&1)
		dma.cpu.Stall(stall)
	}

	log.ModPPU.DebugZ("OAM DMA transfer").
		Hex8("page", val).
		Int("stall", stall).
		End()
}
