// Package tests provides helpers shared by the emulator tests.
package tests

import (
	"encoding/binary"
	"testing"
)

const (
	prgBankSize = 0x4000
	chrBankSize = 0x2000
)

// A RomBuilder builds iNES images in memory.
//
// Unless overwritten, each 8KB chunk of PRG ROM is filled with its own 8KB
// bank index and each 1KB chunk of CHR ROM with its own 1KB bank index, so
// that tests can identify which bank is mapped where.
type RomBuilder struct {
	Mapper  uint16
	Flags6  uint8
	Flags7  uint8
	Trainer []byte
	PRG     []byte
	CHR     []byte
}

func NewRom(mapper uint16, prgBanks, chrBanks int) *RomBuilder {
	b := &RomBuilder{
		Mapper: mapper,
		PRG:    make([]byte, prgBanks*prgBankSize),
		CHR:    make([]byte, chrBanks*chrBankSize),
	}
	for i := range b.PRG {
		b.PRG[i] = byte(i / 0x2000)
	}
	for i := range b.CHR {
		b.CHR[i] = byte(i / 0x400)
	}
	return b
}

func (b *RomBuilder) Vertical() *RomBuilder {
	b.Flags6 |= 0x01
	return b
}

func (b *RomBuilder) Battery() *RomBuilder {
	b.Flags6 |= 0x02
	return b
}

func (b *RomBuilder) FourScreen() *RomBuilder {
	b.Flags6 |= 0x08
	return b
}

func (b *RomBuilder) WithTrainer() *RomBuilder {
	b.Flags6 |= 0x04
	b.Trainer = make([]byte, 512)
	return b
}

// prgOffset maps a CPU address onto the last 32KB of PRG ROM (or the single
// 16KB bank, mirrored), which is what every supported mapper shows at
// power-up in the $C000-$FFFF range.
func (b *RomBuilder) prgOffset(addr uint16) int {
	off := int(addr - 0x8000)
	if len(b.PRG) < 0x8000 {
		return off & (prgBankSize - 1)
	}
	return len(b.PRG) - 0x8000 + off
}

// Code writes code (or data) at the given CPU address.
func (b *RomBuilder) Code(addr uint16, code ...byte) *RomBuilder {
	off := b.prgOffset(addr)
	copy(b.PRG[off:], code)
	return b
}

func (b *RomBuilder) vector(addr, target uint16) *RomBuilder {
	binary.LittleEndian.PutUint16(b.PRG[b.prgOffset(addr):], target)
	return b
}

func (b *RomBuilder) ResetVector(target uint16) *RomBuilder { return b.vector(0xFFFC, target) }
func (b *RomBuilder) NMIVector(target uint16) *RomBuilder   { return b.vector(0xFFFA, target) }
func (b *RomBuilder) IRQVector(target uint16) *RomBuilder   { return b.vector(0xFFFE, target) }

// Bytes returns the iNES image.
func (b *RomBuilder) Bytes() []byte {
	buf := make([]byte, 0, 16+len(b.Trainer)+len(b.PRG)+len(b.CHR))
	buf = append(buf, 'N', 'E', 'S', 0x1A)
	buf = append(buf,
		byte(len(b.PRG)/prgBankSize),
		byte(len(b.CHR)/chrBankSize),
		b.Flags6|byte(b.Mapper&0x0F)<<4,
		b.Flags7|byte(b.Mapper&0xF0),
	)
	buf = append(buf, make([]byte, 8)...)
	buf = append(buf, b.Trainer...)
	buf = append(buf, b.PRG...)
	buf = append(buf, b.CHR...)
	return buf
}

// Check fails the test if err is not nil.
func Check(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatal(err)
	}
}
