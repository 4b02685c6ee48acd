package hw

import (
	"fmt"
	"io"
)

// Width of the disassembly column of a trace line.
const traceDisasmWidth = 49

// cpuState is the CPU (and PPU) state shown on a trace line.
type cpuState struct {
	A, X, Y uint8
	P       P
	SP      uint8
	PC      uint16

	Clock    int64
	PPUCycle int
	Scanline int
}

// tracer writes one line per executed instruction, in the nestest log format:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 S:FD PPU:0  ,21  7
type tracer struct {
	disasm func(pc uint16) DisasmOp
	w      io.Writer
	ppu    *PPU // optional

	line []byte
}

func (t *tracer) write(s cpuState) {
	b := t.disasm(s.PC).appendTo(t.line[:0])
	b = appendSpaces(b, traceDisasmWidth-len(b))

	regs := [...]struct {
		name byte
		val  uint8
	}{
		{'A', s.A}, {'X', s.X}, {'Y', s.Y}, {'P', uint8(s.P)}, {'S', s.SP},
	}
	for _, r := range regs {
		b = append(b, r.name, ':')
		b = appendHex8(b, r.val)
		b = append(b, ' ')
	}

	// The pre-render line is shown as -1.
	scanline := s.Scanline
	if scanline == NumScanlines-1 {
		scanline = -1
	}
	b = fmt.Appendf(b, "PPU:%-3d,%-3d %d\n", scanline, s.PPUCycle, s.Clock)

	t.line = b
	t.w.Write(b)
}

func appendHex8(b []byte, v uint8) []byte {
	const hextable = "0123456789ABCDEF"
	return append(b, hextable[v>>4], hextable[v&0x0F])
}

func appendHex16(b []byte, v uint16) []byte {
	return appendHex8(appendHex8(b, uint8(v>>8)), uint8(v))
}

func appendSpaces(b []byte, n int) []byte {
	for range n {
		b = append(b, ' ')
	}
	return b
}
