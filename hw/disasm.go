package hw

import (
	"fmt"

	"nescore/hw/hwio"
)

// Disasm disassembles the instruction at pc, without side effects on the bus.
func (c *CPU) Disasm(pc uint16) DisasmOp {
	peek := func(addr uint16) uint8 { return hwio.Peek8(c.Bus, addr) }

	opcode := peek(pc)
	def := &ops[opcode]
	if def.exec == nil {
		return DisasmOp{
			PC:     pc,
			Buf:    []byte{opcode},
			Opcode: "???",
		}
	}

	nbytes := addrModes[def.mode].nbytes
	buf := make([]byte, 1+nbytes)
	for i := range buf {
		buf[i] = peek(pc + uint16(i))
	}
	var oper16 uint16
	if nbytes == 2 {
		oper16 = uint16(buf[2])<<8 | uint16(buf[1])
	}

	var oper string
	switch def.mode {
	case acc:
		oper = "A"
	case imm:
		oper = fmt.Sprintf("#$%02X", buf[1])
	case zpg:
		oper = fmt.Sprintf("$%02X", buf[1])
	case zpx:
		oper = fmt.Sprintf("$%02X,X", buf[1])
	case zpy:
		oper = fmt.Sprintf("$%02X,Y", buf[1])
	case abs:
		oper = formatAddr(oper16)
	case abx:
		oper = formatAddr(oper16) + ",X"
	case aby:
		oper = formatAddr(oper16) + ",Y"
	case ind:
		oper = fmt.Sprintf("($%04X)", oper16)
	case izx:
		oper = fmt.Sprintf("($%02X,X)", buf[1])
	case izy:
		oper = fmt.Sprintf("($%02X),Y", buf[1])
	case rel:
		next := pc + 2
		oper = fmt.Sprintf("$%04X", uint16(int(next)+int(int8(buf[1]))))
	}

	return DisasmOp{
		PC:     pc,
		Buf:    buf,
		Opcode: def.name,
		Oper:   oper,
	}
}

// DisasmOp is a disassembled instruction.
type DisasmOp struct {
	Opcode string
	Oper   string
	Buf    []byte // instruction bytes
	PC     uint16
}

// Width of the address and instruction bytes column.
const disasmBytesWidth = 16

// Bytes formats the instruction on (at least) 48 columns:
//
//	C000  4C F5 C5  JMP $C5F5
func (d DisasmOp) Bytes() []byte {
	return d.appendTo(make([]byte, 0, 48))
}

func (d DisasmOp) appendTo(b []byte) []byte {
	start := len(b)
	b = appendHex16(b, d.PC)
	b = append(b, ' ', ' ')
	for _, v := range d.Buf {
		b = appendHex8(b, v)
		b = append(b, ' ')
	}
	b = appendSpaces(b, start+disasmBytesWidth-len(b))

	b = append(b, d.Opcode...)
	b = append(b, ' ')
	b = append(b, d.Oper...)
	if n := len(b) - start; n > 48 {
		return append(b, ' ')
	}
	return appendSpaces(b, start+48-len(b))
}

// Well-known I/O registers are shown by name.
var ioRegNames = map[uint16]string{
	0x2000: "PpuControl_2000",
	0x2001: "PpuMask_2001",
	0x2002: "PpuStatus_2002",
	0x2003: "OamAddr_2003",
	0x2004: "OamData_2004",
	0x2005: "PpuScroll_2005",
	0x2006: "PpuAddr_2006",
	0x2007: "PpuData_2007",
	0x4014: "SpriteDma_4014",
	0x4016: "Ctrl1_4016",
}

func formatAddr(addr uint16) string {
	if name, ok := ioRegNames[addr]; ok {
		return name
	}
	return fmt.Sprintf("$%04X", addr)
}
