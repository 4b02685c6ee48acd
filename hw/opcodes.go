package hw

// opdef describes how an opcode executes.
type opdef struct {
	name   string
	mode   addrMode
	cycles int // base cycle count
	exec   func(c *CPU, oper operand) int
}

// ops is the opcode table. Only official opcodes are implemented, the
// other entries are zero.
var ops = [256]opdef{
	0x00: {"BRK", imp, 7, BRK},
	0x01: {"ORA", izx, 6, ORA},
	0x05: {"ORA", zpg, 3, ORA},
	0x06: {"ASL", zpg, 5, ASL},
	0x08: {"PHP", imp, 3, PHP},
	0x09: {"ORA", imm, 2, ORA},
	0x0A: {"ASL", acc, 2, ASL},
	0x0D: {"ORA", abs, 4, ORA},
	0x0E: {"ASL", abs, 6, ASL},
	0x10: {"BPL", rel, 2, BPL},
	0x11: {"ORA", izy, 5, ORA},
	0x15: {"ORA", zpx, 4, ORA},
	0x16: {"ASL", zpx, 6, ASL},
	0x18: {"CLC", imp, 2, CLC},
	0x19: {"ORA", aby, 4, ORA},
	0x1D: {"ORA", abx, 4, ORA},
	0x1E: {"ASL", abx, 7, ASL},
	0x20: {"JSR", abs, 6, JSR},
	0x21: {"AND", izx, 6, AND},
	0x24: {"BIT", zpg, 3, BIT},
	0x25: {"AND", zpg, 3, AND},
	0x26: {"ROL", zpg, 5, ROL},
	0x28: {"PLP", imp, 4, PLP},
	0x29: {"AND", imm, 2, AND},
	0x2A: {"ROL", acc, 2, ROL},
	0x2C: {"BIT", abs, 4, BIT},
	0x2D: {"AND", abs, 4, AND},
	0x2E: {"ROL", abs, 6, ROL},
	0x30: {"BMI", rel, 2, BMI},
	0x31: {"AND", izy, 5, AND},
	0x35: {"AND", zpx, 4, AND},
	0x36: {"ROL", zpx, 6, ROL},
	0x38: {"SEC", imp, 2, SEC},
	0x39: {"AND", aby, 4, AND},
	0x3D: {"AND", abx, 4, AND},
	0x3E: {"ROL", abx, 7, ROL},
	0x40: {"RTI", imp, 6, RTI},
	0x41: {"EOR", izx, 6, EOR},
	0x45: {"EOR", zpg, 3, EOR},
	0x46: {"LSR", zpg, 5, LSR},
	0x48: {"PHA", imp, 3, PHA},
	0x49: {"EOR", imm, 2, EOR},
	0x4A: {"LSR", acc, 2, LSR},
	0x4C: {"JMP", abs, 3, JMP},
	0x4D: {"EOR", abs, 4, EOR},
	0x4E: {"LSR", abs, 6, LSR},
	0x50: {"BVC", rel, 2, BVC},
	0x51: {"EOR", izy, 5, EOR},
	0x55: {"EOR", zpx, 4, EOR},
	0x56: {"LSR", zpx, 6, LSR},
	0x58: {"CLI", imp, 2, CLI},
	0x59: {"EOR", aby, 4, EOR},
	0x5D: {"EOR", abx, 4, EOR},
	0x5E: {"LSR", abx, 7, LSR},
	0x60: {"RTS", imp, 6, RTS},
	0x61: {"ADC", izx, 6, ADC},
	0x65: {"ADC", zpg, 3, ADC},
	0x66: {"ROR", zpg, 5, ROR},
	0x68: {"PLA", imp, 4, PLA},
	0x69: {"ADC", imm, 2, ADC},
	0x6A: {"ROR", acc, 2, ROR},
	0x6C: {"JMP", ind, 5, JMP},
	0x6D: {"ADC", abs, 4, ADC},
	0x6E: {"ROR", abs, 6, ROR},
	0x70: {"BVS", rel, 2, BVS},
	0x71: {"ADC", izy, 5, ADC},
	0x75: {"ADC", zpx, 4, ADC},
	0x76: {"ROR", zpx, 6, ROR},
	0x78: {"SEI", imp, 2, SEI},
	0x79: {"ADC", aby, 4, ADC},
	0x7D: {"ADC", abx, 4, ADC},
	0x7E: {"ROR", abx, 7, ROR},
	0x81: {"STA", izx, 6, STA},
	0x84: {"STY", zpg, 3, STY},
	0x85: {"STA", zpg, 3, STA},
	0x86: {"STX", zpg, 3, STX},
	0x88: {"DEY", imp, 2, DEY},
	0x8A: {"TXA", imp, 2, TXA},
	0x8C: {"STY", abs, 4, STY},
	0x8D: {"STA", abs, 4, STA},
	0x8E: {"STX", abs, 4, STX},
	0x90: {"BCC", rel, 2, BCC},
	0x91: {"STA", izy, 6, STA},
	0x94: {"STY", zpx, 4, STY},
	0x95: {"STA", zpx, 4, STA},
	0x96: {"STX", zpy, 4, STX},
	0x98: {"TYA", imp, 2, TYA},
	0x99: {"STA", aby, 5, STA},
	0x9A: {"TXS", imp, 2, TXS},
	0x9D: {"STA", abx, 5, STA},
	0xA0: {"LDY", imm, 2, LDY},
	0xA1: {"LDA", izx, 6, LDA},
	0xA2: {"LDX", imm, 2, LDX},
	0xA4: {"LDY", zpg, 3, LDY},
	0xA5: {"LDA", zpg, 3, LDA},
	0xA6: {"LDX", zpg, 3, LDX},
	0xA8: {"TAY", imp, 2, TAY},
	0xA9: {"LDA", imm, 2, LDA},
	0xAA: {"TAX", imp, 2, TAX},
	0xAC: {"LDY", abs, 4, LDY},
	0xAD: {"LDA", abs, 4, LDA},
	0xAE: {"LDX", abs, 4, LDX},
	0xB0: {"BCS", rel, 2, BCS},
	0xB1: {"LDA", izy, 5, LDA},
	0xB4: {"LDY", zpx, 4, LDY},
	0xB5: {"LDA", zpx, 4, LDA},
	0xB6: {"LDX", zpy, 4, LDX},
	0xB8: {"CLV", imp, 2, CLV},
	0xB9: {"LDA", aby, 4, LDA},
	0xBA: {"TSX", imp, 2, TSX},
	0xBC: {"LDY", abx, 4, LDY},
	0xBD: {"LDA", abx, 4, LDA},
	0xBE: {"LDX", aby, 4, LDX},
	0xC0: {"CPY", imm, 2, CPY},
	0xC1: {"CMP", izx, 6, CMP},
	0xC4: {"CPY", zpg, 3, CPY},
	0xC5: {"CMP", zpg, 3, CMP},
	0xC6: {"DEC", zpg, 5, DEC},
	0xC8: {"INY", imp, 2, INY},
	0xC9: {"CMP", imm, 2, CMP},
	0xCA: {"DEX", imp, 2, DEX},
	0xCC: {"CPY", abs, 4, CPY},
	0xCD: {"CMP", abs, 4, CMP},
	0xCE: {"DEC", abs, 6, DEC},
	0xD0: {"BNE", rel, 2, BNE},
	0xD1: {"CMP", izy, 5, CMP},
	0xD5: {"CMP", zpx, 4, CMP},
	0xD6: {"DEC", zpx, 6, DEC},
	0xD8: {"CLD", imp, 2, CLD},
	0xD9: {"CMP", aby, 4, CMP},
	0xDD: {"CMP", abx, 4, CMP},
	0xDE: {"DEC", abx, 7, DEC},
	0xE0: {"CPX", imm, 2, CPX},
	0xE1: {"SBC", izx, 6, SBC},
	0xE4: {"CPX", zpg, 3, CPX},
	0xE5: {"SBC", zpg, 3, SBC},
	0xE6: {"INC", zpg, 5, INC},
	0xE8: {"INX", imp, 2, INX},
	0xE9: {"SBC", imm, 2, SBC},
	0xEA: {"NOP", imp, 2, NOP},
	0xEC: {"CPX", abs, 4, CPX},
	0xED: {"SBC", abs, 4, SBC},
	0xEE: {"INC", abs, 6, INC},
	0xF0: {"BEQ", rel, 2, BEQ},
	0xF1: {"SBC", izy, 5, SBC},
	0xF5: {"SBC", zpx, 4, SBC},
	0xF6: {"INC", zpx, 6, INC},
	0xF8: {"SED", imp, 2, SED},
	0xF9: {"SBC", aby, 4, SBC},
	0xFD: {"SBC", abx, 4, SBC},
	0xFE: {"INC", abx, 7, INC},
}
