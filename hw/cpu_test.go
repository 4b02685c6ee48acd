package hw

import (
	"errors"
	"testing"
)

func TestPString(t *testing.T) {
	p := P(0b00110100)
	if got := p.String(); got != "nvUBdIzc" {
		t.Errorf("got P = %s, want %s", got, "nvUBdIzc")
	}
	p = P(0b00000100)
	if p.String() != "nvubdIzc" {
		t.Errorf("got P = %s, want %s", p.String(), "nvubdIzc")
	}
}

func TestPflags(t *testing.T) {
	var p P

	p.checkNZ(0xff)
	if !p.N() || p.Z() {
		t.Errorf("checkNZ(0xff): P = %s", p)
	}
	p.checkNZ(0)
	if p.N() || !p.Z() {
		t.Errorf("checkNZ(0): P = %s", p)
	}

	// 0x50+0x50 = 0xA0: signed overflow, no carry.
	p.checkCV(0x50, 0x50, 0xA0)
	if !p.V() || p.C() {
		t.Errorf("checkCV(0x50, 0x50): P = %s", p)
	}
	// 0xFF+0x01 = 0x100: carry, no signed overflow.
	p.checkCV(0xFF, 0x01, 0x100)
	if p.V() || !p.C() {
		t.Errorf("checkCV(0xff, 0x01): P = %s", p)
	}
}

func TestReset(t *testing.T) {
	cpu, _ := loadCPUWith(t, `FFFC: 34 12`)
	if cpu.PC != 0x1234 {
		t.Errorf("PC = $%04X, want $1234", cpu.PC)
	}
	if cpu.SP != 0xFD {
		t.Errorf("SP = $%02X, want $FD", cpu.SP)
	}
	if cpu.P != Interrupt|Unused {
		t.Errorf("P = %s, want %s", cpu.P, Interrupt|Unused)
	}
}

func TestLDA(t *testing.T) {
	t.Run("immediate", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `8000: A9 42`)
		runAndCheckState(t, cpu, 1,
			"A", uint8(0x42),
			"PC", uint16(0x8002),
			"Pnz", 0,
			"cycles", 2,
		)
	})
	t.Run("negative", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `8000: A9 80`)
		runAndCheckState(t, cpu, 1,
			"A", uint8(0x80),
			"Pn", 1,
			"Pz", 0,
		)
	})
	t.Run("absolute,X page cross", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `
8000: A2 FF BD 01 80
8100: 77`)
		runAndCheckState(t, cpu, 2,
			"A", uint8(0x77),
			"X", uint8(0xFF),
			"cycles", 2+5,
		)
	})
	t.Run("absolute,X no page cross", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `
8000: A2 01 BD 00 90
9001: 66`)
		runAndCheckState(t, cpu, 2,
			"A", uint8(0x66),
			"cycles", 2+4,
		)
	})
	t.Run("(indirect),Y", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `
0010: F0 02
0300: 99
8000: A0 10 B1 10`)
		runAndCheckState(t, cpu, 2,
			"A", uint8(0x99),
			"cycles", 2+6,
		)
	})
}

func TestStores(t *testing.T) {
	// STA abs,X never takes the page crossing penalty.
	cpu, _ := loadCPUWith(t, `8000: A9 5A A2 FF 9D 01 02 85 10`)
	runAndCheckState(t, cpu, 4,
		"mem", `
0300: 5A
0010: 5A`,
		"cycles", 2+2+5+3,
	)
}

func TestADC(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		a      uint8
		pnvzc  [4]int
		cycles int
	}{
		{"signed overflow", `8000: 18 A9 50 69 50`, 0xA0, [4]int{1, 1, 0, 0}, 6},
		{"carry out", `8000: 18 A9 FF 69 01`, 0x00, [4]int{0, 0, 1, 1}, 6},
		{"carry in", `8000: 38 A9 01 69 01`, 0x03, [4]int{0, 0, 0, 0}, 6},
		{"SBC borrow", `8000: 38 A9 50 E9 F0`, 0x60, [4]int{0, 0, 0, 0}, 6},
		{"SBC no borrow", `8000: 38 A9 50 E9 30`, 0x20, [4]int{0, 0, 0, 1}, 6},
		{"SBC overflow", `8000: 38 A9 50 E9 B0`, 0xA0, [4]int{1, 1, 0, 0}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu, _ := loadCPUWith(t, tt.code)
			runAndCheckState(t, cpu, 3,
				"A", tt.a,
				"Pn", tt.pnvzc[0],
				"Pv", tt.pnvzc[1],
				"Pz", tt.pnvzc[2],
				"Pc", tt.pnvzc[3],
				"cycles", tt.cycles,
			)
		})
	}
}

func TestCompare(t *testing.T) {
	cpu, _ := loadCPUWith(t, `8000: A9 40 C9 40 C9 41 C9 3F`)
	runAndCheckState(t, cpu, 2, "Pzc", 1, "Pn", 0)
	runAndCheckState(t, cpu, 1, "Pzc", 0, "Pn", 1)
	runAndCheckState(t, cpu, 1, "Pz", 0, "Pc", 1)
}

func TestShifts(t *testing.T) {
	t.Run("ASL accumulator", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `8000: A9 81 0A`)
		runAndCheckState(t, cpu, 2,
			"A", uint8(0x02),
			"Pc", 1,
			"cycles", 4,
		)
	})
	t.Run("ROR memory", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `
0020: 01
8000: 38 66 20`)
		runAndCheckState(t, cpu, 2,
			"mem", `0020: 80`,
			"Pc", 1,
			"Pn", 1,
			"cycles", 2+5,
		)
	})
	t.Run("INC/DEC wrap", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `
0020: FF
8000: E6 20 C6 21`)
		runAndCheckState(t, cpu, 2,
			"mem", `0020: 00 FF`,
			"Pn", 1,
			"Pz", 0,
		)
	})
}

func TestBranches(t *testing.T) {
	t.Run("not taken", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `8000: A2 00 D0 02`)
		runAndCheckState(t, cpu, 2,
			"PC", uint16(0x8004),
			"cycles", 2+2,
		)
	})
	t.Run("taken", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `8000: A2 01 D0 02`)
		runAndCheckState(t, cpu, 2,
			"PC", uint16(0x8006),
			"cycles", 2+3,
		)
	})
	t.Run("taken backward", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `8000: A2 01 D0 FC`)
		runAndCheckState(t, cpu, 2,
			"PC", uint16(0x8000),
			"cycles", 2+3,
		)
	})
	t.Run("taken page cross", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, `
80F0: A2 01 D0 20
FFFC: F0 80`)
		runAndCheckState(t, cpu, 2,
			"PC", uint16(0x8114),
			"cycles", 2+4,
		)
	})
}

func TestJMPIndirectBug(t *testing.T) {
	// The high byte of the target is fetched from $0200, not $0300.
	cpu, _ := loadCPUWith(t, `
0200: 12
02FF: 34
0300: 56
8000: 6C FF 02`)
	runAndCheckState(t, cpu, 1,
		"PC", uint16(0x1234),
		"cycles", 5,
	)
}

func TestJSRRTS(t *testing.T) {
	cpu, _ := loadCPUWith(t, `
8000: 20 00 90
9000: 60`)
	runAndCheckState(t, cpu, 1,
		"PC", uint16(0x9000),
		"SP", uint8(0xFB),
		"mem", `01FC: 02 80`,
		"cycles", 6,
	)
	runAndCheckState(t, cpu, 1,
		"PC", uint16(0x8003),
		"SP", uint8(0xFD),
		"cycles", 12,
	)
}

func TestBRKRTI(t *testing.T) {
	cpu, _ := loadCPUWith(t, `
8000: 00 EA
9000: 40
FFFE: 00 90`)
	runAndCheckState(t, cpu, 1,
		"PC", uint16(0x9000),
		"SP", uint8(0xFA),
		"Pi", 1,
		"mem", `01FB: 34 02 80`,
		"cycles", 7,
	)
	runAndCheckState(t, cpu, 1,
		"PC", uint16(0x8002),
		"SP", uint8(0xFD),
		"P", uint8(0x24),
		"cycles", 13,
	)
}

func TestPHPPLP(t *testing.T) {
	// PHP pushes B and U set, PLP ignores B.
	cpu, _ := loadCPUWith(t, `8000: 38 08 28`)
	runAndCheckState(t, cpu, 2,
		"mem", `01FD: 35`,
		"SP", uint8(0xFC),
	)
	runAndCheckState(t, cpu, 1,
		"P", uint8(0x25),
		"SP", uint8(0xFD),
		"cycles", 2+3+4,
	)
}

func TestInterrupts(t *testing.T) {
	const dump = `
8000: 58 EA EA
A000: EA
B000: EA
FFFA: 00 A0
FFFE: 00 B0`

	t.Run("NMI preempts IRQ", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, dump)
		runAndCheckState(t, cpu, 1, "Pi", 0) // CLI

		cpu.RequestIRQ(true)
		cpu.RequestNMI()
		runAndCheckState(t, cpu, 1,
			"PC", uint16(0xA000),
			"Pi", 1,
			"mem", `01FB: 20 01 80`,
			"cycles", 2+7,
		)

		// The IRQ is now masked, the NMI handler runs.
		runAndCheckState(t, cpu, 1, "PC", uint16(0xA001))
	})

	t.Run("IRQ masked", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, dump)
		cpu.RequestIRQ(true)
		runAndCheckState(t, cpu, 1, "PC", uint16(0x8001))
		runAndCheckState(t, cpu, 1,
			"PC", uint16(0xB000),
			"cycles", 2+7,
		)
	})

	t.Run("IRQ line released", func(t *testing.T) {
		cpu, _ := loadCPUWith(t, dump)
		runAndCheckState(t, cpu, 1)
		cpu.RequestIRQ(true)
		cpu.RequestIRQ(false)
		runAndCheckState(t, cpu, 1, "PC", uint16(0x8002))
	})
}

func TestStall(t *testing.T) {
	cpu, _ := loadCPUWith(t, `8000: EA`)
	cpu.Stall(513)
	cycles, err := cpu.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	if cycles != 515 {
		t.Errorf("cycles = %d, want 515", cycles)
	}
}

func TestUnimplementedOpcode(t *testing.T) {
	cpu, _ := loadCPUWith(t, `8000: EA 02`)
	runAndCheckState(t, cpu, 1)

	_, err := cpu.ExecuteInstruction()
	var operr *UnimplementedOpcodeError
	if !errors.As(err, &operr) {
		t.Fatalf("ExecuteInstruction() error = %v, want UnimplementedOpcodeError", err)
	}
	if operr.Opcode != 0x02 || operr.PC != 0x8001 {
		t.Errorf("got opcode=$%02X PC=$%04X, want opcode=$02 PC=$8001", operr.Opcode, operr.PC)
	}
	if got, want := err.Error(), "unimplemented opcode $02 at $8001"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	// PC doesn't move past the faulty opcode.
	if cpu.PC != 0x8001 {
		t.Errorf("PC = $%04X, want $8001", cpu.PC)
	}
}

func TestOfficialOpcodes(t *testing.T) {
	n := 0
	for opcode, op := range ops {
		if op.exec == nil {
			continue
		}
		n++
		if addrModes[op.mode].resolve == nil {
			t.Errorf("opcode %02x: no addressing mode", opcode)
		}
		if op.cycles < 2 {
			t.Errorf("opcode %02x: %d cycles", opcode, op.cycles)
		}
	}
	if n != 151 {
		t.Errorf("%d opcodes implemented, want 151", n)
	}
}

func TestDisasm(t *testing.T) {
	cpu, _ := loadCPUWith(t, `
8000: A9 42 8D 00 20 D0 FE 02 B1 10 6C FF 02`)

	tests := []struct {
		pc   uint16
		want string
	}{
		{0x8000, "LDA #$42"},
		{0x8002, "STA PpuControl_2000"},
		{0x8005, "BNE $8005"},
		{0x8007, "??? "},
		{0x8008, "LDA ($10),Y"},
		{0x800A, "JMP ($02FF)"},
	}
	for _, tt := range tests {
		op := cpu.Disasm(tt.pc)
		if got := op.Opcode + " " + op.Oper; got != tt.want {
			t.Errorf("Disasm($%04X) = %q, want %q", tt.pc, got, tt.want)
		}
	}
}
