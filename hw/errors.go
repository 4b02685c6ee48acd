package hw

import "fmt"

// UnimplementedOpcodeError is returned by the CPU when it fetches an opcode
// it can't execute. The CPU state is left untouched, PC still points at the
// faulty opcode.
type UnimplementedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode $%02X at $%04X", e.Opcode, e.PC)
}
