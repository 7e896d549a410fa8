package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownInstruction is returned when an opcode has no
	// instruction mapped to it.
	ErrUnknownInstruction = errors.New("unknown instruction")
	// ErrUnsupportedAddressingMode is returned when an instruction
	// carries an addressing mode the operand fetch does not handle.
	ErrUnsupportedAddressingMode = errors.New("unsupported addressing mode")
	// ErrInvalidCBOperation is returned when a CB prefixed opcode
	// decodes to an operation outside of the CB groups.
	ErrInvalidCBOperation = errors.New("invalid CB operation")
	// ErrNotImplemented is returned by instructions that decode but
	// are not emulated, such as STOP.
	ErrNotImplemented = errors.New("instruction not implemented")
)

// Fault is returned by Step when an instruction could not be
// executed. It records where the CPU was and what it was running.
type Fault struct {
	PC          uint16
	Opcode      uint8
	Instruction Instruction
	Err         error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("cpu: %s at 0x%04X (opcode 0x%02X): %v", f.Instruction, f.PC, f.Opcode, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
