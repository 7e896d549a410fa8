package gameboy

import (
	"fmt"

	"github.com/thelolagemann/goboy/internal/cpu"
	"github.com/thelolagemann/goboy/pkg/log"
)

// FormatTrace renders t as a single line:
//
//	PC  MNEMONIC  (OP OP+1 OP+2)  A B C D H L  ZNHC
func FormatTrace(t cpu.Trace) string {
	var b [3]uint8
	copy(b[:], t.Bytes)

	r := t.Registers
	flags := []byte("----")
	for i, c := range "ZNHC" {
		if r.F&(0x80>>i) != 0 {
			flags[i] = byte(c)
		}
	}

	return fmt.Sprintf("%04X  %-12s (%02X %02X %02X)  A:%02X B:%02X C:%02X D:%02X H:%02X L:%02X  %s",
		t.PC, t.Instruction, b[0], b[1], b[2],
		r.A, r.B, r.C, r.D, r.H, r.L, string(flags))
}

// NewTracer returns a tracer that writes every executed instruction
// to l at debug level.
func NewTracer(l log.Logger) func(cpu.Trace) {
	return func(t cpu.Trace) {
		l.Debugf("%s", FormatTrace(t))
	}
}
