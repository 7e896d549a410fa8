package cpu

import (
	"errors"
	"testing"

	"github.com/thelolagemann/goboy/internal/interrupts"
	"github.com/thelolagemann/goboy/internal/scheduler"
	"github.com/thelolagemann/goboy/internal/types/registers"
)

var errTestBus = errors.New("test bus fault")

// testBus is a flat 64kB address space. Addresses for which fault
// returns true fail every access.
type testBus struct {
	mem   [0x10000]uint8
	fault func(addr uint16) bool
}

func (b *testBus) Read(addr uint16) (uint8, error) {
	if b.fault != nil && b.fault(addr) {
		return 0, errTestBus
	}
	return b.mem[addr], nil
}

func (b *testBus) Write(addr uint16, v uint8) error {
	if b.fault != nil && b.fault(addr) {
		return errTestBus
	}
	b.mem[addr] = v
	return nil
}

// newTestCPU returns a CPU in the post boot state, with program
// loaded at the entry point.
func newTestCPU(program ...uint8) (*CPU, *testBus, *scheduler.Scheduler) {
	bus := &testBus{}
	copy(bus.mem[0x0100:], program)
	s := scheduler.NewScheduler()
	irq := interrupts.NewService(registers.NewTable())
	return New(bus, s, irq), bus, s
}

// step runs a single step, failing the test on a fault, and returns
// the cycle units it took.
func step(t *testing.T, c *CPU) uint64 {
	t.Helper()
	start := c.s.Cycle()
	if err := c.Step(); err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	return c.s.Cycle() - start
}

func TestCPU_Reset(t *testing.T) {
	c, _, _ := newTestCPU()

	want := map[Reg]uint16{RegAF: 0x01B0, RegBC: 0x0013, RegDE: 0x00D8, RegHL: 0x014D, RegSP: 0xFFFE, RegPC: 0x0100}
	for reg, v := range want {
		if got := c.ReadPair(reg); got != v {
			t.Errorf("expected %s to be 0x%04X, got 0x%04X", reg, v, got)
		}
	}

	c.ResetCold()
	if c.A != 0x01 || c.F != 0 || c.SP != 0 || c.PC != 0x0100 {
		t.Errorf("unexpected cold state: %+v", c.Snapshot())
	}
}

func TestCPU_RegisterPairs(t *testing.T) {
	c, _, _ := newTestCPU()

	for _, reg := range []Reg{RegAF, RegBC, RegDE, RegHL, RegSP, RegPC} {
		for v := 0; v <= 0xFFFF; v++ {
			c.WritePair(reg, uint16(v))
			if got := c.ReadPair(reg); got != uint16(v) {
				t.Fatalf("expected %s to be 0x%04X, got 0x%04X", reg, v, got)
			}
		}
	}

	t.Run("halves", func(t *testing.T) {
		c.WritePair(RegBC, 0xBEEF)
		if c.B != 0xBE || c.C != 0xEF {
			t.Errorf("expected B=0xBE C=0xEF, got B=0x%02X C=0x%02X", c.B, c.C)
		}
		c.H, c.L = 0x12, 0x34
		if c.ReadPair(RegHL) != 0x1234 {
			t.Errorf("expected HL 0x1234, got 0x%04X", c.ReadPair(RegHL))
		}
	})
}

func TestCPU_Faults(t *testing.T) {
	t.Run("unknown instruction", func(t *testing.T) {
		c, _, _ := newTestCPU(0xD3)
		err := c.Step()
		if !errors.Is(err, ErrUnknownInstruction) {
			t.Fatalf("expected ErrUnknownInstruction, got %v", err)
		}
		var fault *Fault
		if !errors.As(err, &fault) {
			t.Fatalf("expected *Fault, got %T", err)
		}
		if fault.PC != 0x0100 || fault.Opcode != 0xD3 || fault.Instruction.Kind != KindNone {
			t.Errorf("unexpected fault details: %+v", fault)
		}
	})
	t.Run("unsupported addressing mode", func(t *testing.T) {
		c, _, _ := newTestCPU()
		c.instruction = Instruction{Kind: KindLD, Mode: Mode(0xFF)}
		if err := c.fetch(); !errors.Is(err, ErrUnsupportedAddressingMode) {
			t.Errorf("expected ErrUnsupportedAddressingMode, got %v", err)
		}
	})
	t.Run("stop", func(t *testing.T) {
		c, _, _ := newTestCPU(0x10, 0x00)
		if err := c.Step(); !errors.Is(err, ErrNotImplemented) {
			t.Errorf("expected ErrNotImplemented, got %v", err)
		}
	})
	t.Run("bus", func(t *testing.T) {
		// LD A,(0x8000)
		c, bus, _ := newTestCPU(0xFA, 0x00, 0x80)
		bus.fault = func(addr uint16) bool {
			return addr >= 0x8000 && addr <= 0x9FFF
		}
		err := c.Step()
		if !errors.Is(err, errTestBus) {
			t.Fatalf("expected bus fault, got %v", err)
		}
		var fault *Fault
		if errors.As(err, &fault) && fault.Instruction.Kind != KindLD {
			t.Errorf("expected fault in LD, got %s", fault.Instruction)
		}
	})
	t.Run("first bus fault kept", func(t *testing.T) {
		// PUSH BC with the stack in a faulting region
		c, bus, _ := newTestCPU(0xC5)
		bus.fault = func(addr uint16) bool {
			return addr >= 0xFFF0
		}
		c.SP = 0xFFFE
		err := c.Step()
		if !errors.Is(err, errTestBus) {
			t.Errorf("expected bus fault, got %v", err)
		}
	})
}

func TestCPU_Halt(t *testing.T) {
	c, _, s := newTestCPU(0x76, 0x00)
	step(t, c)

	if !c.Halted() {
		t.Fatalf("expected CPU to be halted")
	}
	pc := c.PC
	before := s.Cycle()
	for i := 0; i < 10; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("unexpected fault: %v", err)
		}
	}
	if c.PC != pc {
		t.Errorf("expected halted CPU not to execute, PC moved to 0x%04X", c.PC)
	}
	if s.Cycle()-before != 10 {
		t.Errorf("expected halted steps to let 10 cycles pass, got %d", s.Cycle()-before)
	}

	c.Wake()
	step(t, c)
	if c.PC != pc+1 {
		t.Errorf("expected woken CPU to execute NOP, PC 0x%04X", c.PC)
	}
}

func TestCPU_InterruptMasterEnable(t *testing.T) {
	t.Run("EI is delayed", func(t *testing.T) {
		c, _, _ := newTestCPU(0xFB, 0x00, 0x00)
		step(t, c)
		if c.IRQ.IME {
			t.Errorf("expected IME to be clear directly after EI")
		}
		step(t, c)
		if !c.IRQ.IME {
			t.Errorf("expected IME to be set after the following instruction")
		}
	})
	t.Run("DI after EI", func(t *testing.T) {
		c, _, _ := newTestCPU(0xFB, 0xF3, 0x00)
		step(t, c)
		step(t, c)
		step(t, c)
		if c.IRQ.IME {
			t.Errorf("expected DI to leave IME clear")
		}
		if c.s.Pending(scheduler.EIPending) {
			t.Errorf("expected no pending EI")
		}
	})
	t.Run("DI cancels pending EI", func(t *testing.T) {
		c, _, _ := newTestCPU(0xF3, 0x00)
		c.s.ScheduleEvent(scheduler.EIPending, 4)
		step(t, c)
		step(t, c)
		step(t, c)
		if c.IRQ.IME {
			t.Errorf("expected DI to cancel the pending EI")
		}
	})
	t.Run("RETI", func(t *testing.T) {
		c, bus, _ := newTestCPU(0xD9)
		c.SP = 0xC000
		bus.mem[0xC000], bus.mem[0xC001] = 0x34, 0x12
		step(t, c)
		if !c.IRQ.IME || c.PC != 0x1234 {
			t.Errorf("expected IME set and PC 0x1234, got IME %v PC 0x%04X", c.IRQ.IME, c.PC)
		}
	})
}

func TestCPU_Observer(t *testing.T) {
	// LD A,0x42 ; JP 0x1234
	c, _, _ := newTestCPU(0x3E, 0x42, 0xC3, 0x34, 0x12)
	var traces []Trace
	c.SetObserver(func(tr Trace) {
		traces = append(traces, tr)
	})

	step(t, c)
	step(t, c)

	if len(traces) != 2 {
		t.Fatalf("expected 2 traces, got %d", len(traces))
	}
	first, second := traces[0], traces[1]
	if first.PC != 0x0100 || first.Instruction.String() != "LD A,d8" || first.Registers.A != 0x42 || first.Cycles != 2 {
		t.Errorf("unexpected first trace: %+v", first)
	}
	if len(first.Bytes) != 2 || first.Bytes[1] != 0x42 {
		t.Errorf("expected bytes 3E 42, got % X", first.Bytes)
	}
	if second.PC != 0x0102 || second.Opcode != 0xC3 || second.Registers.PC != 0x1234 || second.Cycles != 4 {
		t.Errorf("unexpected second trace: %+v", second)
	}
}
