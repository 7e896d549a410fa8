// Package cpu provides the Sharp SM83 CPU of the Game Boy. Each call
// to Step fetches, decodes and executes a single instruction, charging
// every bus access and internal wait to the cycle clock.
package cpu

import (
	"github.com/thelolagemann/goboy/internal/interrupts"
	"github.com/thelolagemann/goboy/internal/scheduler"
	"github.com/thelolagemann/goboy/internal/types"
)

const (
	// ClockSpeed is the clock speed of the CPU, in cycle units per
	// second.
	ClockSpeed = 4194304 / 4
)

// Bus is the address space the CPU reads and writes through.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
}

// Trace describes an executed instruction. It is handed to the
// observer after every step.
type Trace struct {
	PC          uint16 // address the opcode was fetched from
	Opcode      uint8
	Instruction Instruction
	Bytes       []uint8 // opcode and operand bytes read at PC
	Registers   Snapshot
	Cycles      uint64 // cycle units charged by the step
}

// Snapshot is a copy of the register file.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	bus Bus
	s   *scheduler.Scheduler
	IRQ *interrupts.Service

	halted bool

	// per step state, reset at the start of every step
	opcode      uint8
	instruction Instruction
	fetched     uint16
	memDest     uint16
	destIsMem   bool
	stream      [3]uint8
	streamLen   int
	err         error

	observer func(Trace)
}

// New creates a new CPU, in the state the DMG boot ROM leaves it in.
// Every bus access is charged to s. The EI instruction enables the
// master interrupt flag of irq.
func New(bus Bus, s *scheduler.Scheduler, irq *interrupts.Service) *CPU {
	c := &CPU{
		bus: bus,
		s:   s,
		IRQ: irq,
	}
	// create register pairs
	c.BC = &RegisterPair{High: &c.B, Low: &c.C}
	c.DE = &RegisterPair{High: &c.D, Low: &c.E}
	c.HL = &RegisterPair{High: &c.H, Low: &c.L}
	c.AF = &RegisterPair{High: &c.A, Low: &c.F}

	s.RegisterEvent(scheduler.EIPending, func() {
		c.IRQ.IME = true
	})

	c.Reset()

	return c
}

// Reset puts the registers in the state the DMG boot ROM leaves
// them in, with execution starting at the cartridge entry point.
func (c *CPU) Reset() {
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.halted = false
}

// ResetCold clears every register except A, which holds 0x01 to
// identify the DMG, with execution starting at the cartridge entry
// point.
func (c *CPU) ResetCold() {
	c.AF.SetUint16(0x0100)
	c.BC.SetUint16(0)
	c.DE.SetUint16(0)
	c.HL.SetUint16(0)
	c.SP = 0
	c.PC = 0x0100
	c.halted = false
}

// SetObserver sets the function called after every executed
// instruction. A nil function disables it.
func (c *CPU) SetObserver(fn func(Trace)) {
	c.observer = fn
}

// Halted returns true if the CPU is halted.
func (c *CPU) Halted() bool {
	return c.halted
}

// Wake resumes a halted CPU.
func (c *CPU) Wake() {
	c.halted = false
}

// Snapshot returns a copy of the register file.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
	}
}

// Step executes a single instruction. A halted CPU only lets one
// cycle unit pass. The returned error is a *Fault.
func (c *CPU) Step() error {
	if c.halted {
		c.tick()
		return nil
	}

	start := c.s.Cycle()
	pc := c.PC

	// reset step state
	c.fetched = 0
	c.memDest = 0
	c.destIsMem = false
	c.streamLen = 0
	c.err = nil

	c.opcode = c.readInstruction()
	c.instruction = Decode(c.opcode)

	err := c.err
	if err == nil {
		err = c.fetch()
	}
	if err == nil {
		err = c.execute()
	}
	if err == nil {
		err = c.err
	}
	if err != nil {
		return &Fault{PC: pc, Opcode: c.opcode, Instruction: c.instruction, Err: err}
	}

	if c.observer != nil {
		c.observer(Trace{
			PC:          pc,
			Opcode:      c.opcode,
			Instruction: c.instruction,
			Bytes:       append([]uint8(nil), c.stream[:c.streamLen]...),
			Registers:   c.Snapshot(),
			Cycles:      c.s.Cycle() - start,
		})
	}

	return nil
}

// tick charges one cycle unit.
func (c *CPU) tick() {
	c.s.Tick(1)
}

// ticks charges n cycle units.
func (c *CPU) ticks(n int) {
	c.s.Tick(uint64(n))
}

// readInstruction reads the next opcode from memory.
func (c *CPU) readInstruction() uint8 {
	return c.readOperand()
}

// readOperand reads the byte at PC and advances PC.
func (c *CPU) readOperand() uint8 {
	value := c.readByte(c.PC)
	c.PC++

	if c.streamLen < len(c.stream) {
		c.stream[c.streamLen] = value
		c.streamLen++
	}
	return value
}

// readOperand16 reads the little endian word at PC and advances PC.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return types.Compose(high, low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tick()
	return c.read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.tick()
	c.write(addr, val)
}

// read reads a byte from memory without charging a cycle. The
// first failed access of a step is kept, and 0 returned.
func (c *CPU) read(addr uint16) uint8 {
	v, err := c.bus.Read(addr)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return 0
	}
	return v
}

// write writes a byte to memory without charging a cycle.
func (c *CPU) write(addr uint16, val uint8) {
	if err := c.bus.Write(addr, val); err != nil && c.err == nil {
		c.err = err
	}
}
