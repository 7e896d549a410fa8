// Package mmu provides a memory management unit for the Game Boy. The
// MMU routes every read and write of the 64kB address space to the
// component that backs it, by fixed address range.
package mmu

import (
	"github.com/thelolagemann/goboy/internal/boot"
	"github.com/thelolagemann/goboy/internal/cartridge"
	"github.com/thelolagemann/goboy/internal/ram"
	"github.com/thelolagemann/goboy/internal/types"
	"github.com/thelolagemann/goboy/internal/types/registers"
	"github.com/thelolagemann/goboy/pkg/log"
)

// IOBus is the interface that the MMU uses to communicate with the other
// components.
type IOBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
}

// ROMPatcher rewrites values read from the cartridge ROM, such as
// a Game Genie.
type ROMPatcher interface {
	Read(address uint16, value uint8) uint8
}

// address is a read and write handler for a single address.
type address struct {
	Read  func(address uint16) (uint8, error)
	Write func(address uint16, value uint8) error
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory, and
// delegates to the other components.
type MMU struct {
	// 64kB address space
	raw [65536]*address

	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	Cart *cartridge.Cartridge

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	wRAM *ram.RAM

	// 0xFF00 - 0xFF7F - I/O Registers
	// 0xFFFF - interrupt enable register
	registers *registers.Table

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM *ram.RAM

	Log log.Logger

	// 0x0000 - 0x00FF - boot ROM, until disabled through types.BDIS
	bootROM     *boot.ROM
	bootROMDone bool

	patcher ROMPatcher
}

// NewMMU returns a new MMU. Hardware registers served by regs are
// reachable on the I/O area and at 0xFFFF.
func NewMMU(cart *cartridge.Cartridge, regs *registers.Table, l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	m := &MMU{
		Cart:      cart,
		wRAM:      ram.NewRAM(types.StartWRAM, types.WRAMSize),
		zRAM:      ram.NewRAM(types.StartHRAM, types.HRAMSize),
		registers: regs,
		Log:       l,
	}

	m.init()

	return m
}

func (m *MMU) init() {
	unsupported := &address{Read: m.unsupportedRead, Write: m.unsupportedWrite}
	reserved := &address{
		Read: func(uint16) (uint8, error) {
			return 0, nil
		},
		Write: func(addr uint16, v uint8) error {
			m.Log.Debugf("mmu: ignored write 0x%02X to reserved 0x%04X", v, addr)
			return nil
		},
	}
	cart := &address{Read: m.Cart.Read, Write: m.Cart.Write}

	// setup raw memory
	m.fill(types.StartROM0, types.EndROM1, &address{Read: m.readROM, Write: m.Cart.Write})
	m.fill(types.StartVRAM, types.EndVRAM, unsupported)
	m.fill(types.StartExternalRAM, types.EndExternalRAM, cart)
	m.fill(types.StartWRAM, types.EndWRAM, &address{Read: m.wRAM.Read, Write: m.wRAM.Write})
	m.fill(types.StartEcho, types.EndEcho, reserved)
	m.fill(types.StartOAM, types.EndOAM, unsupported)
	m.fill(types.StartUnusable, types.EndUnusable, reserved)
	m.fill(types.StartIO, types.EndIO, &address{Read: m.readRegister, Write: m.writeRegister})
	m.fill(types.StartHRAM, types.EndHRAM, &address{Read: m.zRAM.Read, Write: m.zRAM.Write})
	m.raw[types.IE] = &address{Read: m.readRegister, Write: m.writeRegister}
}

func (m *MMU) fill(start, end uint16, a *address) {
	for i := int(start); i <= int(end); i++ {
		m.raw[i] = a
	}
}

// Attach maps the component bus to the address range start - end,
// replacing whatever served it before. This is how the video
// component claims VRAM and OAM.
func (m *MMU) Attach(start, end uint16, bus IOBus) {
	m.fill(start, end, &address{Read: bus.Read, Write: bus.Write})
}

// MapBootROM maps b over the first 256 bytes of the cartridge ROM.
// Any write to types.BDIS unmaps it again.
func (m *MMU) MapBootROM(b *boot.ROM) {
	m.bootROM = b
	m.bootROMDone = false
	m.fill(0x0000, boot.Size-1, &address{Read: b.Read, Write: b.Write})

	m.registers.RegisterHardware(
		types.BDIS,
		func(v uint8) {
			// it's assumed any write to this register will disable the boot rom
			if m.bootROMDone {
				return
			}
			m.bootROMDone = true
			m.fill(0x0000, boot.Size-1, &address{Read: m.readROM, Write: m.Cart.Write})
			m.Log.Debugf("mmu: boot rom disabled")
		}, registers.NoRead)
}

// BootROMMapped returns true while the boot ROM is mapped.
func (m *MMU) BootROMMapped() bool {
	return m.bootROM != nil && !m.bootROMDone
}

// Patch routes every read of the cartridge ROM through p.
func (m *MMU) Patch(p ROMPatcher) {
	m.patcher = p
}

func (m *MMU) readROM(addr uint16) (uint8, error) {
	v, err := m.Cart.Read(addr)
	if err != nil || m.patcher == nil {
		return v, err
	}
	return m.patcher.Read(addr, v), nil
}

func (m *MMU) readRegister(addr uint16) (uint8, error) {
	if v, ok := m.registers.Read(addr); ok {
		return v, nil
	}
	return m.unsupportedRead(addr)
}

func (m *MMU) writeRegister(addr uint16, v uint8) error {
	if m.registers.Write(addr, v) {
		return nil
	}
	return m.unsupportedWrite(addr, v)
}

func (m *MMU) unsupportedRead(addr uint16) (uint8, error) {
	return 0, ErrUnsupportedAccess
}

func (m *MMU) unsupportedWrite(addr uint16, v uint8) error {
	return ErrUnsupportedAccess
}

// Read returns the value at the given address. Failed accesses are
// reported as an *AccessError.
func (m *MMU) Read(address uint16) (uint8, error) {
	v, err := m.raw[address].Read(address)
	if err != nil {
		return 0, &AccessError{Op: "read", Address: address, Region: types.RegionOf(address), Err: err}
	}
	return v, nil
}

// Write writes the value to the given address. Failed accesses are
// reported as an *AccessError.
func (m *MMU) Write(address uint16, value uint8) error {
	if err := m.raw[address].Write(address, value); err != nil {
		return &AccessError{Op: "write", Address: address, Region: types.RegionOf(address), Err: err}
	}
	return nil
}

// Read16 returns the 16-bit value at the given address, with the low
// byte at address and the high byte at address+1.
func (m *MMU) Read16(address uint16) (uint16, error) {
	low, err := m.Read(address)
	if err != nil {
		return 0, err
	}
	high, err := m.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return types.Compose(high, low), nil
}

// Write16 writes the 16-bit value to the given address, with the low
// byte at address and the high byte at address+1.
func (m *MMU) Write16(address uint16, value uint16) error {
	high, low := types.Decompose(value)
	if err := m.Write(address, low); err != nil {
		return err
	}
	return m.Write(address+1, high)
}
