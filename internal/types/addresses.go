package types

// Region identifies one of the fixed, non-overlapping areas of the
// 64kB address space. Every address belongs to exactly one Region.
type Region uint8

const (
	// RegionROM0 is the first 16kB ROM bank (0x0000 - 0x3FFF).
	RegionROM0 Region = iota
	// RegionROM1 is the second 16kB ROM bank (0x4000 - 0x7FFF).
	RegionROM1
	// RegionVRAM is video RAM (0x8000 - 0x9FFF).
	RegionVRAM
	// RegionExternalRAM is cartridge RAM (0xA000 - 0xBFFF).
	RegionExternalRAM
	// RegionWRAM is work RAM (0xC000 - 0xDFFF).
	RegionWRAM
	// RegionEcho is the echo of work RAM (0xE000 - 0xFDFF). It is
	// treated as reserved: reads return 0 and writes are dropped.
	RegionEcho
	// RegionOAM is the sprite attribute table (0xFE00 - 0xFE9F).
	RegionOAM
	// RegionUnusable is the reserved gap after OAM (0xFEA0 - 0xFEFF).
	RegionUnusable
	// RegionIO is the hardware register area (0xFF00 - 0xFF7F).
	RegionIO
	// RegionHRAM is high RAM (0xFF80 - 0xFFFE).
	RegionHRAM
	// RegionIE is the interrupt enable register (0xFFFF).
	RegionIE
)

// Region boundaries. Each constant is the first or last address
// (inclusive) of the named region.
const (
	StartROM0        uint16 = 0x0000
	EndROM0          uint16 = 0x3FFF
	StartROM1        uint16 = 0x4000
	EndROM1          uint16 = 0x7FFF
	StartVRAM        uint16 = 0x8000
	EndVRAM          uint16 = 0x9FFF
	StartExternalRAM uint16 = 0xA000
	EndExternalRAM   uint16 = 0xBFFF
	StartWRAM        uint16 = 0xC000
	EndWRAM          uint16 = 0xDFFF
	StartEcho        uint16 = 0xE000
	EndEcho          uint16 = 0xFDFF
	StartOAM         uint16 = 0xFE00
	EndOAM           uint16 = 0xFE9F
	StartUnusable    uint16 = 0xFEA0
	EndUnusable      uint16 = 0xFEFF
	StartIO          uint16 = 0xFF00
	EndIO            uint16 = 0xFF7F
	StartHRAM        uint16 = 0xFF80
	EndHRAM          uint16 = 0xFFFE
)

const (
	// WRAMSize is the size of work RAM in bytes.
	WRAMSize = int(EndWRAM-StartWRAM) + 1
	// HRAMSize is the size of high RAM in bytes.
	HRAMSize = int(EndHRAM-StartHRAM) + 1
	// ExternalRAMSize is the size of the flat cartridge RAM window.
	ExternalRAMSize = int(EndExternalRAM-StartExternalRAM) + 1
	// ROMSize is the size of the flat ROM image (banks 0 and 1).
	ROMSize = int(EndROM1) + 1
)

// RegionOf returns the Region that contains address.
func RegionOf(address uint16) Region {
	switch {
	case address <= EndROM0:
		return RegionROM0
	case address <= EndROM1:
		return RegionROM1
	case address <= EndVRAM:
		return RegionVRAM
	case address <= EndExternalRAM:
		return RegionExternalRAM
	case address <= EndWRAM:
		return RegionWRAM
	case address <= EndEcho:
		return RegionEcho
	case address <= EndOAM:
		return RegionOAM
	case address <= EndUnusable:
		return RegionUnusable
	case address <= EndIO:
		return RegionIO
	case address <= EndHRAM:
		return RegionHRAM
	}
	return RegionIE
}

func (r Region) String() string {
	switch r {
	case RegionROM0:
		return "ROM0"
	case RegionROM1:
		return "ROM1"
	case RegionVRAM:
		return "VRAM"
	case RegionExternalRAM:
		return "ExternalRAM"
	case RegionWRAM:
		return "WRAM"
	case RegionEcho:
		return "Echo"
	case RegionOAM:
		return "OAM"
	case RegionUnusable:
		return "Unusable"
	case RegionIO:
		return "IO"
	case RegionHRAM:
		return "HRAM"
	case RegionIE:
		return "IE"
	}
	return "unknown region"
}

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// SB is the address of the SB hardware register. The SB
	// hardware register holds the byte being transferred over
	// the serial port, shifted out MSB first.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. The SC
	// hardware register is used to control the serial port.
	//
	//  Bit 7: Transfer Start Flag (0=No transfer, 1=Start)
	//  Bit 0: Shift Clock (0=External Clock, 1=Internal Clock)
	SC HardwareAddress = 0xFF02
	// DIV is the address of the DIV hardware register. Internally
	// it is a 16-bit register, but only the upper 8 bits may be
	// read. Writing any value resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the TIMA hardware register. The TIMA
	// hardware register is incremented at a rate specified by the TAC
	// hardware register. When TIMA overflows, it is reset to the value
	// specified by the TMA hardware register, and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the TMA hardware register. The TMA
	// hardware register is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the TAC hardware register. The TAC
	// hardware register is used to control the timer.
	//
	//  Bit 2:   Timer Enable
	//  Bit 1-0: Input Clock Select (divider bit 9, 3, 5 or 7)
	TAC HardwareAddress = 0xFF07
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// BDIS is the address of the BDIS hardware register. The BDIS
	// hardware register is used only to disable the boot ROM.
	//
	//  Bit 0:   Disable boot ROM (0=Enable, 1=Disable)
	BDIS HardwareAddress = 0xFF50
	// IE is the address of the IE hardware register. A set bit
	// enables the interrupt with the same bit position in IF.
	IE HardwareAddress = 0xFFFF
)
