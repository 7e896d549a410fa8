package cpu

// instructions is the table of unprefixed opcodes. Opcodes that
// are not mapped decode to KindNone.
var instructions = [0x100]Instruction{
	0x00: {Kind: KindNOP},
	0x01: {Kind: KindLD, Mode: ModeRegD16, Reg1: RegBC},
	0x02: {Kind: KindLD, Mode: ModeMemReg, Reg1: RegBC, Reg2: RegA},
	0x03: {Kind: KindINC, Mode: ModeReg, Reg1: RegBC},
	0x04: {Kind: KindINC, Mode: ModeReg, Reg1: RegB},
	0x05: {Kind: KindDEC, Mode: ModeReg, Reg1: RegB},
	0x06: {Kind: KindLD, Mode: ModeRegD8, Reg1: RegB},
	0x07: {Kind: KindRLCA},
	0x08: {Kind: KindLD, Mode: ModeA16Reg, Reg2: RegSP},
	0x09: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegHL, Reg2: RegBC},
	0x0A: {Kind: KindLD, Mode: ModeRegMem, Reg1: RegA, Reg2: RegBC},
	0x0B: {Kind: KindDEC, Mode: ModeReg, Reg1: RegBC},
	0x0C: {Kind: KindINC, Mode: ModeReg, Reg1: RegC},
	0x0D: {Kind: KindDEC, Mode: ModeReg, Reg1: RegC},
	0x0E: {Kind: KindLD, Mode: ModeRegD8, Reg1: RegC},
	0x0F: {Kind: KindRRCA},
	0x10: {Kind: KindSTOP},
	0x11: {Kind: KindLD, Mode: ModeRegD16, Reg1: RegDE},
	0x12: {Kind: KindLD, Mode: ModeMemReg, Reg1: RegDE, Reg2: RegA},
	0x13: {Kind: KindINC, Mode: ModeReg, Reg1: RegDE},
	0x14: {Kind: KindINC, Mode: ModeReg, Reg1: RegD},
	0x15: {Kind: KindDEC, Mode: ModeReg, Reg1: RegD},
	0x16: {Kind: KindLD, Mode: ModeRegD8, Reg1: RegD},
	0x17: {Kind: KindRLA},
	0x18: {Kind: KindJR, Mode: ModeD8},
	0x19: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegHL, Reg2: RegDE},
	0x1A: {Kind: KindLD, Mode: ModeRegMem, Reg1: RegA, Reg2: RegDE},
	0x1B: {Kind: KindDEC, Mode: ModeReg, Reg1: RegDE},
	0x1C: {Kind: KindINC, Mode: ModeReg, Reg1: RegE},
	0x1D: {Kind: KindDEC, Mode: ModeReg, Reg1: RegE},
	0x1E: {Kind: KindLD, Mode: ModeRegD8, Reg1: RegE},
	0x1F: {Kind: KindRRA},
	0x20: {Kind: KindJR, Mode: ModeD8, Cond: CondNZ},
	0x21: {Kind: KindLD, Mode: ModeRegD16, Reg1: RegHL},
	0x22: {Kind: KindLD, Mode: ModeHLIReg, Reg1: RegHL, Reg2: RegA},
	0x23: {Kind: KindINC, Mode: ModeReg, Reg1: RegHL},
	0x24: {Kind: KindINC, Mode: ModeReg, Reg1: RegH},
	0x25: {Kind: KindDEC, Mode: ModeReg, Reg1: RegH},
	0x26: {Kind: KindLD, Mode: ModeRegD8, Reg1: RegH},
	0x27: {Kind: KindDAA},
	0x28: {Kind: KindJR, Mode: ModeD8, Cond: CondZ},
	0x29: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegHL, Reg2: RegHL},
	0x2A: {Kind: KindLD, Mode: ModeRegHLI, Reg1: RegA, Reg2: RegHL},
	0x2B: {Kind: KindDEC, Mode: ModeReg, Reg1: RegHL},
	0x2C: {Kind: KindINC, Mode: ModeReg, Reg1: RegL},
	0x2D: {Kind: KindDEC, Mode: ModeReg, Reg1: RegL},
	0x2E: {Kind: KindLD, Mode: ModeRegD8, Reg1: RegL},
	0x2F: {Kind: KindCPL},
	0x30: {Kind: KindJR, Mode: ModeD8, Cond: CondNC},
	0x31: {Kind: KindLD, Mode: ModeRegD16, Reg1: RegSP},
	0x32: {Kind: KindLD, Mode: ModeHLDReg, Reg1: RegHL, Reg2: RegA},
	0x33: {Kind: KindINC, Mode: ModeReg, Reg1: RegSP},
	0x34: {Kind: KindINC, Mode: ModeMem, Reg1: RegHL},
	0x35: {Kind: KindDEC, Mode: ModeMem, Reg1: RegHL},
	0x36: {Kind: KindLD, Mode: ModeMemD8, Reg1: RegHL},
	0x37: {Kind: KindSCF},
	0x38: {Kind: KindJR, Mode: ModeD8, Cond: CondC},
	0x39: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegHL, Reg2: RegSP},
	0x3A: {Kind: KindLD, Mode: ModeRegHLD, Reg1: RegA, Reg2: RegHL},
	0x3B: {Kind: KindDEC, Mode: ModeReg, Reg1: RegSP},
	0x3C: {Kind: KindINC, Mode: ModeReg, Reg1: RegA},
	0x3D: {Kind: KindDEC, Mode: ModeReg, Reg1: RegA},
	0x3E: {Kind: KindLD, Mode: ModeRegD8, Reg1: RegA},
	0x3F: {Kind: KindCCF},
	0x40: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegB, Reg2: RegB},
	0x41: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegB, Reg2: RegC},
	0x42: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegB, Reg2: RegD},
	0x43: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegB, Reg2: RegE},
	0x44: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegB, Reg2: RegH},
	0x45: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegB, Reg2: RegL},
	0x46: {Kind: KindLD, Mode: ModeRegMem, Reg1: RegB, Reg2: RegHL},
	0x47: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegB, Reg2: RegA},
	0x48: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegC, Reg2: RegB},
	0x49: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegC, Reg2: RegC},
	0x4A: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegC, Reg2: RegD},
	0x4B: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegC, Reg2: RegE},
	0x4C: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegC, Reg2: RegH},
	0x4D: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegC, Reg2: RegL},
	0x4E: {Kind: KindLD, Mode: ModeRegMem, Reg1: RegC, Reg2: RegHL},
	0x4F: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegC, Reg2: RegA},
	0x50: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegD, Reg2: RegB},
	0x51: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegD, Reg2: RegC},
	0x52: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegD, Reg2: RegD},
	0x53: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegD, Reg2: RegE},
	0x54: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegD, Reg2: RegH},
	0x55: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegD, Reg2: RegL},
	0x56: {Kind: KindLD, Mode: ModeRegMem, Reg1: RegD, Reg2: RegHL},
	0x57: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegD, Reg2: RegA},
	0x58: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegE, Reg2: RegB},
	0x59: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegE, Reg2: RegC},
	0x5A: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegE, Reg2: RegD},
	0x5B: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegE, Reg2: RegE},
	0x5C: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegE, Reg2: RegH},
	0x5D: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegE, Reg2: RegL},
	0x5E: {Kind: KindLD, Mode: ModeRegMem, Reg1: RegE, Reg2: RegHL},
	0x5F: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegE, Reg2: RegA},
	0x60: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegH, Reg2: RegB},
	0x61: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegH, Reg2: RegC},
	0x62: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegH, Reg2: RegD},
	0x63: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegH, Reg2: RegE},
	0x64: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegH, Reg2: RegH},
	0x65: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegH, Reg2: RegL},
	0x66: {Kind: KindLD, Mode: ModeRegMem, Reg1: RegH, Reg2: RegHL},
	0x67: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegH, Reg2: RegA},
	0x68: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegL, Reg2: RegB},
	0x69: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegL, Reg2: RegC},
	0x6A: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegL, Reg2: RegD},
	0x6B: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegL, Reg2: RegE},
	0x6C: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegL, Reg2: RegH},
	0x6D: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegL, Reg2: RegL},
	0x6E: {Kind: KindLD, Mode: ModeRegMem, Reg1: RegL, Reg2: RegHL},
	0x6F: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegL, Reg2: RegA},
	0x70: {Kind: KindLD, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegB},
	0x71: {Kind: KindLD, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegC},
	0x72: {Kind: KindLD, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegD},
	0x73: {Kind: KindLD, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegE},
	0x74: {Kind: KindLD, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegH},
	0x75: {Kind: KindLD, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegL},
	0x76: {Kind: KindHALT},
	0x77: {Kind: KindLD, Mode: ModeMemReg, Reg1: RegHL, Reg2: RegA},
	0x78: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0x79: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0x7A: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0x7B: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0x7C: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0x7D: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0x7E: {Kind: KindLD, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0x7F: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0x80: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0x81: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0x82: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0x83: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0x84: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0x85: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0x86: {Kind: KindADD, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0x87: {Kind: KindADD, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0x88: {Kind: KindADC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0x89: {Kind: KindADC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0x8A: {Kind: KindADC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0x8B: {Kind: KindADC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0x8C: {Kind: KindADC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0x8D: {Kind: KindADC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0x8E: {Kind: KindADC, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0x8F: {Kind: KindADC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0x90: {Kind: KindSUB, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0x91: {Kind: KindSUB, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0x92: {Kind: KindSUB, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0x93: {Kind: KindSUB, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0x94: {Kind: KindSUB, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0x95: {Kind: KindSUB, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0x96: {Kind: KindSUB, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0x97: {Kind: KindSUB, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0x98: {Kind: KindSBC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0x99: {Kind: KindSBC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0x9A: {Kind: KindSBC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0x9B: {Kind: KindSBC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0x9C: {Kind: KindSBC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0x9D: {Kind: KindSBC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0x9E: {Kind: KindSBC, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0x9F: {Kind: KindSBC, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0xA0: {Kind: KindAND, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0xA1: {Kind: KindAND, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0xA2: {Kind: KindAND, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0xA3: {Kind: KindAND, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0xA4: {Kind: KindAND, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0xA5: {Kind: KindAND, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0xA6: {Kind: KindAND, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0xA7: {Kind: KindAND, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0xA8: {Kind: KindXOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0xA9: {Kind: KindXOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0xAA: {Kind: KindXOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0xAB: {Kind: KindXOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0xAC: {Kind: KindXOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0xAD: {Kind: KindXOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0xAE: {Kind: KindXOR, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0xAF: {Kind: KindXOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0xB0: {Kind: KindOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0xB1: {Kind: KindOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0xB2: {Kind: KindOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0xB3: {Kind: KindOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0xB4: {Kind: KindOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0xB5: {Kind: KindOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0xB6: {Kind: KindOR, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0xB7: {Kind: KindOR, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0xB8: {Kind: KindCP, Mode: ModeRegReg, Reg1: RegA, Reg2: RegB},
	0xB9: {Kind: KindCP, Mode: ModeRegReg, Reg1: RegA, Reg2: RegC},
	0xBA: {Kind: KindCP, Mode: ModeRegReg, Reg1: RegA, Reg2: RegD},
	0xBB: {Kind: KindCP, Mode: ModeRegReg, Reg1: RegA, Reg2: RegE},
	0xBC: {Kind: KindCP, Mode: ModeRegReg, Reg1: RegA, Reg2: RegH},
	0xBD: {Kind: KindCP, Mode: ModeRegReg, Reg1: RegA, Reg2: RegL},
	0xBE: {Kind: KindCP, Mode: ModeRegMem, Reg1: RegA, Reg2: RegHL},
	0xBF: {Kind: KindCP, Mode: ModeRegReg, Reg1: RegA, Reg2: RegA},
	0xC0: {Kind: KindRET, Cond: CondNZ},
	0xC1: {Kind: KindPOP, Mode: ModeReg, Reg1: RegBC},
	0xC2: {Kind: KindJP, Mode: ModeD16, Cond: CondNZ},
	0xC3: {Kind: KindJP, Mode: ModeD16},
	0xC4: {Kind: KindCALL, Mode: ModeD16, Cond: CondNZ},
	0xC5: {Kind: KindPUSH, Mode: ModeReg, Reg1: RegBC},
	0xC6: {Kind: KindADD, Mode: ModeRegD8, Reg1: RegA},
	0xC7: {Kind: KindRST, Param: 0x00},
	0xC8: {Kind: KindRET, Cond: CondZ},
	0xC9: {Kind: KindRET},
	0xCA: {Kind: KindJP, Mode: ModeD16, Cond: CondZ},
	0xCB: {Kind: KindCB, Mode: ModeD8},
	0xCC: {Kind: KindCALL, Mode: ModeD16, Cond: CondZ},
	0xCD: {Kind: KindCALL, Mode: ModeD16},
	0xCE: {Kind: KindADC, Mode: ModeRegD8, Reg1: RegA},
	0xCF: {Kind: KindRST, Param: 0x08},
	0xD0: {Kind: KindRET, Cond: CondNC},
	0xD1: {Kind: KindPOP, Mode: ModeReg, Reg1: RegDE},
	0xD2: {Kind: KindJP, Mode: ModeD16, Cond: CondNC},
	0xD4: {Kind: KindCALL, Mode: ModeD16, Cond: CondNC},
	0xD5: {Kind: KindPUSH, Mode: ModeReg, Reg1: RegDE},
	0xD6: {Kind: KindSUB, Mode: ModeRegD8, Reg1: RegA},
	0xD7: {Kind: KindRST, Param: 0x10},
	0xD8: {Kind: KindRET, Cond: CondC},
	0xD9: {Kind: KindRETI},
	0xDA: {Kind: KindJP, Mode: ModeD16, Cond: CondC},
	0xDC: {Kind: KindCALL, Mode: ModeD16, Cond: CondC},
	0xDE: {Kind: KindSBC, Mode: ModeRegD8, Reg1: RegA},
	0xDF: {Kind: KindRST, Param: 0x18},
	0xE0: {Kind: KindLDH, Mode: ModeA8Reg, Reg2: RegA},
	0xE1: {Kind: KindPOP, Mode: ModeReg, Reg1: RegHL},
	0xE2: {Kind: KindLD, Mode: ModeMemReg, Reg1: RegC, Reg2: RegA},
	0xE5: {Kind: KindPUSH, Mode: ModeReg, Reg1: RegHL},
	0xE6: {Kind: KindAND, Mode: ModeRegD8, Reg1: RegA},
	0xE7: {Kind: KindRST, Param: 0x20},
	0xE8: {Kind: KindADD, Mode: ModeRegD8, Reg1: RegSP},
	0xE9: {Kind: KindJP, Mode: ModeReg, Reg1: RegHL},
	0xEA: {Kind: KindLD, Mode: ModeA16Reg, Reg2: RegA},
	0xEE: {Kind: KindXOR, Mode: ModeRegD8, Reg1: RegA},
	0xEF: {Kind: KindRST, Param: 0x28},
	0xF0: {Kind: KindLDH, Mode: ModeRegA8, Reg1: RegA},
	0xF1: {Kind: KindPOP, Mode: ModeReg, Reg1: RegAF},
	0xF2: {Kind: KindLD, Mode: ModeRegMem, Reg1: RegA, Reg2: RegC},
	0xF3: {Kind: KindDI},
	0xF5: {Kind: KindPUSH, Mode: ModeReg, Reg1: RegAF},
	0xF6: {Kind: KindOR, Mode: ModeRegD8, Reg1: RegA},
	0xF7: {Kind: KindRST, Param: 0x30},
	0xF8: {Kind: KindLD, Mode: ModeHLSPE8, Reg1: RegHL, Reg2: RegSP},
	0xF9: {Kind: KindLD, Mode: ModeRegReg, Reg1: RegSP, Reg2: RegHL},
	0xFA: {Kind: KindLD, Mode: ModeRegA16, Reg1: RegA},
	0xFB: {Kind: KindEI},
	0xFE: {Kind: KindCP, Mode: ModeRegD8, Reg1: RegA},
	0xFF: {Kind: KindRST, Param: 0x38},
}

// Decode returns the instruction for the given opcode. Unmapped
// opcodes return an instruction of KindNone.
func Decode(opcode uint8) Instruction {
	return instructions[opcode]
}

// cbRegisters is the order the low 3 bits of a CB opcode select
// the operand in.
var cbRegisters = [8]Reg{RegB, RegC, RegD, RegE, RegH, RegL, RegHL, RegA}

// cbRotates are the operations of the first CB group, selected
// by bits 3-5 of the opcode.
var cbRotates = [8]Kind{KindRLC, KindRRC, KindRL, KindRR, KindSLA, KindSRA, KindSWAP, KindSRL}

// DecodeCB returns the instruction for the opcode that follows
// a 0xCB prefix. Bits 0-2 select the operand, bits 3-5 the bit
// index (or the rotate operation) and bits 6-7 the group.
func DecodeCB(opcode uint8) Instruction {
	reg := cbRegisters[opcode&0x07]
	bit := (opcode >> 3) & 0x07

	i := Instruction{Mode: ModeReg, Reg1: reg}
	if reg == RegHL {
		i.Mode = ModeMem
	}

	switch opcode >> 6 {
	case 0:
		i.Kind = cbRotates[bit]
	case 1:
		i.Kind = KindBIT
		i.Param = bit
	case 2:
		i.Kind = KindRES
		i.Param = bit
	case 3:
		i.Kind = KindSET
		i.Param = bit
	}

	return i
}
