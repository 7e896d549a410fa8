package cpu

import (
	"fmt"
	"strings"
)

// Kind is the operation an instruction performs.
type Kind uint8

const (
	KindNone Kind = iota
	KindNOP
	KindLD
	KindINC
	KindDEC
	KindRLCA
	KindADD
	KindRRCA
	KindSTOP
	KindRLA
	KindJR
	KindRRA
	KindDAA
	KindCPL
	KindSCF
	KindCCF
	KindHALT
	KindADC
	KindSUB
	KindSBC
	KindAND
	KindXOR
	KindOR
	KindCP
	KindPOP
	KindJP
	KindPUSH
	KindRET
	KindCB
	KindCALL
	KindRETI
	KindLDH
	KindDI
	KindEI
	KindRST
	// CB prefixed operations
	KindRLC
	KindRRC
	KindRL
	KindRR
	KindSLA
	KindSRA
	KindSWAP
	KindSRL
	KindBIT
	KindRES
	KindSET
)

var kindNames = [...]string{
	KindNone: "<NONE>",
	KindNOP:  "NOP",
	KindLD:   "LD",
	KindINC:  "INC",
	KindDEC:  "DEC",
	KindRLCA: "RLCA",
	KindADD:  "ADD",
	KindRRCA: "RRCA",
	KindSTOP: "STOP",
	KindRLA:  "RLA",
	KindJR:   "JR",
	KindRRA:  "RRA",
	KindDAA:  "DAA",
	KindCPL:  "CPL",
	KindSCF:  "SCF",
	KindCCF:  "CCF",
	KindHALT: "HALT",
	KindADC:  "ADC",
	KindSUB:  "SUB",
	KindSBC:  "SBC",
	KindAND:  "AND",
	KindXOR:  "XOR",
	KindOR:   "OR",
	KindCP:   "CP",
	KindPOP:  "POP",
	KindJP:   "JP",
	KindPUSH: "PUSH",
	KindRET:  "RET",
	KindCB:   "CB",
	KindCALL: "CALL",
	KindRETI: "RETI",
	KindLDH:  "LDH",
	KindDI:   "DI",
	KindEI:   "EI",
	KindRST:  "RST",
	KindRLC:  "RLC",
	KindRRC:  "RRC",
	KindRL:   "RL",
	KindRR:   "RR",
	KindSLA:  "SLA",
	KindSRA:  "SRA",
	KindSWAP: "SWAP",
	KindSRL:  "SRL",
	KindBIT:  "BIT",
	KindRES:  "RES",
	KindSET:  "SET",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Mode is the addressing mode of an instruction, which describes
// where its operands come from and where its result goes.
type Mode uint8

const (
	ModeImplied Mode = iota // no operand
	ModeReg                 // r1
	ModeRegReg              // r1 <- r2
	ModeRegD8               // r1 <- d8
	ModeRegD16              // r1 <- d16
	ModeD8                  // d8
	ModeD16                 // d16
	ModeMemReg              // (r1) <- r2
	ModeRegMem              // r1 <- (r2)
	ModeRegHLI              // r1 <- (HL+)
	ModeRegHLD              // r1 <- (HL-)
	ModeHLIReg              // (HL+) <- r2
	ModeHLDReg              // (HL-) <- r2
	ModeRegA8               // r1 <- (0xFF00+a8)
	ModeA8Reg               // (0xFF00+a8) <- r2
	ModeHLSPE8              // HL <- SP+e8
	ModeA16Reg              // (a16) <- r2
	ModeRegA16              // r1 <- (a16)
	ModeMemD8               // (r1) <- d8
	ModeMem                 // (r1)
)

var modeNames = [...]string{
	ModeImplied: "IMP",
	ModeReg:     "R",
	ModeRegReg:  "R_R",
	ModeRegD8:   "R_D8",
	ModeRegD16:  "R_D16",
	ModeD8:      "D8",
	ModeD16:     "D16",
	ModeMemReg:  "MR_R",
	ModeRegMem:  "R_MR",
	ModeRegHLI:  "R_HLI",
	ModeRegHLD:  "R_HLD",
	ModeHLIReg:  "HLI_R",
	ModeHLDReg:  "HLD_R",
	ModeRegA8:   "R_A8",
	ModeA8Reg:   "A8_R",
	ModeHLSPE8:  "HL_SPR",
	ModeA16Reg:  "A16_R",
	ModeRegA16:  "R_A16",
	ModeMemD8:   "MR_D8",
	ModeMem:     "MR",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Reg names a register operand. The 16-bit registers follow the
// 8-bit ones.
type Reg uint8

const (
	RegNone Reg = iota
	RegA
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP
	RegPC
)

var regNames = [...]string{
	RegNone: "",
	RegA:    "A",
	RegF:    "F",
	RegB:    "B",
	RegC:    "C",
	RegD:    "D",
	RegE:    "E",
	RegH:    "H",
	RegL:    "L",
	RegAF:   "AF",
	RegBC:   "BC",
	RegDE:   "DE",
	RegHL:   "HL",
	RegSP:   "SP",
	RegPC:   "PC",
}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return fmt.Sprintf("Reg(%d)", r)
}

// Is16Bit returns true for the register pairs, SP and PC.
func (r Reg) Is16Bit() bool {
	return r >= RegAF
}

// Cond is the condition a jump, call or return is taken on.
type Cond uint8

const (
	CondNone Cond = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

func (c Cond) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	}
	return ""
}

// Instruction describes a decoded opcode: the operation, how its
// operands are addressed, and the registers, condition and fixed
// parameter (RST vector or bit index) it uses.
type Instruction struct {
	Kind  Kind
	Mode  Mode
	Reg1  Reg
	Reg2  Reg
	Cond  Cond
	Param uint8
}

// String returns the mnemonic of the instruction, such as "LD A,(HL+)".
func (i Instruction) String() string {
	var operands []string
	if i.Cond != CondNone {
		operands = append(operands, i.Cond.String())
	}

	switch i.Kind {
	case KindRST:
		operands = append(operands, fmt.Sprintf("%02XH", i.Param))
	case KindBIT, KindRES, KindSET:
		operands = append(operands, fmt.Sprint(i.Param))
	}

	switch i.Mode {
	case ModeReg:
		operands = append(operands, i.Reg1.String())
	case ModeRegReg:
		operands = append(operands, i.Reg1.String(), i.Reg2.String())
	case ModeRegD8:
		if i.Reg1 == RegSP {
			operands = append(operands, i.Reg1.String(), "e8")
		} else {
			operands = append(operands, i.Reg1.String(), "d8")
		}
	case ModeRegD16:
		operands = append(operands, i.Reg1.String(), "d16")
	case ModeD8:
		if i.Kind == KindJR {
			operands = append(operands, "e8")
		} else if i.Kind != KindCB {
			operands = append(operands, "d8")
		}
	case ModeD16:
		operands = append(operands, "a16")
	case ModeMemReg:
		operands = append(operands, "("+i.Reg1.String()+")", i.Reg2.String())
	case ModeRegMem:
		operands = append(operands, i.Reg1.String(), "("+i.Reg2.String()+")")
	case ModeRegHLI:
		operands = append(operands, i.Reg1.String(), "(HL+)")
	case ModeRegHLD:
		operands = append(operands, i.Reg1.String(), "(HL-)")
	case ModeHLIReg:
		operands = append(operands, "(HL+)", i.Reg2.String())
	case ModeHLDReg:
		operands = append(operands, "(HL-)", i.Reg2.String())
	case ModeRegA8:
		operands = append(operands, i.Reg1.String(), "(a8)")
	case ModeA8Reg:
		operands = append(operands, "(a8)", i.Reg2.String())
	case ModeHLSPE8:
		operands = append(operands, "HL", "SP+e8")
	case ModeA16Reg:
		operands = append(operands, "(a16)", i.Reg2.String())
	case ModeRegA16:
		operands = append(operands, i.Reg1.String(), "(a16)")
	case ModeMemD8:
		operands = append(operands, "("+i.Reg1.String()+")", "d8")
	case ModeMem:
		operands = append(operands, "("+i.Reg1.String()+")")
	}

	if len(operands) == 0 {
		return i.Kind.String()
	}
	return i.Kind.String() + " " + strings.Join(operands, ",")
}
