package program

// Opcodes of the default ISA.
const (
	OpNOP uint32 = iota
	OpMOV
	OpADD
	OpSUB
	OpMUL
	OpDIV
	OpMOD
	OpMAC
	OpAND
	OpOR
	OpXOR
	OpNOT
	OpSHL
	OpSHR
	OpPHI
	OpSEL
	OpEQ
	OpNE
	OpLT
	OpFADD
	OpFMUL
	OpLOAD
	OpSTORE
	OpJMP
	OpBUNDLE
)

var defaultNames = map[uint32]string{
	OpNOP:    "NOP",
	OpMOV:    "MOV",
	OpADD:    "ADD",
	OpSUB:    "SUB",
	OpMUL:    "MUL",
	OpDIV:    "DIV",
	OpMOD:    "MOD",
	OpMAC:    "MAC",
	OpAND:    "AND",
	OpOR:     "OR",
	OpXOR:    "XOR",
	OpNOT:    "NOT",
	OpSHL:    "SHL",
	OpSHR:    "SHR",
	OpPHI:    "PHI",
	OpSEL:    "SEL",
	OpEQ:     "EQ",
	OpNE:     "NE",
	OpLT:     "LT",
	OpFADD:   "FADD",
	OpFMUL:   "FMUL",
	OpLOAD:   "LOAD",
	OpSTORE:  "STORE",
	OpJMP:    "JMP",
	OpBUNDLE: "BUNDLE",
}

// DefaultISA is a small demonstration table. BUNDLE holds its member
// instructions as nested operands.
var DefaultISA = newDefaultISA()

func newDefaultISA() *ISA {
	isa := NewISA("Zeonica Unified ISA")
	for opcode, name := range defaultNames {
		isa.RegisterInst(opcode, name)
	}

	return isa
}
