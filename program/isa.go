// Package program produces instruction trees for the projection layer: an
// opcode-name table and a YAML loader.
package program

import "sort"

// ISA maps opcodes to display names. It implements instr.OpcodeNamer.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from opcode to the name of the instruction.
	opcodeToName map[uint32]string
	// map from instruction name back to its opcode.
	nameToOpcode map[string]uint32
}

// Constructor for ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:      name,
		opcodeToName: make(map[uint32]string),
		nameToOpcode: make(map[string]uint32),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// RegisterInst adds an instruction to the ISA. Registering an opcode or a
// name twice panics.
func (isa *ISA) RegisterInst(opcode uint32, name string) {
	if old, ok := isa.opcodeToName[opcode]; ok {
		panic("opcode already registered as " + old)
	}
	if _, ok := isa.nameToOpcode[name]; ok {
		panic("instruction " + name + " already registered")
	}

	isa.opcodeToName[opcode] = name
	isa.nameToOpcode[name] = opcode
}

// OpcodeName returns the name registered for opcode.
func (isa *ISA) OpcodeName(opcode uint32) (string, bool) {
	name, ok := isa.opcodeToName[opcode]
	return name, ok
}

// Opcode returns the opcode registered for name.
func (isa *ISA) Opcode(name string) (uint32, bool) {
	opcode, ok := isa.nameToOpcode[name]
	return opcode, ok
}

// Opcodes lists the registered opcodes in ascending order.
func (isa *ISA) Opcodes() []uint32 {
	opcodes := make([]uint32, 0, len(isa.opcodeToName))
	for opcode := range isa.opcodeToName {
		opcodes = append(opcodes, opcode)
	}
	sort.Slice(opcodes, func(i, j int) bool { return opcodes[i] < opcodes[j] })

	return opcodes
}
