package api

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mcinst/instr"
)

// ProjectorBuilder creates a new instance of Projector.
type ProjectorBuilder struct {
	namer       instr.OpcodeNamer
	legacyFPImm bool
}

// WithOpcodeNamer sets the table Dump uses to name opcodes.
func (b ProjectorBuilder) WithOpcodeNamer(namer instr.OpcodeNamer) ProjectorBuilder {
	b.namer = namer
	return b
}

// WithLegacyFPImmDispatch reproduces the old C projection, where the
// floating-point branch tested for a register and was therefore unreachable.
// Floating immediates then project as OperandTypeInvalid. Only useful for
// comparing against output recorded from that implementation.
func (b ProjectorBuilder) WithLegacyFPImmDispatch(legacy bool) ProjectorBuilder {
	b.legacyFPImm = legacy
	return b
}

// Build creates a projector.
func (b ProjectorBuilder) Build(name string) Projector {
	return &projectorImpl{
		HookableBase: sim.NewHookableBase(),
		name:         name,
		namer:        b.namer,
		legacyFPImm:  b.legacyFPImm,
	}
}
