// Package api projects instructions to callers that must not depend on the
// instruction model's memory layout.
//
// A caller receives an owned InstRef from Register and releases it with
// Dispose exactly once. Operand refs and refs to nested instructions are
// borrows: they are never disposed on their own and stop working the moment
// their root is disposed. Every call validates the handle it is given, so a
// stale or foreign handle yields ErrInvalidHandle instead of touching freed
// state.
//
// Reads may run concurrently. Dispose must not race with other calls that use
// the same root; that is a precondition on the caller, not something the
// projector arbitrates.
package api

import (
	"errors"
	"io"
	"math"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/mcinst/instr"
)

var (
	// ErrInvalidHandle marks a zero, stale, disposed or borrowed-where-owned
	// handle.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrIndexOutOfRange marks an operand index at or past the arity.
	ErrIndexOutOfRange = instr.ErrIndexOutOfRange
)

// InstRef is an opaque instruction handle. The zero value is never valid.
type InstRef uint64

// OperandRef is an opaque operand handle, valid while its instruction is.
type OperandRef struct {
	inst  InstRef
	index uint32
}

// OperandType is the discriminant of a projected operand.
type OperandType uint32

const (
	OperandTypeInvalid OperandType = iota
	OperandTypeReg
	OperandTypeImm
	OperandTypeFPImm
	OperandTypeExpr
	OperandTypeInst
)

func (t OperandType) String() string {
	switch t {
	case OperandTypeInvalid:
		return "Invalid"
	case OperandTypeReg:
		return "Reg"
	case OperandTypeImm:
		return "Imm"
	case OperandTypeFPImm:
		return "FPImm"
	case OperandTypeExpr:
		return "Expr"
	case OperandTypeInst:
		return "Inst"
	}

	return "Unknown"
}

// Operand is a flat copy of an operand. Kind selects which accessor is
// meaningful; the payload is shared storage, like a C union. Expression
// operands carry no payload.
type Operand struct {
	Kind    OperandType
	payload uint64
}

func (o Operand) Reg() uint32     { return uint32(o.payload) }
func (o Operand) Imm() int64      { return int64(o.payload) }
func (o Operand) FPImm() float64  { return math.Float64frombits(o.payload) }
func (o Operand) Inst() InstRef   { return InstRef(o.payload) }
func (o Operand) Payload() uint64 { return o.payload }

// Projector hands out and validates handles to instruction trees.
type Projector interface {
	sim.Named
	sim.Hookable

	// Register takes ownership of inst and returns an owned handle to it.
	Register(inst *instr.Inst) InstRef

	// Dispose releases an owned handle together with every handle derived
	// from it.
	Dispose(ref InstRef) error

	// NumOperands returns the arity of the instruction.
	NumOperands(ref InstRef) (uint32, error)

	// Operand returns a handle to the i-th operand.
	Operand(ref InstRef, i uint32) (OperandRef, error)

	// Opcode returns the opcode of the instruction.
	Opcode(ref InstRef) (uint32, error)

	// Project copies the operand's discriminant and payload into out. Only
	// the payload matching the discriminant is written.
	Project(ref OperandRef, out *Operand) error

	// Dump writes the instruction in pretty form, operands separated by sep.
	Dump(w io.Writer, ref InstRef, sep string) error
}
