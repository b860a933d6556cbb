package api

import (
	"io"
	"math"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/zeebo/errs/v2"

	"github.com/sarchlab/mcinst/instr"
)

// HookPosInstRegister marks when a root instruction is handed to the
// projector.
var HookPosInstRegister = &sim.HookPos{Name: "Inst Register"}

// HookPosInstDispose marks when a root and its borrowed refs are released.
var HookPosInstDispose = &sim.HookPos{Name: "Inst Dispose"}

// HookPosOperandProject marks when an operand is copied out. The hook item is
// the OperandRef and the detail is the projected Operand.
var HookPosOperandProject = &sim.HookPos{Name: "Operand Project"}

type projectorImpl struct {
	*sim.HookableBase

	name        string
	namer       instr.OpcodeNamer
	legacyFPImm bool

	handles handleTable
}

func (p *projectorImpl) Name() string {
	return p.name
}

func (p *projectorImpl) Register(inst *instr.Inst) InstRef {
	ref := p.handles.acquire(inst)

	Trace("InstRegister",
		"Projector", p.name,
		"Ref", uint64(ref),
		"Opcode", inst.Opcode(),
		"NumOperands", inst.NumOperands(),
	)

	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosInstRegister,
		Item:   ref,
	})

	return ref
}

func (p *projectorImpl) Dispose(ref InstRef) error {
	released, err := p.handles.dispose(ref)
	if err != nil {
		return err
	}

	Trace("InstDispose",
		"Projector", p.name,
		"Ref", uint64(ref),
		"Released", released,
	)

	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosInstDispose,
		Item:   ref,
		Detail: released,
	})

	return nil
}

func (p *projectorImpl) NumOperands(ref InstRef) (uint32, error) {
	inst, err := p.handles.get(ref)
	if err != nil {
		return 0, err
	}

	return uint32(inst.NumOperands()), nil
}

func (p *projectorImpl) Operand(ref InstRef, i uint32) (OperandRef, error) {
	inst, err := p.handles.get(ref)
	if err != nil {
		return OperandRef{}, err
	}

	if uint64(i) >= uint64(inst.NumOperands()) {
		return OperandRef{}, errs.Errorf("%w: %d not in [0, %d)",
			ErrIndexOutOfRange, i, inst.NumOperands())
	}

	return OperandRef{inst: ref, index: i}, nil
}

func (p *projectorImpl) Opcode(ref InstRef) (uint32, error) {
	inst, err := p.handles.get(ref)
	if err != nil {
		return 0, err
	}

	return inst.Opcode(), nil
}

func (p *projectorImpl) Project(ref OperandRef, out *Operand) error {
	inst, err := p.handles.get(ref.inst)
	if err != nil {
		return err
	}

	op, err := inst.Operand(int(ref.index))
	if err != nil {
		return err
	}

	switch {
	case op.IsReg():
		out.Kind = OperandTypeReg
		out.payload = uint64(op.Reg())
	case op.IsImm():
		out.Kind = OperandTypeImm
		out.payload = uint64(op.Imm())
	case op.IsFPImm() && !p.legacyFPImm:
		out.Kind = OperandTypeFPImm
		out.payload = math.Float64bits(op.FPImm())
	case op.IsExpr():
		// Expressions have no flat form; the payload is left as it was.
		out.Kind = OperandTypeExpr
		Trace("OperandNotProjected",
			"Projector", p.name,
			"Ref", uint64(ref.inst),
			"Index", ref.index,
			"Kind", op.Kind().String(),
		)
	case op.IsInst():
		nested, err := p.borrowNested(ref.inst, op.Inst())
		if err != nil {
			return err
		}
		out.Kind = OperandTypeInst
		out.payload = uint64(nested)
	default:
		out.Kind = OperandTypeInvalid
		if op.IsValid() {
			Trace("OperandNotProjected",
				"Projector", p.name,
				"Ref", uint64(ref.inst),
				"Index", ref.index,
				"Kind", op.Kind().String(),
			)
		}
	}

	p.InvokeHook(sim.HookCtx{
		Domain: p,
		Pos:    HookPosOperandProject,
		Item:   ref,
		Detail: *out,
	})

	return nil
}

// borrowNested returns the null ref for a nil nested instruction.
func (p *projectorImpl) borrowNested(parent InstRef, nested *instr.Inst) (InstRef, error) {
	if nested == nil {
		return 0, nil
	}

	return p.handles.borrow(parent, nested)
}

func (p *projectorImpl) Dump(w io.Writer, ref InstRef, sep string) error {
	inst, err := p.handles.get(ref)
	if err != nil {
		return err
	}

	inst.DumpPretty(w, nil, p.namer, sep)

	return nil
}
