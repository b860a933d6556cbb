package instr

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which payload an Operand carries.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindReg
	KindImm
	KindFPImm
	KindExpr
	KindInst

	kindCount
)

// NumKinds is the number of operand kinds, KindInvalid included. Kinds are
// numbered densely from zero.
const NumKinds = int(kindCount)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindReg:
		return "Reg"
	case KindImm:
		return "Imm"
	case KindFPImm:
		return "FPImm"
	case KindExpr:
		return "Expr"
	case KindInst:
		return "Inst"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Expr is an expression operand. Evaluation lives elsewhere; the model only
// needs its text.
type Expr interface {
	String() string
}

// Operand is one slot of an instruction. Only the payload selected by its
// kind is meaningful. The zero value is an invalid operand.
type Operand struct {
	kind Kind
	bits uint64 // register id, immediate or float bits
	expr Expr
	inst *Inst
}

// CreateReg returns a register operand.
func CreateReg(reg uint32) Operand {
	var op Operand
	op.SetReg(reg)
	return op
}

// CreateImm returns an immediate operand.
func CreateImm(imm int64) Operand {
	var op Operand
	op.SetImm(imm)
	return op
}

// CreateFPImm returns a floating-point immediate operand.
func CreateFPImm(val float64) Operand {
	var op Operand
	op.SetFPImm(val)
	return op
}

// CreateExpr returns an expression operand.
func CreateExpr(e Expr) Operand {
	var op Operand
	op.SetExpr(e)
	return op
}

// CreateInst returns an operand that holds a nested instruction. The nested
// instruction is owned by whichever instruction the operand is added to.
func CreateInst(inst *Inst) Operand {
	var op Operand
	op.SetInst(inst)
	return op
}

func (o Operand) Kind() Kind { return o.kind }

func (o Operand) IsValid() bool { return o.kind != KindInvalid }
func (o Operand) IsReg() bool   { return o.kind == KindReg }
func (o Operand) IsImm() bool   { return o.kind == KindImm }
func (o Operand) IsFPImm() bool { return o.kind == KindFPImm }
func (o Operand) IsExpr() bool  { return o.kind == KindExpr }
func (o Operand) IsInst() bool  { return o.kind == KindInst }

func (o Operand) mustBe(k Kind) {
	if o.kind != k {
		panic(fmt.Sprintf("operand is %s, not %s", o.kind, k))
	}
}

// Reg returns the register id. It panics if the operand is not a register.
func (o Operand) Reg() uint32 {
	o.mustBe(KindReg)
	return uint32(o.bits)
}

// Imm returns the immediate. It panics if the operand is not an immediate.
func (o Operand) Imm() int64 {
	o.mustBe(KindImm)
	return int64(o.bits)
}

// FPImm returns the floating-point immediate. It panics on any other kind.
func (o Operand) FPImm() float64 {
	o.mustBe(KindFPImm)
	return math.Float64frombits(o.bits)
}

// Expr returns the expression. It panics if the operand is not an expression.
func (o Operand) Expr() Expr {
	o.mustBe(KindExpr)
	return o.expr
}

// Inst returns the nested instruction. It panics on any other kind.
func (o Operand) Inst() *Inst {
	o.mustBe(KindInst)
	return o.inst
}

func (o *Operand) reset(k Kind) {
	*o = Operand{kind: k}
}

func (o *Operand) SetReg(reg uint32) {
	o.reset(KindReg)
	o.bits = uint64(reg)
}

func (o *Operand) SetImm(imm int64) {
	o.reset(KindImm)
	o.bits = uint64(imm)
}

func (o *Operand) SetFPImm(val float64) {
	o.reset(KindFPImm)
	o.bits = math.Float64bits(val)
}

func (o *Operand) SetExpr(e Expr) {
	o.reset(KindExpr)
	o.expr = e
}

func (o *Operand) SetInst(inst *Inst) {
	o.reset(KindInst)
	o.inst = inst
}

// Print writes the operand as `<Operand ...>`. A nil style uses defaults.
func (o Operand) Print(w io.Writer, style *Style) {
	p := printer{w: w, style: style}
	p.operand(o, 0)
}

func (o Operand) String() string {
	var sb strings.Builder
	o.Print(&sb, nil)
	return sb.String()
}

func (p *printer) operand(o Operand, depth int) {
	p.str("<Operand ")

	switch o.kind {
	case KindInvalid:
		p.str("INVALID")
	case KindReg:
		p.str("Reg:")
		p.str(strconv.FormatUint(uint64(uint32(o.bits)), 10))
	case KindImm:
		p.str("Imm:")
		p.str(p.style.formatImm(int64(o.bits)))
	case KindFPImm:
		p.str("FPImm:")
		p.str(strconv.FormatFloat(math.Float64frombits(o.bits), 'g', -1, 64))
	case KindExpr:
		p.str("Expr:(")
		if o.expr != nil {
			p.str(o.expr.String())
		}
		p.str(")")
	case KindInst:
		p.str("Inst:(")
		switch {
		case o.inst == nil:
		case depth >= MaxPrintDepth:
			p.str("...")
		default:
			nested := printer{w: p.w, style: p.style}
			nested.inst(o.inst, depth+1, " ", nil)
		}
		p.str(")")
	default:
		p.str("UNDEFINED")
	}

	p.str(">")
}
