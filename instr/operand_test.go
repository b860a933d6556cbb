package instr

import (
	"math"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type symExpr string

func (s symExpr) String() string { return string(s) }

// sampleOperand returns one operand of every kind. A kind added to the union
// without a case here fails the exhaustiveness checks below.
func sampleOperand(k Kind) Operand {
	switch k {
	case KindInvalid:
		return Operand{}
	case KindReg:
		return CreateReg(3)
	case KindImm:
		return CreateImm(-5)
	case KindFPImm:
		return CreateFPImm(2.5)
	case KindExpr:
		return CreateExpr(symExpr("foo+4"))
	case KindInst:
		return CreateInst(NewInst(9))
	}

	panic("no sample operand for kind " + k.String())
}

func activeKinds(o Operand) []Kind {
	var kinds []Kind
	preds := map[Kind]bool{
		KindReg:   o.IsReg(),
		KindImm:   o.IsImm(),
		KindFPImm: o.IsFPImm(),
		KindExpr:  o.IsExpr(),
		KindInst:  o.IsInst(),
	}
	for k := KindInvalid; k < kindCount; k++ {
		if preds[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

var _ = Describe("Operand", func() {
	var mockCtrl *gomock.Controller

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should be invalid by default", func() {
		var op Operand

		Expect(op.IsValid()).To(BeFalse())
		Expect(op.Kind()).To(Equal(KindInvalid))
		Expect(activeKinds(op)).To(BeEmpty())
	})

	It("should have exactly one active kind once constructed", func() {
		for k := KindReg; k < kindCount; k++ {
			op := sampleOperand(k)

			Expect(op.IsValid()).To(BeTrue())
			Expect(op.Kind()).To(Equal(k))
			Expect(activeKinds(op)).To(Equal([]Kind{k}))
		}
	})

	It("should clear the previous payload when set again", func() {
		op := CreateExpr(symExpr("x"))
		op.SetReg(7)

		Expect(op.IsReg()).To(BeTrue())
		Expect(op.Reg()).To(Equal(uint32(7)))
		Expect(op.expr).To(BeNil())

		op.SetInst(NewInst(1))
		op.SetImm(-1)

		Expect(op.Imm()).To(Equal(int64(-1)))
		Expect(op.inst).To(BeNil())
	})

	It("should keep immediates at the int64 boundaries", func() {
		for _, v := range []int64{math.MinInt64, 0, math.MaxInt64} {
			Expect(CreateImm(v).Imm()).To(Equal(v))
		}
	})

	It("should keep floating immediates bit for bit", func() {
		Expect(math.Signbit(CreateFPImm(math.Copysign(0, -1)).FPImm())).To(BeTrue())
		Expect(math.IsNaN(CreateFPImm(math.NaN()).FPImm())).To(BeTrue())
		Expect(CreateFPImm(math.Inf(1)).FPImm()).To(Equal(math.Inf(1)))
	})

	It("should panic on an accessor of the wrong kind", func() {
		op := CreateReg(1)

		Expect(func() { op.Imm() }).To(PanicWith("operand is Reg, not Imm"))
		Expect(func() { op.FPImm() }).To(Panic())
		Expect(func() { op.Inst() }).To(Panic())
		Expect(func() { Operand{}.Expr() }).To(Panic())
	})

	Describe("Print", func() {
		It("should print every kind", func() {
			expr := NewMockExpr(mockCtrl)
			expr.EXPECT().String().Return("sym+4")

			Expect(Operand{}.String()).To(Equal("<Operand INVALID>"))
			Expect(CreateReg(3).String()).To(Equal("<Operand Reg:3>"))
			Expect(CreateImm(-5).String()).To(Equal("<Operand Imm:-5>"))
			Expect(CreateFPImm(1.5).String()).To(Equal("<Operand FPImm:1.5>"))
			Expect(CreateExpr(expr).String()).To(Equal("<Operand Expr:(sym+4)>"))
			Expect(CreateInst(NewInst(9, CreateImm(-5))).String()).
				To(Equal("<Operand Inst:(<Instruction 9 <Operand Imm:-5>>)>"))
		})

		It("should print an unknown kind as UNDEFINED", func() {
			op := Operand{kind: kindCount + 1, bits: 12}

			Expect(func() { _ = op.String() }).NotTo(Panic())
			Expect(op.String()).To(Equal("<Operand UNDEFINED>"))
		})

		It("should handle every known kind without falling through", func() {
			for k := KindInvalid; k < kindCount; k++ {
				Expect(sampleOperand(k).String()).NotTo(ContainSubstring("UNDEFINED"),
					"kind %s", k)
			}
		})

		It("should not panic on nil payload references", func() {
			Expect(CreateExpr(nil).String()).To(Equal("<Operand Expr:()>"))
			Expect(CreateInst(nil).String()).To(Equal("<Operand Inst:()>"))
		})

		It("should print immediates in hex when asked", func() {
			var sb strings.Builder
			style := &Style{HexImm: true}

			CreateImm(255).Print(&sb, style)
			CreateImm(-16).Print(&sb, style)
			CreateImm(math.MinInt64).Print(&sb, style)

			Expect(sb.String()).To(Equal(
				"<Operand Imm:0xff>" +
					"<Operand Imm:-0x10>" +
					"<Operand Imm:-0x8000000000000000>"))
		})
	})

	It("should name kinds", func() {
		Expect(KindFPImm.String()).To(Equal("FPImm"))
		Expect(Kind(200).String()).To(Equal("Kind(200)"))
	})
})
