package program

import (
	"errors"
	"os"

	"github.com/zeebo/errs/v2"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/mcinst/instr"
)

// MaxNestingDepth bounds how deep a YAML file may nest instructions.
const MaxNestingDepth = 64

// ErrParse is wrapped by every error the loader reports.
var ErrParse = errors.New("cannot parse instructions")

// SymbolExpr is an expression operand kept as its source text.
type SymbolExpr string

func (s SymbolExpr) String() string { return string(s) }

type fileYAML struct {
	Insts []instYAML `yaml:"insts"`
}

type instYAML struct {
	Opcode   *uint32       `yaml:"opcode"`
	Op       string        `yaml:"op"`
	Operands []operandYAML `yaml:"operands"`
}

// operandYAML sets at most one field. An empty mapping is an invalid operand.
type operandYAML struct {
	Reg   *uint32   `yaml:"reg"`
	Imm   *int64    `yaml:"imm"`
	FPImm *float64  `yaml:"fpimm"`
	Expr  *string   `yaml:"expr"`
	Inst  *instYAML `yaml:"inst"`
}

// LoadInstsFromYAML reads the instructions listed in a YAML file. Opcodes
// given by name are resolved through isa, which may be nil when every
// instruction uses a numeric opcode.
func LoadInstsFromYAML(filePath string, isa *ISA) ([]*instr.Inst, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errs.Wrap(err)
	}

	return ParseInsts(data, isa)
}

// ParseInsts decodes YAML of the form
//
//	insts:
//	  - op: BUNDLE
//	    operands:
//	      - reg: 3
//	      - inst: {opcode: 9, operands: [{imm: -5}]}
func ParseInsts(data []byte, isa *ISA) ([]*instr.Inst, error) {
	var file fileYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errs.Errorf("%w: %v", ErrParse, err)
	}

	insts := make([]*instr.Inst, 0, len(file.Insts))
	for i := range file.Insts {
		inst, err := buildInst(&file.Insts[i], isa, 0)
		if err != nil {
			return nil, errs.Errorf("%w: inst %d: %v", ErrParse, i, err)
		}
		insts = append(insts, inst)
	}

	return insts, nil
}

func buildInst(in *instYAML, isa *ISA, depth int) (*instr.Inst, error) {
	if depth > MaxNestingDepth {
		return nil, errs.Errorf("nesting deeper than %d", MaxNestingDepth)
	}

	opcode, err := resolveOpcode(in, isa)
	if err != nil {
		return nil, err
	}

	inst := instr.NewInst(opcode)
	for i := range in.Operands {
		op, err := buildOperand(&in.Operands[i], isa, depth)
		if err != nil {
			return nil, errs.Errorf("operand %d: %v", i, err)
		}
		inst.AddOperand(op)
	}

	return inst, nil
}

func resolveOpcode(in *instYAML, isa *ISA) (uint32, error) {
	switch {
	case in.Opcode != nil && in.Op != "":
		return 0, errs.Errorf("both opcode and op are set")
	case in.Opcode != nil:
		return *in.Opcode, nil
	case in.Op == "":
		return 0, errs.Errorf("missing opcode")
	case isa == nil:
		return 0, errs.Errorf("op %q given without an ISA", in.Op)
	}

	opcode, ok := isa.Opcode(in.Op)
	if !ok {
		return 0, errs.Errorf("unknown op %q in %s", in.Op, isa.Name())
	}

	return opcode, nil
}

func buildOperand(in *operandYAML, isa *ISA, depth int) (instr.Operand, error) {
	set := 0
	for _, isSet := range []bool{
		in.Reg != nil, in.Imm != nil, in.FPImm != nil, in.Expr != nil, in.Inst != nil,
	} {
		if isSet {
			set++
		}
	}
	if set > 1 {
		return instr.Operand{}, errs.Errorf("more than one payload set")
	}

	switch {
	case in.Reg != nil:
		return instr.CreateReg(*in.Reg), nil
	case in.Imm != nil:
		return instr.CreateImm(*in.Imm), nil
	case in.FPImm != nil:
		return instr.CreateFPImm(*in.FPImm), nil
	case in.Expr != nil:
		return instr.CreateExpr(SymbolExpr(*in.Expr)), nil
	case in.Inst != nil:
		nested, err := buildInst(in.Inst, isa, depth+1)
		if err != nil {
			return instr.Operand{}, err
		}
		return instr.CreateInst(nested), nil
	}

	return instr.Operand{}, nil
}
