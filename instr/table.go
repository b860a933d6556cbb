package instr

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table renders the instruction tree as a table with one row per operand.
// Nested instructions are flattened; the Path column shows where each row
// sits in the tree, e.g. "1.0" for operand 0 of the instruction held by
// operand 1. namer may be nil.
func Table(inst *Inst, namer OpcodeNamer) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Instruction %s", opcodeLabel(inst.opcode, namer)))
	t.AppendHeader(table.Row{"Path", "Opcode", "Kind", "Value"})

	appendTableRows(t, inst, "", namer, 0)

	return t.Render()
}

func appendTableRows(
	t table.Writer,
	inst *Inst,
	prefix string,
	namer OpcodeNamer,
	depth int,
) {
	opcode := opcodeLabel(inst.opcode, namer)

	for idx, op := range inst.operands {
		path := prefix + strconv.Itoa(idx)

		t.AppendRow(table.Row{path, opcode, op.kind.String(), tableValue(op)})

		if op.kind == KindInst && op.inst != nil && depth < MaxPrintDepth {
			appendTableRows(t, op.inst, path+".", namer, depth+1)
		}
	}
}

func opcodeLabel(opcode uint32, namer OpcodeNamer) string {
	if namer != nil {
		if name, ok := namer.OpcodeName(opcode); ok {
			return fmt.Sprintf("#%d %s", opcode, name)
		}
	}

	return fmt.Sprintf("#%d", opcode)
}

func tableValue(op Operand) string {
	switch op.kind {
	case KindInvalid:
		return "-"
	case KindReg:
		return fmt.Sprintf("%d", uint32(op.bits))
	case KindImm:
		return strconv.FormatInt(int64(op.bits), 10)
	case KindFPImm:
		return strconv.FormatFloat(op.FPImm(), 'g', -1, 64)
	case KindExpr:
		if op.expr == nil {
			return ""
		}
		return op.expr.String()
	case KindInst:
		if op.inst == nil {
			return ""
		}
		return fmt.Sprintf("%d operands", len(op.inst.operands))
	}

	return "UNDEFINED"
}
