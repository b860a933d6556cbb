package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/mcinst/api"
	"github.com/sarchlab/mcinst/instr"
	"github.com/sarchlab/mcinst/program"
)

//go:embed nested.yaml
var nestedInsts []byte

// projectionLogger records every projection the sample makes.
type projectionLogger struct{}

func (projectionLogger) Func(ctx sim.HookCtx) {
	if ctx.Pos != api.HookPosOperandProject {
		return
	}

	out := ctx.Detail.(api.Operand)
	slog.Info("Project", "Kind", out.Kind.String(), "Payload", out.Payload())
}

func walk(projector api.Projector, ref api.InstRef, indent string) error {
	opcode, err := projector.Opcode(ref)
	if err != nil {
		return err
	}

	n, err := projector.NumOperands(ref)
	if err != nil {
		return err
	}

	name, _ := program.DefaultISA.OpcodeName(opcode)
	fmt.Printf("%sinst #%d %s (%d operands)\n", indent, opcode, name, n)

	for i := uint32(0); i < n; i++ {
		opRef, err := projector.Operand(ref, i)
		if err != nil {
			return err
		}

		var out api.Operand
		if err := projector.Project(opRef, &out); err != nil {
			return err
		}

		switch out.Kind {
		case api.OperandTypeReg:
			fmt.Printf("%s  reg %d\n", indent, out.Reg())
		case api.OperandTypeImm:
			fmt.Printf("%s  imm %d\n", indent, out.Imm())
		case api.OperandTypeFPImm:
			fmt.Printf("%s  fpimm %g\n", indent, out.FPImm())
		case api.OperandTypeInst:
			if err := walk(projector, out.Inst(), indent+"  "); err != nil {
				return err
			}
		default:
			fmt.Printf("%s  %s\n", indent, out.Kind)
		}
	}

	return nil
}

func main() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	insts, err := program.ParseInsts(nestedInsts, program.DefaultISA)
	if err != nil {
		slog.Error("load instructions", "error", err)
		atexit.Exit(1)
	}

	projector := api.ProjectorBuilder{}.
		WithOpcodeNamer(program.DefaultISA).
		Build("Projector")
	projector.AcceptHook(projectionLogger{})

	for _, inst := range insts {
		fmt.Println(inst)
		fmt.Println(instr.Table(inst, program.DefaultISA))

		ref := projector.Register(inst)

		if err := projector.Dump(os.Stdout, ref, "\n  "); err != nil {
			slog.Error("dump", "error", err)
			atexit.Exit(1)
		}
		fmt.Println()

		if err := walk(projector, ref, ""); err != nil {
			slog.Error("walk", "error", err)
			atexit.Exit(1)
		}

		if err := projector.Dispose(ref); err != nil {
			slog.Error("dispose", "error", err)
			atexit.Exit(1)
		}
	}

	atexit.Exit(0)
}
