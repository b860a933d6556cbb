// Command libmcinst builds the instruction projection as a C shared library:
//
//	go build -buildmode=c-shared -o libmcinst.so ./cmd/libmcinst
//
// Every entry point returns an MCStatus and writes results through out
// parameters, so callers never see a Go panic or error value.
package main

/*
#include <stddef.h>
#include <stdint.h>

typedef uint64_t MCInstRef;

typedef struct {
	MCInstRef Inst;
	uint32_t Index;
} MCOperandRef;

typedef enum {
	MCOTInvalid,
	MCOTReg,
	MCOTImm,
	MCOTFPImm,
	MCOTExpr,
	MCOTInst
} MCOperandType;

// Only the member selected by Kind is written. Expression operands leave Val
// untouched.
typedef struct {
	MCOperandType Kind;
	union {
		uint32_t RegVal;
		int64_t ImmVal;
		double FPImmVal;
		MCInstRef InstVal;
	} Val;
} MCOperand;

typedef enum {
	MCStatusOK,
	MCStatusInvalidHandle,
	MCStatusIndexOutOfRange,
	MCStatusParseError,
	MCStatusInvalidArgument
} MCStatus;
*/
import "C"

import (
	"errors"
	"log/slog"
	"unsafe"

	"github.com/sarchlab/mcinst/api"
	"github.com/sarchlab/mcinst/program"
)

var projector = api.ProjectorBuilder{}.
	WithOpcodeNamer(program.DefaultISA).
	Build("libmcinst")

func status(err error) C.MCStatus {
	switch {
	case err == nil:
		return C.MCStatusOK
	case errors.Is(err, api.ErrInvalidHandle):
		return C.MCStatusInvalidHandle
	case errors.Is(err, api.ErrIndexOutOfRange):
		return C.MCStatusIndexOutOfRange
	case errors.Is(err, program.ErrParse):
		return C.MCStatusParseError
	}

	slog.Error("unclassified error", "error", err)

	return C.MCStatusInvalidArgument
}

// MCInstCreateFromYAML parses the first instruction of a YAML document and
// returns an owned handle to it.
//
//export MCInstCreateFromYAML
func MCInstCreateFromYAML(src *C.char, n C.size_t, out *C.MCInstRef) C.MCStatus {
	if src == nil || out == nil {
		return C.MCStatusInvalidArgument
	}

	insts, err := program.ParseInsts(C.GoBytes(unsafe.Pointer(src), C.int(n)), program.DefaultISA)
	if err != nil {
		return status(err)
	}
	if len(insts) == 0 {
		return C.MCStatusParseError
	}

	*out = C.MCInstRef(projector.Register(insts[0]))

	return C.MCStatusOK
}

//export MCInstRefDispose
func MCInstRefDispose(ref C.MCInstRef) C.MCStatus {
	return status(projector.Dispose(api.InstRef(ref)))
}

//export MCInstGetNumOperands
func MCInstGetNumOperands(ref C.MCInstRef, out *C.uint32_t) C.MCStatus {
	if out == nil {
		return C.MCStatusInvalidArgument
	}

	n, err := projector.NumOperands(api.InstRef(ref))
	if err != nil {
		return status(err)
	}
	*out = C.uint32_t(n)

	return C.MCStatusOK
}

// MCInstGetOperand checks the index and fills out. The operand ref lives as
// long as ref does.
//
//export MCInstGetOperand
func MCInstGetOperand(ref C.MCInstRef, i C.uint32_t, out *C.MCOperandRef) C.MCStatus {
	if out == nil {
		return C.MCStatusInvalidArgument
	}

	if _, err := projector.Operand(api.InstRef(ref), uint32(i)); err != nil {
		return status(err)
	}
	out.Inst = ref
	out.Index = i

	return C.MCStatusOK
}

//export MCInstGetOpcode
func MCInstGetOpcode(ref C.MCInstRef, out *C.uint32_t) C.MCStatus {
	if out == nil {
		return C.MCStatusInvalidArgument
	}

	opcode, err := projector.Opcode(api.InstRef(ref))
	if err != nil {
		return status(err)
	}
	*out = C.uint32_t(opcode)

	return C.MCStatusOK
}

//export MCOperandProject
func MCOperandProject(ref C.MCOperandRef, out *C.MCOperand) C.MCStatus {
	if out == nil {
		return C.MCStatusInvalidArgument
	}

	opRef, err := projector.Operand(api.InstRef(ref.Inst), uint32(ref.Index))
	if err != nil {
		return status(err)
	}

	var op api.Operand
	if err := projector.Project(opRef, &op); err != nil {
		return status(err)
	}

	val := unsafe.Pointer(&out.Val)
	switch op.Kind {
	case api.OperandTypeReg:
		*(*C.uint32_t)(val) = C.uint32_t(op.Reg())
	case api.OperandTypeImm:
		*(*C.int64_t)(val) = C.int64_t(op.Imm())
	case api.OperandTypeFPImm:
		*(*C.double)(val) = C.double(op.FPImm())
	case api.OperandTypeInst:
		*(*C.MCInstRef)(val) = C.MCInstRef(op.Inst())
	}
	out.Kind = C.MCOperandType(op.Kind)

	return C.MCStatusOK
}

func main() {}
