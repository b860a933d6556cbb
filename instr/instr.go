// Package instr holds the machine-instruction model: an opcode with an ordered
// list of operands, where an operand may itself be a nested instruction.
//
// The opcode is opaque here. Its meaning comes from an external opcode table,
// reachable only through an OpcodeNamer when pretty-printing.
//
// An Inst is treated as immutable once it is handed to a reader. Concurrent
// reads are fine; mutation while another goroutine reads is not.
package instr

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/zeebo/errs/v2"
)

// MaxPrintDepth bounds how deep Print recurses into nested instructions.
const MaxPrintDepth = 64

// ErrIndexOutOfRange is returned for an operand index past the arity.
var ErrIndexOutOfRange = errors.New("operand index out of range")

// OpcodeNamer resolves an opcode to its display name.
type OpcodeNamer interface {
	OpcodeName(opcode uint32) (string, bool)
}

// Style tunes how instructions are printed. A nil *Style means defaults.
type Style struct {
	// HexImm prints immediates as 0x-prefixed hexadecimal.
	HexImm bool
}

func (s *Style) formatImm(v int64) string {
	if s == nil || !s.HexImm {
		return strconv.FormatInt(v, 10)
	}

	if v < 0 {
		return "-0x" + strconv.FormatUint(-uint64(v), 16)
	}

	return "0x" + strconv.FormatUint(uint64(v), 16)
}

// Inst is a machine instruction.
type Inst struct {
	opcode   uint32
	operands []Operand
}

// NewInst creates an instruction with the given opcode and operands.
func NewInst(opcode uint32, operands ...Operand) *Inst {
	return &Inst{
		opcode:   opcode,
		operands: append([]Operand(nil), operands...),
	}
}

func (i *Inst) Opcode() uint32 { return i.opcode }

func (i *Inst) SetOpcode(opcode uint32) { i.opcode = opcode }

func (i *Inst) NumOperands() int { return len(i.operands) }

// Operand returns the operand at position idx.
func (i *Inst) Operand(idx int) (*Operand, error) {
	if idx < 0 || idx >= len(i.operands) {
		return nil, errs.Errorf("%w: %d not in [0, %d)",
			ErrIndexOutOfRange, idx, len(i.operands))
	}

	return &i.operands[idx], nil
}

// Operands returns a copy of the operand list.
func (i *Inst) Operands() []Operand {
	return append([]Operand(nil), i.operands...)
}

func (i *Inst) AddOperand(op Operand) {
	i.operands = append(i.operands, op)
}

// Insert places op at position idx, shifting later operands right. idx may
// equal NumOperands.
func (i *Inst) Insert(idx int, op Operand) error {
	if idx < 0 || idx > len(i.operands) {
		return errs.Errorf("%w: insert at %d, arity %d",
			ErrIndexOutOfRange, idx, len(i.operands))
	}

	i.operands = append(i.operands, Operand{})
	copy(i.operands[idx+1:], i.operands[idx:])
	i.operands[idx] = op

	return nil
}

// Print writes `<Instruction <opcode> <op0> <op1> ...>`.
func (i *Inst) Print(w io.Writer, style *Style) {
	p := printer{w: w, style: style}
	p.inst(i, 0, " ", nil)
}

// DumpPretty is like Print, but prefixes the opcode with '#', appends the
// opcode name when namer knows it, and puts sep before every operand.
func (i *Inst) DumpPretty(w io.Writer, style *Style, namer OpcodeNamer, sep string) {
	p := printer{w: w, style: style, pretty: true}
	p.inst(i, 0, sep, namer)
}

func (i *Inst) String() string {
	var sb strings.Builder
	i.Print(&sb, nil)
	return sb.String()
}

// printer carries the writer and style through recursive printing. Write
// errors are ignored; printing is diagnostic only.
type printer struct {
	w      io.Writer
	style  *Style
	pretty bool
}

func (p *printer) str(s string) {
	_, _ = io.WriteString(p.w, s)
}

func (p *printer) inst(i *Inst, depth int, sep string, namer OpcodeNamer) {
	p.str("<Instruction ")

	if p.pretty {
		p.str("#")
	}
	p.str(strconv.FormatUint(uint64(i.opcode), 10))

	if p.pretty && namer != nil {
		if name, ok := namer.OpcodeName(i.opcode); ok {
			p.str(" ")
			p.str(name)
		}
	}

	for _, op := range i.operands {
		p.str(sep)
		p.operand(op, depth)
	}

	p.str(">")
}
