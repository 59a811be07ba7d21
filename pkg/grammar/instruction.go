package grammar

import (
	"fmt"
	"strings"

	"github.com/Manu343726/spvgen/pkg/utils"
)

// Numeric identity of an instruction
type OpCode uint32

// Operand count reported for instructions without an upper bound
const Unbounded = 65535

// An instruction of the grammar. Instructions are immutable once loaded
type Instruction struct {
	opName   string
	opCode   OpCode
	class    string
	operands []Operand
}

// Creates an instruction. The operand slice is copied
func NewInstruction(opName string, opCode OpCode, class string, operands ...Operand) *Instruction {
	return &Instruction{
		opName:   opName,
		opCode:   opCode,
		class:    class,
		operands: append([]Operand(nil), operands...),
	}
}

// Returns the instruction mnemonic (e.g. "OpTypeVoid")
func (i *Instruction) OpName() string {
	return i.opName
}

func (i *Instruction) OpCode() OpCode {
	return i.opCode
}

// Returns the tag of the class the instruction belongs to, as written in the grammar
func (i *Instruction) ClassTag() string {
	return i.class
}

// Returns a copy of the instruction operands
func (i *Instruction) Operands() []Operand {
	return append([]Operand(nil), i.operands...)
}

// Returns the kind of each operand, in order
func (i *Instruction) OperandKinds() []string {
	return utils.Map(i.operands, Operand.Kind)
}

func (i *Instruction) hasKind(kind string) bool {
	return utils.Any(i.operands, func(o Operand) bool { return o.kind == kind })
}

// Returns true if the instruction produces a result id
func (i *Instruction) HasResult() bool {
	return i.hasKind(Kind_IdResult)
}

// Returns true if the instruction declares its result type
func (i *Instruction) HasResultType() bool {
	return i.hasKind(Kind_IdResultType)
}

// Returns the number of required operands
func (i *Instruction) MinOperandCount() int {
	return utils.Accumulate(i.operands, func(o Operand) int {
		if o.IsRequired() {
			return 1
		}
		return 0
	})
}

// Returns the maximum number of operands, or [Unbounded]
func (i *Instruction) MaxOperandCount() int {
	if utils.Any(i.operands, Operand.HasUnboundedTail) {
		return Unbounded
	}

	if utils.Any(i.operands, Operand.IsVariadic) {
		return Unbounded
	}

	return len(i.operands)
}

// Returns the number of operands that may be omitted, or [Unbounded] if any operand is variadic
func (i *Instruction) OptionalOperandCount() int {
	count := 0

	for _, o := range i.operands {
		switch o.quantifier {
		case Quantifier_Variadic:
			return Unbounded
		case Quantifier_Optional:
			count++
		}
	}

	return count
}

// Returns the 0-based positions of required id reference operands
func (i *Instruction) RequiredReferenceIndices() []int {
	return utils.IndicesWhere(i.operands, func(o Operand) bool {
		return o.IsReference() && o.IsRequired()
	})
}

// Returns the 0-based positions of optional id reference operands
func (i *Instruction) OptionalReferenceIndices() []int {
	return utils.IndicesWhere(i.operands, func(o Operand) bool {
		return o.IsReference() && o.IsOptional()
	})
}

// Returns true if the operand list ends with a variadic run of id references
func (i *Instruction) HasTrailingVariadicReferences() bool {
	if len(i.operands) == 0 {
		return false
	}

	last := i.operands[len(i.operands)-1]
	return last.IsReference() && last.IsVariadic()
}

func (i *Instruction) String() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%v (%v, %v)", i.opName, i.opCode, i.class))

	for _, o := range i.operands {
		builder.WriteString(" ")
		builder.WriteString(o.String())
	}

	return builder.String()
}
