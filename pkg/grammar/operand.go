package grammar

import (
	"fmt"

	"github.com/Manu343726/spvgen/pkg/utils"
)

// Cardinality of an instruction operand
type Quantifier uint8

const (
	// Exactly one (no quantifier in the grammar)
	Quantifier_One Quantifier = iota
	// Zero or one ("?")
	Quantifier_Optional
	// Zero or more ("*")
	Quantifier_Variadic
)

func (q Quantifier) String() string {
	switch q {
	case Quantifier_One:
		return ""
	case Quantifier_Optional:
		return "?"
	case Quantifier_Variadic:
		return "*"
	}

	panic("unreachable")
}

// Parses the quantifier notation used by the grammar. An empty string means exactly one
func ParseQuantifier(text string) (Quantifier, error) {
	switch text {
	case "":
		return Quantifier_One, nil
	case "?":
		return Quantifier_Optional, nil
	case "*":
		return Quantifier_Variadic, nil
	}

	return 0, utils.MakeError(ErrMalformedGrammar, "unknown quantifier %q", text)
}

// Operand kinds the model gives a meaning to
const (
	// The instruction produces a new id
	Kind_IdResult = "IdResult"
	// The instruction declares the type of its result through a type id
	Kind_IdResultType = "IdResultType"
	// A reference to another id
	Kind_IdRef = "IdRef"
	// Nul terminated string spanning a variable number of words
	Kind_LiteralString = "LiteralString"
	// Decoration enumerant followed by its own variable length parameters
	Kind_Decoration = "Decoration"
)

// An instruction operand. Operands are immutable once constructed
type Operand struct {
	kind       string
	quantifier Quantifier
	name       string
	hasName    bool
}

// Creates an operand without a name
func NewOperand(kind string, quantifier Quantifier) Operand {
	return Operand{kind: kind, quantifier: quantifier}
}

// Creates a named operand
func NewNamedOperand(kind string, quantifier Quantifier, name string) Operand {
	return Operand{kind: kind, quantifier: quantifier, name: name, hasName: true}
}

// Returns the operand kind tag (e.g. "IdRef")
func (o Operand) Kind() string {
	return o.kind
}

func (o Operand) Quantifier() Quantifier {
	return o.quantifier
}

// Returns the informational name of the operand, if the grammar has one
func (o Operand) Name() (string, bool) {
	return o.name, o.hasName
}

func (o Operand) IsRequired() bool {
	return o.quantifier == Quantifier_One
}

func (o Operand) IsOptional() bool {
	return o.quantifier == Quantifier_Optional
}

func (o Operand) IsVariadic() bool {
	return o.quantifier == Quantifier_Variadic
}

// Returns true if the operand is a reference to another id
func (o Operand) IsReference() bool {
	return o.kind == Kind_IdRef
}

// Returns true if the operand kind itself carries an unbounded list of words
func (o Operand) HasUnboundedTail() bool {
	return o.kind == Kind_LiteralString || o.kind == Kind_Decoration
}

func (o Operand) String() string {
	if o.hasName {
		return fmt.Sprintf("%v%v (%v)", o.kind, o.quantifier, o.name)
	}

	return fmt.Sprintf("%v%v", o.kind, o.quantifier)
}
