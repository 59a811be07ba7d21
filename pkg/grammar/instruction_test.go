package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstruction_ReferenceRun(t *testing.T) {
	instruction := NewInstruction("OpFunctionCall", 57, "Function",
		NewOperand(Kind_IdResultType, Quantifier_One),
		NewOperand(Kind_IdResult, Quantifier_One),
		NewOperand(Kind_IdRef, Quantifier_One),
		NewOperand(Kind_IdRef, Quantifier_Variadic),
	)

	assert.Equal(t, Unbounded, instruction.MaxOperandCount())
	assert.Equal(t, []int{2}, instruction.RequiredReferenceIndices())
	assert.True(t, instruction.HasTrailingVariadicReferences())
	assert.Equal(t, Unbounded, instruction.OptionalOperandCount())
	assert.Equal(t, []string{"IdResultType", "IdResult", "IdRef", "IdRef"}, instruction.OperandKinds())
}

func TestInstruction_VariadicNonReferenceIsNotTrailingReferences(t *testing.T) {
	instruction := NewInstruction("OpSwitch", 251, "Control-Flow",
		NewOperand(Kind_IdRef, Quantifier_One),
		NewOperand(Kind_IdRef, Quantifier_One),
		NewOperand("PairLiteralIntegerIdRef", Quantifier_Variadic),
	)

	assert.False(t, instruction.HasTrailingVariadicReferences())
	assert.Equal(t, Unbounded, instruction.MaxOperandCount())
	assert.Equal(t, []int{0, 1}, instruction.RequiredReferenceIndices())
}

func TestInstruction_BoundedOptionalOperands(t *testing.T) {
	instruction := NewInstruction("OpLoad", 61, "Memory",
		NewOperand(Kind_IdResultType, Quantifier_One),
		NewOperand(Kind_IdResult, Quantifier_One),
		NewOperand(Kind_IdRef, Quantifier_One),
		NewOperand("MemoryAccess", Quantifier_Optional),
	)

	assert.Equal(t, 3, instruction.MinOperandCount())
	assert.Equal(t, 4, instruction.MaxOperandCount())
	assert.Equal(t, 1, instruction.OptionalOperandCount())
}

func TestInstruction_UnboundedTailAnywhere(t *testing.T) {
	// The unbounded kind is not last but still makes the count unbounded
	instruction := NewInstruction("OpEntryPoint", 15, "Mode-Setting",
		NewOperand("ExecutionModel", Quantifier_One),
		NewOperand(Kind_IdRef, Quantifier_One),
		NewOperand(Kind_LiteralString, Quantifier_One),
		NewOperand(Kind_IdRef, Quantifier_Optional),
	)

	assert.Equal(t, Unbounded, instruction.MaxOperandCount())
	assert.Equal(t, 3, instruction.MinOperandCount())
}

func TestInstruction_OperandsAreCopied(t *testing.T) {
	operands := []Operand{NewOperand(Kind_IdResult, Quantifier_One)}
	instruction := NewInstruction("OpTypeVoid", 19, "Type-Declaration", operands...)

	operands[0] = NewOperand(Kind_IdRef, Quantifier_One)
	returned := instruction.Operands()
	returned[0] = NewOperand(Kind_IdRef, Quantifier_One)

	assert.True(t, instruction.HasResult())
	assert.Empty(t, instruction.RequiredReferenceIndices())
}

func TestOperand_Name(t *testing.T) {
	name, ok := NewNamedOperand(Kind_IdRef, Quantifier_Optional, "'Initializer'").Name()
	assert.True(t, ok)
	assert.Equal(t, "'Initializer'", name)

	_, ok = NewOperand(Kind_IdRef, Quantifier_One).Name()
	assert.False(t, ok)
}

func TestParseQuantifier(t *testing.T) {
	for _, q := range []Quantifier{Quantifier_One, Quantifier_Optional, Quantifier_Variadic} {
		parsed, err := ParseQuantifier(q.String())
		require.NoError(t, err)
		assert.Equal(t, q, parsed)
	}

	_, err := ParseQuantifier("+")
	assert.ErrorIs(t, err, ErrMalformedGrammar)
}

func TestInstruction_String(t *testing.T) {
	instruction := NewInstruction("OpVariable", 59, "Memory",
		NewOperand(Kind_IdResultType, Quantifier_One),
		NewNamedOperand(Kind_IdRef, Quantifier_Optional, "'Initializer'"),
	)

	assert.Equal(t, "OpVariable (59, Memory) IdResultType IdRef? ('Initializer')", instruction.String())
}
