package definitions

import (
	"fmt"

	"github.com/Manu343726/spvgen/pkg/codegen"
	"github.com/Manu343726/spvgen/pkg/grammar"
)

type reflection struct{}

// Returns the definition of the instruction reflection module: class membership,
// result presence, operand counts and reference operand indices per opcode
func Reflection() Definition {
	return reflection{}
}

func (reflection) Name() string {
	return "reflection"
}

func (reflection) Description() string {
	return "Opcode classes, result presence, operand counts and ID reference indices"
}

func (r reflection) Populate(g *grammar.Grammar, b *codegen.Builder, preamble codegen.Preamble) *codegen.Module {
	module := b.Module(r.Name(), preamble).
		Import("nulib.collections").
		Import("numem")

	classes := g.Classes()

	opClass := b.Enum("OpClass")
	for _, class := range classes {
		opClass.Add(class.Identifier())
	}
	opClass.Add(grammar.UnknownClass().Identifier())
	module.Add(opClass)

	getClass := lookupSwitch(b, "return OpClass.unknown;")
	classBodies := make(map[string]codegen.Node, len(classes))

	for _, class := range classes {
		body := b.Literal(fmt.Sprintf("return OpClass.%s;", class.Identifier()))
		classBodies[class.Tag()] = body
		getClass.ReserveBody(body)

		module.Add(lookupFunction(b, "bool", "is"+class.PascalName(),
			fmt.Sprintf("Gets whether [Op] is of the %s class.", class.Description())).
			Add(b.Literal(fmt.Sprintf("return getClass(code) == OpClass.%s;", class.Identifier()))))
	}

	returnTrue := b.Literal("return true;")
	hasResult := lookupSwitch(b, "return false;")
	hasResultType := lookupSwitch(b, "return false;")
	minLength := lookupSwitch(b, "return 0;")
	maxLength := lookupSwitch(b, "return 0;")
	refIndices := lookupSwitch(b, "return vector!(uint).init;")
	optionalRefIndices := lookupSwitch(b, "return vector!(uint).init;")
	arbitraryRefs := lookupSwitch(b, "return false;")

	for _, instruction := range g.Instructions() {
		name := instruction.OpName()

		if body, ok := classBodies[instruction.ClassTag()]; ok {
			getClass.AddCase(name, body)
		}

		if instruction.HasResult() {
			hasResult.AddCase(name, returnTrue)
		}

		if instruction.HasResultType() {
			hasResultType.AddCase(name, returnTrue)
		}

		minLength.AddCase(name, returnValue(b, instruction.MinOperandCount()))
		maxLength.AddCase(name, returnValue(b, instruction.MaxOperandCount()))

		if indices := instruction.RequiredReferenceIndices(); len(indices) > 0 {
			refIndices.AddCase(name, returnIndices(b, indices))
		}

		if indices := instruction.OptionalReferenceIndices(); len(indices) > 0 {
			optionalRefIndices.AddCase(name, returnIndices(b, indices))
		}

		if instruction.HasTrailingVariadicReferences() {
			arbitraryRefs.AddCase(name, returnTrue)
		}
	}

	return module.Add(
		lookupFunction(b, "OpClass", "getClass", "Gets the opcode class of [Op].").Add(getClass),
		lookupFunction(b, "bool", "hasResult", "Gets whether [Op] returns a result.").Add(hasResult),
		lookupFunction(b, "bool", "hasResultType", "Gets whether [Op] returns a result type.").Add(hasResultType),
		lookupFunction(b, "uint", "getMinLength", "Gets the minimum number of operands for [Op]").Add(minLength),
		lookupFunction(b, "uint", "getMaxLength", "Gets the maximum number of operands for [Op]").Add(maxLength),
		lookupFunction(b, "vector!uint", "getIDRefIndices", "Gets the indices for reference IDs for [Op]").Add(refIndices),
		lookupFunction(b, "vector!uint", "getOptionalIDRefIndices", "Gets the indices for optional reference IDs for [Op]").Add(optionalRefIndices),
		lookupFunction(b, "bool", "getHasArbitraryRefIndices", "Gets whether [Op] ends with a list of arbitrary id refs.").Add(arbitraryRefs),
	)
}
