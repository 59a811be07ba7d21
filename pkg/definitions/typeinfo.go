package definitions

import (
	"github.com/Manu343726/spvgen/pkg/codegen"
	"github.com/Manu343726/spvgen/pkg/grammar"
)

const (
	typeDeclarationClass  = "Type-Declaration"
	constantCreationClass = "Constant-Creation"
)

type typeInfo struct{}

// Returns the definition of the type information module: which opcodes declare types
// or create constants, and where their result id lives
func TypeInfo() Definition {
	return typeInfo{}
}

func (typeInfo) Name() string {
	return "typeinfo"
}

func (typeInfo) Description() string {
	return "Type declaration and constant creation queries, result operand index"
}

// Returns a predicate that is true for the instructions of one class
func classPredicate(g *grammar.Grammar, b *codegen.Builder, name string, doc string, tag string) *codegen.Function {
	dispatch := lookupSwitch(b, "return false;")
	returnTrue := b.Literal("return true;")

	for _, instruction := range g.InstructionsOfClass(tag) {
		dispatch.AddCase(instruction.OpName(), returnTrue)
	}

	return lookupFunction(b, "bool", name, doc).Add(dispatch)
}

func (t typeInfo) Populate(g *grammar.Grammar, b *codegen.Builder, preamble codegen.Preamble) *codegen.Module {
	resultIndex := b.Conditional().
		If("hasResultType(code)", b.Literal("return 1;")).
		If("hasResult(code)", b.Literal("return 0;")).
		Else(b.Literal("return -1;"))

	return b.Module(t.Name(), preamble).
		Import(qualify(preamble, Reflection().Name())).
		Add(
			classPredicate(g, b, "isTypeDeclaration", "Gets whether [Op] is a type declaration.", typeDeclarationClass),
			classPredicate(g, b, "isConstantCreation", "Gets whether [Op] creates a constant.", constantCreationClass),
			lookupFunction(b, "int", "getResultIndex", "Gets the operand index of the result id of [Op], or -1 if it has none.").
				Add(resultIndex),
		)
}

// Returns the name of a sibling generated module
func qualify(preamble codegen.Preamble, module string) string {
	if preamble.Package == "" {
		return module
	}

	return preamble.Package + "." + module
}
