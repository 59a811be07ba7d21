package definitions

import (
	"fmt"
	"strconv"

	"github.com/Manu343726/spvgen/pkg/codegen"
	"github.com/Manu343726/spvgen/pkg/grammar"
)

type mnemonics struct{}

// Returns the definition of the mnemonics module, which maps opcodes to their names and back
func Mnemonics() Definition {
	return mnemonics{}
}

func (mnemonics) Name() string {
	return "mnemonics"
}

func (mnemonics) Description() string {
	return "Opcode to mnemonic conversion and mnemonic parsing"
}

func (m mnemonics) Populate(g *grammar.Grammar, b *codegen.Builder, preamble codegen.Preamble) *codegen.Module {
	opName := lookupSwitch(b, "return null;")
	parse := b.Conditional()

	for _, instruction := range g.Instructions() {
		name := instruction.OpName()
		quoted := strconv.Quote(name)

		opName.AddCase(name, returnValue(b, quoted))
		parse.If("name == "+quoted, b.Literal(fmt.Sprintf("code = Op.%s;\nreturn true;", name)))
	}

	return b.Module(m.Name(), preamble).Add(
		lookupFunction(b, "string", "getOpName", "Gets the mnemonic of [Op], or null for unknown opcodes.").
			Add(opName),
		b.Function("bool", "tryParseOpName", codegen.Parameter{Type: "string", Name: "name"}, codegen.Parameter{Type: "ref Op", Name: "code"}).
			SetDoc("Parses a mnemonic into [Op], returning whether the mnemonic is known.").
			Add(parse, b.Literal("return false;")),
	)
}
