package definitions

import (
	"testing"

	"github.com/Manu343726/spvgen/pkg/codegen"
	"github.com/Manu343726/spvgen/pkg/dialect"
	"github.com/Manu343726/spvgen/pkg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGrammar = `{
  "instruction_printing_class": [
    { "tag": "@exclude" },
    { "tag": "Miscellaneous", "heading": "Miscellaneous Instructions" },
    { "tag": "Debug", "heading": "Debug Instructions" },
    { "tag": "Type-Declaration", "heading": "Type-Declaration Instructions" },
    { "tag": "Constant-Creation", "heading": "Constant-Creation Instructions" },
    { "tag": "Memory", "heading": "Memory Instructions" }
  ],
  "instructions": [
    { "opname": "OpNop", "class": "Miscellaneous", "opcode": 0 },
    { "opname": "OpString", "class": "Debug", "opcode": 7,
      "operands": [ { "kind": "IdResult" }, { "kind": "LiteralString" } ] },
    { "opname": "OpTypeVoid", "class": "Type-Declaration", "opcode": 19,
      "operands": [ { "kind": "IdResult" } ] },
    { "opname": "OpTypeBool", "class": "Type-Declaration", "opcode": 20,
      "operands": [ { "kind": "IdResult" } ] },
    { "opname": "OpConstantTrue", "class": "Constant-Creation", "opcode": 41,
      "operands": [ { "kind": "IdResultType" }, { "kind": "IdResult" } ] },
    { "opname": "OpFunctionCall", "class": "Function", "opcode": 57,
      "operands": [ { "kind": "IdResultType" }, { "kind": "IdResult" }, { "kind": "IdRef" }, { "kind": "IdRef", "quantifier": "*" } ] },
    { "opname": "OpVariable", "class": "Memory", "opcode": 59,
      "operands": [ { "kind": "IdResultType" }, { "kind": "IdResult" }, { "kind": "StorageClass" }, { "kind": "IdRef", "quantifier": "?" } ] },
    { "opname": "OpLoad", "class": "Memory", "opcode": 61,
      "operands": [ { "kind": "IdResultType" }, { "kind": "IdResult" }, { "kind": "IdRef" }, { "kind": "MemoryAccess", "quantifier": "?" } ] },
    { "opname": "OpStore", "class": "Memory", "opcode": 62,
      "operands": [ { "kind": "IdRef" }, { "kind": "IdRef" }, { "kind": "MemoryAccess", "quantifier": "?" } ] }
  ]
}`

var testPreamble = codegen.Preamble{
	Package: "spirv",
	Imports: []string{"spirv.spv"},
}

func loadTestGrammar(t *testing.T, document string) *grammar.Grammar {
	t.Helper()

	g, err := grammar.Parse([]byte(document), grammar.Format_JSON)
	require.NoError(t, err)
	return g
}

func populate(t *testing.T, definition Definition, document string) *codegen.Module {
	t.Helper()

	module := definition.Populate(loadTestGrammar(t, document), codegen.NewBuilder(dialect.D), testPreamble)
	require.NotNil(t, module)
	return module
}

func functions(module *codegen.Module) map[string]*codegen.Function {
	result := make(map[string]*codegen.Function)

	for _, node := range module.Nodes() {
		if f, ok := node.(*codegen.Function); ok {
			result[f.Name()] = f
		}
	}

	return result
}

func findFunction(t *testing.T, module *codegen.Module, name string) string {
	t.Helper()

	f, ok := functions(module)[name]
	require.True(t, ok, "module %v has no function %v", module.Name(), name)
	return f.Serialize()
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(Reflection(), TypeInfo(), Mnemonics())

	assert.Equal(t, []string{"mnemonics", "reflection", "typeinfo"}, r.Names())
	assert.Equal(t, []string{"mnemonics", "reflection", "typeinfo"}, r.Names())

	definition, err := r.Lookup("typeinfo")
	require.NoError(t, err)
	assert.Equal(t, "typeinfo", definition.Name())

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "mnemonics", all[0].Name())
	assert.Equal(t, "typeinfo", all[2].Name())
}

func TestRegistry_UnknownDefinition(t *testing.T) {
	_, err := Default.Lookup("nope")

	assert.ErrorIs(t, err, ErrUnknownDefinition)
	assert.Contains(t, err.Error(), `"nope"`)
	assert.Contains(t, err.Error(), "reflection")
}

func TestRegistry_RegisterPanics(t *testing.T) {
	r := NewRegistry(Reflection())

	assert.Panics(t, func() { r.Register(Reflection()) })
	assert.Panics(t, func() { r.Register(named{All}) })
	assert.NotPanics(t, func() { r.Register(named{"custom"}) })
	assert.Equal(t, []string{"custom", "reflection"}, r.Names())
}

type named struct {
	name string
}

func (n named) Name() string {
	return n.name
}

func (n named) Description() string {
	return ""
}

func (n named) Populate(g *grammar.Grammar, b *codegen.Builder, preamble codegen.Preamble) *codegen.Module {
	return b.Module(n.name, preamble)
}

func TestDefault_Descriptions(t *testing.T) {
	for _, definition := range Default.All() {
		assert.NotEmpty(t, definition.Description(), definition.Name())
	}
}

func TestPopulate_Idempotent(t *testing.T) {
	for _, definition := range Default.All() {
		t.Run(definition.Name(), func(t *testing.T) {
			module := populate(t, definition, testGrammar)

			assert.Equal(t, definition.Name(), module.Name())
			assert.Equal(t, module.Serialize(), module.Serialize())
		})
	}
}

func TestPopulate_EmptyGrammar(t *testing.T) {
	const empty = `{"instruction_printing_class": [], "instructions": []}`

	for _, definition := range Default.All() {
		t.Run(definition.Name(), func(t *testing.T) {
			assert.NotEmpty(t, populate(t, definition, empty).Serialize())
		})
	}
}
