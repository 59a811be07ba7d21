package definitions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeInfo_Module(t *testing.T) {
	module := populate(t, TypeInfo(), testGrammar)

	assert.Equal(t, "spirv.typeinfo", module.QualifiedName())
	assert.Equal(t, []string{"spirv.spv", "spirv.reflection"}, module.Imports())
	assert.Len(t, functions(module), 3)
}

func TestTypeInfo_ClassPredicates(t *testing.T) {
	module := populate(t, TypeInfo(), testGrammar)

	assert.Contains(t, findFunction(t, module, "isTypeDeclaration"), "        default:\n"+
		"            return false;\n"+
		"        \n"+
		"        case Op.OpTypeVoid:\n"+
		"        case Op.OpTypeBool:\n"+
		"            return true;\n"+
		"    }\n")

	constants := findFunction(t, module, "isConstantCreation")
	assert.Contains(t, constants, "        case Op.OpConstantTrue:\n            return true;\n")
	assert.NotContains(t, constants, "OpTypeVoid")
}

func TestTypeInfo_ResultIndex(t *testing.T) {
	module := populate(t, TypeInfo(), testGrammar)

	assert.Equal(t, "/**\n"+
		"    Gets the operand index of the result id of [Op], or -1 if it has none.\n"+
		"*/\n"+
		"int getResultIndex(Op code) @nogc {\n"+
		"    if (hasResultType(code)) {\n"+
		"        return 1;\n"+
		"    } else if (hasResult(code)) {\n"+
		"        return 0;\n"+
		"    } else {\n"+
		"        return -1;\n"+
		"    }\n"+
		"}\n", findFunction(t, module, "getResultIndex"))
}
