package definitions

import (
	"fmt"

	"github.com/Manu343726/spvgen/pkg/codegen"
	"github.com/Manu343726/spvgen/pkg/utils"
)

// Parameter every lookup function takes
var opCodeParameter = codegen.Parameter{Type: "Op", Name: "code"}

// Returns a documented function of the opcode
func lookupFunction(b *codegen.Builder, returnType string, name string, doc string) *codegen.Function {
	return b.Function(returnType, name, opCodeParameter).SetDoc(doc)
}

// Returns a dispatch over the opcode that falls back to the given statement
func lookupSwitch(b *codegen.Builder, fallback string) *codegen.Switch {
	return b.Switch(opCodeParameter.Name, opCodeParameter.Type).SetDefault(b.Literal(fallback))
}

func returnValue(b *codegen.Builder, value any) *codegen.Literal {
	return b.Literal(fmt.Sprintf("return %v;", value))
}

// Returns a body that builds a vector of operand indices
func returnIndices(b *codegen.Builder, indices []int) *codegen.Literal {
	return b.Literal(fmt.Sprintf("uint[%d] tmp = [%s];\nreturn vector!uint(tmp);", len(indices), utils.FormatSlice(indices, ", ")))
}
