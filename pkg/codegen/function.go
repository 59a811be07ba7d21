package codegen

import (
	"fmt"
	"strings"

	"github.com/Manu343726/spvgen/pkg/utils"
)

// Typed function parameter
type Parameter struct {
	Type string
	Name string
}

func (p Parameter) String() string {
	return p.Type + " " + p.Name
}

// Function definition with an optional doc comment and a body made of child nodes
type Function struct {
	builder    *Builder
	returnType string
	name       string
	params     []Parameter
	doc        *Doc
	body       []Node
}

// Returns an empty function definition
func (b *Builder) Function(returnType string, name string, params ...Parameter) *Function {
	return &Function{
		builder:    b,
		returnType: returnType,
		name:       name,
		params:     append([]Parameter(nil), params...),
	}
}

// Returns the name of the function
func (f *Function) Name() string {
	return f.name
}

// Returns the return type of the function
func (f *Function) ReturnType() string {
	return f.returnType
}

// Returns a copy of the parameter list
func (f *Function) Parameters() []Parameter {
	return append([]Parameter(nil), f.params...)
}

// Sets the documentation comment rendered before the signature
func (f *Function) SetDoc(text string) *Function {
	f.doc = f.builder.Doc(text)
	return f
}

// Appends nodes to the function body
func (f *Function) Add(nodes ...Node) *Function {
	f.body = append(f.body, nodes...)
	return f
}

func (f *Function) signature() string {
	params := strings.Join(utils.Map(f.params, Parameter.String), ", ")
	signature := fmt.Sprintf("%s %s(%s)", f.returnType, f.builder.dialect.Escape(f.name), params)

	if attributes := f.builder.dialect.FunctionAttributes; attributes != "" {
		signature += " " + attributes
	}

	return signature + " {"
}

func (f *Function) Serialize() string {
	e := f.builder.emitter()

	if f.doc != nil {
		appendNode(e, f.doc)
	}

	e.AppendLine(f.signature())
	e.EnterScope()
	for _, node := range f.body {
		appendNode(e, node)
	}
	e.ExitScope()
	e.AppendLine("}")

	return e.String()
}
