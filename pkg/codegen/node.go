// Package codegen builds source text out of a tree of structural nodes. Nodes are
// assembled once by an emitter definition and rendered on demand: rendering never
// mutates the tree, so serializing the same tree twice yields the same text.
package codegen

import (
	"github.com/Manu343726/spvgen/pkg/dialect"
)

// A piece of generated code that can render itself to text
type Node interface {
	// Returns the rendered text of the node and its children, one line per
	// statement, each line terminated by a newline
	Serialize() string
}

// Creates nodes bound to a target dialect
type Builder struct {
	dialect *dialect.Dialect
}

// Returns a builder that renders nodes in the given dialect
func NewBuilder(d *dialect.Dialect) *Builder {
	if d == nil {
		panic("codegen: nil dialect")
	}

	return &Builder{dialect: d}
}

// Returns the dialect nodes of this builder are rendered in
func (b *Builder) Dialect() *dialect.Dialect {
	return b.dialect
}

func (b *Builder) emitter() *Emitter {
	return NewEmitter(b.dialect.Indent)
}

// Appends the rendered text of a child node. Nodes rendering to nothing are skipped
func appendNode(e *Emitter, node Node) {
	if node == nil {
		return
	}

	if text := node.Serialize(); text != "" {
		e.AppendLine(text)
	}
}

// Fixed block of code, rendered verbatim line by line
type Literal struct {
	builder *Builder
	text    string
}

// Returns a node that renders text as is
func (b *Builder) Literal(text string) *Literal {
	return &Literal{builder: b, text: text}
}

// Returns the text the node was created with
func (l *Literal) Text() string {
	return l.text
}

func (l *Literal) Serialize() string {
	e := l.builder.emitter()
	e.AppendLine(l.text)
	return e.String()
}

// Documentation comment
type Doc struct {
	builder *Builder
	text    string
}

// Returns a documentation comment wrapping text
func (b *Builder) Doc(text string) *Doc {
	return &Doc{builder: b, text: text}
}

func (d *Doc) Serialize() string {
	e := d.builder.emitter()
	e.AppendLine(d.builder.dialect.DocOpen)
	e.EnterScope()
	e.AppendLine(d.text)
	e.ExitScope()
	e.AppendLine(d.builder.dialect.DocClose)
	return e.String()
}
