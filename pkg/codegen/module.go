package codegen

import (
	"fmt"
	"io"
	"strings"
)

// Header boilerplate of a generated module
type Preamble struct {
	// Copyright holder
	Project string
	// Copyright year, omitted when zero
	Year int
	// License notice line
	License string
	Authors []string
	// Name of the tool reported in the do-not-edit notice
	Generator string
	// Package the module is declared in (e.g. "spirv")
	Package string
	// Modules every generated module imports
	Imports []string
}

func (p Preamble) header() string {
	var lines []string

	if p.Project != "" {
		if p.Year != 0 {
			lines = append(lines, fmt.Sprintf("Copyright © %d, %s", p.Year, p.Project))
		} else {
			lines = append(lines, "Copyright © "+p.Project)
		}
	}

	if p.License != "" {
		lines = append(lines, p.License)
	}

	if len(p.Authors) > 0 {
		lines = append(lines, "", "Authors: "+strings.Join(p.Authors, ", "))
	}

	if p.Generator != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, fmt.Sprintf("This code is auto-generated by %s, do not edit manually.", p.Generator))
	}

	return strings.Join(lines, "\n")
}

// Unit of generated code written to one output file: preamble, module declaration,
// imports and an ordered list of top level nodes
type Module struct {
	builder  *Builder
	name     string
	preamble Preamble
	imports  []string
	nodes    []Node
}

// Returns an empty module named name
func (b *Builder) Module(name string, preamble Preamble) *Module {
	preamble.Authors = append([]string(nil), preamble.Authors...)
	preamble.Imports = append([]string(nil), preamble.Imports...)

	return &Module{builder: b, name: name, preamble: preamble}
}

// Returns the unqualified name of the module
func (m *Module) Name() string {
	return m.name
}

// Returns the module name qualified with the preamble package
func (m *Module) QualifiedName() string {
	if m.preamble.Package == "" {
		return m.name
	}

	return m.preamble.Package + "." + m.name
}

// Returns the module names imported by the module, preamble imports first
func (m *Module) Imports() []string {
	return append(append([]string(nil), m.preamble.Imports...), m.imports...)
}

// Appends an import after the preamble ones
func (m *Module) Import(module string) *Module {
	m.imports = append(m.imports, module)
	return m
}

// Appends top level nodes
func (m *Module) Add(nodes ...Node) *Module {
	m.nodes = append(m.nodes, nodes...)
	return m
}

// Returns the top level nodes of the module
func (m *Module) Nodes() []Node {
	return append([]Node(nil), m.nodes...)
}

func (m *Module) renderPreamble(e *Emitter) {
	d := m.builder.dialect

	if header := m.preamble.header(); header != "" {
		e.AppendLine(d.CommentOpen)
		e.EnterScope()
		e.AppendLine(header)
		e.ExitScope()
		e.AppendLine(d.CommentClose)
	}

	e.AppendLine(fmt.Sprintf(d.ModuleFormat, m.QualifiedName()))

	for _, module := range m.Imports() {
		e.AppendLine(fmt.Sprintf(d.ImportFormat, module))
	}
}

func (m *Module) Serialize() string {
	e := m.builder.emitter()

	m.renderPreamble(e)
	e.AppendLine("")

	for _, node := range m.nodes {
		if text := node.Serialize(); text != "" {
			e.AppendLine(text)
			e.AppendLine("")
		}
	}

	return e.String()
}

// Writes the rendered module to w
func (m *Module) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.Serialize())
	return int64(n), err
}
