// Package definitions holds the emitter definitions spvgen knows how to run. Each
// definition turns a grammar model into one generated source module.
package definitions

import (
	"errors"
	"fmt"

	"github.com/Manu343726/spvgen/pkg/codegen"
	"github.com/Manu343726/spvgen/pkg/grammar"
	"github.com/Manu343726/spvgen/pkg/utils"
	"golang.org/x/exp/slices"
)

var ErrUnknownDefinition = errors.New("unknown definition")

// Name that selects every registered definition
const All = "all"

// Unit that populates one generated module from a grammar model
type Definition interface {
	// Returns the identifier of the definition, also used as module and output file name
	Name() string
	// Returns a one line summary of what the generated module contains
	Description() string
	// Builds the module. The grammar is only read
	Populate(g *grammar.Grammar, b *codegen.Builder, preamble codegen.Preamble) *codegen.Module
}

// Table of definitions indexed by name
type Registry struct {
	definitions map[string]Definition
}

// Returns a registry holding the given definitions
func NewRegistry(definitions ...Definition) *Registry {
	r := &Registry{definitions: make(map[string]Definition, len(definitions))}

	for _, definition := range definitions {
		r.Register(definition)
	}

	return r
}

// Adds a definition to the registry. Panics if the name is taken or reserved
func (r *Registry) Register(definition Definition) {
	name := definition.Name()

	if name == All {
		panic(fmt.Sprintf("definitions: %q is a reserved definition name", All))
	}

	if _, exists := r.definitions[name]; exists {
		panic(fmt.Sprintf("definitions: definition %q registered twice", name))
	}

	r.definitions[name] = definition
}

// Returns the definition with the given name
func (r *Registry) Lookup(name string) (Definition, error) {
	if definition, ok := r.definitions[name]; ok {
		return definition, nil
	}

	return nil, utils.MakeError(ErrUnknownDefinition, "%q (known definitions: %v)", name, utils.FormatSlice(r.Names(), ", "))
}

// Returns the names of all registered definitions, sorted
func (r *Registry) Names() []string {
	names := utils.Keys(r.definitions)
	slices.Sort(names)
	return names
}

// Returns all registered definitions sorted by name
func (r *Registry) All() []Definition {
	return utils.Map(r.Names(), func(name string) Definition {
		return r.definitions[name]
	})
}

// Registry with the builtin definitions
var Default = NewRegistry(
	Reflection(),
	TypeInfo(),
	Mnemonics(),
)
