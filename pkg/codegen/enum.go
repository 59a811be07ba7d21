package codegen

import (
	"fmt"
)

type enumEntry struct {
	name     string
	value    string
	hasValue bool
}

// Enumeration declaration. Entries are rendered in the order they were added
type Enum struct {
	builder *Builder
	name    string
	entries []enumEntry
}

// Returns an empty enumeration with the given name
func (b *Builder) Enum(name string) *Enum {
	return &Enum{builder: b, name: name}
}

// Returns the name of the enumeration
func (e *Enum) Name() string {
	return e.name
}

// Returns the number of entries
func (e *Enum) Len() int {
	return len(e.entries)
}

// Appends an entry with an implicit value
func (e *Enum) Add(name string) *Enum {
	e.entries = append(e.entries, enumEntry{name: name})
	return e
}

// Appends an entry with an explicit value
func (e *Enum) AddValue(name string, value any) *Enum {
	e.entries = append(e.entries, enumEntry{name: name, value: fmt.Sprint(value), hasValue: true})
	return e
}

func (e *Enum) Serialize() string {
	d := e.builder.dialect
	out := e.builder.emitter()

	out.AppendLine(fmt.Sprintf("enum %s {", d.Escape(e.name)))
	out.EnterScope()
	for _, entry := range e.entries {
		if entry.hasValue {
			out.AppendLine(fmt.Sprintf("%s = %s,", d.Escape(entry.name), entry.value))
		} else {
			out.AppendLine(d.Escape(entry.name) + ",")
		}
	}
	out.ExitScope()
	out.AppendLine("}")

	return out.String()
}
