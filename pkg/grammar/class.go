package grammar

import "github.com/Manu343726/spvgen/pkg/dialect"

// Tag that marks classes which never make it into the model
const ExcludedClassTag = "@exclude"

// An instruction printing class of the grammar
type Class struct {
	tag         string
	description string
	identifier  string
}

var unknownClass = &Class{
	description: "Unknown",
	identifier:  "unknown",
}

// Returns the class reported for opcodes and tags the grammar does not know about
func UnknownClass() *Class {
	return unknownClass
}

func newClass(tag string, description string, d *dialect.Dialect) *Class {
	return &Class{
		tag:         tag,
		description: description,
		identifier:  d.Identifier(tag),
	}
}

// Returns the raw grammar tag (e.g. "Type-Declaration")
func (c *Class) Tag() string {
	return c.tag
}

// Returns the human readable heading of the class
func (c *Class) Description() string {
	return c.description
}

// Returns the canonical identifier of the class in the target dialect (e.g. "typeDeclaration")
func (c *Class) Identifier() string {
	return c.identifier
}

// Returns the tag in pascal case, for composing names like "isTypeDeclaration"
func (c *Class) PascalName() string {
	if c.IsUnknown() {
		return "Unknown"
	}

	return dialect.PascalCase(c.tag)
}

func (c *Class) IsUnknown() bool {
	return c == unknownClass
}

func (c *Class) String() string {
	return c.identifier
}
