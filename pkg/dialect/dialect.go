// Package dialect holds the syntax data of the languages spvgen can emit: reserved
// words, identifier conventions and the delimiters the code builders use.
package dialect

// Describes the lexical conventions of a target source language
type Dialect struct {
	// Short name of the dialect (e.g. "d")
	Name string
	// Extension of generated source files, including the dot
	FileExtension string
	// Whitespace used for one indentation level
	Indent string
	// Suffix appended to identifiers colliding with a reserved word
	EscapeSuffix string
	// Opening and closing delimiters of documentation comments
	DocOpen, DocClose string
	// Opening and closing delimiters of regular block comments
	CommentOpen, CommentClose string
	// Attributes appended after a function parameter list (may be empty)
	FunctionAttributes string
	// Prefix of a switch statement that has no default case
	ExhaustiveSwitch string
	// fmt format of the module declaration, given the qualified module name
	ModuleFormat string
	// fmt format of an import statement, given the imported module
	ImportFormat string

	keywords map[string]struct{}
	types    map[string]struct{}
}

// Creates a dialect with the given reserved words and builtin type names
func New(base Dialect, keywords []string, types []string) *Dialect {
	base.keywords = make(map[string]struct{}, len(keywords))
	base.types = make(map[string]struct{}, len(types))

	for _, keyword := range keywords {
		base.keywords[keyword] = struct{}{}
	}

	for _, t := range types {
		base.types[t] = struct{}{}
	}

	return &base
}

// Returns true if text is a reserved word of the dialect
func (d *Dialect) IsKeyword(text string) bool {
	_, ok := d.keywords[text]
	return ok
}

// Returns true if text names a builtin type of the dialect
func (d *Dialect) IsType(text string) bool {
	_, ok := d.types[text]
	return ok
}

// Returns text unchanged unless it is a reserved word, in which case the escape suffix is appended
func (d *Dialect) Escape(text string) string {
	if d.IsKeyword(text) {
		return text + d.EscapeSuffix
	}

	return text
}

// Converts a grammar tag into an identifier usable as a generated name.
// Tags starting with an uppercase letter are camel cased, then reserved words are escaped
func (d *Dialect) Identifier(text string) string {
	if StartsUpper(text) {
		text = CamelCase(text)
	}

	return d.Escape(text)
}
