package dialect

var dKeywords = []string{
	"abstract", "alias", "align", "asm", "assert", "auto",
	"body", "bool", "break", "byte",
	"case", "cast", "catch", "cdouble", "cent", "cfloat", "char", "class", "const", "continue", "creal",
	"dchar", "debug", "default", "delegate", "delete", "deprecated", "do", "double",
	"else", "enum", "export", "extern",
	"false", "final", "finally", "float", "for", "foreach", "foreach_reverse", "function",
	"goto",
	"idouble", "if", "ifloat", "immutable", "import", "in", "inout", "int", "interface", "invariant", "ireal", "is",
	"lazy", "long",
	"macro", "mixin", "module",
	"new", "nothrow", "null",
	"out", "override",
	"package", "pragma", "private", "protected", "public", "pure",
	"real", "ref", "return",
	"scope", "shared", "short", "static", "struct", "super", "switch", "synchronized",
	"template", "this", "throw", "true", "try", "typeid", "typeof",
	"ubyte", "ucent", "uint", "ulong", "union", "unittest", "ushort",
	"version", "void",
	"wchar", "while", "with",
	"__FILE__", "__FILE_FULL_PATH__", "__FUNCTION__", "__LINE__", "__MODULE__", "__PRETTY_FUNCTION__",
	"__gshared", "__parameters", "__rvalue", "__traits", "__vector",
}

var dTypes = []string{
	"bool", "byte", "ubyte", "short", "ushort", "int", "uint", "long", "ulong",
	"float", "double", "real", "char", "wchar", "dchar", "void", "string", "size_t",
}

// The D programming language, as consumed by the nulib/numem based SPIR-V front end
var D = New(Dialect{
	Name:               "d",
	FileExtension:      ".d",
	Indent:             "    ",
	EscapeSuffix:       "_",
	DocOpen:            "/**",
	DocClose:           "*/",
	CommentOpen:        "/*",
	CommentClose:       "*/",
	FunctionAttributes: "@nogc",
	ExhaustiveSwitch:   "final",
	ModuleFormat:       "module %s;",
	ImportFormat:       "import %s;",
}, dKeywords, dTypes)

var dialects = map[string]*Dialect{
	D.Name: D,
}

// Returns the dialect registered under name
func ByName(name string) (*Dialect, bool) {
	d, ok := dialects[name]
	return d, ok
}
