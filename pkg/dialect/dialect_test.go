package dialect

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"Type-Declaration":       "typeDeclaration",
		"Relational_and_Logical": "relationalAndLogical",
		"Miscellaneous":          "miscellaneous",
		"Device-Side_Enqueue":    "deviceSideEnqueue",
		"Non-Uniform":            "nonUniform",
		"":                       "",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, CamelCase(input), "input %q", input)
	}
}

func TestPascalCase(t *testing.T) {
	assert.Equal(t, "TypeDeclaration", PascalCase("Type-Declaration"))
	assert.Equal(t, "RelationalandLogical", PascalCase("Relational_and_Logical"))
	assert.Equal(t, "Debug", PascalCase("debug"))
	assert.Equal(t, "", PascalCase(""))
}

func TestD_Escape(t *testing.T) {
	assert.Equal(t, "debug_", D.Escape("debug"))
	assert.Equal(t, "function_", D.Escape("function"))
	assert.Equal(t, "memory", D.Escape("memory"))
	assert.True(t, D.IsKeyword("foreach_reverse"))
	assert.False(t, D.IsKeyword("Debug"))
}

func TestD_Identifier(t *testing.T) {
	assert.Equal(t, "typeDeclaration", D.Identifier("Type-Declaration"))
	assert.Equal(t, "debug_", D.Identifier("Debug"))
	assert.Equal(t, "function_", D.Identifier("Function"))
	assert.Equal(t, "already_lower", D.Identifier("already_lower"))
}

func TestByName(t *testing.T) {
	d, ok := ByName("d")
	assert.True(t, ok)
	assert.Same(t, D, d)

	_, ok = ByName("cobol")
	assert.False(t, ok)
}

func TestHighlight_NoColorKeepsText(t *testing.T) {
	previous := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = previous }()

	code := "/** doc */\nbool hasResult(Op code) @nogc {\n    return true; // yes\n}\n"

	assert.Equal(t, code, D.Highlight(code))
	assert.Equal(t, "", D.Highlight(""))
}

func TestHighlight_ColorsKeywords(t *testing.T) {
	previous := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = previous }()

	highlighted := D.Highlight("return true;")

	assert.NotEqual(t, "return true;", highlighted)
	assert.Contains(t, highlighted, "return")
	assert.Contains(t, highlighted, "\x1b[")
}
