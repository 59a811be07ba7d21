package dialect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fatih/color"
)

var (
	keywordColor  = color.New(color.FgMagenta, color.Bold)
	typeColor     = color.New(color.FgCyan)
	stringColor   = color.New(color.FgGreen)
	numberColor   = color.New(color.FgYellow)
	commentColor  = color.New(color.FgHiBlack)
	functionColor = color.New(color.FgHiYellow)
	operatorColor = color.New(color.FgRed)
)

// Patterns shared by the C family dialects
var (
	stringPattern       = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentPattern  = regexp.MustCompile(`(?m)//.*$`)
	numberPattern       = regexp.MustCompile(`\b(?:0[xX][0-9a-fA-F]+|0[bB][01]+|[0-9]+)[uUlL]*\b`)
	identifierPattern   = regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`)
	functionCallPattern = regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`)
	operatorPattern     = regexp.MustCompile(`==|!=|&&|\|\||[+\-*/%&|^!~<>=?]`)
)

type token struct {
	color      *color.Color
	start, end int
}

type tokenizer struct {
	code   string
	tokens []token
}

func (t *tokenizer) overlaps(start, end int) bool {
	for _, tok := range t.tokens {
		if start < tok.end && end > tok.start {
			return true
		}
	}
	return false
}

func (t *tokenizer) add(c *color.Color, start, end int) {
	if !t.overlaps(start, end) {
		t.tokens = append(t.tokens, token{color: c, start: start, end: end})
	}
}

func (t *tokenizer) addMatches(pattern *regexp.Regexp, c *color.Color) {
	for _, match := range pattern.FindAllStringIndex(t.code, -1) {
		t.add(c, match[0], match[1])
	}
}

func (t *tokenizer) String() string {
	if len(t.tokens) == 0 {
		return t.code
	}

	sort.Slice(t.tokens, func(i, j int) bool {
		return t.tokens[i].start < t.tokens[j].start
	})

	var result strings.Builder
	pos := 0

	for _, tok := range t.tokens {
		result.WriteString(t.code[pos:tok.start])
		result.WriteString(tok.color.Sprint(t.code[tok.start:tok.end]))
		pos = tok.end
	}

	result.WriteString(t.code[pos:])

	return result.String()
}

// Applies terminal syntax highlighting to code written in the dialect.
// Colors are dropped automatically when the output is not a terminal (see color.NoColor)
func (d *Dialect) Highlight(code string) string {
	if code == "" {
		return ""
	}

	t := tokenizer{code: code}

	// Earlier passes win over later ones, so nothing inside a comment or a string is recolored
	t.addMatches(blockCommentPattern, commentColor)
	t.addMatches(lineCommentPattern, commentColor)
	t.addMatches(stringPattern, stringColor)
	t.addMatches(numberPattern, numberColor)

	for _, match := range functionCallPattern.FindAllStringSubmatchIndex(code, -1) {
		name := code[match[2]:match[3]]
		if !d.IsKeyword(name) && !d.IsType(name) {
			t.add(functionColor, match[2], match[3])
		}
	}

	for _, match := range identifierPattern.FindAllStringIndex(code, -1) {
		word := code[match[0]:match[1]]
		switch {
		case d.IsType(word):
			t.add(typeColor, match[0], match[1])
		case d.IsKeyword(word):
			t.add(keywordColor, match[0], match[1])
		}
	}

	t.addMatches(operatorPattern, operatorColor)

	return t.String()
}
