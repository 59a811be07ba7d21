package codegen

import (
	"strings"
)

// Line oriented text buffer that tracks the current indentation depth.
// The emitter only manages whitespace: callers write their own delimiters
type Emitter struct {
	indent string
	depth  int
	buffer strings.Builder
}

// Creates an emitter that indents each scope level with the given unit
func NewEmitter(indent string) *Emitter {
	return &Emitter{indent: indent}
}

// Appends text at the current depth. Multi-line text is split and each line is indented;
// blank lines are kept as indentation-only lines. One trailing newline is ignored
func (e *Emitter) AppendLine(text string) {
	prefix := strings.Repeat(e.indent, e.depth)
	text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")

	for _, line := range strings.Split(text, "\n") {
		e.buffer.WriteString(prefix)
		e.buffer.WriteString(strings.TrimSuffix(line, "\r"))
		e.buffer.WriteByte('\n')
	}
}

// Increases the indentation depth by one
func (e *Emitter) EnterScope() {
	e.depth++
}

// Decreases the indentation depth by one
func (e *Emitter) ExitScope() {
	if e.depth == 0 {
		panic("codegen: ExitScope called without a matching EnterScope")
	}

	e.depth--
}

// Returns the current indentation depth
func (e *Emitter) Depth() int {
	return e.depth
}

// Discards all content. The indentation unit is kept
func (e *Emitter) Reset() {
	e.buffer.Reset()
	e.depth = 0
}

// Returns the accumulated text. The buffer is left untouched
func (e *Emitter) String() string {
	return e.buffer.String()
}
