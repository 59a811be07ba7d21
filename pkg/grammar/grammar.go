// Package grammar models a SPIR-V style instruction grammar: the deduplicated list of
// instructions, their operands and the instruction classes, plus the lookup queries
// the emitter definitions need.
package grammar

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Manu343726/spvgen/pkg/dialect"
	"github.com/Manu343726/spvgen/pkg/utils"
)

// A loaded grammar. It is built once and never mutated afterwards, so it can be
// shared freely between goroutines
type Grammar struct {
	dialect      *dialect.Dialect
	instructions []*Instruction
	byOpCode     map[OpCode]*Instruction
	classes      []*Class
	byTag        map[string]*Class
}

type options struct {
	dialect     *dialect.Dialect
	excludedTag string
	logger      *slog.Logger
}

// Configures how a grammar is built
type Option func(*options)

// Sets the dialect used to derive class identifiers. Defaults to [dialect.D]
func WithDialect(d *dialect.Dialect) Option {
	return func(o *options) {
		o.dialect = d
	}
}

// Sets the class tag that is filtered out at load time. Defaults to [ExcludedClassTag]
func WithExcludedClassTag(tag string) Option {
	return func(o *options) {
		o.excludedTag = tag
	}
}

// Sets the logger load diagnostics are written to
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func makeOptions(opts []Option) options {
	o := options{
		dialect:     dialect.D,
		excludedTag: ExcludedClassTag,
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Reads and parses a grammar file. The format is picked from the file extension
func Load(path string, opts ...Option) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grammar %v: %w", path, err)
	}

	g, err := Parse(data, FormatFromPath(path), opts...)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	return g, nil
}

// Parses a grammar document
func Parse(data []byte, format Format, opts ...Option) (*Grammar, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}

	return build(doc, makeOptions(opts))
}

func build(doc *rawDocument, o options) (*Grammar, error) {
	g := &Grammar{
		dialect:  o.dialect,
		byOpCode: make(map[OpCode]*Instruction, len(doc.Instructions)),
	}

	for i, raw := range doc.Classes {
		where := fmt.Sprintf("instruction_printing_class[%v]", i)

		switch {
		case raw.Tag == nil:
			return nil, missingField(where, "tag")
		case *raw.Tag == o.excludedTag:
			continue
		case raw.Heading == nil:
			return nil, missingField(where, "heading")
		}

		class := newClass(*raw.Tag, *raw.Heading, o.dialect)
		g.classes = append(g.classes, class)
	}

	g.byTag = utils.GenMap(g.classes, (*Class).Tag)

	for i := range doc.Instructions {
		instruction, err := doc.Instructions[i].instruction(fmt.Sprintf("instructions[%v]", i))
		if err != nil {
			return nil, err
		}

		// Aliases and legacy names share the opcode of the canonical entry, which comes first
		if first, exists := g.byOpCode[instruction.opCode]; exists {
			o.logger.Debug("dropping duplicate opcode",
				slog.String("opname", instruction.opName),
				slog.Any("opcode", instruction.opCode),
				slog.String("kept", first.opName))
			continue
		}

		g.byOpCode[instruction.opCode] = instruction
		g.instructions = append(g.instructions, instruction)
	}

	o.logger.Debug("grammar loaded",
		slog.Int("instructions", len(g.instructions)),
		slog.Int("classes", len(g.classes)))

	return g, nil
}

// Returns the dialect class identifiers were derived for
func (g *Grammar) Dialect() *dialect.Dialect {
	return g.dialect
}

// Returns all instructions in grammar order, without duplicates
func (g *Grammar) Instructions() []*Instruction {
	return append([]*Instruction(nil), g.instructions...)
}

// Returns all retained classes in grammar order
func (g *Grammar) Classes() []*Class {
	return append([]*Class(nil), g.classes...)
}

// Returns the instruction with the given opcode
func (g *Grammar) Instruction(op OpCode) (*Instruction, bool) {
	instruction, ok := g.byOpCode[op]
	return instruction, ok
}

// Returns the class with the given tag
func (g *Grammar) Class(tag string) (*Class, bool) {
	class, ok := g.byTag[tag]
	return class, ok
}

// Returns the class of the instruction, or [UnknownClass] if either the opcode or its class are not in the model
func (g *Grammar) ClassOf(op OpCode) *Class {
	instruction, ok := g.byOpCode[op]
	if !ok {
		return UnknownClass()
	}

	if class, ok := g.byTag[instruction.class]; ok {
		return class
	}

	return UnknownClass()
}

// Returns the instructions of a class, in grammar order
func (g *Grammar) InstructionsOfClass(tag string) []*Instruction {
	return utils.Filter(g.instructions, func(i *Instruction) bool {
		return i.class == tag
	})
}

func (g *Grammar) HasResult(op OpCode) bool {
	if instruction, ok := g.byOpCode[op]; ok {
		return instruction.HasResult()
	}
	return false
}

func (g *Grammar) HasResultType(op OpCode) bool {
	if instruction, ok := g.byOpCode[op]; ok {
		return instruction.HasResultType()
	}
	return false
}

func (g *Grammar) MinOperandCount(op OpCode) int {
	if instruction, ok := g.byOpCode[op]; ok {
		return instruction.MinOperandCount()
	}
	return 0
}

func (g *Grammar) MaxOperandCount(op OpCode) int {
	if instruction, ok := g.byOpCode[op]; ok {
		return instruction.MaxOperandCount()
	}
	return 0
}

func (g *Grammar) RequiredReferenceIndices(op OpCode) []int {
	if instruction, ok := g.byOpCode[op]; ok {
		return instruction.RequiredReferenceIndices()
	}
	return []int{}
}

func (g *Grammar) OptionalReferenceIndices(op OpCode) []int {
	if instruction, ok := g.byOpCode[op]; ok {
		return instruction.OptionalReferenceIndices()
	}
	return []int{}
}

func (g *Grammar) HasTrailingVariadicReferences(op OpCode) bool {
	if instruction, ok := g.byOpCode[op]; ok {
		return instruction.HasTrailingVariadicReferences()
	}
	return false
}
