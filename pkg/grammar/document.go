package grammar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serialization format of a grammar document
type Format uint

const (
	Format_JSON Format = iota
	Format_YAML
)

func (f Format) String() string {
	switch f {
	case Format_JSON:
		return "json"
	case Format_YAML:
		return "yaml"
	}

	panic("unreachable")
}

// Guesses the document format from a file name. Unknown extensions are read as JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Format_YAML
	default:
		return Format_JSON
	}
}

// Fields are pointers so absent and zero values can be told apart

type rawOperand struct {
	Kind       *string `json:"kind" yaml:"kind"`
	Quantifier *string `json:"quantifier" yaml:"quantifier"`
	Name       *string `json:"name" yaml:"name"`
}

type rawInstruction struct {
	OpName   *string      `json:"opname" yaml:"opname"`
	OpCode   *int64       `json:"opcode" yaml:"opcode"`
	Class    *string      `json:"class" yaml:"class"`
	Operands []rawOperand `json:"operands" yaml:"operands"`
}

type rawClass struct {
	Tag     *string `json:"tag" yaml:"tag"`
	Heading *string `json:"heading" yaml:"heading"`
}

type rawDocument struct {
	Instructions []rawInstruction `json:"instructions" yaml:"instructions"`
	Classes      []rawClass       `json:"instruction_printing_class" yaml:"instruction_printing_class"`
}

func decodeDocument(data []byte, format Format) (*rawDocument, error) {
	doc := &rawDocument{}

	switch format {
	case Format_JSON:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
			return nil, fmt.Errorf("decoding json grammar: %w", err)
		}
	case Format_YAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("decoding yaml grammar: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported grammar format %v", format)
	}

	return doc, nil
}

func (r *rawOperand) operand(where string) (Operand, error) {
	if r.Kind == nil {
		return Operand{}, missingField(where, "kind")
	}

	quantifier := Quantifier_One
	if r.Quantifier != nil {
		q, err := ParseQuantifier(*r.Quantifier)
		if err != nil {
			return Operand{}, fmt.Errorf("%v: %w", where, err)
		}
		quantifier = q
	}

	if r.Name != nil {
		return NewNamedOperand(*r.Kind, quantifier, *r.Name), nil
	}

	return NewOperand(*r.Kind, quantifier), nil
}

func (r *rawInstruction) instruction(where string) (*Instruction, error) {
	switch {
	case r.OpName == nil:
		return nil, missingField(where, "opname")
	case r.OpCode == nil:
		return nil, missingField(where, "opcode")
	case r.Class == nil:
		return nil, missingField(where, "class")
	}

	if *r.OpCode < 0 || *r.OpCode > int64(^uint32(0)) {
		return nil, fmt.Errorf("%w: %v: opcode %v out of range", ErrMalformedGrammar, where, *r.OpCode)
	}

	operands := make([]Operand, 0, len(r.Operands))

	for i := range r.Operands {
		operand, err := r.Operands[i].operand(fmt.Sprintf("%v.operands[%v]", where, i))
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}

	return &Instruction{
		opName:   *r.OpName,
		opCode:   OpCode(*r.OpCode),
		class:    *r.Class,
		operands: operands,
	}, nil
}
