package codegen

import (
	"fmt"
)

// Set of case labels sharing one body
type caseGroup struct {
	body   Node
	labels []string
}

// Multi-way dispatch over a discriminant. Case labels are grouped by the text
// their body renders to at registration time: labels with identical bodies share
// one group, and groups render in the order their body was first seen
type Switch struct {
	builder      *Builder
	discriminant string
	labelPrefix  string
	fallback     Node
	groups       []*caseGroup
	byBody       map[string]*caseGroup
	byLabel      map[string]*caseGroup
}

// Returns a dispatch over discriminant. Case labels are qualified with labelPrefix
// (e.g. "Op" renders label "OpNop" as "Op.OpNop"); an empty prefix leaves them as is
func (b *Builder) Switch(discriminant string, labelPrefix string) *Switch {
	return &Switch{
		builder:      b,
		discriminant: discriminant,
		labelPrefix:  labelPrefix,
		byBody:       make(map[string]*caseGroup),
		byLabel:      make(map[string]*caseGroup),
	}
}

// Sets the body taken when no case label matches
func (s *Switch) SetDefault(body Node) *Switch {
	s.fallback = body
	return s
}

// Returns true if the dispatch has a default body
func (s *Switch) HasDefault() bool {
	return s.fallback != nil
}

func (s *Switch) group(body Node) *caseGroup {
	key := body.Serialize()

	if group, ok := s.byBody[key]; ok {
		return group
	}

	group := &caseGroup{body: body}
	s.groups = append(s.groups, group)
	s.byBody[key] = group
	return group
}

// Fixes the render position of body before any case label uses it
func (s *Switch) ReserveBody(body Node) *Switch {
	s.group(body)
	return s
}

// Registers label as dispatching to body. Registering the same label twice with the
// same body is a no-op; registering it with a different body panics
func (s *Switch) AddCase(label string, body Node) *Switch {
	group := s.group(body)

	if existing, ok := s.byLabel[label]; ok {
		if existing != group {
			panic(fmt.Sprintf("codegen: case %q of switch (%s) registered with two different bodies", label, s.discriminant))
		}

		return s
	}

	group.labels = append(group.labels, label)
	s.byLabel[label] = group
	return s
}

// Returns the number of distinct case labels
func (s *Switch) Len() int {
	return len(s.byLabel)
}

// Returns the case labels in render order, grouped by shared body
func (s *Switch) Groups() [][]string {
	result := make([][]string, 0, len(s.groups))

	for _, group := range s.groups {
		if len(group.labels) > 0 {
			result = append(result, append([]string(nil), group.labels...))
		}
	}

	return result
}

func (s *Switch) qualify(label string) string {
	if s.labelPrefix == "" {
		return label
	}

	return s.labelPrefix + "." + label
}

func (s *Switch) Serialize() string {
	e := s.builder.emitter()

	if s.fallback != nil {
		e.AppendLine("switch (" + s.discriminant + ") {")
	} else {
		e.AppendLine(s.builder.dialect.ExhaustiveSwitch + " switch (" + s.discriminant + ") {")
	}

	e.EnterScope()

	if s.fallback != nil {
		e.AppendLine("default:")
		e.EnterScope()
		appendNode(e, s.fallback)
		e.ExitScope()
		e.AppendLine("")
	}

	for _, group := range s.groups {
		if len(group.labels) == 0 {
			continue
		}

		for _, label := range group.labels {
			e.AppendLine("case " + s.qualify(label) + ":")
		}

		e.EnterScope()
		appendNode(e, group.body)
		e.ExitScope()
	}

	e.ExitScope()
	e.AppendLine("}")
	return e.String()
}
