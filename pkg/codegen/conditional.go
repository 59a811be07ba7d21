package codegen

type branch struct {
	condition string
	body      Node
}

// If/else-if chain with an optional final else branch
type Conditional struct {
	builder  *Builder
	branches []branch
	fallback Node
}

// Returns an empty conditional chain
func (b *Builder) Conditional() *Conditional {
	return &Conditional{builder: b}
}

// Appends a branch taken when condition holds and no previous branch was taken
func (c *Conditional) If(condition string, body Node) *Conditional {
	c.branches = append(c.branches, branch{condition: condition, body: body})
	return c
}

// Sets the branch taken when no condition holds
func (c *Conditional) Else(body Node) *Conditional {
	c.fallback = body
	return c
}

// Returns the number of conditional branches, not counting the else branch
func (c *Conditional) Len() int {
	return len(c.branches)
}

func (c *Conditional) Serialize() string {
	if len(c.branches) == 0 && c.fallback == nil {
		return ""
	}

	e := c.builder.emitter()

	if len(c.branches) == 0 {
		// Only an else branch: the body runs unconditionally in its own scope
		e.AppendLine("{")
		e.EnterScope()
		appendNode(e, c.fallback)
		e.ExitScope()
		e.AppendLine("}")
		return e.String()
	}

	for i, branch := range c.branches {
		if i == 0 {
			e.AppendLine("if (" + branch.condition + ") {")
		} else {
			e.AppendLine("} else if (" + branch.condition + ") {")
		}

		e.EnterScope()
		appendNode(e, branch.body)
		e.ExitScope()
	}

	if c.fallback != nil {
		e.AppendLine("} else {")
		e.EnterScope()
		appendNode(e, c.fallback)
		e.ExitScope()
	}

	e.AppendLine("}")
	return e.String()
}
