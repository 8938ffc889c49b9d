package typechecker

// Environment maps variable names to types. Environments are persistent:
// Extend returns a child scope and never mutates the receiver, so sibling
// subtrees of the expression being checked cannot observe one another's
// bindings.
type Environment struct {
	name   string
	typ    Type
	parent *Environment
}

// NewEnvironment returns the empty top-level environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Extend returns a new environment in which name is bound to typ, shadowing
// any prior binding of name. The receiver is unaffected.
func (e *Environment) Extend(name string, typ Type) *Environment {
	return &Environment{name: name, typ: typ, parent: e}
}

// Lookup resolves name to its innermost binding.
func (e *Environment) Lookup(name string) (Type, bool) {
	for env := e; env != nil; env = env.parent {
		if env.name == name && env.typ != nil {
			return env.typ, true
		}
	}
	return nil, false
}
