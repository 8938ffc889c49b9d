package runtime

import "fmt"

// Environment maps variable names to values within a lexical scope chain.
type Environment struct {
	bindings map[string]Value
	parent   *Environment
}

// NewEnvironment creates a scope nested within parent (nil for top level).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		bindings: make(map[string]Value),
		parent:   parent,
	}
}

// Define binds name in this scope, shadowing any outer binding.
func (e *Environment) Define(name string, value Value) {
	e.bindings[name] = value
}

// Get resolves name to its innermost binding.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if value, ok := env.bindings[name]; ok {
			return value, nil
		}
	}
	return nil, fmt.Errorf("runtime: '%s' not bound", name)
}
