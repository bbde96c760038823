package interpreter

import (
	"maps"
	"slices"

	"glox/internal/loxerr"
	"glox/internal/token"
	"glox/internal/value"
)

// Environment is a single flat mapping from name to value. There is no
// enclosing scope: blocks bound their declarations by cloning the mapping on
// entry and restoring the clone on exit.
type Environment struct {
	values map[string]value.Value
}

func NewEnvironment() *Environment {
	return &Environment{make(map[string]value.Value)}
}

// Define inserts or overwrites name.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Access looks up the identifier's lexeme, failing with a runtime error on
// the identifier's line.
func (e *Environment) Access(name token.Token) (value.Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}

	return nil, loxerr.Runtime(name.Line, "Undefined variable '%s'.", name.Lexeme)
}

// Clone returns an independent copy. Values are immutable, so a shallow copy
// of the map is a deep copy of the bindings.
func (e *Environment) Clone() *Environment {
	return &Environment{maps.Clone(e.values)}
}

// Keys returns the bound names in sorted order.
func (e *Environment) Keys() []string {
	return slices.Sorted(maps.Keys(e.values))
}

func (e *Environment) Len() int {
	return len(e.values)
}
