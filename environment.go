package sexpr

import (
	"fmt"
	"strings"

	"github.com/xiam/sexpr/ast"
)

// Function is a named body of expressions together with the environment it
// was defined in.
type Function struct {
	name   string
	params []string
	body   []*ast.Node

	closure *Environment
}

// NewFunction creates a function value, closure is the environment the body
// is evaluated in.
func NewFunction(name string, params []string, body []*ast.Node, closure *Environment) *Function {
	return &Function{
		name:    name,
		params:  params,
		body:    body,
		closure: closure,
	}
}

// newValueFunction binds a plain value under a name: a function without
// parameters that returns the value.
func newValueFunction(name string, value string) *Function {
	return NewFunction(name, nil, []*ast.Node{ast.NewLiteral(value)}, NewEnvironment())
}

func (fn *Function) Name() string {
	return fn.name
}

func (fn *Function) Params() []string {
	return fn.params
}

// Arity is the number of arguments a call consumes
func (fn *Function) Arity() int {
	return len(fn.params)
}

func (fn *Function) String() string {
	return fmt.Sprintf("<function %s (%s): %s>", fn.name, strings.Join(fn.params, " "), ast.Encode(fn.body...))
}

type scope map[string]*Function

// Environment is a stack of scopes, the last one is the innermost.
type Environment struct {
	scopes []scope
}

// NewEnvironment returns an environment with a single, empty scope
func NewEnvironment() *Environment {
	return &Environment{
		scopes: []scope{{}},
	}
}

// Define binds name in the innermost scope
func (env *Environment) Define(name string, fn *Function) {
	if len(env.scopes) == 0 {
		env.Push()
	}
	env.scopes[len(env.scopes)-1][name] = fn
}

// Lookup searches name from the innermost scope to the outermost one. A
// missing name is not an error: it is a free identifier.
func (env *Environment) Lookup(name string) (*Function, bool) {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if fn, ok := env.scopes[i][name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Push opens a new innermost scope
func (env *Environment) Push() {
	env.scopes = append(env.scopes, scope{})
}

// Pop discards the innermost scope
func (env *Environment) Pop() {
	if len(env.scopes) == 0 {
		return
	}
	env.scopes[len(env.scopes)-1] = nil
	env.scopes = env.scopes[:len(env.scopes)-1]
}

// Depth returns the number of scopes
func (env *Environment) Depth() int {
	return len(env.scopes)
}

// Snapshot copies the scope stack. Scopes pushed on the copy are not seen by
// env and the other way around, while names defined later in a scope both
// stacks hold are visible to both.
func (env *Environment) Snapshot() *Environment {
	scopes := make([]scope, len(env.scopes))
	copy(scopes, env.scopes)
	return &Environment{scopes: scopes}
}
