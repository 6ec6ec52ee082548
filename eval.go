package sexpr

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

const defaultMaxDepth = 10000

// Evaluator walks expression trees and computes their textual results. It
// owns an Environment that persists between calls to Eval, so definitions
// made by one program are visible to the next one. An Evaluator is not safe
// for concurrent use.
type Evaluator struct {
	env *Environment
	log logrus.FieldLogger

	maxDepth int
	maxSteps int

	depth int
	steps int
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithMaxDepth limits how deep evaluation can nest, n <= 0 disables the
// limit.
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) {
		e.maxDepth = n
	}
}

// WithMaxSteps limits the number of evaluation steps a single call to Eval
// can take, n <= 0 means no limit.
func WithMaxSteps(n int) Option {
	return func(e *Evaluator) {
		e.maxSteps = n
	}
}

// WithLogger sets the logger evaluation traces are written to
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Evaluator) {
		e.log = log
	}
}

// WithEnvironment makes the evaluator start from an existing environment
func WithEnvironment(env *Environment) Option {
	return func(e *Evaluator) {
		e.env = env
	}
}

// New creates an evaluator with an empty environment
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		env:      NewEnvironment(),
		log:      logrus.StandardLogger(),
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Environment returns the global environment of the evaluator
func (e *Evaluator) Environment() *Environment {
	return e.env
}

// Eval evaluates the top-level forms of program in order. Non-empty results
// are joined with a single space, the first failure aborts evaluation and no
// partial output is returned.
func (e *Evaluator) Eval(ctx context.Context, program []*ast.Node) (string, error) {
	e.depth, e.steps = 0, 0

	results := []string{}
	cur := newCursor(program)
	for cur.more() {
		result, err := e.eval(ctx, cur)
		if err != nil {
			return "", err
		}
		if result != "" {
			results = append(results, result)
		}
	}
	return strings.Join(results, " "), nil
}

// EvalString parses src and evaluates it
func (e *Evaluator) EvalString(ctx context.Context, src string) (string, error) {
	program, err := parser.Parse([]byte(src))
	if err != nil {
		return "", err
	}
	return e.Eval(ctx, program)
}

// cursor reads the forms of an expression list, separators are skipped.
type cursor struct {
	nodes []*ast.Node
	pos   int
}

func newCursor(nodes []*ast.Node) *cursor {
	return &cursor{nodes: nodes}
}

func (c *cursor) more() bool {
	for c.pos < len(c.nodes) {
		node := c.nodes[c.pos]
		if node.IsValue() && node.Kind() == ast.KindSeparator {
			c.pos++
			continue
		}
		return true
	}
	return false
}

func (c *cursor) next() (*ast.Node, bool) {
	if !c.more() {
		return nil, false
	}
	node := c.nodes[c.pos]
	c.pos++
	return node, true
}

func at(node *ast.Node) string {
	line, col := node.Pos()
	return fmt.Sprintf("%d:%d", line, col)
}

func (e *Evaluator) enter(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "evaluation interrupted")
	}
	e.steps++
	if e.maxSteps > 0 && e.steps > e.maxSteps {
		return errors.Wrapf(ErrBudgetExhausted, "after %d steps", e.maxSteps)
	}
	if e.maxDepth > 0 && e.depth >= e.maxDepth {
		return errors.Wrapf(ErrRecursionLimit, "nesting deeper than %d", e.maxDepth)
	}
	e.depth++
	return nil
}

func (e *Evaluator) leave() {
	e.depth--
}

// eval consumes the next form from cur, plus whatever operands it takes,
// and returns its result.
func (e *Evaluator) eval(ctx context.Context, cur *cursor) (string, error) {
	node, ok := cur.next()
	if !ok {
		return "", errors.WithStack(ErrUnexpectedEnd)
	}

	if err := e.enter(ctx); err != nil {
		return "", err
	}
	defer e.leave()

	if node.IsVector() {
		return e.evalList(ctx, node)
	}

	switch node.Kind() {
	case ast.KindLiteral:
		return e.evalLiteral(node)
	case ast.KindIdentifier:
		return e.evalIdentifier(ctx, cur, node)
	case ast.KindFunction:
		return e.evalDefine(cur, node)
	case ast.KindCondition:
		return e.evalCondition(ctx, cur, node)
	case ast.KindBinary:
		return e.evalBinary(ctx, cur, node)
	case ast.KindUnary:
		return e.evalUnary(ctx, cur, node)
	case ast.KindLogicalInt:
		return e.evalLogicalInt(ctx, cur, node)
	case ast.KindLogicalBool:
		return e.evalLogicalBool(ctx, cur, node)
	case ast.KindFormat:
		return e.operand(ctx, cur, node)
	}

	return "", errors.Wrapf(ErrParseFailure, "%q at %s: unexpected %v", node.Text(), at(node), node.Kind())
}

// evalList evaluates the first form of a list, an empty list has an empty
// result.
func (e *Evaluator) evalList(ctx context.Context, node *ast.Node) (string, error) {
	sub := newCursor(node.List())
	if !sub.more() {
		return "", nil
	}
	return e.eval(ctx, sub)
}

// evalBody evaluates every form in body and returns the last result.
func (e *Evaluator) evalBody(ctx context.Context, body []*ast.Node) (string, error) {
	var result string
	cur := newCursor(body)
	for cur.more() {
		var err error
		if result, err = e.eval(ctx, cur); err != nil {
			return "", err
		}
	}
	return result, nil
}

// operand evaluates the form that follows op
func (e *Evaluator) operand(ctx context.Context, cur *cursor, op *ast.Node) (string, error) {
	if !cur.more() {
		return "", errors.Wrapf(ErrUnexpectedEnd, "%q at %s expects another operand", op.Text(), at(op))
	}
	return e.eval(ctx, cur)
}

func (e *Evaluator) intOperand(ctx context.Context, cur *cursor, op *ast.Node) (int32, error) {
	text, err := e.operand(ctx, cur, op)
	if err != nil {
		return 0, err
	}
	i, err := parseInt(text)
	if err != nil {
		return 0, errors.Wrapf(err, "operand of %q at %s", op.Text(), at(op))
	}
	return i, nil
}

func (e *Evaluator) boolOperand(ctx context.Context, cur *cursor, op *ast.Node) (bool, error) {
	text, err := e.operand(ctx, cur, op)
	if err != nil {
		return false, err
	}
	b, err := parseBool(text)
	if err != nil {
		return false, errors.Wrapf(err, "operand of %q at %s", op.Text(), at(op))
	}
	return b, nil
}

func (e *Evaluator) evalLiteral(node *ast.Node) (string, error) {
	text := node.Text()
	if node.IsString() || !isDigits(text) {
		return text, nil
	}
	i, err := parseInt(text)
	if err != nil {
		return "", errors.Wrapf(err, "literal at %s", at(node))
	}
	return NewIntValue(i).String(), nil
}

func (e *Evaluator) evalBinary(ctx context.Context, cur *cursor, op *ast.Node) (string, error) {
	left, err := e.intOperand(ctx, cur, op)
	if err != nil {
		return "", err
	}

	if !cur.more() {
		unary, ok := unaryOperators[op.Text()]
		if !ok || unary.operand != ValueTypeInt {
			return "", errors.Wrapf(ErrUnknownOperator, "%q at %s takes two operands", op.Text(), at(op))
		}
		result, err := unary.apply(NewIntValue(left))
		if err != nil {
			return "", errors.Wrapf(err, "%q at %s", op.Text(), at(op))
		}
		return result.String(), nil
	}

	fn, ok := binaryOperators[op.Text()]
	if !ok {
		return "", errors.Wrapf(ErrUnknownOperator, "%q at %s", op.Text(), at(op))
	}

	right, err := e.intOperand(ctx, cur, op)
	if err != nil {
		return "", err
	}

	result, err := fn(left, right)
	if err != nil {
		return "", errors.Wrapf(err, "%q at %s", op.Text(), at(op))
	}
	return NewIntValue(result).String(), nil
}

func (e *Evaluator) evalUnary(ctx context.Context, cur *cursor, op *ast.Node) (string, error) {
	unary, ok := unaryOperators[op.Text()]
	if !ok {
		return "", errors.Wrapf(ErrUnknownOperator, "%q at %s", op.Text(), at(op))
	}

	text, err := e.operand(ctx, cur, op)
	if err != nil {
		return "", err
	}

	value := ResolveValue(text)
	if value.Type != unary.operand {
		return "", errors.Wrapf(ErrParseFailure, "%q at %s expects %v, got %v %q", op.Text(), at(op), unary.operand, value.Type, text)
	}

	result, err := unary.apply(value)
	if err != nil {
		return "", errors.Wrapf(err, "%q at %s", op.Text(), at(op))
	}
	return result.String(), nil
}

func (e *Evaluator) evalLogicalInt(ctx context.Context, cur *cursor, op *ast.Node) (string, error) {
	compare, ok := intComparisons[op.Text()]
	if !ok {
		return "", errors.Wrapf(ErrUnknownOperator, "%q at %s", op.Text(), at(op))
	}

	a, err := e.intOperand(ctx, cur, op)
	if err != nil {
		return "", err
	}
	b, err := e.intOperand(ctx, cur, op)
	if err != nil {
		return "", err
	}

	return NewBoolValue(compare(a, b)).String(), nil
}

func (e *Evaluator) evalLogicalBool(ctx context.Context, cur *cursor, op *ast.Node) (string, error) {
	connective, ok := boolConnectives[op.Text()]
	if !ok {
		return "", errors.Wrapf(ErrUnknownOperator, "%q at %s", op.Text(), at(op))
	}

	a, err := e.boolOperand(ctx, cur, op)
	if err != nil {
		return "", err
	}
	b, err := e.boolOperand(ctx, cur, op)
	if err != nil {
		return "", err
	}

	return NewBoolValue(connective(a, b)).String(), nil
}

// evalCondition evaluates the condition and then only the selected branch,
// the other one is skipped.
func (e *Evaluator) evalCondition(ctx context.Context, cur *cursor, op *ast.Node) (string, error) {
	cond, err := e.boolOperand(ctx, cur, op)
	if err != nil {
		return "", err
	}

	branches := make([]*ast.Node, 2)
	for i := range branches {
		node, ok := cur.next()
		if !ok {
			return "", errors.Wrapf(ErrUnexpectedEnd, "%q at %s expects two branches", op.Text(), at(op))
		}
		branches[i] = node
	}

	selected := branches[1]
	if cond {
		selected = branches[0]
	}
	return e.eval(ctx, newCursor([]*ast.Node{selected}))
}

// evalDefine reads a name, a parameter list and a body, and binds a new
// function in the innermost scope. The function captures a snapshot of the
// current environment.
func (e *Evaluator) evalDefine(cur *cursor, op *ast.Node) (string, error) {
	nodes := make([]*ast.Node, 3)
	for i := range nodes {
		node, ok := cur.next()
		if !ok {
			return "", errors.Wrapf(ErrUnexpectedEnd, "%q at %s expects a name, parameters and a body", op.Text(), at(op))
		}
		nodes[i] = node
	}
	nameNode, paramsNode, bodyNode := nodes[0], nodes[1], nodes[2]

	if !nameNode.IsValue() || nameNode.Kind() != ast.KindIdentifier {
		return "", errors.Wrapf(ErrParseFailure, "%q at %s is not a valid function name", ast.Encode(nameNode), at(nameNode))
	}

	params, err := parameters(paramsNode)
	if err != nil {
		return "", err
	}

	body := []*ast.Node{bodyNode}
	if bodyNode.IsVector() {
		body = bodyNode.List()
	}

	name := nameNode.Text()
	fn := NewFunction(name, params, body, e.env.Snapshot())
	e.env.Define(name, fn)

	e.log.WithFields(logrus.Fields{
		"fn":    name,
		"arity": fn.Arity(),
	}).Debug("define")

	return "", nil
}

func parameters(node *ast.Node) ([]string, error) {
	if node.IsValue() {
		return []string{node.Text()}, nil
	}
	params := make([]string, 0, len(node.List()))
	for _, param := range node.List() {
		if !param.IsValue() {
			return nil, errors.Wrapf(ErrParseFailure, "parameter at %s must be a name", at(param))
		}
		if param.Kind() == ast.KindSeparator {
			continue
		}
		params = append(params, param.Text())
	}
	return params, nil
}

// evalIdentifier calls the function bound to name, an unbound name evaluates
// to itself.
func (e *Evaluator) evalIdentifier(ctx context.Context, cur *cursor, node *ast.Node) (string, error) {
	fn, ok := e.env.Lookup(node.Text())
	if !ok {
		return node.Text(), nil
	}

	args := make([]string, fn.Arity())
	for i := range args {
		if !cur.more() {
			return "", errors.Wrapf(ErrUnexpectedEnd, "%q at %s takes %d arguments, got %d", fn.Name(), at(node), fn.Arity(), i)
		}
		arg, err := e.eval(ctx, cur)
		if err != nil {
			return "", err
		}
		args[i] = arg
	}

	return e.call(ctx, fn, args)
}

// call evaluates the body of fn in a new scope on top of its closure. Each
// parameter is bound to a function without parameters that returns the
// argument.
func (e *Evaluator) call(ctx context.Context, fn *Function, args []string) (string, error) {
	if fn.Arity() > 0 {
		e.log.WithFields(logrus.Fields{
			"fn":    fn.Name(),
			"arity": fn.Arity(),
		}).Debug("call")
	}

	env := fn.closure.Snapshot()
	env.Push()
	for i, param := range fn.Params() {
		env.Define(param, newValueFunction(param, args[i]))
	}

	caller := e.env
	e.env = env
	defer func() {
		env.Pop()
		e.env = caller
	}()

	return e.evalBody(ctx, fn.body)
}
