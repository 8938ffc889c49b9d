package ast

import (
	"fmt"
	"strconv"
)

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line   int
	Column int
}

// Span covers a contiguous region of source text.
type Span struct {
	Start Position
	End   Position
}

// Node is implemented by every syntax node.
type Node interface {
	Span() Span
	String() string
}

// Expression is the closed set of Fern expression forms. The checker and the
// interpreter both dispatch exhaustively over these variants.
type Expression interface {
	Node
	expressionNode()
}

// TypeExpression is the closed set of type annotation forms.
type TypeExpression interface {
	Node
	typeExpressionNode()
}

type baseNode struct {
	span Span
}

func (b *baseNode) Span() Span        { return b.span }
func (b *baseNode) setSpan(span Span) { b.span = span }

// SetSpan annotates the node with the provided span.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}

// IntegerLiteral is a 64-bit signed integer literal.
type IntegerLiteral struct {
	baseNode
	Value int64
}

func (e *IntegerLiteral) expressionNode() {}
func (e *IntegerLiteral) String() string  { return strconv.FormatInt(e.Value, 10) }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	baseNode
	Value bool
}

func (e *BooleanLiteral) expressionNode() {}
func (e *BooleanLiteral) String() string  { return strconv.FormatBool(e.Value) }

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	baseNode
	Value string
}

func (e *StringLiteral) expressionNode() {}
func (e *StringLiteral) String() string  { return strconv.Quote(e.Value) }

// Identifier is a variable reference.
type Identifier struct {
	baseNode
	Name string
}

func (e *Identifier) expressionNode() {}
func (e *Identifier) String() string  { return e.Name }

// BinaryExpression applies an infix operator to two operands.
type BinaryExpression struct {
	baseNode
	Op    string
	Left  Expression
	Right Expression
}

func (e *BinaryExpression) expressionNode() {}
func (e *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Op, e.Left, e.Right)
}

// IfExpression is `if c { t } else { e }`. Both branches are mandatory since
// every form is an expression.
type IfExpression struct {
	baseNode
	Condition Expression
	Then      Expression
	Else      Expression
}

func (e *IfExpression) expressionNode() {}
func (e *IfExpression) String() string {
	return fmt.Sprintf("(if %s %s %s)", e.Condition, e.Then, e.Else)
}

// LetExpression is a non-recursive binding `let x = value { body }`.
type LetExpression struct {
	baseNode
	Name  *Identifier
	Value Expression
	Body  Expression
}

func (e *LetExpression) expressionNode() {}
func (e *LetExpression) String() string {
	return fmt.Sprintf("(let %s %s %s)", e.Name, e.Value, e.Body)
}

// LetRecExpression is a recursive binding `let rec x: T = value { body }`.
// The annotation is required: it is what `value` sees `x` bound to while its
// own definition is checked.
type LetRecExpression struct {
	baseNode
	Name       *Identifier
	Annotation TypeExpression
	Value      Expression
	Body       Expression
}

func (e *LetRecExpression) expressionNode() {}
func (e *LetRecExpression) String() string {
	return fmt.Sprintf("(let rec (%s: %s) %s %s)", e.Name, e.Annotation, e.Value, e.Body)
}

// LambdaExpression is an annotated single-parameter function literal.
type LambdaExpression struct {
	baseNode
	Param     *Identifier
	ParamType TypeExpression
	Body      Expression
}

func (e *LambdaExpression) expressionNode() {}
func (e *LambdaExpression) String() string {
	return fmt.Sprintf("(fn (%s: %s) %s)", e.Param, e.ParamType, e.Body)
}

// ApplyExpression applies a function to a single argument.
type ApplyExpression struct {
	baseNode
	Fn  Expression
	Arg Expression
}

func (e *ApplyExpression) expressionNode() {}
func (e *ApplyExpression) String() string {
	return fmt.Sprintf("(%s %s)", e.Fn, e.Arg)
}

// PairExpression constructs a two-component product value.
type PairExpression struct {
	baseNode
	First  Expression
	Second Expression
}

func (e *PairExpression) expressionNode() {}
func (e *PairExpression) String() string {
	return fmt.Sprintf("(pair %s %s)", e.First, e.Second)
}

// ProjectionField selects a pair component.
type ProjectionField int

const (
	FieldFirst ProjectionField = iota
	FieldSecond
)

func (f ProjectionField) String() string {
	if f == FieldFirst {
		return "fst"
	}
	return "snd"
}

// ProjectionExpression extracts one component of a pair: `fst e` / `snd e`.
type ProjectionExpression struct {
	baseNode
	Field ProjectionField
	Pair  Expression
}

func (e *ProjectionExpression) expressionNode() {}
func (e *ProjectionExpression) String() string {
	return fmt.Sprintf("(%s %s)", e.Field, e.Pair)
}

// SimpleTypeExpression names a base type: int, bool, or str.
type SimpleTypeExpression struct {
	baseNode
	Name string
}

func (t *SimpleTypeExpression) typeExpressionNode() {}
func (t *SimpleTypeExpression) String() string      { return t.Name }

// FunctionTypeExpression is `(param -> result)`.
type FunctionTypeExpression struct {
	baseNode
	Param  TypeExpression
	Result TypeExpression
}

func (t *FunctionTypeExpression) typeExpressionNode() {}
func (t *FunctionTypeExpression) String() string {
	return fmt.Sprintf("(%s -> %s)", t.Param, t.Result)
}

// PairTypeExpression is `(first * second)`.
type PairTypeExpression struct {
	baseNode
	First  TypeExpression
	Second TypeExpression
}

func (t *PairTypeExpression) typeExpressionNode() {}
func (t *PairTypeExpression) String() string {
	return fmt.Sprintf("(%s * %s)", t.First, t.Second)
}
