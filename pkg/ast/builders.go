package ast

// Builder helpers for constructing expression trees directly, primarily used
// by tests and by callers that already hold a parsed tree. Nodes built this
// way carry zero spans.

// Int builds an integer literal.
func Int(v int64) *IntegerLiteral { return &IntegerLiteral{Value: v} }

// Bool builds a boolean literal.
func Bool(v bool) *BooleanLiteral { return &BooleanLiteral{Value: v} }

// Str builds a string literal.
func Str(v string) *StringLiteral { return &StringLiteral{Value: v} }

// ID builds an identifier.
func ID(name string) *Identifier { return &Identifier{Name: name} }

// Bin builds a binary operator expression.
func Bin(op string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{Op: op, Left: left, Right: right}
}

// If builds a conditional expression.
func If(cond, then, els Expression) *IfExpression {
	return &IfExpression{Condition: cond, Then: then, Else: els}
}

// Let builds a non-recursive binding.
func Let(name string, value, body Expression) *LetExpression {
	return &LetExpression{Name: ID(name), Value: value, Body: body}
}

// LetRec builds a recursive binding with its declared type.
func LetRec(name string, annotation TypeExpression, value, body Expression) *LetRecExpression {
	return &LetRecExpression{Name: ID(name), Annotation: annotation, Value: value, Body: body}
}

// Fn builds an annotated lambda.
func Fn(param string, paramType TypeExpression, body Expression) *LambdaExpression {
	return &LambdaExpression{Param: ID(param), ParamType: paramType, Body: body}
}

// Apply builds a function application.
func Apply(fn, arg Expression) *ApplyExpression {
	return &ApplyExpression{Fn: fn, Arg: arg}
}

// Pair builds a pair constructor.
func Pair(first, second Expression) *PairExpression {
	return &PairExpression{First: first, Second: second}
}

// First builds a first-component projection.
func First(pair Expression) *ProjectionExpression {
	return &ProjectionExpression{Field: FieldFirst, Pair: pair}
}

// Second builds a second-component projection.
func Second(pair Expression) *ProjectionExpression {
	return &ProjectionExpression{Field: FieldSecond, Pair: pair}
}

// IntType builds the `int` annotation.
func IntType() *SimpleTypeExpression { return &SimpleTypeExpression{Name: "int"} }

// BoolType builds the `bool` annotation.
func BoolType() *SimpleTypeExpression { return &SimpleTypeExpression{Name: "bool"} }

// StrType builds the `str` annotation.
func StrType() *SimpleTypeExpression { return &SimpleTypeExpression{Name: "str"} }

// FnType builds a function type annotation.
func FnType(param, result TypeExpression) *FunctionTypeExpression {
	return &FunctionTypeExpression{Param: param, Result: result}
}

// PairType builds a product type annotation.
func PairType(first, second TypeExpression) *PairTypeExpression {
	return &PairTypeExpression{First: first, Second: second}
}
