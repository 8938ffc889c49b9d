package typechecker

import (
	"fmt"

	"fern/interpreter-go/pkg/ast"
)

// ErrorKind classifies a type error. Checking is fail-fast: the first
// violation aborts the enclosing check and propagates upward.
type ErrorKind int

const (
	UnboundVariable ErrorKind = iota
	TypeMismatch
	ConditionNotBoolean
	BranchTypeMismatch
	NotAFunction
	ArgTypeMismatch
	NotAProduct
)

func (k ErrorKind) String() string {
	switch k {
	case UnboundVariable:
		return "UnboundVariable"
	case TypeMismatch:
		return "TypeMismatch"
	case ConditionNotBoolean:
		return "ConditionNotBoolean"
	case BranchTypeMismatch:
		return "BranchTypeMismatch"
	case NotAFunction:
		return "NotAFunction"
	case ArgTypeMismatch:
		return "ArgTypeMismatch"
	case NotAProduct:
		return "NotAProduct"
	default:
		return "Unknown"
	}
}

// CheckError is a single type diagnostic: its kind, a rendered message, and
// the node it was raised on (for source locations).
type CheckError struct {
	Kind    ErrorKind
	Message string
	Node    ast.Node
}

func (e *CheckError) Error() string {
	return e.Message
}

func errUnboundVariable(node ast.Node, name string) *CheckError {
	return &CheckError{
		Kind:    UnboundVariable,
		Message: fmt.Sprintf("typechecker: '%s' not bound", name),
		Node:    node,
	}
}

func errOperandMismatch(node ast.Node, op string, expected, actual Type) *CheckError {
	return &CheckError{
		Kind: TypeMismatch,
		Message: fmt.Sprintf("typechecker: '%s' expects %s operands, got %s",
			op, FormatType(expected), FormatType(actual)),
		Node: node,
	}
}

func errComparisonMismatch(node ast.Node, op string, left, right Type) *CheckError {
	return &CheckError{
		Kind: TypeMismatch,
		Message: fmt.Sprintf("typechecker: '%s' expects operands of the same type, got %s and %s",
			op, FormatType(left), FormatType(right)),
		Node: node,
	}
}

func errIncomparable(node ast.Node, op string, operand Type) *CheckError {
	return &CheckError{
		Kind: TypeMismatch,
		Message: fmt.Sprintf("typechecker: '%s' cannot compare values of type %s",
			op, FormatType(operand)),
		Node: node,
	}
}

func errDeclaredMismatch(node ast.Node, name string, declared, actual Type) *CheckError {
	return &CheckError{
		Kind: TypeMismatch,
		Message: fmt.Sprintf("typechecker: '%s' is declared %s but its definition has type %s",
			name, FormatType(declared), FormatType(actual)),
		Node: node,
	}
}

func errConditionNotBoolean(node ast.Node, actual Type) *CheckError {
	return &CheckError{
		Kind:    ConditionNotBoolean,
		Message: fmt.Sprintf("typechecker: if condition must be bool, got %s", FormatType(actual)),
		Node:    node,
	}
}

func errBranchMismatch(node ast.Node, thenType, elseType Type) *CheckError {
	return &CheckError{
		Kind: BranchTypeMismatch,
		Message: fmt.Sprintf("typechecker: if branches must agree, got %s and %s",
			FormatType(thenType), FormatType(elseType)),
		Node: node,
	}
}

func errNotAFunction(node ast.Node, actual Type) *CheckError {
	return &CheckError{
		Kind:    NotAFunction,
		Message: fmt.Sprintf("typechecker: cannot apply a value of type %s", FormatType(actual)),
		Node:    node,
	}
}

func errArgMismatch(node ast.Node, expected, actual Type) *CheckError {
	return &CheckError{
		Kind: ArgTypeMismatch,
		Message: fmt.Sprintf("typechecker: argument has type %s, function expects %s",
			FormatType(actual), FormatType(expected)),
		Node: node,
	}
}

func errNotAProduct(node ast.Node, field ast.ProjectionField, actual Type) *CheckError {
	return &CheckError{
		Kind:    NotAProduct,
		Message: fmt.Sprintf("typechecker: '%s' expects a pair, got %s", field, FormatType(actual)),
		Node:    node,
	}
}
