package typechecker

import (
	"fmt"

	"fern/interpreter-go/pkg/ast"
)

// Type represents a Fern type understood by the checker. The grammar is
// finite and non-recursive: no type value contains itself.
type Type interface {
	Name() string
}

type PrimitiveKind string

const (
	PrimitiveInt    PrimitiveKind = "int"
	PrimitiveBool   PrimitiveKind = "bool"
	PrimitiveString PrimitiveKind = "str"
)

type PrimitiveType struct {
	Kind PrimitiveKind
}

func (p PrimitiveType) Name() string { return string(p.Kind) }

// FunctionType is the arrow type `(Param -> Result)`.
type FunctionType struct {
	Param  Type
	Result Type
}

func (f FunctionType) Name() string { return "Function" }

// PairType is the product type `(First * Second)`.
type PairType struct {
	First  Type
	Second Type
}

func (p PairType) Name() string { return "Pair" }

var (
	IntType    = PrimitiveType{Kind: PrimitiveInt}
	BoolType   = PrimitiveType{Kind: PrimitiveBool}
	StringType = PrimitiveType{Kind: PrimitiveString}
)

// Equal reports structural type equality: the same constructor applied to
// recursively equal components. No coercion, no subtyping.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case PrimitiveType:
		bt, ok := b.(PrimitiveType)
		return ok && at.Kind == bt.Kind
	case FunctionType:
		bt, ok := b.(FunctionType)
		return ok && Equal(at.Param, bt.Param) && Equal(at.Result, bt.Result)
	case PairType:
		bt, ok := b.(PairType)
		return ok && Equal(at.First, bt.First) && Equal(at.Second, bt.Second)
	default:
		return false
	}
}

// FormatType renders a type the way annotations are written: `int`,
// `(int -> bool)`, `(int * str)`.
func FormatType(t Type) string {
	switch tv := t.(type) {
	case PrimitiveType:
		return string(tv.Kind)
	case FunctionType:
		return fmt.Sprintf("(%s -> %s)", FormatType(tv.Param), FormatType(tv.Result))
	case PairType:
		return fmt.Sprintf("(%s * %s)", FormatType(tv.First), FormatType(tv.Second))
	case nil:
		return "<nil>"
	default:
		return tv.Name()
	}
}

// ResolveTypeExpression maps annotation syntax onto type values.
func ResolveTypeExpression(te ast.TypeExpression) (Type, error) {
	switch node := te.(type) {
	case *ast.SimpleTypeExpression:
		switch node.Name {
		case "int":
			return IntType, nil
		case "bool":
			return BoolType, nil
		case "str":
			return StringType, nil
		default:
			return nil, fmt.Errorf("typechecker: unknown type name '%s'", node.Name)
		}
	case *ast.FunctionTypeExpression:
		param, err := ResolveTypeExpression(node.Param)
		if err != nil {
			return nil, err
		}
		result, err := ResolveTypeExpression(node.Result)
		if err != nil {
			return nil, err
		}
		return FunctionType{Param: param, Result: result}, nil
	case *ast.PairTypeExpression:
		first, err := ResolveTypeExpression(node.First)
		if err != nil {
			return nil, err
		}
		second, err := ResolveTypeExpression(node.Second)
		if err != nil {
			return nil, err
		}
		return PairType{First: first, Second: second}, nil
	default:
		return nil, fmt.Errorf("typechecker: unhandled type expression %T", te)
	}
}
