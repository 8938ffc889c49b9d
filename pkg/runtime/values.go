package runtime

import (
	"fmt"
	"strconv"

	"fern/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindBool
	KindString
	KindClosure
	KindPair
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindClosure:
		return "closure"
	case KindPair:
		return "pair"
	default:
		return "unknown"
	}
}

// Value is a fully evaluated Fern value.
type Value interface {
	Kind() Kind
	String() string
}

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind     { return KindInteger }
func (v IntegerValue) String() string { return strconv.FormatInt(v.Val, 10) }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind     { return KindBool }
func (v BoolValue) String() string { return strconv.FormatBool(v.Val) }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind     { return KindString }
func (v StringValue) String() string { return v.Val }

// ClosureValue captures a lambda together with its defining environment.
type ClosureValue struct {
	Param     string
	ParamType ast.TypeExpression
	Body      ast.Expression
	Env       *Environment
}

func (v ClosureValue) Kind() Kind { return KindClosure }
func (v ClosureValue) String() string {
	return fmt.Sprintf("closure((fn (%s: %s) %s))", v.Param, v.ParamType, v.Body)
}

type PairValue struct {
	First  Value
	Second Value
}

func (v PairValue) Kind() Kind { return KindPair }
func (v PairValue) String() string {
	return fmt.Sprintf("(%s, %s)", v.First, v.Second)
}
