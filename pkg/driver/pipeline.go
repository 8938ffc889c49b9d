package driver

import (
	"fern/interpreter-go/pkg/ast"
	"fern/interpreter-go/pkg/interpreter"
	"fern/interpreter-go/pkg/parser"
	"fern/interpreter-go/pkg/runtime"
	"fern/interpreter-go/pkg/typechecker"
)

// CheckSource parses src and typechecks it under the empty environment.
func CheckSource(src string) (ast.Expression, typechecker.Type, error) {
	expr, err := parser.Parse(src)
	if err != nil {
		return nil, nil, err
	}
	typ, err := typechecker.Check(expr, typechecker.NewEnvironment())
	if err != nil {
		return expr, nil, err
	}
	return expr, typ, nil
}

// RunSource checks src and, only if checking succeeded, evaluates it. The
// evaluator is never invoked on an expression that failed checking.
func RunSource(src string) (typechecker.Type, runtime.Value, error) {
	expr, typ, err := CheckSource(src)
	if err != nil {
		return nil, nil, err
	}
	value, err := interpreter.Eval(expr, runtime.NewEnvironment(nil))
	if err != nil {
		return typ, nil, err
	}
	return typ, value, nil
}
