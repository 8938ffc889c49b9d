package interpreter

import (
	"fmt"

	"fern/interpreter-go/pkg/ast"
	"fern/interpreter-go/pkg/runtime"
)

// RuntimeError reports a runtime failure and the node it occurred at. On
// expressions that passed the typechecker the type-shaped failures below are
// unreachable; they remain for unchecked use.
type RuntimeError struct {
	Message string
	Node    ast.Node
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func runtimeErrorf(node ast.Node, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Message: "runtime: " + fmt.Sprintf(format, args...),
		Node:    node,
	}
}

// Eval evaluates expr under env using environment-passing call-by-value
// semantics. Closures capture their defining environment.
func Eval(expr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch node := expr.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: node.Value}, nil

	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: node.Value}, nil

	case *ast.StringLiteral:
		return runtime.StringValue{Val: node.Value}, nil

	case *ast.Identifier:
		value, err := env.Get(node.Name)
		if err != nil {
			return nil, runtimeErrorf(node, "'%s' not bound", node.Name)
		}
		return value, nil

	case *ast.BinaryExpression:
		return evalBinary(node, env)

	case *ast.IfExpression:
		cond, err := Eval(node.Condition, env)
		if err != nil {
			return nil, err
		}
		flag, ok := cond.(runtime.BoolValue)
		if !ok {
			return nil, runtimeErrorf(node.Condition, "boolean expected, found %s", cond.Kind())
		}
		if flag.Val {
			return Eval(node.Then, env)
		}
		return Eval(node.Else, env)

	case *ast.LetExpression:
		value, err := Eval(node.Value, env)
		if err != nil {
			return nil, err
		}
		scope := runtime.NewEnvironment(env)
		scope.Define(node.Name.Name, value)
		return Eval(node.Body, scope)

	case *ast.LetRecExpression:
		// The definition evaluates inside the scope that will hold its own
		// binding, so a closure it produces sees itself once the knot is
		// tied below. A definition that forces its own value while still
		// evaluating fails with an unbound-variable error.
		scope := runtime.NewEnvironment(env)
		value, err := Eval(node.Value, scope)
		if err != nil {
			return nil, err
		}
		scope.Define(node.Name.Name, value)
		return Eval(node.Body, scope)

	case *ast.LambdaExpression:
		return runtime.ClosureValue{
			Param:     node.Param.Name,
			ParamType: node.ParamType,
			Body:      node.Body,
			Env:       env,
		}, nil

	case *ast.ApplyExpression:
		fn, err := Eval(node.Fn, env)
		if err != nil {
			return nil, err
		}
		arg, err := Eval(node.Arg, env)
		if err != nil {
			return nil, err
		}
		closure, ok := fn.(runtime.ClosureValue)
		if !ok {
			return nil, runtimeErrorf(node.Fn, "expected a function in application, found %s", fn.Kind())
		}
		scope := runtime.NewEnvironment(closure.Env)
		scope.Define(closure.Param, arg)
		return Eval(closure.Body, scope)

	case *ast.PairExpression:
		first, err := Eval(node.First, env)
		if err != nil {
			return nil, err
		}
		second, err := Eval(node.Second, env)
		if err != nil {
			return nil, err
		}
		return runtime.PairValue{First: first, Second: second}, nil

	case *ast.ProjectionExpression:
		value, err := Eval(node.Pair, env)
		if err != nil {
			return nil, err
		}
		pair, ok := value.(runtime.PairValue)
		if !ok {
			return nil, runtimeErrorf(node.Pair, "'%s' expects a pair, found %s", node.Field, value.Kind())
		}
		if node.Field == ast.FieldFirst {
			return pair.First, nil
		}
		return pair.Second, nil

	default:
		return nil, runtimeErrorf(expr, "unhandled expression %T", expr)
	}
}

func evalBinary(node *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := Eval(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := Eval(node.Right, env)
	if err != nil {
		return nil, err
	}
	switch node.Op {
	case "+", "-", "*", "<", "<=":
		ln, lok := left.(runtime.IntegerValue)
		rn, rok := right.(runtime.IntegerValue)
		if !lok || !rok {
			return nil, runtimeErrorf(node, "'%s' expects two integers, got %s and %s",
				node.Op, left.Kind(), right.Kind())
		}
		switch node.Op {
		case "+":
			return runtime.IntegerValue{Val: ln.Val + rn.Val}, nil
		case "-":
			return runtime.IntegerValue{Val: ln.Val - rn.Val}, nil
		case "*":
			return runtime.IntegerValue{Val: ln.Val * rn.Val}, nil
		case "<":
			return runtime.BoolValue{Val: ln.Val < rn.Val}, nil
		default:
			return runtime.BoolValue{Val: ln.Val <= rn.Val}, nil
		}
	case "++":
		ls, lok := left.(runtime.StringValue)
		rs, rok := right.(runtime.StringValue)
		if !lok || !rok {
			return nil, runtimeErrorf(node, "'++' expects two strings, got %s and %s",
				left.Kind(), right.Kind())
		}
		return runtime.StringValue{Val: ls.Val + rs.Val}, nil
	case "==":
		return evalEquality(node, left, right)
	default:
		return nil, runtimeErrorf(node, "unhandled operator '%s'", node.Op)
	}
}

func evalEquality(node *ast.BinaryExpression, left, right runtime.Value) (runtime.Value, error) {
	switch lv := left.(type) {
	case runtime.IntegerValue:
		if rv, ok := right.(runtime.IntegerValue); ok {
			return runtime.BoolValue{Val: lv.Val == rv.Val}, nil
		}
	case runtime.BoolValue:
		if rv, ok := right.(runtime.BoolValue); ok {
			return runtime.BoolValue{Val: lv.Val == rv.Val}, nil
		}
	case runtime.StringValue:
		if rv, ok := right.(runtime.StringValue); ok {
			return runtime.BoolValue{Val: lv.Val == rv.Val}, nil
		}
	}
	return nil, runtimeErrorf(node, "'==' expects matching comparable operands, got %s and %s",
		left.Kind(), right.Kind())
}
