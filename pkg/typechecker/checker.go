package typechecker

import (
	"fmt"

	"fern/interpreter-go/pkg/ast"
)

// Check computes the type of expr under env, or reports the first type error
// found. It is a single structural recursion over the expression tree; the
// environment is the only threaded state and is extended only at
// binder-introducing forms. An expression that checks successfully cannot
// encounter a runtime type error when evaluated.
//
// Recursion depth equals expression-tree depth; pathological inputs can
// exhaust the stack, which is a documented limitation rather than a guarded
// failure mode.
func Check(expr ast.Expression, env *Environment) (Type, error) {
	switch node := expr.(type) {
	case *ast.IntegerLiteral:
		return IntType, nil

	case *ast.BooleanLiteral:
		return BoolType, nil

	case *ast.StringLiteral:
		return StringType, nil

	case *ast.Identifier:
		typ, ok := env.Lookup(node.Name)
		if !ok {
			return nil, errUnboundVariable(node, node.Name)
		}
		return typ, nil

	case *ast.BinaryExpression:
		return checkBinary(node, env)

	case *ast.IfExpression:
		condType, err := Check(node.Condition, env)
		if err != nil {
			return nil, err
		}
		if !Equal(condType, BoolType) {
			return nil, errConditionNotBoolean(node.Condition, condType)
		}
		thenType, err := Check(node.Then, env)
		if err != nil {
			return nil, err
		}
		elseType, err := Check(node.Else, env)
		if err != nil {
			return nil, err
		}
		if !Equal(thenType, elseType) {
			return nil, errBranchMismatch(node, thenType, elseType)
		}
		return thenType, nil

	case *ast.LetExpression:
		valueType, err := Check(node.Value, env)
		if err != nil {
			return nil, err
		}
		return Check(node.Body, env.Extend(node.Name.Name, valueType))

	case *ast.LetRecExpression:
		// Pre-bind the name at its declared type so the definition may
		// reference itself. Self-reference lives at the binding level; the
		// type grammar itself stays non-recursive.
		declared, err := ResolveTypeExpression(node.Annotation)
		if err != nil {
			return nil, err
		}
		extended := env.Extend(node.Name.Name, declared)
		valueType, err := Check(node.Value, extended)
		if err != nil {
			return nil, err
		}
		if !Equal(valueType, declared) {
			return nil, errDeclaredMismatch(node.Value, node.Name.Name, declared, valueType)
		}
		return Check(node.Body, extended)

	case *ast.LambdaExpression:
		paramType, err := ResolveTypeExpression(node.ParamType)
		if err != nil {
			return nil, err
		}
		bodyType, err := Check(node.Body, env.Extend(node.Param.Name, paramType))
		if err != nil {
			return nil, err
		}
		return FunctionType{Param: paramType, Result: bodyType}, nil

	case *ast.ApplyExpression:
		fnType, err := Check(node.Fn, env)
		if err != nil {
			return nil, err
		}
		fn, ok := fnType.(FunctionType)
		if !ok {
			return nil, errNotAFunction(node.Fn, fnType)
		}
		argType, err := Check(node.Arg, env)
		if err != nil {
			return nil, err
		}
		if !Equal(argType, fn.Param) {
			return nil, errArgMismatch(node.Arg, fn.Param, argType)
		}
		return fn.Result, nil

	case *ast.PairExpression:
		firstType, err := Check(node.First, env)
		if err != nil {
			return nil, err
		}
		secondType, err := Check(node.Second, env)
		if err != nil {
			return nil, err
		}
		return PairType{First: firstType, Second: secondType}, nil

	case *ast.ProjectionExpression:
		pairType, err := Check(node.Pair, env)
		if err != nil {
			return nil, err
		}
		pair, ok := pairType.(PairType)
		if !ok {
			return nil, errNotAProduct(node.Pair, node.Field, pairType)
		}
		if node.Field == ast.FieldFirst {
			return pair.First, nil
		}
		return pair.Second, nil

	default:
		// Guard against grammar growth outpacing the dispatch.
		return nil, fmt.Errorf("typechecker: unhandled expression %T", expr)
	}
}

func checkBinary(node *ast.BinaryExpression, env *Environment) (Type, error) {
	leftType, err := Check(node.Left, env)
	if err != nil {
		return nil, err
	}
	rightType, err := Check(node.Right, env)
	if err != nil {
		return nil, err
	}
	switch node.Op {
	case "+", "-", "*":
		if !Equal(leftType, IntType) {
			return nil, errOperandMismatch(node.Left, node.Op, IntType, leftType)
		}
		if !Equal(rightType, IntType) {
			return nil, errOperandMismatch(node.Right, node.Op, IntType, rightType)
		}
		return IntType, nil
	case "++":
		if !Equal(leftType, StringType) {
			return nil, errOperandMismatch(node.Left, node.Op, StringType, leftType)
		}
		if !Equal(rightType, StringType) {
			return nil, errOperandMismatch(node.Right, node.Op, StringType, rightType)
		}
		return StringType, nil
	case "<", "<=":
		if !Equal(leftType, IntType) {
			return nil, errOperandMismatch(node.Left, node.Op, IntType, leftType)
		}
		if !Equal(rightType, IntType) {
			return nil, errOperandMismatch(node.Right, node.Op, IntType, rightType)
		}
		return BoolType, nil
	case "==":
		// Equality is defined on base types only; functions and pairs are
		// not comparable.
		if _, ok := leftType.(PrimitiveType); !ok {
			return nil, errIncomparable(node.Left, node.Op, leftType)
		}
		if !Equal(leftType, rightType) {
			return nil, errComparisonMismatch(node, node.Op, leftType, rightType)
		}
		return BoolType, nil
	default:
		return nil, fmt.Errorf("typechecker: unhandled operator '%s'", node.Op)
	}
}
