package parser

import (
	"strings"
	"testing"

	"fern/interpreter-go/pkg/ast"
)

func parse(t *testing.T, src string) ast.Expression {
	t.Helper()
	expr, err := Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return expr
}

func TestParseLiterals(t *testing.T) {
	if expr := parse(t, "42"); expr.String() != "42" {
		t.Fatalf("unexpected ast: %s", expr)
	}
	if expr := parse(t, "true"); expr.String() != "true" {
		t.Fatalf("unexpected ast: %s", expr)
	}
	if expr := parse(t, `"hi"`); expr.String() != `"hi"` {
		t.Fatalf("unexpected ast: %s", expr)
	}
}

func TestParseOperatorsLeftAssociative(t *testing.T) {
	expr := parse(t, "1 + 2 + 3")
	if got := expr.String(); got != "(+ (+ 1 2) 3)" {
		t.Fatalf("unexpected ast: %s", got)
	}
}

func TestParseApplicationBindsTighterThanOperators(t *testing.T) {
	expr := parse(t, "f(1) + g(2)")
	if got := expr.String(); got != "(+ (f 1) (g 2))" {
		t.Fatalf("unexpected ast: %s", got)
	}
}

func TestParseCurriedApplication(t *testing.T) {
	expr := parse(t, "f(1)(2)")
	if got := expr.String(); got != "((f 1) 2)" {
		t.Fatalf("unexpected ast: %s", got)
	}
}

func TestParseConditional(t *testing.T) {
	expr := parse(t, "if 1 < 2 { 1 } else { 2 }")
	cnd, ok := expr.(*ast.IfExpression)
	if !ok {
		t.Fatalf("expected IfExpression, got %T", expr)
	}
	if got := cnd.String(); got != "(if (< 1 2) 1 2)" {
		t.Fatalf("unexpected ast: %s", got)
	}
}

func TestParseLetBinding(t *testing.T) {
	expr := parse(t, "let x = 5 { x + 1 }")
	let, ok := expr.(*ast.LetExpression)
	if !ok {
		t.Fatalf("expected LetExpression, got %T", expr)
	}
	if let.Name.Name != "x" {
		t.Fatalf("unexpected binder: %s", let.Name.Name)
	}
}

func TestParseLetRecRequiresAnnotation(t *testing.T) {
	expr := parse(t, "let rec f: (int -> int) = fn (n: int) { f(n) } { f(1) }")
	letrec, ok := expr.(*ast.LetRecExpression)
	if !ok {
		t.Fatalf("expected LetRecExpression, got %T", expr)
	}
	if _, ok := letrec.Annotation.(*ast.FunctionTypeExpression); !ok {
		t.Fatalf("expected function annotation, got %T", letrec.Annotation)
	}

	if _, err := Parse("let rec f = fn (n: int) { n } { f(1) }"); err == nil {
		t.Fatalf("expected error for let rec without annotation")
	}
}

func TestParsePlainLetRejectsAnnotation(t *testing.T) {
	if _, err := Parse("let x: int = 1 { x }"); err == nil {
		t.Fatalf("expected error for annotated plain let")
	}
}

func TestParseLambda(t *testing.T) {
	expr := parse(t, "fn (x: int) { x }")
	lam, ok := expr.(*ast.LambdaExpression)
	if !ok {
		t.Fatalf("expected LambdaExpression, got %T", expr)
	}
	if got := lam.String(); got != "(fn (x: int) x)" {
		t.Fatalf("unexpected ast: %s", got)
	}
}

func TestParsePairAndGrouping(t *testing.T) {
	expr := parse(t, "(1, true)")
	if _, ok := expr.(*ast.PairExpression); !ok {
		t.Fatalf("expected PairExpression, got %T", expr)
	}

	grouped := parse(t, "(1 + 2) * 3")
	if got := grouped.String(); got != "(* (+ 1 2) 3)" {
		t.Fatalf("unexpected ast: %s", got)
	}
}

func TestParseProjections(t *testing.T) {
	expr := parse(t, "fst (1, 2)")
	proj, ok := expr.(*ast.ProjectionExpression)
	if !ok {
		t.Fatalf("expected ProjectionExpression, got %T", expr)
	}
	if proj.Field != ast.FieldFirst {
		t.Fatalf("expected fst, got %s", proj.Field)
	}

	expr = parse(t, "snd p")
	proj, ok = expr.(*ast.ProjectionExpression)
	if !ok {
		t.Fatalf("expected ProjectionExpression, got %T", expr)
	}
	if proj.Field != ast.FieldSecond {
		t.Fatalf("expected snd, got %s", proj.Field)
	}
}

func TestParseTypeExpressions(t *testing.T) {
	expr := parse(t, "fn (f: ((int -> bool) * str)) { f }")
	lam := expr.(*ast.LambdaExpression)
	pair, ok := lam.ParamType.(*ast.PairTypeExpression)
	if !ok {
		t.Fatalf("expected pair type annotation, got %T", lam.ParamType)
	}
	if _, ok := pair.First.(*ast.FunctionTypeExpression); !ok {
		t.Fatalf("expected function type component, got %T", pair.First)
	}
	if got := pair.String(); got != "((int -> bool) * str)" {
		t.Fatalf("unexpected annotation: %s", got)
	}
}

func TestParseRejectsTrailingTokens(t *testing.T) {
	_, err := Parse("1 2 3")
	if err == nil {
		t.Fatalf("expected error for trailing tokens")
	}
	if !strings.Contains(err.Error(), "end of input") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestParseErrorCarriesLocation(t *testing.T) {
	_, err := Parse("let 5 = 1 { x }")
	if err == nil {
		t.Fatalf("expected error for bad binder")
	}
	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Location.Line != 1 || parseErr.Location.Column != 5 {
		t.Fatalf("unexpected location: %+v", parseErr.Location)
	}
}

func TestParseSpansCoverExpression(t *testing.T) {
	expr := parse(t, "let x = 5 { x }")
	span := expr.Span()
	if span.Start.Line != 1 || span.Start.Column != 1 {
		t.Fatalf("unexpected start: %+v", span.Start)
	}
	if span.End.Column <= span.Start.Column {
		t.Fatalf("expected span to extend past start, got %+v", span)
	}
}
