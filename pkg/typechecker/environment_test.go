package typechecker

import "testing"

func TestEmptyEnvironmentLookupFails(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Lookup("x"); ok {
		t.Fatalf("expected lookup to fail in empty environment")
	}
}

func TestExtendAndLookup(t *testing.T) {
	env := NewEnvironment().Extend("x", IntType)
	typ, ok := env.Lookup("x")
	if !ok {
		t.Fatalf("expected x to be bound")
	}
	if !Equal(typ, IntType) {
		t.Fatalf("expected int, got %s", FormatType(typ))
	}
}

func TestExtendShadowsPriorBinding(t *testing.T) {
	outer := NewEnvironment().Extend("x", IntType)
	inner := outer.Extend("x", BoolType)

	typ, _ := inner.Lookup("x")
	if !Equal(typ, BoolType) {
		t.Fatalf("expected inner binding to shadow, got %s", FormatType(typ))
	}
	typ, _ = outer.Lookup("x")
	if !Equal(typ, IntType) {
		t.Fatalf("expected outer environment unaffected, got %s", FormatType(typ))
	}
}

func TestSiblingExtensionsAreIsolated(t *testing.T) {
	base := NewEnvironment().Extend("x", IntType)
	left := base.Extend("y", BoolType)
	right := base.Extend("z", StringType)

	if _, ok := left.Lookup("z"); ok {
		t.Fatalf("left sibling sees right binding")
	}
	if _, ok := right.Lookup("y"); ok {
		t.Fatalf("right sibling sees left binding")
	}
	if _, ok := base.Lookup("y"); ok {
		t.Fatalf("base environment mutated by extension")
	}
}
