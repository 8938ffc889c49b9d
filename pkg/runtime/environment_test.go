package runtime

import "testing"

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", IntegerValue{Val: 1})
	value, err := env.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := value.(IntegerValue); n.Val != 1 {
		t.Fatalf("expected 1, got %d", n.Val)
	}

	if _, err := env.Get("y"); err == nil {
		t.Fatalf("expected error for unbound name")
	}
}

func TestEnvironmentScopeChain(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", IntegerValue{Val: 1})
	inner := NewEnvironment(outer)
	inner.Define("x", StringValue{Val: "shadow"})

	value, err := inner.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := value.(StringValue); !ok {
		t.Fatalf("expected inner binding to shadow, got %s", value.Kind())
	}

	value, err = outer.Get("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := value.(IntegerValue); !ok {
		t.Fatalf("expected outer binding unchanged, got %s", value.Kind())
	}
}

func TestValueKinds(t *testing.T) {
	cases := []struct {
		value Value
		kind  Kind
	}{
		{IntegerValue{Val: 1}, KindInteger},
		{BoolValue{Val: true}, KindBool},
		{StringValue{Val: "s"}, KindString},
		{PairValue{First: IntegerValue{Val: 1}, Second: BoolValue{Val: false}}, KindPair},
	}
	for _, c := range cases {
		if c.value.Kind() != c.kind {
			t.Fatalf("expected %s, got %s", c.kind, c.value.Kind())
		}
	}
	if (PairValue{First: IntegerValue{Val: 1}, Second: BoolValue{Val: false}}).String() != "(1, false)" {
		t.Fatalf("unexpected pair rendering")
	}
}
