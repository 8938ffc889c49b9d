package lexer

import (
	"testing"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenizeArithmeticExpression(t *testing.T) {
	tokens, err := Tokenize("let x = 5 { x + 1 }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{TokenLet, TokenSymbol, TokenAssign, TokenInt, TokenLBrace,
		TokenSymbol, TokenPlus, TokenInt, TokenRBrace}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(got), tokens)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestTokenizeArrowVersusNegativeLiteral(t *testing.T) {
	tokens, err := Tokenize("(int -> bool) -7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{TokenLParen, TokenIntType, TokenArrow, TokenBoolType, TokenRParen, TokenInt}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(got), tokens)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if tokens[5].Int != -7 {
		t.Fatalf("expected -7, got %d", tokens[5].Int)
	}
}

func TestTokenizeBareMinus(t *testing.T) {
	tokens, err := Tokenize("x - y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[1].Kind != TokenMinus {
		t.Fatalf("expected minus token, got %s", tokens[1])
	}
}

func TestTokenizeCompoundOperators(t *testing.T) {
	tokens, err := Tokenize(`"a" ++ "b" <= == = < +`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{TokenString, TokenConcat, TokenString, TokenLessEq,
		TokenEqEq, TokenAssign, TokenLess, TokenPlus}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestTokenizeKeywordsAndBooleans(t *testing.T) {
	tokens, err := Tokenize("if else let rec fn fst snd true false int bool str recur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{TokenIf, TokenElse, TokenLet, TokenRec, TokenFn, TokenFst, TokenSnd,
		TokenBool, TokenBool, TokenIntType, TokenBoolType, TokenStrType, TokenSymbol}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %s, got %s", i, want[i], got[i])
		}
	}
	if !tokens[7].Bool || tokens[8].Bool {
		t.Fatalf("boolean literal values wrong: %v %v", tokens[7], tokens[8])
	}
	if tokens[12].Text != "recur" {
		t.Fatalf("expected symbol 'recur', got %q", tokens[12].Text)
	}
}

func TestTokenizeStringLiteral(t *testing.T) {
	tokens, err := Tokenize(`"hello world"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != TokenString || tokens[0].Text != "hello world" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"oops`)
	if err == nil {
		t.Fatalf("expected error for unterminated string")
	}
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
	if lexErr.Pos.Line != 1 || lexErr.Pos.Column != 1 {
		t.Fatalf("unexpected position: %+v", lexErr.Pos)
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("1 # 2")
	if err == nil {
		t.Fatalf("expected error for unexpected character")
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("let x = 1\n{ x }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := tokens[0]
	if first.Pos.Line != 1 || first.Pos.Column != 1 {
		t.Fatalf("unexpected position for 'let': %+v", first.Pos)
	}
	brace := tokens[4]
	if brace.Kind != TokenLBrace || brace.Pos.Line != 2 || brace.Pos.Column != 1 {
		t.Fatalf("unexpected position for brace: %v at %+v", brace, brace.Pos)
	}
}

func TestBraceDepth(t *testing.T) {
	tokens, err := Tokenize("if (1 < 2) { 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if depth := BraceDepth(tokens); depth != 1 {
		t.Fatalf("expected depth 1, got %d", depth)
	}
	more, err := Tokenize("} else { 2 }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if depth := BraceDepth(append(tokens, more...)); depth != 0 {
		t.Fatalf("expected balanced input, got depth %d", depth)
	}
}
