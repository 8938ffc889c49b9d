package lexer

import (
	"fmt"

	"fern/interpreter-go/pkg/ast"
)

// Kind identifies the token category.
type Kind int

const (
	TokenInt Kind = iota
	TokenBool
	TokenString
	TokenSymbol
	TokenPlus
	TokenMinus
	TokenStar
	TokenConcat
	TokenLess
	TokenLessEq
	TokenEqEq
	TokenAssign
	TokenArrow
	TokenColon
	TokenComma
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenIf
	TokenElse
	TokenLet
	TokenRec
	TokenFn
	TokenFst
	TokenSnd
	TokenIntType
	TokenBoolType
	TokenStrType
)

func (k Kind) String() string {
	switch k {
	case TokenInt:
		return "integer"
	case TokenBool:
		return "boolean"
	case TokenString:
		return "string"
	case TokenSymbol:
		return "symbol"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenConcat:
		return "++"
	case TokenLess:
		return "<"
	case TokenLessEq:
		return "<="
	case TokenEqEq:
		return "=="
	case TokenAssign:
		return "="
	case TokenArrow:
		return "->"
	case TokenColon:
		return ":"
	case TokenComma:
		return ","
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenLBrace:
		return "{"
	case TokenRBrace:
		return "}"
	case TokenIf:
		return "if"
	case TokenElse:
		return "else"
	case TokenLet:
		return "let"
	case TokenRec:
		return "rec"
	case TokenFn:
		return "fn"
	case TokenFst:
		return "fst"
	case TokenSnd:
		return "snd"
	case TokenIntType:
		return "int"
	case TokenBoolType:
		return "bool"
	case TokenStrType:
		return "str"
	default:
		return "unknown"
	}
}

// Token is a single lexeme with its source position.
type Token struct {
	Kind Kind
	// Text holds the identifier name or string literal content.
	Text string
	// Int holds the parsed value for TokenInt.
	Int int64
	// Bool holds the value for TokenBool.
	Bool bool
	Pos  ast.Position
}

func (t Token) String() string {
	switch t.Kind {
	case TokenInt:
		return fmt.Sprintf("%d", t.Int)
	case TokenBool:
		return fmt.Sprintf("%t", t.Bool)
	case TokenString:
		return fmt.Sprintf("%q", t.Text)
	case TokenSymbol:
		return t.Text
	default:
		return t.Kind.String()
	}
}

var keywords = map[string]Kind{
	"if":   TokenIf,
	"else": TokenElse,
	"let":  TokenLet,
	"rec":  TokenRec,
	"fn":   TokenFn,
	"fst":  TokenFst,
	"snd":  TokenSnd,
	"int":  TokenIntType,
	"bool": TokenBoolType,
	"str":  TokenStrType,
}
