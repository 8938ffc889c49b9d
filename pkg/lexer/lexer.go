package lexer

import (
	"fmt"
	"strconv"

	"fern/interpreter-go/pkg/ast"
)

// LexError reports an invalid lexeme and where it starts.
type LexError struct {
	Message string
	Pos     ast.Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer: %s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
}

type lexer struct {
	src    []rune
	offset int
	line   int
	column int
}

// Tokenize converts source text into a token stream.
func Tokenize(src string) ([]Token, error) {
	lx := &lexer{src: []rune(src), line: 1, column: 1}
	var tokens []Token
	for {
		tok, ok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// BraceDepth reports the net paren/brace nesting of the token stream. The
// REPL keeps reading lines until the depth returns to zero.
func BraceDepth(tokens []Token) int {
	depth := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenLParen, TokenLBrace:
			depth++
		case TokenRParen, TokenRBrace:
			depth--
		}
	}
	return depth
}

func (lx *lexer) next() (Token, bool, error) {
	lx.skipWhitespace()
	if lx.offset >= len(lx.src) {
		return Token{}, false, nil
	}
	pos := lx.pos()
	ch := lx.src[lx.offset]
	switch {
	case ch == '-':
		lx.advance()
		if lx.peek() == '>' {
			lx.advance()
			return Token{Kind: TokenArrow, Pos: pos}, true, nil
		}
		// A '-' directly followed by a digit lexes as a negative literal.
		if isDigit(lx.peek()) {
			return lx.lexInt(pos, "-")
		}
		return Token{Kind: TokenMinus, Pos: pos}, true, nil
	case isDigit(ch):
		return lx.lexInt(pos, "")
	case ch == '+':
		lx.advance()
		if lx.peek() == '+' {
			lx.advance()
			return Token{Kind: TokenConcat, Pos: pos}, true, nil
		}
		return Token{Kind: TokenPlus, Pos: pos}, true, nil
	case ch == '*':
		lx.advance()
		return Token{Kind: TokenStar, Pos: pos}, true, nil
	case ch == '<':
		lx.advance()
		if lx.peek() == '=' {
			lx.advance()
			return Token{Kind: TokenLessEq, Pos: pos}, true, nil
		}
		return Token{Kind: TokenLess, Pos: pos}, true, nil
	case ch == '=':
		lx.advance()
		if lx.peek() == '=' {
			lx.advance()
			return Token{Kind: TokenEqEq, Pos: pos}, true, nil
		}
		return Token{Kind: TokenAssign, Pos: pos}, true, nil
	case ch == ':':
		lx.advance()
		return Token{Kind: TokenColon, Pos: pos}, true, nil
	case ch == ',':
		lx.advance()
		return Token{Kind: TokenComma, Pos: pos}, true, nil
	case ch == '(':
		lx.advance()
		return Token{Kind: TokenLParen, Pos: pos}, true, nil
	case ch == ')':
		lx.advance()
		return Token{Kind: TokenRParen, Pos: pos}, true, nil
	case ch == '{':
		lx.advance()
		return Token{Kind: TokenLBrace, Pos: pos}, true, nil
	case ch == '}':
		lx.advance()
		return Token{Kind: TokenRBrace, Pos: pos}, true, nil
	case ch == '"':
		return lx.lexString(pos)
	case isSymbolStart(ch):
		return lx.lexSymbol(pos)
	default:
		return Token{}, false, &LexError{
			Message: fmt.Sprintf("unexpected character %q", ch),
			Pos:     pos,
		}
	}
}

func (lx *lexer) lexInt(pos ast.Position, prefix string) (Token, bool, error) {
	text := prefix
	for lx.offset < len(lx.src) && isDigit(lx.src[lx.offset]) {
		text += string(lx.src[lx.offset])
		lx.advance()
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, false, &LexError{
			Message: fmt.Sprintf("invalid integer literal %q", text),
			Pos:     pos,
		}
	}
	return Token{Kind: TokenInt, Int: value, Pos: pos}, true, nil
}

func (lx *lexer) lexString(pos ast.Position) (Token, bool, error) {
	lx.advance() // opening quote
	var text []rune
	for lx.offset < len(lx.src) && lx.src[lx.offset] != '"' {
		text = append(text, lx.src[lx.offset])
		lx.advance()
	}
	if lx.offset >= len(lx.src) {
		return Token{}, false, &LexError{Message: "unterminated string literal", Pos: pos}
	}
	lx.advance() // closing quote
	return Token{Kind: TokenString, Text: string(text), Pos: pos}, true, nil
}

func (lx *lexer) lexSymbol(pos ast.Position) (Token, bool, error) {
	var text []rune
	for lx.offset < len(lx.src) && isSymbolPart(lx.src[lx.offset]) {
		text = append(text, lx.src[lx.offset])
		lx.advance()
	}
	name := string(text)
	if kind, ok := keywords[name]; ok {
		return Token{Kind: kind, Pos: pos}, true, nil
	}
	if name == "true" || name == "false" {
		return Token{Kind: TokenBool, Bool: name == "true", Pos: pos}, true, nil
	}
	return Token{Kind: TokenSymbol, Text: name, Pos: pos}, true, nil
}

func (lx *lexer) skipWhitespace() {
	for lx.offset < len(lx.src) {
		switch lx.src[lx.offset] {
		case ' ', '\t', '\r', '\n':
			lx.advance()
		default:
			return
		}
	}
}

func (lx *lexer) pos() ast.Position {
	return ast.Position{Line: lx.line, Column: lx.column}
}

func (lx *lexer) peek() rune {
	if lx.offset >= len(lx.src) {
		return 0
	}
	return lx.src[lx.offset]
}

func (lx *lexer) advance() {
	if lx.offset >= len(lx.src) {
		return
	}
	if lx.src[lx.offset] == '\n' {
		lx.line++
		lx.column = 1
	} else {
		lx.column++
	}
	lx.offset++
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isSymbolStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isSymbolPart(ch rune) bool {
	return isSymbolStart(ch) || isDigit(ch)
}
