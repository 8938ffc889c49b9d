package parser

import (
	"fern/interpreter-go/pkg/ast"
	"fern/interpreter-go/pkg/lexer"
)

// Grammar:
//
//	expression  -> term [ (+ | - | * | ++ | < | <= | ==) term ]*
//	term        -> factor [ ( expression ) ]*
//	factor      -> ( expression [, expression] ) | conditional | binding
//	             | lambda | fst factor | snd factor | int | bool | str | symbol
//	conditional -> if expression { expression } else { expression }
//	binding     -> let [rec symbol : typeexp | symbol] = expression { expression }
//	lambda      -> fn ( symbol : typeexp ) { expression }
//	typeexp     -> int | bool | str | ( typeexp -> typeexp ) | ( typeexp * typeexp )
//
// Binary operators are left-associative and share one precedence level;
// application binds tighter than any operator.

// Parse tokenizes and parses a complete source text into an expression.
func Parse(src string) (ast.Expression, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseExpression(tokens)
}

// ParseExpression parses a token stream into a single expression, rejecting
// trailing tokens.
func ParseExpression(tokens []lexer.Token) (ast.Expression, error) {
	p := &parser{tokens: tokens}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.current(); ok {
		return nil, errorAt(tok, "expected end of input, found '%s'", tok)
	}
	return expr, nil
}

type parser struct {
	tokens   []lexer.Token
	position int
}

var binaryOps = map[lexer.Kind]string{
	lexer.TokenPlus:   "+",
	lexer.TokenMinus:  "-",
	lexer.TokenStar:   "*",
	lexer.TokenConcat: "++",
	lexer.TokenLess:   "<",
	lexer.TokenLessEq: "<=",
	lexer.TokenEqEq:   "==",
}

func (p *parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.current()
		if !ok {
			return left, nil
		}
		op, isOp := binaryOps[tok.Kind]
		if !isOp {
			return left, nil
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		bin := ast.Bin(op, left, right)
		ast.SetSpan(bin, spanFrom(left.Span().Start, right.Span().End))
		left = bin
	}
}

func (p *parser) parseTerm() (ast.Expression, error) {
	term, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.current()
		if !ok || tok.Kind != lexer.TokenLParen {
			return term, nil
		}
		p.advance()
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(lexer.TokenRParen)
		if err != nil {
			return nil, err
		}
		app := ast.Apply(term, arg)
		ast.SetSpan(app, spanFrom(term.Span().Start, end.Pos))
		term = app
	}
}

func (p *parser) parseFactor() (ast.Expression, error) {
	tok, ok := p.current()
	if !ok {
		return nil, errorAtEnd("expected an expression, found end of input")
	}
	switch tok.Kind {
	case lexer.TokenLParen:
		return p.parseGroupOrPair()
	case lexer.TokenIf:
		return p.parseConditional()
	case lexer.TokenLet:
		return p.parseBinding()
	case lexer.TokenFn:
		return p.parseLambda()
	case lexer.TokenFst, lexer.TokenSnd:
		return p.parseProjection()
	case lexer.TokenInt:
		p.advance()
		lit := ast.Int(tok.Int)
		ast.SetSpan(lit, spanFrom(tok.Pos, tok.Pos))
		return lit, nil
	case lexer.TokenBool:
		p.advance()
		lit := ast.Bool(tok.Bool)
		ast.SetSpan(lit, spanFrom(tok.Pos, tok.Pos))
		return lit, nil
	case lexer.TokenString:
		p.advance()
		lit := ast.Str(tok.Text)
		ast.SetSpan(lit, spanFrom(tok.Pos, tok.Pos))
		return lit, nil
	case lexer.TokenSymbol:
		p.advance()
		id := ast.ID(tok.Text)
		ast.SetSpan(id, spanFrom(tok.Pos, tok.Pos))
		return id, nil
	default:
		return nil, errorAt(tok, "expected an expression, found '%s'", tok)
	}
}

// parseGroupOrPair handles both a parenthesized expression and a pair
// literal `(e1, e2)`, distinguished by the comma.
func (p *parser) parseGroupOrPair() (ast.Expression, error) {
	open, err := p.expect(lexer.TokenLParen)
	if err != nil {
		return nil, err
	}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.current(); ok && tok.Kind == lexer.TokenComma {
		p.advance()
		second, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		end, err := p.expect(lexer.TokenRParen)
		if err != nil {
			return nil, err
		}
		pair := ast.Pair(first, second)
		ast.SetSpan(pair, spanFrom(open.Pos, end.Pos))
		return pair, nil
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	return first, nil
}

func (p *parser) parseConditional() (ast.Expression, error) {
	start, err := p.expect(lexer.TokenIf)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, _, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenElse); err != nil {
		return nil, err
	}
	els, end, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	cnd := ast.If(cond, then, els)
	ast.SetSpan(cnd, spanFrom(start.Pos, end.Pos))
	return cnd, nil
}

func (p *parser) parseBinding() (ast.Expression, error) {
	start, err := p.expect(lexer.TokenLet)
	if err != nil {
		return nil, err
	}
	recursive := false
	if tok, ok := p.current(); ok && tok.Kind == lexer.TokenRec {
		recursive = true
		p.advance()
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var annotation ast.TypeExpression
	if recursive {
		// The declared type is what the definition sees itself bound to.
		if _, err := p.expect(lexer.TokenColon); err != nil {
			return nil, err
		}
		annotation, err = p.parseTypeExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TokenAssign); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, end, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if recursive {
		letrec := &ast.LetRecExpression{Name: name, Annotation: annotation, Value: value, Body: body}
		ast.SetSpan(letrec, spanFrom(start.Pos, end.Pos))
		return letrec, nil
	}
	let := &ast.LetExpression{Name: name, Value: value, Body: body}
	ast.SetSpan(let, spanFrom(start.Pos, end.Pos))
	return let, nil
}

func (p *parser) parseLambda() (ast.Expression, error) {
	start, err := p.expect(lexer.TokenFn)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	param, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	paramType, err := p.parseTypeExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	body, end, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	lam := &ast.LambdaExpression{Param: param, ParamType: paramType, Body: body}
	ast.SetSpan(lam, spanFrom(start.Pos, end.Pos))
	return lam, nil
}

func (p *parser) parseProjection() (ast.Expression, error) {
	tok, _ := p.current()
	field := ast.FieldFirst
	if tok.Kind == lexer.TokenSnd {
		field = ast.FieldSecond
	}
	p.advance()
	pair, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	proj := &ast.ProjectionExpression{Field: field, Pair: pair}
	ast.SetSpan(proj, spanFrom(tok.Pos, pair.Span().End))
	return proj, nil
}

// parseBlock parses `{ expression }` and returns the closing brace token for
// span bookkeeping.
func (p *parser) parseBlock() (ast.Expression, lexer.Token, error) {
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return nil, lexer.Token{}, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, lexer.Token{}, err
	}
	end, err := p.expect(lexer.TokenRBrace)
	if err != nil {
		return nil, lexer.Token{}, err
	}
	return expr, end, nil
}

func (p *parser) parseTypeExpression() (ast.TypeExpression, error) {
	tok, ok := p.current()
	if !ok {
		return nil, errorAtEnd("expected a type, found end of input")
	}
	switch tok.Kind {
	case lexer.TokenIntType:
		p.advance()
		te := ast.IntType()
		ast.SetSpan(te, spanFrom(tok.Pos, tok.Pos))
		return te, nil
	case lexer.TokenBoolType:
		p.advance()
		te := ast.BoolType()
		ast.SetSpan(te, spanFrom(tok.Pos, tok.Pos))
		return te, nil
	case lexer.TokenStrType:
		p.advance()
		te := ast.StrType()
		ast.SetSpan(te, spanFrom(tok.Pos, tok.Pos))
		return te, nil
	case lexer.TokenLParen:
		p.advance()
		left, err := p.parseTypeExpression()
		if err != nil {
			return nil, err
		}
		sep, ok := p.current()
		if !ok {
			return nil, errorAtEnd("expected '->' or '*' in type, found end of input")
		}
		switch sep.Kind {
		case lexer.TokenArrow:
			p.advance()
			result, err := p.parseTypeExpression()
			if err != nil {
				return nil, err
			}
			end, err := p.expect(lexer.TokenRParen)
			if err != nil {
				return nil, err
			}
			te := ast.FnType(left, result)
			ast.SetSpan(te, spanFrom(tok.Pos, end.Pos))
			return te, nil
		case lexer.TokenStar:
			p.advance()
			second, err := p.parseTypeExpression()
			if err != nil {
				return nil, err
			}
			end, err := p.expect(lexer.TokenRParen)
			if err != nil {
				return nil, err
			}
			te := ast.PairType(left, second)
			ast.SetSpan(te, spanFrom(tok.Pos, end.Pos))
			return te, nil
		default:
			return nil, errorAt(sep, "expected '->' or '*' in type, found '%s'", sep)
		}
	default:
		return nil, errorAt(tok, "expected a type, found '%s'", tok)
	}
}

func (p *parser) parseIdentifier() (*ast.Identifier, error) {
	tok, ok := p.current()
	if !ok {
		return nil, errorAtEnd("expected an identifier, found end of input")
	}
	if tok.Kind != lexer.TokenSymbol {
		return nil, errorAt(tok, "expected an identifier, found '%s'", tok)
	}
	p.advance()
	id := ast.ID(tok.Text)
	ast.SetSpan(id, spanFrom(tok.Pos, tok.Pos))
	return id, nil
}

func (p *parser) expect(kind lexer.Kind) (lexer.Token, error) {
	tok, ok := p.current()
	if !ok {
		return lexer.Token{}, errorAtEnd("expected '%s', found end of input", kind)
	}
	if tok.Kind != kind {
		return lexer.Token{}, errorAt(tok, "expected '%s', found '%s'", kind, tok)
	}
	p.advance()
	return tok, nil
}

func (p *parser) current() (lexer.Token, bool) {
	if p.position >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.position], true
}

func (p *parser) advance() {
	p.position++
}
