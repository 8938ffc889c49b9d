package parser

import (
	"fmt"

	"fern/interpreter-go/pkg/ast"
	"fern/interpreter-go/pkg/lexer"
)

// SourceLocation captures a source span for parser diagnostics.
type SourceLocation struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ParseError includes a message plus a best-effort source location.
type ParseError struct {
	Message  string
	Location SourceLocation
}

func (e *ParseError) Error() string {
	return e.Message
}

func locationForToken(tok lexer.Token) SourceLocation {
	return SourceLocation{
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column,
	}
}

func errorAt(tok lexer.Token, format string, args ...any) *ParseError {
	return &ParseError{
		Message:  "parser: " + fmt.Sprintf(format, args...),
		Location: locationForToken(tok),
	}
}

func errorAtEnd(format string, args ...any) *ParseError {
	return &ParseError{Message: "parser: " + fmt.Sprintf(format, args...)}
}

func spanFrom(start, end ast.Position) ast.Span {
	return ast.Span{Start: start, End: end}
}
