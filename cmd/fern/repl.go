package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"fern/interpreter-go/pkg/driver"
	"fern/interpreter-go/pkg/interpreter"
	"fern/interpreter-go/pkg/lexer"
	"fern/interpreter-go/pkg/parser"
	"fern/interpreter-go/pkg/runtime"
	"fern/interpreter-go/pkg/typechecker"
)

func runRepl() int {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\nPlease enter an expression:")
		tokens, done := readBalanced(reader)
		if done {
			return 0
		}
		if len(tokens) == 0 {
			continue
		}

		printTokens(tokens)

		expr, err := parser.ParseExpression(tokens)
		if err != nil {
			fmt.Printf("Parse error: %v\n", err)
			continue
		}
		fmt.Printf("ast   : %s\n", expr)

		typ, err := typechecker.Check(expr, typechecker.NewEnvironment())
		if err != nil {
			fmt.Printf("Type check failure: %v\n", err)
			continue
		}
		fmt.Printf("type  : %s\n", typechecker.FormatType(typ))

		value, err := interpreter.Eval(expr, runtime.NewEnvironment(nil))
		if err != nil {
			fmt.Printf("Runtime error: %v\n", err)
			continue
		}
		fmt.Printf("result: %s\n", value)
	}
}

// readBalanced accumulates input lines until the paren/brace nesting returns
// to zero, so multi-line expressions can be entered naturally. The second
// return is true on EOF.
func readBalanced(reader *bufio.Reader) ([]lexer.Token, bool) {
	var tokens []lexer.Token
	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF && line == "" {
			return nil, true
		}
		if err != nil && err != io.EOF {
			fmt.Fprintf(os.Stderr, "failed to read input: %v\n", err)
			return nil, true
		}
		if strings.TrimSpace(line) == "" {
			if err == io.EOF {
				return nil, true
			}
			continue
		}

		lineTokens, lexErr := lexer.Tokenize(strings.TrimSpace(line))
		if lexErr != nil {
			fmt.Printf("Tokenizer error: %v\n", lexErr)
			continue
		}
		tokens = append(tokens, lineTokens...)

		if lexer.BraceDepth(tokens) <= 0 {
			return tokens, false
		}
		if err == io.EOF {
			return tokens, false
		}
	}
}

func printTokens(tokens []lexer.Token) {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.String())
	}
	fmt.Printf("tokens: [%s]\n", strings.Join(parts, ", "))
}

func runFile(args []string, mode executionMode) int {
	if len(args) != 1 {
		printUsage()
		return 1
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", args[0], err)
		return 1
	}
	if mode == modeCheck {
		_, typ, err := driver.CheckSource(string(src))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		fmt.Println(typechecker.FormatType(typ))
		return 0
	}
	_, value, err := driver.RunSource(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	fmt.Println(value)
	return 0
}
