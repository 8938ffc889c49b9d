package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: fern [command] [arguments]

Commands:
  repl             start an interactive session (default with no arguments)
  run <file>       typecheck and evaluate a source file
  check <file>     typecheck a source file without evaluating it
  version          print the CLI version

Flags:
  -h, --help       show this help
  -V, --version    print the CLI version
`)
}
