package main

import (
	"fmt"
	"os"
)

const cliToolVersion = "fern-cli 0.0.0-dev"

type executionMode int

const (
	modeRun executionMode = iota
	modeCheck
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runRepl()
	}
	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "repl":
		if len(args) > 1 {
			fmt.Fprintln(os.Stderr, "fern repl does not take arguments")
			return 1
		}
		return runRepl()
	case "run":
		return runFile(args[1:], modeRun)
	case "check":
		return runFile(args[1:], modeCheck)
	default:
		return runFile(args, modeRun)
	}
}
