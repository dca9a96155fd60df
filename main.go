// shape-selector classifies images of simple geometric figures and picks the
// figure that matches a free-text instruction.
//
// Usage:
//
//	shape-selector classify <image...>
//	shape-selector select --instruction <text> <image...>
//	shape-selector solve [--json] <stage-file...>
//	shape-selector render --shape <name> [--color <name>] -o <file.png>
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
