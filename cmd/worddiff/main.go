// Command worddiff filters unified-diff output on standard input, adding
// word-level highlighting to each hunk's added/removed lines, and writes the
// result to standard output.
package main

import (
	"os"

	"github.com/codalotl/worddiff/internal/cli"
)

func main() {
	code, _ := cli.Run(os.Args, nil)
	os.Exit(code)
}
