// Command hast-to-dom reads a hast tree as JSON or YAML from stdin and
// prints the DOM it becomes.
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
