// main is the entry point for the gitwrap CLI.
package main

import (
	"os"

	"github.com/gitwrap/gitwrap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
