package main

import (
	"fmt"
	"os"

	"cardpress/internal/carderr"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", carderr.Prefix(err), err)
		os.Exit(1)
	}
}
