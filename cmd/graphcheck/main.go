package main

import (
	"fmt"
	"os"

	"git.canoozie.net/riddling/propgraph/cmd/graphcheck/root"
)

func main() {
	rootCmd := root.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
