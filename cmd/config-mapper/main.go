package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/configmapper/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "config-mapper: %v\n", err)
		os.Exit(1)
	}
}
