package main

import (
	"os"

	"github.com/bnema/richpresence-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
