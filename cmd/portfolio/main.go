package main

import (
	"os"

	"github.com/oliCHECK24/terminal-portfolio/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
