package main

import (
	"os"

	"github.com/fixgalleria/fixgalleria/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
