package main

import (
	"os"

	"github.com/vuedapt/create-node/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
