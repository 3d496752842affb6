package main

import (
	"os"

	"github.com/lucax88x/ordklocka/cmd/cli/commands"
	"github.com/lucax88x/ordklocka/internal/setup"
)

func main() {
	result := setup.Run(commands.NewCliExecutor)

	if result == setup.NotOk {
		os.Exit(1)
	}
}
