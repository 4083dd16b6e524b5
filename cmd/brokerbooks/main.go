package main

import (
	"os"

	"github.com/brokerbooks-dev/brokerbooks/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
