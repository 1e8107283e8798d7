package main

import (
	"os"

	"github.com/DisDoh/chainvault-go/cmd/chainvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
