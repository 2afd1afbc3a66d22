package main

import (
	"os"

	"cddproof/cmd/cddproof/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
