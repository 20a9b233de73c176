package main

import (
	"os"

	"edsign/cmd/edsign/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
