package main

import (
	"os"

	"github.com/msto63/devmon/cmd/devmon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
