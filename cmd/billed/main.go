package main

import (
	"os"

	"billed.app/cmd/billed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
