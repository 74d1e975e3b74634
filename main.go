package main

import (
	"os"

	"github.com/unimind/unimind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
