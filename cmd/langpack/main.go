package main

import (
	"os"

	"github.com/janAlonola/globasa-minecraft/cmd/langpack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
