package main

import (
	"os"

	"github.com/pavanmanishd/strutils/cmd/strutil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
