package main

import (
	"os"

	"github.com/ksander/retain/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
