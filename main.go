package main

import (
	"os"

	"github.com/smehra/sayright/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
