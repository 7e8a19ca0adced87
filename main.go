package main

import (
	"os"

	"github.com/illjut/platinfo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
