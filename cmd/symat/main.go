package main

import (
	"os"

	"github.com/symatlab/symat/cmd/symat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
