package main

import (
	"os"

	"github.com/jusmind/jusmind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
