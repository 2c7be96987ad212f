package main

import (
	"os"

	"github.com/abhisek/clozeiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
