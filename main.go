package main

import (
	"os"

	"github.com/anubhav/gitaguide/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
