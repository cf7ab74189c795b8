package main

import (
	"os"

	"github.com/hostcond-org/hostcond/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
