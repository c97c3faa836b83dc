package main

import (
	"fmt"
	"os"

	"github.com/teranos/cgen/cmd/cgen/commands"
	"github.com/teranos/cgen/logger"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Cleanup()
		os.Exit(1)
	}
	logger.Cleanup()
}
