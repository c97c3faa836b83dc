package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

// VersionCmd prints the cgen version.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cgen %s\n", Version)
	},
}
