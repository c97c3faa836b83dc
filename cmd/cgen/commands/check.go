package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/logger"
	"github.com/teranos/cgen/manifest"
)

var (
	checkManifest string
	checkOutput   string
)

// CheckCmd verifies that a generated header is up to date.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if a generated header is up to date",
	Long: `Check if a generated header matches the current manifest.

The manifest is rendered in memory and compared with the existing header,
ignoring the generated banner line.

Exit codes:
  0 - Header is up to date
  1 - Header is out of date or the check failed

Examples:
  cgen check -f point.toml -o point.h`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&checkManifest, "manifest", "f", "", "Manifest file (default: cgen.toml)")
	CheckCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Header file to compare against")
}

func runCheck(cmd *cobra.Command, args []string) error {
	return checkUpToDate(resolvePath(checkManifest, "manifest"), resolvePath(checkOutput, "output"))
}

func checkUpToDate(manifestPath, outputPath string) error {
	if outputPath == "" {
		return errors.New("check requires an output file to compare against")
	}

	result, err := manifest.Check(manifestPath, outputPath)
	if err != nil {
		return err
	}
	if !result.UpToDate {
		return errors.Newf("%s is out of date: %s (run: cgen generate -f %s -o %s)",
			outputPath, result.Reason, manifestPath, outputPath)
	}

	logger.Infow("Header is up to date",
		"manifest", manifestPath,
		"output", outputPath)
	return nil
}
