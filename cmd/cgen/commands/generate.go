package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/logger"
	"github.com/teranos/cgen/manifest"
)

var (
	generateManifest string
	generateOutput   string
	generateCheck    bool
)

// GenerateCmd renders a manifest into a C header.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a manifest into a C header",
	Long: `Render a TOML manifest of aggregate declarations into a C header.

The header is written to --output, or to stdout when no output is given.

Examples:
  cgen generate                          # cgen.toml to stdout
  cgen generate -f point.toml -o point.h
  cgen generate --check -o point.h       # verify point.h is up to date`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateManifest, "manifest", "f", "", "Manifest file (default: cgen.toml)")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: stdout)")
	GenerateCmd.Flags().BoolVar(&generateCheck, "check", false, "Verify the output is up to date instead of writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	manifestPath := resolvePath(generateManifest, "manifest")
	outputPath := resolvePath(generateOutput, "output")

	if generateCheck {
		return checkUpToDate(manifestPath, outputPath)
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	rendered, err := manifest.Render(m, manifestPath)
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Print(rendered)
		return nil
	}

	if err := writeHeader(outputPath, rendered); err != nil {
		return err
	}
	logger.Infow("Header generated",
		"manifest", manifestPath,
		"output", outputPath,
		"aggregates", len(m.Aggregates))
	return nil
}

func writeHeader(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
