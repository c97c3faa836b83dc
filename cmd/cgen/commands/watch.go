package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/logger"
	"github.com/teranos/cgen/manifest"
)

var (
	watchManifest string
	watchOutput   string
)

// WatchCmd regenerates the header whenever the manifest changes.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the header on every manifest change",
	Long: `Watch the manifest file and regenerate the header on every change,
until interrupted.

Examples:
  cgen watch -f point.toml -o point.h`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().StringVarP(&watchManifest, "manifest", "f", "", "Manifest file (default: cgen.toml)")
	WatchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output file")
}

func runWatch(cmd *cobra.Command, args []string) error {
	manifestPath := resolvePath(watchManifest, "manifest")
	outputPath := resolvePath(watchOutput, "output")
	if outputPath == "" {
		return errors.New("watch requires an output file")
	}

	regenerate := func(m *manifest.Manifest) error {
		rendered, err := manifest.Render(m, manifestPath)
		if err != nil {
			return err
		}
		if err := writeHeader(outputPath, rendered); err != nil {
			return err
		}
		logger.Infow("Header regenerated",
			"output", outputPath,
			"aggregates", len(m.Aggregates))
		return nil
	}

	// Generate once up front so the watch starts from a consistent state.
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	if err := regenerate(m); err != nil {
		return err
	}

	watcher, err := manifest.NewWatcher(manifestPath)
	if err != nil {
		return err
	}
	defer watcher.Close()

	watcher.OnReload(regenerate)
	watcher.Start()
	logger.Infow("Watching manifest",
		"manifest", manifestPath,
		"output", outputPath)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Watch interrupted, shutting down")
	return nil
}
