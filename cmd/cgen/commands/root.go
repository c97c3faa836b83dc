// Package commands implements the cgen CLI.
package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teranos/cgen/logger"
)

// RootCmd is the cgen root command.
var RootCmd = &cobra.Command{
	Use:   "cgen",
	Short: "Generate C declarations from a TOML manifest",
	Long: `cgen renders a TOML manifest of aggregate type descriptions into a C
header: struct/union/enum declarations with indexed members, typedef
aliases, and indexed constructors.

Configuration keys (flags override CGEN_* environment variables):
  manifest   manifest file path        (CGEN_MANIFEST, default cgen.toml)
  output     output file path          (CGEN_OUTPUT, default stdout)
  log.json   structured JSON logging   (CGEN_LOG_JSON, default false)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(viper.GetBool("log.json"))
	},
}

func init() {
	initConfig()

	RootCmd.PersistentFlags().Bool("json-logs", false, "Emit JSON structured logs")
	viper.BindPFlag("log.json", RootCmd.PersistentFlags().Lookup("json-logs"))

	RootCmd.AddCommand(GenerateCmd)
	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(WatchCmd)
	RootCmd.AddCommand(VersionCmd)
}

// initConfig wires viper defaults and CGEN_* environment overrides.
func initConfig() {
	viper.SetEnvPrefix("CGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("manifest", "cgen.toml")
	viper.SetDefault("output", "")
	viper.SetDefault("log.json", false)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// resolvePath returns the flag value when set, falling back to the viper key.
func resolvePath(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key)
}
