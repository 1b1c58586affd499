package cmd

import (
	"github.com/spf13/cobra"

	"github.com/janAlonola/globasa-minecraft/internal/apperr"
	"github.com/janAlonola/globasa-minecraft/internal/config"
	"github.com/janAlonola/globasa-minecraft/internal/langfile"
	"github.com/janAlonola/globasa-minecraft/internal/logx"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "langpack",
	Short: "Globasa Minecraft language pack toolkit",
	Long: `langpack reconciles the Globasa Minecraft locale file against the
authoritative reference key set and reports translation completion.

Commands:
  merge     - rebuild the locale file in reference key order, filling gaps
  progress  - report completion, including still-in-base-language detection`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")
}

func newLogger() *logx.Logger {
	level := logx.LevelWarn
	if verbose {
		level = logx.LevelDebug
	}
	return logx.New(level)
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// loadReference loads the reference file and enforces the non-empty rule:
// a reference with zero keys makes every percentage meaningless and aborts
// the run.
func loadReference(path string, logger *logx.Logger) (*langfile.File, error) {
	ref, err := langfile.Load(path)
	if err != nil {
		return nil, err
	}
	if ref.Len() == 0 {
		return nil, apperr.Newf(apperr.CodeEmptyReference, "reference file has no keys: %s", path)
	}
	logger.Debugf("loaded reference %s (%d keys)", path, ref.Len())
	return ref, nil
}
