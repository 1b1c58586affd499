package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janAlonola/globasa-minecraft/internal/langfile"
	"github.com/janAlonola/globasa-minecraft/internal/merge"
	"github.com/janAlonola/globasa-minecraft/internal/report"
)

var (
	mergeOutput   string
	mergeFallback string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Rebuild the locale file against the reference key set",
	Long: `Rebuilds the localized file in reference key order. Existing filled
translations are kept, gaps are filled with the configured fallback, and
keys no longer present in the reference are dropped and reported as
obsolete.

The output is written atomically, so an interrupted run never leaves a
half-written locale file behind.

Examples:
  langpack merge
  langpack merge --fallback empty
  langpack merge --output /tmp/preview.json`,
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "output path (default: config paths.output, then in-place)")
	mergeCmd.Flags().StringVar(&mergeFallback, "fallback", "", "fallback for missing translations: reference or empty (default: config merge.fallback)")
}

func runMerge(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mode := cfg.FallbackMode()
	if mergeFallback != "" {
		mode, err = merge.ParseMode(mergeFallback)
		if err != nil {
			return err
		}
	}

	outPath := cfg.OutputPath()
	if mergeOutput != "" {
		outPath = mergeOutput
	}

	ref, err := loadReference(cfg.Paths.Reference, logger)
	if err != nil {
		return err
	}
	localized, err := langfile.Load(cfg.Paths.Candidate)
	if err != nil {
		return err
	}
	logger.Debugf("loaded candidate %s (%d keys)", cfg.Paths.Candidate, localized.Len())

	result := merge.Merge(ref, localized, mode)

	if err := result.Merged.Save(outPath); err != nil {
		return err
	}
	logger.Debugf("wrote %s (%d keys)", outPath, result.Merged.Len())

	fmt.Print(report.RenderMerge(result, mode, outPath, cfg.Progress.ObsoleteCap))
	return nil
}
