package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/janAlonola/globasa-minecraft/internal/langfile"
	"github.com/janAlonola/globasa-minecraft/internal/progress"
	"github.com/janAlonola/globasa-minecraft/internal/report"
)

var (
	progressJSON        bool
	progressInteractive bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Report translation completion",
	Long: `Reports how complete the localized file is against the reference key
set. When a base-language file is configured, filled entries are also
checked with the token-overlap heuristic to find strings that were copied
rather than translated.

Examples:
  langpack progress
  langpack progress --json > report.json
  langpack progress --interactive`,
	RunE: runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)

	progressCmd.Flags().BoolVar(&progressJSON, "json", false, "print the structured report as JSON")
	progressCmd.Flags().BoolVarP(&progressInteractive, "interactive", "i", false, "browse the report in a TUI")
}

func runProgress(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ref, err := loadReference(cfg.Paths.Reference, logger)
	if err != nil {
		return err
	}
	candidate, err := langfile.Load(cfg.Paths.Candidate)
	if err != nil {
		return err
	}
	logger.Debugf("loaded candidate %s (%d keys)", cfg.Paths.Candidate, candidate.Len())

	var base *langfile.File
	if cfg.Paths.Base != "" {
		base, err = langfile.Load(cfg.Paths.Base)
		if err != nil {
			return err
		}
		logger.Debugf("loaded base %s (%d keys)", cfg.Paths.Base, base.Len())
	}

	opts := progress.Options{
		MissingCap: cfg.Progress.MissingCap,
		ExampleCap: cfg.Progress.ExampleCap,
		Allow:      cfg.Allowlist(),
		Thresholds: cfg.Thresholds(),
	}
	rep := progress.Analyze(ref, candidate, base, opts)

	if progressJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Print(report.RenderProgress(rep, cfg.Paths.Reference, cfg.Paths.Candidate, cfg.Paths.Base))

	if progressInteractive {
		return report.RunBrowser(rep)
	}
	return nil
}
