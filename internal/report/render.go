// File: render.go
// Title: Console Report Rendering
// Description: Renders merge summaries and progress reports as human
//              readable console text. All numbers come from the structured
//              result types; this package only formats.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-22
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-22 v0.1.0: Initial implementation
// - 2026-08-26 v0.1.1: Flagged-example listing

package report

import (
	"fmt"
	"strings"

	"github.com/janAlonola/globasa-minecraft/internal/merge"
	"github.com/janAlonola/globasa-minecraft/internal/progress"
	"github.com/janAlonola/globasa-minecraft/internal/utils/stringx"
)

const previewWidth = 60

// RenderMerge formats the summary of a merge run. obsoleteCap bounds the
// obsolete-key preview.
func RenderMerge(res merge.Result, mode merge.Mode, outPath string, obsoleteCap int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Language Pack Merge"))
	b.WriteByte('\n')
	b.WriteString(labelStyle.Render("Output: ") + outPath + "\n")
	b.WriteString(labelStyle.Render("Fallback: ") + mode.String() + "\n")
	b.WriteByte('\n')

	fmt.Fprintf(&b, "Kept existing translations:   %s\n", goodStyle.Render(fmt.Sprintf("%d", res.Kept)))
	fmt.Fprintf(&b, "Filled with fallback:         %s\n", warnStyle.Render(fmt.Sprintf("%d", res.Filled)))
	fmt.Fprintf(&b, "Obsolete keys (not written):  %d\n", len(res.Obsolete))

	if len(res.Obsolete) > 0 && obsoleteCap > 0 {
		shown := res.Obsolete
		if len(shown) > obsoleteCap {
			shown = shown[:obsoleteCap]
		}
		fmt.Fprintf(&b, "\nFirst %d obsolete keys:\n", len(shown))
		for _, key := range shown {
			b.WriteString("  - " + key + "\n")
		}
		if rest := len(res.Obsolete) - len(shown); rest > 0 {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  ... and %d more", rest)) + "\n")
		}
	}

	return b.String()
}

// RenderProgress formats the analyzer report
func RenderProgress(r *progress.Report, refPath, candPath, basePath string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Globasa Minecraft Translation Progress"))
	b.WriteByte('\n')
	b.WriteString(labelStyle.Render("Reference: ") + refPath + "\n")
	b.WriteString(labelStyle.Render("Candidate: ") + candPath + "\n")
	if r.HasBase {
		b.WriteString(labelStyle.Render("Base:      ") + basePath + "\n")
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "Total keys (reference): %d\n", r.TotalKeys)
	fmt.Fprintf(&b, "Filled translations:    %s  (%.2f%%)\n",
		goodStyle.Render(fmt.Sprintf("%d", r.Filled)), r.FilledPercent)
	fmt.Fprintf(&b, "Missing/empty:          %s\n",
		badStyle.Render(fmt.Sprintf("%d", r.MissingOrEmpty)))

	if r.HasBase {
		b.WriteByte('\n')
		b.WriteString("Base-language comparison (filled entries):\n")
		fmt.Fprintf(&b, "  Identical to base (likely untranslated): %s\n",
			badStyle.Render(fmt.Sprintf("%d", r.IdenticalToBase)))
		fmt.Fprintf(&b, "  Identical but allow-listed:              %d\n", r.IdenticalAllowed)
		fmt.Fprintf(&b, "  Mostly base-language:                    %s\n",
			warnStyle.Render(fmt.Sprintf("%d", r.MostlyBase)))
		fmt.Fprintf(&b, "  Partially translated:                    %d\n", r.PartiallyTranslated)
		fmt.Fprintf(&b, "  Fully translated:                        %s\n",
			goodStyle.Render(fmt.Sprintf("%d", r.FullyTranslated)))
		b.WriteByte('\n')
		fmt.Fprintf(&b, "Non-identical and filled: %d  (%.2f%% of total keys)\n",
			r.NonIdentical, r.NonIdenticalPercent)
		fmt.Fprintf(&b, "Clean progress:           %s of total keys\n",
			goodStyle.Render(fmt.Sprintf("%.2f%%", r.CleanPercent)))
	}

	if len(r.Examples) > 0 {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "Entries still overlapping the base language (top %d by ratio):\n", len(r.Examples))
		for _, ex := range r.Examples {
			b.WriteString(renderExample(ex))
		}
		if r.ExamplesOmitted > 0 {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  ... and %d more", r.ExamplesOmitted)) + "\n")
		}
	}

	if len(r.MissingKeys) > 0 {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "Missing/empty keys (first %d):\n", len(r.MissingKeys))
		for _, key := range r.MissingKeys {
			b.WriteString("  - " + key + "\n")
		}
		if r.MissingOmitted > 0 {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  ... and %d more", r.MissingOmitted)) + "\n")
		}
	}

	return b.String()
}

func renderExample(ex progress.Example) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s %s  (%s)\n",
		ratioStyle.Render(fmt.Sprintf("[%.2f]", ex.Ratio)), ex.Key, ex.Class)
	fmt.Fprintf(&b, "         base:      %s\n", stringx.Truncate(ex.Base, previewWidth, "…"))
	fmt.Fprintf(&b, "         candidate: %s\n", stringx.Truncate(ex.Candidate, previewWidth, "…"))
	return b.String()
}
