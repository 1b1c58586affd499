// File: styles.go
// Title: Report Styles
// Description: Defines the lipgloss colors and styles shared by the console
//              report rendering and the interactive browser.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-22
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-22 v0.1.0: Initial implementation

package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorGood    = lipgloss.Color("#10B981")
	colorWarn    = lipgloss.Color("#F59E0B")
	colorBad     = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	goodStyle = lipgloss.NewStyle().
			Foreground(colorGood)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	badStyle = lipgloss.NewStyle().
			Foreground(colorBad)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	ratioStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarn)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorMuted)

	tabActiveStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(colorPrimary).
			Underline(true)
)
