// File: browser.go
// Title: Interactive Report Browser
// Description: Implements a small bubbletea viewer over an already computed
//              progress report: one tab for entries still overlapping the
//              base language, one for missing keys. The browser is purely a
//              view; no analysis happens while it runs.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/janAlonola/globasa-minecraft/internal/progress"
)

// browser tabs
const (
	tabFlagged = iota
	tabMissing
	tabCount
)

type browserModel struct {
	report   *progress.Report
	tab      int
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func newBrowserModel(r *progress.Report) browserModel {
	return browserModel{report: r}
}

// RunBrowser opens the interactive viewer for a progress report and blocks
// until the user quits
func RunBrowser(r *progress.Report) error {
	p := tea.NewProgram(newBrowserModel(r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			m.viewport.SetContent(m.tabContent())
			m.viewport.GotoTop()
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.viewport.SetContent(m.tabContent())
			m.viewport.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.tabContent())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m browserModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m browserModel) headerView() string {
	title := titleStyle.Render("Translation Progress") +
		mutedStyle.Render(fmt.Sprintf("  %d/%d filled (%.2f%%)",
			m.report.Filled, m.report.TotalKeys, m.report.FilledPercent))

	tabs := make([]string, tabCount)
	names := []string{
		fmt.Sprintf("Flagged (%d)", len(m.report.Examples)),
		fmt.Sprintf("Missing (%d)", m.report.MissingOrEmpty),
	}
	for i, name := range names {
		if i == m.tab {
			tabs[i] = tabActiveStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}

	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m browserModel) footerView() string {
	return mutedStyle.Render("tab: switch view • ↑/↓: scroll • q: quit")
}

func (m browserModel) tabContent() string {
	switch m.tab {
	case tabMissing:
		return m.missingContent()
	default:
		return m.flaggedContent()
	}
}

func (m browserModel) flaggedContent() string {
	if len(m.report.Examples) == 0 {
		return mutedStyle.Render("No entries overlap the base language. Nice.")
	}

	var b strings.Builder
	for _, ex := range m.report.Examples {
		b.WriteString(renderExample(ex))
	}
	if m.report.ExamplesOmitted > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("... and %d more (raise example_cap to see them)", m.report.ExamplesOmitted)))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m browserModel) missingContent() string {
	if m.report.MissingOrEmpty == 0 {
		return mutedStyle.Render("Every reference key is filled.")
	}

	var b strings.Builder
	for _, key := range m.report.MissingKeys {
		b.WriteString("  - " + key + "\n")
	}
	if m.report.MissingOmitted > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("... and %d more (raise missing_cap to see them)", m.report.MissingOmitted)))
		b.WriteByte('\n')
	}
	return b.String()
}
