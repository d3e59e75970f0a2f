package tui

import (
	"strings"
)

const dividerWidth = 54

// renderPage lays out one prompt screen: title, indented body between two
// rules, then the key hints. An empty body renders as a dash.
func renderPage(title, body, hints string) string {
	rule := "  " + strings.Repeat("─", dividerWidth)

	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	indented := "  " + strings.ReplaceAll(body, "\n", "\n  ")

	lines := []string{titleStyle.Render(title), rule, "", indented, "", rule}
	if strings.TrimSpace(hints) != "" {
		lines = append(lines, "  "+helpStyle.Render(hints))
	}
	lines = append(lines, helpStyle.Render("  ctrl+c: quit"))

	return appStyle.Render(strings.Join(lines, "\n"))
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
