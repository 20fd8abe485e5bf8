package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabsearch.dev/cli/internal/application/services"
)

// TruncationMarker is printed below a result list that hit the cap
const TruncationMarker = "… more results, refine your query"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	panelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))
)

// itemIcon mirrors the host's icons: a node for tabs, a dot for panels
func itemIcon(kind services.ItemKind) string {
	if kind == services.KindPanel {
		return "•"
	}
	return "▸"
}

// renderView renders the hint, the item rows and the truncation marker.
// cursor highlights one row; pass -1 for none.
func renderView(view services.View, cursor int) string {
	var lines []string

	if view.Hint != "" {
		lines = append(lines, hintStyle.Render(view.Hint))
	}

	for i, item := range view.Items {
		row := itemIcon(item.Kind) + " " + item.Text
		switch {
		case i == cursor:
			row = selectedStyle.Render("> " + row)
		case item.Kind == services.KindPanel:
			row = "  " + panelStyle.Render(row)
		default:
			row = "  " + categoryStyle.Render(row)
		}
		lines = append(lines, row)
	}

	if view.Truncated {
		lines = append(lines, hintStyle.Render(TruncationMarker))
	}

	return strings.Join(lines, "\n")
}

// renderNotice renders a selection notice in its level's style
func renderNotice(notice services.Notice) string {
	switch notice.Level {
	case services.LevelInfo:
		return infoStyle.Render(notice.Message)
	case services.LevelWarning:
		return warningStyle.Render(notice.Message)
	default:
		return successStyle.Render(notice.Message)
	}
}
