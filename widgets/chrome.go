package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Chrome draws the frame around a widget's content: rounded border with the
// title inlined in the top edge, and dimmed styling for disabled widgets.
type Chrome struct {
	Title    string
	Content  string
	Selected bool
	Disabled bool
}

func (c Chrome) Render(width int) string {
	if width <= 0 {
		return ""
	}
	if width < 4 {
		width = 4
	}

	border := lipgloss.Color("#6c7086")
	text := lipgloss.Color("#cdd6f4")
	if c.Selected {
		border = lipgloss.Color("#89b4fa")
	}
	if c.Disabled {
		border = lipgloss.Color("#45475a")
		text = lipgloss.Color("#585b70")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(text).Bold(!c.Disabled)
	contentStyle := lipgloss.NewStyle().Foreground(text)

	prefix := "  "
	if c.Selected {
		prefix = "▶ "
	}

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
	}

	titleText := " " + strings.TrimSpace(prefix+c.Title) + " "
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(strings.TrimSpace(prefix+c.Title), max(1, innerWidth-2), "") + " "
	}
	dashes := innerWidth - ansi.StringWidth(titleText)
	if dashes < 0 {
		dashes = 0
	}
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	lines := splitLines(c.Content)
	if len(lines) == 0 {
		lines = []string{""}
	}
	rows := make([]string, 0, len(lines)+2)
	rows = append(rows, top)
	for _, line := range lines {
		line = ansi.Truncate(line, contentWidth, "")
		row := v + " " + padRight(contentStyle.Render(line), contentWidth, ansi.StringWidth(line)) + " " + v
		rows = append(rows, row)
	}
	bottom := borderStyle.Render("╰") + borderStyle.Render(strings.Repeat("─", innerWidth)) + borderStyle.Render("╯")
	rows = append(rows, bottom)

	return strings.Join(rows, "\n")
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// padRight pads rendered (already styled) text out to width using the
// unstyled cell width, since ANSI sequences have no printable width.
func padRight(rendered string, width, cells int) string {
	if cells >= width {
		return rendered
	}
	return rendered + strings.Repeat(" ", width-cells)
}
