package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"treefs/internal/state"
)

type uiStyles struct {
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	statusStyle   lipgloss.Style
	warnStyle     lipgloss.Style
	cursorStyle   lipgloss.Style
	selectedStyle lipgloss.Style
}

func defaultStyles() uiStyles {
	return uiStyles{
		headerStyle:   lipgloss.NewStyle().Bold(true),
		mutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		cursorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}

func (model Model) View() string {
	styles := defaultStyles()
	if model.showHelp {
		return renderHelpView(styles)
	}

	var builder strings.Builder
	builder.WriteString(styles.headerStyle.Render("treefs"))
	builder.WriteString("\n")
	builder.WriteString(renderTree(model, styles))
	builder.WriteString("\n")
	builder.WriteString(renderFooter(model, styles))
	return builder.String()
}

func renderTree(model Model, styles uiStyles) string {
	visible := model.state.VisibleNodes()
	if len(visible) == 0 {
		return styles.mutedStyle.Render("  (no volumes)")
	}

	rows := model.height - 4
	if rows < 1 {
		rows = len(visible)
	}
	top := model.viewTop
	if top > len(visible)-1 {
		top = 0
	}
	end := top + rows
	if end > len(visible) {
		end = len(visible)
	}

	lines := make([]string, 0, end-top)
	for index := top; index < end; index++ {
		lines = append(lines, renderRow(model, styles, visible[index], index))
	}
	return strings.Join(lines, "\n")
}

func renderRow(model Model, styles uiStyles, row state.VisibleNode, index int) string {
	marker := "▸"
	if row.Node.Expanded {
		marker = "▾"
	}
	label := model.explorer.DisplayLabel(row.Node)
	if model.renaming && row.Node == model.renameTarget {
		label = model.input.View()
	}

	line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", row.Depth), marker, label)
	switch {
	case index == model.state.Cursor:
		return styles.cursorStyle.Render("> " + line)
	case row.Node.Selected:
		return styles.selectedStyle.Render("  " + line)
	default:
		return "  " + line
	}
}

func renderFooter(model Model, styles uiStyles) string {
	help := styles.mutedStyle.Render("↑/↓ move · enter expand · space select · r rename · n new folder · ? help · q quit")
	return styles.statusStyle.Render(model.status) + "\n" + help
}

func renderHelpView(styles uiStyles) string {
	lines := []string{
		styles.headerStyle.Render("treefs keys"),
		"",
		"  ↑/k, ↓/j      move cursor",
		"  enter, →/l    expand folder",
		"  ←/h           collapse folder",
		"  space         select (expands when collapsed)",
		"  r             rename folder in place",
		"  n             create a new folder here",
		"  esc           cancel rename",
		"  q, ctrl+c     quit",
		"",
		styles.mutedStyle.Render("press ? to return"),
	}
	return strings.Join(lines, "\n")
}
