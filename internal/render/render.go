// Package render draws load tables for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/claude/tenrm/internal/load"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	weightStyle   = cellStyle.Align(lipgloss.Right)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	advisoryStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F7B801")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F7B801")).
		Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Footer is printed under every table.
const Footer = "Husk oppvarming før tunge løft!"

// Title returns the week heading, e.g. "Uke 4 - 5 Reps Fasen".
func Title(t *load.Table) string {
	return fmt.Sprintf("Uke %d - %s Reps Fasen", t.Week, t.Reps)
}

// Grid renders only the rows of a table.
func Grid(t *load.Table) string {
	headers := []string{"Øvelse", "Sett", "Reps"}
	headers = append(headers, t.Sessions[:]...)

	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := []string{r.Exercise, r.Sets, r.Reps}
		for _, w := range r.Weights {
			row = append(row, w.String())
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 3:
				return weightStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// Advisories renders the table's advisories as banners, one per line.
func Advisories(t *load.Table) string {
	banners := make([]string, 0, len(t.Advisories))
	for _, a := range t.Advisories {
		banners = append(banners, advisoryStyle.Render(a))
	}
	return lipgloss.JoinVertical(lipgloss.Left, banners...)
}

// Table renders the full view: program, week title, advisories, rows and
// footer.
func Table(t *load.Table) string {
	parts := []string{
		titleStyle.Render(t.Program),
		infoStyle.Render(t.Info),
		"",
		titleStyle.Render(Title(t)),
	}
	if len(t.Advisories) > 0 {
		parts = append(parts, Advisories(t))
	}
	parts = append(parts, Grid(t), footerStyle.Render(Footer))
	return strings.Join(parts, "\n") + "\n"
}
