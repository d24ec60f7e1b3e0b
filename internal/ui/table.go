package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders rows as a fixed-width aligned grid with a header row.
// Plain mode uses an ASCII border so piped output stays readable; styled
// mode gets box-drawing borders in a muted color.
func (u *UI) Table(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	if u.shouldStyle() {
		t = t.Border(lipgloss.NormalBorder()).
			BorderStyle(StyleMuted)
	} else {
		t = t.Border(lipgloss.ASCIIBorder())
	}

	return t.String()
}

// SumLine renders the client-computed total printed beneath a multi-row
// table, with an optional trailing note.
func (u *UI) SumLine(sum int64, note string) string {
	line := fmt.Sprintf("Sum: %d", sum)
	if note != "" {
		line += " " + note
	}

	if !u.shouldStyle() {
		return line
	}

	styled := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Sum: %d", sum))
	if note != "" {
		styled += " " + StyleMuted.Render(note)
	}
	return styled
}
