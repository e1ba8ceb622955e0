// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the titled panels
// and key/value summaries printed by ws.
package static

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/wsbootstrap/ws/internal/ui/styles"
)

// RenderKeyValues renders label/value pairs as two aligned columns with
// bold labels. No borders are rendered.
func RenderKeyValues(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styles.Bold.PaddingRight(2)
			}
			return lipgloss.NewStyle()
		})

	return t.String()
}
