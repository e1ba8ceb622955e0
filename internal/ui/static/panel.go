package static

import (
	"strings"

	"github.com/wsbootstrap/ws/internal/ui/styles"
)

// Panel renders body inside a rounded border with a bold title line on
// top and an optional muted subtitle below.
func Panel(title, body, subtitle string) string {
	var parts []string
	if title != "" {
		parts = append(parts, styles.TitleStyle.Render(title))
	}
	if body != "" {
		parts = append(parts, body)
	}
	if subtitle != "" {
		parts = append(parts, styles.MutedStyle.Render(subtitle))
	}
	return styles.PanelBorder.Render(strings.Join(parts, "\n"))
}
