package views

import (
	"strings"

	"github.com/rcastro/estimator/internal/tui/ui"
)

// truncate shortens s to at most width runes, appending an ellipsis
// when it had to cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// pad right-pads s with spaces to exactly width columns.
func pad(s string, width int) string {
	s = truncate(s, width)
	if len([]rune(s)) < width {
		s += strings.Repeat(" ", width-len([]rune(s)))
	}
	return s
}

// pluralize returns the singular or plural form based on n.
func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// helpLine renders a "key desc  key desc" hint row.
func helpLine(styles ui.Styles, pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styles.HelpKey.Render(pairs[i]))
		b.WriteString(" ")
		b.WriteString(styles.HelpDesc.Render(pairs[i+1]))
	}
	return b.String()
}
