package report

import (
	"strings"

	"github.com/stonebridge-jewelers/plpmigrate/internal/sanitize"
)

// Preview reduces a Body HTML fragment to a single-line plain-text excerpt
// for report listings: tags stripped, whitespace collapsed, truncated to max
// runes with an ellipsis.
func Preview(bodyHTML string, max int) string {
	text := strings.Join(strings.Fields(sanitize.Text(bodyHTML)), " ")
	runes := []rune(text)
	if max > 0 && len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return text
}
