// Package shared holds view helpers used by more than one prompt.
package shared

import (
	"strings"

	"github.com/Guerrilla-Interactive/featgen/app"
)

// Footer joins key hints with a consistent separator in the help style.
func Footer(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	return app.HelpStyle.Render(strings.Join(parts, "  •  "))
}
