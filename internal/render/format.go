package render

import (
	"os"
	"strings"
)

// Output formats supported by the list commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatText  = "text"
)

// DefaultFormat returns the preferred output format unless ROOMLOG_OUTPUT
// is set to a supported value.
func DefaultFormat(preferred string, allowed []string) string {
	env := strings.TrimSpace(os.Getenv("ROOMLOG_OUTPUT"))
	if env == "" {
		return preferred
	}

	env = strings.ToLower(env)
	for _, option := range allowed {
		if env == option {
			return env
		}
	}

	return preferred
}
