package render

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const fallbackWidth = 100

func detectTerminalWidth() int {
	if raw, ok := os.LookupEnv("COLUMNS"); ok {
		if width, err := strconv.Atoi(raw); err == nil && width > 0 {
			return width
		}
	}

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}

	return fallbackWidth
}

// Truncate shortens s to at most width display cells, appending an
// ellipsis when anything was cut. Widths are measured in terminal cells so
// wide runes (CJK theme names) do not break column alignment.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= width {
		return s
	}

	if width <= 1 {
		return "…"
	}

	trimmed := runewidth.Truncate(s, width-1, "")

	return strings.TrimRight(trimmed, " ") + "…"
}

// titleWidth reserves room for the fixed columns and gives the rest to the
// title column.
func titleWidth() int {
	width := detectTerminalWidth()

	// id + theme + store + date + outcome + stars + separators
	reserved := 72

	remaining := width - reserved
	if remaining < 16 {
		return 16
	}

	return remaining
}
