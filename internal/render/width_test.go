package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncateShortString(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
}

func TestTruncateExactWidth(t *testing.T) {
	assert.Equal(t, "abcde", Truncate("abcde", 5))
}

func TestTruncateLongString(t *testing.T) {
	got := Truncate("abcdefghij", 6)

	assert.Equal(t, "abcde…", got)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 6)
}

func TestTruncateWideRunes(t *testing.T) {
	// CJK runes are two cells wide; truncation must count cells, not runes.
	got := Truncate("방탈출일지", 6)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 6)
}

func TestTruncateDegenerateWidths(t *testing.T) {
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "…", Truncate("abc", 1))
}

func TestDetectTerminalWidthFromColumns(t *testing.T) {
	t.Setenv("COLUMNS", "120")

	assert.Equal(t, 120, detectTerminalWidth())
}

func TestDetectTerminalWidthIgnoresBadColumns(t *testing.T) {
	t.Setenv("COLUMNS", "not-a-number")

	assert.Positive(t, detectTerminalWidth())
}
