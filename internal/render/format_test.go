package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFormatNoOverride(t *testing.T) {
	t.Setenv("ROOMLOG_OUTPUT", "")

	assert.Equal(t, FormatTable, DefaultFormat(FormatTable, []string{FormatTable, FormatJSON}))
}

func TestDefaultFormatValidOverride(t *testing.T) {
	t.Setenv("ROOMLOG_OUTPUT", "json")

	assert.Equal(t, FormatJSON, DefaultFormat(FormatTable, []string{FormatTable, FormatJSON}))
}

func TestDefaultFormatCaseInsensitive(t *testing.T) {
	t.Setenv("ROOMLOG_OUTPUT", "JSON")

	assert.Equal(t, FormatJSON, DefaultFormat(FormatTable, []string{FormatTable, FormatJSON}))
}

func TestDefaultFormatUnsupportedOverride(t *testing.T) {
	t.Setenv("ROOMLOG_OUTPUT", "yaml")

	assert.Equal(t, FormatTable, DefaultFormat(FormatTable, []string{FormatTable, FormatJSON}))
}
