package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Styles holds the color scheme for the interactive browser.
type Styles struct {
	BgColor     tcell.Color
	FgColor     tcell.Color
	BorderColor tcell.Color

	StatusOK      tcell.Color
	StatusWarning tcell.Color
	StatusError   tcell.Color

	TableHeaderBg   tcell.Color
	TableHeaderFg   tcell.Color
	TableSelectedBg tcell.Color
	TableSelectedFg tcell.Color

	TitleFg tcell.Color

	OutcomeGood tcell.Color
	OutcomeBad  tcell.Color
}

// DefaultStyles returns the default dark color scheme.
func DefaultStyles() *Styles {
	return &Styles{
		BgColor:     tcell.ColorBlack,
		FgColor:     tcell.ColorWhite,
		BorderColor: tcell.ColorDarkCyan,

		StatusOK:      tcell.ColorGreen,
		StatusWarning: tcell.ColorYellow,
		StatusError:   tcell.ColorRed,

		TableHeaderBg:   tcell.ColorDarkCyan,
		TableHeaderFg:   tcell.ColorBlack,
		TableSelectedBg: tcell.ColorDarkCyan,
		TableSelectedFg: tcell.ColorWhite,

		TitleFg: tcell.ColorAqua,

		OutcomeGood: tcell.ColorGreen,
		OutcomeBad:  tcell.ColorRed,
	}
}
