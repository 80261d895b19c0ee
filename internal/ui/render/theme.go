package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background   tcell.Color
	Foreground   tcell.Color
	HeaderBg     tcell.Color
	HeaderFg     tcell.Color
	SelectionBg  tcell.Color
	SelectionFg  tcell.Color
	ResultBg     tcell.Color
	ResultFg     tcell.Color
	TagFg        tcell.Color
	SequenceFg   tcell.Color
	ItemHeaderFg tcell.Color
	VRFg         tcell.Color
	SearchFg     tcell.Color
	SearchDimFg  tcell.Color
	StatusBg     tcell.Color
	StatusFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:   tcell.ColorDefault,
		Foreground:   tcell.ColorDefault,
		HeaderBg:     tcell.ColorDefault,
		HeaderFg:     tcell.ColorDefault,
		SelectionBg:  tcell.Color33,
		SelectionFg:  tcell.ColorWhite,
		ResultBg:     tcell.ColorYellow,
		ResultFg:     tcell.ColorBlack,
		TagFg:        tcell.Color44,
		SequenceFg:   tcell.Color33,
		ItemHeaderFg: tcell.ColorLightSlateGray,
		VRFg:         tcell.Color108,
		SearchFg:     tcell.ColorDefault,
		SearchDimFg:  tcell.ColorLightSlateGray,
		StatusBg:     tcell.ColorDefault,
		StatusFg:     tcell.ColorDefault,
	}
}
