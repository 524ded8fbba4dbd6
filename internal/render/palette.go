package render

import (
	"github.com/fatih/color"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type Style func(a ...interface{}) string

// Palette holds the styles used for marks and messages.
type Palette struct {
	X     Style
	O     Style
	Empty Style
	Error Style
	Tie   Style
	Win   Style
}

// NewPalette builds the default palette. With enabled=false every style returns plain text;
// otherwise color output follows terminal detection.
func NewPalette(enabled bool) Palette {
	return Palette{
		X:     newStyle(enabled, color.FgGreen),
		O:     newStyle(enabled, color.FgBlue),
		Empty: newStyle(enabled, color.FgHiBlack),
		Error: newStyle(enabled, color.FgRed),
		Tie:   newStyle(enabled, color.FgYellow),
		Win:   newStyle(enabled, color.FgGreen),
	}
}

func newStyle(enabled bool, attr color.Attribute) Style {
	c := color.New(attr)
	if !enabled {
		c.DisableColor()
	}

	return c.SprintFunc()
}

// Mark renders a cell value. Empty cells become a muted blank.
func (that Palette) Mark(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.X(string(mark))
	case entity.PlayerO:
		return that.O(string(mark))
	default:
		return that.Empty(" ")
	}
}
