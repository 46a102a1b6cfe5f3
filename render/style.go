package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/calwren/lifeline/asset"
	"github.com/calwren/lifeline/parameter"
)

const (
	viewWidth  = float64(parameter.ViewWidth)
	viewHeight = float64(parameter.ViewHeight)

	groundGlyph = '▒'

	// Seconds a HUD message stays readable before it fades out
	messageHold = 6.0
	deltaHold   = 2.0
)

var (
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUDDim   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGain     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLoss     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleAlert    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMessage  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePause    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleMapCell  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleMapHere  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleVictory  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDefeat   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatLine = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// styleFor maps an abstract sprite palette to a terminal style
func styleFor(p asset.Palette) tcell.Style {
	switch p {
	case asset.PaletteShip:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case asset.PaletteCar:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case asset.PaletteStar:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case asset.PaletteBuilding:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case asset.PaletteEffect:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case asset.PaletteFlame:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	}
	return tcell.StyleDefault
}
