package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/calwren/lifeline/asset"
	"github.com/calwren/lifeline/sector"
	"github.com/calwren/lifeline/vmath"
)

// Renderer is the read-only draw pass over a sector. It never mutates the
// world; all simulation state changes happen in the logic tick.
type Renderer struct {
	screen tcell.Screen
	assets *asset.Registry
	width  int
	height int
}

// New creates a renderer on an initialized screen
func New(screen tcell.Screen, assets *asset.Registry) *Renderer {
	r := &Renderer{screen: screen, assets: assets}
	r.HandleResize()
	return r
}

// HandleResize re-reads the terminal size
func (r *Renderer) HandleResize() {
	r.width, r.height = r.screen.Size()
}

// Draw renders one frame for the current campaign state
func (r *Renderer) Draw(s *sector.Sector, showMap bool) {
	r.screen.Clear()

	switch s.State() {
	case sector.StateVictory:
		r.drawVictory(s)
	case sector.StateDefeat:
		r.drawDefeat(s)
	default:
		r.drawGame(s)
		if showMap {
			r.drawMap(s)
		}
		if s.Paused() {
			r.drawTextCentered(r.height/2, stylePause, "PAUSED")
		}
	}

	r.screen.Show()
}

// project maps world space onto terminal cells
func (r *Renderer) project(p vmath.Vec2) (int, int) {
	x := int(p.X * float64(r.width) / viewWidth)
	y := int(p.Y * float64(r.height) / viewHeight)
	return x, y
}

func (r *Renderer) put(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.put(x, y, ch, style)
		x++
	}
}

func (r *Renderer) drawTextCentered(y int, style tcell.Style, text string) {
	r.drawText((r.width-len([]rune(text)))/2, y, style, text)
}
