package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/sector"
	"github.com/calwren/lifeline/terrain"
	"github.com/calwren/lifeline/vmath"
)

func (r *Renderer) drawGame(s *sector.Sector) {
	r.drawGround(s)
	r.drawDoodads(s)
	r.drawSolids(s)
	r.drawHUD(s)
}

// drawGround rasterizes the cell's terrain polyline
func (r *Renderer) drawGround(s *sector.Sector) {
	ground := s.Cell().Ground
	for i := 0; i+1 < len(ground); i++ {
		r.drawLine(ground[i], ground[i+1])
	}
}

// drawLine steps along a world-space segment one terminal cell at a time
func (r *Renderer) drawLine(a, b vmath.Vec2) {
	x0, y0 := r.project(a)
	x1, y1 := r.project(b)

	steps := abs(x1 - x0)
	if abs(y1-y0) > steps {
		steps = abs(y1 - y0)
	}
	if steps == 0 {
		r.put(x0, y0, groundGlyph, styleGround)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(float64(x1-x0)*t))
		y := y0 + int(math.Round(float64(y1-y0)*t))
		r.put(x, y, groundGlyph, styleGround)
	}
}

func (r *Renderer) drawDoodads(s *sector.Sector) {
	cs := &s.World().Components
	entities := s.World().Query().
		With(cs.Positions).
		With(cs.Doodads).
		Execute()
	for _, e := range entities {
		pos, _ := cs.Positions.Get(e)
		doodad, _ := cs.Doodads.Get(e)
		sprite, err := r.assets.Get(doodad.Sprite)
		if err != nil {
			continue
		}
		x, y := r.project(pos.Pos)
		r.put(x, y, sprite.Frame(s.Time()), styleFor(sprite.Palette))
	}
}

func (r *Renderer) drawSolids(s *sector.Sector) {
	cs := &s.World().Components
	entities := s.World().Query().
		With(cs.Positions).
		With(cs.Sprites).
		Execute()
	for _, e := range entities {
		pos, _ := cs.Positions.Get(e)
		spriteRef, _ := cs.Sprites.Get(e)
		sprite, err := r.assets.Get(spriteRef.Name)
		if err != nil {
			continue
		}
		x, y := r.project(pos.Pos)
		r.put(x, y, sprite.Frame(s.Time()), styleFor(sprite.Palette))

		// Thrusting ships trail a flame glyph behind the nose
		if eng, ok := cs.Engines.Get(e); ok && eng.On {
			flame, err := r.assets.Get(eng.Sprite)
			if err != nil {
				continue
			}
			back := vmath.Sub(pos.Pos, vmath.Scale(vmath.FromAngle(pos.Dir), parameter.ShipSize))
			fx, fy := r.project(back)
			r.put(fx, fy, flame.Frame(s.Time()), styleFor(flame.Palette))
		}
	}
}

func (r *Renderer) drawHUD(s *sector.Sector) {
	scoreStyle := styleHUD
	if s.LastScoreChange() < 0 {
		scoreStyle = styleLoss
	} else if s.LastScoreChange() > 0 {
		scoreStyle = styleGain
	}
	r.drawText(1, 0, scoreStyle, fmt.Sprintf("Score %d", s.Score()))

	cell := s.Cell()
	r.drawRight(0, styleHUDDim, cell.Name)
	gravity := "None"
	if cell.Gravity.Kind != terrain.GravityNone {
		gravity = fmt.Sprintf("%d", int(cell.Gravity.Strength))
	}
	r.drawRight(1, styleHUDDim, fmt.Sprintf("Gravity: %s", gravity))

	r.drawText(1, 1, styleHUDDim, fmt.Sprintf("Day %d", s.Stats().Day))

	speed := r.playerSpeed(s)
	speedStyle, alert := styleHUD, ""
	if speed > parameter.MaxVel {
		speedStyle, alert = styleAlert, "!"
	}
	r.drawTextCentered(r.height-2, speedStyle, fmt.Sprintf("Speed: %.1f m/s%s", speed, alert))

	center, score, pop := s.Messages()
	now := s.Time()
	if center.Text != "" && now-center.Time < messageHold {
		for i, line := range strings.Split(center.Text, "\n") {
			r.drawTextCentered(r.height/3+i, styleMessage, line)
		}
	}
	if score.Text != "" && now-score.Time < deltaHold {
		style := styleGain
		if strings.HasPrefix(score.Text, "-") {
			style = styleLoss
		}
		r.drawText(1, 2, style, score.Text)
	}
	if cell.Population > 0 {
		r.drawRight(2, styleHUDDim, fmt.Sprintf("Pop: %d", cell.Population))
		if pop.Text != "" && now-pop.Time < deltaHold {
			r.drawRight(3, styleGain, pop.Text)
		}
	}
}

// drawRight prints right-aligned against the screen edge
func (r *Renderer) drawRight(y int, style tcell.Style, text string) {
	r.drawText(r.width-len([]rune(text))-1, y, style, text)
}

func (r *Renderer) playerSpeed(s *sector.Sector) float64 {
	vel, ok := s.World().Components.Velocities.Get(s.Player())
	if !ok {
		return 0
	}
	return vmath.Mag(vel.Pos)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
