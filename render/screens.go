package render

import (
	"fmt"

	"github.com/calwren/lifeline/parameter"
	"github.com/calwren/lifeline/sector"
	"github.com/calwren/lifeline/terrain"
)

// drawMap overlays the sector grid: one glyph per cell for the gravity
// variant, the population digit where someone still lives, and a blinking
// marker on the current cell.
func (r *Renderer) drawMap(s *sector.Sector) {
	const cellW, cellH = 4, 2
	gridW := parameter.SectorSize * cellW
	gridH := parameter.SectorSize * cellH
	left := (r.width - gridW) / 2
	top := (r.height - gridH) / 2

	for y := 0; y < parameter.SectorSize; y++ {
		for x := 0; x < parameter.SectorSize; x++ {
			cell := s.CellAt(sector.GridPos{X: x, Y: y})
			ch := '.'
			switch cell.Gravity.Kind {
			case terrain.GravityDown:
				ch = 'O'
			case terrain.GravityCenter:
				ch = 'o'
			}
			if cell.Population > 0 {
				ch = rune('0' + cell.Population)
			}
			style := styleMapCell
			if (sector.GridPos{X: x, Y: y}) == s.CellPos() {
				style = styleMapCell
				if int(s.Time()*4)%2 == 0 {
					style = styleMapHere
				}
			}
			r.put(left+x*cellW, top+y*cellH, ch, style)
		}
	}

	r.drawTextCentered(top-2, styleHUD, fmt.Sprintf("%s  -  Day %d  -  Research %d",
		s.Name, s.Stats().Day, s.Stats().Research))
	pop := "Population: Restless Dead"
	if total := s.TotalPopulation(); total > 0 {
		pop = fmt.Sprintf("Population: %d", total)
	}
	r.drawTextCentered(top+gridH, styleHUD, pop)
}

func (r *Renderer) drawVictory(s *sector.Sector) {
	st := s.Stats()
	planets := 0
	for y := 0; y < parameter.SectorSize; y++ {
		for x := 0; x < parameter.SectorSize; x++ {
			if s.CellAt(sector.GridPos{X: x, Y: y}).Population > 0 {
				planets++
			}
		}
	}
	r.drawTextCentered(r.height/4, styleVictory, "Victory!")
	r.drawStats(s, r.height/4+1,
		fmt.Sprintf("Population: %d/%d", s.TotalPopulation(), st.StartPop),
		fmt.Sprintf("Planets: %d/%d", planets, st.StartPlanets))
}

func (r *Renderer) drawDefeat(s *sector.Sector) {
	r.drawTextCentered(r.height/4, styleDefeat, "Defeat!")
	r.drawStats(s, r.height/4+1,
		fmt.Sprintf("Cure: %d%%", 100*s.Stats().Research/parameter.VictoryResearch))
}

// drawStats prints the shared end-screen tallies, with the outcome's own
// lines slotted in after the score.
func (r *Renderer) drawStats(s *sector.Sector, top int, extra ...string) {
	st := s.Stats()
	lines := []string{fmt.Sprintf("Score: %d", s.Score())}
	lines = append(lines, extra...)
	lines = append(lines,
		fmt.Sprintf("Days: %d", st.Day),
		fmt.Sprintf("Crashes: %d", st.Crashes),
		fmt.Sprintf("Longest train: %d", st.MaxTrain),
		fmt.Sprintf("Supplies delivered: %d", st.CarsDelivered),
		fmt.Sprintf("Supplies lost: %d", st.CarsLost),
	)
	for i, line := range lines {
		r.drawTextCentered(top+i, styleStatLine, line)
	}
	r.drawTextCentered(top+len(lines)+2, styleHUDDim, "Press Q to quit")
}
