package strike

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/shadow-strike/internal/core"
	"github.com/vovakirdan/shadow-strike/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	PlayerHeadChar = '▀'
	ShurikenChar   = '✦'
	EnemyChar      = '▓'
	ObstacleChar   = '▒'
	GroundChar     = '═'
	GroundFillChar = '░'
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// viewport maps playfield coordinates to screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	rows := max(dst.Height()-hudRows, 1)
	return viewport{
		sx:  float64(dst.Width()) / g.cfg.Playfield.Width,
		sy:  float64(rows) / g.cfg.Playfield.Height,
		top: hudRows,
	}
}

// cells returns the half-open cell range covered by r. Every visible
// entity covers at least one cell.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * v.sx))
	x1 = max(int(math.Ceil(r.Right()*v.sx)), x0+1)
	y0 = v.top + int(math.Floor(r.Y*v.sy))
	y1 = max(v.top+int(math.Ceil(r.Bottom()*v.sy)), y0+1)
	return x0, y0, x1, y1
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// Render draws the current session into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.viewport(dst)

	g.drawGround(dst, v)

	for _, o := range g.state.Obstacles {
		x0, y0, x1, y1 := v.cells(o.Rect())
		dst.FillRect(x0, y0, x1, y1, ObstacleChar, core.ColorOrange)
	}
	for _, e := range g.state.Enemies {
		x0, y0, x1, y1 := v.cells(g.state.EnemyRect(e))
		dst.FillRect(x0, y0, x1, y1, EnemyChar, core.ColorRed)
	}
	for _, p := range g.state.Projectiles {
		x0, y0, x1, y1 := v.cells(g.state.ProjectileRect(p))
		dst.FillRect(x0, y0, x1, y1, ShurikenChar, core.ColorWhite)
	}
	g.drawPlayer(dst, v)

	g.drawHUD(dst)

	switch g.phase {
	case core.PhaseMenu:
		g.drawPanel(dst, core.ColorBrightCyan,
			strings.ToUpper(g.Title()),
			"",
			"ENTER  start",
			"SPACE  jump",
			"F      throw shuriken",
			"Q      quit",
		)
	case core.PhaseGameOver:
		g.drawPanel(dst, core.ColorBrightRed,
			"GAME OVER",
			causeText(g.Cause()),
			"",
			fmt.Sprintf("Score: %d", g.state.Score),
			fmt.Sprintf("High Score: %d", g.highScore),
			"",
			"R  play again   Q  quit",
		)
	}
}

func causeText(c sim.Cause) string {
	switch c {
	case sim.CauseEnemy:
		return "Hit by an enemy"
	case sim.CauseObstacle:
		return "Crashed into an obstacle"
	default:
		return ""
	}
}

func (g *Game) drawGround(dst *core.Screen, v viewport) {
	y := v.row(g.cfg.GroundY())
	dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGreen)
	dst.FillRect(0, y+1, dst.Width(), dst.Height(), GroundFillChar, core.ColorGray)
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	x0, y0, x1, y1 := v.cells(g.state.PlayerRect())
	dst.FillRect(x0, y0, x1, y1, PlayerChar, core.ColorCyan)
	// Headband
	if y1-y0 > 1 {
		dst.DrawHLine(x0, y0, x1-x0, PlayerHeadChar, core.ColorBrightRed)
	}
}

// drawHUD draws the score on the left, the high score on the right and,
// while playing, the difficulty between them when it fits.
func (g *Game) drawHUD(dst *core.Screen) {
	score := fmt.Sprintf("Score: %d", g.state.Score)
	high := fmt.Sprintf("High: %d", g.highScore)

	if g.phase == core.PhasePlaying {
		p := g.controller.Params()
		diff := fmt.Sprintf("spawn %.1f  obstacles %.1f  speed x%.2f",
			p.EnemySpawnRate, p.ObstacleComplexity, p.GameSpeedMultiplier)

		// Centered text must clear both labels and their margins
		start := (dst.Width() - len(diff)) / 2
		if start >= len(score)+2 && start+len(diff) <= dst.Width()-len(high)-2 {
			dst.DrawText(start, 0, diff, core.ColorGray)
		}
	}

	dst.DrawText(1, 0, score, core.ColorYellow)
	dst.DrawText(dst.Width()-len(high)-1, 0, high, core.ColorYellow)
}

// drawPanel draws a bordered box with centered lines in the middle of dst.
func (g *Game) drawPanel(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2

	dst.FillRect(x, y, x+width, y+height, ' ', core.ColorDefault)
	dst.DrawBox(x, y, width, height, c)
	for i, l := range lines {
		dst.DrawTextCentered(y+1+i, l, c)
	}
}
