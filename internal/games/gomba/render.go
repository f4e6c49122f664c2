package gomba

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gomba/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	PlayerEye     = '▪'
	PatrollerChar = '▓'
	AxeGuyChar    = '▒'
	SquashedChar  = '▄'
	AxeHeadChar   = '◆'
	AxeRestChar   = '┬'
	GroundChar    = '▀'
	DirtChar      = '░'
	WallChar      = '║'
)

// World units are drawn four columns wide and two rows tall so a unit
// square looks square in a terminal cell grid.
const (
	colsPerUnit = 4
	rowsPerUnit = 2
)

// camera maps world coordinates to screen cells.
type camera struct {
	left      float64 // world x at column 0
	groundY   float64
	groundRow int
}

func (g *Game) camera(dst *core.Screen) camera {
	phys := g.cfg.Physics
	viewW := float64(dst.Width()) / colsPerUnit
	left := g.cameraX - viewW/2
	if arena := phys.MaxX - phys.MinX; arena <= viewW {
		left = phys.MinX - (viewW-arena)/2
	} else {
		left = core.ClampF(left, phys.MinX, phys.MaxX-viewW)
	}
	return camera{left: left, groundY: phys.GroundY, groundRow: dst.Height() - 3}
}

func (c camera) col(x float64) int {
	return int(math.Round((x - c.left) * colsPerUnit))
}

func (c camera) row(y float64) int {
	return c.groundRow - int(math.Round((y-c.groundY)*rowsPerUnit))
}

// fill draws a world-space box. Boxes always cover at least one cell.
func (c camera) fill(dst *core.Screen, b core.Box, r rune, color core.Color) {
	x0, x1 := c.col(b.Min().X), c.col(b.Max().X)
	y0, y1 := c.row(b.Max().Y), c.row(b.Min().Y)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, r, color)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	cam := g.camera(dst)

	g.drawLevel(dst, cam)
	for _, e := range g.round.Dying() {
		g.drawEnemy(dst, cam, e)
	}
	for _, e := range g.round.Enemies() {
		g.drawEnemy(dst, cam, e)
	}
	if g.round.Phase() != PhaseIdle {
		g.drawPlayer(dst, cam)
	}
	for _, p := range g.hud.Popups() {
		text := fmt.Sprint(p.Amount)
		dst.DrawTextColored(cam.col(p.Pos.X)-len(text)/2, cam.row(p.Pos.Y), text, core.ColorBrightYellow)
	}

	g.drawHUD(dst)
}

func (g *Game) drawLevel(dst *core.Screen, cam camera) {
	w := dst.Width()
	dst.DrawHLine(0, cam.groundRow, w, GroundChar, core.ColorGreen)
	for y := cam.groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, w, DirtChar, core.ColorBrown)
	}
	for _, x := range []float64{g.cfg.Physics.MinX, g.cfg.Physics.MaxX} {
		col := cam.col(x)
		for y := 1; y < cam.groundRow; y++ {
			dst.SetColored(col, y, WallChar, core.ColorGray)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, cam camera) {
	box := g.player.Body().Box()
	cam.fill(dst, box, PlayerChar, core.ColorRed)

	eyeX := cam.col(box.Max().X) - 1
	if !g.player.FacingRight() {
		eyeX = cam.col(box.Min().X)
	}
	dst.SetColored(eyeX, cam.row(box.Max().Y), PlayerEye, core.ColorBrightWhite)
}

func (g *Game) drawEnemy(dst *core.Screen, cam camera, e Enemy) {
	body := e.Body()
	size := core.V(body.Size.X, body.Size.Y*e.ScaleY())
	box := core.NewBox(body.Pos, size)

	if e.Killed() {
		cam.fill(dst, box, SquashedChar, core.ColorGray)
		return
	}

	switch e.Kind() {
	case KindPatroller:
		cam.fill(dst, box, PatrollerChar, core.ColorBrown)
	case KindAxePatroller:
		cam.fill(dst, box, AxeGuyChar, core.ColorMagenta)
		if a, ok := e.(*AxePatroller); ok {
			g.drawAxe(dst, cam, a)
		}
	}
}

func (g *Game) drawAxe(dst *core.Screen, cam camera, a *AxePatroller) {
	axe := a.Axe()
	if !axe.Active() {
		top := a.Body().Box().Max().Y
		dst.SetColored(cam.col(a.Position().X), cam.row(top)-1, AxeRestChar, core.ColorGray)
		return
	}
	cam.fill(dst, axe.Body().Box(), AxeHeadChar, core.ColorCyan)
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(2, 0, " "+g.Title()+" ", core.ColorBrightYellow)
	score := " SCORE " + g.hud.ScoreText() + " "
	dst.DrawTextColored(dst.Width()-len(score)-2, 0, score, core.ColorBrightWhite)

	switch {
	case g.round.Paused():
		g.drawPanel(dst, "PAUSED", "P to resume  |  B for scores")
	case g.hud.GameOver():
		g.drawPanel(dst, "GAME OVER", fmt.Sprintf("Score: %s  |  Enter to play again, B for scores", g.hud.ScoreText()))
	case g.hud.PanelVisible():
		g.drawPanel(dst, "GOMBA", "Enter to start  |  ←/→ move, Space jump")
	}
}

// drawPanel renders a framed two-line message in the middle of the screen.
func (g *Game) drawPanel(dst *core.Screen, title, subtitle string) {
	w := core.Max(len([]rune(title)), len([]rune(subtitle))) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	r := core.NewRect(x, y, w, h)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+3, subtitle)
}
