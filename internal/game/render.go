package game

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/banner"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
	HUDRule    = '─'
)

// Minimum terminal size the world is drawn into.
const (
	MinCols = 32
	MinRows = 12
)

// hudRows are reserved above the playfield.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinCols || dst.Height() < MinRows {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinCols, MinRows))
		return
	}

	p := g.state.Params
	vp := core.NewViewport(p.WorldW, p.WorldH, dst.Width(), dst.Height(), hudRows)

	g.renderHUD(dst)

	for _, blk := range g.state.Blocks {
		if blk.Destroyed {
			continue
		}
		dst.DrawRectColored(shrink(vp.ToRect(blk.Box)), BlockChar, core.RowColor(blk.Row))
	}

	pr := vp.ToRect(g.state.Paddle.Box)
	pr.H = 1
	dst.DrawRectColored(pr, PaddleChar, core.ColorWhite)

	bx, by := vp.ToCell(g.state.Ball.CenterX(), g.state.Ball.Y+g.state.Ball.H/2)
	dst.SetColored(bx, by, BallChar, g.state.Ball.Color)

	g.renderOverlay(dst)
}

// shrink drops the far column and row of a multi-cell rect so that
// neighbouring blocks keep a visible gap after rounding.
func shrink(r core.Rect) core.Rect {
	if r.W > 2 {
		r.W--
	}
	if r.H > 1 {
		r.H--
	}
	return r
}

// renderHUD draws the score, variant and remaining blocks.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, g.variant.Title)

	if total := len(g.state.Blocks); total > 0 {
		right := fmt.Sprintf("Blocks: %d/%d", g.state.Remaining(), total)
		dst.DrawText(dst.Width()-len(right)-1, 0, right)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, HUDRule, core.ColorGray)
	}
}

// renderOverlay draws pause and end-of-round messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawBanner(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	case g.state.GameOver:
		g.drawBanner(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  |  Esc menu", g.score), core.ColorRed)
	case g.state.YouWin:
		g.drawBanner(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  R restart  |  Esc menu", g.score), core.ColorGreen)
	}
}

// drawBanner draws a centered message box with big text when a font is
// loaded and fits, plain text otherwise.
func (g *Game) drawBanner(dst *core.Screen, title, subtitle string, c core.Color) {
	lines := banner.Lines(g.font, title, dst.Width()-4)
	if len(lines)+4 > dst.Height()-hudRows {
		lines = []string{title}
	}

	textW := textWidth(subtitle)
	for _, l := range lines {
		textW = max(textW, textWidth(l))
	}
	boxW := min(textW+4, dst.Width())
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		dst.DrawTextColored(box.X+(boxW-textWidth(l))/2, box.Y+1+i, l, c)
	}
	dst.DrawText(box.X+(boxW-textWidth(subtitle))/2, box.Bottom()-2, subtitle)
}

func textWidth(s string) int { return len([]rune(s)) }
