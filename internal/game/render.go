package game

import (
	"fmt"

	"github.com/vlegaspi/heartchase/internal/core"
)

// Board geometry in screen cells. Each maze cell renders two characters wide
// to keep the aspect ratio close to square on a terminal.
const (
	cellW     = 2
	boardW    = GridW * cellW
	boardH    = GridH
	hudHeight = 2
)

// Render draws the current phase into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", boardW+2, boardH+hudHeight+1), core.ColorGray)
		return
	}

	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst)
	case PhaseControls:
		g.renderControls(dst)
	case PhaseCredits:
		g.renderCredits(dst)
	case PhasePlaying:
		g.renderBoard(dst)
	case PhaseSplash:
		g.renderBoard(dst)
		g.renderSplash(dst)
	case PhaseEnded:
		if g.world.GameWon {
			g.renderWinScreen(dst)
		}
		g.renderEndedPanel(dst)
	}
}

// frame returns the centered play-area rectangle used by every screen.
func (g *Game) frame(dst *core.Screen) core.Rect {
	w := boardW + 2
	h := boardH + hudHeight + 1
	return core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
}

func (g *Game) renderMenu(dst *core.Screen) {
	f := g.frame(dst)
	dst.DrawBox(f, core.ColorBlue)

	// Decorative hearts in the corners.
	dst.SetCell(f.X+2, f.Y+1, '♥', core.ColorPink)
	dst.SetCell(f.X+f.W-3, f.Y+1, '♥', core.ColorPink)
	dst.SetCell(f.X+2, f.Y+f.H-2, '♥', core.ColorPink)
	dst.SetCell(f.X+f.W-3, f.Y+f.H-2, '♥', core.ColorPink)

	dst.DrawTextCentered(f.Y+2, "H E A R T", core.ColorBrightYellow)
	dst.DrawTextCentered(f.Y+3, "C H A S E", core.ColorBrightYellow)
	dst.DrawHLine(f.X+4, f.Y+5, f.W-8, '─', core.ColorBlue)

	options := []string{"Start Game", "Controls", "Credits"}
	for i, opt := range options {
		y := f.Y + 7 + i*2
		color := core.ColorWhite
		if i == g.menuSel {
			color = core.ColorBrightYellow
			dst.DrawText(f.X+6, y, "C ", core.ColorBrightYellow)
		}
		dst.DrawText(f.X+8, y, opt, color)
	}

	dst.DrawTextCentered(f.Y+f.H-3, "↑/↓ move  → select", core.ColorGray)
}

func (g *Game) renderControls(dst *core.Screen) {
	f := g.frame(dst)
	dst.DrawBox(f, core.ColorBlue)

	dst.DrawTextCentered(f.Y+2, "CONTROLS", core.ColorBrightYellow)
	dst.DrawHLine(f.X+4, f.Y+4, f.W-8, '─', core.ColorBlue)

	lines := []string{
		"Movement:",
		"  ↑ / w   up",
		"  ↓ / s   down",
		"  ← / a   left",
		"  → / d   right",
		"",
		"Enter / →  select",
		"q          quit",
	}
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawText(f.X+4, f.Y+6+i, line, color)
	}

	dst.DrawTextCentered(f.Y+f.H-3, "Press RIGHT to return", core.ColorBrightYellow)
}

func (g *Game) renderCredits(dst *core.Screen) {
	f := g.frame(dst)
	dst.DrawBox(f, core.ColorBlue)

	dst.DrawTextCentered(f.Y+2, "CREDITS", core.ColorBrightYellow)
	dst.DrawHLine(f.X+4, f.Y+4, f.W-8, '─', core.ColorBlue)

	dst.SetCell(f.X+3, f.Y+7, '♥', core.ColorPink)
	dst.SetCell(f.X+f.W-4, f.Y+7, '♥', core.ColorPink)
	dst.DrawTextCentered(f.Y+7, "Heart Chase", core.ColorBrightYellow)
	dst.DrawTextCentered(f.Y+9, "Created by:", core.ColorWhite)
	dst.DrawTextCentered(f.Y+11, "V, C, J", core.ColorBrightYellow)

	dst.DrawTextCentered(f.Y+f.H-3, "Press RIGHT to return", core.ColorBrightYellow)
}

func (g *Game) renderBoard(dst *core.Screen) {
	f := g.frame(dst)
	offX := f.X + 1
	offY := f.Y + hudHeight

	w := g.world
	dst.DrawText(f.X, f.Y,
		fmt.Sprintf("HEART CHASE  Level %d", w.Level), core.ColorBrightYellow)
	dst.DrawText(f.X, f.Y+1,
		fmt.Sprintf("Hearts %d/%d", w.HeartsCollected, w.RequiredHearts(g.cfg.Goals)),
		core.ColorPink)

	maze := MazeForLevel(w.Level)
	for gy := 0; gy < GridH; gy++ {
		for gx := 0; gx < GridW; gx++ {
			if maze.WallAtCell(gx, gy) {
				dst.SetCell(offX+gx*cellW, offY+gy, '█', core.ColorBlue)
				dst.SetCell(offX+gx*cellW+1, offY+gy, '█', core.ColorBlue)
			}
		}
	}

	// Entities map from pixel space by their sprite center.
	for i := 0; i < w.HeartSetSize(); i++ {
		h := &w.Hearts[i]
		if h.Eaten {
			continue
		}
		x, y := cellAt(h.X, h.Y)
		dst.SetCell(offX+x*cellW, offY+y, '♥', core.ColorPink)
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Active {
			continue
		}
		x, y := cellAt(e.X, e.Y)
		dst.SetCell(offX+x*cellW, offY+y, 'X', core.ColorOrange)
	}

	px, py := cellAt(w.Player.X, w.Player.Y)
	r := playerRune(w.Player)
	dst.SetCell(offX+px*cellW, offY+py, r, core.ColorBrightYellow)
}

// cellAt maps a sprite's top-left pixel position to the board cell under its
// center.
func cellAt(x, y int) (int, int) {
	cx := core.Clamp((x+SpriteW/2)/TileSize, 0, GridW-1)
	cy := core.Clamp((y+SpriteH/2)/TileSize, 0, GridH-1)
	return cx, cy
}

// playerRune picks the player glyph from facing and the walk animation
// toggle.
func playerRune(p Player) rune {
	if !p.Horizontal {
		if p.FlipV {
			return 'v'
		}
		return '^'
	}
	if p.Anim {
		return 'c'
	}
	return 'C'
}

func (g *Game) renderSplash(dst *core.Screen) {
	f := g.frame(dst)
	banner := fmt.Sprintf(" LEVEL %d! ", g.world.Level)
	y := f.Y + f.H/2
	box := core.NewRect((dst.Width()-len(banner)-2)/2, y-1, len(banner)+2, 3)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightGreen)
	dst.DrawTextCentered(y, banner, core.ColorBrightGreen)
}

func (g *Game) renderWinScreen(dst *core.Screen) {
	f := g.frame(dst)
	dst.DrawBox(f, core.ColorGold)

	dst.SetCell(f.X+2, f.Y+1, '♥', core.ColorPink)
	dst.SetCell(f.X+f.W-3, f.Y+1, '♥', core.ColorPink)
	dst.SetCell(f.X+2, f.Y+f.H-2, '♥', core.ColorPink)
	dst.SetCell(f.X+f.W-3, f.Y+f.H-2, '♥', core.ColorPink)

	dst.DrawTextCentered(f.Y+2, "YOU WIN!", core.ColorGold)
	dst.DrawHLine(f.X+4, f.Y+4, f.W-8, '─', core.ColorPink)

	messages := []string{
		"CONGRATULATIONS!",
		"ALL HEARTS",
		"COLLECTED!",
		"YOU'RE Eating!",
	}
	for i, msg := range messages {
		color := core.ColorBlue
		if i%2 == 1 {
			color = core.ColorPink
		}
		dst.DrawTextCentered(f.Y+6+i, msg, color)
	}

	dst.DrawTextCentered(f.Y+f.H-2,
		fmt.Sprintf("LEVELS: %d", g.world.Level), core.ColorGold)
}

func (g *Game) renderEndedPanel(dst *core.Screen) {
	f := g.frame(dst)
	panel := core.NewRect(f.X+f.W/2-9, f.Y+f.H/2-3, 18, 7)
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel, core.ColorBlue)

	if g.world.GameWon {
		dst.DrawTextCentered(panel.Y+1, "YOU WIN!", core.ColorBrightGreen)
	} else {
		dst.DrawTextCentered(panel.Y+1, "GAME OVER", core.ColorBrightRed)
	}

	options := []string{"Play Again", "Main Menu"}
	for i, opt := range options {
		y := panel.Y + 3 + i
		color := core.ColorWhite
		if i == g.endedSel {
			color = core.ColorBrightYellow
			dst.DrawText(panel.X+2, y, "C", core.ColorBrightYellow)
		}
		dst.DrawText(panel.X+4, y, opt, color)
	}
}
