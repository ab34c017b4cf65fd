package loop

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tomz197/hk97/internal/draw"
	"github.com/tomz197/hk97/internal/loop/config"
	"github.com/tomz197/hk97/internal/object"
	"github.com/tomz197/hk97/internal/physics"
)

var (
	patternColors = map[object.Pattern]draw.Color{
		object.PatternStraight: draw.ColorRed,
		object.PatternWave:     draw.ColorMagenta,
		object.PatternZigzag:   draw.ColorBrightRed,
		object.PatternShooter:  draw.ColorYellow,
	}
	// Indexed by death animation frame; the last entry repeats for longer animations.
	explosionColors = []draw.Color{
		draw.ColorBrightWhite,
		draw.ColorBrightYellow,
		draw.ColorYellow,
		draw.ColorBrightRed,
		draw.ColorRed,
		draw.ColorGray,
	}
)

// drawFrame renders the session into the chunk writer and flushes it.
func (c *client) drawFrame() error {
	state := c.session.State()
	if state != c.prevState || c.inactive != c.wasInactive {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.prevState = state
		c.wasInactive = c.inactive
	}

	c.canvas.Clear()
	if state != GameStateMenu {
		drawWorld(c.canvas, c.session.World)
	}
	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(state)
	return c.chunkWriter.Flush()
}

// drawWorld paints every entity. Objects are clipped to the arena so
// anything entering or leaving never bleeds into the HUD.
func drawWorld(canvas *draw.Canvas, w *World) {
	canvas.FillRect(config.ArenaWidth, 0, 4, config.ArenaHeight, draw.ColorGray)

	for _, car := range w.Cars {
		fillClipped(canvas, car.Bounds(), draw.ColorBlue)
	}
	for _, p := range w.PowerUps {
		color := draw.ColorGreen
		if p.Type() == object.PowerUpLarge {
			color = draw.ColorBrightGreen
		}
		fillClipped(canvas, p.Bounds(), color)
	}
	for _, e := range w.Enemies {
		if e.InDeathAnimation() {
			drawExplosion(canvas, e.Position(), e.Bounds().W, e.DeathFrame())
			continue
		}
		fillClipped(canvas, e.Bounds(), patternColors[e.Pattern()])
	}
	for _, b := range w.EnemyBullets {
		fillClipped(canvas, b.Bounds(), draw.ColorBrightMagenta)
	}
	for _, b := range w.Bullets {
		fillClipped(canvas, b.Bounds(), draw.ColorBrightCyan)
	}

	p := w.Player
	if p.InDeathAnimation() {
		drawExplosion(canvas, p.DeathPosition(), p.Bounds().H, p.DeathFrame())
	}
	if shouldRenderBlink(p.InvincibleTime(), config.PlayerBlinkFrequency) {
		fillClipped(canvas, p.Bounds(), draw.ColorBrightWhite)
		if p.Focused() {
			fillClipped(canvas, physics.RectAround(p.Position(), 6, 6), draw.ColorBrightRed)
		}
	}
}

// drawExplosion draws a square that grows with each frame.
func drawExplosion(canvas *draw.Canvas, pos mgl64.Vec2, size float64, frame int) {
	color := explosionColors[min(frame, len(explosionColors)-1)]
	grow := size * (1 + 0.25*float64(frame))
	fillClipped(canvas, physics.RectAround(pos, grow, grow), color)
}

// shouldRenderBlink reports whether a blinking object is visible this instant.
func shouldRenderBlink(remaining, frequency float64) bool {
	if remaining <= 0 {
		return true
	}
	return int(remaining*frequency)%2 == 0
}

func fillClipped(canvas *draw.Canvas, r physics.Rect, color draw.Color) {
	x0 := max(r.X, 0)
	y0 := max(r.Y, 0)
	x1 := min(r.X+r.W, config.ArenaWidth)
	y1 := min(r.Y+r.H, config.ArenaHeight)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	canvas.FillRect(x0, y0, x1-x0, y1-y0, color)
}

// drawUI draws the text overlay for the current state.
func (c *client) drawUI(state GameState) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()

	if c.inactive {
		c.drawInactivityScreen(termWidth/2, termHeight/2)
		return
	}

	switch state {
	case GameStateMenu:
		c.drawMenuScreen(termWidth/2, termHeight/2)
	case GameStatePlaying:
		c.drawHUD()
		c.drawBanners()
	case GameStateGameOver:
		c.drawHUD()
		c.drawGameOverScreen()
	}
}

func (c *client) writeCentered(centerX, row int, s string) {
	c.writeCenteredColor(centerX, row, s, draw.ColorNone)
}

// writeCenteredColor centers s by its visible length before coloring it.
func (c *client) writeCenteredColor(centerX, row int, s string, color draw.Color) {
	c.chunkWriter.WriteAt(max(centerX-len(s)/2, 1), row, draw.Colorize(s, color))
}

// arenaCenter returns the terminal cell at the middle of the arena.
func (c *client) arenaCenter() (col, row int) {
	return c.canvas.LogicalToTerminal(config.ArenaWidth/2, config.ArenaHeight/2)
}

func (c *client) drawMenuScreen(centerX, centerY int) {
	titleArt := []string{
		` _  _  ___  _  _  ___   _  _____  _  _  ___   ___ ____ `,
		`| || |/ _ \| \| |/ __| | |/ / _ \| \| |/ __| / _ \__  |`,
		`| __ | (_) | .  | (_ | | ' < (_) | .  | (_ | \_, / / / `,
		`|_||_|\___/|_|\_|\___| |_|\_\___/|_|\_|\___|  /_/ /_/  `,
	}
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, len(line))
	}

	top := centerY - 8
	if titleWidth < c.canvas.TerminalWidth() {
		for i, line := range titleArt {
			c.chunkWriter.WriteAt(max(centerX-titleWidth/2, 1), top+i, line)
		}
	} else {
		c.writeCentered(centerX, top+1, "HONG KONG 97")
	}

	controlsY := top + len(titleArt) + 2
	controlLines := []string{
		"Arrows / WASD . . . . Move",
		"Shift or F  . . . .  Focus",
		"Z / SPACE . . . . . . Fire",
		"X . . . . . . . . . . Bomb",
		"Q . . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(centerX, controlsY+i, line)
	}

	high := fmt.Sprintf("High score: %d", c.session.HighScore())
	c.writeCentered(centerX, controlsY+len(controlLines)+1, high)

	if time.Now().UnixMilli()/600%2 == 0 {
		c.writeCentered(centerX, controlsY+len(controlLines)+3, ">>  Press ENTER to Start  <<")
	} else {
		c.writeCentered(centerX, controlsY+len(controlLines)+3, "                            ")
	}
}

// drawHUD draws the side panel. Values are padded so shorter numbers
// overwrite longer ones from the previous frame.
func (c *client) drawHUD() {
	p := c.session.World.Player
	col, row := c.canvas.LogicalToTerminal(config.ArenaWidth+16, 0)
	row++

	power := fmt.Sprintf("%-10d", p.Power())
	if p.Power() >= config.MaxPower {
		power = draw.Colorize("FULL POWER", draw.ColorBrightYellow)
	}
	lines := []string{
		"HI-SCORE",
		fmt.Sprintf("%-10d", max(c.session.HighScore(), p.Score())),
		"",
		"SCORE",
		fmt.Sprintf("%-10d", p.Score()),
		"",
		fmt.Sprintf("LIVES %-4d", p.Lives()),
		fmt.Sprintf("BOMBS %-4d", p.Bombs()),
		"",
		"POWER",
		power,
	}
	for i, line := range lines {
		if line != "" {
			c.chunkWriter.WriteAt(col, row+i, line)
		}
	}
}

func (c *client) drawBanners() {
	centerX, centerY := c.arenaCenter()
	if c.session.ShowFullPowerBanner() {
		c.writeCenteredColor(centerX, centerY-2, "FULL POWER!", draw.ColorBrightYellow)
	}
	if c.session.ShowLifeBanner() {
		c.writeCenteredColor(centerX, centerY, "EXTEND!", draw.ColorBrightGreen)
	}
}

func (c *client) drawGameOverScreen() {
	centerX, centerY := c.arenaCenter()
	c.writeCentered(centerX, centerY-2, "G A M E   O V E R")
	c.writeCentered(centerX, centerY, fmt.Sprintf("Score: %d", c.session.LastScore()))
	if c.session.NewRecord() {
		c.writeCenteredColor(centerX, centerY+2, "NEW HIGH SCORE", draw.ColorBrightYellow)
	}
}

func (c *client) drawInactivityScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")
	left := config.InactivityDisconnectUser - int(time.Since(c.lastInput).Seconds())
	c.writeCentered(centerX, centerY, fmt.Sprintf("Disconnecting in %d seconds", max(left, 0)))
	c.writeCentered(centerX, centerY+2, "Press any key to continue")
}
