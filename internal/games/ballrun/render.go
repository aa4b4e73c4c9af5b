package ballrun

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	SurfaceChar     = '▀'
	BodyChar        = '▒'
	CollectibleChar = '◆'
	FadingChar      = '◇'
	SparkChar       = '*'
	DustChar        = '·'
)

var ballFrames = []rune{'◐', '◓', '◑', '◒'}

// projection maps view coordinates onto the screen below the HUD row.
type projection struct {
	sx, sy float64
	top    int
}

func (g *Game) projection(dst *core.Screen) projection {
	rows := max(dst.Height()-1, 1)
	return projection{
		sx:  float64(dst.Width()) / g.cfg.World.ViewWidth,
		sy:  float64(rows) / g.cfg.World.ViewHeight,
		top: 1,
	}
}

func (p projection) col(viewX float64) int {
	return core.Round(viewX * p.sx)
}

func (p projection) row(viewY float64) int {
	return p.top + int(math.Floor(viewY*p.sy))
}

// viewX converts a world x to view space; the ball is drawn at Actor.ScreenX.
func (g *Game) viewX(worldX float64) float64 {
	return worldX - g.drawCameraX() + g.cfg.Actor.ScreenX
}

// drawCameraX is the camera offset used for drawing. While running it is
// extrapolated by the unsimulated fraction of a step.
func (g *Game) drawCameraX() float64 {
	if g.phase != core.PhaseRunning || g.paused {
		return g.cameraX
	}
	return g.cameraX + g.clock.Alpha()*g.speed
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	p := g.projection(dst)

	g.drawSegments(dst, p)
	g.drawCollectibles(dst, p)
	if g.phase != core.PhaseEnded {
		g.drawBall(dst, p)
	}
	g.drawParticles(dst, p)
	g.drawHUD(dst)

	switch {
	case g.phase == core.PhaseIdle:
		g.drawCenteredMessage(dst, "BALL RUNNER", "Space to start")
	case g.phase == core.PhaseEnded:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Space to restart", g.finalScore))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawSegments(dst *core.Screen, p projection) {
	surface := p.row(g.cfg.World.SurfaceY)
	for _, seg := range g.world.Segments() {
		left := p.col(g.viewX(seg.Left()))
		right := p.col(g.viewX(seg.Right()))
		if right < 0 || left >= dst.Width() {
			continue
		}
		color := segmentColor(seg.Kind)
		dst.DrawHLine(left, surface, right-left, SurfaceChar, color)
		for y := surface + 1; y < dst.Height(); y++ {
			dst.DrawHLine(left, y, right-left, BodyChar, core.ColorGray)
		}
	}
}

func segmentColor(k SegmentKind) core.Color {
	switch k {
	case KindSafe:
		return core.ColorGreen
	case KindNarrow:
		return core.ColorMagenta
	case KindWide:
		return core.ColorBlue
	default:
		return core.ColorCyan
	}
}

func (g *Game) drawCollectibles(dst *core.Screen, p projection) {
	y := p.row(g.cfg.World.SurfaceY - g.cfg.World.CollectibleOffset)
	for _, c := range g.world.Collectibles() {
		x := p.col(g.viewX(c.X))
		switch {
		case !c.Collected:
			dst.SetColor(x, y, CollectibleChar, core.ColorBrightYellow)
		case c.Opacity > 0.5:
			dst.SetColor(x, y, FadingChar, core.ColorYellow)
		case c.Opacity > 0:
			dst.SetColor(x, y, DustChar, core.ColorYellow)
		}
	}
}

func (g *Game) drawBall(dst *core.Screen, p projection) {
	frame := int(g.actor.Roll/(math.Pi/2)) % len(ballFrames)
	dst.SetColor(p.col(g.cfg.Actor.ScreenX), p.row(g.actor.Y), ballFrames[frame], core.ColorOrange)
}

func (g *Game) drawParticles(dst *core.Screen, p projection) {
	for _, pt := range g.particles.Particles() {
		x, y := p.col(pt.X), p.row(pt.Y)
		switch {
		case pt.Opacity > 0.6:
			dst.SetColor(x, y, SparkChar, core.ColorOrange)
		case pt.Opacity > 0.2:
			dst.SetColor(x, y, DustChar, core.ColorGray)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.State().Score))

	jumps := "○○"
	switch {
	case g.actor.OnGround:
		jumps = "●●"
	case g.actor.DoubleJumpAvailable:
		jumps = "●○"
	}
	right := fmt.Sprintf(" %s  Spd %s %.1f ", jumps, rampBar(g.ramp.Level(g.speed), rampBarWidth), g.speed)
	dst.DrawText(dst.Width()-len([]rune(right))-2, 0, right)
}

const rampBarWidth = 8

// rampBar draws progress through the speed ramp as filled cells.
func rampBar(level float64, width int) string {
	filled := core.Clamp(core.Round(level*float64(width)), 0, width)
	return strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
