package playing

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/slingshot/internal/application/state"
	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/domain/geom"
	"github.com/younwookim/slingshot/internal/ecs"
)

// Colors for rendering
var (
	colorSky        = color.RGBA{135, 200, 235, 255}
	colorGround     = color.RGBA{90, 60, 30, 255}
	colorSling      = color.RGBA{110, 70, 30, 255}
	colorBand       = color.RGBA{60, 30, 10, 255}
	colorTrajectory = color.RGBA{255, 255, 255, 200}
	colorHUD        = color.RGBA{0, 0, 0, 120}
	colorWinTint    = color.RGBA{0, 80, 0, 150}
	colorLoseTint   = color.RGBA{100, 0, 0, 180}
	colorOutline    = color.RGBA{255, 0, 255, 255}
)

const helpText = "Drag from the slingshot to aim | Release: launch | Space/RClick: ability | ESC: cancel | R: restart"

// whitePixel backs every rotated box
var whitePixel *ebiten.Image

// toScreen converts a y-up world point to screen pixels
func (p *Playing) toScreen(pt geom.Point2D) (float32, float32) {
	return float32(pt.X), float32(float64(p.screenH) - pt.Y)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	p.drawGround(screen)
	p.drawSlingshot(screen)
	p.drawEntities(screen)
	p.drawStaged(screen)
	p.drawTrajectory(screen)
	p.drawHUD(screen)

	switch p.match.State() {
	case state.StateWon:
		p.drawOverlay(screen, colorWinTint, "YOU WIN")
	case state.StateLost:
		p.drawOverlay(screen, colorLoseTint, "YOU LOSE")
	}
}

func (p *Playing) drawGround(screen *ebiten.Image) {
	groundY := p.match.Config().Physics.GroundY
	_, top := p.toScreen(geom.Pt(0, groundY))
	vector.DrawFilledRect(screen, 0, top, float32(p.screenW), float32(p.screenH)-top, colorGround, false)
}

func (p *Playing) drawSlingshot(screen *ebiten.Image) {
	launcher := p.match.Launcher()
	anchor := launcher.Anchor()
	groundY := p.match.Config().Physics.GroundY

	ax, ay := p.toScreen(anchor)
	_, gy := p.toScreen(geom.Pt(0, groundY))
	vector.DrawFilledRect(screen, ax-5, ay, 10, gy-ay, colorSling, false)
	vector.StrokeLine(screen, ax, ay, ax-14, ay-20, 5, colorSling, true)
	vector.StrokeLine(screen, ax, ay, ax+14, ay-20, 5, colorSling, true)

	if armed := launcher.Armed(); armed != nil {
		bx, by := p.toScreen(armed.Position)
		vector.StrokeLine(screen, ax-14, ay-20, bx, by, 3, colorBand, true)
		vector.StrokeLine(screen, ax+14, ay-20, bx, by, 3, colorBand, true)
	}
}

func (p *Playing) drawEntities(screen *ebiten.Image) {
	w := p.match.World()
	for _, id := range w.Renderables() {
		sprite := w.Sprite[id]
		sx, sy := p.toScreen(w.Position(id))

		switch sprite.Shape {
		case ecs.SpriteCircle:
			vector.DrawFilledCircle(screen, sx, sy, float32(sprite.Radius), sprite.Color, true)
		case ecs.SpriteBox:
			drawBox(screen, sx, sy, sprite.Width, sprite.Height, w.Angle(id), sprite.Color)
		case ecs.SpriteBurst:
			progress := w.Effect[id].Progress()
			c := fade(sprite.Color, 1-progress)
			vector.StrokeCircle(screen, sx, sy, float32(sprite.Radius*progress), 4, c, true)
		}

		if p.opts.Debug && sprite.Shape != ecs.SpriteBurst {
			r := sprite.Radius
			if sprite.Shape == ecs.SpriteBox {
				r = math.Hypot(sprite.Width, sprite.Height) / 2
			}
			vector.StrokeCircle(screen, sx, sy, float32(r), 1, colorOutline, false)
		}
	}
}

// drawBox draws a filled rectangle centered at (sx, sy) rotated by the
// world angle. Screen y points down, so the rotation is mirrored.
func drawBox(screen *ebiten.Image, sx, sy float32, width, height, angle float64, c color.RGBA) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(width, height)
	op.GeoM.Rotate(-angle)
	op.GeoM.Translate(float64(sx), float64(sy))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(whitePixel, op)
}

func (p *Playing) drawStaged(screen *ebiten.Image) {
	launcher := p.match.Launcher()
	if preview := launcher.Preview(); preview != nil {
		x, y := p.toScreen(preview.Position)
		vector.DrawFilledCircle(screen, x, y, float32(preview.Spec.Radius), entity.KindColors[preview.Spec.Kind], true)
	}
	if armed := launcher.Armed(); armed != nil {
		x, y := p.toScreen(armed.Position)
		vector.DrawFilledCircle(screen, x, y, float32(armed.Spec.Radius), entity.KindColors[armed.Spec.Kind], true)
	}
}

func (p *Playing) drawTrajectory(screen *ebiten.Image) {
	for _, pt := range p.match.Trajectory() {
		x, y := p.toScreen(pt)
		vector.DrawFilledCircle(screen, x, y, 2.5, colorTrajectory, false)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	snap := p.match.Snapshot()
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), 42, colorHUD, false)

	status := fmt.Sprintf("Score: %d   Birds left: %d   Pigs left: %d", snap.Score, snap.AttemptsLeft, snap.PigsLeft)
	if p.replayer != nil {
		status += fmt.Sprintf("   REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 4)
	ebitenutil.DebugPrintAt(screen, helpText, 10, 22)

	// upcoming birds, next one first
	queue := p.match.Queue()
	x := float32(p.screenW) - 20
	for i, kind := range queue.Upcoming() {
		r := float32(8)
		if i == queue.Cursor() {
			r = 12
		}
		vector.DrawFilledCircle(screen, x, 21, r, entity.KindColors[kind], true)
		x -= 30
	}

	if p.opts.Debug {
		debug := fmt.Sprintf("frame %d  birds %d  state %s  launch %s  seed %d",
			p.match.Frame(), snap.ActiveBirds, snap.State, p.match.Launcher().State(), p.seed)
		ebitenutil.DebugPrintAt(screen, debug, 10, 50)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, tint color.RGBA, title string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), tint, false)

	lines := []string{title, "", fmt.Sprintf("Score: %d", p.match.Score()), "", "Press R to restart"}
	text := strings.Join(lines, "\n")
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// fade scales a premultiplied color by alpha in [0, 1]
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		uint8(float64(c.R) * alpha),
		uint8(float64(c.G) * alpha),
		uint8(float64(c.B) * alpha),
		uint8(float64(c.A) * alpha),
	}
}
