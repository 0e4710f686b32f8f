package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/ambush/ai"
	cfg "github.com/automoto/ambush/config"
	"github.com/automoto/ambush/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// arenaView is everything one frame draws. Both scenes fill it from the net
// component types so they share the drawing code.
type arenaView struct {
	Width, Depth float64
	Enemies      []netcomponents.NetEnemyData
	Players      []netcomponents.NetPlayerData
	Projectiles  []netcomponents.NetProjectileData
}

// camera maps ground-plane meters to screen pixels, centering the level.
type camera struct {
	scale   float64
	offsetX float64
	offsetY float64
}

func newCamera(screen *ebiten.Image, width, depth float64) camera {
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	scale := cfg.Viewer.PixelsPerMeter
	if width > 0 && depth > 0 {
		scale = math.Min(scale, math.Min(sw/width, sh/depth))
	}
	return camera{
		scale:   scale,
		offsetX: (sw - width*scale) / 2,
		offsetY: (sh - depth*scale) / 2,
	}
}

func (c camera) point(x, z float64) (float32, float32) {
	return float32(c.offsetX + x*c.scale), float32(c.offsetY + z*c.scale)
}

func (c camera) length(m float64) float32 {
	return float32(m * c.scale)
}

func drawArena(screen *ebiten.Image, v arenaView) {
	screen.Fill(cfg.Viewer.BackgroundColor)
	cam := newCamera(screen, v.Width, v.Depth)

	// Floor outline
	x0, y0 := cam.point(0, 0)
	x1, y1 := cam.point(v.Width, v.Depth)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, cfg.Viewer.PostColor, false)

	for _, e := range v.Enemies {
		drawEnemy(screen, cam, e)
	}
	for _, p := range v.Players {
		drawPlayer(screen, cam, p)
	}
	for _, p := range v.Projectiles {
		x, y := cam.point(p.X, p.Z)
		r := max(cam.length(p.Radius), 1.5)
		vector.DrawFilledCircle(screen, x, y, r, cfg.Viewer.ProjectileColor, true)
	}
}

func drawEnemy(screen *ebiten.Image, cam camera, e netcomponents.NetEnemyData) {
	ix, iy := cam.point(e.InitialX, e.InitialZ)
	ax, ay := cam.point(e.AttackX, e.AttackZ)

	vector.StrokeCircle(screen, ix, iy, cam.length(e.Range), 1, cfg.Viewer.RangeColor, true)
	vector.StrokeLine(screen, ix, iy, ax, ay, 1, cfg.Viewer.PostColor, true)
	vector.DrawFilledCircle(screen, ix, iy, 2, cfg.Viewer.PostColor, true)
	vector.DrawFilledCircle(screen, ax, ay, 2, cfg.Viewer.PostColor, true)

	x, y := cam.point(e.X, e.Z)
	size := cam.length(0.8)
	vector.FillRect(screen, x-size/2, y-size/2, size, size, stateColor(e.State), false)

	label := fmt.Sprintf("%s %s", e.TypeName, ai.State(e.State))
	ebitenutil.DebugPrintAt(screen, label, int(x)+int(size), int(y)-8)
}

func drawPlayer(screen *ebiten.Image, cam camera, p netcomponents.NetPlayerData) {
	x, y := cam.point(p.X, p.Z)
	r := cam.length(0.4)
	vector.DrawFilledCircle(screen, x, y, r, cfg.Viewer.PlayerColor, true)

	// Facing
	fx, fy := cam.point(p.X+math.Sin(p.Yaw)*0.8, p.Z+math.Cos(p.Yaw)*0.8)
	vector.StrokeLine(screen, x, y, fx, fy, 2, cfg.Viewer.PlayerColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d", p.Name, p.Health), int(x)+int(r)+2, int(y)-8)
}

func stateColor(state int) color.RGBA {
	if state < 0 || state >= len(cfg.Viewer.StateColors) {
		return cfg.White
	}
	return cfg.Viewer.StateColors[state]
}
