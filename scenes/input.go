package scenes

import (
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// moveInput reads WASD and the arrow keys as a ground-plane direction.
// Screen up is world -Z.
func moveInput() (x, z float64) {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	return gamemath.Axis(left, right), gamemath.Axis(up, down)
}
