// Package leveldata provides TMX level parsing shared between the server and
// the viewer. It has no dependencies on ebitengine, donburi, or resolv; pure
// data only.
//
// Levels are drawn top-down in Tiled. One tile is one meter: Tiled X maps to
// world X and Tiled Y maps to world Z. Heights come from object properties.
package leveldata

import "github.com/automoto/ambush/shared/gamemath"

// Level holds everything the simulation needs from a TMX file.
type Level struct {
	Name         string
	Width        float64 // meters along X
	Depth        float64 // meters along Z
	Enemies      []EnemySpawn
	PlayerSpawns []SpawnPoint
}

// EnemySpawn places one enemy. Tuning fields left nil use the type's defaults.
type EnemySpawn struct {
	Name     string
	Type     string
	Position gamemath.Vec3
	Yaw      float64 // radians

	ActivationRange *float64
	AttackDuration  *float64
	HideDuration    *float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	Position gamemath.Vec3
	Index    int
}

// Center returns the middle of the level floor.
func (l *Level) Center() gamemath.Vec3 {
	return gamemath.Vec3{X: l.Width / 2, Z: l.Depth / 2}
}

// Contains reports whether p lies over the level floor.
func (l *Level) Contains(p gamemath.Vec3) bool {
	return p.X >= 0 && p.X <= l.Width && p.Z >= 0 && p.Z <= l.Depth
}

// PlayerSpawn returns spawn point i modulo the number of spawns, or the level
// center when the map defines none.
func (l *Level) PlayerSpawn(i int) gamemath.Vec3 {
	if len(l.PlayerSpawns) == 0 {
		return l.Center()
	}
	if i < 0 {
		i = -i
	}
	return l.PlayerSpawns[i%len(l.PlayerSpawns)].Position
}
