package components

import (
	"github.com/automoto/ambush/ai"
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EnemyStateChange is published whenever an enemy controller changes state.
type EnemyStateChange struct {
	Enemy    donburi.Entity
	TypeName string
	From, To ai.State
}

// PlayerHit is published when a projectile connects with a player.
type PlayerHit struct {
	Player   donburi.Entity
	Attacker donburi.Entity
	Damage   int
	Point    gamemath.Vec3
}

// PlayerDeath is published when a player is removed after running out of health.
type PlayerDeath struct {
	Player donburi.Entity
	Name   string
}

var (
	EnemyStateChanged = events.NewEventType[EnemyStateChange]()
	PlayerHitEvent    = events.NewEventType[PlayerHit]()
	PlayerDeathEvent  = events.NewEventType[PlayerDeath]()
)
