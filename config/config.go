package config

import (
	"image/color"

	"github.com/automoto/ambush/shared/gamemath"
)

// Tuning holds the externally adjustable parameters of one enemy.
type Tuning struct {
	ActivationRange float64 `json:"activationRange"` // meters
	AttackDuration  float64 `json:"attackDuration"`  // seconds
	HideDuration    float64 `json:"hideDuration"`    // seconds
}

// Clamped returns t with every field clamped to the ranges in Limits.
func (t Tuning) Clamped() Tuning {
	return Tuning{
		ActivationRange: gamemath.Clamp(t.ActivationRange, Limits.MinActivationRange, Limits.MaxActivationRange),
		AttackDuration:  gamemath.Clamp(t.AttackDuration, Limits.MinDuration, Limits.MaxDuration),
		HideDuration:    gamemath.Clamp(t.HideDuration, Limits.MinDuration, Limits.MaxDuration),
	}
}

// LimitsConfig documents the accepted range of every Tuning field.
type LimitsConfig struct {
	MinActivationRange float64
	MaxActivationRange float64
	MinDuration        float64
	MaxDuration        float64
}

// AIConfig contains the fixed constants of the pop-out attack cycle.
type AIConfig struct {
	MoveDuration float64 // seconds to step out to, or back from, the attack post
	AttackOffset float64 // distance along the right axis from the initial post to the attack post
	AimHeight    float64 // vertical offset added to the target position when firing
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name   string
	Tuning Tuning
	Health int

	// Collision footprint on the ground plane (meters)
	Size float64

	// Weapon mounted on this type
	Weapon WeaponConfig

	// Visual
	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig
	DefaultType string
}

// WeaponConfig describes the projectile a weapon spawns on every fire call.
type WeaponConfig struct {
	ProjectileSpeed  float64 // meters per second
	ProjectileRadius float64
	Lifetime         float64 // seconds before a projectile expires
	Damage           int
	MuzzleHeight     float64 // spawn height above the owner's position
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health    int
	MoveSpeed float64 // meters per second
	Size      float64 // collision footprint (meters)
}

// SimConfig contains simulation loop configuration values
type SimConfig struct {
	TickRate int // fixed ticks per second
	CellSize int // resolv cell size in meters
}

// ViewerConfig contains desktop viewer configuration values
type ViewerConfig struct {
	Width, Height  int
	PixelsPerMeter float64

	BackgroundColor color.RGBA
	PlayerColor     color.RGBA
	ProjectileColor color.RGBA
	PostColor       color.RGBA
	RangeColor      color.RGBA
	StateColors     [5]color.RGBA // indexed by ai.State
}

var (
	Limits LimitsConfig
	AI     AIConfig
	Enemy  EnemyConfig
	Player PlayerConfig
	Sim    SimConfig
	Viewer ViewerConfig
)

// Color palette
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 220, G: 50, B: 47, A: 255}
	Orange = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Yellow = color.RGBA{R: 255, G: 220, B: 80, A: 255}
	Green  = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	Blue   = color.RGBA{R: 80, G: 140, B: 255, A: 255}
	Purple = color.RGBA{R: 160, G: 90, B: 220, A: 255}
	Grey   = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

func init() {
	Limits = LimitsConfig{
		MinActivationRange: 1,
		MaxActivationRange: 100,
		MinDuration:        0,
		MaxDuration:        100,
	}

	AI = AIConfig{
		MoveDuration: 1,
		AttackOffset: 2,
		AimHeight:    1,
	}

	rifle := WeaponConfig{
		ProjectileSpeed:  30,
		ProjectileRadius: 0.15,
		Lifetime:         2,
		Damage:           4,
		MuzzleHeight:     1.4,
	}

	sentryType := EnemyTypeConfig{
		Name: "Sentry",
		Tuning: Tuning{
			ActivationRange: 10,
			AttackDuration:  2,
			HideDuration:    1,
		},
		Health:    40,
		Size:      0.8,
		Weapon:    rifle,
		TintColor: Red,
	}

	sniperType := EnemyTypeConfig{
		Name: "Sniper",
		Tuning: Tuning{
			ActivationRange: 30,
			AttackDuration:  0.5,
			HideDuration:    3,
		},
		Health: 25,
		Size:   0.8,
		Weapon: WeaponConfig{
			ProjectileSpeed:  60,
			ProjectileRadius: 0.1,
			Lifetime:         1.5,
			Damage:           20,
			MuzzleHeight:     1.5,
		},
		TintColor: Purple,
	}

	skirmisherType := EnemyTypeConfig{
		Name: "Skirmisher",
		Tuning: Tuning{
			ActivationRange: 6,
			AttackDuration:  4,
			HideDuration:    0.5,
		},
		Health: 60,
		Size:   1,
		Weapon: WeaponConfig{
			ProjectileSpeed:  18,
			ProjectileRadius: 0.2,
			Lifetime:         1,
			Damage:           2,
			MuzzleHeight:     1.2,
		},
		TintColor: Orange,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Sentry":     sentryType,
			"Sniper":     sniperType,
			"Skirmisher": skirmisherType,
		},
		DefaultType: "Sentry",
	}

	Player = PlayerConfig{
		Health:    100,
		MoveSpeed: 5,
		Size:      0.8,
	}

	Sim = SimConfig{
		TickRate: 50, // 0.02s fixed tick
		CellSize: 1,
	}

	Viewer = ViewerConfig{
		Width:           960,
		Height:          640,
		PixelsPerMeter:  16,
		BackgroundColor: color.RGBA{R: 18, G: 18, B: 24, A: 255},
		PlayerColor:     Blue,
		ProjectileColor: Yellow,
		PostColor:       Grey,
		RangeColor:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		StateColors: [5]color.RGBA{
			Green,  // Idle
			Orange, // Approaching
			Red,    // Firing
			Orange, // Retreating
			Grey,   // Hiding
		},
	}
}

// EnemyType returns the configuration for the named enemy type. Unknown names
// fall back to the default type and report false.
func EnemyType(name string) (EnemyTypeConfig, bool) {
	if t, ok := Enemy.Types[name]; ok {
		return t, true
	}
	return Enemy.Types[Enemy.DefaultType], false
}

// TickSeconds returns the fixed tick length for the given tick rate.
func TickSeconds(tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = Sim.TickRate
	}
	return 1 / float64(tickRate)
}
