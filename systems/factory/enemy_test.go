package factory

import (
	"testing"

	"github.com/automoto/ambush/ai"
	"github.com/automoto/ambush/components"
	cfg "github.com/automoto/ambush/config"
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/automoto/ambush/shared/leveldata"
	"github.com/automoto/ambush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

func ptr(v float64) *float64 { return &v }

func TestResolveTuning(t *testing.T) {
	sentry, _ := cfg.EnemyType("Sentry")
	saved := map[string]cfg.Tuning{
		"Sentry": {ActivationRange: 20, AttackDuration: 3, HideDuration: 4},
	}

	tests := []struct {
		name  string
		saved map[string]cfg.Tuning
		spawn leveldata.EnemySpawn
		want  cfg.Tuning
	}{
		{
			name: "type defaults",
			want: sentry.Tuning,
		},
		{
			name:  "saved overrides type",
			saved: saved,
			want:  saved["Sentry"],
		},
		{
			name:  "spawn overrides saved",
			saved: saved,
			spawn: leveldata.EnemySpawn{AttackDuration: ptr(0)},
			want:  cfg.Tuning{ActivationRange: 20, AttackDuration: 0, HideDuration: 4},
		},
		{
			name:  "clamped",
			spawn: leveldata.EnemySpawn{ActivationRange: ptr(0.2), HideDuration: ptr(1000)},
			want:  cfg.Tuning{ActivationRange: 1, AttackDuration: sentry.Tuning.AttackDuration, HideDuration: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTuning(sentry, tt.saved, tt.spawn); got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCreateEnemy(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 20, 20, 1)

	spawn := leveldata.EnemySpawn{
		Name:     "gate",
		Type:     "Nobody",
		Position: gamemath.Vec3{X: 4, Y: 1, Z: 6},
	}
	entry := CreateEnemy(e, spawn, nil)

	enemy := components.Enemy.Get(entry)
	if enemy.TypeName != cfg.Enemy.DefaultType || enemy.Name != "gate" {
		t.Fatalf("enemy = %+v", enemy)
	}
	if entry.HasComponent(tags.Active) || enemy.Controller.Active() {
		t.Fatal("new enemies start disabled")
	}
	if got := components.Transform.Get(entry).Pos; got != spawn.Position {
		t.Fatalf("position = %v", got)
	}
	obj := components.Object.Get(entry)
	if obj.X+obj.W/2 != 4 || obj.Y+obj.H/2 != 6 {
		t.Fatalf("object = %v,%v", obj.X, obj.Y)
	}
	if obj.Data.(*donburi.Entry) != entry {
		t.Fatal("object data should point back at the entry")
	}
}

func TestEnemyTransitionsArePublished(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 20, 20, 1)
	entry := CreateEnemy(e, leveldata.EnemySpawn{Type: "Sentry", Position: gamemath.Vec3{X: 5, Z: 5}}, nil)

	var got []components.EnemyStateChange
	components.EnemyStateChanged.Subscribe(e.World, func(_ donburi.World, c components.EnemyStateChange) {
		got = append(got, c)
	})

	controller := components.Enemy.Get(entry).Controller
	controller.Activate(components.Transform.Get(entry), nil)
	controller.Step(0.02, components.Transform.Get(entry))
	events.ProcessAllEvents(e.World)

	if len(got) != 1 || got[0].From != ai.Idle || got[0].To != ai.Approaching || got[0].Enemy != entry.Entity() {
		t.Fatalf("events = %+v", got)
	}
}
