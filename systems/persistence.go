package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/ambush/components"
	cfg "github.com/automoto/ambush/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tuningItem = "tuning"

// SavedTuning maps an enemy type name to its tuning override.
type SavedTuning map[string]cfg.Tuning

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store for tuning overrides. Without it the
// load and save functions are no-ops.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return fmt.Errorf("open gdata: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadTuning loads saved tuning overrides. Missing data is not an error.
func LoadTuning() (SavedTuning, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(tuningItem)
	if err != nil {
		log.Warn("could not load tuning", "err", err)
		return nil, nil
	}
	return decodeTuning(data)
}

// OpenTuning opens the store for appName and loads the saved overrides.
// On error the returned tuning is nil and callers run on type defaults.
func OpenTuning(appName string) (SavedTuning, error) {
	if err := InitPersistence(appName); err != nil {
		return nil, err
	}
	saved, err := LoadTuning()
	if err != nil {
		return nil, fmt.Errorf("load tuning: %w", err)
	}
	return saved, nil
}

// SaveTuning writes the tuning overrides.
func SaveTuning(saved SavedTuning) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("encode tuning: %w", err)
	}
	if err := gdataManager.SaveItem(tuningItem, data); err != nil {
		log.Warn("could not save tuning", "err", err)
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}

func decodeTuning(data []byte) (SavedTuning, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var saved SavedTuning
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("decode tuning: %w", err)
	}
	for name, t := range saved {
		saved[name] = t.Clamped()
	}
	return saved, nil
}

// ApplySavedTuning pushes saved tuning to every enemy of a matching type.
// Running cycles pick the new values up on their next tick.
func ApplySavedTuning(ecs *ecs.ECS, saved SavedTuning) {
	if len(saved) == 0 {
		return
	}
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if t, ok := saved[enemy.TypeName]; ok {
			enemy.Controller.SetTuning(t)
		}
	})
}

// CurrentTuning collects the tuning in use per enemy type. When enemies of
// one type disagree the last one visited wins.
func CurrentTuning(ecs *ecs.ECS) SavedTuning {
	out := SavedTuning{}
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		out[enemy.TypeName] = enemy.Controller.Tuning()
	})
	return out
}
