package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/ambush/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	EnemiesGroup     = "Enemies"
	PlayerSpawnGroup = "PlayerSpawn"
)

// Enemy object properties.
const (
	propType            = "type"
	propActivationRange = "activationRange"
	propAttackDuration  = "attackDuration"
	propHideDuration    = "hideDuration"
	propFacing          = "facing" // degrees, clockwise seen from above
	propElevation       = "elevation"
	propSpawnIndex      = "spawnIndex"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS (viewer) or os.DirFS (server).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)

	level := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case EnemiesGroup:
			for _, o := range og.Objects {
				spawn, err := parseEnemy(o, tileW, tileH)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: enemy %d: %w", tmxPath, o.ID, err)
				}
				level.Enemies = append(level.Enemies, spawn)
			}
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				props := propertyMap(o.Properties)
				index, _ := strconv.Atoi(props[propSpawnIndex])
				elevation, err := optionalFloat(props, propElevation)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: spawn %d: %w", tmxPath, o.ID, err)
				}
				level.PlayerSpawns = append(level.PlayerSpawns, SpawnPoint{
					Position: gamemath.Vec3{X: o.X / tileW, Y: deref(elevation), Z: o.Y / tileH},
					Index:    index,
				})
			}
		}
	}

	sort.SliceStable(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].Index < level.PlayerSpawns[j].Index
	})

	return level, nil
}

func parseEnemy(o *tiled.Object, tileW, tileH float64) (EnemySpawn, error) {
	props := propertyMap(o.Properties)

	spawn := EnemySpawn{
		Name: o.Name,
		Type: props[propType],
		Position: gamemath.Vec3{
			X: o.X / tileW,
			Z: o.Y / tileH,
		},
	}

	var err error
	if spawn.ActivationRange, err = optionalFloat(props, propActivationRange); err != nil {
		return spawn, err
	}
	if spawn.AttackDuration, err = optionalFloat(props, propAttackDuration); err != nil {
		return spawn, err
	}
	if spawn.HideDuration, err = optionalFloat(props, propHideDuration); err != nil {
		return spawn, err
	}

	facing, err := optionalFloat(props, propFacing)
	if err != nil {
		return spawn, err
	}
	spawn.Yaw = deref(facing) * math.Pi / 180

	elevation, err := optionalFloat(props, propElevation)
	if err != nil {
		return spawn, err
	}
	spawn.Position.Y = deref(elevation)

	return spawn, nil
}

func propertyMap(props tiled.Properties) map[string]string {
	m := make(map[string]string, len(props))
	for _, p := range props {
		m[p.Name] = p.Value
	}
	return m
}

func optionalFloat(props map[string]string, name string) (*float64, error) {
	raw, ok := props[name]
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("property %s: %w", name, err)
	}
	return &v, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
