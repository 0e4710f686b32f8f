package core

import (
	"fmt"
	"os"

	"github.com/automoto/ambush/shared/leveldata"
)

// LoadServerLevel loads every .tmx under assetsDir/levels and picks the one
// called name, or the first in name order when name is empty.
func LoadServerLevel(assetsDir, name string) (*leveldata.Level, []string, error) {
	levels, names, err := leveldata.LoadAllLevels(os.DirFS(assetsDir), "levels")
	if err != nil {
		return nil, nil, fmt.Errorf("load all levels: %w", err)
	}

	if name == "" {
		name = names[0]
	}
	level, ok := levels[name]
	if !ok {
		return nil, names, fmt.Errorf("level %q not found, have %v", name, names)
	}
	return level, names, nil
}
