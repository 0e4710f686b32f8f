// Package assets embeds the levels shipped with the viewer.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/ambush/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// FS returns the embedded asset tree. Levels live under "levels/".
func FS() fs.FS {
	return assetFS
}

// LoadLevels parses every embedded level.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(assetFS, "levels")
}
