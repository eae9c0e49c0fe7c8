package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/swamp-preachers/shared/leveldata"
)

//go:embed levels
var assetFS embed.FS

// DefaultLevel is played when no level is named on the command line.
const DefaultLevel = "demo"

// LoadLevels parses every embedded level, keyed by file stem, along with the
// sorted list of names.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAllLevels(assetFS, "levels")
}

// GetLevel loads one embedded level by name.
func GetLevel(name string) (*leveldata.Level, error) {
	levels, names, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	level, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found (have %v)", name, names)
	}
	return level, nil
}
