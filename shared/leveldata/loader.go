package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// Layer and object group names read from TMX files
const (
	TerrainLayer     = "Terrain"
	SpawnGroup       = "PlayerSpawn"
	ZoneGroup        = "CapabilityZones"
	EnemyGroup       = "Enemies"
	DeadZoneGroup    = "DeadZones"
	climbableProp    = "climbable"
	spawnIndexProp   = "spawnIndex"
	revertOnExitProp = "revertOnExit"
	messageProp      = "message"
)

// ErrNoSpawn is returned for levels without a PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass an
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	conv := converter{
		tileW:  float64(levelMap.TileWidth),
		tileH:  float64(levelMap.TileHeight),
		height: float64(levelMap.Height * levelMap.TileHeight),
	}
	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Size:     math.Vec2{X: float64(levelMap.Width), Y: float64(levelMap.Height)},
		TileSize: levelMap.TileWidth,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != TerrainLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var climbable bool
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					climbable = tilesetTile.Properties.GetBool(climbableProp)
				}

				level.Terrain = append(level.Terrain, Terrain{
					Rect: gamemath.Rect{
						X: float64(x),
						Y: float64(levelMap.Height - y - 1),
						W: 1,
						H: 1,
					},
					Climbable: climbable,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SpawnGroup:
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, SpawnPoint{
					Position: conv.point(o.X, o.Y),
					Index:    o.Properties.GetInt(spawnIndexProp),
				})
			}
		case ZoneGroup:
			for _, o := range og.Objects {
				zone, err := parseZone(o, conv)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				level.Zones = append(level.Zones, zone)
			}
		case EnemyGroup:
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, EnemySpawn{
					Position:       conv.point(o.X, o.Y),
					Stompable:      boolProp(o.Properties, "stompable", true),
					PatrolDistance: o.Properties.GetFloat("patrolDistance"),
					Health:         o.Properties.GetInt("health"),
				})
			}
		case DeadZoneGroup:
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, conv.rect(o.X, o.Y, o.Width, o.Height))
			}
		}
	}

	if len(level.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	// Sort by index, then left-to-right, for consistent player assignment
	sort.SliceStable(level.Spawns, func(i, j int) bool {
		a, b := level.Spawns[i], level.Spawns[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.Position.X < b.Position.X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns them keyed by stem name plus a sorted list of names.
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

// parseZone reads one mode property per capability, named like the
// capability ("double_jump") and holding a mode name ("toggle").
func parseZone(o *tiled.Object, conv converter) (ZoneData, error) {
	zone := ZoneData{
		Name:         o.Name,
		Rect:         conv.rect(o.X, o.Y, o.Width, o.Height),
		Modes:        make(map[controller.Capability]controller.Mode),
		RevertOnExit: o.Properties.GetBool(revertOnExitProp),
		Message:      o.Properties.GetString(messageProp),
	}
	for _, c := range controller.AllCapabilities() {
		mode, err := controller.ParseMode(o.Properties.GetString(c.String()))
		if err != nil {
			return ZoneData{}, fmt.Errorf("zone %q %s: %w", o.Name, c, err)
		}
		if mode != controller.ModeIgnore {
			zone.Modes[c] = mode
		}
	}
	return zone, nil
}

func boolProp(props tiled.Properties, name string, fallback bool) bool {
	if len(props.Get(name)) == 0 {
		return fallback
	}
	return props.GetBool(name)
}

// converter maps Tiled pixel coordinates (y down) to world units (y up).
type converter struct {
	tileW, tileH float64
	height       float64
}

func (c converter) point(x, y float64) math.Vec2 {
	return math.Vec2{X: x / c.tileW, Y: (c.height - y) / c.tileH}
}

func (c converter) rect(x, y, w, h float64) gamemath.Rect {
	return gamemath.Rect{
		X: x / c.tileW,
		Y: (c.height - y - h) / c.tileH,
		W: w / c.tileW,
		H: h / c.tileH,
	}
}
