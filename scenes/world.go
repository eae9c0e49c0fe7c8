package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/swamp-preachers/archetypes"
	"github.com/automoto/swamp-preachers/components"
	cfg "github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/shared/leveldata"
	"github.com/automoto/swamp-preachers/systems"
	"github.com/automoto/swamp-preachers/systems/factory"
	"github.com/automoto/swamp-preachers/tags"
	"github.com/automoto/swamp-preachers/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// playerInputs are the default bindings for local players, in join order.
var playerInputs = []factory.PlayerInputConfig{
	{PlayerIndex: 0, Scheme: components.ControlSchemeWASD, GamepadIndex: 0},
	{PlayerIndex: 1, Scheme: components.ControlSchemeArrows, GamepadIndex: 1},
	{PlayerIndex: 2, Scheme: components.ControlSchemeNone, GamepadIndex: 2},
	{PlayerIndex: 3, Scheme: components.ControlSchemeNone, GamepadIndex: 3},
}

// WorldScene plays one level. A controller that finishes its death sequence
// asks for a reset and the scene rebuilds itself from the same level data.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	recorder     *telemetry.Recorder
	once         sync.Once
}

// NewWorldScene creates a scene for level. rec may be nil.
func NewWorldScene(sc SceneChanger, level *leveldata.Level, rec *telemetry.Recorder) *WorldScene {
	return &WorldScene{sceneChanger: sc, level: level, recorder: rec}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.LevelResetRequested(ws.ecs) {
		log.Printf("[scene] resetting level %s", ws.level.Name)
		ws.forgetPlayers()
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.level, ws.recorder))
	}
}

// forgetPlayers drops the published snapshots of this scene's players so a
// rebuilt scene with fewer players leaves nothing stale behind.
func (ws *WorldScene) forgetPlayers() {
	if ws.recorder == nil {
		return
	}
	tags.Player.Each(ws.ecs.World, func(entry *donburi.Entry) {
		ws.recorder.Forget(components.Player.Get(entry).Name)
	})
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePlayerInput)
	ecs.AddSystem(systems.UpdatePlayers)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateZones)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateMessage)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawLevel)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawEffects)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawEnemies)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawCharacters)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawMessage)

	ws.ecs = ecs

	factory.CreateSession(ws.ecs, ws.recorder)
	levelEntry := factory.CreateLevel(ws.ecs, ws.level)
	space := components.Level.Get(levelEntry).Space

	// The loader rejects levels without spawns, so Spawns[0] exists
	factory.CreateCamera(ws.ecs, ws.level.Spawns[0].Position)

	for _, zone := range ws.level.Zones {
		factory.CreateZone(ws.ecs, zone)
	}
	for _, enemy := range ws.level.Enemies {
		factory.CreateEnemy(ws.ecs, space, enemy)
	}

	players := min(cfg.Coop.MaxPlayers, len(playerInputs))
	for i := 0; i < players; i++ {
		factory.CreatePlayer(ws.ecs, space, spawnFor(ws.level.Spawns, i), playerInputs[i])
	}
	log.Printf("[scene] level %s ready with %d players", ws.level.Name, players)
}

// spawnFor picks the spawn point for player i. Players beyond the number of
// spawn points share them, nudged sideways so they do not overlap.
func spawnFor(spawns []leveldata.SpawnPoint, i int) math.Vec2 {
	p := spawns[i%len(spawns)].Position
	p.X += float64(i/len(spawns)) * 1.5
	return p
}
