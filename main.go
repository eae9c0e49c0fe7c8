package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/swamp-preachers/assets"
	"github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/fonts"
	"github.com/automoto/swamp-preachers/scenes"
	"github.com/automoto/swamp-preachers/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene      scenes.Scene
	watcher    *config.Watcher
	tuningPath string
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.scene.Update()
	return nil
}

// reloadTuning applies tuning file changes between ticks. A file that fails
// to parse or validate leaves the running values alone.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Clean(path) != filepath.Clean(g.tuningPath) {
				continue
			}
			t, err := loadTuningFile(g.tuningPath)
			if err != nil {
				log.Printf("[config] reload rejected: %v", err)
				continue
			}
			config.Apply(t)
			log.Printf("[config] reloaded %s", g.tuningPath)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("[config] watch error: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.World.Width, config.World.Height
}

func loadTuningFile(path string) (config.Tuning, error) {
	return config.LoadTuning(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file applied over the defaults")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	metricsAddr := flag.String("metrics", "", "serve metrics and debug endpoints on this address")
	levelName := flag.String("level", assets.DefaultLevel, "level to play")
	flag.Parse()

	if *tuningPath != "" {
		t, err := loadTuningFile(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.Apply(t)
	}
	if *metricsAddr != "" {
		config.Telemetry.Enabled = true
		config.Telemetry.ListenAddr = *metricsAddr
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	level, err := assets.GetLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	rec := telemetry.NewRecorder()
	srv, err := telemetry.StartDebugServer(config.Telemetry, rec)
	if err != nil {
		log.Printf("Warning: telemetry server not started: %v", err)
	}
	if srv != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	g := &Game{tuningPath: *tuningPath}
	if *watch && *tuningPath != "" {
		w, err := config.NewWatcher(filepath.Dir(*tuningPath))
		if err != nil {
			log.Printf("Warning: could not watch tuning file: %v", err)
		} else {
			g.watcher = w
			defer w.Close()
		}
	}
	g.scene = scenes.NewWorldScene(g, level, rec)

	ebiten.SetWindowSize(config.World.Width*2, config.World.Height*2)
	ebiten.SetWindowTitle("Swamp Preachers")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
