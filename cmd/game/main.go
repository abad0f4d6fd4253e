package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/younwookim/brawler/internal/application/game"
	"github.com/younwookim/brawler/internal/application/replay"
	"github.com/younwookim/brawler/internal/application/scene"
	"github.com/younwookim/brawler/internal/application/scene/menu"
	"github.com/younwookim/brawler/internal/application/scene/playing"
	"github.com/younwookim/brawler/internal/application/system"
	"github.com/younwookim/brawler/internal/domain/event"
	"github.com/younwookim/brawler/internal/infrastructure/audio"
	"github.com/younwookim/brawler/internal/infrastructure/config"
	"github.com/younwookim/brawler/internal/infrastructure/persistence"
	"github.com/younwookim/brawler/internal/infrastructure/spectate"
)

//go:embed configs
var configFS embed.FS

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recording headless and print the outcome")
	configsFlag := flag.String("configs", "", "Load configs from this directory instead of the embedded ones")
	arenaFlag := flag.String("arena", "arena", "Arena to load from configs/arenas")
	watchFlag := flag.Bool("watch", false, "Hot reload actors.yaml (requires -configs)")
	spectateFlag := flag.String("spectate", "", "Serve the event feed over websocket on this address (e.g., :8090)")
	settingsFlag := flag.String("settings", "settings.json", "User settings file")
	flag.Parse()

	// .env is optional; it only supplies DB_TYPE, DATABASE_URL and DB_FILE
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	loader, err := newLoader(*configsFlag)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		if err := playBack(*replayFlag, loader, cfg, *arenaFlag); err != nil {
			log.Fatalf("Failed to run replay: %v", err)
		}
		return
	}

	arena, err := loader.LoadArena(*arenaFlag)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	settings := config.LoadSettings(*settingsFlag)

	// Collaborators are optional: each one that fails to start is logged and skipped
	sinks := event.Multi{}

	cues := audio.NewCuePlayer(system.PlayerID, settings.EffectiveSFX())
	var volume playing.VolumeControl
	if err := cues.Start(); err != nil {
		log.Printf("Audio disabled: %v", err)
	} else {
		defer cues.Close()
		sinks = append(sinks, cues)
		volume = cues
	}

	if *spectateFlag != "" {
		hub := spectate.NewHub()
		defer hub.Close()
		sinks = append(sinks, hub.Sink())
		go serveSpectators(*spectateFlag, hub)
	}

	store, err := openStore()
	if err != nil {
		log.Printf("Run records disabled: %v", err)
	} else {
		defer func() { _ = store.Close() }()
	}

	var feed *actorsFeed
	if *watchFlag {
		if *configsFlag == "" {
			log.Printf("Ignoring -watch: embedded configs cannot change")
		} else {
			feed = newActorsFeed(cfg.Physics.Fireball)
			stop, err := watchActors(loader, *configsFlag, feed)
			if err != nil {
				log.Printf("Config watcher disabled: %v", err)
				feed = nil
			} else {
				defer stop()
			}
		}
	}

	display := cfg.Physics.Display

	var newMenu func() scene.Scene
	newPlaying := func() (scene.Scene, error) {
		opts := playing.Options{
			Config:       cfg,
			Arena:        arena,
			RecordPath:   *recordFlag,
			Store:        store,
			Settings:     config.LoadSettings(*settingsFlag),
			SettingsPath: *settingsFlag,
			Audio:        volume,
			Menu:         newMenu,
		}
		if feed != nil {
			opts.Config = feed.Config(cfg)
			opts.Reload = feed.Updates()
		}
		if len(sinks) > 0 {
			opts.Sink = sinks
		}
		p, err := playing.New(opts)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	newMenu = func() scene.Scene {
		return menu.New("BRAWLER", display.ScreenWidth, display.ScreenHeight, newPlaying)
	}

	g := game.New(newMenu(), display.ScreenWidth, display.ScreenHeight, display.TickDuration())
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Brawler")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("Game stopped: %v", err)
	}
}

// newLoader reads configs from dir, or from the embedded defaults when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// playBack runs a recording without opening a window
func playBack(path string, loader *config.Loader, cfg *config.GameConfig, fallbackArena string) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	name := data.Arena
	if name == "" {
		name = fallbackArena
	}
	arena, err := loader.LoadArena(name)
	if err != nil {
		return err
	}

	result, err := runReplay(data, cfg, arena)
	if err != nil {
		return err
	}
	fmt.Printf("%s (seed %d): %s\n", filepath.Base(path), data.Seed, result)
	return nil
}

// openStore picks the run record backend from DB_TYPE (json or postgres)
func openStore() (persistence.Storage, error) {
	if os.Getenv("DB_TYPE") == "postgres" {
		dbConnectionString := os.Getenv("DATABASE_URL")
		if dbConnectionString == "" {
			dbConnectionString = "host=localhost user=brawler password=brawler dbname=brawler sslmode=disable"
		}
		store, err := persistence.NewPostgresStore(dbConnectionString)
		if err != nil {
			return nil, err
		}
		log.Println("Using PostgreSQL run records")
		return store, nil
	}

	dbFile := os.Getenv("DB_FILE")
	if dbFile == "" {
		dbFile = "runs.json"
	}
	store, err := persistence.NewJSONStore(dbFile)
	if err != nil {
		return nil, err
	}
	log.Println("Using JSON run records")
	return store, nil
}

// serveSpectators exposes the event hub at /ws
func serveSpectators(addr string, hub *spectate.Hub) {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	log.Printf("Spectator feed on ws://%s/ws", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("Spectator feed stopped: %v", err)
	}
}
