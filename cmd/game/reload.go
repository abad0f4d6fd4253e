package main

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/younwookim/brawler/internal/application/system"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

const actorsFile = "actors.yaml"

// actorsFeed hands reloaded actor specs to the running scene and remembers
// the latest valid ones for scenes created later.
type actorsFeed struct {
	fireball config.FireballConfig

	mu     sync.Mutex
	latest *config.ActorsConfig
	reload chan *config.ActorsConfig
}

func newActorsFeed(fireball config.FireballConfig) *actorsFeed {
	return &actorsFeed{
		fireball: fireball,
		reload:   make(chan *config.ActorsConfig, 1),
	}
}

// Publish validates actors and offers them to the running scene, replacing
// an update the scene has not picked up yet
func (f *actorsFeed) Publish(actors *config.ActorsConfig) error {
	if err := system.ValidateActors(actors, f.fireball); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest = actors
	select {
	case <-f.reload:
	default:
	}
	f.reload <- actors
	return nil
}

// Config returns base with the latest published actor specs, if any
func (f *actorsFeed) Config(base *config.GameConfig) *config.GameConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latest == nil {
		return base
	}
	return &config.GameConfig{Physics: base.Physics, Actors: f.latest}
}

// Updates is the channel the playing scene polls
func (f *actorsFeed) Updates() <-chan *config.ActorsConfig {
	return f.reload
}

// watchActors re-parses actors.yaml whenever it changes and publishes the result
func watchActors(loader *config.Loader, dir string, feed *actorsFeed) (func(), error) {
	w, err := config.NewWatcher(dir)
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(path) != actorsFile {
					continue
				}
				actors, err := loader.LoadActors()
				if err != nil {
					log.Printf("Failed to reload actors: %v", err)
					continue
				}
				if err := feed.Publish(actors); err != nil {
					log.Printf("Ignoring reloaded actors: %v", err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher error: %v", err)
			}
		}
	}()

	log.Printf("Watching %s for changes", filepath.Join(dir, actorsFile))
	return func() { _ = w.Close() }, nil
}
