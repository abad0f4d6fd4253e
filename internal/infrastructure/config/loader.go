package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Actors  *ActorsConfig
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Path returns the on-disk path of a config file, for watching
func (l *Loader) Path(name string) string {
	return filepath.Join(l.basePath, name)
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	cfg := DefaultPhysics()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return cfg, nil
}

// LoadActors loads actors.yaml
func (l *Loader) LoadActors() (*ActorsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "actors.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read actors.yaml: %w", err)
	}

	return ParseActors(data)
}

// ParseActors decodes an actors.yaml document
func ParseActors(data []byte) (*ActorsConfig, error) {
	var cfg ActorsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse actors.yaml: %w", err)
	}
	if cfg.Player.Stats.MaxHP <= 0 || cfg.Enemy.Stats.MaxHP <= 0 {
		return nil, fmt.Errorf("failed to parse actors.yaml: max_hp must be positive")
	}

	return &cfg, nil
}

// LoadArena loads an arena JSON file
func (l *Loader) LoadArena(name string) (*ArenaConfig, error) {
	path := "arenas/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena %s: %w", name, err)
	}

	var cfg ArenaConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena %s: %w", name, err)
	}
	if cfg.GroundY <= 0 || cfg.GroundY > cfg.Size.Height {
		return nil, fmt.Errorf("failed to parse arena %s: groundY %v outside world height %v", name, cfg.GroundY, cfg.Size.Height)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (physics, actors)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	actors, err := l.LoadActors()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Actors:  actors,
	}, nil
}
