package main

import (
	"fmt"
	"time"

	"github.com/younwookim/brawler/internal/application/replay"
	"github.com/younwookim/brawler/internal/application/system"
	"github.com/younwookim/brawler/internal/domain/event"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// ReplayResult is the outcome of running a recording without a window
type ReplayResult struct {
	Frames     int
	Duration   time.Duration
	Kills      int
	SpawnLimit int
	Hits       int // Attacks that landed, by anyone
	PlayerHP   int
	PlayerX    float64
	DiedAt     int // Tick the player died on, 0 if alive at the end
}

func (r ReplayResult) String() string {
	outcome := "alive"
	if r.DiedAt > 0 {
		outcome = fmt.Sprintf("died at tick %d", r.DiedAt)
	}
	return fmt.Sprintf("%d ticks (%s): %d kills, spawn limit %d, %d hits landed, player %s with %d HP at x=%.1f",
		r.Frames, r.Duration, r.Kills, r.SpawnLimit, r.Hits, outcome, r.PlayerHP, r.PlayerX)
}

// runReplay steps a fresh simulation through every recorded intent
func runReplay(data *replay.ReplayData, cfg *config.GameConfig, arena *config.ArenaConfig) (ReplayResult, error) {
	events := &event.Log{}
	sim, err := system.NewSimulation(system.Options{
		Config: cfg,
		Arena:  arena,
		Seed:   data.Seed,
		Sink:   events.Sink(),
	})
	if err != nil {
		return ReplayResult{}, fmt.Errorf("failed to replay: %w", err)
	}

	var result ReplayResult
	replayer := replay.NewReplayer(*data)
	for {
		in, ok := replayer.Next()
		if !ok {
			break
		}
		sim.Step(in)
		if result.DiedAt == 0 && sim.Player.IsDead() {
			result.DiedAt = sim.Tick()
		}
	}

	result.Frames = sim.Tick()
	result.Duration = sim.Now()
	result.Kills = sim.KillCount()
	result.SpawnLimit = sim.SpawnLimit()
	result.Hits = events.Count(event.KindAttackLanded)
	result.PlayerHP = sim.Player.HP
	result.PlayerX = sim.Player.X
	return result, nil
}
