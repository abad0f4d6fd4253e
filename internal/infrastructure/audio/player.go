// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/domain/event"
)

const (
	sampleRate = beep.SampleRate(44100)
	queueSize  = 32
)

// CuePlayer turns simulation events into sounds. It implements event.Sink:
// signals are queued without blocking and played from a background goroutine.
type CuePlayer struct {
	event.Nop

	player entity.EntityID
	cues   chan Cue
	mixer  *beep.Mixer

	mu     sync.Mutex
	volume float64
	closed bool

	started bool
	done    chan struct{}
	once    sync.Once
}

// NewCuePlayer creates a cue player. Hits on the player entity play the hurt cue.
func NewCuePlayer(player entity.EntityID, volume float64) *CuePlayer {
	return &CuePlayer{
		player: player,
		cues:   make(chan Cue, queueSize),
		mixer:  &beep.Mixer{},
		volume: volume,
		done:   make(chan struct{}),
	}
}

// Start opens the speaker and begins playing queued cues
func (c *CuePlayer) Start() error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.started = true

	go c.run()
	return nil
}

// Close stops accepting cues and silences anything still playing
func (c *CuePlayer) Close() {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.cues)
		c.mu.Unlock()

		if c.started {
			<-c.done
			speaker.Lock()
			c.mixer.Clear()
			speaker.Unlock()
		}
	})
}

// SetVolume changes the gain for cues played from now on
func (c *CuePlayer) SetVolume(v float64) {
	c.mu.Lock()
	c.volume = v
	c.mu.Unlock()
}

// Volume returns the current gain
func (c *CuePlayer) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

func (c *CuePlayer) run() {
	defer close(c.done)
	for cue := range c.cues {
		s := withVolume(cue.streamer(sampleRate), c.Volume())
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
}

// enqueue drops the cue when the queue is full or the player is closed
func (c *CuePlayer) enqueue(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.cues <- cue:
	default:
	}
}

func (c *CuePlayer) OnAttackLanded(attacker entity.EntityID) {
	if attacker == c.player {
		c.enqueue(CueHit)
	}
}

func (c *CuePlayer) OnDamageTaken(target entity.EntityID) {
	if target == c.player {
		c.enqueue(CueHurt)
	}
}

func (c *CuePlayer) OnDeath(entity.EntityID) {
	c.enqueue(CueDeath)
}

func (c *CuePlayer) OnNewEnemyAlert(int) {
	c.enqueue(CueAlert)
}
