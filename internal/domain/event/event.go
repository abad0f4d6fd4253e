// Package event defines the one-way feedback signals the simulation emits.
//
// Collaborators (audio, camera effects, spectators) implement Sink. The
// simulation never reads anything back, so a sink must not block and must
// not touch simulation state.
package event

import (
	"time"

	"github.com/younwookim/brawler/internal/domain/entity"
)

// Sink receives feedback signals
type Sink interface {
	OnAttackLanded(attacker entity.EntityID)
	OnDamageTaken(target entity.EntityID)
	OnDeath(target entity.EntityID)
	OnNewEnemyAlert(limit int)
	OnScreenShakeRequested(d time.Duration, magnitude float64)
	OnSlowMotionRequested(d time.Duration, scale float64)
	OnZoomRequested(d time.Duration, magnitude float64)
}

// Kind names a signal
type Kind string

const (
	KindAttackLanded Kind = "attack_landed"
	KindDamageTaken  Kind = "damage_taken"
	KindDeath        Kind = "death"
	KindNewEnemy     Kind = "new_enemy_alert"
	KindScreenShake  Kind = "screen_shake"
	KindSlowMotion   Kind = "slow_motion"
	KindZoom         Kind = "zoom"
)

// Event is a signal packed into a value, for sinks that queue or serialize
type Event struct {
	Kind      Kind            `json:"kind"`
	ID        entity.EntityID `json:"id,omitempty"`
	Limit     int             `json:"limit,omitempty"`
	Duration  time.Duration   `json:"duration,omitempty"`
	Magnitude float64         `json:"magnitude,omitempty"`
}

// Nop discards every signal
type Nop struct{}

func (Nop) OnAttackLanded(entity.EntityID)                {}
func (Nop) OnDamageTaken(entity.EntityID)                 {}
func (Nop) OnDeath(entity.EntityID)                       {}
func (Nop) OnNewEnemyAlert(int)                           {}
func (Nop) OnScreenShakeRequested(time.Duration, float64) {}
func (Nop) OnSlowMotionRequested(time.Duration, float64)  {}
func (Nop) OnZoomRequested(time.Duration, float64)        {}

// Multi fans every signal out to each sink in order
type Multi []Sink

func (m Multi) OnAttackLanded(id entity.EntityID) {
	for _, s := range m {
		s.OnAttackLanded(id)
	}
}

func (m Multi) OnDamageTaken(id entity.EntityID) {
	for _, s := range m {
		s.OnDamageTaken(id)
	}
}

func (m Multi) OnDeath(id entity.EntityID) {
	for _, s := range m {
		s.OnDeath(id)
	}
}

func (m Multi) OnNewEnemyAlert(limit int) {
	for _, s := range m {
		s.OnNewEnemyAlert(limit)
	}
}

func (m Multi) OnScreenShakeRequested(d time.Duration, magnitude float64) {
	for _, s := range m {
		s.OnScreenShakeRequested(d, magnitude)
	}
}

func (m Multi) OnSlowMotionRequested(d time.Duration, scale float64) {
	for _, s := range m {
		s.OnSlowMotionRequested(d, scale)
	}
}

func (m Multi) OnZoomRequested(d time.Duration, magnitude float64) {
	for _, s := range m {
		s.OnZoomRequested(d, magnitude)
	}
}

// Func adapts a function taking Events into a Sink
type Func func(Event)

func (f Func) OnAttackLanded(id entity.EntityID) {
	f(Event{Kind: KindAttackLanded, ID: id})
}

func (f Func) OnDamageTaken(id entity.EntityID) {
	f(Event{Kind: KindDamageTaken, ID: id})
}

func (f Func) OnDeath(id entity.EntityID) {
	f(Event{Kind: KindDeath, ID: id})
}

func (f Func) OnNewEnemyAlert(limit int) {
	f(Event{Kind: KindNewEnemy, Limit: limit})
}

func (f Func) OnScreenShakeRequested(d time.Duration, magnitude float64) {
	f(Event{Kind: KindScreenShake, Duration: d, Magnitude: magnitude})
}

func (f Func) OnSlowMotionRequested(d time.Duration, scale float64) {
	f(Event{Kind: KindSlowMotion, Duration: d, Magnitude: scale})
}

func (f Func) OnZoomRequested(d time.Duration, magnitude float64) {
	f(Event{Kind: KindZoom, Duration: d, Magnitude: magnitude})
}

// Log records every signal, in order
type Log struct {
	Events []Event
}

// Sink returns a sink appending to the log
func (l *Log) Sink() Sink {
	return Func(func(e Event) { l.Events = append(l.Events, e) })
}

// Count returns how many events of kind were recorded
func (l *Log) Count(kind Kind) int {
	n := 0
	for _, e := range l.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded events
func (l *Log) Reset() {
	l.Events = l.Events[:0]
}
