package entity

import (
	"fmt"
	"time"
)

// AnimState is the closed set of animation states an actor can be in
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimTurn
	AnimAttack1
	AnimAttack2
	AnimHit
	AnimDeath
	AnimJump
	AnimJumpTrans
	AnimFall
	animStateCount
)

var animStateNames = [animStateCount]string{
	AnimIdle:      "idle",
	AnimRun:       "run",
	AnimTurn:      "turn",
	AnimAttack1:   "attack1",
	AnimAttack2:   "attack2",
	AnimHit:       "hit",
	AnimDeath:     "death",
	AnimJump:      "jump",
	AnimJumpTrans: "jumptrans",
	AnimFall:      "fall",
}

// String returns the string representation of the state
func (s AnimState) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return animStateNames[s]
}

// Valid reports whether s is one of the declared states
func (s AnimState) Valid() bool {
	return s >= AnimIdle && s < animStateCount
}

// IsAttack reports whether s is one of the attack states
func (s AnimState) IsAttack() bool {
	return s == AnimAttack1 || s == AnimAttack2
}

// ParseAnimState converts a config key into an AnimState
func ParseAnimState(name string) (AnimState, error) {
	for i, n := range animStateNames {
		if n == name {
			return AnimState(i), nil
		}
	}
	return 0, fmt.Errorf("unknown animation state %q", name)
}

// AnimSpec describes how one state plays
type AnimSpec struct {
	Frames        int
	FrameDuration time.Duration
	Loop          bool
}

// AnimTable maps every state an actor can enter to its playback spec
type AnimTable map[AnimState]AnimSpec

// Animator plays one state of an AnimTable.
// Frames advance by at most one per tick. Non-looping states clamp on their
// last frame and report completion exactly once.
type Animator struct {
	State AnimState
	Frame int

	table    AnimTable
	elapsed  time.Duration
	finished bool
}

// NewAnimator creates an animator starting in the given state
func NewAnimator(table AnimTable, initial AnimState) Animator {
	a := Animator{table: table}
	a.Restart(initial)
	return a
}

// Has reports whether the table defines the state
func (a *Animator) Has(state AnimState) bool {
	_, ok := a.table[state]
	return ok
}

// Set switches to state, resetting playback. Setting the current state is a no-op.
func (a *Animator) Set(state AnimState) {
	if state == a.State {
		a.spec(state)
		return
	}
	a.Restart(state)
}

// Restart switches to state and replays it from the first frame
func (a *Animator) Restart(state AnimState) {
	a.spec(state)
	a.State = state
	a.Frame = 0
	a.elapsed = 0
	a.finished = false
}

// Advance accumulates dt and steps one frame once the frame duration is reached.
// Returns true on the tick a non-looping state completes.
func (a *Animator) Advance(dt time.Duration) bool {
	spec := a.spec(a.State)
	if a.finished {
		return false
	}

	a.elapsed += dt
	if a.elapsed < spec.FrameDuration {
		return false
	}
	a.elapsed = 0

	if a.Frame+1 < spec.Frames {
		a.Frame++
		return false
	}
	if spec.Loop {
		a.Frame = 0
		return false
	}

	a.finished = true
	return true
}

// Finished reports whether a non-looping state has played out
func (a *Animator) Finished() bool {
	return a.finished
}

// spec panics on states outside the table: a desync between simulation
// and animation data is not recoverable.
func (a *Animator) spec(state AnimState) AnimSpec {
	if !state.Valid() {
		panic(fmt.Sprintf("animation: invalid state %d", int(state)))
	}
	spec, ok := a.table[state]
	if !ok {
		panic(fmt.Sprintf("animation: state %s has no spec", state))
	}
	return spec
}
