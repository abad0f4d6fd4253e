// Package playing provides the arena scene: the simulation, its renderer and
// the pause, config and death overlays.
package playing

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/brawler/internal/application/scene"
	"github.com/younwookim/brawler/internal/application/state"
	"github.com/younwookim/brawler/internal/application/system"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/domain/event"
	"github.com/younwookim/brawler/internal/infrastructure/config"
	"github.com/younwookim/brawler/internal/infrastructure/persistence"
)

// topRunsShown is how many best runs the death menu lists
const topRunsShown = 5

// VolumeControl is the audio collaborator the config overlay drives
type VolumeControl interface {
	SetVolume(v float64)
}

// Options wires the scene to its collaborators. Everything but Config and
// Arena is optional.
type Options struct {
	Config *config.GameConfig
	Arena  *config.ArenaConfig
	Seed   int64 // 0 picks one from the clock

	RecordPath string
	Sink       event.Sink
	Store      persistence.Storage

	Settings     config.Settings
	SettingsPath string
	Audio        VolumeControl

	// Reload delivers re-parsed actor specs; they apply from the next respawn
	Reload <-chan *config.ActorsConfig

	// Menu builds the scene shown by "Main menu"
	Menu func() scene.Scene
}

type action int

const (
	actionNone action = iota
	actionResume
	actionSettings
	actionBack
	actionRespawn
	actionMenu
	actionQuit
)

// Playing is the arena scene
type Playing struct {
	opts  Options
	cfg   *config.GameConfig
	state state.GameState

	sim     *system.Simulation
	pacer   *system.Pacer
	pending system.Intent
	input   func() system.Intent

	screenW int
	screenH int
	world   *ebiten.Image

	settings config.Settings
	lastRun  *persistence.RunRecord
	topRuns  []persistence.RunRecord

	pauseUI  *ebitenui.UI
	configUI *ebitenui.UI
	deathUI  *ebitenui.UI
	action   action

	recorder *Recorder
}

// New creates the arena scene and its first run
func New(opts Options) (*Playing, error) {
	if opts.Config == nil || opts.Config.Physics == nil || opts.Arena == nil {
		return nil, fmt.Errorf("failed to create playing scene: config and arena are required")
	}

	display := opts.Config.Physics.Display
	p := &Playing{
		opts:     opts,
		cfg:      opts.Config,
		state:    state.StatePlaying,
		pacer:    system.NewPacer(display.TickDuration()),
		input:    system.NewInputSystem().GetInput,
		screenW:  display.ScreenWidth,
		screenH:  display.ScreenHeight,
		settings: opts.Settings.Clamp(),
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := p.startRun(seed); err != nil {
		return nil, err
	}
	return p, nil
}

// startRun replaces the simulation with a fresh one
func (p *Playing) startRun(seed int64) error {
	fb := p.cfg.Physics.Feedback
	hitstop := 0
	if fb.Hitstop.Enabled {
		hitstop = fb.Hitstop.Frames
	}

	pacing := &pacerSink{pacer: p.pacer, hitstop: hitstop}
	sinks := event.Multi{pacing}
	if p.opts.Sink != nil {
		sinks = append(sinks, p.opts.Sink)
	}

	sim, err := system.NewSimulation(system.Options{
		Config: p.cfg,
		Arena:  p.opts.Arena,
		Seed:   seed,
		Sink:   sinks,
	})
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}

	pacing.player = sim.Player.ID
	p.sim = sim
	p.pacer.Reset()
	p.pending = system.Intent{}
	p.state = state.StatePlaying

	if p.opts.RecordPath != "" {
		p.recorder = NewRecorder(seed, p.opts.Arena.ID)
		log.Printf("Recording enabled: %s (seed: %d)", p.opts.RecordPath, seed)
	}
	return nil
}

// Update proceeds the scene by one frame (implements scene.Scene)
func (p *Playing) Update(_ time.Duration) (scene.Scene, error) {
	p.pollReload()

	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
		p.advance(p.input())
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.action = actionResume
		} else {
			p.overlayUI().Update()
		}
	case state.StateConfig:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.action = actionBack
		} else {
			p.overlayUI().Update()
		}
	case state.StateDead:
		p.advance(system.Intent{})
		p.overlayUI().Update()
	}

	return p.apply()
}

// advance feeds one frame of input through the pacer into the simulation
func (p *Playing) advance(in system.Intent) {
	p.pending = p.pending.Merge(in)
	for n := p.pacer.Frame(); n > 0; n-- {
		step := p.pending
		p.pending = step.Held()
		if p.recorder != nil {
			p.recorder.RecordFrame(step)
		}
		p.sim.Step(step)
	}

	if p.state == state.StatePlaying && p.sim.Player.IsDead() {
		p.onDeath()
	}
}

// onDeath records the run and opens the death menu
func (p *Playing) onDeath() {
	p.state = state.StateDead

	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}

	run := persistence.NewRunRecord(p.sim.Seed(), p.sim.KillCount(), p.sim.SpawnLimit(), p.sim.Now(), time.Now())
	p.lastRun = &run
	p.topRuns = nil
	if p.opts.Store != nil {
		if err := p.opts.Store.SaveRun(run); err != nil {
			log.Printf("Failed to save run: %v", err)
		}
		top, err := p.opts.Store.TopRuns(topRunsShown)
		if err != nil {
			log.Printf("Failed to load best runs: %v", err)
		}
		p.topRuns = top
	}
	p.deathUI = nil
}

// apply runs the action a button or key requested during this frame
func (p *Playing) apply() (scene.Scene, error) {
	a := p.action
	p.action = actionNone

	switch a {
	case actionResume:
		p.state = state.StatePlaying
	case actionSettings:
		p.state = state.StateConfig
	case actionBack:
		p.state = state.StatePaused
	case actionRespawn:
		// a failed respawn leaves the death menu up
		if err := p.startRun(time.Now().UnixNano()); err != nil {
			log.Printf("Failed to respawn: %v", err)
		}
	case actionMenu:
		if p.opts.Menu != nil {
			return p.opts.Menu(), nil
		}
	case actionQuit:
		return nil, ebiten.Termination
	}
	return nil, nil
}

// overlayUI returns the menu for the current state, building it on first use
func (p *Playing) overlayUI() *ebitenui.UI {
	switch p.state {
	case state.StatePaused:
		if p.pauseUI == nil {
			p.pauseUI = p.newPauseUI()
		}
		return p.pauseUI
	case state.StateConfig:
		if p.configUI == nil {
			p.configUI = p.newConfigUI()
		}
		return p.configUI
	case state.StateDead:
		if p.deathUI == nil {
			p.deathUI = p.newDeathUI()
		}
		return p.deathUI
	}
	return nil
}

// pollReload picks up actor specs re-parsed by the config watcher
func (p *Playing) pollReload() {
	if p.opts.Reload == nil {
		return
	}
	select {
	case actors, ok := <-p.opts.Reload:
		if !ok {
			p.opts.Reload = nil
			return
		}
		if err := system.ValidateActors(actors, p.cfg.Physics.Fireball); err != nil {
			log.Printf("Ignoring reloaded actor specs: %v", err)
			return
		}
		p.cfg = &config.GameConfig{Physics: p.cfg.Physics, Actors: actors}
		log.Printf("Actor specs reloaded, applied on next respawn")
	default:
	}
}

// adjustVolume changes one of the settings volumes by delta, persists and applies it
func (p *Playing) adjustVolume(target *float64, delta float64) {
	*target += delta
	p.settings = p.settings.Clamp()

	if p.opts.Audio != nil {
		p.opts.Audio.SetVolume(p.settings.EffectiveSFX())
	}
	if p.opts.SettingsPath != "" {
		if err := config.SaveSettings(p.opts.SettingsPath, p.settings); err != nil {
			log.Printf("Failed to save settings: %v", err)
		}
	}
	p.configUI = nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// State returns the active screen state
func (p *Playing) State() state.GameState {
	return p.state
}

// Simulation returns the running simulation
func (p *Playing) Simulation() *system.Simulation {
	return p.sim
}

// Settings returns the current audio settings
func (p *Playing) Settings() config.Settings {
	return p.settings
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	if p.opts.Audio != nil {
		p.opts.Audio.SetVolume(p.settings.EffectiveSFX())
	}
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// pacerSink turns feedback requests into pacing: slow motion from the
// combat resolver and hitstop when the player lands a hit.
type pacerSink struct {
	event.Nop
	pacer   *system.Pacer
	player  entity.EntityID
	hitstop int
}

func (s *pacerSink) OnSlowMotionRequested(d time.Duration, scale float64) {
	s.pacer.SlowMotion(d, scale)
}

func (s *pacerSink) OnAttackLanded(attacker entity.EntityID) {
	if attacker == s.player && s.hitstop > 0 {
		s.pacer.Hitstop(s.hitstop)
	}
}
