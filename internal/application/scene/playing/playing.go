// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/slingshot/internal/application/match"
	"github.com/younwookim/slingshot/internal/application/replay"
	"github.com/younwookim/slingshot/internal/application/scene"
	"github.com/younwookim/slingshot/internal/application/state"
	"github.com/younwookim/slingshot/internal/application/system"
	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/domain/geom"
	"github.com/younwookim/slingshot/internal/ecs"
	"github.com/younwookim/slingshot/internal/infrastructure/audio"
	"github.com/younwookim/slingshot/internal/infrastructure/chipmunk"
	"github.com/younwookim/slingshot/internal/infrastructure/config"
	"github.com/younwookim/slingshot/internal/physics"
)

// PhysicsFactory builds the physics world for one match
type PhysicsFactory func(cfg *config.PhysicsConfig) physics.World

// ChipmunkPhysics is the production PhysicsFactory
func ChipmunkPhysics(cfg *config.PhysicsConfig) physics.World {
	return chipmunk.NewWorld(geom.Pt(0, cfg.Physics.Gravity))
}

// Options configures a Playing scene
type Options struct {
	Seed       int64              // 0 falls back to the level seed, then the clock
	RecordPath string             // non-empty enables recording
	Replay     *replay.ReplayData // non-nil plays recorded input instead of the mouse
	Audio      audio.Player       // nil is silent
	Physics    PhysicsFactory     // nil uses chipmunk
	Debug      bool               // draw body outlines and counters
	ExitAfter  bool               // quit once a replay has run out of input and nothing is moving
}

type inputSource interface {
	GetInput() (system.InputState, bool)
}

type liveInput struct {
	sys *system.InputSystem
}

func (l liveInput) GetInput() (system.InputState, bool) {
	return l.sys.GetInput(), true
}

type silent struct{}

func (silent) Play(audio.Sound) {}

// Playing is the main gameplay scene
type Playing struct {
	cfg   *config.GameConfig
	opts  Options
	match *match.Match

	source   inputSource
	replayer *replay.Replayer
	recorder *replay.Recorder
	audio    audio.Player

	screenW int
	screenH int
	dt      float64
	seed    int64

	replayDone bool
	handedOff  bool // restart passed the recorder on, so OnExit must not save
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, opts Options) *Playing {
	if opts.Replay != nil {
		opts.Seed = opts.Replay.Seed
	}
	if opts.Seed == 0 && cfg.Level != nil {
		opts.Seed = cfg.Level.Seed
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Physics == nil {
		opts.Physics = ChipmunkPhysics
	}
	if opts.Audio == nil {
		opts.Audio = silent{}
	}

	p := newPlaying(cfg, opts)

	switch {
	case opts.Replay != nil:
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.source = p.replayer
		log.Info("replaying", "frames", p.replayer.TotalFrames(), "seed", opts.Seed)
	default:
		p.source = liveInput{sys: system.NewInputSystem(p.screenH)}
	}

	if opts.RecordPath != "" && opts.Replay == nil {
		p.recorder = replay.NewRecorder(opts.Seed, p.levelName())
		log.Info("recording enabled", "path", opts.RecordPath, "seed", opts.Seed)
	}
	return p
}

func newPlaying(cfg *config.GameConfig, opts Options) *Playing {
	pc := cfg.Physics
	if pc == nil {
		pc = config.DefaultPhysicsConfig()
	}
	p := &Playing{
		cfg:     cfg,
		opts:    opts,
		audio:   opts.Audio,
		screenW: pc.Display.ScreenWidth,
		screenH: pc.Display.ScreenHeight,
		dt:      pc.Physics.Timestep,
		seed:    opts.Seed,
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	p.match = match.New(cfg, opts.Physics(pc), rng)
	p.wireSounds()
	return p
}

func (p *Playing) wireSounds() {
	p.match.OnLaunch = func(system.Launch) {
		p.audio.Play(audio.SoundLaunch)
	}
	p.match.OnDestroyed = func(_ ecs.EntityID, pig bool) {
		if pig {
			p.audio.Play(audio.SoundPop)
		}
	}
	p.match.OnAbility = func(ev system.AbilityEvent) {
		if ev.Kind == entity.KindBomb {
			p.audio.Play(audio.SoundExplosion)
			return
		}
		p.audio.Play(audio.SoundAbility)
	}
	p.match.OnEnd = func(state.GameState) {
		if s, ok := audio.SoundForAsset(p.match.EndAsset()); ok {
			p.audio.Play(s)
		}
	}
}

func (p *Playing) levelName() string {
	if p.cfg.Level == nil {
		return ""
	}
	return p.cfg.Level.Name
}

// Update advances one fixed step (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	in, ok := p.source.GetInput()
	if !ok {
		if !p.replayDone {
			p.replayDone = true
			log.Info("replay finished", "frame", p.match.Frame(), "score", p.match.Score())
		}
		if p.opts.ExitAfter && p.settled() {
			return nil, fmt.Errorf("replay finished at frame %d: %w", p.match.Frame(), scene.ErrQuit)
		}
		in = system.InputState{}
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}

	if p.match.Apply(in.Intents()) {
		return p.restart(), nil
	}
	p.match.Tick(p.dt)
	return nil, nil
}

// restart rebuilds the level with the same seed. The input source and the
// recorder carry over so a recording spanning restarts replays correctly.
func (p *Playing) restart() *Playing {
	log.Info("restarting level", "level", p.levelName(), "score", p.match.Score())

	next := newPlaying(p.cfg, p.opts)
	next.source = p.source
	next.replayer = p.replayer
	next.replayDone = p.replayDone
	next.recorder = p.recorder
	p.handedOff = true
	return next
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Error("failed to save recording", "err", err)
		return
	}
	log.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Debug("entered playing", "level", p.levelName(), "seed", p.seed)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.handedOff {
		return
	}
	p.saveRecording()
}

// settled reports whether nothing more can happen without input
func (p *Playing) settled() bool {
	return p.match.State().IsTerminal() || p.match.Snapshot().ActiveBirds == 0
}

// Match exposes the running match
func (p *Playing) Match() *match.Match { return p.match }

// Seed returns the seed the bird queue was built from
func (p *Playing) Seed() int64 { return p.seed }

// ReplayDone reports whether a replay has run out of frames
func (p *Playing) ReplayDone() bool { return p.replayDone }
