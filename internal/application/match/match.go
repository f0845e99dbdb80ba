// Package match holds the aggregate that owns one round of play: score,
// attempts, the bird queue, the entity arena and the systems that act on it.
package match

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/slingshot/internal/application/state"
	"github.com/younwookim/slingshot/internal/application/system"
	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/domain/geom"
	"github.com/younwookim/slingshot/internal/ecs"
	"github.com/younwookim/slingshot/internal/infrastructure/config"
	"github.com/younwookim/slingshot/internal/physics"
)

// Snapshot is a read-only view for the HUD and tests
type Snapshot struct {
	Score        int
	AttemptsLeft int
	PigsLeft     int
	ActiveBirds  int
	State        state.GameState
}

// Match is one round on one level
type Match struct {
	cfg     *config.PhysicsConfig
	level   *config.LevelConfig
	catalog entity.Catalog

	physics physics.World
	world   *ecs.World
	queue   *entity.BirdQueue
	ground  physics.BodyID

	launch     *system.LaunchController
	abilities  *system.AbilitySystem
	collisions *system.CollisionResolver
	settle     *system.SettleTracker

	score        int
	attemptsLeft int
	state        state.GameState
	frame        int

	logger *log.Logger

	// Event callbacks
	OnLaunch    func(l system.Launch)
	OnDestroyed func(id ecs.EntityID, pig bool)
	OnAbility   func(ev system.AbilityEvent)
	OnEnd       func(s state.GameState)
}

// New builds a match from cfg on top of pw. rng drives the bird queue.
func New(cfg *config.GameConfig, pw physics.World, rng *rand.Rand) *Match {
	pc := cfg.Physics
	if pc == nil {
		pc = config.DefaultPhysicsConfig()
	}
	m := &Match{
		cfg:          pc,
		level:        cfg.Level,
		catalog:      cfg.Entities.Catalog(),
		physics:      pw,
		world:        ecs.NewWorld(pw),
		queue:        entity.NewBirdQueue(rng, pc.Match.QueueSize),
		attemptsLeft: pc.Match.MaxAttempts,
		state:        state.StatePlaying,
		logger:       log.WithPrefix("match"),
	}

	m.ground = pw.AddGround(
		geom.Pt(0, pc.Physics.GroundY),
		geom.Pt(float64(pc.Display.ScreenWidth), pc.Physics.GroundY),
		pc.Physics.GroundFriction,
	)
	if m.level != nil {
		columnSpec := cfg.Entities.ColumnSpec()
		for _, c := range m.level.Columns {
			m.world.CreateColumn(columnSpec, geom.Pt(c.X, c.Y))
		}
		pigSpec := cfg.Entities.PigSpec()
		for _, p := range m.level.Pigs {
			m.world.CreatePig(pigSpec, geom.Pt(p.X, p.Y))
		}
	}

	m.launch = system.NewLaunchController(pc.Launch, m.catalog, m.world, m.queue)
	m.launch.CanLaunch = func() bool {
		return m.state == state.StatePlaying && m.attemptsLeft > 0
	}

	m.abilities = system.NewAbilitySystem(pc.Abilities, m.catalog, m.world)
	m.abilities.OnAbility = func(ev system.AbilityEvent) {
		if m.OnAbility != nil {
			m.OnAbility(ev)
		}
	}

	m.collisions = system.NewCollisionResolver(pc.Collision, m.world)
	m.collisions.OnDestroyed = func(id ecs.EntityID, pig bool) {
		if m.OnDestroyed != nil {
			m.OnDestroyed(id, pig)
		}
	}

	m.settle = system.NewSettleTracker(pc.Settle, m.world)

	levelName := ""
	if m.level != nil {
		levelName = m.level.Name
	}
	m.logger.Info("match started", "level", levelName, "pigs", m.world.CountPigs(), "attempts", m.attemptsLeft)
	return m
}

// PressStart begins aiming. It returns false when the press was ignored.
func (m *Match) PressStart(p geom.Point2D) bool {
	if m.state.IsTerminal() {
		return false
	}
	return m.launch.PressStart(p)
}

// Drag moves the aim point
func (m *Match) Drag(p geom.Point2D) {
	if m.state.IsTerminal() {
		return
	}
	m.launch.Drag(p)
}

// Release launches the armed bird and consumes one attempt
func (m *Match) Release(p geom.Point2D) bool {
	if m.state.IsTerminal() {
		return false
	}
	l, ok := m.launch.Release(p)
	if !ok {
		return false
	}
	m.attemptsLeft--
	m.launch.Restage(m.attemptsLeft > 0)

	m.logger.Info("launch", "kind", l.Kind, "impulse", l.Impulse.Impulse, "attempts", m.attemptsLeft)
	if m.OnLaunch != nil {
		m.OnLaunch(l)
	}
	return true
}

// CancelAim returns the armed bird to the preview slot
func (m *Match) CancelAim() {
	if m.state.IsTerminal() {
		return
	}
	m.launch.Cancel()
}

// TriggerAbilities fires every available ability of the birds in flight
func (m *Match) TriggerAbilities() []system.AbilityEvent {
	if m.state.IsTerminal() {
		return nil
	}
	return m.abilities.Trigger()
}

// Apply dispatches player intents in order. It reports whether a
// restart was requested, which is for the caller to act on.
func (m *Match) Apply(intents []system.Intent) (restart bool) {
	for _, in := range intents {
		switch in := in.(type) {
		case system.PressIntent:
			m.PressStart(in.Point)
		case system.DragIntent:
			m.Drag(in.Point)
		case system.ReleaseIntent:
			m.Release(in.Point)
		case system.CancelIntent:
			m.CancelAim()
		case system.AbilityIntent:
			m.TriggerAbilities()
		case system.RestartIntent:
			restart = true
		}
	}
	return restart
}

// Tick advances the match by one fixed step: physics, collisions,
// settle sweep, then the end check.
func (m *Match) Tick(dt float64) {
	if m.state.IsTerminal() {
		return
	}
	m.frame++

	contacts := m.physics.Step(dt)
	res := m.collisions.Resolve(contacts)
	if res.Points > 0 {
		m.score += res.Points
		m.logger.Info("pigs destroyed", "count", res.PigsDestroyed, "score", m.score)
	}

	m.settle.Update(dt)
	m.evaluate()
}

func (m *Match) evaluate() {
	next := m.state
	switch {
	case m.world.CountPigs() == 0:
		next = state.StateWon
	case m.attemptsLeft == 0 && m.world.CountBirds() == 0:
		next = state.StateLost
	}
	if next == m.state {
		return
	}

	m.state = next
	if m.launch.Aiming() {
		m.launch.Cancel()
	}
	m.logger.Info("match over", "state", next, "score", m.score, "frame", m.frame)
	if m.OnEnd != nil {
		m.OnEnd(next)
	}
}

// Snapshot returns the current counters
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Score:        m.score,
		AttemptsLeft: m.attemptsLeft,
		PigsLeft:     m.world.CountPigs(),
		ActiveBirds:  m.world.CountBirds(),
		State:        m.state,
	}
}

// EndAsset names the overlay and jingle for the final state, or "" while playing
func (m *Match) EndAsset() string {
	switch m.state {
	case state.StateWon:
		return "win"
	case state.StateLost:
		return "lose"
	}
	return ""
}

// Trajectory returns the predicted path of the armed bird, or nil when not aiming
func (m *Match) Trajectory() []geom.Point2D {
	armed := m.launch.Armed()
	if armed == nil {
		return nil
	}
	lc := m.cfg.Launch
	anchor := m.launch.Anchor()
	impulse := geom.ComputeImpulseWith(anchor, m.launch.Endpoint(), lc.MaxDrag, lc.ImpulseScale)
	return system.PredictTrajectory(armed.Spec, anchor, impulse, m.cfg.Physics.Gravity, lc.TrajectoryDots, lc.TrajectoryStep)
}

// State returns the match phase
func (m *Match) State() state.GameState { return m.state }

// Score returns the points earned so far
func (m *Match) Score() int { return m.score }

// AttemptsLeft returns the launches remaining
func (m *Match) AttemptsLeft() int { return m.attemptsLeft }

// Frame returns the number of ticks simulated
func (m *Match) Frame() int { return m.frame }

// World returns the entity arena
func (m *Match) World() *ecs.World { return m.world }

// Launcher returns the slingshot controller
func (m *Match) Launcher() *system.LaunchController { return m.launch }

// Queue returns the bird queue
func (m *Match) Queue() *entity.BirdQueue { return m.queue }

// Catalog returns the bird table in use
func (m *Match) Catalog() entity.Catalog { return m.catalog }

// Config returns the tuning in use
func (m *Match) Config() *config.PhysicsConfig { return m.cfg }
