package system

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/domain/geom"
	"github.com/younwookim/slingshot/internal/ecs"
	"github.com/younwookim/slingshot/internal/infrastructure/config"
)

// LaunchState is the slingshot phase
type LaunchState int

const (
	LaunchIdle LaunchState = iota
	LaunchAiming
	LaunchArmed
	LaunchReleased
)

// String returns the string representation of the launch state
func (s LaunchState) String() string {
	switch s {
	case LaunchIdle:
		return "Idle"
	case LaunchAiming:
		return "Aiming"
	case LaunchArmed:
		return "Armed"
	case LaunchReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// StagedBird is a bird that is visible but not simulated: the preview
// waiting next to the slingshot or the armed bird being pulled.
type StagedBird struct {
	Spec     entity.BirdSpec
	Position geom.Point2D
	Impulse  geom.ImpulseVector // zero until released
}

// Launch describes a completed release
type Launch struct {
	Entity  ecs.EntityID
	Kind    entity.BirdKind
	Impulse geom.ImpulseVector
	Applied float64 // impulse magnitude given to the body
}

// LaunchController turns press/drag/release gestures into launched birds
type LaunchController struct {
	cfg     config.LaunchConfig
	catalog entity.Catalog
	world   *ecs.World
	queue   *entity.BirdQueue

	state    LaunchState
	preview  *StagedBird
	armed    *StagedBird
	endpoint geom.Point2D

	// CanLaunch gates new aims; nil allows everything.
	CanLaunch func() bool
}

// NewLaunchController creates a controller and stages the first preview
func NewLaunchController(cfg config.LaunchConfig, catalog entity.Catalog, world *ecs.World, queue *entity.BirdQueue) *LaunchController {
	c := &LaunchController{
		cfg:     cfg,
		catalog: catalog,
		world:   world,
		queue:   queue,
	}
	c.stagePreview()
	return c
}

// Anchor returns the launch point
func (c *LaunchController) Anchor() geom.Point2D {
	return geom.Pt(c.cfg.AnchorX, c.cfg.AnchorY)
}

// PreviewAnchor returns where the next bird waits
func (c *LaunchController) PreviewAnchor() geom.Point2D {
	return geom.Pt(c.cfg.PreviewAnchorX, c.cfg.PreviewAnchorY)
}

// State returns the current phase
func (c *LaunchController) State() LaunchState { return c.state }

// Preview returns the waiting bird, or nil
func (c *LaunchController) Preview() *StagedBird { return c.preview }

// Armed returns the bird being pulled, or nil
func (c *LaunchController) Armed() *StagedBird { return c.armed }

// Endpoint returns the clamped aim point
func (c *LaunchController) Endpoint() geom.Point2D { return c.endpoint }

// Aiming reports whether a gesture is in progress
func (c *LaunchController) Aiming() bool {
	return c.state == LaunchAiming || c.state == LaunchArmed
}

func (c *LaunchController) allowed() bool {
	return c.CanLaunch == nil || c.CanLaunch()
}

func (c *LaunchController) stagePreview() {
	spec := c.catalog.Spec(c.queue.PeekNext())
	c.preview = &StagedBird{Spec: spec, Position: c.PreviewAnchor()}
}

// PressStart begins aiming when p is on the slingshot.
// It returns false when the press is ignored.
func (c *LaunchController) PressStart(p geom.Point2D) bool {
	if c.state != LaunchIdle || c.preview == nil || !c.allowed() {
		return false
	}
	anchor := c.Anchor()
	if geom.DistanceBetween(anchor, p) > c.cfg.HitRadius {
		return false
	}

	c.armed = c.preview
	c.preview = nil
	c.armed.Position = anchor
	c.endpoint = anchor
	c.state = LaunchAiming
	log.Debug("aim started", "point", p, "kind", c.armed.Spec.Kind)
	return true
}

// Drag moves the aim point, clamped to the maximum pull
func (c *LaunchController) Drag(p geom.Point2D) {
	if !c.Aiming() {
		return
	}
	c.endpoint = geom.ClampOffset(c.Anchor(), p, c.cfg.MaxPull)
	c.armed.Position = c.endpoint
	c.state = LaunchArmed
}

// Cancel puts the armed bird back in the preview slot
func (c *LaunchController) Cancel() {
	if !c.Aiming() {
		return
	}
	c.armed.Position = c.PreviewAnchor()
	c.armed.Impulse = geom.ImpulseVector{}
	c.preview = c.armed
	c.armed = nil
	c.state = LaunchIdle
	log.Debug("aim cancelled")
}

// Release launches the armed bird. The controller is left in
// LaunchReleased until Restage is called.
func (c *LaunchController) Release(p geom.Point2D) (Launch, bool) {
	if !c.Aiming() || !c.allowed() {
		return Launch{}, false
	}
	c.Drag(p)

	anchor := c.Anchor()
	if geom.DistanceBetween(anchor, c.endpoint) < c.cfg.MinDrag {
		c.Cancel()
		return Launch{}, false
	}

	impulse := geom.ComputeImpulseWith(anchor, c.endpoint, c.cfg.MaxDrag, c.cfg.ImpulseScale)
	spec := c.armed.Spec
	applied := spec.LaunchImpulse(impulse.Impulse)

	id := c.world.CreateBird(spec, anchor)
	c.world.Physics().ApplyImpulseLocal(c.world.Body[id].ID, geom.ImpulseVector{Angle: impulse.Angle, Impulse: applied}.Vector(1))

	c.queue.TakeNext()
	c.armed = nil
	c.state = LaunchReleased

	log.Debug("bird launched", "kind", spec.Kind, "angle", impulse.Angle, "impulse", impulse.Impulse, "applied", applied)
	return Launch{Entity: id, Kind: spec.Kind, Impulse: impulse, Applied: applied}, true
}

// Restage returns to Idle, staging a new preview when more launches remain
func (c *LaunchController) Restage(more bool) {
	if more {
		c.stagePreview()
	} else {
		c.preview = nil
	}
	c.state = LaunchIdle
}
