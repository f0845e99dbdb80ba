package config

// Defaults applied to zero-valued fields of physics.json
const (
	DefaultScreenWidth  = 1800
	DefaultScreenHeight = 800
	DefaultFramerate    = 60

	DefaultGravity        = -900.0
	DefaultTimestep       = 1.0 / 60.0
	DefaultGroundY        = 15.0
	DefaultGroundFriction = 10.0

	DefaultAnchorX        = 200.0
	DefaultAnchorY        = 240.0
	DefaultPreviewAnchorX = 140.0
	DefaultPreviewAnchorY = 40.0
	DefaultHitRadius      = 60.0
	DefaultMaxPull        = 120.0
	DefaultMaxDrag        = 200.0
	DefaultImpulseScale   = 100.0
	DefaultTrajectoryDots = 20
	DefaultTrajectoryStep = 0.05 // seconds between dots

	DefaultIgnoreBelow  = 100.0
	DefaultDestroyAbove = 800.0
	DefaultPointsPerPig = 500

	DefaultGroundThreshold = 30.0
	DefaultGrace           = 2.0

	DefaultMaxAttempts = 5
	DefaultQueueSize   = 5

	DefaultSplitSpreadDeg          = 45.0
	DefaultSplitSpeedScale         = 1.2
	DefaultSplitMassScale          = 0.5
	DefaultSplitRadiusScale        = 0.6
	DefaultSpeedBoost              = 1.5
	DefaultExplosionRadius         = 150.0
	DefaultExplosionForce          = 500.0
	DefaultExplosionEffectDuration = 0.5
)

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Physics   PhysicsSettings `json:"physics"`
	Launch    LaunchConfig    `json:"launch"`
	Collision CollisionConfig `json:"collision"`
	Settle    SettleConfig    `json:"settle"`
	Match     MatchConfig     `json:"match"`
	Abilities AbilityConfig   `json:"abilities"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type PhysicsSettings struct {
	Gravity        float64 `json:"gravity"` // y-up, negative pulls down
	Timestep       float64 `json:"timestep"`
	GroundY        float64 `json:"groundY"`
	GroundFriction float64 `json:"groundFriction"`
}

// LaunchConfig configures the slingshot
type LaunchConfig struct {
	AnchorX        float64 `json:"anchorX"`
	AnchorY        float64 `json:"anchorY"`
	PreviewAnchorX float64 `json:"previewAnchorX"` // where the next bird waits
	PreviewAnchorY float64 `json:"previewAnchorY"`
	HitRadius      float64 `json:"hitRadius"` // press must land this close to the anchor
	MaxPull        float64 `json:"maxPull"`   // visual pull clamp
	MaxDrag        float64 `json:"maxDrag"`   // drag distance giving full impulse
	ImpulseScale   float64 `json:"impulseScale"`
	MinDrag        float64 `json:"minDrag"` // shorter releases cancel the aim
	TrajectoryDots int     `json:"trajectoryDots"`
	TrajectoryStep float64 `json:"trajectoryStep"`
}

// CollisionConfig configures impulse thresholds and scoring
type CollisionConfig struct {
	IgnoreBelow  float64 `json:"ignoreBelow"`
	DestroyAbove float64 `json:"destroyAbove"`
	PointsPerPig int     `json:"pointsPerPig"`
}

// SettleConfig configures removal of resting birds
type SettleConfig struct {
	GroundThreshold float64 `json:"groundThreshold"`
	Grace           float64 `json:"grace"` // seconds
}

type MatchConfig struct {
	MaxAttempts int `json:"maxAttempts"`
	QueueSize   int `json:"queueSize"`
}

// AbilityConfig configures the special abilities
type AbilityConfig struct {
	SplitSpreadDeg          float64 `json:"splitSpreadDeg"`
	SplitSpeedScale         float64 `json:"splitSpeedScale"`
	SplitMassScale          float64 `json:"splitMassScale"`
	SplitRadiusScale        float64 `json:"splitRadiusScale"`
	SpeedBoost              float64 `json:"speedBoost"`
	ExplosionRadius         float64 `json:"explosionRadius"`
	ExplosionForce          float64 `json:"explosionForce"`
	ExplosionEffectDuration float64 `json:"explosionEffectDuration"`
}

func orFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func orInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// ApplyDefaults fills zero-valued fields with the package defaults
func (c *PhysicsConfig) ApplyDefaults() {
	orInt(&c.Display.ScreenWidth, DefaultScreenWidth)
	orInt(&c.Display.ScreenHeight, DefaultScreenHeight)
	orInt(&c.Display.Framerate, DefaultFramerate)
	if c.Display.Title == "" {
		c.Display.Title = "Slingshot"
	}

	orFloat(&c.Physics.Gravity, DefaultGravity)
	orFloat(&c.Physics.Timestep, DefaultTimestep)
	orFloat(&c.Physics.GroundY, DefaultGroundY)
	orFloat(&c.Physics.GroundFriction, DefaultGroundFriction)

	c.Launch.ApplyDefaults()
	c.Collision.ApplyDefaults()
	c.Settle.ApplyDefaults()

	orInt(&c.Match.MaxAttempts, DefaultMaxAttempts)
	orInt(&c.Match.QueueSize, DefaultQueueSize)

	c.Abilities.ApplyDefaults()
}

// ApplyDefaults fills zero-valued fields. MinDrag stays 0 when unset.
func (c *LaunchConfig) ApplyDefaults() {
	orFloat(&c.AnchorX, DefaultAnchorX)
	orFloat(&c.AnchorY, DefaultAnchorY)
	orFloat(&c.PreviewAnchorX, DefaultPreviewAnchorX)
	orFloat(&c.PreviewAnchorY, DefaultPreviewAnchorY)
	orFloat(&c.HitRadius, DefaultHitRadius)
	orFloat(&c.MaxPull, DefaultMaxPull)
	orFloat(&c.MaxDrag, DefaultMaxDrag)
	orFloat(&c.ImpulseScale, DefaultImpulseScale)
	orInt(&c.TrajectoryDots, DefaultTrajectoryDots)
	orFloat(&c.TrajectoryStep, DefaultTrajectoryStep)
}

func (c *CollisionConfig) ApplyDefaults() {
	orFloat(&c.IgnoreBelow, DefaultIgnoreBelow)
	orFloat(&c.DestroyAbove, DefaultDestroyAbove)
	orInt(&c.PointsPerPig, DefaultPointsPerPig)
}

func (c *SettleConfig) ApplyDefaults() {
	orFloat(&c.GroundThreshold, DefaultGroundThreshold)
	orFloat(&c.Grace, DefaultGrace)
}

func (c *AbilityConfig) ApplyDefaults() {
	orFloat(&c.SplitSpreadDeg, DefaultSplitSpreadDeg)
	orFloat(&c.SplitSpeedScale, DefaultSplitSpeedScale)
	orFloat(&c.SplitMassScale, DefaultSplitMassScale)
	orFloat(&c.SplitRadiusScale, DefaultSplitRadiusScale)
	orFloat(&c.SpeedBoost, DefaultSpeedBoost)
	orFloat(&c.ExplosionRadius, DefaultExplosionRadius)
	orFloat(&c.ExplosionForce, DefaultExplosionForce)
	orFloat(&c.ExplosionEffectDuration, DefaultExplosionEffectDuration)
}

// DefaultPhysicsConfig returns a config with every default applied
func DefaultPhysicsConfig() *PhysicsConfig {
	c := &PhysicsConfig{}
	c.ApplyDefaults()
	return c
}
