package entity

// Default bird tuning, taken from the launch feel of the reference levels.
const (
	DefaultMaxImpulse      = 100.0
	DefaultPowerMultiplier = 50.0
	DefaultElasticity      = 0.8
	DefaultFriction        = 1.0
)

// BirdSpec holds the static parameters of a bird kind
type BirdSpec struct {
	Kind              BirdKind
	Mass              float64
	Radius            float64
	Scale             float64 // sprite scale
	MaxImpulse        float64 // ceiling applied before the power multiplier
	PowerMultiplier   float64
	Elasticity        float64
	Friction          float64
	HasSpecialAbility bool
}

// LaunchImpulse returns the magnitude applied to the body for a raw impulse
func (s BirdSpec) LaunchImpulse(impulse float64) float64 {
	if impulse > s.MaxImpulse {
		impulse = s.MaxImpulse
	}
	return impulse * s.PowerMultiplier
}

// Catalog maps each kind to its spec
type Catalog map[BirdKind]BirdSpec

// DefaultCatalog returns the built-in bird table
func DefaultCatalog() Catalog {
	return Catalog{
		KindRed: {
			Kind:            KindRed,
			Mass:            5,
			Radius:          12,
			Scale:           1,
			MaxImpulse:      DefaultMaxImpulse,
			PowerMultiplier: DefaultPowerMultiplier,
			Elasticity:      DefaultElasticity,
			Friction:        DefaultFriction,
		},
		KindBlue: {
			Kind:              KindBlue,
			Mass:              4,
			Radius:            10,
			Scale:             0.4,
			MaxImpulse:        DefaultMaxImpulse,
			PowerMultiplier:   DefaultPowerMultiplier,
			Elasticity:        DefaultElasticity,
			Friction:          DefaultFriction,
			HasSpecialAbility: true,
		},
		KindChuck: {
			Kind:              KindChuck,
			Mass:              3,
			Radius:            11,
			Scale:             0.08,
			MaxImpulse:        DefaultMaxImpulse,
			PowerMultiplier:   60,
			Elasticity:        DefaultElasticity,
			Friction:          DefaultFriction,
			HasSpecialAbility: true,
		},
		KindBomb: {
			Kind:              KindBomb,
			Mass:              8,
			Radius:            14,
			Scale:             0.08,
			MaxImpulse:        DefaultMaxImpulse,
			PowerMultiplier:   40,
			Elasticity:        DefaultElasticity,
			Friction:          DefaultFriction,
			HasSpecialAbility: true,
		},
	}
}

// Spec returns the spec for kind, falling back to the red bird
func (c Catalog) Spec(kind BirdKind) BirdSpec {
	if s, ok := c[kind]; ok {
		return s
	}
	return c[KindRed]
}

// Bird is the per-instance state of a launched (or staged) bird.
// Position and velocity live on the physics body.
type Bird struct {
	Kind              BirdKind
	HasSpecialAbility bool
	AbilityUsed       bool
	Child             bool // spawned by a split

	// SettleTimer accumulates time spent resting near the ground.
	SettleTimer float64
}

// NewBird creates a bird of the given spec
func NewBird(spec BirdSpec) Bird {
	return Bird{
		Kind:              spec.Kind,
		HasSpecialAbility: spec.HasSpecialAbility,
	}
}

// NewChildBird creates a split fragment, which never has an ability
func NewChildBird(kind BirdKind) Bird {
	return Bird{Kind: kind, Child: true}
}

// CanUseAbility reports whether the ability may still be triggered
func (b *Bird) CanUseAbility() bool {
	return b.HasSpecialAbility && !b.AbilityUsed
}

// MarkAbilityUsed consumes the ability. It returns false if it was not available.
func (b *Bird) MarkAbilityUsed() bool {
	if !b.CanUseAbility() {
		return false
	}
	b.AbilityUsed = true
	return true
}

// Settle adds dt to the settle timer when y is at or below threshold.
// It returns true once the timer has reached grace.
func (b *Bird) Settle(y, threshold, dt, grace float64) bool {
	if y <= threshold {
		b.SettleTimer += dt
	}
	return b.SettleTimer >= grace-settleEpsilon
}

// settleEpsilon absorbs float drift from summing frame deltas
const settleEpsilon = 1e-9
