package config

import (
	"fmt"

	"github.com/younwookim/slingshot/internal/domain/entity"
)

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Birds  map[string]BirdConfig `json:"birds"` // keyed by kind: red, blue, chuck, bomb
	Pig    BodyConfig            `json:"pig"`
	Column BodyConfig            `json:"column"`
}

// BirdConfig overrides a catalog entry. Zero fields keep the built-in value.
type BirdConfig struct {
	Mass            float64 `json:"mass"`
	Radius          float64 `json:"radius"`
	Scale           float64 `json:"scale"`
	MaxImpulse      float64 `json:"maxImpulse"`
	PowerMultiplier float64 `json:"powerMultiplier"`
	Elasticity      float64 `json:"elasticity"`
	Friction        float64 `json:"friction"`
}

// BodyConfig holds body params for pigs (Radius) and columns (Width, Height)
type BodyConfig struct {
	Mass       float64 `json:"mass"`
	Radius     float64 `json:"radius"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Elasticity float64 `json:"elasticity"`
	Friction   float64 `json:"friction"`
}

// Validate checks that every bird key names a known kind
func (c *EntitiesConfig) Validate() error {
	for key := range c.Birds {
		if _, ok := entity.ParseBirdKind(key); !ok {
			return fmt.Errorf("unknown bird kind %q", key)
		}
	}
	return nil
}

// Catalog returns the built-in catalog with the overrides applied
func (c *EntitiesConfig) Catalog() entity.Catalog {
	catalog := entity.DefaultCatalog()
	if c == nil {
		return catalog
	}
	for key, bc := range c.Birds {
		kind, ok := entity.ParseBirdKind(key)
		if !ok {
			continue
		}
		spec := catalog[kind]
		orFloat(&bc.Mass, spec.Mass)
		orFloat(&bc.Radius, spec.Radius)
		orFloat(&bc.Scale, spec.Scale)
		orFloat(&bc.MaxImpulse, spec.MaxImpulse)
		orFloat(&bc.PowerMultiplier, spec.PowerMultiplier)
		orFloat(&bc.Elasticity, spec.Elasticity)
		orFloat(&bc.Friction, spec.Friction)

		spec.Mass = bc.Mass
		spec.Radius = bc.Radius
		spec.Scale = bc.Scale
		spec.MaxImpulse = bc.MaxImpulse
		spec.PowerMultiplier = bc.PowerMultiplier
		spec.Elasticity = bc.Elasticity
		spec.Friction = bc.Friction
		catalog[kind] = spec
	}
	return catalog
}

// PigSpec returns the target body params
func (c *EntitiesConfig) PigSpec() entity.PigSpec {
	s := entity.DefaultPigSpec()
	if c == nil {
		return s
	}
	b := c.Pig
	orFloat(&b.Mass, s.Mass)
	orFloat(&b.Radius, s.Radius)
	orFloat(&b.Elasticity, s.Elasticity)
	orFloat(&b.Friction, s.Friction)
	return entity.PigSpec{
		Mass:       b.Mass,
		Radius:     b.Radius,
		Elasticity: b.Elasticity,
		Friction:   b.Friction,
	}
}

// ColumnSpec returns the obstacle body params
func (c *EntitiesConfig) ColumnSpec() entity.ColumnSpec {
	s := entity.DefaultColumnSpec()
	if c == nil {
		return s
	}
	b := c.Column
	orFloat(&b.Mass, s.Mass)
	orFloat(&b.Width, s.Width)
	orFloat(&b.Height, s.Height)
	orFloat(&b.Elasticity, s.Elasticity)
	orFloat(&b.Friction, s.Friction)
	return entity.ColumnSpec{
		Mass:       b.Mass,
		Width:      b.Width,
		Height:     b.Height,
		Elasticity: b.Elasticity,
		Friction:   b.Friction,
	}
}
