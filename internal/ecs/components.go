package ecs

import (
	"image/color"

	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/physics"
)

// SpriteShape selects how an entity is drawn
type SpriteShape int

const (
	SpriteCircle SpriteShape = iota
	SpriteBox
	SpriteBurst // explosion ring
)

// Sprite holds render parameters. The position comes from the body.
type Sprite struct {
	Shape  SpriteShape
	Radius float64 // circles and bursts
	Width  float64 // boxes
	Height float64 // boxes
	Color  color.RGBA
}

// Body links an entity to its physics body
type Body struct {
	ID physics.BodyID
}

// Effect is a short-lived visual without a body
type Effect struct {
	X, Y      float64
	Remaining float64 // seconds
	Duration  float64 // seconds
}

// Progress returns 0 at spawn and 1 at expiry
func (e Effect) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := 1 - e.Remaining/e.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Default colors for non-bird sprites
var (
	PigColor    = color.RGBA{90, 200, 70, 255}
	ColumnColor = color.RGBA{150, 100, 50, 255}
	BurstColor  = color.RGBA{255, 150, 30, 255}
)

// BirdSprite returns the sprite for a bird of the given spec
func BirdSprite(spec entity.BirdSpec, radius float64) Sprite {
	return Sprite{
		Shape:  SpriteCircle,
		Radius: radius,
		Color:  entity.KindColors[spec.Kind],
	}
}
