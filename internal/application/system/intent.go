package system

import "github.com/younwookim/slingshot/internal/domain/geom"

// Intent represents an action the player wants to perform
type Intent interface {
	isIntent()
}

// PressIntent starts an aim at a world point
type PressIntent struct {
	Point geom.Point2D
}

func (PressIntent) isIntent() {}

// DragIntent moves the aim point
type DragIntent struct {
	Point geom.Point2D
}

func (DragIntent) isIntent() {}

// ReleaseIntent lets go of the slingshot
type ReleaseIntent struct {
	Point geom.Point2D
}

func (ReleaseIntent) isIntent() {}

// CancelIntent abandons the current aim
type CancelIntent struct{}

func (CancelIntent) isIntent() {}

// AbilityIntent triggers the abilities of birds in flight
type AbilityIntent struct{}

func (AbilityIntent) isIntent() {}

// RestartIntent asks for a fresh match
type RestartIntent struct{}

func (RestartIntent) isIntent() {}
