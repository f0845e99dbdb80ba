package entity

import "image/color"

// BirdKind identifies a projectile variant
type BirdKind int

const (
	KindRed   BirdKind = iota // basic, no ability
	KindBlue                  // splits in three
	KindChuck                 // speed boost
	KindBomb                  // explodes

	kindCount
)

// AllKinds lists every bird kind in declaration order
var AllKinds = []BirdKind{KindRed, KindBlue, KindChuck, KindBomb}

// KindColors maps bird kinds to their render colors
var KindColors = map[BirdKind]color.RGBA{
	KindRed:   {220, 40, 40, 255},
	KindBlue:  {70, 140, 255, 255},
	KindChuck: {250, 210, 40, 255},
	KindBomb:  {30, 30, 30, 255},
}

// String returns the config key of the kind
func (k BirdKind) String() string {
	switch k {
	case KindRed:
		return "red"
	case KindBlue:
		return "blue"
	case KindChuck:
		return "chuck"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared kinds
func (k BirdKind) Valid() bool {
	return k >= KindRed && k < kindCount
}

// ParseBirdKind returns the kind for a config key
func ParseBirdKind(s string) (BirdKind, bool) {
	for _, k := range AllKinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
