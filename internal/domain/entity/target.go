package entity

// PigSpec holds body parameters for targets
type PigSpec struct {
	Mass       float64
	Radius     float64
	Elasticity float64
	Friction   float64
}

// DefaultPigSpec returns the built-in target parameters
func DefaultPigSpec() PigSpec {
	return PigSpec{
		Mass:       2,
		Radius:     17,
		Elasticity: 0.8,
		Friction:   0.4,
	}
}

// ColumnSpec holds body parameters for obstacles
type ColumnSpec struct {
	Mass       float64
	Width      float64
	Height     float64
	Elasticity float64
	Friction   float64
}

// DefaultColumnSpec returns the built-in obstacle parameters
func DefaultColumnSpec() ColumnSpec {
	return ColumnSpec{
		Mass:       2,
		Width:      20,
		Height:     70,
		Elasticity: 0.8,
		Friction:   1,
	}
}
