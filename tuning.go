package turnip

// Tuning holds the constants of the editor and of body physics. Distances
// are in world units, times in seconds.
type Tuning struct {
	// Radius of a spawned body.
	Radius float64
	// Gravity is the acceleration applied to bodies. Positive y points
	// down.
	Gravity Vec2
	// Accel is the acceleration along the boundary while a direction is
	// held.
	Accel float64
	// MaxSpeed caps the speed of a grounded body.
	MaxSpeed float64

	NodeHoverRadius     float64
	SegmentHoverRadius  float64
	SegmentInsertRadius float64
}

// DefaultTuning returns the tuning used when nothing else is configured.
func DefaultTuning() Tuning {
	return Tuning{
		Radius:              12,
		Gravity:             Vec(0, 600),
		Accel:               400,
		MaxSpeed:            900,
		NodeHoverRadius:     10,
		SegmentHoverRadius:  6,
		SegmentInsertRadius: 80,
	}
}
