package constant

import "time"

// Simulation timing
const (
	// TickInterval paces the simulation and render loop (~60 FPS)
	TickInterval = 16 * time.Millisecond
)

// Arena geometry, in terminal cell units
const (
	// NodeRadius is the collision radius of every instrument node
	NodeRadius = 3.0

	// ArrivalThreshold is the distance to a target's center counted as reached
	ArrivalThreshold = 5.0

	// LayoutRadiusRatio places the initial node ring relative to min(w, h)
	LayoutRadiusRatio = 0.35
)

// Movement defaults, cells per tick before user multipliers
const (
	DefaultPuckSpeed = 0.8

	NodeSpeedMin = 0.05
	NodeSpeedMax = 0.15
)

// User-adjustable multiplier bounds
const (
	SpeedMultiplierMin  = 0.1
	SpeedMultiplierMax  = 8.0
	SpeedMultiplierStep = 0.1
)

// DefaultNodeCount is the number of instruments laid out at startup
const DefaultNodeCount = 6
