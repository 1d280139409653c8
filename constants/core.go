package constants

import "time"

// Main Loop Timing
const (
	// FrameUpdateInterval is the render poll period (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// Animation Cadence
// Each animated panel owns its gate; intervals are not shared
const (
	// ListAdvanceInterval moves the start panel list highlight
	ListAdvanceInterval = 100 * time.Millisecond

	// OffsetAnimInterval steps the canvas rectangle oscillation
	OffsetAnimInterval = 100 * time.Millisecond

	// TorusSpinInterval advances the torus rotation angles
	TorusSpinInterval = 30 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "rat.log"

	// MaxLogSize triggers rotation of the existing log file at startup
	MaxLogSize = 10 * 1024 * 1024
)
