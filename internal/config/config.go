package config

const (
	WindowWidth  = 1024
	WindowHeight = 768

	AppName = "purpletab"

	// Wave sampling
	SampleStride = 8 // pixels between curve samples

	// Cursor ripple
	RippleRadius   = 90.0 // gaussian sigma, pixels
	RippleStrength = 0.04 // peak push, fraction of height

	// Audio ambience
	SwellGain       = 0.6
	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Search button
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Notifications stay on screen this many ticks.
	ToastTicks = 180

	MaxShortcuts = 20
)

// Environment names accepted in PURPLETAB_ENV.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)
