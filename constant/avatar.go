package constant

// Avatar Animation
const (
	// BobAmplitude / BobRate drive the idle float of active agents
	BobAmplitude = 3.0
	BobRate      = 2.5

	// ErrorPulseBase / ErrorPulseAmp / ErrorPulseRate drive the error pulse
	ErrorPulseBase = 0.85
	ErrorPulseAmp  = 0.15
	ErrorPulseRate = 5.0

	// AgentWalkInterval is the walk-frame cycle period for active agents
	AgentWalkInterval = 0.2

	// IdleAlpha dims idle agents
	IdleAlpha = 0.6

	// HoverScale is applied to a hovered, non-idle avatar
	HoverScale = 1.1

	// AvatarHitHalfW / AvatarHitHalfH are the pointer hit-test half-extents
	AvatarHitHalfW = 20.0
	AvatarHitHalfH = 24.0
)

// Sub-Agent Visualization
const (
	// SubOrbitRadius is the semicircle radius beneath the parent avatar
	SubOrbitRadius = 36.0

	// SubFadeRate is the alpha ramp speed per second, both in and out
	SubFadeRate = 2.0

	// SubMaxAlpha caps sub-agent opacity below full
	SubMaxAlpha = 0.85
)
