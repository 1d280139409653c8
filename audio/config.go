package audio

import "github.com/gopxl/beep"

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100
)

// Bounce cue: a short pitched ping when the movers turn around
const (
	bounceDurationMs     = 90
	bounceAttackMs       = 4
	bounceGrowHz         = 440.0
	bounceShrinkHz       = 330.0
	bounceAmplitude      = 0.25
	bounceOvertoneFactor = 2.0
	bounceOvertoneMix    = 0.3
)

// Switch cue: a soft low thump on panel change
const (
	switchDurationMs  = 60
	switchFrequencyHz = 110.0
	switchAmplitude   = 0.2
	switchDecayRate   = 40.0
)
