package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// PingGenerator generates a sine ping with a linear attack and exponential tail
type PingGenerator struct {
	sr       beep.SampleRate
	freq     float64
	attack   int
	duration int
	pos      int
}

// NewPingGenerator creates a ping at freq lasting the bounce duration
func NewPingGenerator(sr beep.SampleRate, freq float64) *PingGenerator {
	return &PingGenerator{
		sr:       sr,
		freq:     freq,
		attack:   sr.N(bounceAttackMs * time.Millisecond),
		duration: sr.N(bounceDurationMs * time.Millisecond),
	}
}

func (g *PingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.duration {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.duration {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		var envelope float64
		if g.pos < g.attack {
			envelope = float64(g.pos) / float64(g.attack)
		} else {
			rest := float64(g.pos-g.attack) / float64(g.duration-g.attack)
			envelope = math.Exp(-rest * 5)
		}

		sample := math.Sin(2 * math.Pi * g.freq * t)
		sample += bounceOvertoneMix * math.Sin(2*math.Pi*g.freq*bounceOvertoneFactor*t)
		sample *= envelope * bounceAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PingGenerator) Err() error {
	return nil
}

// ThumpGenerator generates a decaying low sine
type ThumpGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewThumpGenerator creates a thump generator
func NewThumpGenerator(sr beep.SampleRate) *ThumpGenerator {
	return &ThumpGenerator{sr: sr}
}

func (g *ThumpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := switchAmplitude * math.Exp(-t*switchDecayRate) * math.Sin(2*math.Pi*switchFrequencyHz*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThumpGenerator) Err() error {
	return nil
}
