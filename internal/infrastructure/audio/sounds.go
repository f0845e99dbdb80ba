package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound identifies a synthesized effect.
type Sound int

const (
	SoundLaunch Sound = iota
	SoundAbility
	SoundPop
	SoundExplosion
	SoundWin
	SoundLose
)

var soundNames = map[Sound]string{
	SoundLaunch:    "launch",
	SoundAbility:   "ability",
	SoundPop:       "pop",
	SoundExplosion: "explosion",
	SoundWin:       "win",
	SoundLose:      "lose",
}

func (s Sound) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "unknown"
}

// SoundForAsset maps an end-of-match asset name ("win"/"lose") to its sound.
func SoundForAsset(name string) (Sound, bool) {
	switch name {
	case "win":
		return SoundWin, true
	case "lose":
		return SoundLose, true
	}
	return 0, false
}

const (
	launchDuration    = 250 * time.Millisecond
	abilityDuration   = 120 * time.Millisecond
	popDuration       = 90 * time.Millisecond
	explosionDuration = 450 * time.Millisecond
	noteDuration      = 140 * time.Millisecond
)

// launch: rising whistle
func createLaunch(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(300, 900, launchDuration, WaveSine, rate)
	return NewEnvelope(osc, launchDuration, 10*time.Millisecond, 120*time.Millisecond, rate)
}

func createAbility(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(1200, 1600, abilityDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, abilityDuration, 5*time.Millisecond, 60*time.Millisecond, rate), 0.4)
}

func createPop(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(700, 200, popDuration, WaveSine, rate)
	return NewEnvelope(osc, popDuration, 2*time.Millisecond, 70*time.Millisecond, rate)
}

// explosion: filtered-sounding noise burst over a low thump
func createExplosion(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, explosionDuration, WaveNoise, rate),
		explosionDuration, 5*time.Millisecond, 380*time.Millisecond, rate)
	thump := NewEnvelope(NewSweep(120, 40, explosionDuration, WaveSine, rate),
		explosionDuration, 5*time.Millisecond, 300*time.Millisecond, rate)
	return beep.Mix(newVolume(noise, 0.5), newVolume(thump, 0.5))
}

func createJingle(rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		osc := NewOscillator(f, noteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, noteDuration, 5*time.Millisecond, 60*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(notes...), 0.5)
}

// NewSound returns a fresh streamer for s, or nil for an unknown sound.
func NewSound(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundLaunch:
		return createLaunch(rate)
	case SoundAbility:
		return createAbility(rate)
	case SoundPop:
		return createPop(rate)
	case SoundExplosion:
		return createExplosion(rate)
	case SoundWin:
		return createJingle(rate, 523.25, 659.25, 783.99, 1046.5)
	case SoundLose:
		return createJingle(rate, 392, 349.23, 311.13, 261.63)
	default:
		return nil
	}
}
