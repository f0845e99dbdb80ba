package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func assertInRange(t *testing.T, samples [][2]float64) {
	t.Helper()
	for i, s := range samples {
		require.True(t, s[0] >= -1 && s[0] <= 1, "sample %d left out of range: %f", i, s[0])
		require.True(t, s[1] >= -1 && s[1] <= 1, "sample %d right out of range: %f", i, s[1])
	}
}

func TestOscillator(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, tt.wave, testRate)
			samples := drain(t, osc)

			assert.Len(t, samples, testRate.N(50*time.Millisecond))
			assertInRange(t, samples)
			assert.NoError(t, osc.Err())
		})
	}
}

func TestSweepStaysInRange(t *testing.T) {
	samples := drain(t, NewSweep(100, 2000, 100*time.Millisecond, WaveSine, testRate))
	assert.NotEmpty(t, samples)
	assertInRange(t, samples)
}

func TestEnvelopeFadesOut(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // constant +1
	samples := drain(t, NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, testRate))

	require.Len(t, samples, testRate.N(d))
	assert.InDelta(t, 0.0, samples[0][0], 1e-9, "attack starts silent")
	mid := len(samples) / 2
	assert.InDelta(t, 1.0, samples[mid][0], 1e-9, "sustain is full volume")
	assert.Less(t, samples[len(samples)-1][0], 0.01, "release ends near silence")
}

func TestNewSound(t *testing.T) {
	for s := range soundNames {
		t.Run(s.String(), func(t *testing.T) {
			streamer := NewSound(s, testRate)
			require.NotNil(t, streamer)
			samples := drain(t, streamer)
			assert.NotEmpty(t, samples)
			assertInRange(t, samples)
		})
	}

	assert.Nil(t, NewSound(Sound(99), testRate))
}

func TestSoundString(t *testing.T) {
	assert.Equal(t, "launch", SoundLaunch.String())
	assert.Equal(t, "explosion", SoundExplosion.String())
	assert.Equal(t, "unknown", Sound(99).String())
}

func TestSoundForAsset(t *testing.T) {
	s, ok := SoundForAsset("win")
	assert.True(t, ok)
	assert.Equal(t, SoundWin, s)

	s, ok = SoundForAsset("lose")
	assert.True(t, ok)
	assert.Equal(t, SoundLose, s)

	_, ok = SoundForAsset("")
	assert.False(t, ok)
}

func TestMutedManager(t *testing.T) {
	m := NewManager(true)

	require.NoError(t, m.Initialize())
	assert.True(t, m.Muted())

	// must not touch the speaker
	m.Play(SoundLaunch)
	m.Cleanup()
}
