package replay

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/slingshot/internal/application/match"
	"github.com/younwookim/slingshot/internal/application/system"
	"github.com/younwookim/slingshot/internal/domain/geom"
	"github.com/younwookim/slingshot/internal/infrastructure/config"
	"github.com/younwookim/slingshot/internal/physics/physicstest"
)

const dt = 1.0 / 60.0

func createTestGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics:  config.DefaultPhysicsConfig(),
		Entities: &config.EntitiesConfig{},
		Level: &config.LevelConfig{
			Name:    "test",
			Columns: []config.PlacementXY{{X: 700, Y: 50}},
			Pigs:    []config.PlacementXY{{X: 700, Y: 102}, {X: 900, Y: 32}},
		},
	}
}

func newMatch(seed int64) *match.Match {
	cfg := createTestGameConfig()
	pw := physicstest.New()
	pw.Gravity = geom.Pt(0, cfg.Physics.Physics.Gravity)
	return match.New(cfg, pw, rand.New(rand.NewSource(seed)))
}

// scriptedSession pulls the slingshot, launches, fires the ability mid-flight
// and waits, twice.
func scriptedSession() []system.InputState {
	var frames []system.InputState
	idle := func(n int) {
		for i := 0; i < n; i++ {
			frames = append(frames, system.InputState{MouseX: 500, MouseY: 500})
		}
	}
	shot := func(dx, dy float64) {
		frames = append(frames, system.InputState{MouseX: 200, MouseY: 240, Pressed: true, Held: true})
		for i := 1; i <= 10; i++ {
			frames = append(frames, system.InputState{MouseX: 200 + dx*float64(i)/10, MouseY: 240 + dy*float64(i)/10, Held: true})
		}
		frames = append(frames, system.InputState{MouseX: 200 + dx, MouseY: 240 + dy, Released: true})
		idle(20)
		frames = append(frames, system.InputState{Ability: true})
		idle(200)
	}
	shot(100, 60)
	shot(110, 30)
	return frames
}

func run(m *match.Match, next func() (system.InputState, bool)) {
	for {
		in, ok := next()
		if !ok {
			return
		}
		m.Apply(in.Intents())
		m.Tick(dt)
	}
}

func TestRecordEncodeReplay_SameOutcome(t *testing.T) {
	const seed = 99
	session := scriptedSession()

	// live run, recording every frame
	rec := NewRecorder(seed, "test")
	live := newMatch(seed)
	i := 0
	run(live, func() (system.InputState, bool) {
		if i >= len(session) {
			return system.InputState{}, false
		}
		in := session[i]
		i++
		rec.RecordFrame(in)
		return in, true
	})
	require.Equal(t, len(session), rec.FrameCount())

	b, err := Encode(rec.Data())
	require.NoError(t, err)
	decoded, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, rec.Data(), *decoded)

	replayer := NewReplayer(*decoded)
	assert.Equal(t, int64(seed), replayer.Seed())
	assert.Equal(t, "test", replayer.Level())

	replayed := newMatch(replayer.Seed())
	run(replayed, replayer.GetInput)
	assert.True(t, replayer.Done())

	assert.Equal(t, live.Snapshot(), replayed.Snapshot())
	assert.Equal(t, live.Frame(), replayed.Frame())
	assert.Equal(t, 3, live.Snapshot().AttemptsLeft, "two launches were made")

	liveBirds := live.World().Birds()
	require.Equal(t, liveBirds, replayed.World().Birds())
	for _, id := range liveBirds {
		assert.Equal(t, live.World().Position(id), replayed.World().Position(id))
		assert.Equal(t, live.World().BirdData[id], replayed.World().BirdData[id])
	}
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Level:   "demo",
		Frames: []FrameInput{
			{F: 0, MX: 200, MY: 240, P: true, H: true},
			{F: 1, MX: 150, MY: 200, H: true},
			{F: 2, MX: 150, MY: 200, R: true, A: true},
		},
	}

	replayer := NewReplayer(data)
	assert.Equal(t, 3, replayer.TotalFrames())

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Pressed)
	assert.True(t, input.Held)
	assert.Equal(t, 200.0, input.MouseX)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Pressed)
	assert.True(t, input.Held)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Released)
	assert.True(t, input.Ability)
	assert.Equal(t, 3, replayer.CurrentFrame())

	_, ok = replayer.GetInput()
	assert.False(t, ok)
	assert.True(t, replayer.Done())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.False(t, replayer.Done())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(7, "demo")
	assert.True(t, rec.IsRecording())
	rec.RecordFrame(system.InputState{MouseX: 1, MouseY: 2, Pressed: true})
	rec.RecordFrame(system.InputState{MouseX: 3, MouseY: 4, Restart: true})
	rec.Stop()
	rec.RecordFrame(system.InputState{})
	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, "demo", data.Level)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, FrameInput{F: 1, MX: 3, MY: 4, Rst: true}, data.Frames[1])
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(1, "demo")
	err := rec.Save(filepath.Join(t.TempDir(), "x.msgpack"))
	assert.Error(t, err)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte{0xc1})
	assert.Error(t, err)

	b, err := Encode(ReplayData{Version: "1.0"})
	require.NoError(t, err)
	_, err = Decode(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported replay version")

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
