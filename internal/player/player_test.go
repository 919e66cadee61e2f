package player

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer(t *testing.T) *Player {
	t.Helper()
	p, err := New(SampleTracks())
	require.NoError(t, err)
	return p
}

func TestNewRejectsEmptyPlaylist(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoTracks)
}

func TestNextPrevWrap(t *testing.T) {
	p := newPlayer(t)

	st := p.Prev()
	assert.Equal(t, 4, st.Index)
	assert.Equal(t, "Blues Soul", st.Track.Title)

	st = p.Next()
	assert.Equal(t, 0, st.Index)
	assert.Equal(t, "Guitar Melody", st.Track.Title)
}

func TestTickOnlyWhilePlaying(t *testing.T) {
	p := newPlayer(t)

	_, changed := p.Tick()
	assert.False(t, changed)
	assert.Zero(t, p.State().Progress)

	p.Toggle()
	st, changed := p.Tick()
	assert.True(t, changed)
	assert.Equal(t, 0.5, st.Progress)

	p.Toggle()
	st, _ = p.Tick()
	assert.Equal(t, 0.5, st.Progress)
}

func TestTickWrapsAfterHundred(t *testing.T) {
	p := newPlayer(t)
	p.Toggle()

	var st State
	for i := 0; i < 200; i++ {
		st, _ = p.Tick()
	}
	assert.Equal(t, 100.0, st.Progress)
	assert.Equal(t, "4:00", st.Elapsed)

	st, _ = p.Tick()
	assert.Zero(t, st.Progress)
}

func TestTrackChangeResetsProgress(t *testing.T) {
	p := newPlayer(t)
	p.Toggle()
	p.Tick()
	p.Tick()

	assert.Zero(t, p.Next().Progress)
	p.Tick()
	assert.Zero(t, p.Prev().Progress)
	assert.True(t, p.State().Playing)
}

func TestApply(t *testing.T) {
	p := newPlayer(t)

	st, err := p.Apply(CmdToggle)
	require.NoError(t, err)
	assert.True(t, st.Playing)

	st, err = p.Apply(CmdNext)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Index)

	_, err = p.Apply("shuffle")
	assert.Error(t, err)
}

func TestElapsed(t *testing.T) {
	assert.Equal(t, "0:00", elapsed(0))
	assert.Equal(t, "1:00", elapsed(25))
	assert.Equal(t, "2:01", elapsed(50.5))
}

func TestRunStopsWithContext(t *testing.T) {
	p := newPlayer(t)
	p.Toggle()

	var ticks atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx, time.Millisecond, func(State) { ticks.Add(1) })
		close(done)
	}()

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
