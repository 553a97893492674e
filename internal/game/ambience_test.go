package game

import (
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func TestLevelTapRMS(t *testing.T) {
	tap := newLevelTap(constant(0.5), 64)
	assert.Zero(t, tap.rms(16))

	buf := make([][2]float64, 100)
	n, ok := tap.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 100, n)
	assert.InDelta(t, 0.5, tap.rms(16), 1e-9)
	assert.InDelta(t, 0.5, tap.rms(1000), 1e-9)
}

func TestAmbienceLevel(t *testing.T) {
	quiet := newAmbience(newLevelTap(beep.Silence(-1), 64))
	_, _ = quiet.tap.Stream(make([][2]float64, 32))
	assert.Zero(t, quiet.Level())

	loud := newAmbience(newLevelTap(constant(1), 64))
	_, _ = loud.tap.Stream(make([][2]float64, 32))
	first := loud.Level()
	assert.Greater(t, first, 0.0)
	assert.Greater(t, loud.Level(), first)
	assert.LessOrEqual(t, loud.Level(), 1.0)
	require.NoError(t, loud.Close())
}

func TestLoadAmbienceRejectsUnknownType(t *testing.T) {
	_, err := LoadAmbience("testdata/none.ogg")
	assert.Error(t, err)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
}

type closingStreamer struct {
	beep.Streamer
	closed int
}

func (s *closingStreamer) Len() int       { return 0 }
func (s *closingStreamer) Position() int  { return 0 }
func (s *closingStreamer) Seek(int) error { return nil }
func (s *closingStreamer) Close() error   { s.closed++; return nil }

func TestCloseWhilePlayingReturns(t *testing.T) {
	src := &closingStreamer{Streamer: constant(0.2)}
	a := newAmbience(newLevelTap(src, 64))
	a.streamer = src
	a.playing = true

	done := make(chan error, 1)
	go func() { done <- a.Close() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return")
	}
	assert.Equal(t, 1, src.closed)

	require.NoError(t, a.Close())
	assert.Equal(t, 1, src.closed)
}
