package game

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/iburimskiy/purpletab/internal/config"
)

// ErrUnsupportedAudio is returned by LoadAmbience for unknown file types.
var ErrUnsupportedAudio = errors.New("unsupported audio file")

const levelWindow = 2048

// Ambience loops an audio file and reports its loudness as a wave
// modulator.
type Ambience struct {
	tap      *levelTap
	streamer beep.StreamSeekCloser
	level    float64
	playing  bool
}

func newAmbience(tap *levelTap) *Ambience {
	return &Ambience{tap: tap}
}

// LoadAmbience decodes a wav, mp3 or flac file and starts looping it on the
// speaker.
func LoadAmbience(path string) (*Ambience, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAudio, filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		_ = streamer.Close()
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	a := newAmbience(newLevelTap(beep.Loop(-1, streamer), config.VisualRingSize))
	a.streamer = streamer
	a.playing = true
	speaker.Play(a.tap)
	log.Printf("[Ambience] playing %s at %d Hz", filepath.Base(path), format.SampleRate)
	return a, nil
}

// Level returns the smoothed, compressed loudness in [0, 1]. It is meant to
// be read once per frame.
func (a *Ambience) Level() float64 {
	mag := math.Pow(a.tap.rms(levelWindow), 0.3)
	a.level = config.SmoothingFactor*a.level + (1-config.SmoothingFactor)*mag
	return clamp01(a.level)
}

// Close stops playback and releases the decoder.
func (a *Ambience) Close() error {
	if !a.playing {
		return nil
	}
	a.playing = false
	// Clear takes the speaker lock itself.
	speaker.Clear()
	return a.streamer.Close()
}
