package ui

import (
	"time"

	"color-snake/game"
	"color-snake/game/entity"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short tones for game events. A Sound whose speaker could not
// be opened is silent.
type Sound struct {
	enabled bool
}

// NewSound opens the speaker unless muted. The error is informational: the
// returned Sound is usable either way.
func NewSound(muted bool) (*Sound, error) {
	if muted {
		return &Sound{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sound{}, errors.Wrap(err, "opening speaker")
	}
	return &Sound{enabled: true}, nil
}

// Play picks the tone for a tick result. Quiet ticks play nothing.
func (s *Sound) Play(res game.TickResult) {
	switch {
	case res.Ate == entity.AteItself || res.Ate == entity.AteWall:
		s.tone(220, 300*time.Millisecond)
	case res.Scored:
		s.tone(880, 60*time.Millisecond)
	case res.Ate == entity.AteFood:
		s.tone(440, 120*time.Millisecond)
	}
}

func (s *Sound) tone(freq float64, d time.Duration) {
	if !s.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (s *Sound) Close() {
	if s.enabled {
		speaker.Close()
		s.enabled = false
	}
}
