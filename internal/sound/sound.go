// Package sound plays short tone cues for placement feedback.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short tone.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

var (
	// CuePlaced confirms a ship was added to the fleet.
	CuePlaced = Cue{Freq: 880, Duration: 80 * time.Millisecond}
	// CueRejected signals a discarded placement.
	CueRejected = Cue{Freq: 220, Duration: 150 * time.Millisecond}
	// CueFleetReady plays once the last ship is placed.
	CueFleetReady = Cue{Freq: 1320, Duration: 200 * time.Millisecond}
)

// Streamer returns a finite stream for the cue at the given rate.
func (c Cue) Streamer(rate beep.SampleRate) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, c.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(rate.N(c.Duration), tone), nil
}

// Player plays cues on the system speaker. A Player that failed to
// initialize, or was created muted, silently drops every cue.
type Player struct {
	mu      sync.Mutex
	enabled bool
}

// NewPlayer initializes the speaker unless muted. The returned Player is
// always usable; the error reports why sound is disabled.
func NewPlayer(muted bool) (*Player, error) {
	p := &Player{}
	if muted {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.enabled = true
	return p, nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues a cue without blocking.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	s, err := c.Streamer(sampleRate)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close shuts the speaker down.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Close()
	p.enabled = false
}
