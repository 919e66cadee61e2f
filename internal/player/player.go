// Package player is the demo playlist state machine behind the floating
// sample player. Nothing is actually played; progress is simulated.
package player

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"musicschool/pkg/models"
)

const (
	// Step is how far progress advances per tick while playing.
	Step = 0.5
	// DefaultInterval matches the 100ms tick of the web player.
	DefaultInterval = 100 * time.Millisecond

	// displayLength is the nominal track length used for the elapsed clock.
	displayLength = 240 * time.Second
)

var ErrNoTracks = errors.New("player: empty playlist")

type Command string

const (
	CmdToggle Command = "toggle"
	CmdNext   Command = "next"
	CmdPrev   Command = "prev"
)

// State is a point-in-time copy of the player.
type State struct {
	Index    int          `json:"index"`
	Track    models.Track `json:"track"`
	Playing  bool         `json:"playing"`
	Progress float64      `json:"progress"`
	Elapsed  string       `json:"elapsed"`
}

type Player struct {
	mu       sync.Mutex
	tracks   []models.Track
	index    int
	playing  bool
	progress float64
}

func New(tracks []models.Track) (*Player, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	return &Player{tracks: append([]models.Track(nil), tracks...)}, nil
}

func (p *Player) Toggle() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = !p.playing
	return p.stateLocked()
}

func (p *Player) Next() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.index = (p.index + 1) % len(p.tracks)
	p.progress = 0
	return p.stateLocked()
}

func (p *Player) Prev() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.index = (p.index - 1 + len(p.tracks)) % len(p.tracks)
	p.progress = 0
	return p.stateLocked()
}

// Tick advances progress by Step while playing. Once progress has reached
// 100 the following tick wraps it back to 0. The bool reports whether
// anything changed.
func (p *Player) Tick() (State, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return p.stateLocked(), false
	}
	if p.progress >= 100 {
		p.progress = 0
	} else {
		p.progress += Step
	}
	return p.stateLocked(), true
}

func (p *Player) Apply(cmd Command) (State, error) {
	switch cmd {
	case CmdToggle:
		return p.Toggle(), nil
	case CmdNext:
		return p.Next(), nil
	case CmdPrev:
		return p.Prev(), nil
	default:
		return p.State(), fmt.Errorf("unknown command %q", cmd)
	}
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

func (p *Player) stateLocked() State {
	return State{
		Index:    p.index,
		Track:    p.tracks[p.index],
		Playing:  p.playing,
		Progress: p.progress,
		Elapsed:  elapsed(p.progress),
	}
}

// Run calls Tick every interval until ctx is done. onTick only sees ticks
// that changed state.
func (p *Player) Run(ctx context.Context, interval time.Duration, onTick func(State)) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if st, changed := p.Tick(); changed && onTick != nil {
				onTick(st)
			}
		}
	}
}

func elapsed(progress float64) string {
	secs := int(progress / 100 * displayLength.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
