// file: internals/client/player.go
package client

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrPlaybackAborted stands in for the browser's AbortError: a play request
// interrupted by a rapid pause/new-source call. It is benign and swallowed.
var ErrPlaybackAborted = errors.New("playback aborted")

// Player is the pure playback state of one question card's audio controls.
// Nothing here is persisted; a card unmount simply drops the value.
type Player struct {
	source   string
	playing  bool
	duration float64
	position float64

	volume        float64
	muted         bool
	preMuteVolume float64

	now func() time.Time
}

func NewPlayer() *Player {
	return &Player{
		volume: 1.0,
		now:    time.Now,
	}
}

// SetSource switches tracks: the current one pauses, the new URL gets a
// timestamp query parameter so a regenerated asset is never served from a
// stale cache.
func (p *Player) SetSource(url string) {
	p.playing = false
	p.position = 0
	p.duration = 0

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	p.source = fmt.Sprintf("%s%st=%d", url, sep, p.now().UnixMilli())
}

func (p *Player) Source() string { return p.source }

func (p *Player) Toggle() {
	p.playing = !p.playing
}

func (p *Player) IsPlaying() bool { return p.playing }

// SetDuration is fed from the loaded-metadata callback.
func (p *Player) SetDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	p.duration = seconds
}

func (p *Player) Duration() float64 { return p.duration }
func (p *Player) Position() float64 { return p.position }

// SetPosition is fed from the time-update callback.
func (p *Player) SetPosition(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	if p.duration > 0 && seconds > p.duration {
		seconds = p.duration
	}
	p.position = seconds
}

// Seek maps a click on the progress bar to a position:
// clickX / trackWidth * duration, clamped into the track.
func (p *Player) Seek(clickX, trackWidth float64) float64 {
	if trackWidth <= 0 || p.duration <= 0 {
		return p.position
	}
	ratio := clickX / trackWidth
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	p.position = ratio * p.duration
	return p.position
}

// SetVolume clamps into 0..1 and leaves mute alone.
func (p *Player) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.volume = v
}

// Volume is the effective output volume (zero while muted).
func (p *Player) Volume() float64 {
	if p.muted {
		return 0
	}
	return p.volume
}

func (p *Player) IsMuted() bool { return p.muted }

// ToggleMute remembers the pre-mute volume and restores it on unmute.
func (p *Player) ToggleMute() {
	if p.muted {
		p.muted = false
		p.volume = p.preMuteVolume
		return
	}
	p.preMuteVolume = p.volume
	p.muted = true
}

// HandlePlayError swallows the benign abort raised by overlapping
// play/pause calls; anything else is surfaced.
func (p *Player) HandlePlayError(err error) error {
	if err == nil || errors.Is(err, ErrPlaybackAborted) {
		return nil
	}
	p.playing = false
	return err
}

// FormatTime renders elapsed/total time as M:SS.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
