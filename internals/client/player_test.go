// file: internals/client/player_test.go
package client

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClockPlayer(ms int64) *Player {
	p := NewPlayer()
	p.now = func() time.Time { return time.UnixMilli(ms) }
	return p
}

func TestSetSourceCacheBusts(t *testing.T) {
	p := fixedClockPlayer(1700000000000)

	p.SetSource("https://cdn.example/male.mp3")
	require.Equal(t, "https://cdn.example/male.mp3?t=1700000000000", p.Source())

	// URLs that already carry a query get an ampersand
	p.SetSource("https://cdn.example/male.mp3?sig=abc")
	require.Equal(t, "https://cdn.example/male.mp3?sig=abc&t=1700000000000", p.Source())
}

func TestSetSourceResetsPlayback(t *testing.T) {
	p := fixedClockPlayer(1)
	p.SetDuration(120)
	p.SetPosition(30)
	p.Toggle()
	require.True(t, p.IsPlaying())

	p.SetSource("https://cdn.example/female.mp3")
	require.False(t, p.IsPlaying())
	require.Zero(t, p.Position())
	require.Zero(t, p.Duration())
}

func TestSeekMapsClickToPosition(t *testing.T) {
	p := NewPlayer()
	p.SetDuration(200)

	require.InDelta(t, 50.0, p.Seek(75, 300), 1e-9)
	require.InDelta(t, 50.0, p.Position(), 1e-9)

	// clicks outside the track clamp to the edges
	require.InDelta(t, 0.0, p.Seek(-20, 300), 1e-9)
	require.InDelta(t, 200.0, p.Seek(450, 300), 1e-9)
}

func TestSeekWithoutMetadataIsInert(t *testing.T) {
	p := NewPlayer()
	require.Zero(t, p.Seek(100, 300), "no duration yet, click does nothing")

	p.SetDuration(60)
	p.SetPosition(10)
	require.InDelta(t, 10.0, p.Seek(100, 0), 1e-9, "zero-width track keeps the position")
}

func TestPositionClampedToDuration(t *testing.T) {
	p := NewPlayer()
	p.SetDuration(90)
	p.SetPosition(140)
	require.InDelta(t, 90.0, p.Position(), 1e-9)
	p.SetPosition(-5)
	require.Zero(t, p.Position())
}

func TestVolumeClampAndMute(t *testing.T) {
	p := NewPlayer()
	require.InDelta(t, 1.0, p.Volume(), 1e-9)

	p.SetVolume(1.7)
	require.InDelta(t, 1.0, p.Volume(), 1e-9)
	p.SetVolume(-0.2)
	require.Zero(t, p.Volume())

	p.SetVolume(0.6)
	p.ToggleMute()
	require.True(t, p.IsMuted())
	require.Zero(t, p.Volume(), "muted output is silent regardless of the slider")

	p.ToggleMute()
	require.False(t, p.IsMuted())
	require.InDelta(t, 0.6, p.Volume(), 1e-9, "unmute restores the pre-mute volume")
}

func TestHandlePlayErrorSwallowsAbort(t *testing.T) {
	p := NewPlayer()
	p.Toggle()

	require.NoError(t, p.HandlePlayError(nil))
	require.NoError(t, p.HandlePlayError(ErrPlaybackAborted))
	require.True(t, p.IsPlaying(), "abort leaves the playing flag alone")

	decodeErr := errors.New("decode failed")
	require.ErrorIs(t, p.HandlePlayError(decodeErr), decodeErr)
	require.False(t, p.IsPlaying())
}

func TestFormatTime(t *testing.T) {
	require.Equal(t, "0:00", FormatTime(0))
	require.Equal(t, "0:07", FormatTime(7.8))
	require.Equal(t, "1:05", FormatTime(65))
	require.Equal(t, "12:34", FormatTime(754))
	require.Equal(t, "0:00", FormatTime(-3))
}
