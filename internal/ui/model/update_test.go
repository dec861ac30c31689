package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luckygates/internal/config"
	"luckygates/internal/game/state"
	"luckygates/internal/prefs"
	"luckygates/internal/protocol"
	"luckygates/internal/wallet"
)

func newTestApp() *App {
	return NewApp(config.Default(), wallet.None{}, prefs.NewMemoryStore())
}

func applyPatch(t *testing.T, m *App, raw string) {
	t.Helper()
	var p protocol.GameStatePatch
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	m.Sync().Apply(&p)
}

func TestUpdateWindowSize(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Width())
	assert.Equal(t, 40, m.Height())
}

func TestUpdateConnectionError(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	m.Update(ConnectionErrorMsg{Err: errors.New("dial refused")})
	assert.Contains(t, m.ConnectionError(), "dial refused")
}

func TestUpdateConnectionLost(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	_, cmd := m.Update(ConnectionLostMsg{})
	assert.Nil(t, cmd, "persistent notification has no expiry")

	n := m.CurrentNotification()
	require.NotNil(t, n)
	assert.Equal(t, NotifyConnection, n.Type)
	assert.False(t, n.Temporary)
}

func TestCountdownTick(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	now := time.Now()
	end := now.Unix() + 60
	applyPatch(t, m, `{"gameId":"g1","currentStage":0}`)
	m.State().StageEndTime = &end

	cmd := m.StartCountdown()
	require.NotNil(t, cmd)
	assert.Nil(t, m.StartCountdown(), "second start while ticking is a no-op")

	_, next := m.Update(CountdownTickMsg{Time: now})
	assert.Equal(t, 60, m.Projection().TimerValue)
	assert.Equal(t, 50, m.Projection().RemainingPercent)
	assert.NotNil(t, next, "timed stage keeps ticking")
}

func TestCountdownStopsOnUntimedStage(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	applyPatch(t, m, `{"gameId":"g1","currentStage":0}`)
	require.NotNil(t, m.StartCountdown())

	// The game starts; the projection goes terminal and the tick stops.
	applyPatch(t, m, `{"currentStage":1}`)
	_, next := m.Update(CountdownTickMsg{Time: time.Now()})
	assert.Equal(t, 0, m.Projection().TimerValue)
	assert.Nil(t, next)

	// The stage can be timed again later; a fresh start is accepted.
	applyPatch(t, m, `{"currentStage":0}`)
	assert.NotNil(t, m.StartCountdown())
}

func TestCountdownNotStartedOffTimedStage(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	applyPatch(t, m, `{"gameId":"g1","currentStage":2}`)
	assert.Nil(t, m.StartCountdown())
}

func TestNotificationLifecycle(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	cmd := m.Notify(NotifyError, "rejected", ShortNotice)
	require.NotNil(t, cmd)
	require.NotNil(t, m.CurrentNotification())

	m.Update(ClearNotificationMsg{Type: NotifyError})
	assert.Nil(t, m.CurrentNotification())
}

func TestNotificationPriority(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	m.Notify(NotifyInfo, "info", ShortNotice)
	m.Notify(NotifyGameEnd, "game over", LongNotice)
	m.Notify(NotifyError, "rejected", ShortNotice)

	n := m.CurrentNotification()
	require.NotNil(t, n)
	assert.Equal(t, NotifyError, n.Type, "rejections outrank everything")

	m.Update(ClearNotificationMsg{Type: NotifyError})
	assert.Equal(t, NotifyGameEnd, m.CurrentNotification().Type)
}

func TestChallengeSignedFailureKeepsUnbound(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	m.Update(ChallengeSignedMsg{Err: errors.New("signing refused")})
	assert.Empty(t, m.BoundAddress())
}

func TestChallengeSignedBinds(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	m.Update(ChallengeSignedMsg{Address: "0xABC", Signature: "0xsig"})
	assert.Equal(t, "0xABC", m.BoundAddress())
}

func TestBindAddressRequiresChallengeAndKey(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	assert.Nil(t, m.BindAddress(), "no challenge yet")

	m.SetSignChallenge("challenge-1")
	assert.Nil(t, m.BindAddress(), "no identity, binding skipped")
}

func TestMusicPrefLoaded(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	m.Update(MusicPrefLoadedMsg{Enabled: false})
	assert.False(t, m.MusicEnabled())

	m.Update(MusicPrefLoadedMsg{Enabled: true})
	assert.True(t, m.MusicEnabled())
}

type fakeSound struct {
	applied []bool
	played  []string
}

func (f *fakeSound) Init() error                  { return nil }
func (f *fakeSound) Play(name string)             { f.played = append(f.played, name) }
func (f *fakeSound) SetMusicEnabled(enabled bool) { f.applied = append(f.applied, enabled) }

func TestMusicPrefWaitsForSoundInit(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	fs := &fakeSound{}
	m.soundManager = fs

	// Preference arrives before the speaker is ready: remember it, do not
	// touch the sound manager yet.
	m.Update(MusicPrefLoadedMsg{Enabled: false})
	assert.False(t, m.MusicEnabled())
	assert.Empty(t, fs.applied)

	m.PlaySound("door")
	assert.Empty(t, fs.played)

	// Init completing applies the remembered preference.
	m.Update(SoundInitializedMsg{})
	assert.Equal(t, []bool{false}, fs.applied)

	m.PlaySound("door")
	assert.Equal(t, []string{"door"}, fs.played)

	// Once ready, later preference loads apply immediately.
	m.Update(MusicPrefLoadedMsg{Enabled: true})
	assert.Equal(t, []bool{false, true}, fs.applied)
}

func TestSoundInitFailureStaysSilent(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	fs := &fakeSound{}
	m.soundManager = fs

	m.Update(SoundInitializedMsg{Err: errors.New("no audio device")})
	m.PlaySound("door")
	_ = m.ToggleMusic()

	assert.Empty(t, fs.applied)
	assert.Empty(t, fs.played)
}

func TestRouteChangeResetsSelection(t *testing.T) {
	t.Parallel()

	m := newTestApp()
	m.SetSelectedIndex(2)
	m.Input().SetValue("half-typed")

	applyPatch(t, m, `{"gameId":"g1","currentStage":0}`)
	assert.Equal(t, state.ScreenLobby, m.Screen())
	assert.Equal(t, 0, m.SelectedIndex())
	assert.Empty(t, m.Input().Value())
}
