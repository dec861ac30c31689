// Package model defines the core types and interfaces for the UI.
package model

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"luckygates/internal/game/directory"
	"luckygates/internal/game/gate"
	"luckygates/internal/game/state"
	gamesync "luckygates/internal/game/sync"
	"luckygates/internal/game/timer"
	"luckygates/internal/network/client"
	"luckygates/internal/protocol"
)

// Display times for transient notifications. Rejections auto-expire; they
// are never fatal.
const (
	ShortNotice = 3 * time.Second
	LongNotice  = 5 * time.Second
)

// NotificationType ranks notifications; lower values win when several are
// pending.
type NotificationType int

const (
	NotifyError      NotificationType = iota // rejected action (temporary)
	NotifyGameEnd                            // session end reason (temporary)
	NotifyConnection                         // connection lost (persistent)
	NotifyInfo                               // everything else (temporary)
)

// Notification is a message surfaced above the current view.
type Notification struct {
	Message   string
	Type      NotificationType
	Temporary bool
}

// --- Tea messages ---

// ServerMessage wraps a protocol message for tea.Msg.
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg indicates successful connection.
type ConnectedMsg struct{}

// ConnectionErrorMsg indicates the initial dial failed.
type ConnectionErrorMsg struct {
	Err error
}

// ConnectionLostMsg indicates the channel dropped after connecting.
type ConnectionLostMsg struct{}

// CountdownTickMsg drives the stage-timer projection.
type CountdownTickMsg struct {
	Time time.Time
}

// ClearNotificationMsg expires a transient notification.
type ClearNotificationMsg struct {
	Type NotificationType
}

// ChallengeSignedMsg carries the result of signing a bind challenge.
type ChallengeSignedMsg struct {
	Address   string
	Signature string
	Err       error
}

// MusicPrefLoadedMsg carries the persisted music preference.
type MusicPrefLoadedMsg struct {
	Enabled bool
}

// SoundInitializedMsg reports that speaker setup and effect loading are done.
type SoundInitializedMsg struct {
	Err error
}

// --- Model interface ---

// Model is the surface the handler, view and input packages work against.
type Model interface {
	// Routing and state (read side)
	Screen() state.Screen
	State() *state.GameState
	Sync() *gamesync.Synchronizer
	Gate() *gate.Gate
	Client() *client.Client

	// Configured economic identity
	CoinAddress() string
	ChainName() string

	// Identity
	Account() string
	BoundAddress() string
	SetSignChallenge(code string)
	BindAddress() tea.Cmd

	// Joinable sessions
	Games() []directory.AvailableGame
	SetGames([]directory.AvailableGame)
	SelectedIndex() int
	SetSelectedIndex(int)

	// Stage countdown
	Projection() timer.Projection
	StartCountdown() tea.Cmd

	// Notifications
	Notify(t NotificationType, message string, ttl time.Duration) tea.Cmd
	CurrentNotification() *Notification

	// UI components
	Input() *textinput.Model

	// Sound
	PlaySound(name string)
	MusicEnabled() bool
	ToggleMusic() tea.Cmd

	// Connection info
	Latency() int64
	ConnectionError() string

	// Dimensions
	Width() int
	Height() int
}
