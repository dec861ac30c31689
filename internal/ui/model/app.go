// Package model contains the UI model implementation.
package model

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"luckygates/internal/config"
	"luckygates/internal/game/directory"
	"luckygates/internal/game/gate"
	"luckygates/internal/game/state"
	gamesync "luckygates/internal/game/sync"
	"luckygates/internal/game/timer"
	"luckygates/internal/logger"
	"luckygates/internal/network/client"
	"luckygates/internal/prefs"
	"luckygates/internal/protocol"
	"luckygates/internal/sound"
	"luckygates/internal/wallet"
)

// soundDevice is the slice of the sound manager the model drives. Split out
// so tests can observe the init/preference ordering.
type soundDevice interface {
	Init() error
	Play(name string)
	SetMusicEnabled(enabled bool)
}

// App is the root bubbletea model. All session-state mutation happens inside
// its Update loop; the pumps and the signer only feed messages into it.
type App struct {
	cfg    *config.Config
	client *client.Client
	wallet wallet.Provider

	st     *state.GameState
	syncer *gamesync.Synchronizer
	gate   *gate.Gate

	games         []directory.AvailableGame
	selectedIndex int

	signChallenge string
	boundAddress  string

	// Stage countdown. ticking guards the 500ms tick so that stopping it
	// twice, or starting it while it already runs, is a no-op.
	proj    timer.Projection
	ticking bool

	notifications map[NotificationType]*Notification

	// Sound runs through the Update loop only: nothing touches soundManager
	// until SoundInitializedMsg flips soundReady, so the slow speaker/file
	// setup never races the early preference load.
	soundManager soundDevice
	soundReady   bool
	prefsStore   prefs.Store
	musicEnabled bool

	input   textinput.Model
	width   int
	height  int
	connErr string

	// Injected to break circular imports, same trick as the view/key/handler
	// split in the rest of the ui tree.
	viewRenderer         func(Model) string
	keyHandler           func(Model, tea.KeyMsg) (bool, tea.Cmd)
	serverMessageHandler func(Model, *protocol.Message) tea.Cmd
}

// NewApp builds the root model. w may be wallet.None when no key is
// configured; store must not be nil.
func NewApp(cfg *config.Config, w wallet.Provider, store prefs.Store) *App {
	ti := textinput.New()
	ti.Placeholder = "game id"
	ti.CharLimit = 40
	ti.Width = 40

	st := state.New()
	m := &App{
		cfg:           cfg,
		client:        client.NewClient(cfg.Server.URL()),
		wallet:        w,
		st:            st,
		gate:          gate.New(st, w, cfg.Game.CoinAddress, cfg.Game.ChainName),
		notifications: make(map[NotificationType]*Notification),
		soundManager:  sound.NewSoundManager(),
		prefsStore:    store,
		input:         ti,
	}
	m.syncer = gamesync.New(st, m.routeChanged)
	m.client.OnError = func(err error) {
		logger.LogError("channel error: %v", err)
	}
	return m
}

func (m *App) Init() tea.Cmd {
	return tea.Batch(
		m.initSound(),
		m.connectToServer(),
		m.loadMusicPref(),
		textinput.Blink,
	)
}

func (m *App) initSound() tea.Cmd {
	sm := m.soundManager
	return func() tea.Msg {
		return SoundInitializedMsg{Err: sm.Init()}
	}
}

func (m *App) View() string {
	if m.viewRenderer != nil {
		return m.viewRenderer(m)
	}
	return ""
}

// SetRenderers injects the view, key and server-message functions.
func (m *App) SetRenderers(
	view func(Model) string,
	keys func(Model, tea.KeyMsg) (bool, tea.Cmd),
	server func(Model, *protocol.Message) tea.Cmd,
) {
	m.viewRenderer = view
	m.keyHandler = keys
	m.serverMessageHandler = server
}

func (m *App) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

func (m *App) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionLostMsg{}
		}
		return ServerMessage{Msg: msg}
	}
}

func (m *App) loadMusicPref() tea.Cmd {
	store := m.prefsStore
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return MusicPrefLoadedMsg{Enabled: prefs.GetBool(ctx, store, prefs.KeyPlayMusic, true)}
	}
}

// routeChanged runs when the synchronizer derives a different screen. The
// synchronizer already deduplicates, so side effects here fire once per
// transition.
func (m *App) routeChanged(scr state.Screen) {
	m.selectedIndex = 0
	m.input.Reset()
	switch scr {
	case state.ScreenLanding:
		m.proj = timer.Projection{}
		m.input.Placeholder = "game id"
		m.PlaySound("menu")
	case state.ScreenLobby:
		m.PlaySound("join")
	case state.ScreenGame:
		m.PlaySound("start")
	}
}

// --- Model interface implementation ---

func (m *App) Screen() state.Screen         { return m.syncer.Screen() }
func (m *App) State() *state.GameState      { return m.st }
func (m *App) Sync() *gamesync.Synchronizer { return m.syncer }
func (m *App) Gate() *gate.Gate             { return m.gate }
func (m *App) Client() *client.Client       { return m.client }

func (m *App) CoinAddress() string { return m.cfg.Game.CoinAddress }
func (m *App) ChainName() string   { return m.cfg.Game.ChainName }

func (m *App) Account() string      { return m.wallet.Account() }
func (m *App) BoundAddress() string { return m.boundAddress }

func (m *App) SetSignChallenge(code string) { m.signChallenge = code }

// BindAddress signs the pending challenge off the Update loop. With no
// identity or no pending challenge it does nothing; a later qualifying
// trigger retries.
func (m *App) BindAddress() tea.Cmd {
	challenge := m.signChallenge
	w := m.wallet
	if challenge == "" || w.Account() == "" {
		return nil
	}
	return func() tea.Msg {
		sig, err := w.SignMessage(context.Background(), challenge)
		return ChallengeSignedMsg{Address: w.Account(), Signature: sig, Err: err}
	}
}

func (m *App) Games() []directory.AvailableGame { return m.games }

func (m *App) SetGames(games []directory.AvailableGame) {
	m.games = games
	if m.selectedIndex >= len(games) {
		m.selectedIndex = 0
	}
}

func (m *App) SelectedIndex() int     { return m.selectedIndex }
func (m *App) SetSelectedIndex(i int) { m.selectedIndex = i }

func (m *App) Projection() timer.Projection { return m.proj }

// StartCountdown begins the 500ms projection tick if the current stage wants
// one and it is not already running.
func (m *App) StartCountdown() tea.Cmd {
	if m.ticking {
		return nil
	}
	st, ok := m.st.Stage()
	if !ok || !st.Valid() || !st.Timed() {
		return nil
	}
	m.ticking = true
	return countdownTick()
}

func countdownTick() tea.Cmd {
	return tea.Tick(timer.TickInterval, func(t time.Time) tea.Msg {
		return CountdownTickMsg{Time: t}
	})
}

// Notify surfaces a notification. A zero ttl makes it persistent; otherwise
// the returned command expires it.
func (m *App) Notify(t NotificationType, message string, ttl time.Duration) tea.Cmd {
	m.notifications[t] = &Notification{
		Message:   message,
		Type:      t,
		Temporary: ttl > 0,
	}
	if ttl == 0 {
		return nil
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ClearNotificationMsg{Type: t}
	})
}

func (m *App) CurrentNotification() *Notification {
	for _, t := range []NotificationType{NotifyError, NotifyGameEnd, NotifyConnection, NotifyInfo} {
		if n, ok := m.notifications[t]; ok {
			return n
		}
	}
	return nil
}

func (m *App) Input() *textinput.Model { return &m.input }

func (m *App) PlaySound(name string) {
	if m.soundReady {
		m.soundManager.Play(name)
	}
}

func (m *App) MusicEnabled() bool { return m.musicEnabled }

// ToggleMusic flips the music preference, applies it, and persists it in the
// background.
func (m *App) ToggleMusic() tea.Cmd {
	m.musicEnabled = !m.musicEnabled
	if m.soundReady {
		m.soundManager.SetMusicEnabled(m.musicEnabled)
	}

	enabled := m.musicEnabled
	store := m.prefsStore
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = prefs.SetBool(ctx, store, prefs.KeyPlayMusic, enabled)
		return nil
	}
}

func (m *App) Latency() int64          { return m.client.Latency() }
func (m *App) ConnectionError() string { return m.connErr }

func (m *App) Width() int  { return m.width }
func (m *App) Height() int { return m.height }
