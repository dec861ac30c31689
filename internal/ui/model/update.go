package model

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"luckygates/internal/game/state"
	"luckygates/internal/game/timer"
	"luckygates/internal/logger"
	"luckygates/internal/protocol"
)

// Update handles tea messages. This is the single writer of session state:
// every channel event and every tick lands here, in receipt order.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.client.Close()
			return m, tea.Quit
		}
		if m.keyHandler != nil {
			if handled, cmd := m.keyHandler(m, msg); handled {
				return m, cmd
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case ConnectedMsg:
		m.connErr = ""
		m.client.StartHeartbeat()
		cmds = append(cmds, m.listenForMessages())
		// A fresh directory makes the landing list useful immediately.
		if listMsg, err := m.gate.ListGames(); err == nil {
			_ = m.client.SendMessage(listMsg)
		}

	case ConnectionErrorMsg:
		m.connErr = fmt.Sprintf("Could not reach the game server: %v", msg.Err)

	case ConnectionLostMsg:
		cmds = append(cmds, m.Notify(NotifyConnection, "Connection to the game server was lost.", 0))

	case ServerMessage:
		if m.serverMessageHandler != nil {
			if cmd := m.serverMessageHandler(m, msg.Msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		if m.client.IsConnected() {
			cmds = append(cmds, m.listenForMessages())
		}

	case CountdownTickMsg:
		proj, keep := timer.Project(m.st, m.proj, msg.Time, m.cfg.Game.StageDuration)
		m.proj = proj
		// Stop on a terminal projection and on leaving the session screens;
		// ticking flips exactly once either way.
		if keep && m.Screen() != state.ScreenLanding {
			cmds = append(cmds, countdownTick())
		} else {
			m.ticking = false
		}

	case ClearNotificationMsg:
		delete(m.notifications, msg.Type)

	case ChallengeSignedMsg:
		if msg.Err != nil {
			// Binding is simply not attempted; the next challenge retries.
			logger.LogError("sign challenge failed: %v", msg.Err)
			break
		}
		bind := protocol.MustNewMessage(protocol.MsgBindAddress, protocol.BindAddressPayload{
			PlayerAddress: msg.Address,
			SignedMessage: msg.Signature,
		})
		if err := m.client.SendMessage(bind); err == nil {
			m.boundAddress = msg.Address
		}

	case MusicPrefLoadedMsg:
		m.musicEnabled = msg.Enabled
		if m.soundReady {
			m.soundManager.SetMusicEnabled(msg.Enabled)
		}

	case SoundInitializedMsg:
		if msg.Err != nil {
			logger.LogError("sound init failed: %v", msg.Err)
			break
		}
		m.soundReady = true
		m.soundManager.SetMusicEnabled(m.musicEnabled)
	}

	return m, tea.Batch(cmds...)
}
